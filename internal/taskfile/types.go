package taskfile

// TaskFile is a task document ready to be sent to a member.
type TaskFile struct {
	Name     string
	MimeType string
	Content  []byte
}

// ReplaceOutput summarizes a Replace call.
type ReplaceOutput struct {
	Name           string
	Removed        int
	FailedRemovals int
}
