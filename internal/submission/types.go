package submission

import "fmt"

// VersionLabel names the K-th revision folder of task N.
func VersionLabel(taskNumber, version int) string {
	return fmt.Sprintf("task%d.%d", taskNumber, version)
}

// SubmitOutput summarizes one submission.
type SubmitOutput struct {
	Folder   string   // selected member folder name
	Uploaded []string // file names, in attachment order
	Failed   []string
}

// VersionEntry lists the members that have one version label.
type VersionEntry struct {
	Label   string
	Members []string
}

// ReportOutput is the result of a version scan. Versions is empty when no
// member has version 0.
type ReportOutput struct {
	TaskNumber int
	Versions   []VersionEntry
}

// OrganizeOutput summarizes an organize run.
type OrganizeOutput struct {
	Subfolder string
	Folders   int // member folders that received a new subfolder
	Files     int // files moved
}
