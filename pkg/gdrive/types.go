package gdrive

import "errors"

// MIME types used by the Drive API.
const (
	MimeFolder       = "application/vnd.google-apps.folder"
	MimeGooglePrefix = "application/vnd.google-apps"
	MimeGoogleDoc    = "application/vnd.google-apps.document"
	MimeGoogleSheet  = "application/vnd.google-apps.spreadsheet"
	MimePDF          = "application/pdf"
	MimeDOCX         = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeXLSX         = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MimeOctetStream  = "application/octet-stream"
)

var (
	ErrFolderNotFound = errors.New("folder not found")
	ErrNoCredentials  = errors.New("no usable google credentials")
)

// Kind selects which children ListChildren returns.
type Kind int

const (
	KindAny Kind = iota
	KindFolders
	KindFiles
)

// ChildFilter narrows a ListChildren call.
type ChildFilter struct {
	Kind    Kind
	Trashed bool // list trashed children instead of live ones
}

// AuthOptions describes where OAuth material lives.
type AuthOptions struct {
	CredentialsPath string // OAuth client ("web"/"installed") or service account JSON
	TokenPath       string // token.json written by scripts/drive-auth
	RefreshToken    string // optional fixed refresh token, overrides TokenPath
}
