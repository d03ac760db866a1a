package submission

import "errors"

var (
	ErrNoAttachments    = errors.New("no attachments")
	ErrNoMemberFolders  = errors.New("no member folders")
	ErrSelectionTimeout = errors.New("folder selection timed out")
	ErrInvalidSelection = errors.New("invalid folder selection")
	ErrAlreadyPending   = errors.New("selection already pending")
	ErrEmptySubfolder   = errors.New("subfolder name is empty")
)
