package taskfile

import "errors"

var (
	ErrNoTaskFile   = errors.New("task container has no files")
	ErrNoAttachment = errors.New("no attachment to upload")
)
