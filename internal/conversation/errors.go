package conversation

import "errors"

var (
	ErrTimeout        = errors.New("timed out waiting for reply")
	ErrAlreadyPending = errors.New("a reply is already pending for this scope")
)
