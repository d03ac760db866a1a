package announcement

import "errors"

var (
	ErrEmptyMessage = errors.New("announcement text is empty")
	ErrSendFailed   = errors.New("failed to send announcement")
)
