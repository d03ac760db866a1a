package ledger

import "errors"

var (
	ErrNoSnapshot       = errors.New("no listing to select from")
	ErrInvalidSelection = errors.New("selection out of range")
	ErrNegativePoints   = errors.New("points cannot go below zero")
	ErrPointsOutOfRange = errors.New("points out of range")
)
