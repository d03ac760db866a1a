package ledger

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// MaxAwardPoints bounds a single !select adjustment in either direction.
const MaxAwardPoints = 1_000_000

// AwardInput is the parsed form of "!select <number> <points>".
type AwardInput struct {
	Selection int // 1-based index into the caller's last listing
	Points    int // may be negative to deduct
}

func (in AwardInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Selection, validation.Required, validation.Min(1)),
	)
}
