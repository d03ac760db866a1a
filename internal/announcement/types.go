package announcement

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// BroadcastInput is one !all invocation.
type BroadcastInput struct {
	ChannelID string
	MessageID string // command message to delete, may be empty
	Text      string
}

func (in BroadcastInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.ChannelID, validation.Required),
		validation.Field(&in.Text, validation.Required),
	)
}
