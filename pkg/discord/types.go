package discord

import (
	"errors"
	"io"
)

// MaxMessageLength is Discord's hard limit on message content.
const MaxMessageLength = 2000

var ErrAttachmentFetch = errors.New("attachment fetch failed")

// Message is a simplified Discord message.
type Message struct {
	ID        string
	ChannelID string
	AuthorID  string
	Content   string
}

// File is an outgoing attachment.
type File struct {
	Name        string
	ContentType string
	Reader      io.Reader
}
