package model

import "time"

// Event is one inbound chat message routed through the bot.
type Event struct {
	TraceID     string       // Correlates log lines for one invocation
	MessageID   string       // Platform message ID, used for cleanup deletes
	ChannelID   string       // Channel the message arrived on
	GuildID     string       // Empty for direct messages
	AuthorID    string       // Platform user ID
	AuthorName  string       // Display name shown in notifications
	IsDM        bool         // True when the message came from a direct-message channel
	Text        string       // Raw message content
	Attachments []Attachment // Files attached to the message, in upload order
	ReceivedAt  time.Time    // Local receipt time
}

// Scope returns the session key for this event's author in this channel.
func (e Event) Scope() Scope {
	return Scope{UserID: e.AuthorID, ChannelID: e.ChannelID}
}

// Attachment is a file attached to a chat message. It only lives for the
// duration of a transfer into storage.
type Attachment struct {
	Name      string
	MimeType  string
	URL       string
	SizeBytes int
}
