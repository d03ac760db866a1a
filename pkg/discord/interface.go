package discord

import (
	"context"
	"io"
)

// IDiscord is the subset of the Discord API the bot relies on.
// Implementations are safe for concurrent use.
type IDiscord interface {
	// SendMessage posts text to a channel and returns the ID of the first message sent.
	SendMessage(ctx context.Context, channelID, text string) (string, error)

	// Reply posts text to a channel as a reply to messageID.
	Reply(ctx context.Context, channelID, messageID, text string) (string, error)

	// SendDM opens (or reuses) a direct-message channel with userID and posts text.
	SendDM(ctx context.Context, userID, text string) (string, error)

	// SendDMFile sends a file to userID as a direct-message attachment.
	SendDMFile(ctx context.Context, userID string, file File) error

	// DeleteMessage removes a message.
	DeleteMessage(ctx context.Context, channelID, messageID string) error

	// ChannelMessages returns up to limit messages older than beforeID (newest first).
	ChannelMessages(ctx context.Context, channelID, beforeID string, limit int) ([]Message, error)

	// BotUserID returns the bot's own user ID.
	BotUserID(ctx context.Context) (string, error)

	// DownloadAttachment streams the content at an attachment URL into w.
	DownloadAttachment(ctx context.Context, url string, w io.Writer) error
}
