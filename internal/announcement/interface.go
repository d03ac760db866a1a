package announcement

import (
	"context"
)

// UseCase covers channel-wide announcements and DM cleanup.
type UseCase interface {
	// Broadcast removes the command message and posts text to the channel with an @everyone mention.
	Broadcast(ctx context.Context, in BroadcastInput) error

	// PurgeOwnMessages deletes every message the bot authored in channelID and
	// returns how many were removed.
	PurgeOwnMessages(ctx context.Context, channelID string) (int, error)
}
