package command

import (
	"context"
	"time"
)

// ChannelMessage is the slice of a platform message the purge logic needs.
type ChannelMessage struct {
	ID        string
	Timestamp time.Time
}

// Gateway is the messaging collaborator the handlers act through. The bot
// layer adapts the real session; tests use a fake. Implementations should
// return an *Error with KindPermission when the platform rejects an action
// for missing permissions.
type Gateway interface {
	SendText(ctx context.Context, channelID, text string) error
	DeleteMessages(ctx context.Context, channelID string, messageIDs []string) error
	BanUser(ctx context.Context, guildID, userID, reason string) error
	KickUser(ctx context.Context, guildID, userID, reason string) error
	UnbanUser(ctx context.Context, guildID, userID string) error
	TimeoutUser(ctx context.Context, guildID, userID string, duration time.Duration) error
	FetchRecentMessages(ctx context.Context, channelID string, limit int) ([]ChannelMessage, error)
}
