package bot

import (
	"context"
	"errors"
	"time"

	"yuno/internal/command"

	"github.com/bwmarrin/discordgo"
)

// sessionGateway adapts the live discordgo session to the handler-facing
// Gateway interface. Permission rejections from the platform are surfaced
// as command permission errors so the router can render the configured
// template.
type sessionGateway struct {
	session *discordgo.Session
}

func (g *sessionGateway) SendText(ctx context.Context, channelID, text string) error {
	_, err := g.session.ChannelMessageSend(channelID, text)
	return classify(err)
}

func (g *sessionGateway) DeleteMessages(ctx context.Context, channelID string, messageIDs []string) error {
	if len(messageIDs) == 1 {
		return classify(g.session.ChannelMessageDelete(channelID, messageIDs[0]))
	}
	return classify(g.session.ChannelMessagesBulkDelete(channelID, messageIDs))
}

func (g *sessionGateway) BanUser(ctx context.Context, guildID, userID, reason string) error {
	return classify(g.session.GuildBanCreateWithReason(guildID, userID, reason, 0))
}

func (g *sessionGateway) KickUser(ctx context.Context, guildID, userID, reason string) error {
	return classify(g.session.GuildMemberDeleteWithReason(guildID, userID, reason))
}

func (g *sessionGateway) UnbanUser(ctx context.Context, guildID, userID string) error {
	return classify(g.session.GuildBanDelete(guildID, userID))
}

func (g *sessionGateway) TimeoutUser(ctx context.Context, guildID, userID string, duration time.Duration) error {
	until := time.Now().Add(duration)
	return classify(g.session.GuildMemberTimeout(guildID, userID, &until))
}

func (g *sessionGateway) FetchRecentMessages(ctx context.Context, channelID string, limit int) ([]command.ChannelMessage, error) {
	messages, err := g.session.ChannelMessages(channelID, limit, "", "", "")
	if err != nil {
		return nil, classify(err)
	}
	result := make([]command.ChannelMessage, 0, len(messages))
	for _, msg := range messages {
		result = append(result, command.ChannelMessage{ID: msg.ID, Timestamp: msg.Timestamp})
	}
	return result, nil
}

func classify(err error) error {
	if err == nil {
		return nil
	}
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Message != nil && restErr.Message.Code == discordgo.ErrCodeMissingPermissions {
		return &command.Error{Kind: command.KindPermission, Err: err}
	}
	return err
}
