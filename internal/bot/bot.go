package bot

import (
	"context"
	"strings"
	"time"

	"yuno/internal/command"
	"yuno/internal/config"
	"yuno/internal/format"
	"yuno/internal/leveling"
	"yuno/internal/modlog"
	"yuno/internal/storage"

	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

type Bot struct {
	cfg      config.Config
	logger   *zap.Logger
	store    *storage.Store
	leveling *leveling.Engine
	router   *command.Router
	session  *discordgo.Session
}

func New(cfg config.Config, logger *zap.Logger, store *storage.Store, levelEngine *leveling.Engine, recorder *modlog.Recorder) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, err
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsMessageContent |
		discordgo.IntentsDirectMessages

	b := &Bot{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		leveling: levelEngine,
		session:  session,
	}
	b.router = command.NewRouter(cfg, store, levelEngine, recorder, &sessionGateway{session: session}, logger)

	return b, nil
}

func (b *Bot) Start() error {
	b.session.AddHandler(b.onReady)
	b.session.AddHandler(b.onMessageCreate)
	b.session.AddHandler(b.onInteractionCreate)

	if err := b.session.Open(); err != nil {
		return err
	}

	if err := b.registerCommands(); err != nil {
		return err
	}

	return nil
}

func (b *Bot) Close(ctx context.Context) {
	_ = ctx
	if b.session != nil {
		_ = b.session.Close()
	}
}

func (b *Bot) onReady(session *discordgo.Session, event *discordgo.Ready) {
	b.logger.Info("discord ready", zap.String("user", session.State.User.Username))
	_ = session.UpdateWatchStatus(0, "over you~ 💕")
}

func (b *Bot) onMessageCreate(session *discordgo.Session, msg *discordgo.MessageCreate) {
	if msg.Author == nil || msg.Author.Bot {
		return
	}

	ctx := context.Background()

	if msg.GuildID == "" {
		if _, err := session.ChannelMessageSend(msg.ChannelID, b.cfg.DMMessage); err != nil {
			b.logger.Warn("dm reply failed", zap.Error(err))
		}
		return
	}

	prefix, err := b.store.GetPrefix(ctx, msg.GuildID, b.cfg.DefaultPrefix)
	if err != nil {
		b.logger.Warn("prefix lookup failed", zap.String("guild_id", msg.GuildID), zap.Error(err))
		prefix = b.cfg.DefaultPrefix
	}

	if strings.HasPrefix(msg.Content, prefix) {
		b.handlePrefixCommand(ctx, session, msg, strings.TrimSpace(msg.Content[len(prefix):]))
		return
	}

	b.awardXP(ctx, session, msg)
}

func (b *Bot) handlePrefixCommand(ctx context.Context, session *discordgo.Session, msg *discordgo.MessageCreate, content string) {
	fields := strings.Fields(content)
	if len(fields) == 0 {
		return
	}

	rest := ""
	if idx := strings.IndexAny(content, " \t"); idx >= 0 {
		rest = strings.TrimSpace(content[idx+1:])
	}

	in := &command.Input{
		Source:    command.SourceMessage,
		Command:   strings.ToLower(fields[0]),
		GuildID:   msg.GuildID,
		ChannelID: msg.ChannelID,
		InvokerID: msg.Author.ID,
		Tokens:    fields[1:],
		Rest:      rest,
	}

	reply := b.router.Dispatch(ctx, in)
	if reply.Text == "" {
		return
	}

	sent, err := session.ChannelMessageSend(msg.ChannelID, reply.Text)
	if err != nil {
		b.logger.Warn("reply failed", zap.String("command", in.Command), zap.Error(err))
		return
	}
	if reply.DeleteAfter > 0 && sent != nil {
		channelID := msg.ChannelID
		messageID := sent.ID
		time.AfterFunc(reply.DeleteAfter, func() {
			_ = b.session.ChannelMessageDelete(channelID, messageID)
		})
	}
}

// awardXP runs for every non-command guild message from a human, when the
// guild has leveling enabled.
func (b *Bot) awardXP(ctx context.Context, session *discordgo.Session, msg *discordgo.MessageCreate) {
	settings, err := b.store.GetGuildSettings(ctx, msg.GuildID, b.cfg.DefaultPrefix)
	if err != nil {
		b.logger.Warn("settings lookup failed", zap.String("guild_id", msg.GuildID), zap.Error(err))
		return
	}
	if !settings.LevelingEnabled {
		return
	}

	levelUp, err := b.leveling.Award(ctx, msg.Author.ID, msg.GuildID)
	if err != nil {
		b.logger.Warn("xp award failed", zap.String("guild_id", msg.GuildID), zap.String("user_id", msg.Author.ID), zap.Error(err))
		return
	}
	if levelUp == nil {
		return
	}
	if _, err := session.ChannelMessageSend(msg.ChannelID, format.LevelUp(levelUp.UserID, levelUp.Level)); err != nil {
		b.logger.Warn("level-up announce failed", zap.Error(err))
	}
}

func (b *Bot) onInteractionCreate(session *discordgo.Session, interaction *discordgo.InteractionCreate) {
	if interaction.Type != discordgo.InteractionApplicationCommand {
		return
	}

	ctx := context.Background()
	data := interaction.ApplicationCommandData()

	options := make(map[string]command.Option, len(data.Options))
	for _, opt := range data.Options {
		switch opt.Type {
		case discordgo.ApplicationCommandOptionUser:
			options[opt.Name] = command.Option{Str: opt.UserValue(nil).ID}
		case discordgo.ApplicationCommandOptionInteger:
			options[opt.Name] = command.Option{Int: opt.IntValue()}
		default:
			options[opt.Name] = command.Option{Str: opt.StringValue()}
		}
	}

	invokerID := ""
	if interaction.Member != nil && interaction.Member.User != nil {
		invokerID = interaction.Member.User.ID
	} else if interaction.User != nil {
		invokerID = interaction.User.ID
	}

	in := &command.Input{
		Source:    command.SourceInteraction,
		Command:   data.Name,
		GuildID:   interaction.GuildID,
		ChannelID: interaction.ChannelID,
		InvokerID: invokerID,
		Options:   options,
	}

	reply := b.router.Dispatch(ctx, in)

	response := &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{Content: reply.Text},
	}
	if reply.Ephemeral {
		response.Data.Flags = discordgo.MessageFlagsEphemeral
	}
	if err := session.InteractionRespond(interaction.Interaction, response); err != nil {
		b.logger.Warn("interaction respond failed", zap.String("command", data.Name), zap.Error(err))
	}
}
