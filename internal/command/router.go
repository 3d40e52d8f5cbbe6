package command

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"yuno/internal/config"
	"yuno/internal/format"
	"yuno/internal/leveling"
	"yuno/internal/modlog"
	"yuno/internal/storage"

	"go.uber.org/zap"
)

// Reply is what a handler hands back to the transport layer. DeleteAfter is
// the purge-confirmation pause; zero means leave the reply alone.
type Reply struct {
	Text        string
	Ephemeral   bool
	DeleteAfter time.Duration
}

// Rand is the random source for the 8-ball draw, injectable for tests.
type Rand interface {
	Intn(n int) int
}

type defaultRand struct{}

func (defaultRand) Intn(n int) int { return rand.Intn(n) }

type handlerFunc func(ctx context.Context, in *Input) (Reply, error)

type commandSpec struct {
	name      string
	aliases   []string
	guildOnly bool
	run       handlerFunc
}

// Router maps command names to handlers through a table built once at
// construction. Both binding forms land in the same handler.
type Router struct {
	cfg      config.Config
	store    *storage.Store
	leveling *leveling.Engine
	recorder *modlog.Recorder
	gateway  Gateway
	logger   *zap.Logger
	rand     Rand
	now      func() time.Time
	table    map[string]*commandSpec
}

func NewRouter(cfg config.Config, store *storage.Store, levelEngine *leveling.Engine, recorder *modlog.Recorder, gateway Gateway, logger *zap.Logger) *Router {
	r := &Router{
		cfg:      cfg,
		store:    store,
		leveling: levelEngine,
		recorder: recorder,
		gateway:  gateway,
		logger:   logger,
		rand:     defaultRand{},
		now:      time.Now,
		table:    make(map[string]*commandSpec),
	}

	specs := []*commandSpec{
		{name: "ping", run: r.handlePing},
		{name: "help", run: r.handleHelp},
		{name: "source", run: r.handleSource},
		{name: "prefix", guildOnly: true, run: r.handlePrefix},
		{name: "ban", guildOnly: true, run: r.handleBan},
		{name: "kick", guildOnly: true, run: r.handleKick},
		{name: "unban", guildOnly: true, run: r.handleUnban},
		{name: "timeout", guildOnly: true, run: r.handleTimeout},
		{name: "clean", guildOnly: true, run: r.handleClean},
		{name: "mod-stats", aliases: []string{"modstats"}, guildOnly: true, run: r.handleModStats},
		{name: "xp", aliases: []string{"level", "rank"}, guildOnly: true, run: r.handleXP},
		{name: "leaderboard", aliases: []string{"lb", "top"}, guildOnly: true, run: r.handleLeaderboard},
		{name: "8ball", run: r.handleEightBall},
	}
	for _, spec := range specs {
		r.table[spec.name] = spec
		for _, alias := range spec.aliases {
			r.table[alias] = spec
		}
	}
	return r
}

// WithRand swaps the 8-ball random source.
func (r *Router) WithRand(rnd Rand) {
	r.rand = rnd
}

// WithClock pins "now" for the clean cutoff and mod-action timestamps.
func (r *Router) WithClock(now func() time.Time) {
	r.now = now
}

// Names lists the canonical command names, for registration.
func (r *Router) Names() []string {
	names := make([]string, 0, len(r.table))
	seen := make(map[string]bool)
	for _, spec := range r.table {
		if seen[spec.name] {
			continue
		}
		seen[spec.name] = true
		names = append(names, spec.name)
	}
	return names
}

// Dispatch routes one invocation and folds every failure into a user-facing
// reply. Unknown names answer with an error in both forms.
func (r *Router) Dispatch(ctx context.Context, in *Input) Reply {
	spec, ok := r.table[in.Command]
	if !ok {
		return Reply{Text: "💔 Unknown command~", Ephemeral: true}
	}
	if spec.guildOnly && in.GuildID == "" {
		return Reply{Text: "💔 This command can only be used in a server~", Ephemeral: true}
	}

	reply, err := spec.run(ctx, in)
	if err != nil {
		return r.renderError(in, err)
	}
	return reply
}

func (r *Router) renderError(in *Input, err error) Reply {
	var cmdErr *Error
	if !errors.As(err, &cmdErr) {
		cmdErr = storageErr(err)
	}

	switch cmdErr.Kind {
	case KindValidation:
		return Reply{Text: cmdErr.Message, Ephemeral: true}
	case KindPermission:
		return Reply{Text: format.InsufficientPerms(r.cfg.InsufficientPermsMsg, in.InvokerID), Ephemeral: true}
	case KindTransport:
		r.logger.Warn("gateway action failed",
			zap.String("command", in.Command),
			zap.String("guild_id", in.GuildID),
			zap.Error(cmdErr.Err))
		return Reply{Text: cmdErr.Message, Ephemeral: true}
	default:
		r.logger.Error("command failed",
			zap.String("command", in.Command),
			zap.String("guild_id", in.GuildID),
			zap.Error(cmdErr.Err))
		return Reply{Text: cmdErr.Message, Ephemeral: true}
	}
}
