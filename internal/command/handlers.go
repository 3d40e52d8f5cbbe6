package command

import (
	"context"
	"errors"
	"time"

	"yuno/internal/format"
	"yuno/internal/modlog"
)

const defaultReason = "No reason provided"

// Messages older than this cannot be bulk-deleted by the platform.
const cleanMaxAge = 14 * 24 * time.Hour

func (r *Router) handlePing(ctx context.Context, in *Input) (Reply, error) {
	return Reply{Text: format.Pong()}, nil
}

func (r *Router) handleHelp(ctx context.Context, in *Input) (Reply, error) {
	prefix := ""
	if in.Source == SourceMessage && in.GuildID != "" {
		stored, err := r.store.GetPrefix(ctx, in.GuildID, r.cfg.DefaultPrefix)
		if err != nil {
			return Reply{}, storageErr(err)
		}
		prefix = stored
	}
	return Reply{Text: format.Help(prefix)}, nil
}

func (r *Router) handleSource(ctx context.Context, in *Input) (Reply, error) {
	return Reply{Text: format.Source()}, nil
}

func (r *Router) handlePrefix(ctx context.Context, in *Input) (Reply, error) {
	var prefix string
	if in.Source == SourceInteraction {
		prefix = in.Options["prefix"].Str
		if prefix == "" || prefixTooLong(prefix) {
			return Reply{}, validationf("💔 Prefix too long! Max 5 characters~")
		}
	} else {
		prefix = in.token(0)
		if prefix == "" {
			current, err := r.store.GetPrefix(ctx, in.GuildID, r.cfg.DefaultPrefix)
			if err != nil {
				return Reply{}, storageErr(err)
			}
			return Reply{Text: format.PrefixCurrent(current)}, nil
		}
		if prefixTooLong(prefix) {
			return Reply{}, validationf("💔 Prefix too long! Max 5 characters~")
		}
	}

	if err := r.store.SetPrefix(ctx, in.GuildID, prefix); err != nil {
		return Reply{}, storageErr(err)
	}
	return Reply{Text: format.PrefixUpdated(prefix)}, nil
}

func (r *Router) handleBan(ctx context.Context, in *Input) (Reply, error) {
	args, err := bindTarget(in, "ban")
	if err != nil {
		return Reply{}, err
	}
	reason := args.Reason
	if reason == "" {
		reason = defaultReason
	}

	if err := r.gateway.BanUser(ctx, in.GuildID, args.TargetID, reason); err != nil {
		return Reply{}, wrapGateway(err, "ban")
	}
	if err := r.recorder.Record(ctx, in.GuildID, in.InvokerID, args.TargetID, modlog.ActionBan, reason, r.now()); err != nil {
		return Reply{}, storageErr(err)
	}
	return Reply{Text: format.Banned(args.TargetID, in.InvokerID, reason)}, nil
}

func (r *Router) handleKick(ctx context.Context, in *Input) (Reply, error) {
	args, err := bindTarget(in, "kick")
	if err != nil {
		return Reply{}, err
	}
	reason := args.Reason
	if reason == "" {
		reason = defaultReason
	}

	if err := r.gateway.KickUser(ctx, in.GuildID, args.TargetID, reason); err != nil {
		return Reply{}, wrapGateway(err, "kick")
	}
	if err := r.recorder.Record(ctx, in.GuildID, in.InvokerID, args.TargetID, modlog.ActionKick, reason, r.now()); err != nil {
		return Reply{}, storageErr(err)
	}
	return Reply{Text: format.Kicked(args.TargetID, in.InvokerID, reason)}, nil
}

func (r *Router) handleUnban(ctx context.Context, in *Input) (Reply, error) {
	args, err := bindUnban(in)
	if err != nil {
		return Reply{}, err
	}
	reason := args.Reason
	if reason == "" {
		reason = defaultReason
	}

	if err := r.gateway.UnbanUser(ctx, in.GuildID, args.TargetID); err != nil {
		return Reply{}, wrapGateway(err, "unban")
	}
	if err := r.recorder.Record(ctx, in.GuildID, in.InvokerID, args.TargetID, modlog.ActionUnban, reason, r.now()); err != nil {
		return Reply{}, storageErr(err)
	}
	return Reply{Text: format.Unbanned(args.TargetID, in.InvokerID, reason)}, nil
}

func (r *Router) handleTimeout(ctx context.Context, in *Input) (Reply, error) {
	args, err := bindTimeout(in)
	if err != nil {
		return Reply{}, err
	}
	reason := args.Reason
	if reason == "" {
		reason = defaultReason
	}

	duration := time.Duration(args.Minutes) * time.Minute
	if err := r.gateway.TimeoutUser(ctx, in.GuildID, args.TargetID, duration); err != nil {
		return Reply{}, wrapGateway(err, "timeout")
	}
	logged := format.TimeoutReason(reason, args.Minutes)
	if err := r.recorder.Record(ctx, in.GuildID, in.InvokerID, args.TargetID, modlog.ActionTimeout, logged, r.now()); err != nil {
		return Reply{}, storageErr(err)
	}
	return Reply{Text: format.TimedOut(args.TargetID, in.InvokerID, args.Minutes, reason)}, nil
}

func (r *Router) handleClean(ctx context.Context, in *Input) (Reply, error) {
	count := bindCleanCount(in)

	// One extra so the invoking message is part of the sweep in the
	// free-text form.
	messages, err := r.gateway.FetchRecentMessages(ctx, in.ChannelID, count+1)
	if err != nil {
		return Reply{}, wrapGateway(err, "clean")
	}

	cutoff := r.now().Add(-cleanMaxAge)
	var ids []string
	for _, msg := range messages {
		if msg.Timestamp.After(cutoff) {
			ids = append(ids, msg.ID)
		}
	}
	if len(ids) > 0 {
		if err := r.gateway.DeleteMessages(ctx, in.ChannelID, ids); err != nil {
			return Reply{}, wrapGateway(err, "clean")
		}
	}

	if in.Source == SourceInteraction {
		deleted := len(ids) - 1
		if deleted < 0 {
			deleted = 0
		}
		return Reply{Text: format.Cleaned(deleted), Ephemeral: true}, nil
	}
	return Reply{Text: format.Cleaned(len(ids)), DeleteAfter: 3 * time.Second}, nil
}

func (r *Router) handleModStats(ctx context.Context, in *Input) (Reply, error) {
	targetID := bindOptionalTarget(in)
	stats, err := r.recorder.StatsFor(ctx, in.GuildID, targetID)
	if err != nil {
		return Reply{}, storageErr(err)
	}
	return Reply{Text: format.ModStats(targetID, stats)}, nil
}

func (r *Router) handleXP(ctx context.Context, in *Input) (Reply, error) {
	targetID := bindOptionalTarget(in)
	userXP, err := r.store.GetUserXP(ctx, targetID, in.GuildID)
	if err != nil {
		return Reply{}, storageErr(err)
	}
	return Reply{Text: format.XPStats(targetID, userXP)}, nil
}

func (r *Router) handleLeaderboard(ctx context.Context, in *Input) (Reply, error) {
	entries, err := r.store.Leaderboard(ctx, in.GuildID, 10)
	if err != nil {
		return Reply{}, storageErr(err)
	}
	return Reply{Text: format.Leaderboard(entries)}, nil
}

func (r *Router) handleEightBall(ctx context.Context, in *Input) (Reply, error) {
	var question string
	if in.Source == SourceInteraction {
		question = in.Options["question"].Str
		if question == "" {
			question = "..."
		}
	} else {
		question = in.Rest
		if question == "" {
			return Reply{}, validationf("💔 You need to ask a question~ 🎱")
		}
	}
	return Reply{Text: format.EightBall(question, r.rand.Intn(format.EightBallPoolSize))}, nil
}

// wrapGateway keeps permission rejections intact and folds everything else
// into a transport failure carrying the collaborator's text.
func wrapGateway(err error, verb string) error {
	var cmdErr *Error
	if errors.As(err, &cmdErr) && cmdErr.Kind == KindPermission {
		return cmdErr
	}
	return transportf(err, "💔 Failed to %s: %v", verb, err)
}
