package command

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Source tells the router which argument-binding form an input carries.
type Source int

const (
	// SourceInteraction inputs carry named, typed options.
	SourceInteraction Source = iota
	// SourceMessage inputs carry whitespace tokens from a prefix command.
	SourceMessage
)

// Option is one named argument from a structured interaction, already typed
// by the transport.
type Option struct {
	Str string
	Int int64
}

// Input is a transport-agnostic command invocation. Exactly one of Options
// or Tokens is populated, depending on Source; Rest holds the unsplit
// free-text remainder for commands that consume it whole.
type Input struct {
	Source    Source
	Command   string
	GuildID   string
	ChannelID string
	InvokerID string
	Options   map[string]Option
	Tokens    []string
	Rest      string
}

// ParseUserRef resolves a user reference token: <@id> and <@!id> mention
// brackets, or a bare decimal id. Returns false for anything else.
func ParseUserRef(token string) (uint64, bool) {
	if strings.HasPrefix(token, "<@") && strings.HasSuffix(token, ">") {
		inner := strings.TrimPrefix(token[2:len(token)-1], "!")
		if id, err := strconv.ParseUint(inner, 10, 64); err == nil {
			return id, true
		}
		return 0, false
	}
	if id, err := strconv.ParseUint(token, 10, 64); err == nil {
		return id, true
	}
	return 0, false
}

func userRefString(token string) (string, bool) {
	id, ok := ParseUserRef(token)
	if !ok {
		return "", false
	}
	return strconv.FormatUint(id, 10), true
}

func prefixTooLong(prefix string) bool {
	return utf8.RuneCountInString(prefix) > 5
}

// token returns the i-th free-text token, or "".
func (in *Input) token(i int) string {
	if i < len(in.Tokens) {
		return in.Tokens[i]
	}
	return ""
}

// rest joins the free-text tokens from index i onward with single spaces.
func (in *Input) rest(i int) string {
	if i >= len(in.Tokens) {
		return ""
	}
	return strings.Join(in.Tokens[i:], " ")
}

type targetArgs struct {
	TargetID string
	Reason   string
}

// bindTarget extracts the required user reference plus optional trailing
// reason, identically for both forms. verb appears in the validation text.
func bindTarget(in *Input, verb string) (targetArgs, error) {
	if in.Source == SourceInteraction {
		opt, ok := in.Options["user"]
		if !ok || opt.Str == "" {
			return targetArgs{}, validationf("💔 Please specify a user to %s~", verb)
		}
		return targetArgs{TargetID: opt.Str, Reason: in.Options["reason"].Str}, nil
	}

	token := in.token(0)
	if token == "" {
		return targetArgs{}, validationf("💔 Please specify a user to %s~", verb)
	}
	id, ok := userRefString(token)
	if !ok {
		return targetArgs{}, validationf("💔 I couldn't find that user~")
	}
	return targetArgs{TargetID: id, Reason: in.rest(1)}, nil
}

// bindOptionalTarget resolves an optional user reference, falling back to
// the invoker. In free-text form an unparseable token also falls back, which
// matches the xp/mod-stats behavior this bot has always had.
func bindOptionalTarget(in *Input) string {
	if in.Source == SourceInteraction {
		if opt, ok := in.Options["user"]; ok && opt.Str != "" {
			return opt.Str
		}
		return in.InvokerID
	}
	if token := in.token(0); token != "" {
		if id, ok := userRefString(token); ok {
			return id
		}
	}
	return in.InvokerID
}

type timeoutArgs struct {
	TargetID string
	Minutes  int64
	Reason   string
}

func bindTimeout(in *Input) (timeoutArgs, error) {
	if in.Source == SourceInteraction {
		opt, ok := in.Options["user"]
		if !ok || opt.Str == "" {
			return timeoutArgs{}, validationf("💔 Please specify a user to timeout~")
		}
		minutes := in.Options["minutes"].Int
		if minutes <= 0 {
			return timeoutArgs{}, validationf("💔 Invalid duration~")
		}
		return timeoutArgs{TargetID: opt.Str, Minutes: minutes, Reason: in.Options["reason"].Str}, nil
	}

	if len(in.Tokens) < 2 {
		return timeoutArgs{}, validationf("💔 Usage: timeout <user> <minutes> [reason]~")
	}
	id, ok := userRefString(in.token(0))
	if !ok {
		return timeoutArgs{}, validationf("💔 I couldn't find that user~")
	}
	minutes, err := strconv.ParseInt(in.token(1), 10, 64)
	if err != nil || minutes <= 0 {
		return timeoutArgs{}, validationf("💔 Invalid duration~")
	}
	return timeoutArgs{TargetID: id, Minutes: minutes, Reason: in.rest(2)}, nil
}

func bindUnban(in *Input) (targetArgs, error) {
	if in.Source == SourceInteraction {
		raw := in.Options["user_id"].Str
		if _, err := strconv.ParseUint(raw, 10, 64); err != nil {
			return targetArgs{}, validationf("💔 Please specify a valid user ID to unban~")
		}
		return targetArgs{TargetID: raw, Reason: in.Options["reason"].Str}, nil
	}

	raw := in.token(0)
	if _, err := strconv.ParseUint(raw, 10, 64); err != nil {
		return targetArgs{}, validationf("💔 Please specify a valid user ID to unban~")
	}
	return targetArgs{TargetID: raw, Reason: in.rest(1)}, nil
}

const (
	cleanDefault = 10
	cleanMax     = 100
)

func bindCleanCount(in *Input) int {
	count := cleanDefault
	if in.Source == SourceInteraction {
		if opt, ok := in.Options["count"]; ok && opt.Int > 0 {
			count = int(opt.Int)
		}
	} else if token := in.token(0); token != "" {
		if parsed, err := strconv.Atoi(token); err == nil && parsed > 0 {
			count = parsed
		}
	}
	if count > cleanMax {
		count = cleanMax
	}
	return count
}
