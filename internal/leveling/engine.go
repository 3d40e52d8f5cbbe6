package leveling

import (
	"context"
	"math"
	"math/rand"

	"yuno/internal/storage"
)

const (
	gainMin = 15
	gainMax = 26
)

// Rand is the random source used for XP gains. Injectable so tests can pin
// the draw.
type Rand interface {
	Intn(n int) int
}

type defaultRand struct{}

func (defaultRand) Intn(n int) int { return rand.Intn(n) }

type Engine struct {
	store *storage.Store
	rand  Rand
}

// LevelUp is emitted when an award pushes a user past a level boundary.
// The caller renders and sends the announcement.
type LevelUp struct {
	GuildID string
	UserID  string
	Level   int
}

func NewEngine(store *storage.Store) *Engine {
	return &Engine{store: store, rand: defaultRand{}}
}

func (e *Engine) WithRand(r Rand) {
	e.rand = r
}

// Level computes the tier for an experience total: floor(sqrt(xp/100)).
func Level(xp int64) int {
	if xp <= 0 {
		return 0
	}
	return int(math.Sqrt(float64(xp) / 100.0))
}

// Award grants a uniform random gain in [15,26) and reconciles the stored
// level. The level only ever ratchets upward; a LevelUp is returned when it
// does, nil otherwise.
func (e *Engine) Award(ctx context.Context, userID, guildID string) (*LevelUp, error) {
	gain := int64(gainMin + e.rand.Intn(gainMax-gainMin))
	if err := e.store.AddXP(ctx, userID, guildID, gain); err != nil {
		return nil, err
	}

	userXP, err := e.store.GetUserXP(ctx, userID, guildID)
	if err != nil {
		return nil, err
	}

	newLevel := Level(userXP.XP)
	if newLevel <= userXP.Level {
		return nil, nil
	}
	if err := e.store.SetLevel(ctx, userID, guildID, newLevel); err != nil {
		return nil, err
	}
	return &LevelUp{GuildID: guildID, UserID: userID, Level: newLevel}, nil
}

// NextLevelXP is the total experience required to reach the level after
// current: (current+1)^2 * 100.
func NextLevelXP(current int) int64 {
	next := int64(current + 1)
	return next * next * 100
}
