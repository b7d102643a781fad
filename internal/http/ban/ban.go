package ban

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Store keeps strike counters and bans per client. Implementations must be
// safe for concurrent use.
type Store interface {
	// Strike adds one strike for target and returns the count inside the current window.
	Strike(ctx context.Context, target string, window time.Duration) (int, error)
	Ban(ctx context.Context, target string, d time.Duration) error
	IsBanned(ctx context.Context, target string) (bool, error)
}

// Guard turns repeated rate-limit violations into temporary bans.
type Guard struct {
	store      Store
	maxStrikes int
	duration   time.Duration
}

func NewGuard(store Store, maxStrikes int, duration time.Duration) *Guard {
	return &Guard{store: store, maxStrikes: maxStrikes, duration: duration}
}

// Banned reports whether target is currently banned. Store failures let the
// request through.
func (g *Guard) Banned(ctx context.Context, target string) bool {
	banned, err := g.store.IsBanned(ctx, target)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ban").Msg("ban lookup failed")
		return false
	}
	return banned
}

// RecordStrike counts a violation on route and bans target once the strike
// limit is reached. It reports whether the client is now banned.
func (g *Guard) RecordStrike(ctx context.Context, target, route string) bool {
	strikes, err := g.store.Strike(ctx, target, g.duration)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ban").Msg("strike not recorded")
		return false
	}
	if g.maxStrikes <= 0 || strikes < g.maxStrikes {
		return false
	}

	if err := g.store.Ban(ctx, target, g.duration); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "ban").Msg("ban not stored")
		return false
	}

	log.Ctx(ctx).Warn().
		Str("component", "ban").
		Str("target", target).
		Str("route", route).
		Int("strikes", strikes).
		Dur("duration", g.duration).
		Msg("client banned")
	return true
}
