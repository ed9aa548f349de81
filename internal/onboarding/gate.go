package onboarding

import (
	"github.com/ytget/storefront/internal/logger"
	"github.com/ytget/storefront/internal/model"
)

// FlagStore persists the onboarding flag. config.Settings implements it.
type FlagStore interface {
	GetOnboardingShown() bool
	SetOnboardingShown(shown bool)
}

// Gate picks the start destination from the persisted onboarding flag.
type Gate struct {
	flags FlagStore
	log   logger.Logger
	read  bool
	shown bool
}

// NewGate creates a gate reading from flags.
func NewGate(flags FlagStore, log logger.Logger) *Gate {
	return &Gate{flags: flags, log: logger.OrNoop(log)}
}

// ShouldShow reports whether the onboarding flow must be mounted. The flag is
// read on the first call only; later writes do not change the answer.
func (g *Gate) ShouldShow() bool {
	if !g.read {
		g.shown = g.flags.GetOnboardingShown()
		g.read = true
		g.log.Debug("onboarding_shown=%v", g.shown)
	}
	return !g.shown
}

// StartRoute returns onboarding for a first launch and the feed otherwise.
func (g *Gate) StartRoute() model.Route {
	if g.ShouldShow() {
		return model.RouteOnboarding
	}
	return model.RouteFeed
}
