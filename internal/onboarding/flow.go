package onboarding

import (
	"fmt"

	"github.com/ytget/storefront/internal/guard"
	"github.com/ytget/storefront/internal/logger"
	"github.com/ytget/storefront/internal/model"
	"github.com/ytget/storefront/internal/nav"
)

// MarkPolicy says when a mounted flow writes the onboarding flag.
type MarkPolicy int

const (
	// MarkOnMount writes the flag as soon as the flow is mounted
	MarkOnMount MarkPolicy = iota
	// MarkOnExit writes the flag when the user skips or finishes
	MarkOnExit
)

// ExitOptions removes onboarding from the back stack while opening the feed.
func ExitOptions() nav.Options {
	return nav.Options{PopUpTo: model.RouteOnboarding, Inclusive: true}
}

// Options configures a Flow. The zero value is usable.
type Options struct {
	Animator Animator
	Mark     MarkPolicy
	Guard    guard.Policy
	Log      logger.Logger
}

// Flow is one mount of the onboarding pager.
type Flow struct {
	pages   []model.OnboardingPage
	pager   *Pager
	nav     *nav.Controller
	flags   FlagStore
	mark    MarkPolicy
	log     logger.Logger
	mounted bool
	marked  bool
	exited  bool
	onExit  []func()
}

// NewFlow creates a flow over pages that navigates with navCtl and persists
// the flag through flags.
func NewFlow(pages []model.OnboardingPage, navCtl *nav.Controller, flags FlagStore, opts Options) (*Flow, error) {
	if navCtl == nil || flags == nil {
		return nil, fmt.Errorf("onboarding flow needs a navigation controller and a flag store")
	}
	log := logger.OrNoop(opts.Log)
	pager, err := NewPager(len(pages), opts.Animator, opts.Guard, log)
	if err != nil {
		return nil, fmt.Errorf("onboarding flow: %w", err)
	}
	return &Flow{
		pages: pages,
		pager: pager,
		nav:   navCtl,
		flags: flags,
		mark:  opts.Mark,
		log:   log,
	}, nil
}

// Mount is called when the onboarding screen appears.
func (f *Flow) Mount() {
	if f.mounted {
		return
	}
	f.mounted = true
	f.marked = false
	f.log.Debug("mounted on page %d", f.pager.Current())
	if f.mark == MarkOnMount {
		f.markShown()
	}
}

// Unmount is called when the onboarding screen goes away. Any page transition
// still running is dropped.
func (f *Flow) Unmount() {
	if !f.mounted {
		return
	}
	f.mounted = false
	f.pager.Cancel()
}

// Pages returns the pages in display order.
func (f *Flow) Pages() []model.OnboardingPage { return f.pages }

// Page returns the settled page index.
func (f *Flow) Page() int { return f.pager.Current() }

// IsLastPage reports whether the settled page is the last one.
func (f *Flow) IsLastPage() bool { return f.pager.IsLast() }

// Exited reports whether the flow has left onboarding.
func (f *Flow) Exited() bool { return f.exited }

// SkipVisible reports whether the skip control is offered.
func (f *Flow) SkipVisible() bool { return !f.exited && !f.pager.IsLast() }

// OnPageChanged registers fn for settled page changes.
func (f *Flow) OnPageChanged(fn func(int)) { f.pager.OnPageChanged(fn) }

// OnExit registers fn to run after the flow has navigated to the feed.
func (f *Flow) OnExit(fn func()) {
	if fn != nil {
		f.onExit = append(f.onExit, fn)
	}
}

// Next advances one page, or leaves onboarding from the last page. A
// transition in flight is settled before deciding.
func (f *Flow) Next() error {
	if f.exited {
		return nil
	}
	f.pager.Settle()
	if f.pager.IsLast() {
		return f.exit("completed")
	}
	f.pager.AnimateTo(f.pager.Current() + 1)
	return nil
}

// Skip leaves onboarding. It does nothing on the last page, where the skip
// control is hidden.
func (f *Flow) Skip() error {
	if !f.SkipVisible() {
		f.log.Debug("skip ignored on page %d", f.pager.Current())
		return nil
	}
	return f.exit("skipped")
}

// Swipe moves by delta pages in response to a drag. Swiping past either end
// stays on the edge page and never leaves onboarding.
func (f *Flow) Swipe(delta int) {
	if f.exited || delta == 0 {
		return
	}
	f.pager.Settle()
	target := f.pager.Current() + delta
	if target < 0 {
		target = 0
	}
	if target > f.pager.Count()-1 {
		target = f.pager.Count() - 1
	}
	f.pager.AnimateTo(target)
}

// SwipeTo moves to page i.
func (f *Flow) SwipeTo(i int) {
	if f.exited {
		return
	}
	f.pager.AnimateTo(i)
}

func (f *Flow) exit(reason string) error {
	f.pager.Cancel()
	if err := f.nav.Navigate(model.RouteFeed, ExitOptions()); err != nil {
		return fmt.Errorf("leave onboarding: %w", err)
	}
	f.exited = true
	f.log.Info("onboarding %s on page %d", reason, f.pager.Current())

	if f.mark == MarkOnExit {
		f.markShown()
	}
	for _, fn := range f.onExit {
		fn()
	}
	return nil
}

// markShown writes the flag at most once per mount.
func (f *Flow) markShown() {
	if f.marked {
		return
	}
	f.marked = true
	f.flags.SetOnboardingShown(true)
	f.log.Debug("onboarding_shown=true written")
}
