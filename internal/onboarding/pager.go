package onboarding

import (
	"fmt"

	"github.com/ytget/storefront/internal/guard"
	"github.com/ytget/storefront/internal/logger"
)

// Animator runs the visual transition between two pages. done is called once
// when the transition finishes; it must not be called after cancel.
type Animator interface {
	Animate(from, to int, done func()) (cancel func())
}

// AnimatorFunc adapts a function to Animator.
type AnimatorFunc func(from, to int, done func()) func()

// Animate calls f.
func (f AnimatorFunc) Animate(from, to int, done func()) func() {
	return f(from, to, done)
}

// Instant completes every transition synchronously.
var Instant Animator = AnimatorFunc(func(_, _ int, done func()) func() {
	done()
	return func() {}
})

// Pager holds the current page index. The index only changes when a
// transition completes, so it always stays within [0, Count()-1].
type Pager struct {
	count     int
	current   int
	target    int
	animating bool
	cancel    func()
	seq       int
	animator  Animator
	policy    guard.Policy
	log       logger.Logger
	listeners []func(int)
}

// NewPager creates a pager over count pages starting at page 0. A nil
// animator behaves like Instant.
func NewPager(count int, animator Animator, policy guard.Policy, log logger.Logger) (*Pager, error) {
	if count <= 0 {
		return nil, fmt.Errorf("pager needs at least one page, got %d", count)
	}
	if animator == nil {
		animator = Instant
	}
	return &Pager{
		count:    count,
		animator: animator,
		policy:   policy,
		log:      logger.OrNoop(log),
	}, nil
}

// Count returns the number of pages.
func (p *Pager) Count() int { return p.count }

// Current returns the settled page index.
func (p *Pager) Current() int { return p.current }

// IsLast reports whether the settled page is the last one.
func (p *Pager) IsLast() bool { return p.current == p.count-1 }

// Animating reports whether a transition is in flight.
func (p *Pager) Animating() bool { return p.animating }

// OnPageChanged registers fn to be called with the new index after a
// transition settles.
func (p *Pager) OnPageChanged(fn func(int)) {
	if fn == nil {
		return
	}
	p.listeners = append(p.listeners, fn)
}

// AnimateTo starts a transition to page i. A transition already in flight is
// cancelled and its target committed first.
func (p *Pager) AnimateTo(i int) {
	i = p.policy.Index("page", i, p.count)
	p.Settle()
	if i == p.current {
		return
	}

	p.seq++
	seq := p.seq
	p.animating = true
	p.target = i
	p.log.Debug("page %d -> %d", p.current, i)

	cancel := p.animator.Animate(p.current, i, func() {
		if seq != p.seq || !p.animating {
			return
		}
		p.animating = false
		p.cancel = nil
		p.setCurrent(i)
	})
	if p.animating && seq == p.seq {
		p.cancel = cancel
	}
}

// Settle finishes an in-flight transition immediately, committing its target.
func (p *Pager) Settle() {
	if !p.animating {
		return
	}
	target := p.target
	p.stop()
	p.setCurrent(target)
}

// Cancel stops an in-flight transition without committing it.
func (p *Pager) Cancel() {
	if p.animating {
		p.log.Debug("page transition to %d cancelled", p.target)
	}
	p.stop()
}

func (p *Pager) stop() {
	if !p.animating {
		return
	}
	p.seq++
	p.animating = false
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

func (p *Pager) setCurrent(i int) {
	if i == p.current {
		return
	}
	p.current = i
	for _, fn := range p.listeners {
		fn(i)
	}
}
