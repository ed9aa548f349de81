package ui

import (
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"

	"github.com/ytget/storefront/internal/onboarding"
)

// FyneAnimator runs page transitions with fyne.NewAnimation. OnFrame receives
// the eased progress of every tick; completion is delivered on the UI
// goroutine through fyne.Do.
type FyneAnimator struct {
	Duration time.Duration
	OnFrame  func(from, to int, progress float32)
}

var _ onboarding.Animator = (*FyneAnimator)(nil)

// Animate implements onboarding.Animator
func (a *FyneAnimator) Animate(from, to int, done func()) func() {
	if a.Duration <= 0 {
		if a.OnFrame != nil {
			a.OnFrame(from, to, 1)
		}
		done()
		return func() {}
	}

	var stopped atomic.Bool
	anim := fyne.NewAnimation(a.Duration, func(progress float32) {
		if stopped.Load() {
			return
		}
		if a.OnFrame != nil {
			a.OnFrame(from, to, progress)
		}
		if progress >= 1 && stopped.CompareAndSwap(false, true) {
			fyne.Do(done)
		}
	})
	anim.Curve = fyne.AnimationEaseInOut
	anim.Start()

	return func() {
		stopped.Store(true)
		anim.Stop()
	}
}
