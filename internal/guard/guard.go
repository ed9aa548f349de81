// Package guard handles indexes that should never be out of range.
//
// Tab and page indexes are driven by fixed sequences, so an out-of-range value
// is a programmer error. In strict mode (development builds) it panics; in
// release builds it is clamped into range and reported as a warning.
package guard

import (
	"fmt"

	"github.com/ytget/storefront/internal/logger"
)

// Policy decides how Index reacts to out-of-range input.
type Policy struct {
	Strict bool
	Log    logger.Logger
}

// Index returns i when it lies in [0, n-1]. Otherwise it panics when p.Strict
// is set, or clamps i into range. n must be positive.
func (p Policy) Index(what string, i, n int) int {
	if n <= 0 {
		panic(fmt.Sprintf("guard: %s has no elements", what))
	}
	if i >= 0 && i < n {
		return i
	}
	if p.Strict {
		panic(fmt.Sprintf("guard: %s index %d out of range [0, %d]", what, i, n-1))
	}

	clamped := i
	if clamped < 0 {
		clamped = 0
	}
	if clamped > n-1 {
		clamped = n - 1
	}
	logger.OrNoop(p.Log).Warn("%s index %d out of range [0, %d], clamped to %d", what, i, n-1, clamped)
	return clamped
}
