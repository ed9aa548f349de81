package nav

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ytget/storefront/internal/logger"
	"github.com/ytget/storefront/internal/model"
)

var (
	// ErrUnknownRoute is returned when navigating to a route outside the fixed set
	ErrUnknownRoute = errors.New("unknown route")

	// ErrEmptyBackStack is returned when a controller would start without entries
	ErrEmptyBackStack = errors.New("back stack is empty")
)

// Entry is one screen instance on the back stack. State holds per-entry UI
// state (search query, scroll offset) that survives tab switches when saved.
type Entry struct {
	ID    string
	Route model.Route
	State map[string]string
}

func (e *Entry) clone() Entry {
	state := make(map[string]string, len(e.State))
	for k, v := range e.State {
		state[k] = v
	}
	return Entry{ID: e.ID, Route: e.Route, State: state}
}

// Options controls how Navigate treats the existing back stack.
type Options struct {
	// PopUpTo pops entries above the topmost entry with this route before
	// navigating. Ignored when the route is not on the stack.
	PopUpTo model.Route
	// Inclusive also pops the PopUpTo entry itself.
	Inclusive bool
	// PopToRoot pops everything above the bottom entry of the stack.
	PopToRoot bool
	// SaveState keeps the popped entries so RestoreState can bring them back.
	SaveState bool
	// RestoreState pushes previously saved entries for the target route
	// instead of a fresh entry.
	RestoreState bool
	// SingleTop skips the push when the target is already on top.
	SingleTop bool
}

// Controller is the navigation back stack. It is not safe for concurrent use;
// all calls happen on the UI goroutine.
type Controller struct {
	stack     []*Entry
	saved     map[model.Route][]*Entry
	listeners []func(Entry)
	log       logger.Logger
	newID     func() string
}

// NewController creates a back stack holding a single entry for start.
func NewController(start model.Route, log logger.Logger) (*Controller, error) {
	if start == "" {
		return nil, ErrEmptyBackStack
	}
	if !start.IsValid() {
		return nil, fmt.Errorf("start destination %q: %w", start, ErrUnknownRoute)
	}

	c := &Controller{
		saved: make(map[model.Route][]*Entry),
		log:   logger.OrNoop(log),
		newID: newEntryID,
	}
	c.stack = []*Entry{c.newEntry(start)}
	c.log.Debug("start destination %s", start)
	return c, nil
}

func newEntryID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

func (c *Controller) newEntry(route model.Route) *Entry {
	return &Entry{ID: c.newID(), Route: route, State: make(map[string]string)}
}

// AddListener registers fn to be called synchronously every time the current
// entry changes.
func (c *Controller) AddListener(fn func(Entry)) {
	if fn == nil {
		return
	}
	c.listeners = append(c.listeners, fn)
}

// Navigate moves to route, applying opts to the existing stack first.
func (c *Controller) Navigate(route model.Route, opts Options) error {
	if !route.IsValid() {
		return fmt.Errorf("navigate to %q: %w", route, ErrUnknownRoute)
	}
	before := c.topID()

	c.pop(opts)

	switch {
	case opts.SingleTop && len(c.stack) > 0 && c.top().Route == route:
		c.log.Debug("%s already on top, single-top keeps it", route)
	case opts.RestoreState && len(c.saved[route]) > 0:
		c.stack = append(c.stack, c.saved[route]...)
		delete(c.saved, route)
		c.log.Debug("restored saved state for %s", route)
	default:
		c.stack = append(c.stack, c.newEntry(route))
	}

	c.log.Debug("navigate %s, back stack %v", route, c.BackStack())
	c.notifyIfChanged(before)
	return nil
}

// pop removes entries according to opts, saving them when asked.
func (c *Controller) pop(opts Options) {
	cut := len(c.stack)
	switch {
	case opts.PopToRoot:
		cut = 1
	case opts.PopUpTo != "":
		idx := c.lastIndexOf(opts.PopUpTo)
		if idx < 0 {
			c.log.Debug("popUpTo %s: not on the back stack", opts.PopUpTo)
			return
		}
		cut = idx + 1
		if opts.Inclusive {
			cut = idx
		}
	}
	if cut >= len(c.stack) {
		return
	}

	popped := c.stack[cut:]
	c.stack = c.stack[:cut:cut]
	if opts.SaveState {
		segment := make([]*Entry, len(popped))
		copy(segment, popped)
		c.saved[segment[0].Route] = segment
		c.log.Debug("saved %d entries for %s", len(segment), segment[0].Route)
	}
}

// PopBackStack removes the current entry. The bottom entry is never popped;
// false is returned in that case.
func (c *Controller) PopBackStack() bool {
	if len(c.stack) <= 1 {
		return false
	}
	before := c.topID()
	c.stack = c.stack[:len(c.stack)-1]
	c.log.Debug("back, back stack %v", c.BackStack())
	c.notifyIfChanged(before)
	return true
}

// Current returns a copy of the current entry.
func (c *Controller) Current() Entry {
	return c.top().clone()
}

// CurrentRoute returns the route of the current entry.
func (c *Controller) CurrentRoute() model.Route {
	return c.top().Route
}

// State reads a value stored on the current entry.
func (c *Controller) State(key string) (string, bool) {
	v, ok := c.top().State[key]
	return v, ok
}

// SetState stores a value on the current entry.
func (c *Controller) SetState(key, value string) {
	c.top().State[key] = value
}

// BackStack returns the routes on the stack, bottom first.
func (c *Controller) BackStack() []model.Route {
	routes := make([]model.Route, len(c.stack))
	for i, e := range c.stack {
		routes[i] = e.Route
	}
	return routes
}

// Contains reports whether route has an entry on the back stack.
func (c *Controller) Contains(route model.Route) bool {
	return c.lastIndexOf(route) >= 0
}

// HasSavedState reports whether entries for route are waiting to be restored.
func (c *Controller) HasSavedState(route model.Route) bool {
	return len(c.saved[route]) > 0
}

func (c *Controller) top() *Entry {
	return c.stack[len(c.stack)-1]
}

func (c *Controller) topID() string {
	if len(c.stack) == 0 {
		return ""
	}
	return c.top().ID
}

func (c *Controller) lastIndexOf(route model.Route) int {
	for i := len(c.stack) - 1; i >= 0; i-- {
		if c.stack[i].Route == route {
			return i
		}
	}
	return -1
}

func (c *Controller) notifyIfChanged(before string) {
	if c.topID() == before {
		return
	}
	current := c.Current()
	for _, fn := range c.listeners {
		fn(current)
	}
}
