package nav

import (
	"fmt"

	"github.com/ytget/storefront/internal/guard"
	"github.com/ytget/storefront/internal/logger"
	"github.com/ytget/storefront/internal/model"
)

// TabOptions is the policy used when a bottom tab is tapped: collapse the
// stack to its root while saving what was popped, restore the target tab's
// saved entries, and never stack the same tab twice.
func TabOptions() Options {
	return Options{
		PopToRoot:    true,
		SaveState:    true,
		RestoreState: true,
		SingleTop:    true,
	}
}

// TabController owns the selected tab index and keeps it consistent with the
// current route of a Controller.
type TabController struct {
	nav       *Controller
	tabs      []model.Tab
	selected  int
	policy    guard.Policy
	log       logger.Logger
	listeners []func(int)
}

// NewTabController binds tabs to nav. The initial selection is the tab of the
// current route, or the first tab when the current route is not a tab.
func NewTabController(nav *Controller, tabs []model.Tab, policy guard.Policy, log logger.Logger) (*TabController, error) {
	if len(tabs) == 0 {
		return nil, fmt.Errorf("tab controller needs at least one tab")
	}
	for _, tab := range tabs {
		if !tab.Route.IsTab() {
			return nil, fmt.Errorf("tab %q: route %q: %w", tab.Label, tab.Route, ErrUnknownRoute)
		}
	}

	tc := &TabController{
		nav:    nav,
		tabs:   tabs,
		policy: policy,
		log:    logger.OrNoop(log),
	}
	if idx := model.IndexOfRoute(tabs, nav.CurrentRoute()); idx >= 0 {
		tc.selected = idx
	}
	nav.AddListener(tc.onRouteChanged)
	return tc, nil
}

// Tabs returns the tab sequence in display order.
func (tc *TabController) Tabs() []model.Tab {
	return tc.tabs
}

// Selected returns the selected tab index.
func (tc *TabController) Selected() int {
	return tc.selected
}

// OnChange registers fn to be called with the new index whenever the
// selection changes.
func (tc *TabController) OnChange(fn func(int)) {
	if fn == nil {
		return
	}
	tc.listeners = append(tc.listeners, fn)
}

// BarVisible reports whether the bottom navigation should render.
func (tc *TabController) BarVisible() bool {
	return tc.nav.CurrentRoute() != model.RouteOnboarding
}

// SelectTab selects the tab at index and navigates to its route.
func (tc *TabController) SelectTab(index int) error {
	index = tc.policy.Index("tab", index, len(tc.tabs))
	tab := tc.tabs[index]

	tc.log.Debug("select tab %d (%s)", index, tab.Route)
	tc.setSelected(index)

	return tc.nav.Navigate(tab.Route, TabOptions())
}

// onRouteChanged resynchronizes the selection after any navigation,
// including back presses. Non-tab routes leave the selection alone.
func (tc *TabController) onRouteChanged(e Entry) {
	idx := model.IndexOfRoute(tc.tabs, e.Route)
	if idx < 0 {
		return
	}
	tc.setSelected(idx)
}

func (tc *TabController) setSelected(index int) {
	if index == tc.selected {
		return
	}
	tc.selected = index
	for _, fn := range tc.listeners {
		fn(index)
	}
}
