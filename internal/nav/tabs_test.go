package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/storefront/internal/guard"
	"github.com/ytget/storefront/internal/logger"
	"github.com/ytget/storefront/internal/model"
)

func newTabs(t *testing.T, start model.Route, policy guard.Policy) (*Controller, *TabController) {
	t.Helper()
	c := newTestController(t, start)
	tc, err := NewTabController(c, model.DefaultTabs(), policy, nil)
	require.NoError(t, err)
	return c, tc
}

func TestNewTabController_Validation(t *testing.T) {
	c := newTestController(t, model.RouteFeed)

	_, err := NewTabController(c, nil, guard.Policy{}, nil)
	assert.Error(t, err)

	_, err = NewTabController(c, []model.Tab{{Label: "x", Route: model.RouteOnboarding}}, guard.Policy{}, nil)
	assert.ErrorIs(t, err, ErrUnknownRoute)
}

func TestNewTabController_InitialSelection(t *testing.T) {
	_, tc := newTabs(t, model.RouteGames, guard.Policy{})
	assert.Equal(t, 2, tc.Selected())

	_, tc = newTabs(t, model.RouteOnboarding, guard.Policy{})
	assert.Equal(t, 0, tc.Selected())
}

func TestSelectTab_EveryIndex(t *testing.T) {
	tabs := model.DefaultTabs()
	for i := range tabs {
		c, tc := newTabs(t, model.RouteFeed, guard.Policy{Strict: true})

		require.NoError(t, tc.SelectTab(i))

		assert.Equal(t, tabs[i].Route, c.CurrentRoute(), "tab %d", i)
		assert.Equal(t, i, tc.Selected(), "tab %d", i)
	}
}

func TestSelectTab_CollapsesToRootWithoutDuplicates(t *testing.T) {
	c, tc := newTabs(t, model.RouteFeed, guard.Policy{Strict: true})

	require.NoError(t, tc.SelectTab(1))
	require.NoError(t, tc.SelectTab(2))
	require.NoError(t, tc.SelectTab(3))
	require.NoError(t, tc.SelectTab(3))
	assert.Equal(t, []model.Route{model.RouteFeed, model.RouteKiosk}, c.BackStack())

	require.NoError(t, tc.SelectTab(0))
	assert.Equal(t, []model.Route{model.RouteFeed}, c.BackStack())
	assert.Equal(t, 0, tc.Selected())
}

func TestSelectTab_RestoresSavedState(t *testing.T) {
	c, tc := newTabs(t, model.RouteFeed, guard.Policy{Strict: true})

	require.NoError(t, tc.SelectTab(1))
	c.SetState("query", "bank")
	require.NoError(t, tc.SelectTab(4))
	require.NoError(t, tc.SelectTab(1))

	q, ok := c.State("query")
	require.True(t, ok)
	assert.Equal(t, "bank", q)
}

func TestBackNavigation_ResyncsSelection(t *testing.T) {
	c, tc := newTabs(t, model.RouteFeed, guard.Policy{Strict: true})
	var changes []int
	tc.OnChange(func(i int) { changes = append(changes, i) })

	require.NoError(t, tc.SelectTab(2))
	assert.Equal(t, 2, tc.Selected())

	require.True(t, c.PopBackStack())
	assert.Equal(t, model.RouteFeed, c.CurrentRoute())
	assert.Equal(t, 0, tc.Selected())
	assert.Equal(t, []int{2, 0}, changes)
}

func TestNonTabRoute_LeavesSelectionUnchanged(t *testing.T) {
	c, tc := newTabs(t, model.RouteOnboarding, guard.Policy{Strict: true})
	require.NoError(t, tc.SelectTab(3))
	assert.Equal(t, []model.Route{model.RouteOnboarding, model.RouteKiosk}, c.BackStack())

	require.True(t, c.PopBackStack())

	assert.Equal(t, model.RouteOnboarding, c.CurrentRoute())
	assert.Equal(t, 3, tc.Selected())
}

func TestBarVisible(t *testing.T) {
	c, tc := newTabs(t, model.RouteOnboarding, guard.Policy{})
	assert.False(t, tc.BarVisible())

	require.NoError(t, c.Navigate(model.RouteFeed, Options{PopUpTo: model.RouteOnboarding, Inclusive: true}))
	assert.True(t, tc.BarVisible())
	assert.Equal(t, 0, tc.Selected())
}

func TestSelectTab_OutOfRange(t *testing.T) {
	log := logger.NewBufferLogger()
	c := newTestController(t, model.RouteFeed)
	tc, err := NewTabController(c, model.DefaultTabs(), guard.Policy{Log: log}, nil)
	require.NoError(t, err)

	require.NoError(t, tc.SelectTab(9))
	assert.Equal(t, 4, tc.Selected())
	assert.Equal(t, model.RouteProfile, c.CurrentRoute())

	require.NoError(t, tc.SelectTab(-3))
	assert.Equal(t, 0, tc.Selected())
	assert.True(t, log.HasLevel("warn"))

	_, strict := newTabs(t, model.RouteFeed, guard.Policy{Strict: true})
	assert.Panics(t, func() { _ = strict.SelectTab(5) })
}
