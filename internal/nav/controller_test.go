package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/storefront/internal/model"
)

func newTestController(t *testing.T, start model.Route) *Controller {
	t.Helper()
	c, err := NewController(start, nil)
	require.NoError(t, err)
	return c
}

func TestNewController(t *testing.T) {
	c := newTestController(t, model.RouteOnboarding)
	assert.Equal(t, model.RouteOnboarding, c.CurrentRoute())
	assert.Equal(t, []model.Route{model.RouteOnboarding}, c.BackStack())
	assert.NotEmpty(t, c.Current().ID)

	_, err := NewController("", nil)
	assert.ErrorIs(t, err, ErrEmptyBackStack)

	_, err = NewController("settings", nil)
	assert.ErrorIs(t, err, ErrUnknownRoute)
}

func TestNavigate_PushesFreshEntries(t *testing.T) {
	c := newTestController(t, model.RouteFeed)

	require.NoError(t, c.Navigate(model.RouteApps, Options{}))
	require.NoError(t, c.Navigate(model.RouteApps, Options{}))

	assert.Equal(t, []model.Route{model.RouteFeed, model.RouteApps, model.RouteApps}, c.BackStack())
}

func TestNavigate_UnknownRoute(t *testing.T) {
	c := newTestController(t, model.RouteFeed)
	err := c.Navigate("nowhere", Options{})
	assert.ErrorIs(t, err, ErrUnknownRoute)
	assert.Equal(t, []model.Route{model.RouteFeed}, c.BackStack())
}

func TestNavigate_PopUpToInclusive(t *testing.T) {
	c := newTestController(t, model.RouteOnboarding)

	require.NoError(t, c.Navigate(model.RouteFeed, Options{PopUpTo: model.RouteOnboarding, Inclusive: true}))

	assert.Equal(t, []model.Route{model.RouteFeed}, c.BackStack())
	assert.False(t, c.Contains(model.RouteOnboarding))
	assert.False(t, c.PopBackStack(), "feed is the only entry, back must not leave it")
	assert.Equal(t, model.RouteFeed, c.CurrentRoute())
}

func TestNavigate_PopUpToExclusive(t *testing.T) {
	c := newTestController(t, model.RouteFeed)
	require.NoError(t, c.Navigate(model.RouteApps, Options{}))
	require.NoError(t, c.Navigate(model.RouteGames, Options{}))

	require.NoError(t, c.Navigate(model.RouteKiosk, Options{PopUpTo: model.RouteApps}))

	assert.Equal(t, []model.Route{model.RouteFeed, model.RouteApps, model.RouteKiosk}, c.BackStack())
}

func TestNavigate_PopUpToMissingRouteKeepsStack(t *testing.T) {
	c := newTestController(t, model.RouteFeed)
	require.NoError(t, c.Navigate(model.RouteApps, Options{}))

	require.NoError(t, c.Navigate(model.RouteGames, Options{PopUpTo: model.RouteOnboarding, Inclusive: true}))

	assert.Equal(t, []model.Route{model.RouteFeed, model.RouteApps, model.RouteGames}, c.BackStack())
}

func TestNavigate_SingleTop(t *testing.T) {
	c := newTestController(t, model.RouteFeed)
	require.NoError(t, c.Navigate(model.RouteApps, Options{}))
	id := c.Current().ID

	require.NoError(t, c.Navigate(model.RouteApps, Options{SingleTop: true}))

	assert.Equal(t, []model.Route{model.RouteFeed, model.RouteApps}, c.BackStack())
	assert.Equal(t, id, c.Current().ID)
}

func TestNavigate_SaveAndRestoreState(t *testing.T) {
	c := newTestController(t, model.RouteFeed)
	require.NoError(t, c.Navigate(model.RouteApps, TabOptions()))
	appsID := c.Current().ID
	c.SetState("scroll", "120")

	require.NoError(t, c.Navigate(model.RouteGames, TabOptions()))
	assert.Equal(t, []model.Route{model.RouteFeed, model.RouteGames}, c.BackStack())
	assert.True(t, c.HasSavedState(model.RouteApps))
	_, ok := c.State("scroll")
	assert.False(t, ok, "games starts without state")

	require.NoError(t, c.Navigate(model.RouteApps, TabOptions()))
	assert.Equal(t, []model.Route{model.RouteFeed, model.RouteApps}, c.BackStack())
	assert.Equal(t, appsID, c.Current().ID, "restored entry keeps its identity")
	scroll, ok := c.State("scroll")
	assert.True(t, ok)
	assert.Equal(t, "120", scroll)
	assert.False(t, c.HasSavedState(model.RouteApps))
	assert.True(t, c.HasSavedState(model.RouteGames))
}

func TestNavigate_WithoutRestoreGetsFreshEntry(t *testing.T) {
	c := newTestController(t, model.RouteFeed)
	require.NoError(t, c.Navigate(model.RouteApps, Options{}))
	c.SetState("q", "tanks")
	require.NoError(t, c.Navigate(model.RouteGames, Options{PopToRoot: true, SaveState: true}))

	require.NoError(t, c.Navigate(model.RouteApps, Options{PopToRoot: true}))

	_, ok := c.State("q")
	assert.False(t, ok)
}

func TestPopBackStack(t *testing.T) {
	c := newTestController(t, model.RouteFeed)
	require.NoError(t, c.Navigate(model.RouteApps, Options{}))

	assert.True(t, c.PopBackStack())
	assert.Equal(t, model.RouteFeed, c.CurrentRoute())
	assert.False(t, c.PopBackStack())
}

func TestListeners_NotifiedOnCurrentEntryChange(t *testing.T) {
	c := newTestController(t, model.RouteFeed)
	var seen []model.Route
	c.AddListener(func(e Entry) { seen = append(seen, e.Route) })
	c.AddListener(nil)

	require.NoError(t, c.Navigate(model.RouteApps, Options{}))
	require.NoError(t, c.Navigate(model.RouteApps, Options{SingleTop: true}))
	c.PopBackStack()
	c.PopBackStack()

	assert.Equal(t, []model.Route{model.RouteApps, model.RouteFeed}, seen)
}

func TestListeners_ReceiveCopies(t *testing.T) {
	c := newTestController(t, model.RouteFeed)
	c.AddListener(func(e Entry) { e.State["leak"] = "yes" })

	require.NoError(t, c.Navigate(model.RouteApps, Options{}))

	_, ok := c.State("leak")
	assert.False(t, ok)
}
