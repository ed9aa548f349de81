package model

// Tab pairs a label with the route it opens. Label is a localization key.
type Tab struct {
	Label string
	Route Route
}

// Localization keys of the tab labels
const (
	TabLabelFeed    = "tab_feed"
	TabLabelApps    = "tab_apps"
	TabLabelGames   = "tab_games"
	TabLabelKiosk   = "tab_kiosk"
	TabLabelProfile = "tab_profile"
)

// DefaultTabs returns the bottom navigation in display order.
func DefaultTabs() []Tab {
	return []Tab{
		{Label: TabLabelFeed, Route: RouteFeed},
		{Label: TabLabelApps, Route: RouteApps},
		{Label: TabLabelGames, Route: RouteGames},
		{Label: TabLabelKiosk, Route: RouteKiosk},
		{Label: TabLabelProfile, Route: RouteProfile},
	}
}

// IndexOfRoute returns the position of the tab opening route, or -1.
func IndexOfRoute(tabs []Tab, route Route) int {
	for i, tab := range tabs {
		if tab.Route == route {
			return i
		}
	}
	return -1
}
