package model

// Route identifies a navigable screen. The set is fixed at build time.
type Route string

const (
	// RouteOnboarding is the introductory pager shown before the tabs
	RouteOnboarding Route = "onboarding"

	// RouteFeed is the "interesting" screen with search, banner and game set
	RouteFeed Route = "feed"

	RouteApps    Route = "apps"
	RouteGames   Route = "games"
	RouteKiosk   Route = "kiosk"
	RouteProfile Route = "profile"
)

// AllRoutes returns every known route, onboarding first.
func AllRoutes() []Route {
	return []Route{RouteOnboarding, RouteFeed, RouteApps, RouteGames, RouteKiosk, RouteProfile}
}

// String returns the route identifier
func (r Route) String() string {
	return string(r)
}

// IsValid reports whether r is one of the known routes
func (r Route) IsValid() bool {
	for _, known := range AllRoutes() {
		if r == known {
			return true
		}
	}
	return false
}

// IsTab reports whether r is reachable from the bottom navigation
func (r Route) IsTab() bool {
	return r.IsValid() && r != RouteOnboarding
}
