package ui

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/storefront/internal/catalog"
	"github.com/ytget/storefront/internal/config"
	"github.com/ytget/storefront/internal/download"
	"github.com/ytget/storefront/internal/guard"
	"github.com/ytget/storefront/internal/model"
	"github.com/ytget/storefront/internal/nav"
	"github.com/ytget/storefront/internal/onboarding"
	"github.com/ytget/storefront/internal/prefs"
)

type rootFixture struct {
	ui        *RootUI
	store     *prefs.Memory
	settings  *config.Settings
	nav       *nav.Controller
	tabs      *nav.TabController
	installer *download.Service
}

func newRootFixture(t *testing.T, onboardingShown bool) *rootFixture {
	t.Helper()

	app := test.NewApp()
	t.Cleanup(app.Quit)
	window := test.NewWindow(widget.NewLabel(""))
	t.Cleanup(window.Close)

	store := prefs.NewMemory()
	settings := config.NewSettings(store, config.DefaultNamespace)
	if onboardingShown {
		settings.SetOnboardingShown(true)
	}

	gate := onboarding.NewGate(settings, nil)
	navCtl, err := nav.NewController(gate.StartRoute(), nil)
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	policy := guard.Policy{Strict: true}
	tabs, err := nav.NewTabController(navCtl, model.DefaultTabs(), policy, nil)
	if err != nil {
		t.Fatalf("NewTabController: %v", err)
	}
	feed, err := catalog.LoadFeed()
	if err != nil {
		t.Fatalf("LoadFeed: %v", err)
	}
	pages, err := catalog.LoadOnboarding()
	if err != nil {
		t.Fatalf("LoadOnboarding: %v", err)
	}
	installer := download.NewService(nil)

	ui, err := NewRootUI(window, Deps{
		Settings:  settings,
		Nav:       navCtl,
		Tabs:      tabs,
		Feed:      feed,
		Pages:     pages,
		Installer: installer,
		Guard:     policy,
		Animator:  onboarding.Instant,
	})
	if err != nil {
		t.Fatalf("NewRootUI: %v", err)
	}

	return &rootFixture{ui: ui, store: store, settings: settings, nav: navCtl, tabs: tabs, installer: installer}
}

func TestNewRootUI_RequiresDeps(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	if _, err := NewRootUI(test.NewWindow(widget.NewLabel("")), Deps{}); err == nil {
		t.Error("Expected error for missing dependencies")
	}
}

func TestRootUI_FirstLaunchShowsOnboardingWithoutBar(t *testing.T) {
	f := newRootFixture(t, false)

	if f.ui.OnboardingScreen() == nil {
		t.Fatal("Expected onboarding screen on first launch")
	}
	if f.ui.BarVisible() {
		t.Error("Bottom bar must be hidden during onboarding")
	}
	if !f.settings.GetOnboardingShown() {
		t.Error("Flag should be written when onboarding is mounted")
	}
}

func TestRootUI_SkipOpensFeed(t *testing.T) {
	f := newRootFixture(t, false)

	test.Tap(f.ui.OnboardingScreen().skipBtn)

	if f.ui.FeedScreen() == nil {
		t.Fatal("Expected feed screen after skip")
	}
	if f.ui.OnboardingScreen() != nil {
		t.Error("Onboarding screen should be unmounted")
	}
	if !f.ui.BarVisible() {
		t.Error("Bottom bar should be visible on the feed")
	}
	if f.nav.Contains(model.RouteOnboarding) {
		t.Errorf("Back stack still contains onboarding: %v", f.nav.BackStack())
	}
	if f.tabs.Selected() != 0 || f.ui.Menu().Selected() != 0 {
		t.Errorf("Expected feed tab selected, got %d/%d", f.tabs.Selected(), f.ui.Menu().Selected())
	}
}

func TestRootUI_NextWalksPagesThenStarts(t *testing.T) {
	f := newRootFixture(t, false)
	screen := f.ui.OnboardingScreen()

	test.Tap(screen.nextBtn)
	test.Tap(screen.nextBtn)

	if screen.nextBtn.Text != "Начать просмотр" {
		t.Errorf("Expected start label on the last page, got %q", screen.nextBtn.Text)
	}
	if screen.skipBtn.Visible() {
		t.Error("Skip must be hidden on the last page")
	}
	if screen.shown != 2 {
		t.Errorf("Expected last page shown, got %d", screen.shown)
	}

	test.Tap(screen.nextBtn)

	if f.nav.CurrentRoute() != model.RouteFeed {
		t.Errorf("Expected feed after the last page, got %s", f.nav.CurrentRoute())
	}
}

func TestRootUI_RepeatLaunchStartsOnFeed(t *testing.T) {
	f := newRootFixture(t, true)

	if f.ui.OnboardingScreen() != nil {
		t.Error("Onboarding must not be mounted when the flag is set")
	}
	if f.ui.FeedScreen() == nil {
		t.Error("Expected feed screen")
	}
	if !f.ui.BarVisible() {
		t.Error("Bottom bar should be visible")
	}
}

func TestRootUI_TabTaps(t *testing.T) {
	f := newRootFixture(t, true)

	for i, tab := range model.DefaultTabs() {
		test.Tap(f.ui.Menu().Button(i))

		if f.nav.CurrentRoute() != tab.Route {
			t.Errorf("Tab %d: expected route %s, got %s", i, tab.Route, f.nav.CurrentRoute())
		}
		if f.ui.Menu().Selected() != i {
			t.Errorf("Tab %d: menu highlights %d", i, f.ui.Menu().Selected())
		}
		if got := len(f.nav.BackStack()); got > 2 {
			t.Errorf("Tab %d: back stack grew to %v", i, f.nav.BackStack())
		}
		if (f.ui.FeedScreen() != nil) != (tab.Route == model.RouteFeed) {
			t.Errorf("Tab %d: feed screen mounted state is wrong", i)
		}
	}
}

func TestRootUI_FeedQueryRestoredAfterTabSwitch(t *testing.T) {
	f := newRootFixture(t, true)

	test.Type(f.ui.FeedScreen().searchEntry, "Танчики 7")
	rows := f.ui.FeedScreen().Rows()
	if len(rows) == 0 || rows[0].Card().Title != "Танчики 7" {
		t.Fatalf("Expected exact match first, got %d rows", len(rows))
	}

	test.Tap(f.ui.Menu().Button(1))
	test.Tap(f.ui.Menu().Button(0))

	feed := f.ui.FeedScreen()
	if feed == nil {
		t.Fatal("Expected feed screen")
	}
	if feed.Query() != "Танчики 7" {
		t.Errorf("Expected query to be restored, got %q", feed.Query())
	}
	if len(feed.Rows()) != len(rows) {
		t.Errorf("Expected %d rows after restore, got %d", len(rows), len(feed.Rows()))
	}
}

func TestRootUI_BackKeyPopsStack(t *testing.T) {
	f := newRootFixture(t, true)

	if err := f.nav.Navigate(model.RouteApps, nav.Options{}); err != nil {
		t.Fatalf("Navigate: %v", err)
	}
	f.ui.onTypedKey(&fyne.KeyEvent{Name: fyne.KeyEscape})

	if f.nav.CurrentRoute() != model.RouteFeed {
		t.Errorf("Expected feed after back, got %s", f.nav.CurrentRoute())
	}
	if f.ui.Menu().Selected() != 0 {
		t.Errorf("Expected feed tab highlighted, got %d", f.ui.Menu().Selected())
	}

	// At the root back does nothing
	f.ui.Back()
	if f.nav.CurrentRoute() != model.RouteFeed {
		t.Errorf("Back at root changed route to %s", f.nav.CurrentRoute())
	}
}

func TestRootUI_DownloadPillRequestsInstall(t *testing.T) {
	f := newRootFixture(t, true)

	row := f.ui.FeedScreen().Rows()[0]
	test.Tap(row.downloadBtn)
	test.Tap(row.downloadBtn)

	requests := f.installer.GetAllRequests()
	if len(requests) != 2 {
		t.Fatalf("Expected 2 requests, got %d", len(requests))
	}
	queued := 0
	for _, req := range requests {
		if req.CardID != row.Card().ID {
			t.Errorf("Expected request for %s, got %s", row.Card().ID, req.CardID)
		}
		if req.Status == model.InstallStatusQueued {
			queued++
		}
	}
	if queued != 1 {
		t.Errorf("Expected the second request to be queued, got %d queued", queued)
	}
}

func TestRootUI_LanguageChange(t *testing.T) {
	f := newRootFixture(t, true)

	f.settings.SetLanguage("en")
	f.ui.onSettingsSaved()

	if got := f.ui.Menu().Button(0).Text; got != "Home" {
		t.Errorf("Expected English tab label, got %q", got)
	}
}
