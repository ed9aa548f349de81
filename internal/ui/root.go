package ui

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"

	"github.com/ytget/storefront/internal/config"
	"github.com/ytget/storefront/internal/download"
	"github.com/ytget/storefront/internal/guard"
	"github.com/ytget/storefront/internal/logger"
	"github.com/ytget/storefront/internal/model"
	"github.com/ytget/storefront/internal/nav"
	"github.com/ytget/storefront/internal/onboarding"
)

// Deps are the collaborators RootUI renders and drives
type Deps struct {
	Settings  *config.Settings
	Nav       *nav.Controller
	Tabs      *nav.TabController
	Feed      *model.Feed
	Pages     []model.OnboardingPage
	Installer download.Installer

	Guard         guard.Policy
	Mark          onboarding.MarkPolicy
	PageAnimation time.Duration
	// Animator replaces the Fyne page animation when set
	Animator onboarding.Animator

	Log logger.Logger
}

// RootUI is the scaffold: the current screen above the bottom navigation bar
type RootUI struct {
	window       fyne.Window
	deps         Deps
	localization *Localization
	resolver     *ImageResolver
	mobile       *MobileUI
	log          logger.Logger

	menu       *MenuLine
	screenHost *fyne.Container

	currentEntryID   string
	feedScreen       *FeedScreen
	onboardingScreen *OnboardingScreen
	flow             *onboarding.Flow
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, deps Deps) (*RootUI, error) {
	if deps.Settings == nil || deps.Nav == nil || deps.Tabs == nil || deps.Feed == nil {
		return nil, fmt.Errorf("root ui: settings, navigation, tabs and feed are required")
	}
	if len(deps.Pages) == 0 {
		return nil, fmt.Errorf("root ui: no onboarding pages")
	}

	log := logger.OrNoop(deps.Log)
	localization := NewLocalization()
	localization.SetLanguage(deps.Settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		deps:         deps,
		localization: localization,
		resolver:     NewImageResolver(log),
		mobile:       NewMobileUI(),
		log:          log,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	if deps.Installer != nil {
		deps.Installer.SetUpdateCallback(ui.onInstallUpdate)
	}

	ui.setupUI()

	deps.Nav.AddListener(ui.onRouteChanged)
	deps.Tabs.OnChange(ui.menu.SetSelected)
	window.Canvas().SetOnTypedKey(ui.onTypedKey)

	ui.showEntry(deps.Nav.Current())
	log.Debug("root ui ready on %s", deps.Nav.CurrentRoute())
	return ui, nil
}

// setupUI creates and arranges the scaffold
func (ui *RootUI) setupUI() {
	ui.menu = NewMenuLine(ui.deps.Tabs.Tabs(), ui.localization, ui.deps.Tabs.Selected(), ui.onTabSelected)
	ui.screenHost = container.NewStack()

	content := container.NewBorder(nil, ui.menu.Container(), nil, nil, ui.screenHost)
	ui.window.SetContent(content)
}

// Menu returns the bottom navigation bar
func (ui *RootUI) Menu() *MenuLine {
	return ui.menu
}

// FeedScreen returns the mounted feed screen, or nil
func (ui *RootUI) FeedScreen() *FeedScreen {
	return ui.feedScreen
}

// OnboardingScreen returns the mounted onboarding screen, or nil
func (ui *RootUI) OnboardingScreen() *OnboardingScreen {
	return ui.onboardingScreen
}

// BarVisible reports whether the bottom bar is shown
func (ui *RootUI) BarVisible() bool {
	return ui.menu.Container().Visible()
}

// Back pops the back stack. At the root it does nothing.
func (ui *RootUI) Back() {
	if !ui.deps.Nav.PopBackStack() {
		ui.log.Debug("back pressed at the root of the back stack")
	}
}

// onTabSelected handles taps on the bottom bar
func (ui *RootUI) onTabSelected(index int) {
	if err := ui.deps.Tabs.SelectTab(index); err != nil {
		ui.log.Error("select tab %d: %v", index, err)
	}
}

// onRouteChanged swaps the screen when the current entry changes
func (ui *RootUI) onRouteChanged(entry nav.Entry) {
	ui.showEntry(entry)
}

// onTypedKey maps Escape and the mobile back key to back navigation
func (ui *RootUI) onTypedKey(event *fyne.KeyEvent) {
	if event.Name == fyne.KeyEscape || event.Name == mobile.KeyBack {
		ui.Back()
	}
}

// showEntry unmounts the previous screen and mounts the one for entry
func (ui *RootUI) showEntry(entry nav.Entry) {
	if entry.ID == ui.currentEntryID {
		return
	}
	ui.leaveCurrent()
	ui.currentEntryID = entry.ID

	var screen fyne.CanvasObject
	switch entry.Route {
	case model.RouteOnboarding:
		screen = ui.mountOnboarding()
	case model.RouteFeed:
		ui.feedScreen = NewFeedScreen(ui.deps.Feed, ui.localization, ui.resolver, ui.deps.Installer,
			ui.deps.Nav, ui.window.Canvas(), ui.log, ui.onShowSettings)
		screen = ui.feedScreen.Content()
	default:
		screen = NewPlaceholderScreen(entry.Route, ui.localization)
	}
	ui.log.Debug("showing %s (entry %s)", entry.Route, entry.ID)

	ui.screenHost.Objects = []fyne.CanvasObject{screen}
	ui.screenHost.Refresh()
	ui.updateBarVisibility()
}

// leaveCurrent releases the screen being replaced
func (ui *RootUI) leaveCurrent() {
	if ui.flow != nil {
		ui.flow.Unmount()
		ui.flow = nil
	}
	ui.onboardingScreen = nil
	ui.feedScreen = nil
}

// mountOnboarding creates a fresh flow and its screen
func (ui *RootUI) mountOnboarding() fyne.CanvasObject {
	screen := NewOnboardingScreen(ui.localization, ui.resolver, ui.mobile, ui.log)

	animator := ui.deps.Animator
	if animator == nil {
		animator = &FyneAnimator{Duration: ui.deps.PageAnimation, OnFrame: screen.OnFrame}
	}

	flow, err := onboarding.NewFlow(ui.deps.Pages, ui.deps.Nav, ui.deps.Settings, onboarding.Options{
		Animator: animator,
		Mark:     ui.deps.Mark,
		Guard:    ui.deps.Guard,
		Log:      ui.log,
	})
	if err != nil {
		ui.log.Error("mount onboarding: %v", err)
		return NewPlaceholderScreen(model.RouteOnboarding, ui.localization)
	}

	screen.Bind(flow)
	flow.Mount()

	ui.flow = flow
	ui.onboardingScreen = screen
	return screen.Content()
}

// updateBarVisibility hides the bottom bar while onboarding is shown
func (ui *RootUI) updateBarVisibility() {
	if ui.deps.Tabs.BarVisible() {
		ui.menu.Container().Show()
	} else {
		ui.menu.Container().Hide()
	}
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.deps.Settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies a changed language
func (ui *RootUI) onSettingsSaved() {
	lang := ui.deps.Settings.GetLanguage()
	if lang == ui.localization.GetCurrentLanguage() {
		return
	}
	ui.log.Info("language changed to %s", lang)
	ui.localization.SetLanguage(lang)
	ui.refreshUITexts()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.menu.RefreshTexts()
	if ui.feedScreen != nil {
		ui.feedScreen.RefreshTexts()
	}
	if ui.onboardingScreen != nil {
		ui.onboardingScreen.RefreshTexts()
	}
}

// onInstallUpdate receives install request notifications
func (ui *RootUI) onInstallUpdate(req *model.InstallRequest) {
	ui.log.Debug("install request %s for %s: %s", req.ID, req.CardID, req.Status)
}
