package cli

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/storefront/internal/catalog"
	"github.com/ytget/storefront/internal/config"
	"github.com/ytget/storefront/internal/download"
	"github.com/ytget/storefront/internal/guard"
	"github.com/ytget/storefront/internal/logger"
	"github.com/ytget/storefront/internal/model"
	"github.com/ytget/storefront/internal/nav"
	"github.com/ytget/storefront/internal/onboarding"
	"github.com/ytget/storefront/internal/ui"
)

// newApp creates the Fyne application. Tests replace it with test.NewApp.
var newApp = func(id string) fyne.App {
	return app.NewWithID(id)
}

// runApp opens the store window and blocks until it is closed
func runApp(cfg *config.Launch, strict bool) error {
	log := logger.New("[storefront]")
	log.Info("storefront %s starting (strict=%v)", formatVersion(version), strict)

	a := newApp(cfg.AppID)
	a.Settings().SetTheme(ui.NewStoreTheme())

	window := a.NewWindow("RuStore")
	ui.NewMobileUI().FitWindow(window, cfg.Window.Width, cfg.Window.Height)

	if _, err := wire(a, window, cfg, strict); err != nil {
		return err
	}

	window.ShowAndRun()
	return nil
}

// wire builds the object graph behind the window: settings, the onboarding
// gate, navigation and the root UI.
func wire(a fyne.App, window fyne.Window, cfg *config.Launch, strict bool) (*ui.RootUI, error) {
	settings := config.NewSettings(a.Preferences(), cfg.PrefsNamespace)
	if cfg.ResetOnboarding {
		settings.ResetOnboarding()
	}
	if cfg.Language != "" {
		settings.SetLanguage(cfg.Language)
	}

	policy := guard.Policy{Strict: strict, Log: logger.New("[guard]")}

	gate := onboarding.NewGate(settings, logger.New("[onboarding]"))
	navCtl, err := nav.NewController(gate.StartRoute(), logger.New("[nav]"))
	if err != nil {
		return nil, fmt.Errorf("navigation: %w", err)
	}
	tabs, err := nav.NewTabController(navCtl, model.DefaultTabs(), policy, logger.New("[tabs]"))
	if err != nil {
		return nil, fmt.Errorf("tabs: %w", err)
	}

	feed, err := catalog.LoadFeed()
	if err != nil {
		return nil, fmt.Errorf("feed content: %w", err)
	}
	pages, err := catalog.LoadOnboarding()
	if err != nil {
		return nil, fmt.Errorf("onboarding content: %w", err)
	}

	return ui.NewRootUI(window, ui.Deps{
		Settings:      settings,
		Nav:           navCtl,
		Tabs:          tabs,
		Feed:          feed,
		Pages:         pages,
		Installer:     download.NewService(logger.New("[install]")),
		Guard:         policy,
		Mark:          onboarding.MarkOnMount,
		PageAnimation: cfg.PageAnimation,
		Log:           logger.New("[ui]"),
	})
}
