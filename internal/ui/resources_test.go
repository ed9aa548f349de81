package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/storefront/internal/logger"
	"github.com/ytget/storefront/internal/model"
)

func TestImageResolver(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	log := logger.NewBufferLogger()
	r := NewImageResolver(log)

	for _, ref := range []string{ImageStoreLogo, ImageSafety, ImageSmartphone, ImageGame} {
		if r.Resolve(ref) == nil {
			t.Errorf("No resource for %s", ref)
		}
	}

	if got := r.Resolve("missing.png"); got.Name() != theme.BrokenImageIcon().Name() {
		t.Errorf("Expected broken image for a missing file, got %s", got.Name())
	}
	if !log.HasLevel("warn") {
		t.Error("Expected a warning for a missing file")
	}

	if r.Resolve("unknown").Name() != theme.QuestionIcon().Name() {
		t.Error("Expected fallback icon for an unknown reference")
	}
}

func TestTabIcon(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	for _, tab := range model.DefaultTabs() {
		if TabIcon(tab.Route) == nil {
			t.Errorf("No icon for %s", tab.Route)
		}
	}
}
