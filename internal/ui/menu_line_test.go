package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/storefront/internal/model"
)

func TestMenuLine(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var tapped []int
	m := NewMenuLine(model.DefaultTabs(), NewLocalization(), 0, func(i int) {
		tapped = append(tapped, i)
	})

	if m.Button(0).Importance != widget.HighImportance {
		t.Error("Selected tab should be highlighted")
	}
	if m.Button(0).Text != "Главная" {
		t.Errorf("Expected Главная, got %q", m.Button(0).Text)
	}

	test.Tap(m.Button(3))
	if len(tapped) != 1 || tapped[0] != 3 {
		t.Errorf("Expected tap on 3, got %v", tapped)
	}
	// Tapping only reports; selection follows the controller
	if m.Selected() != 0 {
		t.Errorf("Selection changed without SetSelected: %d", m.Selected())
	}

	m.SetSelected(3)
	if m.Button(3).Importance != widget.HighImportance || m.Button(0).Importance != widget.LowImportance {
		t.Error("Highlight did not move to tab 3")
	}
}
