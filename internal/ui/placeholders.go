package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/storefront/internal/model"
)

// placeholderKeys maps the tabs without content to their caption
var placeholderKeys = map[model.Route]string{
	model.RouteApps:    KeyPlaceholderApps,
	model.RouteGames:   KeyPlaceholderGames,
	model.RouteKiosk:   KeyPlaceholderKiosk,
	model.RouteProfile: KeyPlaceholderProfil,
}

// NewPlaceholderScreen creates the static screen shown for a tab with no content yet
func NewPlaceholderScreen(route model.Route, localization *Localization) fyne.CanvasObject {
	key, ok := placeholderKeys[route]
	if !ok {
		key = route.String()
	}
	label := widget.NewLabel(localization.GetText(key))
	label.TextStyle = fyne.TextStyle{Bold: true}
	return container.NewPadded(container.NewVBox(label))
}
