package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// StoreTheme is the dark storefront theme. The variant requested by the
// system is ignored: the store always renders dark.
type StoreTheme struct{}

// NewStoreTheme creates a new store theme
func NewStoreTheme() fyne.Theme {
	return &StoreTheme{}
}

// Color returns theme colors
func (t *StoreTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return ColorBackground
	case theme.ColorNameForeground:
		return ColorWhite
	case theme.ColorNamePrimary:
		return ColorAccent
	case theme.ColorNameButton:
		return ColorPill
	case theme.ColorNameInputBackground:
		return ColorSurface
	case theme.ColorNamePlaceHolder:
		return ColorMuted
	case theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return color.NRGBA{R: 0x1E, G: 0x1E, B: 0x1E, A: 0xff}
	case theme.ColorNameSeparator:
		return color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	case theme.ColorNameError:
		return ColorBadge
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *StoreTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *StoreTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *StoreTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 4
	case theme.SizeNameInnerPadding:
		return 8
	case theme.SizeNameText:
		return 14
	case theme.SizeNameHeadingText:
		return 20 // game set title
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameCaptionText:
		return 12
	case theme.SizeNameInputRadius:
		return 14 // rounded search bar
	case theme.SizeNameSelectionRadius:
		return 6
	}

	return theme.DefaultTheme().Size(name)
}
