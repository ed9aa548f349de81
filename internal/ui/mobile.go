package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

// MobileUI provides mobile-specific sizing. On desktop the window is given a
// phone-sized frame so the layout matches what a handset shows.
type MobileUI struct {
	mobile bool
}

// NewMobileUI creates a new mobile UI helper for the current device
func NewMobileUI() *MobileUI {
	mobile := false
	if app := fyne.CurrentApp(); app != nil {
		mobile = fyne.CurrentDevice().IsMobile()
	}
	return &MobileUI{mobile: mobile}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.mobile
}

// FitWindow sizes a desktop window like a phone screen. Mobile windows are
// always full screen and are left alone.
func (m *MobileUI) FitWindow(window fyne.Window, width, height int) {
	if m.mobile {
		return
	}
	window.Resize(fyne.NewSize(float32(width), float32(height)))
	window.SetFixedSize(true)
}

// TouchTarget wraps obj so that it is never smaller than the minimum touch
// target in either dimension.
func (m *MobileUI) TouchTarget(obj fyne.CanvasObject) fyne.CanvasObject {
	spacer := canvas.NewRectangle(ColorTransparent)
	spacer.SetMinSize(fyne.NewSize(MinTouchTargetSize, MinTouchTargetSize))
	return container.NewStack(spacer, obj)
}

// GetMobilePadding returns appropriate padding for the screen edges
func (m *MobileUI) GetMobilePadding() float32 {
	if m.mobile {
		return 16
	}
	return 12
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	if !m.mobile {
		return false
	}
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}
