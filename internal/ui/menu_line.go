package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/storefront/internal/model"
)

// MenuLine is the bottom navigation bar: one button per tab, the selected one
// highlighted.
type MenuLine struct {
	tabs         []model.Tab
	localization *Localization
	onSelect     func(index int)

	buttons   []*widget.Button
	selected  int
	container *fyne.Container
}

// NewMenuLine creates the bar. onSelect receives the index of the tapped tab.
func NewMenuLine(tabs []model.Tab, localization *Localization, selected int, onSelect func(index int)) *MenuLine {
	m := &MenuLine{
		tabs:         tabs,
		localization: localization,
		onSelect:     onSelect,
		selected:     selected,
	}
	m.createUI()
	return m
}

func (m *MenuLine) createUI() {
	m.buttons = make([]*widget.Button, len(m.tabs))
	objects := make([]fyne.CanvasObject, len(m.tabs))
	for i, tab := range m.tabs {
		index := i // Capture for closure
		btn := widget.NewButtonWithIcon(m.localization.GetText(tab.Label), TabIcon(tab.Route), func() {
			if m.onSelect != nil {
				m.onSelect(index)
			}
		})
		m.buttons[i] = btn
		objects[i] = btn
	}
	m.applySelection()

	background := canvas.NewRectangle(ColorBackground)
	background.SetMinSize(fyne.NewSize(0, MenuLineHeight))
	m.container = container.NewStack(
		background,
		container.NewVBox(widget.NewSeparator(), container.NewGridWithColumns(len(m.tabs), objects...)),
	)
}

// Container returns the bar's canvas object
func (m *MenuLine) Container() *fyne.Container {
	return m.container
}

// Button returns the button of tab index
func (m *MenuLine) Button(index int) *widget.Button {
	return m.buttons[index]
}

// Selected returns the highlighted tab
func (m *MenuLine) Selected() int {
	return m.selected
}

// SetSelected highlights the tab at index
func (m *MenuLine) SetSelected(index int) {
	if index == m.selected {
		return
	}
	m.selected = index
	m.applySelection()
}

// RefreshTexts re-reads the labels after a language change
func (m *MenuLine) RefreshTexts() {
	for i, tab := range m.tabs {
		m.buttons[i].SetText(m.localization.GetText(tab.Label))
	}
}

func (m *MenuLine) applySelection() {
	for i, btn := range m.buttons {
		if i == m.selected {
			btn.Importance = widget.HighImportance
		} else {
			btn.Importance = widget.LowImportance
		}
		btn.Refresh()
	}
}
