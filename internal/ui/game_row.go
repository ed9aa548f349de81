package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/storefront/internal/model"
)

// NewPromoBadge creates the small colored label shown under a game title.
// An empty text yields an empty object so rows keep the same height.
func NewPromoBadge(text string) fyne.CanvasObject {
	if strings.TrimSpace(text) == "" {
		spacer := canvas.NewRectangle(ColorTransparent)
		spacer.SetMinSize(fyne.NewSize(0, PromoTextSize+6))
		return spacer
	}

	label := canvas.NewText(text, ColorWhite)
	label.TextSize = PromoTextSize
	label.TextStyle = fyne.TextStyle{Bold: true}

	background := canvas.NewRectangle(ColorPromo)
	background.CornerRadius = 4

	return container.NewHBox(container.NewStack(background, container.NewPadded(label)))
}

// NewDownloadPill creates the rounded download control of a game row
func NewDownloadPill(text string, onTapped func()) *widget.Button {
	btn := widget.NewButtonWithIcon(text, theme.DownloadIcon(), onTapped)
	btn.Importance = widget.MediumImportance
	return btn
}

// GameRow is one card of the game set carousel
type GameRow struct {
	widget.BaseWidget

	card         model.GameCard
	resolver     *ImageResolver
	localization *Localization

	// UI components
	icon        *canvas.Image
	titleLabel  *widget.Label
	ratingText  *canvas.Text
	badge       fyne.CanvasObject
	downloadBtn *widget.Button

	// Callbacks
	onDownload func(card model.GameCard)
}

// NewGameRow creates a new game row widget
func NewGameRow(card model.GameCard, resolver *ImageResolver, localization *Localization) *GameRow {
	gr := &GameRow{
		card:         card,
		resolver:     resolver,
		localization: localization,
	}
	gr.ExtendBaseWidget(gr)
	gr.createUI()
	return gr
}

// SetOnDownload sets the download callback
func (gr *GameRow) SetOnDownload(onDownload func(card model.GameCard)) {
	gr.onDownload = onDownload
}

// Card returns the card shown by the row
func (gr *GameRow) Card() model.GameCard {
	return gr.card
}

// RefreshTexts re-reads the localized labels
func (gr *GameRow) RefreshTexts() {
	gr.downloadBtn.SetText(gr.localization.GetText(KeyDownload))
}

// createUI creates the UI components
func (gr *GameRow) createUI() {
	gr.icon = canvas.NewImageFromResource(gr.resolver.Resolve(gr.card.Icon))
	gr.icon.FillMode = canvas.ImageFillContain
	gr.icon.SetMinSize(fyne.NewSize(GameIconSize, GameIconSize))

	gr.titleLabel = widget.NewLabel(gr.card.Title)
	gr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	gr.titleLabel.Truncation = fyne.TextTruncateEllipsis

	gr.ratingText = canvas.NewText(gr.card.RatingText(), ColorRating)
	gr.ratingText.TextSize = RatingTextSize

	gr.badge = NewPromoBadge(gr.card.Badge)

	gr.downloadBtn = NewDownloadPill(gr.localization.GetText(KeyDownload), func() {
		if gr.onDownload != nil {
			gr.onDownload(gr.card)
		}
	})
}

// CreateRenderer implements fyne.Widget
func (gr *GameRow) CreateRenderer() fyne.WidgetRenderer {
	iconBox := canvas.NewRectangle(ColorIconBox)
	iconBox.CornerRadius = GameIconRadius
	iconBox.SetMinSize(fyne.NewSize(GameIconBox, GameIconBox))
	iconCell := container.NewStack(iconBox, container.NewCenter(gr.icon))

	info := container.NewVBox(gr.titleLabel, gr.badge, gr.ratingText)

	// Fixed row width so the carousel pages evenly
	frame := canvas.NewRectangle(ColorTransparent)
	frame.SetMinSize(fyne.NewSize(GameRowWidth, GameRowHeight))

	row := container.NewBorder(nil, nil,
		iconCell,
		container.NewCenter(gr.downloadBtn),
		info,
	)
	return widget.NewSimpleRenderer(container.NewStack(frame, row))
}
