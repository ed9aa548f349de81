package ui

import (
	"strconv"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/storefront/internal/catalog"
	"github.com/ytget/storefront/internal/download"
	"github.com/ytget/storefront/internal/logger"
	"github.com/ytget/storefront/internal/model"
)

// StateStore keeps UI state that belongs to the current back stack entry
type StateStore interface {
	State(key string) (string, bool)
	SetState(key, value string)
}

// FeedScreen is the main tab: search bar, ad banner and the game set
type FeedScreen struct {
	feed         *model.Feed
	localization *Localization
	resolver     *ImageResolver
	installer    download.Installer
	state        StateStore
	canvas       fyne.Canvas
	log          logger.Logger
	onAvatar     func()

	// UI components
	searchEntry *widget.Entry
	avatarBtn   *widget.Button
	grid        *fyne.Container
	gameScroll  *container.Scroll
	emptyLabel  *widget.Label
	rows        []*GameRow
	content     fyne.CanvasObject
}

// NewFeedScreen builds the feed and restores the query and carousel position
// kept in state.
func NewFeedScreen(feed *model.Feed, localization *Localization, resolver *ImageResolver,
	installer download.Installer, state StateStore, c fyne.Canvas, log logger.Logger, onAvatar func()) *FeedScreen {
	fs := &FeedScreen{
		feed:         feed,
		localization: localization,
		resolver:     resolver,
		installer:    installer,
		state:        state,
		canvas:       c,
		log:          logger.OrNoop(log),
		onAvatar:     onAvatar,
	}
	fs.createUI()
	fs.restoreState()
	return fs
}

// Content returns the screen's canvas object
func (fs *FeedScreen) Content() fyne.CanvasObject {
	return fs.content
}

// Rows returns the rows currently shown in the game set
func (fs *FeedScreen) Rows() []*GameRow {
	return fs.rows
}

// Query returns the current search text
func (fs *FeedScreen) Query() string {
	return fs.searchEntry.Text
}

// RefreshTexts re-reads the localized labels
func (fs *FeedScreen) RefreshTexts() {
	fs.searchEntry.SetPlaceHolder(fs.placeholder())
	fs.emptyLabel.SetText(fs.localization.GetText(KeyNothingFound))
	for _, row := range fs.rows {
		row.RefreshTexts()
	}
}

func (fs *FeedScreen) createUI() {
	body := container.NewVBox(
		fs.createSearchBar(),
		fs.createAdBox(),
		fs.createGameSet(),
	)
	fs.content = container.NewVScroll(container.NewPadded(body))
}

func (fs *FeedScreen) placeholder() string {
	if fs.feed.SearchPlaceholder != "" && fs.localization.GetCurrentLanguage() == "ru" {
		return fs.feed.SearchPlaceholder
	}
	return fs.localization.GetText(KeySearchHint)
}

// createSearchBar creates the rounded search field with the voice and avatar buttons
func (fs *FeedScreen) createSearchBar() fyne.CanvasObject {
	fs.searchEntry = widget.NewEntry()
	fs.searchEntry.SetPlaceHolder(fs.placeholder())

	voiceBtn := widget.NewButtonWithIcon("", theme.MediaRecordIcon(), func() {
		fs.log.Debug("voice search is not available")
	})
	voiceBtn.Importance = widget.LowImportance

	fs.avatarBtn = widget.NewButtonWithIcon("", theme.AccountIcon(), func() {
		if fs.onAvatar != nil {
			fs.onAvatar()
		}
	})
	fs.avatarBtn.Importance = widget.LowImportance

	background := canvas.NewRectangle(ColorSurface)
	background.CornerRadius = SearchBarHeight / 2
	background.SetMinSize(fyne.NewSize(0, SearchBarHeight))

	bar := container.NewBorder(nil, nil,
		widget.NewIcon(theme.SearchIcon()),
		container.NewHBox(voiceBtn, fs.avatarBtn),
		fs.searchEntry,
	)
	return container.NewStack(background, container.NewPadded(bar))
}

// createAdBox creates the promotional banner placeholder
func (fs *FeedScreen) createAdBox() fyne.CanvasObject {
	banner := canvas.NewRectangle(ColorBanner)
	banner.CornerRadius = BannerRadius
	banner.SetMinSize(fyne.NewSize(0, float32(fs.feed.Banner.Height)))

	if fs.feed.Banner.Title == "" {
		return banner
	}
	title := canvas.NewText(fs.feed.Banner.Title, ColorWhite)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = theme.TextHeadingSize()
	return container.NewStack(banner, container.NewCenter(title))
}

// createGameSet creates the titled horizontal carousel
func (fs *FeedScreen) createGameSet() fyne.CanvasObject {
	set := fs.feed.GameSet

	title := canvas.NewText(set.Title, ColorWhite)
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = theme.TextHeadingSize()

	subtitle := canvas.NewText(set.Subtitle, ColorMuted)
	subtitle.TextSize = theme.CaptionTextSize()

	rows := set.Rows
	if rows < 1 {
		rows = 1
	}
	fs.grid = container.NewGridWithRows(rows)
	fs.gameScroll = container.NewHScroll(fs.grid)
	fs.gameScroll.SetMinSize(fyne.NewSize(0, GameSetHeight))

	fs.emptyLabel = widget.NewLabel(fs.localization.GetText(KeyNothingFound))
	fs.emptyLabel.Hide()

	return container.NewVBox(
		container.NewHBox(title, widget.NewIcon(theme.NavigateNextIcon())),
		subtitle,
		fs.emptyLabel,
		fs.gameScroll,
	)
}

// restoreState applies the query and carousel offset saved in the entry
func (fs *FeedScreen) restoreState() {
	query := ""
	if fs.state != nil {
		query, _ = fs.state.State(StateSearchQuery)
	}
	fs.searchEntry.SetText(query)
	fs.applyQuery(query)

	fs.searchEntry.OnChanged = fs.onQueryChanged

	if fs.state == nil {
		return
	}
	if raw, ok := fs.state.State(StateGameScrollX); ok {
		if x, err := strconv.ParseFloat(raw, 32); err == nil {
			fs.gameScroll.Offset = fyne.NewPos(float32(x), 0)
			fs.gameScroll.Refresh()
		}
	}
	fs.gameScroll.OnScrolled = func(pos fyne.Position) {
		fs.state.SetState(StateGameScrollX, strconv.FormatFloat(float64(pos.X), 'f', 0, 32))
	}
}

// onQueryChanged filters the game set and remembers the query
func (fs *FeedScreen) onQueryChanged(query string) {
	if fs.state != nil {
		fs.state.SetState(StateSearchQuery, query)
	}
	fs.applyQuery(query)
}

func (fs *FeedScreen) applyQuery(query string) {
	cards := catalog.Search(fs.feed.GameSet.Cards, query)
	fs.log.Debug("search %q matched %d cards", query, len(cards))

	fs.rows = make([]*GameRow, 0, len(cards))
	objects := make([]fyne.CanvasObject, 0, len(cards))
	for _, card := range cards {
		row := NewGameRow(card, fs.resolver, fs.localization)
		row.SetOnDownload(fs.onDownload)
		fs.rows = append(fs.rows, row)
		objects = append(objects, row)
	}
	fs.grid.Objects = objects
	fs.grid.Refresh()

	if len(cards) == 0 {
		fs.emptyLabel.Show()
		fs.gameScroll.Hide()
	} else {
		fs.emptyLabel.Hide()
		fs.gameScroll.Show()
	}
}

// onDownload hands the card to the installer and tells the user what happened
func (fs *FeedScreen) onDownload(card model.GameCard) {
	if fs.installer == nil {
		return
	}
	req, err := fs.installer.Request(card)
	if err != nil {
		fs.log.Error("install request for %q failed: %v", card.ID, err)
		return
	}

	key := KeyInstallRequested
	if req.Status == model.InstallStatusQueued {
		key = KeyInstallQueued
	}
	fs.showToast(fs.localization.GetText(key))
}

// showToast shows a short message over the screen
func (fs *FeedScreen) showToast(message string) {
	if fs.canvas == nil {
		return
	}
	popup := widget.NewPopUp(widget.NewLabel(message), fs.canvas)
	popup.ShowAtPosition(fyne.NewPos(theme.Padding()*4, fs.canvas.Size().Height/2))

	go func() {
		time.Sleep(InstallToastAutoHide)
		fyne.Do(popup.Hide)
	}()
}
