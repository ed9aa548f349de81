package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/storefront/internal/logger"
	"github.com/ytget/storefront/internal/onboarding"
)

// onboardingTheme renders the onboarding pager light on top of the dark store theme
type onboardingTheme struct {
	fyne.Theme
}

func (t onboardingTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return ColorWhite
	case theme.ColorNameForeground:
		return ColorBlack
	case theme.ColorNameButton:
		return ColorOnboardingIcon
	}
	return t.Theme.Color(name, theme.VariantLight)
}

// OnboardingScreen renders an onboarding.Flow: the page content, the page
// indicator, the Next button and the Skip button.
type OnboardingScreen struct {
	flow         *onboarding.Flow
	localization *Localization
	resolver     *ImageResolver
	mobile       *MobileUI
	log          logger.Logger

	shown int

	// UI components
	image      *canvas.Image
	titleLabel *widget.Label
	descLabel  *widget.Label
	dotsBox    *fyne.Container
	dots       []*canvas.Circle
	nextBtn    *widget.Button
	skipBtn    *widget.Button
	content    fyne.CanvasObject
}

// NewOnboardingScreen creates the screen. It shows nothing useful until Bind.
func NewOnboardingScreen(localization *Localization, resolver *ImageResolver, mobile *MobileUI, log logger.Logger) *OnboardingScreen {
	s := &OnboardingScreen{
		localization: localization,
		resolver:     resolver,
		mobile:       mobile,
		log:          logger.OrNoop(log),
	}
	s.createUI()
	return s
}

// Bind attaches the flow the screen renders and drives
func (s *OnboardingScreen) Bind(flow *onboarding.Flow) {
	s.flow = flow
	s.dots = make([]*canvas.Circle, len(flow.Pages()))
	objects := make([]fyne.CanvasObject, len(s.dots))
	for i := range s.dots {
		s.dots[i] = canvas.NewCircle(ColorDotInactive)
		sizer := canvas.NewRectangle(ColorTransparent)
		sizer.SetMinSize(fyne.NewSize(OnboardingDotSize, OnboardingDotSize))
		objects[i] = container.NewStack(sizer, s.dots[i])
	}
	s.dotsBox.Objects = objects
	s.dotsBox.Refresh()

	flow.OnPageChanged(func(int) {
		s.showPage(flow.Page())
		s.updateControls()
	})
	s.showPage(flow.Page())
	s.updateControls()
}

// Content returns the screen's canvas object
func (s *OnboardingScreen) Content() fyne.CanvasObject {
	return s.content
}

// OnFrame follows a running page transition: the content switches to the
// target page halfway through.
func (s *OnboardingScreen) OnFrame(from, to int, progress float32) {
	page := from
	if progress >= 0.5 {
		page = to
	}
	if page != s.shown {
		s.showPage(page)
	}
}

// RefreshTexts re-reads the localized labels
func (s *OnboardingScreen) RefreshTexts() {
	s.skipBtn.SetText(s.localization.GetText(KeySkip))
	s.updateControls()
}

func (s *OnboardingScreen) createUI() {
	s.image = canvas.NewImageFromResource(theme.QuestionIcon())
	s.image.FillMode = canvas.ImageFillContain
	s.image.SetMinSize(fyne.NewSize(OnboardingImageSize, OnboardingImageSize))

	imageBox := canvas.NewRectangle(ColorOnboardingIcon)
	imageBox.CornerRadius = OnboardingImageSize / 2

	s.titleLabel = widget.NewLabel("")
	s.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	s.titleLabel.Alignment = fyne.TextAlignCenter
	s.titleLabel.Wrapping = fyne.TextWrapWord
	s.titleLabel.SizeName = theme.SizeNameHeadingText

	s.descLabel = widget.NewLabel("")
	s.descLabel.Alignment = fyne.TextAlignCenter
	s.descLabel.Wrapping = fyne.TextWrapWord

	page := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(container.NewStack(imageBox, s.image)),
		s.titleLabel,
		s.descLabel,
		layout.NewSpacer(),
	)
	swipe := NewSwipeArea(page, s.onGesture)

	s.dotsBox = container.NewHBox()

	s.nextBtn = widget.NewButton(s.localization.GetText(KeyNext), s.onNext)
	s.nextBtn.Importance = widget.HighImportance

	s.skipBtn = widget.NewButton(s.localization.GetText(KeySkip), s.onSkip)
	s.skipBtn.Importance = widget.LowImportance

	controls := container.NewVBox(
		container.NewCenter(s.dotsBox),
		s.mobile.TouchTarget(s.nextBtn),
		container.NewCenter(s.skipBtn),
	)

	background := canvas.NewRectangle(ColorWhite)
	pad := s.mobile.GetMobilePadding()
	body := container.NewBorder(nil, controls, nil, nil, swipe)
	s.content = container.NewThemeOverride(
		container.NewStack(background, container.New(layout.NewCustomPaddedLayout(pad, pad, pad, pad), body)),
		onboardingTheme{Theme: NewStoreTheme()},
	)
}

// showPage renders page i
func (s *OnboardingScreen) showPage(i int) {
	if s.flow == nil {
		return
	}
	pages := s.flow.Pages()
	if i < 0 || i >= len(pages) {
		return
	}
	s.shown = i
	p := pages[i]

	s.image.Resource = s.resolver.Resolve(p.Image)
	s.image.Refresh()
	s.titleLabel.SetText(p.Title)
	s.descLabel.SetText(p.Description)

	for j, dot := range s.dots {
		if j == i {
			dot.FillColor = ColorAccent
		} else {
			dot.FillColor = ColorDotInactive
		}
		dot.Refresh()
	}
}

// updateControls syncs the buttons with the settled page
func (s *OnboardingScreen) updateControls() {
	if s.flow == nil {
		return
	}
	if s.flow.IsLastPage() {
		s.nextBtn.SetText(s.localization.GetText(KeyStartBrowsing))
	} else {
		s.nextBtn.SetText(s.localization.GetText(KeyNext))
	}
	if s.flow.SkipVisible() {
		s.skipBtn.Show()
	} else {
		s.skipBtn.Hide()
	}
}

func (s *OnboardingScreen) onNext() {
	if s.flow == nil {
		return
	}
	if err := s.flow.Next(); err != nil {
		s.log.Error("onboarding next: %v", err)
	}
}

func (s *OnboardingScreen) onSkip() {
	if s.flow == nil {
		return
	}
	if err := s.flow.Skip(); err != nil {
		s.log.Error("onboarding skip: %v", err)
	}
}

func (s *OnboardingScreen) onGesture(g GestureType) {
	if s.flow == nil {
		return
	}
	switch g {
	case GestureSwipeLeft:
		s.flow.Swipe(1)
	case GestureSwipeRight:
		s.flow.Swipe(-1)
	}
}
