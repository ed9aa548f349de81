package ui

import (
	"image/color"
	"time"
)

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Colors
var (
	ColorBackground     = color.NRGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xff}
	ColorSurface        = color.NRGBA{R: 0x2B, G: 0x2B, B: 0x2B, A: 0xff}
	ColorPill           = color.NRGBA{R: 0x2A, G: 0x2A, B: 0x2A, A: 0xff}
	ColorAccent         = color.NRGBA{R: 0x2F, G: 0x86, B: 0xFF, A: 0xff}
	ColorPromo          = color.NRGBA{R: 0x6C, G: 0x49, B: 0xFF, A: 0xff}
	ColorBadge          = color.NRGBA{R: 0xFF, G: 0x3B, B: 0x30, A: 0xff}
	ColorBanner         = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	ColorIconBox        = color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 0xff}
	ColorMuted          = color.NRGBA{R: 0x9B, G: 0xA0, B: 0xA6, A: 0xff}
	ColorRating         = color.NRGBA{R: 0xBD, G: 0xBD, B: 0xBD, A: 0xff}
	ColorWhite          = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	ColorOnboardingIcon = color.NRGBA{R: 0xF5, G: 0xF5, B: 0xF5, A: 0xff}
	ColorDotInactive    = color.NRGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xff}
	ColorBlack          = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	ColorTransparent    = color.NRGBA{}
)

// Layout sizing
const (
	SearchBarHeight float32 = 54

	BannerRadius float32 = 18

	GameRowWidth   float32 = 360
	GameRowHeight  float32 = 76
	GameIconBox    float32 = 60
	GameIconSize   float32 = 40
	GameIconRadius float32 = 12
	GameSetHeight  float32 = 260

	PromoTextSize  float32 = 10
	RatingTextSize float32 = 13

	MenuLineHeight float32 = 56

	OnboardingImageSize float32 = 200
	OnboardingDotSize   float32 = 12

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
)

// Per-entry navigation state keys
const (
	StateSearchQuery = "search_query"
	StateGameScrollX = "game_scroll_x"
)

// Delays
const (
	InstallToastAutoHide = 1500 * time.Millisecond
)
