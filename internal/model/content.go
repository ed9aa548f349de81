package model

import "fmt"

// OnboardingPage is one screen of the onboarding pager
type OnboardingPage struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Image       string `yaml:"image"` // symbolic image reference resolved by the UI
}

// GameCard is a single entry of the feed game set
type GameCard struct {
	ID     string  `yaml:"id"`
	Title  string  `yaml:"title"`
	Badge  string  `yaml:"badge"`
	Rating float64 `yaml:"rating"`
	Icon   string  `yaml:"icon"`
}

// RatingText formats the rating the way the feed shows it, e.g. "★ 5,0".
func (c GameCard) RatingText() string {
	s := fmt.Sprintf("%.1f", c.Rating)
	// decimal comma
	for i := 0; i < len(s); i++ {
		if s[i] == '.' {
			s = s[:i] + "," + s[i+1:]
			break
		}
	}
	return "★ " + s
}

// GameSet is a titled carousel of game cards
type GameSet struct {
	Title    string     `yaml:"title"`
	Subtitle string     `yaml:"subtitle"`
	Rows     int        `yaml:"rows"`
	Cards    []GameCard `yaml:"cards"`
}

// AdBanner is the promotional block under the search bar
type AdBanner struct {
	Title  string `yaml:"title"`
	Height int    `yaml:"height"`
}

// Feed is everything the feed screen renders
type Feed struct {
	SearchPlaceholder string   `yaml:"search_placeholder"`
	Banner            AdBanner `yaml:"banner"`
	GameSet           GameSet  `yaml:"game_set"`
}
