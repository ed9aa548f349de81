package catalog

import (
	"embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ytget/storefront/internal/model"
)

//go:embed content/*.yaml
var content embed.FS

const (
	feedFile       = "content/feed.yaml"
	onboardingFile = "content/onboarding.yaml"
)

// ErrNoPages is returned when the onboarding content has no pages
var ErrNoPages = errors.New("onboarding has no pages")

type cardTemplate struct {
	Count  int     `yaml:"count"`
	Title  string  `yaml:"title"`
	Badge  string  `yaml:"badge"`
	Rating float64 `yaml:"rating"`
	Icon   string  `yaml:"icon"`
}

type feedDoc struct {
	SearchPlaceholder string         `yaml:"search_placeholder"`
	Banner            model.AdBanner `yaml:"banner"`
	GameSet           struct {
		Title    string           `yaml:"title"`
		Subtitle string           `yaml:"subtitle"`
		Rows     int              `yaml:"rows"`
		Cards    []model.GameCard `yaml:"cards"`
		Template *cardTemplate    `yaml:"template"`
	} `yaml:"game_set"`
}

type onboardingDoc struct {
	Pages []model.OnboardingPage `yaml:"pages"`
}

// LoadFeed returns the embedded feed content.
func LoadFeed() (*model.Feed, error) {
	data, err := content.ReadFile(feedFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", feedFile, err)
	}
	return ParseFeed(data)
}

// ParseFeed decodes feed YAML. Cards listed explicitly come first, followed by
// the ones generated from the template.
func ParseFeed(data []byte) (*model.Feed, error) {
	var doc feedDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	cards := append([]model.GameCard(nil), doc.GameSet.Cards...)
	if tpl := doc.GameSet.Template; tpl != nil {
		for i := 0; i < tpl.Count; i++ {
			cards = append(cards, model.GameCard{
				ID:     fmt.Sprintf("game-%d", i),
				Title:  fmt.Sprintf(tpl.Title, i),
				Badge:  tpl.Badge,
				Rating: tpl.Rating,
				Icon:   tpl.Icon,
			})
		}
	}
	for i := range cards {
		if cards[i].ID == "" {
			cards[i].ID = fmt.Sprintf("card-%d", i)
		}
	}

	rows := doc.GameSet.Rows
	if rows <= 0 {
		rows = 1
	}

	return &model.Feed{
		SearchPlaceholder: doc.SearchPlaceholder,
		Banner:            doc.Banner,
		GameSet: model.GameSet{
			Title:    doc.GameSet.Title,
			Subtitle: doc.GameSet.Subtitle,
			Rows:     rows,
			Cards:    cards,
		},
	}, nil
}

// LoadOnboarding returns the embedded onboarding pages in display order.
func LoadOnboarding() ([]model.OnboardingPage, error) {
	data, err := content.ReadFile(onboardingFile)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", onboardingFile, err)
	}
	return ParseOnboarding(data)
}

// ParseOnboarding decodes onboarding YAML and rejects an empty page list.
func ParseOnboarding(data []byte) ([]model.OnboardingPage, error) {
	var doc onboardingDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse onboarding: %w", err)
	}
	if len(doc.Pages) == 0 {
		return nil, ErrNoPages
	}
	for i, p := range doc.Pages {
		if p.Title == "" {
			return nil, fmt.Errorf("onboarding page %d: empty title", i)
		}
	}
	return doc.Pages, nil
}
