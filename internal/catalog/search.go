package catalog

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/ytget/storefront/internal/model"
)

// MaxTypoDistance is the largest edit distance still treated as a match
const MaxTypoDistance = 2

// Search filters cards by query. Substring matches rank first; otherwise a
// card matches when one of its title words is within MaxTypoDistance edits of
// the query. An empty query returns the cards unchanged. Order within a rank
// follows the input order.
func Search(cards []model.GameCard, query string) []model.GameCard {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return cards
	}

	type hit struct {
		card  model.GameCard
		score int
	}
	var hits []hit
	for _, card := range cards {
		if score, ok := matchScore(strings.ToLower(card.Title), query); ok {
			hits = append(hits, hit{card: card, score: score})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score < hits[j].score })

	out := make([]model.GameCard, len(hits))
	for i, h := range hits {
		out[i] = h.card
	}
	return out
}

// matchScore returns 0 for substring matches and 1+distance for fuzzy ones.
func matchScore(title, query string) (int, bool) {
	if strings.Contains(title, query) {
		return 0, true
	}
	// short queries produce too many fuzzy hits
	if utf8.RuneCountInString(query) <= MaxTypoDistance {
		return 0, false
	}

	best := -1
	for _, word := range strings.Fields(title) {
		d := levenshtein.ComputeDistance(word, query)
		if d <= MaxTypoDistance && (best < 0 || d < best) {
			best = d
		}
	}
	if best < 0 {
		return 0, false
	}
	return 1 + best, true
}
