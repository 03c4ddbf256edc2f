package catalog

import (
	"strings"

	"github.com/talkbazaar/storefront/internal/domain"
)

// Weights carries the per-field relevance weights. Kept as data so the
// ranking can be tuned without touching the scoring loop.
type Weights struct {
	Title       int `yaml:"title" json:"title"`
	Brand       int `yaml:"brand" json:"brand"`
	Category    int `yaml:"category" json:"category"`
	Description int `yaml:"description" json:"description"`
	Combined    int `yaml:"combined" json:"combined"`
}

// DefaultWeights mirror the storefront ranking: title hits dominate, a
// combined-fields hit adds a single point on top of any field hit.
func DefaultWeights() Weights {
	return Weights{Title: 10, Brand: 8, Category: 6, Description: 2, Combined: 1}
}

// Scorer measures how strongly a product matches a set of expanded search
// terms. Matching is plain case-insensitive substring containment, no
// stemming and no fuzziness, so a score is always reproducible.
type Scorer struct {
	weights Weights
}

func NewScorer(weights Weights) *Scorer {
	return &Scorer{weights: weights}
}

// Score sums the field weights over every term. Each term contributes
// independently per matched field, so a term hitting title and description
// adds title+description+combined. A product with no hit scores 0.
func (s *Scorer) Score(p domain.Product, terms []string) int {
	title := strings.ToLower(p.Title)
	brand := strings.ToLower(p.Brand)
	category := strings.ToLower(p.Category)
	description := strings.ToLower(p.Description)
	combined := title + " " + brand + " " + category + " " + description

	score := 0
	for _, term := range terms {
		t := strings.ToLower(term)
		if t == "" {
			continue
		}
		if strings.Contains(title, t) {
			score += s.weights.Title
		}
		if strings.Contains(brand, t) {
			score += s.weights.Brand
		}
		if strings.Contains(category, t) {
			score += s.weights.Category
		}
		if strings.Contains(description, t) {
			score += s.weights.Description
		}
		if strings.Contains(combined, t) {
			score += s.weights.Combined
		}
	}
	return score
}
