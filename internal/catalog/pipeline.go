package catalog

import (
	"sort"
	"strings"

	"github.com/talkbazaar/storefront/internal/domain"
)

// Request is the full input of one catalog computation. The pipeline is a
// pure function of (products, Request): re-running it with the same inputs
// yields the same ordered list.
type Request struct {
	Query   string             `json:"query"`
	Segment Segment            `json:"segment"`
	Filters domain.FilterState `json:"filters"`
	Sort    domain.SortOption  `json:"sort"`
}

// Pipeline composes text relevance, structured filters and a sort order into
// a single deterministic transform. It never mutates the input slice.
type Pipeline struct {
	expander *Expander
	scorer   *Scorer
	minScore int
}

// New builds a pipeline. minScore is the relevance threshold a product must
// reach to survive a non-blank query; values below 1 fall back to 1.
func New(expander *Expander, scorer *Scorer, minScore int) *Pipeline {
	if minScore < 1 {
		minScore = 1
	}
	return &Pipeline{expander: expander, scorer: scorer, minScore: minScore}
}

// Default returns a pipeline with the built-in synonym table and weights.
func Default() *Pipeline {
	return New(NewExpander(), NewScorer(DefaultWeights()), 1)
}

// Run executes the stages in order: segment slice, text relevance (skipped on
// a blank query), structured filters, sort. Sorting is stable so equal keys
// keep their input order.
func (pl *Pipeline) Run(products []domain.Product, req Request) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if InSegment(p, req.Segment) {
			out = append(out, p)
		}
	}

	if strings.TrimSpace(req.Query) != "" {
		terms := pl.expander.Expand(req.Query)
		kept := out[:0]
		for _, p := range out {
			if pl.scorer.Score(p, terms) >= pl.minScore {
				kept = append(kept, p)
			}
		}
		out = kept
	}

	kept := out[:0]
	for _, p := range out {
		if req.Filters.Matches(p) {
			kept = append(kept, p)
		}
	}
	out = kept

	sortProducts(out, req.Sort)
	return out
}

// QuickSearch is the header search drawer: relevance-ordered matches for a
// query with no structured filters, truncated to limit. Scores only matter
// here; full catalog pages always order by the requested sort.
func (pl *Pipeline) QuickSearch(products []domain.Product, query string, limit int) []domain.Product {
	if strings.TrimSpace(query) == "" {
		return []domain.Product{}
	}
	terms := pl.expander.Expand(query)

	type scored struct {
		product domain.Product
		score   int
	}
	matches := make([]scored, 0, len(products))
	for _, p := range products {
		if s := pl.scorer.Score(p, terms); s >= pl.minScore {
			matches = append(matches, scored{product: p, score: s})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]domain.Product, len(matches))
	for n, m := range matches {
		out[n] = m.product
	}
	return out
}

func sortProducts(products []domain.Product, by domain.SortOption) {
	switch by {
	case domain.SortPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() < products[j].EffectivePrice()
		})
	case domain.SortPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() > products[j].EffectivePrice()
		})
	case domain.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default: // newest
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ID > products[j].ID
		})
	}
}

// AvailableBrands returns the sorted distinct brand names of a product slice,
// used to populate the filter sidebar.
func AvailableBrands(products []domain.Product) []string {
	seen := make(map[string]struct{}, len(products))
	brands := make([]string, 0, len(products))
	for _, p := range products {
		if p.Brand == "" {
			continue
		}
		if _, ok := seen[p.Brand]; !ok {
			seen[p.Brand] = struct{}{}
			brands = append(brands, p.Brand)
		}
	}
	sort.Strings(brands)
	return brands
}
