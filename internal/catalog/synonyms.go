package catalog

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// defaultSynonyms maps a search term to related category/term strings. The
// table is data, not control flow: it can be replaced wholesale from a yaml
// file (see LoadSynonyms).
var defaultSynonyms = map[string][]string{
	"shirt":     {"mens-shirts", "tops"},
	"pant":      {"pants", "trousers", "jeans"},
	"pants":     {"pants", "trousers", "jeans"},
	"trouser":   {"pants", "trousers", "jeans"},
	"trousers":  {"pants", "trousers", "jeans"},
	"one piece": {"womens-dresses", "dress"},
	"onepiece":  {"womens-dresses", "dress"},
	"kurti":     {"womens-dresses", "tops", "kurti", "kurta"},
	"kurta":     {"womens-dresses", "tops", "kurti", "kurta"},
	"watch":     {"mens-watches", "womens-watches"},
	"glasses":   {"sunglasses"},
	"jewelry":   {"womens-jewellery"},
	"jewellery": {"womens-jewellery"},
}

// Expander tokenizes a free-text query and unions in synonyms from its table.
type Expander struct {
	synonyms map[string][]string
}

// NewExpander returns an Expander backed by the built-in synonym table.
func NewExpander() *Expander {
	return &Expander{synonyms: defaultSynonyms}
}

// NewExpanderWithTable returns an Expander backed by the given table. A nil
// table behaves like an empty one.
func NewExpanderWithTable(table map[string][]string) *Expander {
	if table == nil {
		table = map[string][]string{}
	}
	return &Expander{synonyms: table}
}

// LoadSynonyms reads a yaml mapping of term -> [synonym, ...] and returns an
// Expander over it. Keys are lower-cased on load.
func LoadSynonyms(file string) (*Expander, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrap(err, "read synonyms file")
	}
	var table map[string][]string
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, errors.Wrap(err, "parse synonyms file")
	}
	normalized := make(map[string][]string, len(table))
	for k, v := range table {
		normalized[strings.ToLower(k)] = v
	}
	return NewExpanderWithTable(normalized), nil
}

// Tokenize lower-cases the query and splits it on runs of whitespace,
// dropping empty tokens.
func Tokenize(query string) []string {
	return strings.Fields(strings.ToLower(query))
}

// Expand produces the term set for a query: every raw token plus every
// synonym of a token present in the table. An empty or blank query yields an
// empty set.
func (e *Expander) Expand(query string) []string {
	tokens := Tokenize(query)
	seen := make(map[string]struct{}, len(tokens))
	terms := make([]string, 0, len(tokens))
	add := func(t string) {
		if _, ok := seen[t]; !ok {
			seen[t] = struct{}{}
			terms = append(terms, t)
		}
	}
	for _, tok := range tokens {
		add(tok)
	}
	for _, tok := range tokens {
		for _, syn := range e.synonyms[tok] {
			add(syn)
		}
	}
	return terms
}
