package sources

import (
	"slices"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/mo"
)

// Anime is a catalog record validated at the API boundary.
type Anime struct {
	ID       int
	Title    string
	Episodes mo.Option[int]
	Type     mo.Option[string]
	Status   mo.Option[string]
}

func normalizedName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SortByCloseness orders results by edit distance between query and title.
// Equal distances keep the catalog order.
func SortByCloseness(query string, results []Anime) {
	query = normalizedName(query)
	slices.SortStableFunc(results, func(a, b Anime) int {
		return levenshtein.Distance(query, normalizedName(a.Title)) -
			levenshtein.Distance(query, normalizedName(b.Title))
	})
}
