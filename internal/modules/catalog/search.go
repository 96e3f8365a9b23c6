package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"healthportal/internal/domain"
)

const (
	CategoryAll = "all"

	SortByName  = "name"
	SortByPrice = "price"
)

// Search filters tests by a case-insensitive substring match against name or
// description and by category, then sorts by the requested key. It has no
// side effects; an empty result is a valid outcome, not an error.
func Search(tests []domain.LabTest, query, category, sortKey string) []domain.LabTest {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]domain.LabTest, 0, len(tests))
	for _, t := range tests {
		if q != "" &&
			!strings.Contains(strings.ToLower(t.Name), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) {
			continue
		}
		if category != "" && category != CategoryAll && t.Category != category {
			continue
		}
		out = append(out, t)
	}

	switch sortKey {
	case SortByPrice:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortByName:
		// Collators are not safe for concurrent use, so build one per call.
		c := collate.New(language.English)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Name, out[j].Name) < 0
		})
	}

	return out
}
