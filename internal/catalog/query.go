// Path: internal/catalog/query.go
package catalog

import (
	"sort"
	"strings"

	"pokedex/internal/domain"
)

// SortKey is the field the working set is ordered by.
type SortKey string

const (
	SortByID   SortKey = "id"
	SortByName SortKey = "name"
)

// SortDirection represents sort order.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Sort holds sorting preferences.
type Sort struct {
	Key       SortKey
	Direction SortDirection
}

// DefaultSort is id ascending, the order the catalog is loaded in.
var DefaultSort = Sort{Key: SortByID, Direction: SortAsc}

// String returns the control encoding, e.g. "name-desc".
func (s Sort) String() string {
	return string(s.Key) + "-" + string(s.Direction)
}

// ParseSort decodes a "{key}-{direction}" control value.
// Anything it does not recognize yields DefaultSort.
func ParseSort(v string) Sort {
	key, dir, ok := strings.Cut(strings.TrimSpace(v), "-")
	if !ok {
		return DefaultSort
	}
	s := Sort{Key: SortKey(key), Direction: SortDirection(dir)}
	if s.Key != SortByID && s.Key != SortByName {
		return DefaultSort
	}
	if s.Direction != SortAsc && s.Direction != SortDesc {
		return DefaultSort
	}
	return s
}

// SortOptions lists every sort the controls offer, in display order.
func SortOptions() []Sort {
	return []Sort{
		{Key: SortByID, Direction: SortAsc},
		{Key: SortByID, Direction: SortDesc},
		{Key: SortByName, Direction: SortAsc},
		{Key: SortByName, Direction: SortDesc},
	}
}

// Query describes a filter/sort request over the full collection.
type Query struct {
	// Text matches a name substring (case-insensitive) or an exact id.
	Text string
	// Generation is a tag from Generations; "" means no generation filter.
	Generation string
	// Types must all be present on an entity for it to match.
	Types []string
	Sort  Sort
}

// IsZero reports whether the query filters nothing and uses the default sort.
func (q Query) IsZero() bool {
	return strings.TrimSpace(q.Text) == "" && q.Generation == "" && len(q.Types) == 0 && q.Sort == DefaultSort
}

// TypeTags returns the distinct type tags of the collection, sorted.
func TypeTags(all []domain.Pokemon) []string {
	seen := make(map[string]struct{})
	var tags []string
	for _, p := range all {
		for _, t := range p.Types {
			if _, ok := seen[t]; ok {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	sort.Strings(tags)
	return tags
}
