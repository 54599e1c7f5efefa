// Path: internal/catalog/engine.go
package catalog

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"pokedex/internal/domain"
)

// collationTag is the single locale names are ordered in.
var collationTag = language.English

// Apply narrows all by q and orders the result. It never modifies all and
// always returns a new slice; no matches yields an empty, non-nil slice.
func Apply(all []domain.Pokemon, q Query) []domain.Pokemon {
	out := make([]domain.Pokemon, 0, len(all))
	out = append(out, all...)

	if text := strings.TrimSpace(q.Text); text != "" {
		needle := strings.ToLower(text)
		out = keep(out, func(p domain.Pokemon) bool {
			return strings.Contains(p.Name, needle) || strconv.Itoa(p.ID) == text
		})
	}

	if len(q.Types) > 0 {
		out = keep(out, func(p domain.Pokemon) bool {
			for _, t := range q.Types {
				if !p.HasType(t) {
					return false
				}
			}
			return true
		})
	}

	if q.Generation != "" {
		if r, ok := LookupGeneration(q.Generation); ok {
			out = keep(out, func(p domain.Pokemon) bool { return r.Contains(p.ID) })
		}
	}

	sortPokemon(out, q.Sort)
	return out
}

// keep filters in place, reusing the backing array.
func keep(ps []domain.Pokemon, pred func(domain.Pokemon) bool) []domain.Pokemon {
	n := 0
	for _, p := range ps {
		if pred(p) {
			ps[n] = p
			n++
		}
	}
	return ps[:n]
}

// Compare orders a and b under s: negative when a sorts first.
func Compare(a, b domain.Pokemon, s Sort) int {
	return newComparer(s)(a, b)
}

func newComparer(s Sort) func(a, b domain.Pokemon) int {
	var cmp func(a, b domain.Pokemon) int
	switch s.Key {
	case SortByName:
		// A collator keeps internal buffers, so each comparer gets its own.
		col := collate.New(collationTag)
		cmp = func(a, b domain.Pokemon) int { return col.CompareString(a.Name, b.Name) }
	default:
		cmp = func(a, b domain.Pokemon) int { return a.ID - b.ID }
	}
	if s.Direction == SortDesc {
		return func(a, b domain.Pokemon) int { return -cmp(a, b) }
	}
	return cmp
}

func sortPokemon(ps []domain.Pokemon, s Sort) {
	cmp := newComparer(s)
	sort.SliceStable(ps, func(i, j int) bool { return cmp(ps[i], ps[j]) < 0 })
}
