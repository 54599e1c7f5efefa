// Path: internal/catalog/pagination.go
package catalog

import "pokedex/internal/domain"

// DefaultPageSize is the number of entities shown per page.
const DefaultPageSize = 20

// Page is one slice of the working set plus its navigation state.
type Page struct {
	Items      []domain.Pokemon
	Page       int // the page actually served, within [1, TotalPages]
	TotalPages int
	Total      int
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.Page > 1 }

// HasNext reports whether a next page exists.
func (p Page) HasNext() bool { return p.Page < p.TotalPages }

// TotalPages returns max(1, ceil(total/pageSize)).
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate returns the page-th slice of working. Callers are expected to gate
// navigation with HasPrev/HasNext; a page outside [1, TotalPages] is served as
// the nearest valid page.
func Paginate(working []domain.Pokemon, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pages := TotalPages(len(working), pageSize)
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(working) {
		end = len(working)
	}

	items := make([]domain.Pokemon, end-start)
	copy(items, working[start:end])

	return Page{
		Items:      items,
		Page:       page,
		TotalPages: pages,
		Total:      len(working),
	}
}
