// Path: internal/catalog/state.go
package catalog

import "pokedex/internal/domain"

// State is the owned view state of one browsing session: the full
// collection, the current query, its working set, and the current page.
// It is not safe for concurrent use.
type State struct {
	all      []domain.Pokemon
	working  []domain.Pokemon
	query    Query
	page     int
	pageSize int
}

// NewState creates a session over all. The collection is copied, so later
// changes to the caller's slice do not leak in.
func NewState(all []domain.Pokemon, pageSize int) *State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	s := &State{
		all:      append([]domain.Pokemon(nil), all...),
		pageSize: pageSize,
	}
	s.Reset()
	return s
}

// Apply recomputes the working set for q and returns to page 1.
func (s *State) Apply(q Query) {
	s.query = q
	s.working = Apply(s.all, q)
	s.page = 1
}

// Reset clears every filter, restores the default sort, and returns to page 1.
func (s *State) Reset() {
	s.Apply(Query{Sort: DefaultSort})
}

// Next moves one page forward. It is a no-op on the last page.
func (s *State) Next() bool {
	if s.page >= s.TotalPages() {
		return false
	}
	s.page++
	return true
}

// Prev moves one page back. It is a no-op on the first page.
func (s *State) Prev() bool {
	if s.page <= 1 {
		return false
	}
	s.page--
	return true
}

// Goto jumps to page, clamped into the valid range.
func (s *State) Goto(page int) {
	switch total := s.TotalPages(); {
	case page < 1:
		s.page = 1
	case page > total:
		s.page = total
	default:
		s.page = page
	}
}

// Current returns the visible page.
func (s *State) Current() Page {
	return Paginate(s.working, s.page, s.pageSize)
}

// TotalPages returns the page count of the working set.
func (s *State) TotalPages() int {
	return TotalPages(len(s.working), s.pageSize)
}

// Query returns the query the working set was computed from.
func (s *State) Query() Query { return s.query }

// PageNumber returns the current page.
func (s *State) PageNumber() int { return s.page }

// PageSize returns the fixed page size.
func (s *State) PageSize() int { return s.pageSize }

// Working returns a copy of the working set.
func (s *State) Working() []domain.Pokemon {
	return append([]domain.Pokemon(nil), s.working...)
}

// All returns a copy of the full collection.
func (s *State) All() []domain.Pokemon {
	return append([]domain.Pokemon(nil), s.all...)
}

// Len returns the size of the full collection.
func (s *State) Len() int { return len(s.all) }
