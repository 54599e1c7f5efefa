// Path: internal/storage/memory_storage.go
package storage

import (
	"context"
	"sync"
	"time"

	"pokedex/internal/domain"
)

// MemoryCatalogStorage holds the full collection in memory for the lifetime
// of the process. It is populated exactly once and read-only afterwards.
type MemoryCatalogStorage struct {
	mu       sync.RWMutex
	pokemon  []domain.Pokemon
	byID     map[int]int // id -> index into pokemon
	loadedAt time.Time
}

// NewMemoryCatalogStorage creates an empty store.
func NewMemoryCatalogStorage() *MemoryCatalogStorage {
	return &MemoryCatalogStorage{}
}

// Populate implements the CatalogStorage interface.
func (s *MemoryCatalogStorage) Populate(_ context.Context, pokemon []domain.Pokemon) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.byID != nil {
		return domain.ErrAlreadyLoaded
	}

	s.pokemon = append([]domain.Pokemon(nil), pokemon...)
	s.byID = make(map[int]int, len(pokemon))
	for i, p := range s.pokemon {
		s.byID[p.ID] = i
	}
	s.loadedAt = time.Now().UTC()
	return nil
}

// All implements the CatalogStorage interface. The returned slice is a copy.
func (s *MemoryCatalogStorage) All(_ context.Context) ([]domain.Pokemon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.byID == nil {
		return nil, domain.ErrCatalogNotReady
	}
	return append([]domain.Pokemon(nil), s.pokemon...), nil
}

// FindByID implements the CatalogStorage interface.
func (s *MemoryCatalogStorage) FindByID(_ context.Context, id int) (*domain.Pokemon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.byID == nil {
		return nil, domain.ErrCatalogNotReady
	}
	i, ok := s.byID[id]
	if !ok {
		return nil, nil // Return nil, nil if not found
	}
	p := s.pokemon[i]
	return &p, nil
}

// LoadedAt returns when the store was populated; zero before that.
func (s *MemoryCatalogStorage) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}
