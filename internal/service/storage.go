// Path: internal/service/storage.go
package service

import (
	"context"
	"time"

	"pokedex/internal/domain"
)

// CatalogStorage defines the interface for holding the loaded collection.
type CatalogStorage interface {
	// Populate stores the full collection. It may succeed only once.
	Populate(ctx context.Context, pokemon []domain.Pokemon) error

	// All returns the full collection in load order (id ascending).
	All(ctx context.Context) ([]domain.Pokemon, error)

	// FindByID retrieves a single entity; nil, nil when absent.
	FindByID(ctx context.Context, id int) (*domain.Pokemon, error)

	// LoadedAt returns when Populate succeeded; zero before that.
	LoadedAt() time.Time
}

// RemoteSource defines what the service needs from the remote API.
// This allows for mocking in tests.
type RemoteSource interface {
	LoadAll(ctx context.Context, limit int) ([]domain.Pokemon, error)
	FetchDetail(ctx context.Context, id int) (domain.PokemonDetail, error)
}
