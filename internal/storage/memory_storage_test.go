package storage_test

import (
	"context"
	"errors"
	"testing"

	"pokedex/internal/domain"
	"pokedex/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStorageBeforePopulate(t *testing.T) {
	s := storage.NewMemoryCatalogStorage()
	ctx := context.Background()

	_, err := s.All(ctx)
	assert.True(t, errors.Is(err, domain.ErrCatalogNotReady))

	_, err = s.FindByID(ctx, 1)
	assert.True(t, errors.Is(err, domain.ErrCatalogNotReady))
	assert.True(t, s.LoadedAt().IsZero())
}

func TestMemoryStoragePopulatesOnce(t *testing.T) {
	s := storage.NewMemoryCatalogStorage()
	ctx := context.Background()

	first := []domain.Pokemon{{ID: 1, Name: "bulbasaur"}, {ID: 4, Name: "charmander"}}
	require.NoError(t, s.Populate(ctx, first))
	assert.False(t, s.LoadedAt().IsZero())

	err := s.Populate(ctx, []domain.Pokemon{{ID: 99, Name: "intruder"}})
	assert.True(t, errors.Is(err, domain.ErrAlreadyLoaded))

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, all)
}

func TestMemoryStorageEmptyPopulateCountsAsLoaded(t *testing.T) {
	s := storage.NewMemoryCatalogStorage()
	ctx := context.Background()

	require.NoError(t, s.Populate(ctx, nil))
	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Error(t, s.Populate(ctx, nil))
}

func TestMemoryStorageIsolatesCallers(t *testing.T) {
	s := storage.NewMemoryCatalogStorage()
	ctx := context.Background()

	input := []domain.Pokemon{{ID: 1, Name: "bulbasaur"}}
	require.NoError(t, s.Populate(ctx, input))
	input[0].Name = "changed"

	all, err := s.All(ctx)
	require.NoError(t, err)
	all[0].Name = "also changed"

	p, err := s.FindByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "bulbasaur", p.Name)

	missing, err := s.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
