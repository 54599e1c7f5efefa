package domain_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"pokedex/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bulbasaurJSON = `{
  "id": 1,
  "name": "bulbasaur",
  "types": [
    {"slot": 1, "type": {"name": "grass", "url": "https://pokeapi.co/api/v2/type/12/"}},
    {"slot": 2, "type": {"name": "poison", "url": "https://pokeapi.co/api/v2/type/4/"}}
  ],
  "sprites": {
    "front_default": "https://img/front/1.png",
    "back_default": null,
    "other": {
      "dream_world": {"front_default": "https://img/dream/1.svg", "front_female": null},
      "official-artwork": {"front_default": "https://img/art/1.png", "front_shiny": "https://img/art/shiny/1.png"}
    }
  },
  "stats": [
    {"base_stat": 45, "effort": 0, "stat": {"name": "hp", "url": ""}},
    {"base_stat": 49, "effort": 0, "stat": {"name": "attack", "url": ""}},
    {"base_stat": 49, "effort": 0, "stat": {"name": "defense", "url": ""}}
  ]
}`

func decodeRecord(t *testing.T, body string) domain.PokemonRecord {
	t.Helper()
	var rec domain.PokemonRecord
	require.NoError(t, json.Unmarshal([]byte(body), &rec))
	return rec
}

func TestRecordNormalizesToPokemon(t *testing.T) {
	p, err := decodeRecord(t, bulbasaurJSON).Pokemon()
	require.NoError(t, err)

	assert.Equal(t, 1, p.ID)
	assert.Equal(t, "bulbasaur", p.Name)
	assert.Equal(t, []string{"grass", "poison"}, p.Types)
	assert.Equal(t, "https://img/art/1.png", p.SpriteURL)
}

func TestSpriteFallsBackToDefault(t *testing.T) {
	body := `{"id": 7, "name": "squirtle", "types": [{"slot": 1, "type": {"name": "water"}}],
	  "sprites": {"front_default": "https://img/front/7.png", "other": {"official-artwork": {"front_default": null}}}}`
	p, err := decodeRecord(t, body).Pokemon()
	require.NoError(t, err)
	assert.Equal(t, "https://img/front/7.png", p.SpriteURL)
}

func TestSpriteAbsentWhenNoneExists(t *testing.T) {
	body := `{"id": 9, "name": "blastoise", "types": [], "sprites": {"front_default": null, "other": null}}`
	p, err := decodeRecord(t, body).Pokemon()
	require.NoError(t, err)
	assert.Empty(t, p.SpriteURL)
	assert.Empty(t, p.Types)
}

func TestRecordDetailKeepsStatOrder(t *testing.T) {
	d, err := decodeRecord(t, bulbasaurJSON).Detail()
	require.NoError(t, err)

	assert.Equal(t, "bulbasaur", d.Name)
	assert.Equal(t, []domain.Stat{
		{Name: "hp", Base: 45},
		{Name: "attack", Base: 49},
		{Name: "defense", Base: 49},
	}, d.Stats)
}

func TestRecordRejectsInvalidIdentity(t *testing.T) {
	_, err := domain.PokemonRecord{ID: 0, Name: "missingno"}.Pokemon()
	assert.Error(t, err)

	_, err = domain.PokemonRecord{ID: 3}.Pokemon()
	assert.Error(t, err)
}

func TestSpriteURLRejectsNonString(t *testing.T) {
	var s domain.SpriteURL
	assert.Error(t, json.Unmarshal([]byte(`42`), &s))
}

func TestHasType(t *testing.T) {
	p := domain.Pokemon{ID: 6, Name: "charizard", Types: []string{"fire", "flying"}}
	assert.True(t, p.HasType("flying"))
	assert.False(t, p.HasType("dragon"))
}

func TestErrorsUnwrap(t *testing.T) {
	cause := fmt.Errorf("status 500: %w", domain.ErrUnexpectedStatus)

	loadErr := fmt.Errorf("startup: %w", &domain.LoadError{Op: "record", URL: "https://x/1", Err: cause})
	assert.True(t, domain.IsLoadError(loadErr))
	assert.False(t, domain.IsDetailFetchError(loadErr))
	assert.True(t, errors.Is(loadErr, domain.ErrUnexpectedStatus))
	assert.Contains(t, loadErr.Error(), "https://x/1")

	detailErr := &domain.DetailFetchError{ID: 25, Err: domain.ErrNotFound}
	assert.True(t, domain.IsDetailFetchError(detailErr))
	assert.True(t, errors.Is(detailErr, domain.ErrNotFound))
	assert.Contains(t, detailErr.Error(), "25")
}
