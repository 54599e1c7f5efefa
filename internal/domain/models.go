// Path: internal/domain/models.go
package domain

import (
	"encoding/json"
	"fmt"
)

// officialArtworkKey is the sprites.other entry holding the high-resolution artwork.
const officialArtworkKey = "official-artwork"

// Pokemon is the normalized catalog entity. It is immutable once loaded.
type Pokemon struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Types     []string `json:"types"`
	SpriteURL string   `json:"spriteUrl,omitempty"`
}

// Stat is a single base stat of a Pokémon.
type Stat struct {
	Name string `json:"name"`
	Base int    `json:"base"`
}

// PokemonDetail extends Pokemon with its base stats, in source order.
type PokemonDetail struct {
	Pokemon
	Stats []Stat `json:"stats"`
}

// HasType reports whether the Pokémon carries the given type tag.
func (p Pokemon) HasType(t string) bool {
	for _, own := range p.Types {
		if own == t {
			return true
		}
	}
	return false
}

// --- Raw PokeAPI payloads ---

// NamedResource is PokeAPI's {name, url} reference.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PokemonList is the body of GET /pokemon?limit=L&offset=O.
type PokemonList struct {
	Count   int             `json:"count"`
	Results []NamedResource `json:"results"`
}

// TypeSlot is one entry of a record's "types" array.
type TypeSlot struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// StatSlot is one entry of a record's "stats" array.
type StatSlot struct {
	BaseStat int           `json:"base_stat"`
	Stat     NamedResource `json:"stat"`
}

// SpriteURL is a sprite link that tolerates JSON null, which PokeAPI sends
// for every sprite a Pokémon does not have.
type SpriteURL string

// UnmarshalJSON implements the json.Unmarshaler interface for SpriteURL.
func (s *SpriteURL) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = ""
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("sprite url is not a string: %w", err)
	}
	*s = SpriteURL(raw)
	return nil
}

// ArtworkSprites is one entry of sprites.other.
type ArtworkSprites struct {
	FrontDefault SpriteURL `json:"front_default"`
}

// Sprites is the subset of a record's "sprites" object the catalog reads.
type Sprites struct {
	FrontDefault SpriteURL                 `json:"front_default"`
	Other        map[string]ArtworkSprites `json:"other"`
}

// PokemonRecord is the body of GET /pokemon/{id} (and of each list result url).
type PokemonRecord struct {
	ID      int        `json:"id"`
	Name    string     `json:"name"`
	Types   []TypeSlot `json:"types"`
	Sprites Sprites    `json:"sprites"`
	Stats   []StatSlot `json:"stats"`
}

// PreferredSprite returns the official artwork when present, falling back to
// the default sprite, or "" when neither exists.
func (s Sprites) PreferredSprite() string {
	if art, ok := s.Other[officialArtworkKey]; ok && art.FrontDefault != "" {
		return string(art.FrontDefault)
	}
	return string(s.FrontDefault)
}

// Pokemon normalizes the record into the catalog entity shape.
func (r PokemonRecord) Pokemon() (Pokemon, error) {
	if r.ID <= 0 {
		return Pokemon{}, fmt.Errorf("record %q has invalid id %d", r.Name, r.ID)
	}
	if r.Name == "" {
		return Pokemon{}, fmt.Errorf("record %d has no name", r.ID)
	}

	types := make([]string, 0, len(r.Types))
	for _, slot := range r.Types {
		types = append(types, slot.Type.Name)
	}

	return Pokemon{
		ID:        r.ID,
		Name:      r.Name,
		Types:     types,
		SpriteURL: r.Sprites.PreferredSprite(),
	}, nil
}

// Detail normalizes the record including its stats.
func (r PokemonRecord) Detail() (PokemonDetail, error) {
	p, err := r.Pokemon()
	if err != nil {
		return PokemonDetail{}, err
	}

	stats := make([]Stat, 0, len(r.Stats))
	for _, s := range r.Stats {
		stats = append(stats, Stat{Name: s.Stat.Name, Base: s.BaseStat})
	}
	return PokemonDetail{Pokemon: p, Stats: stats}, nil
}

// LoadStatus represents where the one-time catalog load stands.
type LoadStatus string

const (
	// StatusLoading indicates the initial load has not finished yet.
	StatusLoading LoadStatus = "LOADING"
	// StatusReady indicates the catalog is populated.
	StatusReady LoadStatus = "READY"
	// StatusFailed indicates the initial load failed; a restart is required.
	StatusFailed LoadStatus = "FAILED"
)
