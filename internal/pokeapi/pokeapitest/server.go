// Path: internal/pokeapi/pokeapitest/server.go

// Package pokeapitest provides an in-process fake of the PokeAPI endpoints
// the catalog uses.
package pokeapitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"pokedex/internal/config"
	"pokedex/internal/domain"
)

// Server serves /pokemon and /pokemon/{id} from an in-memory record set.
type Server struct {
	*httptest.Server

	mu      sync.Mutex
	records map[int]domain.PokemonDetail
	order   []int
	failIDs map[int]int // id -> status code to answer with
	listErr int
	hits    map[string]int
}

// New starts a fake server holding details, listed in the given order.
// It is closed automatically when the test ends.
func New(t testing.TB, details ...domain.PokemonDetail) *Server {
	t.Helper()
	s := &Server{
		records: make(map[int]domain.PokemonDetail),
		failIDs: make(map[int]int),
		hits:    make(map[string]int),
	}
	for _, d := range details {
		s.records[d.ID] = d
		s.order = append(s.order, d.ID)
	}
	s.Server = httptest.NewServer(http.HandlerFunc(s.handle))
	t.Cleanup(s.Close)
	return s
}

// APIConfig returns a client configuration pointing at the fake.
func (s *Server) APIConfig() config.APIConfig {
	return config.APIConfig{
		BaseURL:           s.URL + "/api/v2",
		RequestsPerSecond: 1000,
		BurstLimit:        1000,
		TimeoutSeconds:    5,
		Concurrency:       4,
	}
}

// FailID makes requests for id answer with status.
func (s *Server) FailID(id, status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failIDs[id] = status
}

// FailList makes the summary list answer with status.
func (s *Server) FailList(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listErr = status
}

// Hits returns how many times path was requested.
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

func (s *Server) handle(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.hits[r.URL.Path]++
	s.mu.Unlock()

	path := strings.TrimPrefix(r.URL.Path, "/api/v2")
	switch {
	case path == "/pokemon" || path == "/pokemon/":
		s.handleList(w, r)
	case strings.HasPrefix(path, "/pokemon/"):
		id, err := strconv.Atoi(strings.Trim(strings.TrimPrefix(path, "/pokemon/"), "/"))
		if err != nil {
			http.NotFound(w, r)
			return
		}
		s.handleRecord(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	listErr := s.listErr
	order := append([]int(nil), s.order...)
	s.mu.Unlock()

	if listErr != 0 {
		http.Error(w, "list unavailable", listErr)
		return
	}

	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit > len(order) {
		limit = len(order)
	}

	list := domain.PokemonList{Count: len(order)}
	for _, id := range order[:limit] {
		s.mu.Lock()
		name := s.records[id].Name
		s.mu.Unlock()
		list.Results = append(list.Results, domain.NamedResource{
			Name: name,
			URL:  fmt.Sprintf("%s/api/v2/pokemon/%d/", s.URL, id),
		})
	}
	writeJSON(w, list)
}

func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request, id int) {
	s.mu.Lock()
	status, failing := s.failIDs[id]
	d, ok := s.records[id]
	s.mu.Unlock()

	if failing {
		http.Error(w, "boom", status)
		return
	}
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, Record(d))
}

// Record renders a detail in PokeAPI's raw wire shape. The sprite is put
// under official-artwork.
func Record(d domain.PokemonDetail) map[string]any {
	types := make([]map[string]any, 0, len(d.Types))
	for i, t := range d.Types {
		types = append(types, map[string]any{
			"slot": i + 1,
			"type": map[string]any{"name": t, "url": ""},
		})
	}
	stats := make([]map[string]any, 0, len(d.Stats))
	for _, st := range d.Stats {
		stats = append(stats, map[string]any{
			"base_stat": st.Base,
			"effort":    0,
			"stat":      map[string]any{"name": st.Name, "url": ""},
		})
	}
	var artwork any
	if d.SpriteURL != "" {
		artwork = d.SpriteURL
	}
	return map[string]any{
		"id":    d.ID,
		"name":  d.Name,
		"types": types,
		"stats": stats,
		"sprites": map[string]any{
			"front_default": nil,
			"other": map[string]any{
				"official-artwork": map[string]any{"front_default": artwork},
			},
		},
	}
}

// Detail is a shorthand constructor for fixtures.
func Detail(id int, name string, types ...string) domain.PokemonDetail {
	return domain.PokemonDetail{
		Pokemon: domain.Pokemon{
			ID:        id,
			Name:      name,
			Types:     types,
			SpriteURL: fmt.Sprintf("https://img.example/%d.png", id),
		},
		Stats: []domain.Stat{
			{Name: "hp", Base: 40 + id%50},
			{Name: "attack", Base: 50 + id%40},
			{Name: "speed", Base: 30 + id%60},
		},
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
