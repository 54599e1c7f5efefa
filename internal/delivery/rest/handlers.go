// Path: internal/delivery/rest/handlers.go
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"pokedex/internal/catalog"
	"pokedex/internal/delivery"
	"pokedex/internal/domain"
	"pokedex/internal/view"
)

// dataService defines the interface required by the handlers from the core service.
type dataService interface {
	NewSession(ctx context.Context) (*catalog.State, error)
	GetPokemonByID(ctx context.Context, id int) (*domain.Pokemon, error)
	Detail(ctx context.Context, id int) (domain.PokemonDetail, error)
	TypeTags() []string
	Status() (domain.LoadStatus, error)
	LoadedAt() time.Time
}

// PokemonHandlers holds dependencies for the JSON API handlers.
type PokemonHandlers struct {
	service dataService
}

// NewPokemonHandlers creates a new handler struct.
func NewPokemonHandlers(s dataService) *PokemonHandlers {
	return &PokemonHandlers{service: s}
}

// RegisterRoutes registers the JSON API routes on mux.
func (h *PokemonHandlers) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/pokemon", h.ListPokemon)
	mux.HandleFunc("GET /api/pokemon/{id}", h.GetPokemonByID)
	mux.HandleFunc("GET /api/types", h.ListTypes)
	mux.HandleFunc("GET /healthz", h.Health)
}

// ListPokemon handles the filtered, sorted, paginated listing.
// Path: /api/pokemon?q=&gen=&type=&sort=&page=
func (h *PokemonHandlers) ListPokemon(w http.ResponseWriter, r *http.Request) {
	controls := delivery.ParseControls(r.URL.Query())
	st, err := delivery.Browse(r.Context(), h.service, controls)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view.FromState(st))
}

// GetPokemonByID handles the detail of a single catalog entity.
// Path: /api/pokemon/{id}
func (h *PokemonHandlers) GetPokemonByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid pokemon id"})
		return
	}

	p, err := h.service.GetPokemonByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if p == nil {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "pokemon not in catalog"})
		return
	}

	detail, err := h.service.Detail(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view.NewDetail(detail))
}

// ListTypes returns the type tags present in the catalog.
func (h *PokemonHandlers) ListTypes(w http.ResponseWriter, r *http.Request) {
	switch status, err := h.service.Status(); status {
	case domain.StatusReady:
	case domain.StatusFailed:
		writeError(w, r, err)
		return
	default:
		writeError(w, r, domain.ErrCatalogNotReady)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"types": h.service.TypeTags()})
}

// healthBody is the /healthz response.
type healthBody struct {
	Status   string     `json:"status"`
	LoadedAt *time.Time `json:"loadedAt,omitempty"`
	Error    string     `json:"error,omitempty"`
}

// Health reports the catalog load status.
func (h *PokemonHandlers) Health(w http.ResponseWriter, _ *http.Request) {
	status, err := h.service.Status()
	body := healthBody{Status: string(status)}
	code := http.StatusOK
	switch status {
	case domain.StatusReady:
		if at := h.service.LoadedAt(); !at.IsZero() {
			body.LoadedAt = &at
		}
	case domain.StatusLoading:
		code = http.StatusServiceUnavailable
	case domain.StatusFailed:
		code = http.StatusServiceUnavailable
		if err != nil {
			body.Error = err.Error()
		}
	}
	writeJSON(w, code, body)
}

type errorBody struct {
	Error string `json:"error"`
}

// StatusFor maps a service error to the HTTP status it is reported with.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrCatalogNotReady), domain.IsLoadError(err):
		return http.StatusServiceUnavailable
	case domain.IsDetailFetchError(err) && errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case domain.IsDetailFetchError(err):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := StatusFor(err)
	if code == http.StatusInternalServerError {
		logrus.WithError(err).WithField("path", r.URL.Path).Error("request failed")
		writeJSON(w, code, errorBody{Error: "internal server error"})
		return
	}
	writeJSON(w, code, errorBody{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Warn("failed to encode response")
	}
}
