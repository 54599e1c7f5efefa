// path: internal/delivery/ui/handlers.go
package ui

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"pokedex/internal/catalog"
	"pokedex/internal/delivery"
	"pokedex/internal/domain"
	"pokedex/internal/view"
)

//go:embed templates static
var assets embed.FS

// dataService defines the interface required by the UI handlers.
type dataService interface {
	NewSession(ctx context.Context) (*catalog.State, error)
	GetPokemonByID(ctx context.Context, id int) (*domain.Pokemon, error)
	Detail(ctx context.Context, id int) (domain.PokemonDetail, error)
	TypeTags() []string
}

// Handlers holds dependencies for UI handlers.
type Handlers struct {
	service   dataService
	templates *template.Template
	static    http.Handler
}

// NewHandlers creates a new UI handler struct.
func NewHandlers(s dataService) (*Handlers, error) {
	tpl, err := template.New("").Funcs(template.FuncMap{
		"title": view.Title,
	}).ParseFS(assets, "templates/*.html", "templates/fragments/*.html")
	if err != nil {
		return nil, err
	}

	staticFS, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, err
	}

	return &Handlers{
		service:   s,
		templates: tpl,
		static:    http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))),
	}, nil
}

// RegisterRoutes registers all UI routes on the given ServeMux.
func (h *Handlers) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("GET /static/", h.static)
	// HTMX endpoint returning only the results fragment.
	mux.HandleFunc("GET /search", h.handleSearch)
	mux.HandleFunc("GET /pokemon/{id}", h.handleShowPokemon)
	// Catch-all; handleShowIndex rejects anything but "/".
	mux.HandleFunc("GET /", h.handleShowIndex)
}

// handleShowIndex serves the main listing page.
func (h *Handlers) handleShowIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	controls := delivery.ParseControls(r.URL.Query())
	st, err := delivery.Browse(r.Context(), h.service, controls)
	if err != nil {
		h.renderLoadError(w, r, "error.html", err)
		return
	}
	h.render(w, http.StatusOK, "index.html", h.buildTemplateData(st))
}

// handleSearch returns the results fragment for HTMX swaps and pushes the
// canonical listing URL into history. A plain request (reload, bookmark)
// gets the full page.
func (h *Handlers) handleSearch(w http.ResponseWriter, r *http.Request) {
	if !isHTMX(r) {
		h.handleShowIndex(w, withPath(r, "/"))
		return
	}

	controls := delivery.ParseControls(r.URL.Query())
	st, err := delivery.Browse(r.Context(), h.service, controls)
	if err != nil {
		h.renderLoadError(w, r, "load_error.html", err)
		return
	}
	w.Header().Set("HX-Push-Url", pageURL(controls.WithPage(st.PageNumber())))
	h.render(w, http.StatusOK, "search_results.html", h.buildTemplateData(st))
}

func isHTMX(r *http.Request) bool {
	return r.Header.Get("HX-Request") == "true"
}

// withPath returns a shallow copy of r addressed to path, query kept.
func withPath(r *http.Request, path string) *http.Request {
	r2 := r.Clone(r.Context())
	r2.URL.Path = path
	return r2
}

// handleShowPokemon serves the detail page. A failed fetch renders the page
// with an error panel instead of the stats.
func (h *Handlers) handleShowPokemon(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		http.NotFound(w, r)
		return
	}

	p, err := h.service.GetPokemonByID(r.Context(), id)
	if err != nil {
		h.renderLoadError(w, r, "error.html", err)
		return
	}
	if p == nil {
		http.NotFound(w, r)
		return
	}

	data := map[string]any{
		"Card": view.NewCard(*p),
		"Back": r.Header.Get("Referer"),
	}

	detail, err := h.service.Detail(r.Context(), id)
	if err != nil {
		logrus.WithError(err).WithField("id", id).Warn("Rendering detail error state")
		data["Error"] = "Could not load the details for this Pokémon. Try again."
		status := http.StatusBadGateway
		if errors.Is(err, domain.ErrNotFound) {
			status = http.StatusNotFound
		}
		h.render(w, status, "pokemon.html", data)
		return
	}

	data["Detail"] = view.NewDetail(detail)
	h.render(w, http.StatusOK, "pokemon.html", data)
}

// renderLoadError replaces the listing with an error message, as a full
// page (error.html) or as the results fragment (load_error.html). No partial
// catalog is ever rendered.
func (h *Handlers) renderLoadError(w http.ResponseWriter, r *http.Request, tmpl string, err error) {
	message := "Error loading data. Try reloading."
	if errors.Is(err, domain.ErrCatalogNotReady) {
		message = "The catalog is still loading. Try again in a moment."
	} else {
		logrus.WithError(err).WithField("path", r.URL.Path).Error("Catalog unavailable")
	}
	h.render(w, http.StatusServiceUnavailable, tmpl, map[string]any{"Message": message})
}

// buildTemplateData is a helper to construct the data map for templates.
func (h *Handlers) buildTemplateData(st *catalog.State) map[string]any {
	listing := view.FromState(st)
	controls := delivery.Controls{Query: st.Query(), Page: listing.Page}

	return map[string]any{
		"Listing":     listing,
		"Query":       listing.Query,
		"Filtered":    !st.Query().IsZero(),
		"AllTypes":    h.service.TypeTags(),
		"Generations": view.GenerationOptions(),
		"Sorts":       view.SortOptions(),
		"PrevURL":     pageURL(controls.WithPage(listing.PrevPage)),
		"NextURL":     pageURL(controls.WithPage(listing.NextPage)),
	}
}

func pageURL(c delivery.Controls) string {
	if v := c.Values().Encode(); v != "" {
		return "/?" + v
	}
	return "/"
}

func (h *Handlers) render(w http.ResponseWriter, status int, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		logrus.WithError(err).WithField("template", name).Error("Template execution error")
	}
}
