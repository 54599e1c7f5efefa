// Path: internal/view/viewmodels.go

// Package view builds the render-ready shapes the web UI, the JSON API and
// the terminal UI draw from. Nothing here touches a rendering surface.
package view

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"pokedex/internal/catalog"
	"pokedex/internal/domain"
)

// Card is the summary of one entity in a listing.
type Card struct {
	ID        int      `json:"id"`
	Number    string   `json:"number"` // "#001"
	Name      string   `json:"name"`
	Title     string   `json:"title"` // "Bulbasaur"
	Types     []string `json:"types"`
	SpriteURL string   `json:"spriteUrl,omitempty"`
}

// QueryEcho is the query as the controls should display it.
type QueryEcho struct {
	Text       string   `json:"q"`
	Generation string   `json:"gen"`
	Types      []string `json:"types"`
	Sort       string   `json:"sort"`
}

// Checked reports whether a type checkbox is ticked.
func (q QueryEcho) Checked(t string) bool {
	for _, own := range q.Types {
		if own == t {
			return true
		}
	}
	return false
}

// Listing is everything a listing render needs.
type Listing struct {
	Cards      []Card    `json:"cards"`
	Page       int       `json:"page"`
	TotalPages int       `json:"totalPages"`
	Total      int       `json:"total"`
	Status     string    `json:"status"`
	HasPrev    bool      `json:"hasPrev"`
	HasNext    bool      `json:"hasNext"`
	PrevPage   int       `json:"-"`
	NextPage   int       `json:"-"`
	Query      QueryEcho `json:"query"`
}

// StatView is one row of the detail stat grid.
type StatView struct {
	Name  string `json:"name"`
	Label string `json:"label"` // "Special Attack"
	Base  int    `json:"base"`
}

// Detail is everything a detail render needs.
type Detail struct {
	Card
	Stats []StatView `json:"stats"`
	Total int        `json:"total"`
}

// Number formats an id the way cards show it.
func Number(id int) string {
	return fmt.Sprintf("#%03d", id)
}

// Title capitalizes each dash-separated word: "mr-mime" -> "Mr Mime".
func Title(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '-' || r == '_' || r == ' ' })
	// A Caser carries state, so it is not shared between calls.
	return cases.Title(language.English).String(strings.Join(words, " "))
}

// PageStatus is the status line under a listing.
func PageStatus(page, totalPages, total int) string {
	noun := "results"
	if total == 1 {
		noun = "result"
	}
	return fmt.Sprintf("Page %d / %d - %d %s", page, totalPages, total, noun)
}

// NewCard builds a listing card.
func NewCard(p domain.Pokemon) Card {
	return Card{
		ID:        p.ID,
		Number:    Number(p.ID),
		Name:      p.Name,
		Title:     Title(p.Name),
		Types:     append([]string(nil), p.Types...),
		SpriteURL: p.SpriteURL,
	}
}

// NewListing builds a listing from a page and the query that produced it.
func NewListing(page catalog.Page, q catalog.Query) Listing {
	cards := make([]Card, 0, len(page.Items))
	for _, p := range page.Items {
		cards = append(cards, NewCard(p))
	}
	return Listing{
		Cards:      cards,
		Page:       page.Page,
		TotalPages: page.TotalPages,
		Total:      page.Total,
		Status:     PageStatus(page.Page, page.TotalPages, page.Total),
		HasPrev:    page.HasPrev(),
		HasNext:    page.HasNext(),
		PrevPage:   page.Page - 1,
		NextPage:   page.Page + 1,
		Query: QueryEcho{
			Text:       q.Text,
			Generation: q.Generation,
			Types:      append([]string(nil), q.Types...),
			Sort:       q.Sort.String(),
		},
	}
}

// FromState builds the listing for the state's current page.
func FromState(st *catalog.State) Listing {
	return NewListing(st.Current(), st.Query())
}

// NewDetail builds a detail view.
func NewDetail(d domain.PokemonDetail) Detail {
	stats := make([]StatView, 0, len(d.Stats))
	total := 0
	for _, s := range d.Stats {
		stats = append(stats, StatView{Name: s.Name, Label: Title(s.Name), Base: s.Base})
		total += s.Base
	}
	return Detail{Card: NewCard(d.Pokemon), Stats: stats, Total: total}
}

// Option is one entry of a select control.
type Option struct {
	Value string
	Label string
}

// GenerationOptions lists the generation selector entries, "" first.
func GenerationOptions() []Option {
	opts := []Option{{Value: "", Label: "All generations"}}
	for _, tag := range catalog.GenerationTags() {
		r, _ := catalog.LookupGeneration(tag)
		opts = append(opts, Option{
			Value: tag,
			Label: fmt.Sprintf("Generation %s (%d-%d)", tag, r.Min, r.Max),
		})
	}
	return opts
}

// SortOptions lists the sort selector entries.
func SortOptions() []Option {
	labels := map[catalog.Sort]string{
		{Key: catalog.SortByID, Direction: catalog.SortAsc}:    "Number, ascending",
		{Key: catalog.SortByID, Direction: catalog.SortDesc}:   "Number, descending",
		{Key: catalog.SortByName, Direction: catalog.SortAsc}:  "Name, A-Z",
		{Key: catalog.SortByName, Direction: catalog.SortDesc}: "Name, Z-A",
	}
	var opts []Option
	for _, s := range catalog.SortOptions() {
		opts = append(opts, Option{Value: s.String(), Label: labels[s]})
	}
	return opts
}
