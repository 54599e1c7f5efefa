// Path: internal/delivery/controls.go

// Package delivery holds what the web UI and the JSON API share: decoding
// the listing controls from a request and rebuilding the browsing state.
package delivery

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"pokedex/internal/catalog"
)

// Controls is the decoded form of the listing controls.
type Controls struct {
	Query catalog.Query
	Page  int
}

// ParseControls reads q, gen, type (repeatable, or comma separated), sort
// and page from query parameters.
func ParseControls(v url.Values) Controls {
	var types []string
	seen := make(map[string]bool)
	for _, raw := range v["type"] {
		for _, t := range strings.Split(raw, ",") {
			t = strings.ToLower(strings.TrimSpace(t))
			if t == "" || seen[t] {
				continue
			}
			seen[t] = true
			types = append(types, t)
		}
	}

	page, err := strconv.Atoi(v.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	return Controls{
		Query: catalog.Query{
			Text:       strings.TrimSpace(v.Get("q")),
			Generation: strings.TrimSpace(v.Get("gen")),
			Types:      types,
			Sort:       catalog.ParseSort(v.Get("sort")),
		},
		Page: page,
	}
}

// Values encodes c back into query parameters, omitting defaults.
func (c Controls) Values() url.Values {
	v := url.Values{}
	if c.Query.Text != "" {
		v.Set("q", c.Query.Text)
	}
	if c.Query.Generation != "" {
		v.Set("gen", c.Query.Generation)
	}
	for _, t := range c.Query.Types {
		v.Add("type", t)
	}
	if c.Query.Sort != catalog.DefaultSort {
		v.Set("sort", c.Query.Sort.String())
	}
	if c.Page > 1 {
		v.Set("page", strconv.Itoa(c.Page))
	}
	return v
}

// WithPage returns c pointed at page.
func (c Controls) WithPage(page int) Controls {
	c.Page = page
	return c
}

// SessionSource hands out fresh browsing states.
type SessionSource interface {
	NewSession(ctx context.Context) (*catalog.State, error)
}

// Browse replays the controls against a fresh session: apply the query,
// then go to the requested page (clamped).
func Browse(ctx context.Context, src SessionSource, c Controls) (*catalog.State, error) {
	st, err := src.NewSession(ctx)
	if err != nil {
		return nil, err
	}
	st.Apply(c.Query)
	st.Goto(c.Page)
	return st, nil
}
