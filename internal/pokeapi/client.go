// Path: internal/pokeapi/client.go
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"pokedex/internal/config"
	"pokedex/internal/domain"
)

// Client is a client for the PokeAPI REST service.
type Client struct {
	baseURL     string
	client      *http.Client
	limiter     *rate.Limiter
	concurrency int
}

// NewClient creates and configures a new Client.
func NewClient(cfg config.APIConfig) *Client {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
		limiter: rate.NewLimiter(
			rate.Limit(cfg.RequestsPerSecond),
			cfg.BurstLimit,
		),
		concurrency: concurrency,
	}
}

// ListURL returns the summary list endpoint for the first limit entities.
func (c *Client) ListURL(limit int) string {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", "0")
	return c.baseURL + "/pokemon?" + q.Encode()
}

// DetailURL returns the record endpoint for id.
func (c *Client) DetailURL(id int) string {
	return c.baseURL + "/pokemon/" + strconv.Itoa(id)
}

// FetchList fetches the summary list of the first limit entities.
func (c *Client) FetchList(ctx context.Context, limit int) (*domain.PokemonList, error) {
	var list domain.PokemonList
	if err := c.getJSON(ctx, c.ListURL(limit), &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// FetchRecord fetches a single raw record from its resource URL.
func (c *Client) FetchRecord(ctx context.Context, recordURL string) (*domain.PokemonRecord, error) {
	var rec domain.PokemonRecord
	if err := c.getJSON(ctx, recordURL, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// LoadAll fetches the first limit entities with their detail fields,
// concurrently, and returns them sorted by id. The first failing fetch
// cancels the rest and fails the whole batch with a *domain.LoadError.
func (c *Client) LoadAll(ctx context.Context, limit int) ([]domain.Pokemon, error) {
	list, err := c.FetchList(ctx, limit)
	if err != nil {
		return nil, &domain.LoadError{Op: "list", URL: c.ListURL(limit), Err: err}
	}

	logrus.WithField("count", len(list.Results)).Debug("fetching pokemon records")

	pokemon := make([]domain.Pokemon, len(list.Results))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, res := range list.Results {
		g.Go(func() error {
			rec, err := c.FetchRecord(gctx, res.URL)
			if err != nil {
				return &domain.LoadError{Op: "record", URL: res.URL, Err: err}
			}
			p, err := rec.Pokemon()
			if err != nil {
				return &domain.LoadError{Op: "record", URL: res.URL, Err: err}
			}
			pokemon[i] = p
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(pokemon, func(i, j int) bool { return pokemon[i].ID < pokemon[j].ID })
	return pokemon, nil
}

// FetchDetail fetches one entity with its stats. It never caches.
func (c *Client) FetchDetail(ctx context.Context, id int) (domain.PokemonDetail, error) {
	rec, err := c.FetchRecord(ctx, c.DetailURL(id))
	if err != nil {
		return domain.PokemonDetail{}, &domain.DetailFetchError{ID: id, Err: err}
	}
	detail, err := rec.Detail()
	if err != nil {
		return domain.PokemonDetail{}, &domain.DetailFetchError{ID: id, Err: err}
	}
	return detail, nil
}

// getJSON performs a rate-limited GET and decodes a JSON body into v.
func (c *Client) getJSON(ctx context.Context, target string, v any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s: %w", target, domain.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: %d", domain.ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to unmarshal json response: %w", err)
	}
	return nil
}

// IsCanceled reports whether err stems from the caller giving up.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
