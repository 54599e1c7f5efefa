// Path: internal/service/service.go
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/sirupsen/logrus"

	"pokedex/internal/catalog"
	"pokedex/internal/config"
	"pokedex/internal/domain"
	"pokedex/internal/events"
	"pokedex/internal/pokeapi"
)

// LoadedEvent is the payload of events.TopicCatalogLoaded.
type LoadedEvent struct {
	Count    int
	Duration time.Duration
}

// Service is the central orchestrator: it runs the one-time load, hands out
// browsing sessions over the loaded collection, and fetches details.
type Service struct {
	cfg     config.CatalogConfig
	source  RemoteSource
	storage CatalogStorage
	broker  *events.Broker
	details *lru.Cache[int, domain.PokemonDetail] // nil when caching is disabled

	mu      sync.RWMutex
	started bool
	status  domain.LoadStatus
	loadErr error
	types   []string
}

// NewService creates a new core application service.
func NewService(
	cfg config.CatalogConfig,
	source RemoteSource,
	storage CatalogStorage,
	broker *events.Broker,
) (*Service, error) {
	s := &Service{
		cfg:     cfg,
		source:  source,
		storage: storage,
		broker:  broker,
		status:  domain.StatusLoading,
	}
	if cfg.DetailCacheSize > 0 {
		cache, err := lru.New[int, domain.PokemonDetail](cfg.DetailCacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create detail cache: %w", err)
		}
		s.details = cache
	}
	return s, nil
}

// Load fetches the initial collection and stores it. It runs at most once;
// a failed load leaves the service in StatusFailed for the rest of the process.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return domain.ErrAlreadyLoaded
	}
	s.started = true
	s.mu.Unlock()

	start := time.Now()
	logrus.WithField("limit", s.cfg.Limit).Info("Loading catalog...")

	pokemon, err := s.source.LoadAll(ctx, s.cfg.Limit)
	if err == nil {
		err = s.storage.Populate(ctx, pokemon)
	}
	if err != nil {
		s.mu.Lock()
		s.status = domain.StatusFailed
		s.loadErr = err
		s.mu.Unlock()

		logrus.WithError(err).Error("Catalog load failed")
		s.broker.Publish(events.TopicCatalogLoadFailed, err)
		return fmt.Errorf("catalog load failed: %w", err)
	}

	types := catalog.TypeTags(pokemon)
	s.mu.Lock()
	s.status = domain.StatusReady
	s.types = types
	s.mu.Unlock()

	elapsed := time.Since(start)
	logrus.WithFields(logrus.Fields{
		"count":    len(pokemon),
		"types":    len(types),
		"duration": elapsed.Round(time.Millisecond),
	}).Info("Catalog loaded")
	s.broker.Publish(events.TopicCatalogLoaded, LoadedEvent{Count: len(pokemon), Duration: elapsed})
	return nil
}

// Status reports the load status and, when it failed, the load error.
func (s *Service) Status() (domain.LoadStatus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status, s.loadErr
}

// LoadedAt returns when the catalog became ready; zero until then.
func (s *Service) LoadedAt() time.Time {
	return s.storage.LoadedAt()
}

// ready returns nil once the catalog can be read.
func (s *Service) ready() error {
	status, err := s.Status()
	switch status {
	case domain.StatusReady:
		return nil
	case domain.StatusFailed:
		return err
	default:
		return domain.ErrCatalogNotReady
	}
}

// Collection returns a copy of the full collection.
func (s *Service) Collection(ctx context.Context) ([]domain.Pokemon, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.storage.All(ctx)
}

// NewSession returns a fresh browsing state over the full collection.
func (s *Service) NewSession(ctx context.Context) (*catalog.State, error) {
	all, err := s.Collection(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.NewState(all, s.PageSize()), nil
}

// TypeTags returns the distinct type tags of the loaded collection.
func (s *Service) TypeTags() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.types...)
}

// PageSize returns the configured page size.
func (s *Service) PageSize() int {
	if s.cfg.PageSize <= 0 {
		return catalog.DefaultPageSize
	}
	return s.cfg.PageSize
}

// GetPokemonByID returns a loaded entity, or nil when id is not in the catalog.
func (s *Service) GetPokemonByID(ctx context.Context, id int) (*domain.Pokemon, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.storage.FindByID(ctx, id)
}

// Detail fetches the entity with its stats. Without a cache every call
// re-fetches; with one, a cached entry is served until invalidated.
func (s *Service) Detail(ctx context.Context, id int) (domain.PokemonDetail, error) {
	if s.details != nil {
		if d, ok := s.details.Get(id); ok {
			return d, nil
		}
	}

	d, err := s.source.FetchDetail(ctx, id)
	if err != nil {
		if !pokeapi.IsCanceled(err) {
			logrus.WithError(err).WithField("id", id).Warn("Detail fetch failed")
			s.broker.Publish(events.TopicDetailFetchFailed, err)
		}
		return domain.PokemonDetail{}, err
	}

	if s.details != nil {
		s.details.Add(id, d)
	}
	return d, nil
}

// InvalidateDetail drops the cached detail for id.
func (s *Service) InvalidateDetail(id int) {
	if s.details != nil {
		s.details.Remove(id)
	}
}

// InvalidateAllDetails empties the detail cache.
func (s *Service) InvalidateAllDetails() {
	if s.details != nil {
		s.details.Purge()
	}
}
