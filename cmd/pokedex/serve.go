// Path: cmd/pokedex/serve.go
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"pokedex/internal/delivery/rest"
	"pokedex/internal/delivery/ui"
	"pokedex/internal/events"
	"pokedex/internal/service"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Load the catalog and serve the web UI and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(parent context.Context) error {
	// 1. Load Configuration
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := setupLogging(cfg, os.Stderr); err != nil {
		return err
	}

	// 2. Setup Context for graceful shutdown
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Initialize Components
	logrus.Info("Initializing components...")
	broker := events.NewBroker()
	coreService, err := newCoreService(cfg, broker)
	if err != nil {
		return err
	}
	// Subscribe before Load starts so no event is published unobserved.
	sub := subscribeEvents(broker)
	defer sub.close()
	go sub.log(ctx)

	// 4. Start the one-time load in the background; the server answers 503
	// until it finishes.
	go func() {
		if err := coreService.Load(ctx); err != nil {
			logrus.WithError(err).Error("Catalog unavailable; serving error pages")
		}
	}()

	// 5. Initialize and Start The Server
	uiHandlers, err := ui.NewHandlers(coreService)
	if err != nil {
		return err
	}
	server := rest.NewServer(cfg.Server.Port, coreService, uiHandlers)

	serveErr := make(chan error, 1)
	go func() {
		logrus.WithField("port", cfg.Server.Port).Info("Server starting")
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	// 6. Wait for shutdown signal
	select {
	case <-ctx.Done():
		logrus.Info("Shutdown signal received. Shutting down gracefully...")
	case err := <-serveErr:
		if err != nil {
			logrus.WithError(err).Error("Server failed")
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Stop(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Error during server shutdown")
		return err
	}

	logrus.Info("Server shut down successfully.")
	return nil
}

// eventSubscription holds the lifecycle topics serve reports on.
type eventSubscription struct {
	broker       *events.Broker
	loaded       <-chan events.Event
	loadFailed   <-chan events.Event
	detailFailed <-chan events.Event
}

func subscribeEvents(broker *events.Broker) *eventSubscription {
	return &eventSubscription{
		broker:       broker,
		loaded:       broker.Subscribe(events.TopicCatalogLoaded),
		loadFailed:   broker.Subscribe(events.TopicCatalogLoadFailed),
		detailFailed: broker.Subscribe(events.TopicDetailFetchFailed),
	}
}

func (s *eventSubscription) close() {
	s.broker.Unsubscribe(events.TopicCatalogLoaded, s.loaded)
	s.broker.Unsubscribe(events.TopicCatalogLoadFailed, s.loadFailed)
	s.broker.Unsubscribe(events.TopicDetailFetchFailed, s.detailFailed)
}

// log reports the service's lifecycle events until ctx is done or the
// subscription is closed.
func (s *eventSubscription) log(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-s.loaded:
			if !ok {
				return
			}
			if e, ok := ev.Data.(service.LoadedEvent); ok {
				logrus.WithFields(logrus.Fields{
					"count":    e.Count,
					"duration": e.Duration.Round(time.Millisecond),
				}).Info("Catalog ready to browse")
			}
		case ev, ok := <-s.loadFailed:
			if !ok {
				return
			}
			logrus.WithField("topic", ev.Topic).Warn("Catalog load failure observed")
		case ev, ok := <-s.detailFailed:
			if !ok {
				return
			}
			logrus.WithField("topic", ev.Topic).Debug("Detail fetch failure observed")
		}
	}
}
