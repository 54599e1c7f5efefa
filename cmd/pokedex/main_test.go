package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokedex/internal/events"
	"pokedex/internal/service"
)

func TestRootCommandWiring(t *testing.T) {
	root := newRootCmd()

	names := make([]string, 0)
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "browse"}, names)
	assert.NotNil(t, root.PersistentFlags().Lookup("config"))
	assert.NotNil(t, root.PersistentFlags().Lookup("log-level"))

	browse, _, err := root.Find([]string{"browse"})
	require.NoError(t, err)
	assert.NotNil(t, browse.Flags().Lookup("log-file"))
}

func TestLoadConfigAppliesLogLevelFlag(t *testing.T) {
	t.Chdir(t.TempDir())
	cfgFile, logLevel = "", "debug"
	t.Cleanup(func() { logLevel = "" })

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 200, cfg.Catalog.Limit)
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfgFile = "/nonexistent/pokedex.yaml"
	t.Cleanup(func() { cfgFile = "" })

	_, err := loadConfig()
	assert.Error(t, err)
}

func TestEventsPublishedBeforeLoggingStartsAreKept(t *testing.T) {
	broker := events.NewBroker()
	sub := subscribeEvents(broker)

	broker.Publish(events.TopicCatalogLoaded, service.LoadedEvent{Count: 3})
	broker.Publish(events.TopicCatalogLoadFailed, assert.AnError)

	select {
	case ev := <-sub.loaded:
		assert.Equal(t, service.LoadedEvent{Count: 3}, ev.Data)
	default:
		t.Fatal("loaded event was dropped")
	}
	select {
	case ev := <-sub.loadFailed:
		assert.Equal(t, events.TopicCatalogLoadFailed, ev.Topic)
	default:
		t.Fatal("load failure event was dropped")
	}
}

func TestEventLoggingStopsWhenClosed(t *testing.T) {
	sub := subscribeEvents(events.NewBroker())
	done := make(chan struct{})
	go func() {
		sub.log(context.Background())
		close(done)
	}()

	sub.close()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("log did not return after close")
	}
}
