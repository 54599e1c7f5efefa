// Path: cmd/pokedex/main.go

// Package main provides the CLI entrypoint for pokedex.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"pokedex/internal/config"
	"pokedex/internal/events"
	"pokedex/internal/logging"
	"pokedex/internal/pokeapi"
	"pokedex/internal/service"
	"pokedex/internal/storage"
)

var (
	cfgFile  string
	logLevel string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "pokedex",
		Short:        "Browse the PokeAPI catalog on the web or in the terminal",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./configs/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newBrowseCmd())
	return rootCmd
}

// loadConfig reads the configuration and applies the flag overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	return cfg, nil
}

// newCoreService wires the PokeAPI client, the in-memory store and the
// broker into a catalog service.
func newCoreService(cfg *config.Config, broker *events.Broker) (*service.Service, error) {
	client := pokeapi.NewClient(cfg.API)
	store := storage.NewMemoryCatalogStorage()
	svc, err := service.NewService(cfg.Catalog, client, store, broker)
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return svc, nil
}

func setupLogging(cfg *config.Config, out io.Writer) error {
	if err := logging.Setup(cfg.Log, out); err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}
	return nil
}
