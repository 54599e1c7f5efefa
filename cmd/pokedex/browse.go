// Path: cmd/pokedex/browse.go
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"pokedex/internal/events"
	"pokedex/internal/tui"
)

var browseLogFile string

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runBrowse(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&browseLogFile, "log-file", "", "write logs to this file (discarded by default)")
	return cmd
}

func runBrowse(ctx context.Context) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the TUI; logs go to a file or nowhere.
	var out io.Writer = io.Discard
	if browseLogFile != "" {
		f, err := os.OpenFile(browseLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		out = f
	}
	if err := setupLogging(cfg, out); err != nil {
		return err
	}

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	coreService, err := newCoreService(cfg, events.NewBroker())
	if err != nil {
		return err
	}

	program := tea.NewProgram(tui.NewModel(ctx, coreService), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run browser: %w", err)
	}
	return nil
}
