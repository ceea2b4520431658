package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/studiogrid/internal/api"
	"github.com/javiermolinar/studiogrid/internal/config"
	"github.com/javiermolinar/studiogrid/internal/db"
	"github.com/javiermolinar/studiogrid/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// App holds the CLI application state.
type App struct {
	config *config.Config
	root   *cobra.Command

	client *api.Client
	dir    *api.Directory
	store  *db.SQLite
}

// NewApp creates a new CLI application with the given config.
func NewApp(cfg *config.Config) *App {
	a := &App{config: cfg}

	a.root = &cobra.Command{
		Use:   "studiogrid",
		Short: "A terminal tool for bulk class scheduling",
		Long: `Studiogrid is a terminal tool for scheduling studio classes in bulk.

Paint class configurations onto a weekly grid, repeat the week over a
date range, review conflicts, and submit the whole batch to the studio
backend in one go.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureDirectory(); err != nil {
				return err
			}
			if err := a.ensureStore(); err != nil {
				return err
			}
			return tui.Run(a.config, a.client, a.dir, a.store)
		},
	}

	var noColor bool
	a.root.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	a.root.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if noColor {
			DisableColor()
		}
	}

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.templateCmd())
	a.root.AddCommand(a.createCmd())
	a.root.AddCommand(a.exportCmd())
	a.root.AddCommand(a.checkCmd())
	a.root.AddCommand(a.directoryCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("studiogrid %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// Close releases resources opened lazily by commands.
func (a *App) Close() error {
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}

// ensureClient builds the backend client on first use.
func (a *App) ensureClient() error {
	if a.client != nil {
		return nil
	}
	if a.config.API.BaseURL == "" {
		return fmt.Errorf("no backend configured: set api.base_url in the config file or STUDIOGRID_API_BASE_URL")
	}
	timeout := time.Duration(a.config.API.TimeoutSeconds) * time.Second
	a.client = api.New(a.config.API.BaseURL, a.config.API.Token, timeout)
	return nil
}

// ensureDirectory fetches the id/name directories on first use.
func (a *App) ensureDirectory() error {
	if a.dir != nil {
		return nil
	}
	if err := a.ensureClient(); err != nil {
		return err
	}
	dir, err := api.LoadDirectory(context.Background(), a.client)
	if err != nil {
		return err
	}
	a.dir = dir
	return nil
}

// ensureStore opens the template database on first use.
func (a *App) ensureStore() error {
	if a.store != nil {
		return nil
	}
	store, err := db.New(a.config.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening template store: %w", err)
	}
	a.store = store
	return nil
}
