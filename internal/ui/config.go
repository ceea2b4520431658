package ui

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/studiogrid/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "View or edit configuration",
		Long: `Interactive configuration management.

If no config file exists, creates one with default values.
Otherwise, displays current config and allows editing.

Example:
  studiogrid config`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runConfigInteractive()
		},
	}
}

func runConfigInteractive() error {
	configPath := config.DefaultConfigPath()
	fmt.Printf("Config file: %s\n\n", configPath)

	// Load existing config or create defaults
	cfg, err := config.LoadFrom(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Check if file exists
	_, fileErr := os.Stat(configPath)
	isNew := os.IsNotExist(fileErr)

	if isNew {
		fmt.Println("No config file found. Creating with default values...")
		if err := cfg.Save(); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Printf("Created %s\n\n", configPath)
	}

	// Display current config
	printConfig(cfg)

	// Ask if user wants to edit
	if !promptYesNo("\nWould you like to edit the configuration?") {
		return nil
	}

	// Interactive editing
	reader := bufio.NewReader(os.Stdin)

	cfg.API.BaseURL = promptValue(reader, "Backend base URL", cfg.API.BaseURL)
	cfg.API.Token = promptValue(reader, "API token (empty to keep)", cfg.API.Token)
	cfg.API.TimeoutSeconds = promptInt(reader, "Request timeout (seconds)", cfg.API.TimeoutSeconds)
	cfg.Grid.StartHour = promptInt(reader, "Grid start hour", cfg.Grid.StartHour)
	cfg.Grid.EndHour = promptInt(reader, "Grid end hour (inclusive)", cfg.Grid.EndHour)
	cfg.Grid.CompactStartHour = promptInt(reader, "Compact view start hour", cfg.Grid.CompactStartHour)
	cfg.Storage.DBPath = promptValue(reader, "Template database path", cfg.Storage.DBPath)
	cfg.UI.Theme = promptValue(reader, "UI theme (auto, dark, light)", cfg.UI.Theme)

	// Validate before saving
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// Save
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Println("\nConfiguration saved!")
	return nil
}

func printConfig(cfg *config.Config) {
	fmt.Println("Current configuration:")
	fmt.Println("──────────────────────")
	fmt.Println("[api]")
	fmt.Printf("  base_url           = %s\n", cfg.API.BaseURL)
	fmt.Printf("  token              = %s\n", maskToken(cfg.API.Token))
	fmt.Printf("  timeout_seconds    = %d\n", cfg.API.TimeoutSeconds)
	fmt.Println("\n[grid]")
	fmt.Printf("  start_hour         = %d\n", cfg.Grid.StartHour)
	fmt.Printf("  end_hour           = %d\n", cfg.Grid.EndHour)
	fmt.Printf("  compact_start_hour = %d\n", cfg.Grid.CompactStartHour)
	fmt.Println("\n[storage]")
	fmt.Printf("  db_path            = %s\n", cfg.Storage.DBPath)
	fmt.Println("\n[ui]")
	fmt.Printf("  theme              = %s\n", cfg.UI.Theme)
}

func maskToken(token string) string {
	if token == "" {
		return "(not set)"
	}
	if len(token) <= 4 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}

func promptValue(reader *bufio.Reader, label, current string) string {
	if current == "" {
		fmt.Printf("  %s: ", label)
	} else {
		fmt.Printf("  %s [%s]: ", label, current)
	}
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(input)
	if input == "" {
		return current
	}
	return input
}

func promptInt(reader *bufio.Reader, label string, current int) int {
	for {
		input := promptValue(reader, label, strconv.Itoa(current))
		value, err := strconv.Atoi(input)
		if err != nil {
			fmt.Printf("  Invalid number %q.\n", input)
			continue
		}
		return value
	}
}
