package ui

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/studiogrid/internal/schedule"
)

func (a *App) exportCmd() *cobra.Command {
	var (
		templateName string
		startDate    string
		weeks        int
		once         bool
		outputPath   string
		toClipboard  bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a template's expanded schedule as CSV",
		Long: `Expand a saved template over a date range and write the resulting
classes as CSV, one row per class, without contacting the backend.

By default the CSV goes to stdout.`,
		Example: `  studiogrid export --template standard-week --start 2025-09-07 --weeks 8
  studiogrid export --template standard-week -o schedule.csv
  studiogrid export --template standard-week --clipboard`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if outputPath != "" && toClipboard {
				return fmt.Errorf("--output and --clipboard are mutually exclusive")
			}

			// Export never shows names, so the directory stays offline.
			p, err := a.buildPlan(context.Background(), nullDirectory{}, templateName, startDate, weeks, once)
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := schedule.WriteCSV(&buf, p.slots, p.editor.Registry()); err != nil {
				return fmt.Errorf("writing CSV: %w", err)
			}

			switch {
			case toClipboard:
				if err := clipboard.WriteAll(buf.String()); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Printf("Copied %d classes to clipboard\n", len(p.slots))
			case outputPath != "":
				if err := os.WriteFile(outputPath, buf.Bytes(), 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", outputPath, err)
				}
				fmt.Printf("Wrote %d classes to %s\n", len(p.slots), outputPath)
			default:
				fmt.Print(buf.String())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&templateName, "template", "", "Template name (required)")
	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD, default: today); moved back to Sunday")
	cmd.Flags().IntVar(&weeks, "weeks", 1, "Number of weeks to repeat")
	cmd.Flags().BoolVar(&once, "once", false, "Schedule a single week only")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write CSV to a file instead of stdout")
	cmd.Flags().BoolVar(&toClipboard, "clipboard", false, "Copy CSV to the clipboard")

	_ = cmd.MarkFlagRequired("template")

	return cmd
}
