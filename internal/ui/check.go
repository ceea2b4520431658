package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/studiogrid/internal/schedule"
)

func (a *App) checkCmd() *cobra.Command {
	var (
		templateName string
		startDate    string
		weeks        int
		once         bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check a template's plan for conflicts",
		Long: `Expand a saved template over a date range and report conflicts
without creating anything.

Two kinds are reported: room conflicts between the template's own
configurations sharing a grid slot, and overlaps with classes already
persisted in the backend for the same dates.`,
		Example: `  studiogrid check --template standard-week --start 2025-09-07 --weeks 8`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureDirectory(); err != nil {
				return err
			}

			ctx := context.Background()
			p, err := a.buildPlan(ctx, a.dir, templateName, startDate, weeks, once)
			if err != nil {
				return err
			}

			printPlanSummary(p)

			roomConflicts := schedule.DetectRoomConflicts(p.editor.Selection(), p.editor.Registry())
			printRoomConflicts(roomConflicts)

			conflicts, err := a.scheduleConflicts(ctx, p)
			if err != nil {
				return fmt.Errorf("checking persisted schedule: %w", err)
			}
			printScheduleConflicts(conflicts, a.dir)

			if len(roomConflicts) == 0 && len(conflicts) == 0 {
				fmt.Println(formatSuccess("No conflicts found."))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&templateName, "template", "", "Template name (required)")
	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD, default: today); moved back to Sunday")
	cmd.Flags().IntVar(&weeks, "weeks", 1, "Number of weeks to repeat")
	cmd.Flags().BoolVar(&once, "once", false, "Schedule a single week only")

	_ = cmd.MarkFlagRequired("template")

	return cmd
}
