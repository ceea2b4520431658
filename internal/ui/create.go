package ui

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/studiogrid/internal/schedule"
)

func (a *App) createCmd() *cobra.Command {
	var (
		templateName string
		startDate    string
		weeks        int
		once         bool
		dryRun       bool
		yes          bool
		skipCheck    bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create classes from a saved template",
		Long: `Expand a saved template over a date range and submit the classes
to the backend, one call per (configuration, start time) pair.

The start date is moved back to its week's Sunday; with --weeks N the
week repeats N times. Conflicts are shown before anything is sent.`,
		Example: `  studiogrid create --template standard-week --start 2025-09-07 --weeks 8
  studiogrid create --template workshop --start 2025-09-07 --once --dry-run`,
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

			if !skipCheck {
				conflicts, err := a.scheduleConflicts(ctx, p)
				if err != nil {
					return fmt.Errorf("checking persisted schedule: %w", err)
				}
				printScheduleConflicts(conflicts, a.dir)
			}

			if dryRun {
				fmt.Println(formatMuted("Dry run: nothing submitted."))
				return nil
			}

			if !yes && !promptYesNo(fmt.Sprintf("Create %d classes?", len(p.slots))) {
				fmt.Println("Aborted.")
				return nil
			}

			submitter := schedule.NewSubmitter(a.client, a.client)
			groups := schedule.BuildSubmissionGroups(p.slots, p.editor.Registry())
			results := submitter.Submit(ctx, groups)

			printGroupResults(results)

			if failed := schedule.FailedCount(results); failed > 0 {
				return fmt.Errorf("%d of %d groups failed", failed, len(results))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&templateName, "template", "", "Template name (required)")
	cmd.Flags().StringVar(&startDate, "start", "", "Start date (YYYY-MM-DD, default: today); moved back to Sunday")
	cmd.Flags().IntVar(&weeks, "weeks", 1, "Number of weeks to repeat")
	cmd.Flags().BoolVar(&once, "once", false, "Schedule a single week only")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the plan and conflicts without submitting")
	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&skipCheck, "skip-check", false, "Skip the persisted-schedule conflict check")

	_ = cmd.MarkFlagRequired("template")

	return cmd
}

func promptYesNo(question string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", question)
	input, _ := reader.ReadString('\n')
	input = strings.TrimSpace(strings.ToLower(input))
	return input == "y" || input == "yes"
}
