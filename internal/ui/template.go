package ui

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/studiogrid/internal/schedule"
)

func (a *App) templateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage saved schedule templates",
	}

	cmd.AddCommand(a.templateListCmd())
	cmd.AddCommand(a.templateShowCmd())
	cmd.AddCommand(a.templateDeleteCmd())

	return cmd
}

func (a *App) templateListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved templates",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}

			infos, err := a.store.ListTemplates(context.Background())
			if err != nil {
				return fmt.Errorf("listing templates: %w", err)
			}

			if len(infos) == 0 {
				fmt.Println("No templates saved yet. Save one from the grid view with 's'.")
				return nil
			}

			fmt.Println(formatHeader("NAME                      CLASSES  SLOTS  SAVED"))
			for _, info := range infos {
				fmt.Printf("%-25s %7d %6d  %s\n",
					info.Name,
					info.ConfigCount,
					info.SlotCount,
					formatMuted(info.CreatedAt.Format("2006-01-02 15:04")),
				)
			}
			return nil
		},
	}
}

func (a *App) templateShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [name]",
		Short: "Show a template's configurations and slots",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}

			tpl, err := a.store.LoadTemplate(context.Background(), args[0])
			if err != nil {
				return err
			}

			fmt.Printf("%s (saved %s)\n\n",
				formatHeader(tpl.Name),
				tpl.CreatedAt.Format("2006-01-02 15:04"),
			)

			slotsByKey := make(map[string][]schedule.Cell)
			for _, slot := range tpl.Slots {
				slotsByKey[slot.Key] = append(slotsByKey[slot.Key], slot.Cell)
			}

			for _, tc := range tpl.Configurations {
				fmt.Printf("  %s  type=%d instructor=%d room=%d capacity=%d %dmin\n",
					formatHeader(tc.Key),
					tc.Draft.ClassTypeID,
					tc.Draft.InstructorID,
					tc.Draft.ClassRoomID,
					tc.Draft.Capacity,
					tc.Draft.DurationMinutes,
				)
				for _, c := range slotsByKey[tc.Key] {
					fmt.Printf("    %s %s\n", schedule.DayName(c.Day), schedule.HourToTime(c.Hour))
				}
			}
			return nil
		},
	}
}

func (a *App) templateDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a saved template",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureStore(); err != nil {
				return err
			}

			if err := a.store.DeleteTemplate(context.Background(), args[0]); err != nil {
				return err
			}

			fmt.Printf("Deleted template %q\n", args[0])
			return nil
		},
	}
}
