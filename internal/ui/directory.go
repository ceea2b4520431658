package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/studiogrid/internal/api"
)

func (a *App) directoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "directory",
		Short: "List instructors, class types and rooms",
		Long: `List the backend's instructor, class type and room directories
with the ids used by templates and the create command.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureDirectory(); err != nil {
				return err
			}

			printDirectorySection("INSTRUCTORS", a.dir.Instructors())
			printDirectorySection("CLASS TYPES", a.dir.ClassTypes())
			printDirectorySection("ROOMS", a.dir.ClassRooms())
			return nil
		},
	}
}

func printDirectorySection(title string, entries []api.DirectoryEntry) {
	fmt.Println(formatHeader(title))
	if len(entries) == 0 {
		fmt.Println(formatMuted("  (none)"))
	}
	for _, e := range entries {
		fmt.Printf("  %4d  %s\n", e.ID, e.Name)
	}
	fmt.Println()
}
