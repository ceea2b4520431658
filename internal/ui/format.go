package ui

import (
	"fmt"
	"strings"

	"github.com/javiermolinar/studiogrid/internal/schedule"
)

// printPlanSummary prints the expanded plan's shape: date range, week
// count, configuration count and total classes.
func printPlanSummary(p *plan) {
	start, end := p.dateRange()
	fmt.Printf("%s %s to %s (%d week(s))\n",
		formatHeader("PLAN:"), start, end, p.pattern.WeekCount())
	fmt.Printf("  %d configuration(s), %d slot(s) per week, %d classes total\n",
		p.editor.Registry().Len(),
		p.editor.Selection().Total(),
		len(p.slots),
	)
	fmt.Println(formatMuted(strings.Repeat("-", min(termWidth(), 60))))
}

// printRoomConflicts lists cell-level double bookings within the plan
// itself. Nothing is printed when the list is empty.
func printRoomConflicts(conflicts []schedule.RoomConflict) {
	if len(conflicts) == 0 {
		return
	}
	fmt.Println(formatError(fmt.Sprintf("ROOM CONFLICTS (%d)", len(conflicts))))
	for _, rc := range conflicts {
		fmt.Printf("  %s %s room %d: %s\n",
			schedule.DayName(rc.Cell.Day),
			schedule.HourToTime(rc.Cell.Hour),
			rc.RoomID,
			strings.Join(rc.ClassTypes, " / "),
		)
	}
	fmt.Println()
}

// printScheduleConflicts lists overlaps with classes already persisted
// in the backend. Nothing is printed when the list is empty.
func printScheduleConflicts(conflicts []schedule.ScheduleConflict, dir schedule.Directory) {
	if len(conflicts) == 0 {
		return
	}
	fmt.Println(formatWarning(fmt.Sprintf("EXISTING-SCHEDULE CONFLICTS (%d)", len(conflicts))))
	for _, sc := range conflicts {
		ex := sc.Existing
		end := schedule.MinutesToTime(schedule.TimeToMinutes(ex.StartTime) + ex.DurationMinutes)
		detail := fmt.Sprintf("room %d", ex.ClassRoomID)
		if sc.Kind == schedule.ConflictInstructor {
			detail = fmt.Sprintf("instructor %d", ex.InstructorID)
			if name := dir.InstructorName(ex.InstructorID); name != "" {
				detail = "instructor " + name
			}
		}
		fmt.Printf("  %s %s-%s %s overlaps %s (#%d)\n",
			ex.Date, ex.StartTime, end, ex.ClassTypeName, detail, ex.ID)
	}
	fmt.Println()
}

// printGroupResults prints one line per submission group, successes
// and failures alike, then a summary line.
func printGroupResults(results []schedule.GroupResult) {
	for _, r := range results {
		g := r.Group
		line := fmt.Sprintf("%s %s %s", g.Config.Label(), g.LocalTime, formatDateList(g.Dates))
		if r.OK() {
			fmt.Printf("  %s %s %s\n", formatSuccess("✓"), line, formatMuted("(UTC "+r.UTCTime+")"))
		} else {
			fmt.Printf("  %s %s: %v\n", formatError("✗"), line, r.Err)
		}
	}

	total := len(results)
	failed := schedule.FailedCount(results)
	if failed == 0 {
		fmt.Println(formatSuccess(fmt.Sprintf("All %d group(s) created.", total)))
	} else {
		fmt.Println(formatError(fmt.Sprintf("%d of %d group(s) failed.", failed, total)))
	}
}

// formatDateList compacts a chronological date list for display:
// "2025-09-07 .. 2025-10-26 (8 dates)".
func formatDateList(dates []string) string {
	switch len(dates) {
	case 0:
		return "(no dates)"
	case 1:
		return dates[0]
	default:
		return fmt.Sprintf("%s .. %s (%d dates)", dates[0], dates[len(dates)-1], len(dates))
	}
}
