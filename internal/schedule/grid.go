// Package schedule implements the bulk class-schedule authoring engine:
// the weekly selection grid, the configuration registry, recurrence
// expansion into dated classes, conflict detection, and batched
// submission to the studio backend.
package schedule

// DaysPerWeek is the number of days in the selection grid.
const DaysPerWeek = 7

// Default grid hour bounds. The full grid spans 06:00 through the
// 21:00 row; views may show a narrower window, but selection state
// always covers the full range.
const (
	DefaultStartHour = 6
	DefaultEndHour   = 21
)

// Cell is one (day-of-week, hour) coordinate in the authoring grid.
// Day 0 is Sunday, 6 is Saturday. Hour is a 24-hour clock hour; a cell
// always represents a full clock hour regardless of class duration.
type Cell struct {
	Day  int
	Hour int
}

// Grid is the coordinate space for slot selection: 7 days by an
// inclusive hour range. It holds no selection state of its own.
type Grid struct {
	StartHour int
	EndHour   int
}

// DefaultGrid returns the standard 06:00-21:00 grid.
func DefaultGrid() Grid {
	return Grid{StartHour: DefaultStartHour, EndHour: DefaultEndHour}
}

// Valid returns true if the cell lies within the grid.
func (g Grid) Valid(c Cell) bool {
	return c.Day >= 0 && c.Day < DaysPerWeek && c.Hour >= g.StartHour && c.Hour <= g.EndHour
}

// Hours returns the grid's hour rows in ascending order.
func (g Grid) Hours() []int {
	if g.EndHour < g.StartHour {
		return nil
	}
	hours := make([]int, 0, g.EndHour-g.StartHour+1)
	for h := g.StartHour; h <= g.EndHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// HourCount returns the number of hour rows in the grid.
func (g Grid) HourCount() int {
	if g.EndHour < g.StartHour {
		return 0
	}
	return g.EndHour - g.StartHour + 1
}

// DayName returns the name of the grid day (0=Sunday).
func DayName(day int) string {
	names := []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}
	if day < 0 || day > 6 {
		return ""
	}
	return names[day]
}

// DayShortName returns the short name of the grid day (0=Sunday).
func DayShortName(day int) string {
	names := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	if day < 0 || day > 6 {
		return ""
	}
	return names[day]
}
