package schedule

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/javiermolinar/studiogrid/internal/dateutil"
)

// Repeat pattern errors.
var (
	ErrInvalidWeekCount = errors.New("week count must be between 1 and 52")
)

// MaxWeeks is the longest weekly repetition accepted.
const MaxWeeks = 52

// RepeatKind distinguishes a one-off week from a weekly repetition.
type RepeatKind int

const (
	RepeatOneTime RepeatKind = iota
	RepeatWeekly
)

// RepeatPattern describes how a slot selection recurs: a single week,
// or the same week repeated for Weeks consecutive weeks.
type RepeatPattern struct {
	Kind  RepeatKind
	Weeks int
}

// OneTime returns the single-week pattern.
func OneTime() RepeatPattern {
	return RepeatPattern{Kind: RepeatOneTime}
}

// Weekly returns a weekly pattern repeating for the given number of
// weeks, between 1 and MaxWeeks.
func Weekly(weeks int) (RepeatPattern, error) {
	if weeks < 1 || weeks > MaxWeeks {
		return RepeatPattern{}, ErrInvalidWeekCount
	}
	return RepeatPattern{Kind: RepeatWeekly, Weeks: weeks}, nil
}

// WeekCount returns the number of weeks the pattern covers.
// One-time patterns cover a single week.
func (p RepeatPattern) WeekCount() int {
	if p.Kind == RepeatOneTime {
		return 1
	}
	return p.Weeks
}

// ExpandedSlot is one concrete class occurrence produced by expansion:
// a configuration on a calendar date at a local "HH:00" time. Expanded
// slots are computed on demand and never persisted.
type ExpandedSlot struct {
	ConfigID  uuid.UUID
	Date      time.Time
	LocalTime string
}

// Expand materializes the selection into concrete dated slots. The
// anchor is normalized to the Sunday of its week; each selected cell
// yields one slot per week of the pattern.
//
// Emission order is deterministic: weeks outer, then days 0..6, then
// hours ascending, then configurations in registry insertion order.
func Expand(sel *Selection, reg *Registry, anchor time.Time, p RepeatPattern) []ExpandedSlot {
	sunday := dateutil.StartOfWeek(anchor)
	cells := sel.Cells()
	order := reg.IDs()

	var slots []ExpandedSlot
	for week := 0; week < p.WeekCount(); week++ {
		for _, c := range cells { // sorted by day, then hour
			date := sunday.AddDate(0, 0, 7*week+c.Day)
			for _, id := range order {
				if !sel.Has(c, id) {
					continue
				}
				slots = append(slots, ExpandedSlot{
					ConfigID:  id,
					Date:      date,
					LocalTime: HourToTime(c.Hour),
				})
			}
		}
	}
	return slots
}

// TotalCount returns the number of slots Expand would produce: the
// selection's (cell, configuration) pair count times the week count.
func TotalCount(sel *Selection, p RepeatPattern) int {
	return sel.Total() * p.WeekCount()
}

// EndDate returns the last day of the last included week: the
// Saturday weekCount weeks after the anchor's Sunday.
func EndDate(anchor time.Time, p RepeatPattern) time.Time {
	return dateutil.StartOfWeek(anchor).AddDate(0, 0, p.WeekCount()*7-1)
}
