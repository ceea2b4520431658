package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/javiermolinar/studiogrid/internal/dateutil"
)

// Submission guard errors. Both block submission outright.
var (
	ErrNoConfigurations = errors.New("no class configurations defined")
	ErrEmptySelection   = errors.New("no slots selected")
)

// Creator is the backend's class creation boundary: one call creates
// the same class on every date in the list at a single UTC start time.
// Idempotency is not guaranteed; retrying a failed group may duplicate
// classes already created server-side.
type Creator interface {
	CreateClasses(ctx context.Context, draft Draft, dates []string, startTimeUTC string) error
}

// TimeConverter converts a local wall-clock time on a given date to
// the backend's UTC wire time. The conversion is authoritative; this
// package does not reimplement timezone or DST logic.
type TimeConverter interface {
	ToUTC(ctx context.Context, localTime, localDate string) (string, error)
}

// SubmissionGroup is the unit of interaction with the creation API:
// all expanded slots sharing a configuration and a local time-of-day,
// batched into one call carrying the full date list.
type SubmissionGroup struct {
	Config    *Configuration
	LocalTime string   // HH:MM local
	Dates     []string // YYYY-MM-DD, chronological
}

// BuildSubmissionGroups groups expanded slots by configuration, then
// by local time-of-day. The number of groups, not the number of slots,
// is the number of backend calls made; the date-list batching is
// required behavior, not an optimization. Groups are ordered by
// registry insertion order, then local time ascending; dates keep
// expansion (chronological) order.
func BuildSubmissionGroups(slots []ExpandedSlot, reg *Registry) []SubmissionGroup {
	type key struct {
		id   uuid.UUID
		time string
	}
	dates := map[key][]string{}
	var order []key
	for _, slot := range slots {
		k := key{id: slot.ConfigID, time: slot.LocalTime}
		if _, ok := dates[k]; !ok {
			order = append(order, k)
		}
		dates[k] = append(dates[k], dateutil.FormatDate(slot.Date))
	}

	var groups []SubmissionGroup
	for _, cfg := range reg.All() {
		for _, k := range order {
			if k.id != cfg.ID {
				continue
			}
			groups = append(groups, SubmissionGroup{
				Config:    cfg,
				LocalTime: k.time,
				Dates:     dates[k],
			})
		}
	}
	return groups
}

// Candidates converts expanded slots to persisted-conflict candidates.
// Slots whose configuration is no longer in the registry are skipped.
func Candidates(slots []ExpandedSlot, reg *Registry) []Candidate {
	cands := make([]Candidate, 0, len(slots))
	for _, slot := range slots {
		cfg := reg.Get(slot.ConfigID)
		if cfg == nil {
			continue
		}
		cands = append(cands, Candidate{
			InstructorID:    cfg.Draft.InstructorID,
			ClassRoomID:     cfg.Draft.ClassRoomID,
			Date:            dateutil.FormatDate(slot.Date),
			StartTime:       slot.LocalTime,
			DurationMinutes: cfg.Draft.DurationMinutes,
		})
	}
	return cands
}

// GroupResult records the outcome of one group's creation call.
type GroupResult struct {
	Group   SubmissionGroup
	UTCTime string
	Err     error
}

// OK returns true if the group was created.
func (r GroupResult) OK() bool {
	return r.Err == nil
}

// FailedCount returns the number of failed groups in a result list.
func FailedCount(results []GroupResult) int {
	n := 0
	for _, r := range results {
		if !r.OK() {
			n++
		}
	}
	return n
}

// Submitter issues one creation call per submission group.
type Submitter struct {
	creator   Creator
	converter TimeConverter
}

// NewSubmitter creates a Submitter over the backend boundaries.
func NewSubmitter(creator Creator, converter TimeConverter) *Submitter {
	return &Submitter{creator: creator, converter: converter}
}

// Submit issues the groups sequentially and returns one result per
// group, in order. A failed group never suppresses later groups;
// partial success is a real outcome and every group's result is
// reported. The UTC start time is resolved once per group using the
// group's first date as the DST/offset representative.
func (s *Submitter) Submit(ctx context.Context, groups []SubmissionGroup) []GroupResult {
	results := make([]GroupResult, 0, len(groups))
	for _, g := range groups {
		res := GroupResult{Group: g}
		if len(g.Dates) == 0 {
			results = append(results, res)
			continue
		}
		utcTime, err := s.converter.ToUTC(ctx, g.LocalTime, g.Dates[0])
		if err != nil {
			res.Err = err
			results = append(results, res)
			continue
		}
		res.UTCTime = utcTime
		res.Err = s.creator.CreateClasses(ctx, g.Config.Draft, g.Dates, utcTime)
		results = append(results, res)
	}
	return results
}

// SubmitSelection expands the selection, groups it, and submits it.
// Returns ErrNoConfigurations or ErrEmptySelection without calling the
// backend when there is nothing to create.
func (s *Submitter) SubmitSelection(ctx context.Context, reg *Registry, sel *Selection, anchor time.Time, p RepeatPattern) ([]GroupResult, error) {
	if reg.Len() == 0 {
		return nil, ErrNoConfigurations
	}
	if TotalCount(sel, p) == 0 {
		return nil, ErrEmptySelection
	}
	slots := Expand(sel, reg, anchor, p)
	return s.Submit(ctx, BuildSubmissionGroups(slots, reg)), nil
}
