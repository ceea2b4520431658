package schedule

import "sort"

// ConflictKind identifies which shared resource an overlap is about.
type ConflictKind string

const (
	ConflictInstructor ConflictKind = "instructor"
	ConflictRoom       ConflictKind = "room"
)

// RoomConflict reports two or more configurations painted onto the
// same grid cell that share a room and would double-book it. Detected
// during authoring, before anything is persisted.
type RoomConflict struct {
	Cell       Cell
	RoomID     int64
	ClassTypes []string // display names of the clashing configurations
}

// DetectRoomConflicts scans every cell with two or more occupants and
// groups the occupants by room. Each (cell, room) group with at least
// two members yields exactly one conflict record; occupants in other
// rooms contribute nothing. Results are ordered by cell (day, hour),
// then room id.
func DetectRoomConflicts(sel *Selection, reg *Registry) []RoomConflict {
	var conflicts []RoomConflict
	for _, c := range sel.Cells() {
		if sel.OccupantCount(c) < 2 {
			continue
		}
		byRoom := map[int64][]string{}
		for _, cfg := range reg.All() {
			if sel.Has(c, cfg.ID) {
				byRoom[cfg.Draft.ClassRoomID] = append(byRoom[cfg.Draft.ClassRoomID], cfg.Label())
			}
		}
		rooms := make([]int64, 0, len(byRoom))
		for room, names := range byRoom {
			if len(names) >= 2 {
				rooms = append(rooms, room)
			}
		}
		sort.Slice(rooms, func(i, j int) bool { return rooms[i] < rooms[j] })
		for _, room := range rooms {
			conflicts = append(conflicts, RoomConflict{Cell: c, RoomID: room, ClassTypes: byRoom[room]})
		}
	}
	return conflicts
}

// ExistingClass is a class already persisted on the backend, as far as
// conflict detection needs it. Source data mixes date representations,
// so both the local and the UTC date strings are carried and a
// candidate matches on either.
type ExistingClass struct {
	ID              int64
	ClassTypeName   string
	InstructorID    int64
	ClassRoomID     int64
	Date            string // local calendar date, YYYY-MM-DD
	UTCDate         string // UTC calendar date, YYYY-MM-DD
	StartTime       string // local start, HH:MM
	DurationMinutes int
}

// Candidate is a class about to be created, checked against the
// persisted schedule.
type Candidate struct {
	InstructorID    int64
	ClassRoomID     int64
	Date            string // YYYY-MM-DD
	StartTime       string // HH:MM
	DurationMinutes int
}

// ScheduleConflict reports a minute-level overlap between a candidate
// and one persisted class. A single existing class can produce both an
// instructor and a room conflict at once.
type ScheduleConflict struct {
	Kind     ConflictKind
	Existing ExistingClass
}

// DetectScheduleConflicts compares the candidate's [start, end) range
// against every existing class on the same calendar date, flagging an
// instructor conflict when the instructor matches and, independently,
// a room conflict when the room matches. Results are advisory; the
// caller decides whether to proceed.
func DetectScheduleConflicts(cand Candidate, existing []ExistingClass) []ScheduleConflict {
	candStart := TimeToMinutes(cand.StartTime)
	candEnd := candStart + cand.DurationMinutes

	var conflicts []ScheduleConflict
	for _, ex := range existing {
		if cand.Date != ex.Date && cand.Date != ex.UTCDate {
			continue
		}
		exStart := TimeToMinutes(ex.StartTime)
		exEnd := exStart + ex.DurationMinutes
		if !TimesOverlap(candStart, candEnd, exStart, exEnd) {
			continue
		}
		if cand.InstructorID == ex.InstructorID {
			conflicts = append(conflicts, ScheduleConflict{Kind: ConflictInstructor, Existing: ex})
		}
		if cand.ClassRoomID == ex.ClassRoomID {
			conflicts = append(conflicts, ScheduleConflict{Kind: ConflictRoom, Existing: ex})
		}
	}
	return conflicts
}
