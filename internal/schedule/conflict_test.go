package schedule

import "testing"

func TestDetectRoomConflicts_SharedRoom(t *testing.T) {
	reg := NewRegistry(testDirectory())

	yoga, _ := reg.Add(Draft{ClassTypeID: 1, InstructorID: 1, ClassRoomID: 1, Capacity: 10, DurationMinutes: 60})
	pilates, _ := reg.Add(Draft{ClassTypeID: 2, InstructorID: 2, ClassRoomID: 1, Capacity: 10, DurationMinutes: 60})

	cell := Cell{Day: 0, Hour: 14}
	sel := NewSelection().ToggleCell(cell, yoga.ID).ToggleCell(cell, pilates.ID)

	conflicts := DetectRoomConflicts(sel, reg)
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(conflicts))
	}
	c := conflicts[0]
	if c.Cell != cell {
		t.Errorf("conflict cell = %+v, want %+v", c.Cell, cell)
	}
	if c.RoomID != 1 {
		t.Errorf("conflict room = %d, want 1", c.RoomID)
	}
	if len(c.ClassTypes) != 2 || c.ClassTypes[0] != "Yoga" || c.ClassTypes[1] != "Pilates" {
		t.Errorf("conflict class types = %v", c.ClassTypes)
	}
}

func TestDetectRoomConflicts_ThirdConfigDifferentRoom(t *testing.T) {
	reg := NewRegistry(testDirectory())

	a, _ := reg.Add(Draft{ClassTypeID: 1, InstructorID: 1, ClassRoomID: 1, Capacity: 10, DurationMinutes: 60})
	b, _ := reg.Add(Draft{ClassTypeID: 2, InstructorID: 2, ClassRoomID: 1, Capacity: 10, DurationMinutes: 60})
	c, _ := reg.Add(Draft{ClassTypeID: 3, InstructorID: 1, ClassRoomID: 2, Capacity: 10, DurationMinutes: 60})

	cell := Cell{Day: 0, Hour: 14}
	sel := NewSelection().
		ToggleCell(cell, a.ID).
		ToggleCell(cell, b.ID).
		ToggleCell(cell, c.ID)

	conflicts := DetectRoomConflicts(sel, reg)
	if len(conflicts) != 1 {
		t.Fatalf("expected exactly 1 conflict record, got %d", len(conflicts))
	}
	if len(conflicts[0].ClassTypes) != 2 {
		t.Errorf("room-2 occupant leaked into conflict: %v", conflicts[0].ClassTypes)
	}
}

func TestDetectRoomConflicts_NoSharedRoom(t *testing.T) {
	reg := NewRegistry(nil)
	a, _ := reg.Add(Draft{ClassTypeID: 1, InstructorID: 1, ClassRoomID: 1, Capacity: 5, DurationMinutes: 45})
	b, _ := reg.Add(Draft{ClassTypeID: 2, InstructorID: 2, ClassRoomID: 2, Capacity: 5, DurationMinutes: 45})

	cell := Cell{Day: 4, Hour: 18}
	sel := NewSelection().ToggleCell(cell, a.ID).ToggleCell(cell, b.ID)

	if got := DetectRoomConflicts(sel, reg); len(got) != 0 {
		t.Errorf("expected no conflicts, got %v", got)
	}
}

func TestDetectScheduleConflicts_RoomOnly(t *testing.T) {
	cand := Candidate{InstructorID: 1, ClassRoomID: 5, Date: "2024-01-09", StartTime: "09:00", DurationMinutes: 50}
	existing := []ExistingClass{{
		ID: 10, InstructorID: 2, ClassRoomID: 5,
		Date: "2024-01-09", UTCDate: "2024-01-09",
		StartTime: "09:30", DurationMinutes: 50,
	}}

	conflicts := DetectScheduleConflicts(cand, existing)
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(conflicts))
	}
	if conflicts[0].Kind != ConflictRoom {
		t.Errorf("kind = %s, want room", conflicts[0].Kind)
	}
}

func TestDetectScheduleConflicts_InstructorOnly(t *testing.T) {
	cand := Candidate{InstructorID: 1, ClassRoomID: 5, Date: "2024-01-09", StartTime: "09:00", DurationMinutes: 50}
	existing := []ExistingClass{{
		ID: 10, InstructorID: 1, ClassRoomID: 6,
		Date: "2024-01-09", UTCDate: "2024-01-09",
		StartTime: "09:30", DurationMinutes: 50,
	}}

	conflicts := DetectScheduleConflicts(cand, existing)
	if len(conflicts) != 1 {
		t.Fatalf("expected 1 conflict, got %d", len(conflicts))
	}
	if conflicts[0].Kind != ConflictInstructor {
		t.Errorf("kind = %s, want instructor", conflicts[0].Kind)
	}
}

func TestDetectScheduleConflicts_BothAtOnce(t *testing.T) {
	cand := Candidate{InstructorID: 1, ClassRoomID: 5, Date: "2024-01-09", StartTime: "10:00", DurationMinutes: 60}
	existing := []ExistingClass{{
		ID: 11, InstructorID: 1, ClassRoomID: 5,
		Date: "2024-01-09", UTCDate: "2024-01-09",
		StartTime: "10:30", DurationMinutes: 60,
	}}

	conflicts := DetectScheduleConflicts(cand, existing)
	if len(conflicts) != 2 {
		t.Fatalf("expected instructor and room conflicts, got %d", len(conflicts))
	}
	if conflicts[0].Kind != ConflictInstructor || conflicts[1].Kind != ConflictRoom {
		t.Errorf("kinds = %s, %s", conflicts[0].Kind, conflicts[1].Kind)
	}
}

func TestDetectScheduleConflicts_DateMatching(t *testing.T) {
	cand := Candidate{InstructorID: 1, ClassRoomID: 5, Date: "2024-01-10", StartTime: "09:00", DurationMinutes: 60}

	tests := []struct {
		name     string
		local    string
		utc      string
		conflict bool
	}{
		{"matches local date", "2024-01-10", "2024-01-11", true},
		{"matches utc date", "2024-01-09", "2024-01-10", true},
		{"matches neither", "2024-01-09", "2024-01-09", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := []ExistingClass{{
				InstructorID: 1, ClassRoomID: 5,
				Date: tt.local, UTCDate: tt.utc,
				StartTime: "09:00", DurationMinutes: 60,
			}}
			got := DetectScheduleConflicts(cand, existing)
			if (len(got) > 0) != tt.conflict {
				t.Errorf("conflicts = %v, want conflict=%v", got, tt.conflict)
			}
		})
	}
}

func TestDetectScheduleConflicts_NoOverlap(t *testing.T) {
	cand := Candidate{InstructorID: 1, ClassRoomID: 5, Date: "2024-01-09", StartTime: "09:00", DurationMinutes: 60}
	existing := []ExistingClass{{
		InstructorID: 1, ClassRoomID: 5,
		Date: "2024-01-09", UTCDate: "2024-01-09",
		StartTime: "10:00", DurationMinutes: 60, // touches 10:00 but does not overlap
	}}

	if got := DetectScheduleConflicts(cand, existing); len(got) != 0 {
		t.Errorf("adjacent classes flagged as conflicting: %v", got)
	}
}
