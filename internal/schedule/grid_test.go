package schedule

import "testing"

func TestGridValid(t *testing.T) {
	g := DefaultGrid()

	tests := []struct {
		name string
		cell Cell
		want bool
	}{
		{"first cell", Cell{Day: 0, Hour: 6}, true},
		{"last cell", Cell{Day: 6, Hour: 21}, true},
		{"midweek", Cell{Day: 3, Hour: 14}, true},
		{"hour below range", Cell{Day: 0, Hour: 5}, false},
		{"hour above range", Cell{Day: 0, Hour: 22}, false},
		{"negative day", Cell{Day: -1, Hour: 10}, false},
		{"day out of range", Cell{Day: 7, Hour: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.Valid(tt.cell); got != tt.want {
				t.Errorf("Valid(%+v) = %v, want %v", tt.cell, got, tt.want)
			}
		})
	}
}

func TestGridHours(t *testing.T) {
	g := Grid{StartHour: 9, EndHour: 11}
	hours := g.Hours()
	want := []int{9, 10, 11}
	if len(hours) != len(want) {
		t.Fatalf("expected %d hours, got %d", len(want), len(hours))
	}
	for i, h := range want {
		if hours[i] != h {
			t.Errorf("hour %d: got %d, want %d", i, hours[i], h)
		}
	}

	if got := DefaultGrid().HourCount(); got != 16 {
		t.Errorf("default grid hour count = %d, want 16", got)
	}
}

func TestDayNames(t *testing.T) {
	if got := DayName(0); got != "Sunday" {
		t.Errorf("DayName(0) = %q, want Sunday", got)
	}
	if got := DayName(6); got != "Saturday" {
		t.Errorf("DayName(6) = %q, want Saturday", got)
	}
	if got := DayShortName(2); got != "Tue" {
		t.Errorf("DayShortName(2) = %q, want Tue", got)
	}
	if got := DayName(7); got != "" {
		t.Errorf("DayName(7) = %q, want empty", got)
	}
}
