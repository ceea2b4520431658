package schedule

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/javiermolinar/studiogrid/internal/dateutil"
)

// csvHeader is the fixed column set of the export, one row per
// expanded slot. The export is a deterministic projection of Expand's
// output and stays in lockstep with its emission order.
var csvHeader = []string{
	"date", "time", "class_type_id", "instructor_id", "class_room_id", "capacity", "duration_minutes",
}

// WriteCSV renders the expanded slots as CSV, header included.
// Slots whose configuration is missing from the registry are an error;
// the expansion and the registry must describe the same session.
func WriteCSV(w io.Writer, slots []ExpandedSlot, reg *Registry) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, slot := range slots {
		cfg := reg.Get(slot.ConfigID)
		if cfg == nil {
			return fmt.Errorf("expanded slot references unknown configuration %s", slot.ConfigID)
		}
		row := []string{
			dateutil.FormatDate(slot.Date),
			slot.LocalTime,
			strconv.FormatInt(cfg.Draft.ClassTypeID, 10),
			strconv.FormatInt(cfg.Draft.InstructorID, 10),
			strconv.FormatInt(cfg.Draft.ClassRoomID, 10),
			strconv.Itoa(cfg.Draft.Capacity),
			strconv.Itoa(cfg.Draft.DurationMinutes),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
