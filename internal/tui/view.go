package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/javiermolinar/studiogrid/internal/dateutil"
	"github.com/javiermolinar/studiogrid/internal/schedule"
)

// View renders the TUI.
func (m Model) View() string {
	var content string
	switch m.mode {
	case ModeForm:
		content = m.renderForm()
	case ModePicker:
		content = m.renderPicker()
	case ModeConfirm:
		content = m.renderConfirm()
	case ModeResults:
		content = m.renderResults()
	case ModeTemplates:
		content = m.renderTemplates()
	case ModeSaveName:
		content = m.renderSaveName()
	default:
		content = m.renderGrid()
	}

	if m.width > 0 && m.height > 0 && m.mode != ModeGrid {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// renderGrid draws the week grid, the configuration sidebar and the
// footer.
func (m Model) renderGrid() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render("STUDIOGRID"))
	b.WriteString("\n\n")

	// Day header row
	b.WriteString(m.styles.HourLabel.Render(""))
	for day := 0; day < schedule.DaysPerWeek; day++ {
		b.WriteString(m.styles.DayHeader.Render(schedule.DayShortName(day)))
	}
	b.WriteString("\n")

	conflicts := conflictCells(schedule.DetectRoomConflicts(m.editor.Selection(), m.editor.Registry()))

	for _, hour := range m.hours() {
		b.WriteString(m.styles.HourLabel.Render(schedule.HourToTime(hour) + " "))
		for day := 0; day < schedule.DaysPerWeek; day++ {
			b.WriteString(m.renderCell(schedule.Cell{Day: day, Hour: hour}, conflicts))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderSidebar())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderCell draws one grid cell: the occupant digits, or a dot when
// empty. Cursor and room conflicts override the palette style.
func (m Model) renderCell(c schedule.Cell, conflicts map[schedule.Cell]bool) string {
	sel := m.editor.Selection()

	var digits strings.Builder
	first := -1
	for _, cfg := range m.editor.Registry().All() {
		if sel.Has(c, cfg.ID) {
			if first < 0 {
				first = cfg.Color
			}
			fmt.Fprintf(&digits, "%d", m.configIndex(cfg.ID))
		}
	}

	under := c.Day == m.cursor.Day && c.Hour == m.cursor.Hour
	switch {
	case under && digits.Len() == 0:
		return m.styles.CursorCell.Render("·")
	case under:
		return m.styles.CursorCell.Render(digits.String())
	case conflicts[c]:
		return m.styles.ConflictCell.Render(digits.String())
	case digits.Len() > 0:
		return m.styles.PaletteCell(first).Render(digits.String())
	default:
		return m.styles.EmptyCell.Render("·")
	}
}

// renderSidebar lists the configurations with their palette swatch,
// slot counts, and the active marker.
func (m Model) renderSidebar() string {
	all := m.editor.Registry().All()
	if len(all) == 0 {
		return m.styles.Muted.Render("No configurations yet. Press 'a' to add one.")
	}

	var b strings.Builder
	for i, cfg := range all {
		marker := "  "
		style := m.styles.SidebarEntry
		if cfg.ID == m.editor.Active() {
			marker = "> "
			style = m.styles.SidebarActive
		}
		swatch := m.styles.PaletteText(cfg.Color).Render("■")
		line := fmt.Sprintf("%s%s %d. %s with %s in %s (%d slots, cap %d, %dmin)",
			marker, swatch, i+1,
			cfg.Label(), cfg.InstructorName, cfg.RoomName,
			m.editor.Selection().CountFor(cfg.ID),
			cfg.Draft.Capacity, cfg.Draft.DurationMinutes,
		)
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderFooter() string {
	help := "space toggle · r row · c col · a add · e edit · d del · tab cycle · s save · t load · p plan · f window · q quit"
	footer := m.styles.Footer.Render(help)
	if m.statusMsg != "" {
		footer += "\n" + m.styles.Status.Render(m.statusMsg)
	}
	return footer
}

// renderForm draws the configuration form modal.
func (m Model) renderForm() string {
	title := "New configuration"
	if m.form.editing != uuid.Nil {
		title = "Edit configuration"
	}

	label := func(field int, text string) string {
		if m.form.focus == field {
			return m.styles.FieldFocused.Render("> " + text)
		}
		return m.styles.FieldLabel.Render("  " + text)
	}

	classType := m.dir.ClassTypes()[m.form.classTypeIdx]
	instructor := m.dir.Instructors()[m.form.instructorIdx]
	room := m.dir.ClassRooms()[m.form.roomIdx]

	var b strings.Builder
	b.WriteString(m.styles.ModalTitle.Render(title))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", label(fieldClassType, "Class"), classType.Name)
	fmt.Fprintf(&b, "%s %s\n", label(fieldInstructor, "Instructor"), instructor.Name)
	fmt.Fprintf(&b, "%s %s\n", label(fieldRoom, "Room"), room.Name)
	fmt.Fprintf(&b, "%s %s\n", label(fieldCapacity, "Capacity"), m.form.capacity.View())
	fmt.Fprintf(&b, "%s %s\n", label(fieldDuration, "Duration"), m.form.duration.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("←/→ change · tab next · enter save · esc cancel"))
	if m.statusMsg != "" {
		b.WriteString("\n" + m.styles.Status.Render(m.statusMsg))
	}

	return m.styles.ModalBox.Render(b.String())
}

// renderPicker draws the start-week and repeat pattern picker.
func (m Model) renderPicker() string {
	var b strings.Builder
	b.WriteString(m.styles.ModalTitle.Render("Schedule the week"))
	b.WriteString("\n\n")

	b.WriteString("Start week:  ")
	for i, anchor := range m.anchors {
		text := anchor.Format("Jan 2")
		if i == m.anchorIdx {
			b.WriteString(m.styles.Title.Render("[" + text + "]"))
		} else {
			b.WriteString(m.styles.Muted.Render(" " + text + " "))
		}
	}
	b.WriteString("\n\n")

	if m.once {
		b.WriteString("Repeat:      once\n")
	} else {
		fmt.Fprintf(&b, "Repeat:      weekly x %d\n", m.weeks)
	}

	total := schedule.TotalCount(m.editor.Selection(), m.pattern())
	fmt.Fprintf(&b, "Classes:     %d\n", total)

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("←/→ week · ↑/↓ repeats · o once · enter review · esc back"))
	return m.styles.ModalBox.Render(b.String())
}

// renderConfirm draws the plan summary and conflicts.
func (m Model) renderConfirm() string {
	var b strings.Builder
	b.WriteString(m.styles.ModalTitle.Render("Review plan"))
	b.WriteString("\n\n")

	from := dateutil.FormatDate(dateutil.StartOfWeek(m.anchor()))
	to := dateutil.FormatDate(schedule.EndDate(m.anchor(), m.pattern()))
	fmt.Fprintf(&b, "%s to %s · %d classes in %d call(s)\n\n",
		from, to, len(m.pendingSlots), len(m.pendingGroups))

	if len(m.roomConflicts) > 0 {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("Room conflicts: %d", len(m.roomConflicts))))
		b.WriteString("\n")
		for _, rc := range m.roomConflicts {
			fmt.Fprintf(&b, "  %s %s room %d: %s\n",
				schedule.DayName(rc.Cell.Day), schedule.HourToTime(rc.Cell.Hour),
				rc.RoomID, strings.Join(rc.ClassTypes, " / "))
		}
		b.WriteString("\n")
	}

	switch {
	case m.checking:
		b.WriteString(m.styles.Muted.Render("Checking existing schedule..."))
		b.WriteString("\n")
	case len(m.scheduleConflicts) > 0:
		b.WriteString(m.styles.Warning.Render(fmt.Sprintf("Existing-schedule conflicts: %d", len(m.scheduleConflicts))))
		b.WriteString("\n")
		for _, sc := range m.scheduleConflicts {
			ex := sc.Existing
			fmt.Fprintf(&b, "  %s %s %s (%s)\n", ex.Date, ex.StartTime, ex.ClassTypeName, sc.Kind)
		}
	default:
		b.WriteString(m.styles.Success.Render("No conflicts with the existing schedule."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.submitting {
		b.WriteString(m.styles.Muted.Render("Submitting..."))
	} else {
		b.WriteString(m.styles.Muted.Render("y submit · esc back"))
	}
	return m.styles.ModalBox.Render(b.String())
}

// renderResults draws per-group submission outcomes.
func (m Model) renderResults() string {
	var b strings.Builder
	b.WriteString(m.styles.ModalTitle.Render("Submission results"))
	b.WriteString("\n\n")

	for _, r := range m.results {
		g := r.Group
		line := fmt.Sprintf("%s %s (%d dates)", g.Config.Label(), g.LocalTime, len(g.Dates))
		if r.OK() {
			fmt.Fprintf(&b, "%s %s\n", m.styles.Success.Render("✓"), line)
		} else {
			fmt.Fprintf(&b, "%s %s: %v\n", m.styles.Error.Render("✗"), line, r.Err)
		}
	}

	failed := schedule.FailedCount(m.results)
	b.WriteString("\n")
	if failed == 0 {
		b.WriteString(m.styles.Success.Render(fmt.Sprintf("All %d group(s) created.", len(m.results))))
	} else {
		b.WriteString(m.styles.Error.Render(fmt.Sprintf("%d of %d group(s) failed.", failed, len(m.results))))
	}
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("enter close"))
	return m.styles.ModalBox.Render(b.String())
}

// renderTemplates draws the stored template picker.
func (m Model) renderTemplates() string {
	var b strings.Builder
	b.WriteString(m.styles.ModalTitle.Render("Load template"))
	b.WriteString("\n\n")

	for i, info := range m.templates {
		line := fmt.Sprintf("%-24s %d classes, %d slots", info.Name, info.ConfigCount, info.SlotCount)
		if i == m.templateIdx {
			b.WriteString(m.styles.Title.Render("> " + line))
		} else {
			b.WriteString(m.styles.Muted.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("↑/↓ select · enter load · esc cancel"))
	return m.styles.ModalBox.Render(b.String())
}

// renderSaveName draws the template name prompt.
func (m Model) renderSaveName() string {
	var b strings.Builder
	b.WriteString(m.styles.ModalTitle.Render("Save template"))
	b.WriteString("\n\n")
	b.WriteString(m.nameInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Muted.Render("enter save · esc cancel"))
	if m.statusMsg != "" {
		b.WriteString("\n" + m.styles.Status.Render(m.statusMsg))
	}
	return m.styles.ModalBox.Render(b.String())
}
