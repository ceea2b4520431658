package schedule

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// PaletteSize is the number of display colors cycled across
// configurations by creation order.
const PaletteSize = 5

// MinDurationMinutes is the shortest class duration accepted.
const MinDurationMinutes = 15

// Directory resolves display names for the id-based fields of a
// configuration. Names are resolved once at add/update time and cached
// on the configuration; they are not refreshed if the directory
// changes mid-session.
type Directory interface {
	InstructorName(id int64) string
	ClassTypeName(id int64) string
	RoomName(id int64) string
}

// FieldError describes a single invalid draft field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError is the set of field violations found in a draft.
// Each violated field contributes exactly one entry.
type ValidationError []FieldError

func (e ValidationError) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "invalid configuration: " + strings.Join(msgs, "; ")
}

// Draft holds the user-editable fields of a class configuration.
type Draft struct {
	ClassTypeID     int64
	InstructorID    int64
	ClassRoomID     int64
	Capacity        int
	DurationMinutes int
}

// Validate checks the draft's fields, returning a ValidationError
// listing every violation, or nil if the draft is valid.
func (d Draft) Validate() error {
	var errs ValidationError
	if d.ClassTypeID < 1 {
		errs = append(errs, FieldError{Field: "class_type_id", Message: "must be a valid class type"})
	}
	if d.InstructorID < 1 {
		errs = append(errs, FieldError{Field: "instructor_id", Message: "must be a valid instructor"})
	}
	if d.ClassRoomID < 1 {
		errs = append(errs, FieldError{Field: "class_room_id", Message: "must be a valid room"})
	}
	if d.Capacity < 1 {
		errs = append(errs, FieldError{Field: "capacity", Message: "must be at least 1"})
	}
	if d.DurationMinutes < MinDurationMinutes {
		errs = append(errs, FieldError{Field: "duration_minutes", Message: fmt.Sprintf("must be at least %d", MinDurationMinutes)})
	}
	if errs == nil {
		return nil
	}
	return errs
}

// Configuration is a reusable (class type, instructor, room, capacity,
// duration) tuple scheduled against many grid cells at once. Its ID is
// stable for the lifetime of the editing session and never reused
// while selection cells still reference it.
type Configuration struct {
	ID    uuid.UUID
	Draft Draft

	// Color is the palette index assigned by creation order.
	Color int

	// Display names resolved from the directory at add/update time.
	ClassTypeName  string
	InstructorName string
	RoomName       string
}

// Label returns a short human-readable identity for the configuration.
func (c *Configuration) Label() string {
	if c.ClassTypeName != "" {
		return c.ClassTypeName
	}
	return fmt.Sprintf("class type %d", c.Draft.ClassTypeID)
}

// Registry holds the class configurations being authored, in insertion
// order. Insertion order is the iteration order everywhere it matters
// (expansion, grouping, rendering).
type Registry struct {
	dir     Directory
	configs []*Configuration
	created int // lifetime add count, drives palette cycling
}

// NewRegistry creates an empty registry resolving names through dir.
// A nil dir leaves display names empty.
func NewRegistry(dir Directory) *Registry {
	return &Registry{dir: dir}
}

// Len returns the number of configurations.
func (r *Registry) Len() int {
	return len(r.configs)
}

// All returns the configurations in insertion order. The slice is
// shared; callers must not modify it.
func (r *Registry) All() []*Configuration {
	return r.configs
}

// IDs returns the configuration ids in insertion order.
func (r *Registry) IDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(r.configs))
	for i, c := range r.configs {
		ids[i] = c.ID
	}
	return ids
}

// Get returns the configuration with the given id, or nil.
func (r *Registry) Get(id uuid.UUID) *Configuration {
	for _, c := range r.configs {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// Add validates the draft and appends a new configuration, assigning
// the next palette color and resolving display names.
func (r *Registry) Add(d Draft) (*Configuration, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	c := &Configuration{
		ID:    uuid.New(),
		Draft: d,
		Color: r.created % PaletteSize,
	}
	r.resolveNames(c)
	r.configs = append(r.configs, c)
	r.created++
	return c, nil
}

// Update validates the draft and replaces the fields of an existing
// configuration. Color and id are unchanged; display names are
// re-resolved. Returns false if the id is unknown.
func (r *Registry) Update(id uuid.UUID, d Draft) (bool, error) {
	c := r.Get(id)
	if c == nil {
		return false, nil
	}
	if err := d.Validate(); err != nil {
		return false, err
	}
	c.Draft = d
	r.resolveNames(c)
	return true, nil
}

// Remove deletes the configuration from the registry. The caller must
// also purge the id from the selection (see Selection.RemoveConfiguration
// and Editor.RemoveConfiguration); no dangling references are permitted.
func (r *Registry) Remove(id uuid.UUID) bool {
	for i, c := range r.configs {
		if c.ID == id {
			r.configs = append(r.configs[:i], r.configs[i+1:]...)
			return true
		}
	}
	return false
}

// TemplateConfiguration is a configuration draft as stored in a
// template, keyed by the id it had when the template was saved.
type TemplateConfiguration struct {
	Key   string // configuration id at save time, opaque here
	Draft Draft
}

// LoadFromTemplate replaces the registry contents with the template's
// configurations. Every configuration receives a freshly generated id
// (template ids are never reused, even absent collisions) and colors
// are reassigned by template order. The returned map translates
// template keys to the new ids and must be handed to Selection.Import
// so imported slot assignments follow the new identities.
// Invalid drafts are skipped and reported in the error; valid entries
// are still loaded.
func (r *Registry) LoadFromTemplate(configs []TemplateConfiguration) (map[string]uuid.UUID, error) {
	r.configs = nil
	r.created = 0
	idMap := make(map[string]uuid.UUID, len(configs))

	var firstErr error
	for _, tc := range configs {
		c, err := r.Add(tc.Draft)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("template configuration %q: %w", tc.Key, err)
			}
			continue
		}
		idMap[tc.Key] = c.ID
	}
	return idMap, firstErr
}

func (r *Registry) resolveNames(c *Configuration) {
	if r.dir == nil {
		return
	}
	c.ClassTypeName = r.dir.ClassTypeName(c.Draft.ClassTypeID)
	c.InstructorName = r.dir.InstructorName(c.Draft.InstructorID)
	c.RoomName = r.dir.RoomName(c.Draft.ClassRoomID)
}
