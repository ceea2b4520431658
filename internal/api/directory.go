package api

import (
	"context"
	"fmt"
)

// Directory is a session cache of the backend's id/name directories.
// It is loaded once at startup and implements schedule.Directory for
// the configuration registry.
type Directory struct {
	instructors []DirectoryEntry
	classTypes  []DirectoryEntry
	rooms       []DirectoryEntry

	instructorByID map[int64]string
	classTypeByID  map[int64]string
	roomByID       map[int64]string
}

// LoadDirectory fetches all three directories from the backend.
func LoadDirectory(ctx context.Context, c *Client) (*Directory, error) {
	instructors, err := c.ListInstructors(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading directory: %w", err)
	}
	classTypes, err := c.ListClassTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading directory: %w", err)
	}
	rooms, err := c.ListClassRooms(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading directory: %w", err)
	}
	return NewDirectory(instructors, classTypes, rooms), nil
}

// NewDirectory builds a Directory from already-fetched entries.
func NewDirectory(instructors, classTypes, rooms []DirectoryEntry) *Directory {
	d := &Directory{
		instructors:    instructors,
		classTypes:     classTypes,
		rooms:          rooms,
		instructorByID: make(map[int64]string, len(instructors)),
		classTypeByID:  make(map[int64]string, len(classTypes)),
		roomByID:       make(map[int64]string, len(rooms)),
	}
	for _, e := range instructors {
		d.instructorByID[e.ID] = e.Name
	}
	for _, e := range classTypes {
		d.classTypeByID[e.ID] = e.Name
	}
	for _, e := range rooms {
		d.roomByID[e.ID] = e.Name
	}
	return d
}

// InstructorName returns the instructor's name, or "" when unknown.
func (d *Directory) InstructorName(id int64) string { return d.instructorByID[id] }

// ClassTypeName returns the class type's name, or "" when unknown.
func (d *Directory) ClassTypeName(id int64) string { return d.classTypeByID[id] }

// RoomName returns the room's name, or "" when unknown.
func (d *Directory) RoomName(id int64) string { return d.roomByID[id] }

// Instructors returns the instructor directory in backend order.
func (d *Directory) Instructors() []DirectoryEntry { return d.instructors }

// ClassTypes returns the class type directory in backend order.
func (d *Directory) ClassTypes() []DirectoryEntry { return d.classTypes }

// ClassRooms returns the room directory in backend order.
func (d *Directory) ClassRooms() []DirectoryEntry { return d.rooms }
