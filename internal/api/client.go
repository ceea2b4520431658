// Package api is the client for the studio backend REST API. All
// business rules (pricing, membership, attendance) live server-side;
// this package only moves data across the boundary.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/javiermolinar/studiogrid/internal/schedule"
)

// Client errors.
var (
	ErrUnauthorized = errors.New("backend rejected the API token")
)

// StatusError reports a non-2xx backend response.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("backend returned %d: %s", e.Status, e.Body)
}

// Client talks to the studio backend.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New creates a Client for the given base URL.
func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// DirectoryEntry is one row of an id/name directory.
type DirectoryEntry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ListInstructors returns the instructor directory.
func (c *Client) ListInstructors(ctx context.Context) ([]DirectoryEntry, error) {
	var entries []DirectoryEntry
	if err := c.get(ctx, "/instructors", nil, &entries); err != nil {
		return nil, fmt.Errorf("listing instructors: %w", err)
	}
	return entries, nil
}

// ListClassTypes returns the class type directory.
func (c *Client) ListClassTypes(ctx context.Context) ([]DirectoryEntry, error) {
	var entries []DirectoryEntry
	if err := c.get(ctx, "/class-types", nil, &entries); err != nil {
		return nil, fmt.Errorf("listing class types: %w", err)
	}
	return entries, nil
}

// ListClassRooms returns the room directory.
func (c *Client) ListClassRooms(ctx context.Context) ([]DirectoryEntry, error) {
	var entries []DirectoryEntry
	if err := c.get(ctx, "/class-rooms", nil, &entries); err != nil {
		return nil, fmt.Errorf("listing rooms: %w", err)
	}
	return entries, nil
}

// existingClass is the wire shape of a persisted class.
type existingClass struct {
	ID              int64  `json:"id"`
	ClassTypeName   string `json:"class_type_name"`
	InstructorID    int64  `json:"instructor_id"`
	ClassRoomID     int64  `json:"class_room_id"`
	Date            string `json:"date"`
	UTCDate         string `json:"utc_date"`
	StartTime       string `json:"start_time"`
	DurationMinutes int    `json:"duration_minutes"`
}

// ListClasses returns the classes persisted between the two dates,
// inclusive, in the conflict detector's shape.
func (c *Client) ListClasses(ctx context.Context, from, to string) ([]schedule.ExistingClass, error) {
	q := url.Values{}
	q.Set("from", from)
	q.Set("to", to)

	var wire []existingClass
	if err := c.get(ctx, "/classes", q, &wire); err != nil {
		return nil, fmt.Errorf("listing classes: %w", err)
	}

	classes := make([]schedule.ExistingClass, len(wire))
	for i, w := range wire {
		classes[i] = schedule.ExistingClass{
			ID:              w.ID,
			ClassTypeName:   w.ClassTypeName,
			InstructorID:    w.InstructorID,
			ClassRoomID:     w.ClassRoomID,
			Date:            w.Date,
			UTCDate:         w.UTCDate,
			StartTime:       w.StartTime,
			DurationMinutes: w.DurationMinutes,
		}
	}
	return classes, nil
}

// createClassesRequest is the bulk creation payload: one configuration,
// many dates, a single UTC start time.
type createClassesRequest struct {
	ClassTypeID     int64    `json:"class_type_id"`
	InstructorID    int64    `json:"instructor_id"`
	ClassRoomID     int64    `json:"class_room_id"`
	Capacity        int      `json:"capacity"`
	DurationMinutes int      `json:"duration_minutes"`
	Dates           []string `json:"dates"`
	StartTime       string   `json:"start_time"` // HH:MM, UTC
}

// CreateClasses creates one class per date at the given UTC start
// time. This is the sole mutation boundary; the backend does not
// guarantee idempotency, so retrying a failed call may duplicate
// classes it already created.
func (c *Client) CreateClasses(ctx context.Context, draft schedule.Draft, dates []string, startTimeUTC string) error {
	req := createClassesRequest{
		ClassTypeID:     draft.ClassTypeID,
		InstructorID:    draft.InstructorID,
		ClassRoomID:     draft.ClassRoomID,
		Capacity:        draft.Capacity,
		DurationMinutes: draft.DurationMinutes,
		Dates:           dates,
		StartTime:       startTimeUTC,
	}
	if err := c.post(ctx, "/classes/bulk", req, nil); err != nil {
		return fmt.Errorf("creating classes: %w", err)
	}
	return nil
}

// utcResponse is the timezone endpoint's reply.
type utcResponse struct {
	Time string `json:"time"` // HH:MM, UTC
}

// ToUTC converts a local wall-clock time on a date to UTC through the
// backend, which owns the studio's timezone and DST rules.
func (c *Client) ToUTC(ctx context.Context, localTime, localDate string) (string, error) {
	q := url.Values{}
	q.Set("time", localTime)
	q.Set("date", localDate)

	var resp utcResponse
	if err := c.get(ctx, "/time/utc", q, &resp); err != nil {
		return "", fmt.Errorf("converting %s on %s to UTC: %w", localTime, localDate, err)
	}
	return resp.Time, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &StatusError{Status: resp.StatusCode, Body: string(bytes.TrimSpace(body))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
