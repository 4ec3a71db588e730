// Package models defines the assignment record, its derived status, and the
// pure sort/filter operations over record collections.
package models

import (
	"time"

	"github.com/Hari20032005/assignment-nudge/internal/dates"
)

// Status classifies an assignment relative to a reference day.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOverdue   Status = "overdue"
	StatusCompleted Status = "completed"
	StatusNone      Status = "none"
)

// Assignment is one parsed assignment row. Optional text columns default to
// the empty string; only the due date uses the present/absent duality.
type Assignment struct {
	// ID is unique within a collection, assigned at build time. It is never
	// reused across re-parses.
	ID string

	// SequenceNumber is the first token of the source row. Provenance only;
	// the portal repeats it across separate pastes.
	SequenceNumber int

	ClassReferenceCode string
	CourseCode         string
	CourseTitle        string

	// RawDueDateText keeps the original dues cell for display and debugging.
	RawDueDateText string

	// DueDate is the normalized calendar date, nil when the dues cell was
	// empty, a sentinel, or unparseable.
	DueDate *time.Time

	CourseType   string
	FacultyName  string
	DashboardRef string

	IsCompleted bool
}

// DaysLeft returns the whole calendar days between today and the due date.
// ok is false exactly when there is no due date. The value is derived on
// demand rather than stored, so it can never go stale across sessions.
func (a Assignment) DaysLeft(today time.Time) (int, bool) {
	if a.DueDate == nil {
		return 0, false
	}
	return dates.DaysLeft(*a.DueDate, today), true
}

// Status derives the display status of the assignment as of today.
func (a Assignment) Status(today time.Time) Status {
	if a.IsCompleted {
		return StatusCompleted
	}
	d, ok := a.DaysLeft(today)
	if !ok {
		return StatusNone
	}
	if d < 0 {
		return StatusOverdue
	}
	return StatusUpcoming
}

// DueDateLabel renders the due date for display and exports.
func (a Assignment) DueDateLabel() string {
	return dates.Format(a.DueDate)
}

// RelativeDueLabel renders a human-readable remaining-time string.
func (a Assignment) RelativeDueLabel(today time.Time) string {
	d, ok := a.DaysLeft(today)
	if !ok {
		return dates.Relative(nil)
	}
	return dates.Relative(&d)
}

// SetCompleted finds a record by id and replaces its completion flag in
// place. Missing ids are a no-op, not an error; nothing else about the
// record or its position changes.
func SetCompleted(list []Assignment, id string, value bool) {
	for i := range list {
		if list[i].ID == id {
			list[i].IsCompleted = value
			return
		}
	}
}

// Summary holds per-status counts over a collection.
type Summary struct {
	Total      int
	Upcoming   int
	Overdue    int
	Completed  int
	NoDeadline int
}

// Summarize counts records per status as of today. Records without a due
// date are counted under NoDeadline regardless of completion, mirroring the
// dashboard counters.
func Summarize(list []Assignment, today time.Time) Summary {
	s := Summary{Total: len(list)}
	for _, a := range list {
		switch a.Status(today) {
		case StatusUpcoming:
			s.Upcoming++
		case StatusOverdue:
			s.Overdue++
		case StatusCompleted:
			s.Completed++
		}
		if a.DueDate == nil {
			s.NoDeadline++
		}
	}
	return s
}

// Urgent returns pending records due within the next two days (inclusive),
// preserving order.
func Urgent(list []Assignment, today time.Time) []Assignment {
	out := make([]Assignment, 0)
	for _, a := range list {
		if a.IsCompleted {
			continue
		}
		if d, ok := a.DaysLeft(today); ok && d >= 0 && d <= 2 {
			out = append(out, a)
		}
	}
	return out
}
