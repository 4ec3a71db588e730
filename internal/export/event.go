// Package export renders the assignment collection into external formats:
// a CSV table, an iCalendar file, Google Calendar deep links, and a helper
// page that walks through the links one by one.
package export

import (
	"fmt"
	"time"

	"github.com/Hari20032005/assignment-nudge/internal/models"
)

// Event is one calendar entry derived from an assignment. The reminder
// slot starts at 09:00 UTC one day before the due date and lasts an hour,
// so the alarm fires with a full day to spare.
type Event struct {
	AssignmentID string
	Title        string
	Description  string
	Start        time.Time
	End          time.Time
}

// EventsFrom converts pending assignments with a due date into events.
// Completed and undated records produce nothing.
func EventsFrom(list []models.Assignment) []Event {
	out := make([]Event, 0, len(list))
	for _, a := range list {
		if a.IsCompleted || a.DueDate == nil {
			continue
		}

		d := a.DueDate.AddDate(0, 0, -1)
		start := time.Date(d.Year(), d.Month(), d.Day(), 9, 0, 0, 0, time.UTC)

		faculty := a.FacultyName
		if faculty == "" {
			faculty = "Not specified"
		}

		out = append(out, Event{
			AssignmentID: a.ID,
			Title:        "Assignment Due: " + a.CourseTitle,
			Description:  fmt.Sprintf("Course: %s - %s\nFaculty: %s", a.CourseCode, a.CourseTitle, faculty),
			Start:        start,
			End:          start.Add(time.Hour),
		})
	}
	return out
}
