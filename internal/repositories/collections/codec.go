package collections

import (
	"encoding/json"
	"time"

	"github.com/Hari20032005/assignment-nudge/internal/dates"
	"github.com/Hari20032005/assignment-nudge/internal/models"
)

// record is the JSON shape one assignment takes on disk. Dates are RFC 3339
// strings; an absent due date is null, never "" or a zero date.
//
// DaysRemaining is a convenience snapshot for anything reading the raw data
// outside the app. It is recomputed at every save and ignored on load, so a
// collection written days ago never shows stale arithmetic.
type record struct {
	ID                 string  `json:"id"`
	SequenceNumber     int     `json:"sequenceNumber"`
	ClassReferenceCode string  `json:"classReferenceCode"`
	CourseCode         string  `json:"courseCode"`
	CourseTitle        string  `json:"courseTitle"`
	RawDueDateText     string  `json:"rawDueDateText"`
	DueDate            *string `json:"dueDate"`
	DaysRemaining      *int    `json:"daysRemaining"`
	CourseType         string  `json:"courseType"`
	FacultyName        string  `json:"facultyName"`
	DashboardRef       string  `json:"dashboardRef"`
	IsCompleted        bool    `json:"isCompleted"`
}

func encode(list []models.Assignment, now time.Time) ([]byte, error) {
	out := make([]record, 0, len(list))
	for _, a := range list {
		rec := record{
			ID:                 a.ID,
			SequenceNumber:     a.SequenceNumber,
			ClassReferenceCode: a.ClassReferenceCode,
			CourseCode:         a.CourseCode,
			CourseTitle:        a.CourseTitle,
			RawDueDateText:     a.RawDueDateText,
			CourseType:         a.CourseType,
			FacultyName:        a.FacultyName,
			DashboardRef:       a.DashboardRef,
			IsCompleted:        a.IsCompleted,
		}
		if a.DueDate != nil {
			s := a.DueDate.Format(time.RFC3339)
			rec.DueDate = &s
			d := dates.DaysLeft(*a.DueDate, now)
			rec.DaysRemaining = &d
		}
		out = append(out, rec)
	}
	return json.Marshal(out)
}

func decode(data []byte) ([]models.Assignment, error) {
	var recs []record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, err
	}

	out := make([]models.Assignment, 0, len(recs))
	for _, rec := range recs {
		a := models.Assignment{
			ID:                 rec.ID,
			SequenceNumber:     rec.SequenceNumber,
			ClassReferenceCode: rec.ClassReferenceCode,
			CourseCode:         rec.CourseCode,
			CourseTitle:        rec.CourseTitle,
			RawDueDateText:     rec.RawDueDateText,
			CourseType:         rec.CourseType,
			FacultyName:        rec.FacultyName,
			DashboardRef:       rec.DashboardRef,
			IsCompleted:        rec.IsCompleted,
		}
		if rec.DueDate != nil {
			d, err := time.Parse(time.RFC3339, *rec.DueDate)
			if err != nil {
				return nil, err
			}
			d = d.UTC()
			a.DueDate = &d
		}
		out = append(out, a)
	}
	return out, nil
}
