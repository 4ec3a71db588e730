package parser

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/Hari20032005/assignment-nudge/internal/dates"
	"github.com/Hari20032005/assignment-nudge/internal/models"
)

// Column positions within a token row.
const (
	colSequence = iota
	colClassRef
	colCourseCode
	colCourseTitle
	colDueDate
	colCourseType
	colFaculty
	colDashboard
)

// Build maps token rows onto assignment records. Bad rows were already
// filtered by Tokenize, so Build never fails on a single row; zero input
// rows simply yield an empty slice, which callers surface as a "no valid
// data" outcome rather than an error.
//
// Each record gets a fresh uuid, so ids stay unique even when a parse batch
// is appended to an existing collection.
func Build(rows []TokenRow) []models.Assignment {
	out := make([]models.Assignment, 0, len(rows))

	for _, row := range rows {
		// The tokenizer guarantees an all-digits first field.
		seq, _ := strconv.Atoi(row[colSequence])

		a := models.Assignment{
			ID:                 uuid.NewString(),
			SequenceNumber:     seq,
			ClassReferenceCode: row[colClassRef],
			CourseCode:         row[colCourseCode],
			CourseTitle:        row[colCourseTitle],
			RawDueDateText:     row[colDueDate],
			CourseType:         fieldOrEmpty(row, colCourseType),
			FacultyName:        fieldOrEmpty(row, colFaculty),
			DashboardRef:       fieldOrEmpty(row, colDashboard),
		}

		if due, ok := dates.Normalize(a.RawDueDateText); ok {
			a.DueDate = &due
		}

		out = append(out, a)
	}

	return out
}

// Parse is the full pipeline: raw pasted text in, records out.
func Parse(raw string) []models.Assignment {
	return Build(Tokenize(raw))
}

func fieldOrEmpty(row TokenRow, idx int) string {
	if idx < len(row) {
		return row[idx]
	}
	return ""
}
