package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/Hari20032005/assignment-nudge/internal/models"
)

var csvHeader = []string{"Course Code", "Course Title", "Due Date", "Days Left", "Faculty Name", "Status"}

// WriteCSV renders the collection as a CSV table. Every field is quoted,
// matching the files the portal tooling around this format expects.
func WriteCSV(w io.Writer, list []models.Assignment, today time.Time) error {
	if err := writeCSVRow(w, csvHeader); err != nil {
		return err
	}

	for _, a := range list {
		due := "No deadline"
		daysLeft := "N/A"
		if a.DueDate != nil {
			due = a.DueDate.Format("02 Jan 2006")
			d, _ := a.DaysLeft(today)
			daysLeft = strconv.Itoa(d)
		}

		row := []string{a.CourseCode, a.CourseTitle, due, daysLeft, a.FacultyName, string(a.Status(today))}
		if err := writeCSVRow(w, row); err != nil {
			return err
		}
	}
	return nil
}

func writeCSVRow(w io.Writer, fields []string) error {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	_, err := fmt.Fprintf(w, "%s\n", strings.Join(quoted, ","))
	return err
}
