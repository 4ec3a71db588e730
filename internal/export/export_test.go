package export

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Hari20032005/assignment-nudge/internal/models"
)

var today = time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func sampleList() []models.Assignment {
	return []models.Assignment{
		{
			ID:          "id1",
			CourseCode:  "CS101",
			CourseTitle: "Intro to CS",
			DueDate:     datePtr(2025, time.March, 15),
			FacultyName: "Dr. Smith",
		},
		{
			ID:          "id2",
			CourseCode:  "MA101",
			CourseTitle: "Calculus",
		},
		{
			ID:          "id3",
			CourseCode:  "PH100",
			CourseTitle: "Physics",
			DueDate:     datePtr(2025, time.March, 10),
			IsCompleted: true,
		},
	}
}

func TestEventsFrom(t *testing.T) {
	events := EventsFrom(sampleList())

	// pending+dated only: no event for the undated or completed records
	require.Len(t, events, 1)

	ev := events[0]
	assert.Equal(t, "id1", ev.AssignmentID)
	assert.Equal(t, "Assignment Due: Intro to CS", ev.Title)
	assert.Contains(t, ev.Description, "Course: CS101 - Intro to CS")
	assert.Contains(t, ev.Description, "Faculty: Dr. Smith")
	// 09:00 one day before the due date, one hour long
	assert.Equal(t, time.Date(2025, time.March, 14, 9, 0, 0, 0, time.UTC), ev.Start)
	assert.Equal(t, time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC), ev.End)
}

func TestEventsFrom_MissingFaculty(t *testing.T) {
	events := EventsFrom([]models.Assignment{
		{ID: "x", CourseCode: "CS101", CourseTitle: "Intro", DueDate: datePtr(2025, time.March, 15)},
	})
	require.Len(t, events, 1)
	assert.Contains(t, events[0].Description, "Faculty: Not specified")
}

func TestWriteCSV(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteCSV(&sb, sampleList(), today))

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, `"Course Code","Course Title","Due Date","Days Left","Faculty Name","Status"`, lines[0])
	assert.Equal(t, `"CS101","Intro to CS","15 Mar 2025","14","Dr. Smith","upcoming"`, lines[1])
	assert.Equal(t, `"MA101","Calculus","No deadline","N/A","","none"`, lines[2])
	assert.Equal(t, `"PH100","Physics","10 Mar 2025","9","","completed"`, lines[3])
}

func TestWriteCSV_EscapesQuotes(t *testing.T) {
	var sb strings.Builder
	list := []models.Assignment{{CourseCode: "CS101", CourseTitle: `Intro "advanced"`}}
	require.NoError(t, WriteCSV(&sb, list, today))

	assert.Contains(t, sb.String(), `"Intro ""advanced"""`)
}

type fixedUIDs struct{}

func (fixedUIDs) UID(id string) (string, error) { return id + "@assignment-nudge", nil }

func TestWriteICS(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteICS(&sb, EventsFrom(sampleList()), fixedUIDs{}, today))

	out := sb.String()
	assert.True(t, strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n"))
	assert.True(t, strings.HasSuffix(out, "END:VCALENDAR"))
	assert.Contains(t, out, "\r\nUID:id1@assignment-nudge\r\n")
	assert.Contains(t, out, "\r\nSUMMARY:Assignment Due: Intro to CS\r\n")
	assert.Contains(t, out, "\r\nDTSTAMP:20250301T000000Z\r\n")
	assert.Contains(t, out, "\r\nDTSTART:20250314T090000Z\r\n")
	assert.Contains(t, out, "\r\nDTEND:20250314T100000Z\r\n")
	assert.Contains(t, out, "\r\nTRIGGER:-PT24H\r\n")
	assert.Contains(t, out, `DESCRIPTION:Course: CS101 - Intro to CS\nFaculty: Dr. Smith`)

	// exactly one event
	assert.Equal(t, 1, strings.Count(out, "BEGIN:VEVENT"))
}

func TestUIDIndex_StableAcrossExports(t *testing.T) {
	dir := t.TempDir()

	idx, err := OpenUIDIndex(filepath.Join(dir, "uids.db"))
	require.NoError(t, err)
	first, err := idx.UID("id1")
	require.NoError(t, err)
	require.NoError(t, idx.Close())

	idx, err = OpenUIDIndex(filepath.Join(dir, "uids.db"))
	require.NoError(t, err)
	second, err := idx.UID("id1")
	require.NoError(t, err)
	other, err := idx.UID("id2")
	require.NoError(t, err)
	require.NoError(t, idx.Close())

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, other)
}

func TestEventURL(t *testing.T) {
	events := EventsFrom(sampleList())
	require.NotEmpty(t, events)

	raw := EventURL(events[0])
	u, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "calendar.google.com", u.Host)
	assert.Equal(t, "/calendar/render", u.Path)

	q := u.Query()
	assert.Equal(t, "TEMPLATE", q.Get("action"))
	assert.Equal(t, "Assignment Due: Intro to CS", q.Get("text"))
	assert.Contains(t, q.Get("details"), "Course: CS101")
	assert.Equal(t, "20250314T090000Z/20250314T100000Z", q.Get("dates"))
}

func TestWriteHelperPage(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, WriteHelperPage(&sb, EventsFrom(sampleList())))

	out := sb.String()
	assert.Contains(t, out, "Assignment Due: Intro to CS")
	assert.Contains(t, out, "calendar.google.com/calendar/render")
	assert.Contains(t, out, "openNext()")
}

func TestExporter_WritesFiles(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(dir)

	csvPath, err := e.CSV(sampleList(), today)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "assignments.csv"), csvPath)

	icsPath, err := e.ICS(sampleList(), today)
	require.NoError(t, err)

	// a second export reuses the same UIDs
	again, err := e.ICS(sampleList(), today)
	require.NoError(t, err)
	firstICS, err := os.ReadFile(icsPath)
	require.NoError(t, err)
	secondICS, err := os.ReadFile(again)
	require.NoError(t, err)
	assert.Equal(t, firstICS, secondICS)

	pagePath, err := e.HelperPage(sampleList())
	require.NoError(t, err)
	page, err := os.ReadFile(pagePath)
	require.NoError(t, err)
	assert.Contains(t, string(page), "Google Calendar")
}

func TestExporter_ICSFirstIntoMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	e := NewExporter(dir)

	icsPath, err := e.ICS(sampleList(), today)
	require.NoError(t, err)

	content, err := os.ReadFile(icsPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "BEGIN:VCALENDAR")
}
