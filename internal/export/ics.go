package export

import (
	"fmt"
	"io"
	"strings"
	"time"
)

const icsTimeLayout = "20060102T150405Z"

// UIDProvider resolves the stable calendar UID for an assignment id.
type UIDProvider interface {
	UID(assignmentID string) (string, error)
}

// WriteICS renders events as one VCALENDAR. Lines are CRLF-separated per
// RFC 5545; each event carries a display alarm 24 hours before its start.
func WriteICS(w io.Writer, events []Event, uids UIDProvider, now time.Time) error {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
	}

	stamp := now.UTC().Format(icsTimeLayout)
	for _, ev := range events {
		uid, err := uids.UID(ev.AssignmentID)
		if err != nil {
			return err
		}

		lines = append(lines,
			"BEGIN:VEVENT",
			"UID:"+uid,
			"SUMMARY:"+escapeICSText(ev.Title),
			"DESCRIPTION:"+escapeICSText(ev.Description),
			"DTSTAMP:"+stamp,
			"DTSTART:"+ev.Start.UTC().Format(icsTimeLayout),
			"DTEND:"+ev.End.UTC().Format(icsTimeLayout),
			"BEGIN:VALARM",
			"ACTION:DISPLAY",
			"DESCRIPTION:Assignment Due Reminder",
			"TRIGGER:-PT24H",
			"END:VALARM",
			"END:VEVENT",
		)
	}

	lines = append(lines, "END:VCALENDAR")

	_, err := fmt.Fprint(w, strings.Join(lines, "\r\n"))
	return err
}

// escapeICSText escapes the characters RFC 5545 reserves in text values.
func escapeICSText(s string) string {
	r := strings.NewReplacer(
		`\`, `\\`,
		"\n", `\n`,
		";", `\;`,
		",", `\,`,
	)
	return r.Replace(s)
}
