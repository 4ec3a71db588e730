// Package dates converts the heterogeneous date strings found in pasted
// portal tables into calendar dates, and provides the day arithmetic and
// formatting built on top of them.
//
// All normalized dates are date-only values pinned to midnight UTC, so they
// are deterministic and survive JSON round trips unchanged.
package dates

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// layouts are tried in order against the full trimmed input before falling
// back to regex extraction. The order matters: ambiguous numeric forms like
// 03/04/2025 resolve as month/day first.
var layouts = []string{
	"02-Jan-2006",
	"01/02/2006",
	"2006-01-02",
	"02/01/2006",
	"Jan 02, 2006",
	"02 Jan 2006",
}

// dateRe extracts a day-month-year fragment from free text, tolerating
// trailing annotations such as "(10 days left)".
var dateRe = regexp.MustCompile(`(\d{1,2})[-/]([A-Za-z]{3,})[-/](\d{4})`)

var monthIndex = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// sentinelPhrases mark cells that mean "nothing is due" rather than a date.
var sentinelPhrases = []string{"nothing", "no pending", "no dues"}

// Normalize converts a date-ish string into a calendar date. The second
// return value is false when the input is empty, a "nothing due" sentinel,
// or not parseable with any known layout. Malformed input is a normal case
// for pasted data, so Normalize never returns an error.
func Normalize(text string) (time.Time, bool) {
	s := strings.TrimSpace(text)
	if s == "" || s == "-" {
		return time.Time{}, false
	}

	lower := strings.ToLower(s)
	for _, phrase := range sentinelPhrases {
		if strings.Contains(lower, phrase) {
			return time.Time{}, false
		}
	}

	for _, layout := range layouts {
		if d, err := time.Parse(layout, s); err == nil {
			return midnight(d), true
		}
	}

	// Fallback: pick the first day-month-year fragment out of the text.
	m := dateRe.FindStringSubmatch(s)
	if m == nil {
		return time.Time{}, false
	}

	month, ok := monthIndex[strings.ToLower(m[2])[:3]]
	if !ok {
		return time.Time{}, false
	}

	day, _ := strconv.Atoi(m[1])
	year, _ := strconv.Atoi(m[3])
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
}

// DaysLeft returns the calendar-day difference between due and today.
// Both inputs are truncated to their date components first, so a due date
// of tomorrow is always 1 regardless of the current hour or time zones.
func DaysLeft(due, today time.Time) int {
	return int(midnight(due).Sub(midnight(today)).Hours() / 24)
}

// Format renders a date as "02 Jan 2006", or "No date" for nil.
func Format(d *time.Time) string {
	if d == nil {
		return "No date"
	}
	return d.Format("02 Jan 2006")
}

// Relative produces a human-readable remaining-time string for a days-left
// value, nil meaning no deadline.
func Relative(daysLeft *int) string {
	if daysLeft == nil {
		return "No deadline"
	}
	d := *daysLeft
	switch {
	case d < 0:
		if d == -1 {
			return "Overdue by 1 day"
		}
		return fmt.Sprintf("Overdue by %d days", -d)
	case d == 0:
		return "Due today"
	case d == 1:
		return "Due tomorrow"
	case d < 7:
		return fmt.Sprintf("Due in %d days", d)
	case d < 14:
		return "Due in 1 week"
	case d < 30:
		return fmt.Sprintf("Due in %d weeks", d/7)
	default:
		return fmt.Sprintf("Due in %d months", d/30)
	}
}

// NextNDays returns the next n formatted dates starting from start.
func NextNDays(start time.Time, n int) []string {
	out := make([]string, 0, n)
	d := midnight(start)
	for i := 0; i < n; i++ {
		out = append(out, d.Format("02 Jan 2006"))
		d = d.AddDate(0, 0, 1)
	}
	return out
}

func midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
