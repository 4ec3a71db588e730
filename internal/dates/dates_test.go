package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNormalize_AcceptedLayouts(t *testing.T) {
	want := date(2025, time.March, 15)

	tests := []struct {
		name  string
		input string
	}{
		{name: "dd-MMM-yyyy upper", input: "15-MAR-2025"},
		{name: "dd-MMM-yyyy mixed", input: "15-Mar-2025"},
		{name: "MM/dd/yyyy", input: "03/15/2025"},
		{name: "yyyy-MM-dd", input: "2025-03-15"},
		{name: "MMM dd, yyyy", input: "Mar 15, 2025"},
		{name: "dd MMM yyyy", input: "15 Mar 2025"},
		{name: "surrounding whitespace", input: "  15-MAR-2025  "},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Normalize(tc.input)
			require.True(t, ok, "expected %q to parse", tc.input)
			assert.Equal(t, want, got)
		})
	}
}

func TestNormalize_DayFirstNumeric(t *testing.T) {
	// 25 cannot be a month, so dd/MM/yyyy is the layout that matches.
	got, ok := Normalize("25/03/2025")
	require.True(t, ok)
	assert.Equal(t, date(2025, time.March, 25), got)
}

func TestNormalize_TrailingAnnotationIgnored(t *testing.T) {
	got, ok := Normalize("15-MAR-2025 (10 days left)")
	require.True(t, ok)
	assert.Equal(t, date(2025, time.March, 15), got)
}

func TestNormalize_RegexFallbackFullMonthName(t *testing.T) {
	got, ok := Normalize("5-March-2025")
	require.True(t, ok)
	assert.Equal(t, date(2025, time.March, 5), got)
}

func TestNormalize_Absent(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"-",
		"Nothing Left to Show",
		"nothing due this week",
		"not a date at all",
		"99-XYZ-20",
	}
	for _, in := range inputs {
		_, ok := Normalize(in)
		assert.False(t, ok, "expected %q to be absent", in)
	}
}

func TestNormalize_IsPureAndRepeatable(t *testing.T) {
	a, okA := Normalize("15-MAR-2025")
	b, okB := Normalize("15-MAR-2025")
	require.True(t, okA)
	require.True(t, okB)
	assert.Equal(t, a, b)
}

func TestDaysLeft(t *testing.T) {
	today := date(2025, time.March, 10)

	tests := []struct {
		name string
		due  time.Time
		want int
	}{
		{name: "five days ahead", due: date(2025, time.March, 15), want: 5},
		{name: "five days past", due: date(2025, time.March, 5), want: -5},
		{name: "same day", due: date(2025, time.March, 10), want: 0},
		{name: "tomorrow any hour", due: time.Date(2025, time.March, 11, 23, 50, 0, 0, time.UTC), want: 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DaysLeft(tc.due, today))
		})
	}
}

func TestDaysLeft_HourOfTodayIrrelevant(t *testing.T) {
	due := date(2025, time.March, 11)
	lateEvening := time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysLeft(due, lateEvening))
}

func TestFormat(t *testing.T) {
	d := date(2025, time.March, 15)
	assert.Equal(t, "15 Mar 2025", Format(&d))
	assert.Equal(t, "No date", Format(nil))
}

func TestRelative(t *testing.T) {
	intp := func(v int) *int { return &v }

	tests := []struct {
		name string
		in   *int
		want string
	}{
		{name: "no deadline", in: nil, want: "No deadline"},
		{name: "overdue one", in: intp(-1), want: "Overdue by 1 day"},
		{name: "overdue many", in: intp(-5), want: "Overdue by 5 days"},
		{name: "today", in: intp(0), want: "Due today"},
		{name: "tomorrow", in: intp(1), want: "Due tomorrow"},
		{name: "this week", in: intp(4), want: "Due in 4 days"},
		{name: "next week", in: intp(10), want: "Due in 1 week"},
		{name: "weeks", in: intp(20), want: "Due in 2 weeks"},
		{name: "months", in: intp(65), want: "Due in 2 months"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Relative(tc.in))
		})
	}
}

func TestNextNDays(t *testing.T) {
	got := NextNDays(date(2025, time.February, 27), 3)
	assert.Equal(t, []string{"27 Feb 2025", "28 Feb 2025", "01 Mar 2025"}, got)
}
