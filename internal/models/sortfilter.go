package models

import (
	"sort"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the active sort column.
type SortKey string

const (
	SortByDueDate     SortKey = "dueDate"
	SortByDaysLeft    SortKey = "daysLeft"
	SortByCourseCode  SortKey = "courseCode"
	SortByCourseTitle SortKey = "courseTitle"
)

// SortDirection selects ascending or descending order.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// collator provides locale-aware ordering for course codes and titles.
// Loose comparison ignores case and diacritic differences the way a user
// scanning a course list expects.
var collator = collate.New(language.English, collate.Loose)

// SortAssignments stably sorts the list in place by one key and direction.
// Records without a due date always sort after all records with one,
// regardless of direction: "no deadline" is last, never first.
func SortAssignments(list []Assignment, key SortKey, dir SortDirection) {
	desc := dir == SortDesc

	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]

		switch key {
		case SortByDueDate, SortByDaysLeft:
			// daysLeft orders identically to dueDate for a fixed today.
			if a.DueDate == nil && b.DueDate == nil {
				return false
			}
			if a.DueDate == nil {
				return false
			}
			if b.DueDate == nil {
				return true
			}
			if desc {
				return b.DueDate.Before(*a.DueDate)
			}
			return a.DueDate.Before(*b.DueDate)

		case SortByCourseCode:
			return compareStrings(a.CourseCode, b.CourseCode, desc)

		case SortByCourseTitle:
			return compareStrings(a.CourseTitle, b.CourseTitle, desc)
		}

		return false
	})
}

func compareStrings(a, b string, desc bool) bool {
	c := collator.CompareString(a, b)
	if desc {
		return c > 0
	}
	return c < 0
}

// FilterKind selects the subset of records to show.
type FilterKind string

const (
	FilterAll        FilterKind = "all"
	FilterUpcoming   FilterKind = "upcoming"
	FilterOverdue    FilterKind = "overdue"
	FilterCompleted  FilterKind = "completed"
	FilterNoDeadline FilterKind = "no-deadline"
)

// FilterAssignments returns the records matching the filter as of today.
// The input slice and its order are left untouched.
func FilterAssignments(list []Assignment, kind FilterKind, today time.Time) []Assignment {
	out := make([]Assignment, 0, len(list))
	for _, a := range list {
		if matches(a, kind, today) {
			out = append(out, a)
		}
	}
	return out
}

func matches(a Assignment, kind FilterKind, today time.Time) bool {
	switch kind {
	case FilterAll:
		return true
	case FilterUpcoming:
		return a.Status(today) == StatusUpcoming
	case FilterOverdue:
		return a.Status(today) == StatusOverdue
	case FilterCompleted:
		return a.Status(today) == StatusCompleted
	case FilterNoDeadline:
		return a.DueDate == nil
	}
	return true
}

// ParseSortKey validates a user-supplied sort key.
func ParseSortKey(s string) (SortKey, bool) {
	switch SortKey(s) {
	case SortByDueDate, SortByDaysLeft, SortByCourseCode, SortByCourseTitle:
		return SortKey(s), true
	}
	return "", false
}

// ParseFilterKind validates a user-supplied filter name.
func ParseFilterKind(s string) (FilterKind, bool) {
	switch FilterKind(s) {
	case FilterAll, FilterUpcoming, FilterOverdue, FilterCompleted, FilterNoDeadline:
		return FilterKind(s), true
	}
	return "", false
}
