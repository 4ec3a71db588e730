package cli

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/Hari20032005/assignment-nudge/internal/models"
)

// getMultiline is an indirection over GetMultiline, swapped in tests.
var getMultiline = GetMultiline

// Parse reads a pasted portal table and appends the extracted records to
// the current collection.
func (a *App) Parse(ctx context.Context) error {
	raw, err := getMultiline(a.reader, "Paste the assignment table", os.Stdout)
	if err != nil {
		return err
	}

	n := a.assignments.ParseAndAppend(ctx, raw)
	if n == 0 {
		fmt.Println("No assignment rows found in the pasted text.")
		return nil
	}

	fmt.Printf("Added %d assignment(s).\n", n)
	return nil
}

// List prints the collection with the active sort and filter applied.
func (a *App) List(ctx context.Context) error {
	list := a.assignments.List(a.sortKey, a.sortDir, a.filter)
	if len(list) == 0 {
		fmt.Println("No assignments to show.")
		return nil
	}

	printAssignments(list, time.Now())
	fmt.Printf("Sorted by %s %s, filter: %s.\n", a.sortKey, a.sortDir, a.filter)
	return nil
}

// SetSort changes the active sort key and direction, then re-lists.
func (a *App) SetSort(ctx context.Context, key, dir string) error {
	k, ok := models.ParseSortKey(key)
	if !ok {
		fmt.Println("Unknown sort key:", key)
		return nil
	}

	d := models.SortAsc
	if dir != "" {
		switch models.SortDirection(dir) {
		case models.SortAsc, models.SortDesc:
			d = models.SortDirection(dir)
		default:
			fmt.Println("Unknown direction:", dir)
			return nil
		}
	}

	a.sortKey, a.sortDir = k, d
	return a.List(ctx)
}

// SetFilter changes the active filter, then re-lists.
func (a *App) SetFilter(ctx context.Context, kind string) error {
	f, ok := models.ParseFilterKind(kind)
	if !ok {
		fmt.Println("Unknown filter:", kind)
		return nil
	}

	a.filter = f
	return a.List(ctx)
}

// Summary prints per-status counts for the collection.
func (a *App) Summary(ctx context.Context) error {
	s := a.assignments.Summary()
	fmt.Printf("Total: %d  Upcoming: %d  Overdue: %d  Completed: %d  No deadline: %d\n",
		s.Total, s.Upcoming, s.Overdue, s.Completed, s.NoDeadline)
	return nil
}

// Urgent prints pending assignments due within the next two days.
func (a *App) Urgent(ctx context.Context) error {
	urgent := a.assignments.Urgent()
	if len(urgent) == 0 {
		fmt.Println("Nothing urgent. Enjoy!")
		return nil
	}

	printAssignments(urgent, time.Now())
	return nil
}

// SetCompleted toggles one record's completion flag by id.
func (a *App) SetCompleted(ctx context.Context, id string, value bool) error {
	a.assignments.SetCompleted(ctx, id, value)
	if value {
		fmt.Println("Marked as done.")
	} else {
		fmt.Println("Marked as pending.")
	}
	return nil
}

// Clear empties the current collection after an explicit confirmation.
func (a *App) Clear(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Delete all assignments in this collection? (yes/no)", os.Stdout)
	if err != nil {
		return err
	}
	if answer != "yes" {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := a.assignments.Reset(ctx); err != nil {
		fmt.Println("Could not clear the collection:", err)
		return err
	}

	fmt.Println("Collection cleared.")
	return nil
}

func printAssignments(list []models.Assignment, today time.Time) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCOURSE\tTITLE\tDUE\tSTATUS\tWHEN")
	for _, rec := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			rec.ID, rec.CourseCode, rec.CourseTitle,
			rec.DueDateLabel(), rec.Status(today), rec.RelativeDueLabel(today))
	}
	w.Flush()
}
