package cli

import (
	"context"
	"fmt"
	"time"
)

// ExportCSV writes the current collection as a CSV file.
func (a *App) ExportCSV(ctx context.Context) error {
	path, err := a.exporter.CSV(a.assignments.All(), time.Now())
	if err != nil {
		fmt.Println("CSV export failed:", err)
		return err
	}

	fmt.Println("Wrote", path)
	return nil
}

// ExportICS writes the pending assignments as an iCalendar file.
func (a *App) ExportICS(ctx context.Context) error {
	path, err := a.exporter.ICS(a.assignments.All(), time.Now())
	if err != nil {
		fmt.Println("Calendar export failed:", err)
		return err
	}

	fmt.Println("Wrote", path)
	return nil
}

// ExportCalendarLinks writes the helper page with one Google Calendar link
// per pending assignment.
func (a *App) ExportCalendarLinks(ctx context.Context) error {
	path, err := a.exporter.HelperPage(a.assignments.All())
	if err != nil {
		fmt.Println("Helper page export failed:", err)
		return err
	}

	fmt.Println("Wrote", path, "- open it in a browser to add the events.")
	return nil
}
