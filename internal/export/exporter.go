package export

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Hari20032005/assignment-nudge/internal/models"
)

// Exporter writes export artifacts into one directory. The UID index lives
// in the same directory, so the whole export state moves as a unit.
type Exporter struct {
	dir string
}

func NewExporter(dir string) *Exporter {
	return &Exporter{dir: dir}
}

// CSV writes assignments.csv and returns its path.
func (e *Exporter) CSV(list []models.Assignment, today time.Time) (string, error) {
	path := filepath.Join(e.dir, "assignments.csv")
	f, err := e.create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteCSV(f, list, today); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, f.Close()
}

// ICS writes assignments.ics and returns its path. UIDs are stable across
// calls through the on-disk index.
func (e *Exporter) ICS(list []models.Assignment, now time.Time) (string, error) {
	// The UID index opens inside the export directory, which may not exist
	// yet on the first export.
	if err := e.ensureDir(); err != nil {
		return "", err
	}
	idx, err := OpenUIDIndex(filepath.Join(e.dir, "calendar_uids.db"))
	if err != nil {
		return "", err
	}
	defer idx.Close()

	path := filepath.Join(e.dir, "assignments.ics")
	f, err := e.create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteICS(f, EventsFrom(list), idx, now); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, f.Close()
}

// HelperPage writes calendar_helper.html and returns its path.
func (e *Exporter) HelperPage(list []models.Assignment) (string, error) {
	path := filepath.Join(e.dir, "calendar_helper.html")
	f, err := e.create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteHelperPage(f, EventsFrom(list)); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}
	return path, f.Close()
}

func (e *Exporter) ensureDir() error {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create export dir: %w", err)
	}
	return nil
}

func (e *Exporter) create(path string) (*os.File, error) {
	if err := e.ensureDir(); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, nil
}
