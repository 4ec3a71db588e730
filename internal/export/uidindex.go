package export

import (
	"fmt"

	"go.etcd.io/bbolt"
)

const uidBucket = "event_uids"

// UIDIndex maps assignment ids to stable iCalendar UIDs, so re-exporting
// updates existing calendar events instead of duplicating them. The mapping
// lives in its own bbolt file next to the export artifacts.
type UIDIndex struct {
	db *bbolt.DB
}

func OpenUIDIndex(path string) (*UIDIndex, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open uid index: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(uidBucket))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to init uid index: %w", err)
	}

	return &UIDIndex{db: db}, nil
}

func (i *UIDIndex) Close() error {
	return i.db.Close()
}

// UID returns the calendar UID for an assignment id, minting and storing
// one on first use.
func (i *UIDIndex) UID(assignmentID string) (string, error) {
	var uid string
	err := i.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(uidBucket))
		if v := b.Get([]byte(assignmentID)); v != nil {
			uid = string(v)
			return nil
		}
		uid = assignmentID + "@assignment-nudge"
		return b.Put([]byte(assignmentID), []byte(uid))
	})
	if err != nil {
		return "", fmt.Errorf("failed to resolve uid for %s: %w", assignmentID, err)
	}
	return uid, nil
}
