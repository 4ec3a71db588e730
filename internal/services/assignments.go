package services

import (
	"context"
	"time"

	"github.com/Hari20032005/assignment-nudge/internal/logging"
	"github.com/Hari20032005/assignment-nudge/internal/models"
	"github.com/Hari20032005/assignment-nudge/internal/parser"
	"github.com/Hari20032005/assignment-nudge/internal/repositories/collections"
)

// AnonymousScope is the collection namespace used before anyone logs in.
const AnonymousScope = "assignments_anonymous"

// ScopeForUser returns the collection namespace for a user id.
func ScopeForUser(userID string) string {
	return "assignments_" + userID
}

// AssignmentService owns the working assignment collection for one scope at
// a time. The in-memory list is authoritative: every mutation applies to
// memory first, then persists. A failed save is logged and the session keeps
// going; the data is simply not durable until the next successful save.
type AssignmentService struct {
	repo collections.Repository
	log  logging.Logger

	scope string
	list  []models.Assignment

	now func() time.Time // replaced in tests
}

func NewAssignmentService(repo collections.Repository, log logging.Logger) *AssignmentService {
	return &AssignmentService{
		repo:  repo,
		log:   log,
		scope: AnonymousScope,
		now:   time.Now,
	}
}

// SwitchScope loads the stored collection for scope and makes it current.
// Used on login, logout, and startup session restore.
func (s *AssignmentService) SwitchScope(ctx context.Context, scope string) error {
	list, err := s.repo.Load(ctx, scope)
	if err != nil {
		return err
	}
	s.scope = scope
	s.list = list
	return nil
}

// Scope returns the namespace of the current collection.
func (s *AssignmentService) Scope() string {
	return s.scope
}

// ParseAndAppend tokenizes raw pasted text and appends every extracted
// record to the current collection. Returns the number of records added;
// zero means nothing in the paste looked like assignment data, which is a
// normal outcome, not an error.
func (s *AssignmentService) ParseAndAppend(ctx context.Context, raw string) int {
	recs := parser.Parse(raw)
	if len(recs) == 0 {
		return 0
	}

	s.list = append(s.list, recs...)
	s.persist(ctx)
	return len(recs)
}

// List returns the current collection sorted and filtered for display. The
// underlying collection keeps its insertion order.
func (s *AssignmentService) List(key models.SortKey, dir models.SortDirection, filter models.FilterKind) []models.Assignment {
	out := models.FilterAssignments(s.list, filter, s.now())
	models.SortAssignments(out, key, dir)
	return out
}

// All returns the current collection in insertion order.
func (s *AssignmentService) All() []models.Assignment {
	out := make([]models.Assignment, len(s.list))
	copy(out, s.list)
	return out
}

// SetCompleted marks one record complete or pending. Unknown ids are a
// no-op.
func (s *AssignmentService) SetCompleted(ctx context.Context, id string, value bool) {
	models.SetCompleted(s.list, id, value)
	s.persist(ctx)
}

// Reset empties the current collection, in memory and on disk.
func (s *AssignmentService) Reset(ctx context.Context) error {
	s.list = nil
	return s.repo.Clear(ctx, s.scope)
}

// Summary counts the collection per status as of today.
func (s *AssignmentService) Summary() models.Summary {
	return models.Summarize(s.list, s.now())
}

// Urgent returns pending records due within the next two days.
func (s *AssignmentService) Urgent() []models.Assignment {
	return models.Urgent(s.list, s.now())
}

func (s *AssignmentService) persist(ctx context.Context) {
	if err := s.repo.Save(ctx, s.scope, s.list, s.now()); err != nil {
		s.log.Error(ctx, "could not persist collection", "scope", s.scope, "err", err)
	}
}
