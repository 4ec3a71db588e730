// Package cli implements the interactive assignment tracker: a REPL over
// the auth, assignment, and export services.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/Hari20032005/assignment-nudge/internal/common"
	"github.com/Hari20032005/assignment-nudge/internal/config"
	"github.com/Hari20032005/assignment-nudge/internal/export"
	"github.com/Hari20032005/assignment-nudge/internal/logging"
	"github.com/Hari20032005/assignment-nudge/internal/models"
	"github.com/Hari20032005/assignment-nudge/internal/repositories"
	"github.com/Hari20032005/assignment-nudge/internal/services"
)

// App wires the services together and carries per-session display state:
// the logged-in user plus the active sort and filter.
type App struct {
	config      *config.Config
	auth        *services.AuthService
	assignments *services.AssignmentService
	exporter    *export.Exporter
	repos       *repositories.Repositories
	log         logging.Logger
	reader      *bufio.Reader

	user    *models.User
	sortKey models.SortKey
	sortDir models.SortDirection
	filter  models.FilterKind
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	repos, err := repositories.InitDatabase(ctx, c.DatabasePath, log)
	if err != nil {
		log.Error(ctx, "error initializing database", "err", err)
		return nil, err
	}

	codes := services.NewCodeStore(c.CodeTTL)
	sender := &services.LogSender{Log: log}

	return &App{
		config:      c,
		auth:        services.NewAuthService(repos.DB, codes, sender, log, c.SessionTTL),
		assignments: services.NewAssignmentService(repos.Collections, log),
		exporter:    export.NewExporter(c.ExportDir),
		repos:       repos,
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		sortKey:     models.SortByDueDate,
		sortDir:     models.SortAsc,
		filter:      models.FilterAll,
	}, nil
}

// Run restores any persisted session, loads the matching collection, and
// hands control to the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.repos.Close()

	a.restoreSession(ctx)

	fmt.Println("Assignment tracker (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return "(" + a.user.Email + ") "
}

// restoreSession picks up where the last run left off: a valid persisted
// session selects the user's collection, anything else starts anonymous.
func (a *App) restoreSession(ctx context.Context) {
	u, err := a.auth.CurrentUser(ctx)
	if err != nil {
		if !errors.Is(err, common.ErrNotLoggedIn) {
			a.log.Warn(ctx, "could not restore session", "err", err)
		}
		a.switchScope(ctx, services.AnonymousScope, nil)
		return
	}

	a.switchScope(ctx, services.ScopeForUser(u.ID), u)
	fmt.Printf("Welcome back, %s!\n", u.Name)
}

func (a *App) switchScope(ctx context.Context, scope string, u *models.User) {
	if err := a.assignments.SwitchScope(ctx, scope); err != nil {
		a.log.Error(ctx, "could not load collection", "scope", scope, "err", err)
		return
	}
	a.user = u
}
