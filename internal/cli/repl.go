package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Confirm(ctx context.Context) error
	ResendCode(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ResetPassword(ctx context.Context) error
	Parse(ctx context.Context) error
	List(ctx context.Context) error
	SetSort(ctx context.Context, key, dir string) error
	SetFilter(ctx context.Context, kind string) error
	Summary(ctx context.Context) error
	Urgent(ctx context.Context) error
	SetCompleted(ctx context.Context, id string, value bool) error
	ExportCSV(ctx context.Context) error
	ExportICS(ctx context.Context) error
	ExportCalendarLinks(ctx context.Context) error
	Clear(ctx context.Context) error
}

// runREPL starts a read-eval-print loop for the assignment tracker.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("nudge %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Account:  logout")
			} else {
				printlnFn("Account:  register, confirm, resend, login, forgot, reset-password")
			}
			printlnFn("Tracker:  parse, list, sort <key> [asc|desc], filter <kind>, summary, urgent,")
			printlnFn("          done <id>, undone <id>, clear")
			printlnFn("Export:   csv, ics, gcal")
			printlnFn("Other:    help, exit")

		case "register":
			_ = a.Register(ctx)

		case "confirm":
			_ = a.Confirm(ctx)

		case "resend":
			_ = a.ResendCode(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "forgot":
			_ = a.ForgotPassword(ctx)

		case "reset-password":
			_ = a.ResetPassword(ctx)

		case "parse":
			_ = a.Parse(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "sort":
			if len(args) == 0 {
				printlnFn("Usage: sort <dueDate|daysLeft|courseCode|courseTitle> [asc|desc]")
				continue
			}
			dir := ""
			if len(args) > 1 {
				dir = args[1]
			}
			_ = a.SetSort(ctx, args[0], dir)

		case "filter":
			if len(args) == 0 {
				printlnFn("Usage: filter <all|upcoming|overdue|completed|no-deadline>")
				continue
			}
			_ = a.SetFilter(ctx, args[0])

		case "summary":
			_ = a.Summary(ctx)

		case "urgent":
			_ = a.Urgent(ctx)

		case "done":
			if len(args) == 0 {
				printlnFn("Usage: done <id>")
				continue
			}
			_ = a.SetCompleted(ctx, args[0], true)

		case "undone":
			if len(args) == 0 {
				printlnFn("Usage: undone <id>")
				continue
			}
			_ = a.SetCompleted(ctx, args[0], false)

		case "csv":
			_ = a.ExportCSV(ctx)

		case "ics":
			_ = a.ExportICS(ctx)

		case "gcal":
			_ = a.ExportCalendarLinks(ctx)

		case "clear":
			_ = a.Clear(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
