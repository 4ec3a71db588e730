package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register")
}
func (f *fakeExec) Confirm(ctx context.Context) error {
	return f.record("confirm")
}
func (f *fakeExec) ResendCode(ctx context.Context) error {
	return f.record("resend")
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) ForgotPassword(ctx context.Context) error {
	return f.record("forgot")
}
func (f *fakeExec) ResetPassword(ctx context.Context) error {
	return f.record("reset-password")
}
func (f *fakeExec) Parse(ctx context.Context) error {
	return f.record("parse")
}
func (f *fakeExec) List(ctx context.Context) error {
	return f.record("list")
}
func (f *fakeExec) SetSort(ctx context.Context, key, dir string) error {
	return f.record("sort " + key + " " + dir)
}
func (f *fakeExec) SetFilter(ctx context.Context, kind string) error {
	return f.record("filter " + kind)
}
func (f *fakeExec) Summary(ctx context.Context) error {
	return f.record("summary")
}
func (f *fakeExec) Urgent(ctx context.Context) error {
	return f.record("urgent")
}
func (f *fakeExec) SetCompleted(ctx context.Context, id string, value bool) error {
	if value {
		return f.record("done " + id)
	}
	return f.record("undone " + id)
}
func (f *fakeExec) ExportCSV(ctx context.Context) error {
	return f.record("csv")
}
func (f *fakeExec) ExportICS(ctx context.Context) error {
	return f.record("ics")
}
func (f *fakeExec) ExportCalendarLinks(ctx context.Context) error {
	return f.record("gcal")
}
func (f *fakeExec) Clear(ctx context.Context) error {
	return f.record("clear")
}

func runWithInput(t *testing.T, input string, exec *fakeExec) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	sc := bufio.NewScanner(strings.NewReader(input))
	runREPL(context.Background(), exec, func() string { return "" }, sc)
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	input := strings.Join([]string{
		"help",
		"register",
		"confirm",
		"login",
		"parse",
		"list",
		"sort dueDate desc",
		"filter upcoming",
		"summary",
		"urgent",
		"done abc",
		"undone abc",
		"csv",
		"ics",
		"gcal",
		"clear",
		"logout",
		"exit",
	}, "\n")

	exec := &fakeExec{}
	runWithInput(t, input, exec)

	want := []string{
		"register", "confirm", "login", "parse", "list",
		"sort dueDate desc", "filter upcoming", "summary", "urgent",
		"done abc", "undone abc", "csv", "ics", "gcal", "clear", "logout",
	}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, want)
	}
	for i, c := range exec.calls {
		if c != want[i] {
			t.Fatalf("call %d: got %q, want %q (all: %v)", i, c, want[i], exec.calls)
		}
	}
}

func TestRunREPL_HelpFollowsLoginState(t *testing.T) {
	origPrint := printlnFn
	var out []string
	printlnFn = func(args ...any) (int, error) {
		out = append(out, fmt.Sprintln(args...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = origPrint })

	exec := &fakeExec{}
	sc := bufio.NewScanner(strings.NewReader("help\nlogin\nhelp\nexit\n"))
	runREPL(context.Background(), exec, func() string { return "" }, sc)

	joined := strings.Join(out, "")
	if !strings.Contains(joined, "register, confirm, resend, login") {
		t.Fatalf("logged-out help is missing account commands:\n%s", joined)
	}
	if !strings.Contains(joined, "Account:  logout") {
		t.Fatalf("logged-in help should only offer logout:\n%s", joined)
	}
}

func TestRunREPL_UsageLinesDoNotDispatch(t *testing.T) {
	input := "done\nundone\nsort\nfilter\nquit\n"
	exec := &fakeExec{}
	runWithInput(t, input, exec)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_UnknownAndBlankLines(t *testing.T) {
	input := "\n\nfoobar\nlist\nexit\n"
	exec := &fakeExec{}
	runWithInput(t, input, exec)

	if len(exec.calls) != 1 || exec.calls[0] != "list" {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}

func TestRunREPL_EOFEndsLoop(t *testing.T) {
	exec := &fakeExec{}
	runWithInput(t, "list", exec)

	if len(exec.calls) != 1 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
