package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
	args     [][]string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) call(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return nil
}

func (f *fakeExec) Login(ctx context.Context, args []string) error {
	f.loggedIn = true
	return f.call("login", args)
}
func (f *fakeExec) Transfer(ctx context.Context, args []string) error {
	return f.call("transfer", args)
}
func (f *fakeExec) Loan(ctx context.Context, args []string) error    { return f.call("loan", args) }
func (f *fakeExec) Close(ctx context.Context) error                  { return f.call("close", nil) }
func (f *fakeExec) Sort(ctx context.Context) error                   { return f.call("sort", nil) }
func (f *fakeExec) History(ctx context.Context, args []string) error { return f.call("history", args) }
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.call("logout", nil)
}

// captureOutput replaces the print seams and returns everything printed.
func captureOutput(t *testing.T) *strings.Builder {
	t.Helper()
	var sb strings.Builder
	origPrintln, origPrint := printlnFn, printFn
	printlnFn = func(a ...any) (int, error) { return fmt.Fprintln(&sb, a...) }
	printFn = func(a ...any) (int, error) { return fmt.Fprint(&sb, a...) }
	t.Cleanup(func() { printlnFn, printFn = origPrintln, origPrint })
	return &sb
}

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	captureOutput(t)

	input := strings.Join([]string{
		"login jd",
		"transfer js 200",
		"loan 1000",
		"",
		"sort",
		"history 5",
		"close",
		"logout",
		"exit",
	}, "\n")
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "" }, rdr(input))

	assert.Equal(t, []string{"login", "transfer", "loan", "sort", "history", "close", "logout"}, exec.calls)
	assert.Equal(t, []string{"jd"}, exec.args[0])
	assert.Equal(t, []string{"js", "200"}, exec.args[1])
	assert.Equal(t, []string{"1000"}, exec.args[2])
	assert.Equal(t, []string{"5"}, exec.args[4])
}

func TestRunREPL_GuardsCommandsWhenLoggedOut(t *testing.T) {
	out := captureOutput(t)
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "" }, rdr("transfer js 1\nfoo\nquit\n"))

	assert.Empty(t, exec.calls)
	assert.Contains(t, out.String(), "Please log in first")
	assert.Contains(t, out.String(), "Unknown command: foo")
	assert.Contains(t, out.String(), "Bye!")
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	out := captureOutput(t)
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "(jd 02:00)" }, rdr("help\nlogin\nhelp\n"))

	s := out.String()
	assert.Contains(t, s, helpLoggedOut)
	assert.Contains(t, s, helpLoggedIn)
	assert.Contains(t, s, "bankist (jd 02:00)> ")
}

func TestRunREPL_StopsAtEOFAndCancel(t *testing.T) {
	captureOutput(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "" }, rdr("sort"))
	assert.Equal(t, []string{"sort"}, exec.calls, "last line without newline still runs")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec = &fakeExec{loggedIn: true}
	runREPL(ctx, exec, func() string { return "" }, rdr("sort\n"))
	assert.Empty(t, exec.calls)
}
