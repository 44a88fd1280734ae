package cli

import (
	"bufio"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/carmarket/internal/common"
)

type fakeExec struct {
	loggedIn bool
	failWith error

	calls []string
	args  [][]string
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	f.args = append(f.args, args)
	return f.failWith
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	return f.record("register", nil)
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}
func (f *fakeExec) Sell(ctx context.Context) error     { return f.record("sell", nil) }
func (f *fakeExec) List(ctx context.Context) error     { return f.record("list", nil) }
func (f *fakeExec) Profile(ctx context.Context) error  { return f.record("profile", nil) }
func (f *fakeExec) Settings(ctx context.Context) error { return f.record("settings", nil) }
func (f *fakeExec) AddAccount(ctx context.Context) error {
	return f.record("adduser", nil)
}
func (f *fakeExec) Show(ctx context.Context, args []string) error {
	return f.record("show", args)
}
func (f *fakeExec) Offer(ctx context.Context, args []string) error {
	return f.record("offer", args)
}
func (f *fakeExec) DeleteAccount(ctx context.Context, args []string) error {
	return f.record("deluser", args)
}
func (f *fakeExec) DarkMode(ctx context.Context, args []string) error {
	return f.record("darkmode", args)
}
func (f *fakeExec) Notifications(ctx context.Context, args []string) error {
	return f.record("notifications", args)
}

func lines(ls ...string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(strings.Join(ls, "\n") + "\n"))
}

func TestRunREPL_LoggedOutOnlyAcceptsAuthCommands(t *testing.T) {
	var out strings.Builder
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "" }, lines("help", "sell", "list", "register", "exit"), &out)

	assert.Equal(t, []string{"register"}, exec.calls)
	assert.Contains(t, out.String(), helpLoggedOut)
	assert.Contains(t, out.String(), "Unknown command: sell")
	assert.Contains(t, out.String(), "Bye!")
}

func TestRunREPL_LoggedInDispatch(t *testing.T) {
	var out strings.Builder
	exec := &fakeExec{}

	runREPL(context.Background(), exec, func() string { return "(Ann)" }, lines(
		"login",
		"help",
		"sell",
		"l",
		"list",
		"show 42",
		"offer 42",
		"profile",
		"adduser",
		"deluser 2",
		"settings",
		"darkmode on",
		"notifications",
		"",
		"foobar",
		"logout",
		"quit",
	), &out)

	assert.Equal(t, []string{
		"login", "sell", "list", "list", "show", "offer", "profile", "adduser",
		"deluser", "settings", "darkmode", "notifications", "logout",
	}, exec.calls)
	assert.Equal(t, []string{"42"}, exec.args[5])
	assert.Equal(t, []string{"on"}, exec.args[10])
	assert.Empty(t, exec.args[11])
	assert.Contains(t, out.String(), helpLoggedIn)
	assert.Contains(t, out.String(), "cm (Ann)> ")
	assert.Contains(t, out.String(), "Unknown command: foobar")
}

func TestRunREPL_ReportsErrorsAndContinues(t *testing.T) {
	var out strings.Builder
	exec := &fakeExec{failWith: common.ErrInvalidCredentials}

	runREPL(context.Background(), exec, func() string { return "" }, lines("login", "list", "exit"), &out)

	require.Equal(t, []string{"login", "list"}, exec.calls)
	assert.Equal(t, 2, strings.Count(out.String(), "Error: Invalid email or password."))
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	var out strings.Builder
	exec := &fakeExec{failWith: errors.New("x")}

	runREPL(context.Background(), exec, func() string { return "" }, bufio.NewReader(strings.NewReader("login")), &out)

	assert.Equal(t, []string{"login"}, exec.calls)
}
