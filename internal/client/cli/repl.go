package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the command surface the REPL dispatches to.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Sell(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Offer(ctx context.Context, args []string) error
	Profile(ctx context.Context) error
	AddAccount(ctx context.Context) error
	DeleteAccount(ctx context.Context, args []string) error
	Settings(ctx context.Context) error
	DarkMode(ctx context.Context, args []string) error
	Notifications(ctx context.Context, args []string) error
}

const (
	helpLoggedOut = "Available commands: register, login, exit"
	helpLoggedIn  = "Available commands: sell, (l)ist, show <id>, offer <id>, profile, adduser, deluser <id>, settings, darkmode [on|off], notifications [on|off], logout, exit"
)

// runREPL reads commands line by line and dispatches them to a.
//
//	Not logged in:
//	  - help           show available commands
//	  - register       create an account
//	  - login          authenticate
//	  - exit | quit    leave the program
//
//	Logged in:
//	  - help                     show available commands
//	  - sell                     list a car for sale
//	  - l | list                 browse the catalog, newest first
//	  - show <id>                car details
//	  - offer <id>               make a purchase offer
//	  - profile                  show profile accounts
//	  - adduser                  add a profile account
//	  - deluser <id>             delete a profile account (asks first)
//	  - settings                 show settings
//	  - darkmode [on|off]        set or toggle dark mode
//	  - notifications [on|off]   set or toggle notifications
//	  - logout                   log out
//	  - exit | quit              leave the program
//
// Prompts, help and command errors are written to w. Command errors are
// printed through userMessage and never end the loop. The loop exits on "exit", "quit" or end of input.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "cm %s> \n", statusFn())

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				fmt.Fprintln(w, helpLoggedOut)
			case "register":
				report(w, a.Register(ctx))
			case "login":
				report(w, a.Login(ctx))
			case "exit", "quit":
				fmt.Fprintln(w, "Bye!")
				return
			default:
				fmt.Fprintln(w, "Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "help":
			fmt.Fprintln(w, helpLoggedIn)
		case "sell":
			report(w, a.Sell(ctx))
		case "l", "list":
			report(w, a.List(ctx))
		case "show":
			report(w, a.Show(ctx, args))
		case "offer":
			report(w, a.Offer(ctx, args))
		case "profile":
			report(w, a.Profile(ctx))
		case "adduser":
			report(w, a.AddAccount(ctx))
		case "deluser":
			report(w, a.DeleteAccount(ctx, args))
		case "settings":
			report(w, a.Settings(ctx))
		case "darkmode":
			report(w, a.DarkMode(ctx, args))
		case "notifications":
			report(w, a.Notifications(ctx, args))
		case "logout":
			report(w, a.Logout(ctx))
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}

func report(w io.Writer, err error) {
	if err != nil {
		fmt.Fprintln(w, "Error:", userMessage(err))
	}
}
