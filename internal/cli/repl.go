package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// printFn writes the prompt without a trailing newline.
var printFn = fmt.Print

// execIface is the command surface the REPL dispatches to. *App satisfies
// it; tests use a stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context, args []string) error
	Transfer(ctx context.Context, args []string) error
	Loan(ctx context.Context, args []string) error
	Close(ctx context.Context) error
	Sort(ctx context.Context) error
	History(ctx context.Context, args []string) error
	Logout(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: login [username], exit"
	helpLoggedIn  = "Available commands: transfer [to amount], loan [amount], close, sort, history [n], logout, exit"
)

// runREPL reads one command per line from reader and dispatches it to a.
// The prompt carries statusFn's output, which is where the logout
// countdown shows up. The loop ends on EOF, on "exit"/"quit" or when ctx
// is cancelled. Command errors are reported by the handlers themselves.
//
//	Logged out:
//	  help                  show available commands
//	  login [username]      authenticate, the PIN is always prompted
//	  exit | quit           leave the program
//
//	Logged in:
//	  transfer [to amount]  send money to another account
//	  loan [amount]         request a loan
//	  close                 close the account (asks for username and PIN)
//	  sort                  toggle sorting movements by amount
//	  history [n]           show recent activity
//	  logout                log out
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printFn(fmt.Sprintf("bankist %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && !(errors.Is(err, io.EOF) && line != "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}
		if cmd == "help" {
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}
			continue
		}
		if cmd != "login" && !a.isLoggedIn() {
			if _, known := loggedInCommands[cmd]; known {
				printlnFn("Please log in first")
			} else {
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "login":
			_ = a.Login(ctx, args)
		case "transfer":
			_ = a.Transfer(ctx, args)
		case "loan":
			_ = a.Loan(ctx, args)
		case "close":
			_ = a.Close(ctx)
		case "sort":
			_ = a.Sort(ctx)
		case "history":
			_ = a.History(ctx, args)
		case "logout":
			_ = a.Logout(ctx)
		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

var loggedInCommands = map[string]struct{}{
	"transfer": {},
	"loan":     {},
	"close":    {},
	"sort":     {},
	"history":  {},
	"logout":   {},
}
