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
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Profile(ctx context.Context) error
	Refresh(ctx context.Context) error
	Theme(ctx context.Context, args []string) error
	Lang(ctx context.Context, args []string) error
	Mock(ctx context.Context) error
	Dev(ctx context.Context, args []string) error
	Status(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the Co-Director CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on 'a'. Unknown commands are reported back to the
// user. The loop exits on EOF or when the user types "exit" or "quit".
//
//	Always:
//	  - help                       show available commands
//	  - theme <light|dark|system>  set the theme
//	  - lang <code>                set the language
//	  - mock                       toggle the mock API
//	  - dev [on|off]               toggle or set development mode
//	  - status                     show auth and settings state
//	  - exit | quit                leave the program
//
//	Not logged in:
//	  - register, login
//
//	Logged in:
//	  - profile, refresh, logout
//
// Handlers report their own failures to the user, so returned errors are
// dropped here.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		fmt.Fprintf(stdout, "cd %s> ", statusFn())
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: profile, refresh, logout, theme, lang, mock, dev, status, exit")
			} else {
				printlnFn("Available commands: register, login, theme, lang, mock, dev, status, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "refresh":
			_ = a.Refresh(ctx)

		case "theme":
			_ = a.Theme(ctx, args)

		case "lang":
			_ = a.Lang(ctx, args)

		case "mock":
			_ = a.Mock(ctx)

		case "dev":
			_ = a.Dev(ctx, args)

		case "status":
			_ = a.Status(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
