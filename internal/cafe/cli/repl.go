package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub that records what was printed.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL dispatches to. The real
// App type satisfies it; tests can provide a lightweight stub.
type execIface interface {
	Register(ctx context.Context) error
	DisplayUsers(ctx context.Context) error
	StartSession(ctx context.Context) error
	History(ctx context.Context) error
	AdminLogin(ctx context.Context) error
}

// runREPL is the café's main menu: it reads a line from the reader, parses
// the first token as the command, and dispatches to 'a'. Unknown commands
// are reported back to the user. The loop exits on EOF or when the user
// types "exit" or "quit".
//
// Commands:
//
//	register     — register a new customer
//	users        — display registered users
//	start        — start a session (drops into the activity loop)
//	history      — show a user's session history
//	admin        — admin login (drops into the admin menu)
//	help         — list available commands
//	exit | quit  — leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors, which keeps the loop resilient: it always regains
// control and nothing is fatal to the process.
func runREPL(ctx context.Context, a execIface, reader *bufio.Reader) {
	for {
		printlnFn("cafe >")
		line, err := reader.ReadString('\n')
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				return
			}
			continue
		}

		switch cmd := parts[0]; cmd {
		case "help":
			printlnFn("Available commands: register, users, start, history, admin, exit")

		case "register":
			_ = a.Register(ctx)

		case "users":
			_ = a.DisplayUsers(ctx)

		case "start":
			_ = a.StartSession(ctx)

		case "history":
			_ = a.History(ctx)

		case "admin":
			_ = a.AdminLogin(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
