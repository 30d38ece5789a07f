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
	isAdmin() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Generate(ctx context.Context) error
	List(ctx context.Context) error
	Show(ctx context.Context) error
	Delete(ctx context.Context) error
	Admin(ctx context.Context) error
	Whoami(ctx context.Context) error
	Logout(ctx context.Context) error
}

// runREPL reads a line from the provided scanner, parses the first token as
// the command, and dispatches to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on scanner EOF or when the user
// types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print their
// own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("wk %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				s := "Available commands: generate, (l)ist, show, delete, whoami, logout, exit"
				if a.isAdmin() {
					s += ", admin"
				}
				printlnFn(s)
			} else {
				printlnFn("Available commands: register, login, whoami, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "generate":
			_ = a.Generate(ctx)

		case "l", "list":
			_ = a.List(ctx)

		case "show":
			_ = a.Show(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "admin":
			_ = a.Admin(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
