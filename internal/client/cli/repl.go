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
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Save(ctx context.Context) error
	List(ctx context.Context) error
	Delete(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands requiring an authenticated session (save, list, delete, whoami,
// logout) are offered only once the user is logged in; before that the REPL
// accepts login and signup.
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("clio> %s > ", statusFn()))
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
				printlnFn("Available commands: whoami, save, (l)ist, delete, logout, exit")
			} else {
				printlnFn("Available commands: login, signup, exit")
			}

		case "login":
			if a.isLoggedIn() {
				printlnFn("Already logged in; logout first")
				continue
			}
			_ = a.Login(ctx)

		case "signup":
			if a.isLoggedIn() {
				printlnFn("Already logged in; logout first")
				continue
			}
			_ = a.Signup(ctx)

		case "whoami":
			if !loggedIn(a) {
				continue
			}
			_ = a.Whoami(ctx)

		case "save":
			if !loggedIn(a) {
				continue
			}
			_ = a.Save(ctx)

		case "l", "list":
			if !loggedIn(a) {
				continue
			}
			_ = a.List(ctx)

		case "delete":
			if !loggedIn(a) {
				continue
			}
			_ = a.Delete(ctx)

		case "logout":
			if !loggedIn(a) {
				continue
			}
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

// loggedIn gates protected commands on the derived session flag.
func loggedIn(a execIface) bool {
	if !a.isLoggedIn() {
		printlnFn("Please login first")
		return false
	}
	return true
}
