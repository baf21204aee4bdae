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
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	Open(ctx context.Context, path string) error
	Shop(ctx context.Context) error
	Apply(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the chainmarket CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not signed in:
//	  - help           — show available commands
//	  - login          — sign in with a wallet address
//	  - open <path>    — check where navigating to a path would lead
//	  - exit | quit    — leave the program
//
//	Signed in:
//	  - help           — show available commands
//	  - status         — show identity, role and shop profile
//	  - open <path>    — check where navigating to a path would lead
//	  - shop           — show the merchant shop profile
//	  - apply          — submit a shop application
//	  - logout         — sign out and clear the saved session
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("cm> %s > ", statusFn()))
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
				printlnFn("Available commands: status, open <path>, shop, apply, logout, exit")
			} else {
				printlnFn("Available commands: login, open <path>, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "status":
			_ = a.Status(ctx)

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <path>")
				continue
			}
			_ = a.Open(ctx, args[0])

		case "shop":
			_ = a.Shop(ctx)

		case "apply":
			_ = a.Apply(ctx)

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
