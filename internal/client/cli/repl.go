package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/HanzXel/fullstack-prototype-bunadoo/internal/common"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	isAdmin() bool
	Go(ctx context.Context, target string) error
	Back(ctx context.Context) error
	Show(ctx context.Context) error
	GetStarted(ctx context.Context) error
	Register(ctx context.Context) error
	Verify(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Departments(ctx context.Context, args []string) error
	Employees(ctx context.Context, args []string) error
	Accounts(ctx context.Context, args []string) error
	Requests(ctx context.Context, args []string) error
	Reset(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the HR desk CLI.
//
// It reads a line from reader, parses the first token as the command and
// dispatches to methods on 'a'; the remaining tokens are passed as
// arguments. The loop exits on EOF or when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Always:
//	  - help                 show available commands
//	  - go <page>            navigate (home, register, verify, login, profile,
//	                           requests, employees, departments, accounts)
//	  - back                 return to the previous location
//	  - show                 render the current page again
//	  - reset                wipe all demo data and reseed
//	  - exit | quit          leave the program
//
//	Not logged in:
//	  - start                get started (login page)
//	  - register             create an account
//	  - verify               simulate clicking the verification link
//	  - login                authenticate
//
//	Logged in:
//	  - start                get started (profile page)
//	  - req new | del <n>    compose or delete one of your requests
//	  - logout               log out
//
//	Admin:
//	  - dept add | edit <n> | del <n>
//	  - emp  add | edit <n> | del <n>
//	  - acct add | edit <n> | reset <n> | del <n>
//
// Errors returned by command handlers are printed as their user-facing
// message and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("%s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText(a.isLoggedIn(), a.isAdmin()))

		case "go":
			if len(args) == 0 {
				printlnFn("Usage: go <page>")
				continue
			}
			report(a.Go(ctx, args[0]))

		case "back":
			report(a.Back(ctx))

		case "show":
			report(a.Show(ctx))

		case "start":
			report(a.GetStarted(ctx))

		case "register":
			report(a.Register(ctx))

		case "verify":
			report(a.Verify(ctx))

		case "login":
			report(a.Login(ctx))

		case "logout":
			report(a.Logout(ctx))

		case "dept":
			report(a.Departments(ctx, args))

		case "emp":
			report(a.Employees(ctx, args))

		case "acct":
			report(a.Accounts(ctx, args))

		case "req":
			report(a.Requests(ctx, args))

		case "reset":
			report(a.Reset(ctx))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

func report(err error) {
	if err != nil {
		printlnFn(common.Message(err))
	}
}

func helpText(loggedIn, admin bool) string {
	cmds := []string{"go <page>", "back", "show"}
	switch {
	case !loggedIn:
		cmds = append(cmds, "start", "register", "verify", "login")
	case admin:
		cmds = append(cmds, "start", "req new|del <n>", "dept add|edit|del", "emp add|edit|del", "acct add|edit|reset|del", "logout")
	default:
		cmds = append(cmds, "start", "req new|del <n>", "logout")
	}
	cmds = append(cmds, "reset", "exit")
	return "Available commands: " + strings.Join(cmds, ", ")
}
