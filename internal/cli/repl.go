package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies it;
// tests use a stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Profile(ctx context.Context) error
	Transfer(ctx context.Context) error
	Info(ctx context.Context, topic string) error
	Logout(ctx context.Context) error
}

// runREPL reads commands line by line and dispatches them to a.
//
//	Always:
//	  help                                         show available commands
//	  menu | settings | security | support | remember
//	                                               informational texts
//	  exit | quit                                  leave the program
//	Not logged in:
//	  login | register
//	Logged in:
//	  profile | transfer | logout
//
// Handler errors are already reported to the user by the handlers, so the
// loop only stops on end of input or exit.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("bank %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: profile, transfer, menu, settings, security, support, remember, logout, exit")
			} else {
				printlnFn("Available commands: login, register, menu, settings, security, support, remember, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "transfer":
			_ = a.Transfer(ctx)

		case "menu", "settings", "security", "support", "remember":
			_ = a.Info(ctx, cmd)

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
