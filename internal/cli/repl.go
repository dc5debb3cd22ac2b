package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface is the command surface the REPL dispatches to.
// The real App satisfies it; tests can provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Show(ctx context.Context, args []string) error
	Toggle(ctx context.Context, args []string) error
}

// runREPL reads one command per line from scanner and dispatches it to a.
//
//	help            show available commands
//	l | list        list open and closed jobs
//	show <id>       show a job's details
//	toggle <id>     open a closed job or close an open one
//	exit | quit     leave the program
//
// Errors returned by command handlers are ignored here; handlers print their
// own messages. The loop ends on EOF or exit.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner, w io.Writer) {
	for {
		fmt.Fprint(w, "jobs> ")
		if !scanner.Scan() {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(w, "Available commands: (l)ist, show <id>, toggle <id>, exit")
		case "l", "list":
			_ = a.List(ctx)
		case "show":
			_ = a.Show(ctx, args)
		case "toggle":
			_ = a.Toggle(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}
	}
}
