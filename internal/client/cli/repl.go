package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the command surface the REPL needs. The real App type
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	List(ctx context.Context) error
	Search(ctx context.Context, text string) error
	Sort(ctx context.Context, column string) error
	Refresh(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

const helpText = "Available commands: list, search <text>, sort <name|email|role>, refresh, add, edit <id>, delete <id>, exit"

// runREPL reads commands line by line from reader and dispatches them to a,
// writing the prompt and messages to out. It returns on EOF, on "exit"/"quit",
// or when ctx is done. Command errors are printed and the loop carries on.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for ctx.Err() == nil {
		fmt.Fprintf(out, "users %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
		rest = strings.TrimSpace(rest)
		if cmd == "" {
			continue
		}

		var cmdErr error
		switch cmd {
		case "help":
			fmt.Fprintln(out, helpText)

		case "l", "list":
			cmdErr = a.List(ctx)

		case "search":
			cmdErr = a.Search(ctx, rest)

		case "sort":
			if rest == "" {
				fmt.Fprintln(out, "Usage: sort <name|email|role>")
				continue
			}
			cmdErr = a.Sort(ctx, rest)

		case "refresh":
			cmdErr = a.Refresh(ctx)

		case "add":
			cmdErr = a.Add(ctx)

		case "edit":
			if rest == "" {
				fmt.Fprintln(out, "Usage: edit <id>")
				continue
			}
			cmdErr = a.Edit(ctx, rest)

		case "delete":
			if rest == "" {
				fmt.Fprintln(out, "Usage: delete <id>")
				continue
			}
			cmdErr = a.Delete(ctx, rest)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if cmdErr != nil {
			fmt.Fprintln(out, "error:", cmdErr)
		}
	}
}
