package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Go(ctx context.Context, path string) error
	Back(ctx context.Context) error
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Like(ctx context.Context, arg string) error
	Publish(ctx context.Context, arg string) error
	Comment(ctx context.Context, arg string) error
	Uncomment(ctx context.Context, arg string) error
	RemoveBlog(ctx context.Context, arg string) error
	RemovePost(ctx context.Context, arg string) error
	Filter(ctx context.Context, arg string) error
}

const (
	helpGuest  = "Available commands: login, register, go <path>, back, help, exit"
	helpMember = "Available commands: go <path>, back, like <postId>, publish <postId>, comment <postId>, " +
		"uncomment <commentId>, rmblog <id>, rmpost <id>, filter all|published|unpublished, whoami, logout, help, exit"
)

// runREPL reads one command per line from reader and dispatches it to a.
// The loop exits on end of input or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers report
// their own failures to the user.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "gb %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(w)
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		arg := strings.Join(parts[1:], " ")

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, helpMember)
			} else {
				fmt.Fprintln(w, helpGuest)
			}

		case "go":
			if arg == "" {
				fmt.Fprintln(w, "Usage: go <path>")
				continue
			}
			_ = a.Go(ctx, arg)

		case "back":
			_ = a.Back(ctx)

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "like":
			_ = a.Like(ctx, arg)

		case "publish":
			_ = a.Publish(ctx, arg)

		case "comment":
			_ = a.Comment(ctx, arg)

		case "uncomment":
			_ = a.Uncomment(ctx, arg)

		case "rmblog":
			_ = a.RemoveBlog(ctx, arg)

		case "rmpost":
			_ = a.RemovePost(ctx, arg)

		case "filter":
			_ = a.Filter(ctx, arg)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
