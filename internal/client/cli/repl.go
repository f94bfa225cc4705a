package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	help() string
	List(ctx context.Context) error
	New(ctx context.Context) error
	Open(ctx context.Context, arg string) error
	Remove(ctx context.Context, arg string) error
	Title(ctx context.Context, text string) error
	Text(ctx context.Context) error
	Show(ctx context.Context) error
	Save(ctx context.Context) error
	Delete(ctx context.Context) error
	Back(ctx context.Context) error
	Settings(ctx context.Context) error
	Theme(ctx context.Context, value string) error
	Lang(ctx context.Context, value string) error
	Reset(ctx context.Context, arg string) error
	Exit(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the crystalpad shell.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The rest of the line is passed to commands
// that take an argument. The loop exits when input ends or when the user
// types "exit" or "quit"; in both cases a.Exit runs first so an open editor
// session is flushed.
//
// Commands
//
//	List screen:
//	  - (l)ist         - show notes, most recently modified first
//	  - new            - start a new note
//	  - open <id>      - edit an existing note
//	  - rm <id>        - delete a note
//	Editor screen:
//	  - title <text>   - set the title
//	  - text           - enter the body, ending with a line holding only "."
//	  - show           - print the draft
//	  - save           - save now
//	  - delete         - delete the note and return to the list
//	  - back           - save and return to the list
//	Settings:
//	  - settings       - show preferences
//	  - theme <value>  - system, dark or light
//	  - lang <value>   - system, en or ru
//	  - reset [key]    - return theme, language or both to system
//	Anywhere:
//	  - help, exit | quit
//
// Errors returned by command handlers are ignored here; handlers report
// their own errors.
func runREPL(ctx context.Context, a execIface, promptFn func(), reader *bufio.Reader) {
	for {
		if promptFn != nil {
			promptFn()
		}
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			_ = a.Exit(ctx)
			return
		}

		line = strings.TrimSpace(line)
		parts := strings.Fields(line)
		if len(parts) == 0 {
			if err != nil {
				_ = a.Exit(ctx)
				return
			}
			continue
		}
		cmd := parts[0]
		arg := strings.TrimSpace(strings.TrimPrefix(line, cmd))

		switch cmd {
		case "help":
			printlnFn(a.help())

		case "l", "list":
			_ = a.List(ctx)

		case "new":
			_ = a.New(ctx)

		case "open":
			_ = a.Open(ctx, arg)

		case "rm":
			_ = a.Remove(ctx, arg)

		case "title":
			_ = a.Title(ctx, arg)

		case "text":
			_ = a.Text(ctx)

		case "show":
			_ = a.Show(ctx)

		case "save":
			_ = a.Save(ctx)

		case "delete":
			_ = a.Delete(ctx)

		case "back":
			_ = a.Back(ctx)

		case "settings":
			_ = a.Settings(ctx)

		case "theme":
			_ = a.Theme(ctx, arg)

		case "lang":
			_ = a.Lang(ctx, arg)

		case "reset":
			_ = a.Reset(ctx, arg)

		case "exit", "quit":
			_ = a.Exit(ctx)
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			_ = a.Exit(ctx)
			return
		}
	}
}
