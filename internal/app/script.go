package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dshills/doccore/internal/engine/cursor"
	"github.com/dshills/doccore/internal/engine/editor"
	"github.com/dshills/doccore/internal/engine/movement"
)

// Script lines are one instruction each, optionally preceded by a count:
//
//	3 down             move by a movement (see movement.Parse)
//	select word-forward  extend insert-mode regions instead of moving them
//	delete-forward     run an edit command (see editor.ParseCommand)
//	op delete          arm a motion-mode operator
//	insert "a\tb"      insert text, Go-quoted or raw to the end of the line
//	print | styles | wait | quit
//
// Blank lines and lines starting with # are ignored.

// Exec runs one script line.
func (app *Application) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	word, rest := cut(line)
	count := 1
	if n, err := strconv.Atoi(word); err == nil {
		if n < 1 {
			return fmt.Errorf("%w: count %d", ErrBadArgument, n)
		}
		count = n
		word, rest = cut(rest)
	}

	switch word {
	case "quit":
		return ErrQuit
	case "print":
		return app.WriteState(app.out)
	case "styles":
		return app.writeStyles()
	case "wait":
		app.settle()
		return nil
	case "insert":
		text, err := parseText(rest)
		if err != nil {
			return err
		}
		for i := 0; i < count; i++ {
			app.doc.DoInsert(app.cursor, text)
		}
		return nil
	case "select":
		m, err := movement.Parse(rest)
		if err != nil {
			return err
		}
		app.doc.MoveCursor(app.cursor, m, count, true)
		return nil
	case "op":
		mm, err := parseOperator(rest)
		if err != nil {
			return err
		}
		app.doc.DoMotionMode(app.cursor, mm)
		return nil
	}

	if rest != "" {
		return fmt.Errorf("%w: %s takes no argument", ErrBadArgument, word)
	}
	if cmd, err := editor.ParseCommand(word); err == nil {
		for i := 0; i < count; i++ {
			app.doc.DoEdit(app.cursor, cmd)
		}
		return nil
	}
	if m, err := movement.Parse(word); err == nil {
		app.doc.MoveCursor(app.cursor, m, count, false)
		return nil
	}
	return fmt.Errorf("%w: %s", ErrUnknownInstruction, word)
}

// writeStyles writes the styled ranges of the cursor's line.
func (app *Application) writeStyles() error {
	line := app.doc.Buffer().LineOfOffset(app.cursor.Offset())
	for _, ls := range app.doc.LineStyle(line) {
		if _, err := fmt.Fprintf(app.out, "%d-%d %s\n", ls.Start, ls.End, ls.Style.FgColor); err != nil {
			return err
		}
	}
	return nil
}

func cut(s string) (string, string) {
	word, rest, _ := strings.Cut(strings.TrimSpace(s), " ")
	return word, strings.TrimSpace(rest)
}

// parseText accepts a Go-quoted string or raw text.
func parseText(s string) (string, error) {
	if s == "" {
		return "", fmt.Errorf("%w: insert needs text", ErrBadArgument)
	}
	if strings.HasPrefix(s, `"`) || strings.HasPrefix(s, "`") {
		text, err := strconv.Unquote(s)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrBadArgument, err)
		}
		return text, nil
	}
	return s, nil
}

func parseOperator(s string) (cursor.MotionMode, error) {
	for _, mm := range []cursor.MotionMode{cursor.MotionDelete, cursor.MotionYank, cursor.MotionIndent, cursor.MotionOutdent} {
		if mm.String() == s {
			return mm, nil
		}
	}
	return 0, fmt.Errorf("%w: operator %q", ErrBadArgument, s)
}
