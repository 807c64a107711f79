package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/dshills/doccore/internal/clipboard"
	"github.com/dshills/doccore/internal/config"
	"github.com/dshills/doccore/internal/document"
	"github.com/dshills/doccore/internal/engine/cursor"
	"github.com/dshills/doccore/internal/engine/editor"
	"github.com/dshills/doccore/internal/event"
	"github.com/dshills/doccore/internal/logging"
)

// Options configures an Application.
type Options struct {
	// ConfigPath is the settings file. Empty means built-in defaults.
	ConfigPath string

	// File is the document to open. Empty opens an unsaved buffer; a path
	// that does not exist opens an empty document for it.
	File string

	// LogLevel overrides the level from the settings file when set.
	LogLevel string

	// LogOutput receives log lines. Defaults to os.Stderr.
	LogOutput io.Writer

	// Watch reloads the settings file while the script runs.
	Watch bool

	// SystemClipboard uses the OS clipboard when one is available.
	SystemClipboard bool

	// ContinueOnError logs failing script lines instead of stopping.
	ContinueOnError bool
}

// settingsChanged carries reloaded settings from the watcher to the loop.
type settingsChanged struct {
	settings config.Settings
}

// Application owns one document and its cursor. Everything that touches
// them runs on the goroutine that called Run; other goroutines reach it
// only through the router.
type Application struct {
	opts     Options
	settings config.Settings
	logger   *logging.Logger

	router *event.Router
	mbox   *event.Mailbox
	doc    *document.Document
	cursor *cursor.Cursor
	out    io.Writer

	running atomic.Bool
}

// New creates an Application writing script output to out.
func New(opts Options, out io.Writer) (*Application, error) {
	if out == nil {
		out = io.Discard
	}
	app := &Application{opts: opts, out: out}

	if err := app.bootstrap(); err != nil {
		return nil, err
	}
	return app, nil
}

func (app *Application) bootstrap() error {
	settings := config.Default()
	if app.opts.ConfigPath != "" {
		s, err := config.Load(app.opts.ConfigPath)
		if err != nil {
			return &InitError{Component: "config", Err: err}
		}
		settings = s
	}
	app.settings = settings

	levelName := settings.LogLevel
	if app.opts.LogLevel != "" {
		levelName = app.opts.LogLevel
	}
	level, ok := logging.ParseLevel(levelName)
	if !ok {
		return &InitError{Component: "logging", Err: fmt.Errorf("%w: log level %q", ErrBadArgument, levelName)}
	}
	app.logger = logging.New(logging.Config{Level: level, Output: app.opts.LogOutput, Prefix: "doccore"})

	theme, err := settings.BuildTheme()
	if err != nil {
		return &InitError{Component: "theme", Err: err}
	}

	content := document.Unsaved()
	text := ""
	if app.opts.File != "" {
		content = document.File(app.opts.File)
		data, err := os.ReadFile(app.opts.File)
		switch {
		case err == nil:
			text = string(data)
		case errors.Is(err, os.ErrNotExist):
			app.logger.Info("new file %s", app.opts.File)
		default:
			return &InitError{Component: "document", Err: err}
		}
	}

	app.router = event.NewRouter(event.WithLogger(app.logger))
	app.doc = document.New(content, app.router,
		document.WithLogger(app.logger),
		document.WithLayoutConfig(settings.Layout()),
		document.WithTheme(theme),
		document.WithEditor(editor.New(editor.WithClipboard(app.clipboard()))),
	)
	app.mbox, err = app.router.Register(app.doc.ID())
	if err != nil {
		return &InitError{Component: "router", Err: err}
	}

	app.doc.LoadContent(text)
	app.cursor = cursor.New(cursor.Normal{Offset: 0})
	return nil
}

func (app *Application) clipboard() editor.Clipboard {
	if app.opts.SystemClipboard {
		sys := clipboard.NewSystem(app.logger)
		if sys.Available() {
			return sys
		}
		app.logger.Warn("system clipboard unavailable, using memory clipboard")
	}
	return clipboard.NewMemory()
}

// Document returns the open document.
func (app *Application) Document() *document.Document {
	return app.doc
}

// Cursor returns the document cursor.
func (app *Application) Cursor() *cursor.Cursor {
	return app.cursor
}

// Run executes script lines read from in until it ends, a line fails, a
// "quit" line is read or ctx is done. Parse results and reloaded settings
// are applied between lines. When the script ends, Run waits for
// outstanding parses and applies their results before returning.
func (app *Application) Run(ctx context.Context, in io.Reader) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if app.opts.Watch && app.opts.ConfigPath != "" {
		id := app.doc.ID()
		err := config.Watch(ctx, app.opts.ConfigPath, app.logger, func(s config.Settings) {
			if err := app.router.Submit(id, settingsChanged{settings: s}); err != nil {
				app.logger.Warn("forwarding settings: %v", err)
			}
		})
		if err != nil {
			return &InitError{Component: "watcher", Err: err}
		}
	}

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				scanErr <- nil
				return
			}
		}
		scanErr <- sc.Err()
	}()

	lineNo := 0
	for {
		select {
		case <-ctx.Done():
			return nil

		case msg, ok := <-app.mbox.C():
			if !ok {
				return nil
			}
			app.handleMessage(msg)

		case <-app.mbox.Overflow():
			app.mbox.Drain(app.handleMessage)

		case line, ok := <-lines:
			if !ok {
				app.settle()
				return <-scanErr
			}
			lineNo++
			err := app.Exec(line)
			if errors.Is(err, ErrQuit) {
				app.settle()
				return nil
			}
			if err != nil {
				lerr := &LineError{Line: lineNo, Text: strings.TrimSpace(line), Err: err}
				if !app.opts.ContinueOnError {
					return lerr
				}
				app.logger.Warn("%v", lerr)
			}
		}
	}
}

// settle waits for in-flight parses and applies whatever they delivered.
func (app *Application) settle() {
	app.doc.Wait()
	app.mbox.Drain(app.handleMessage)
}

func (app *Application) handleMessage(msg event.Message) {
	switch p := msg.Payload.(type) {
	case settingsChanged:
		app.applySettings(p.settings)
	default:
		app.doc.HandleMessage(msg)
	}
}

// applySettings installs reloaded settings. Settings with a bad theme are
// rejected as a whole.
func (app *Application) applySettings(s config.Settings) {
	theme, err := s.BuildTheme()
	if err != nil {
		app.logger.Error("ignoring settings: %v", err)
		return
	}
	app.settings = s
	app.doc.SetConfig(s.Layout(), theme)
	if app.opts.LogLevel == "" {
		app.logger.SetLevel(s.Level())
	}
}

// Settings returns the settings in effect.
func (app *Application) Settings() config.Settings {
	return app.settings
}

// WriteState writes the cursor, the revision and the text to w.
func (app *Application) WriteState(w io.Writer) error {
	text := app.doc.Buffer().Text()
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, err := fmt.Fprintf(w, "%s rev=%d\n%s", app.cursor, app.doc.Rev(), text)
	return err
}

// Shutdown releases the router. It is safe to call more than once.
func (app *Application) Shutdown() {
	app.router.Close()
}
