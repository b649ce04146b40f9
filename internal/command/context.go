package command

import (
	"log/slog"

	"github.com/dasch-swiss/ark-resolver/internal/pkg/formatter"
	"github.com/dasch-swiss/ark-resolver/internal/pkg/styles"
)

// Context is the set of dependencies injected into each command.
// Unlike a long-running service, the ARK CLI has no store or remote client
// to carry: just the ambient concerns (logging, color) shared by every mode.
type Context struct {
	logger  *slog.Logger
	debug   bool
	noColor bool
}

// ContextOpts are functional options for configuring Context.
type ContextOpts func(*Context)

// NewCommandContext builds a Context. debug controls the logger's level;
// noColor forces styled output off regardless of TTY detection.
func NewCommandContext(debug, noColor bool, opts ...ContextOpts) *Context {
	c := &Context{logger: slog.Default(), debug: debug, noColor: noColor}
	for _, opt := range opts {
		opt(c)
	}

	if c.noColor || styles.ColorDisabled() || !formatter.StdoutIsTTY() {
		styles.DisableStyles()
	}
	if styles.ColorForced() {
		styles.EnableStyles()
	}

	return c
}

// WithLogger injects a logger into the Context. Intended for tests.
func WithLogger(l *slog.Logger) ContextOpts {
	return func(c *Context) { c.logger = l }
}

// Debug reports whether verbose logging was requested.
func (c *Context) Debug() bool { return c.debug }

// SetLogger sets the logger used by commands created with this context.
func (c *Context) SetLogger(l *slog.Logger) { c.logger = l }

// Logger returns a logger pre-populated with the command name field.
func (c *Context) Logger(cmdName string) *slog.Logger {
	return c.logger.With("cmd", cmdName)
}
