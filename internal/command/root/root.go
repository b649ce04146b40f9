// Package root wires the single ARK resolver command: a cobra command with
// no subcommands, exposing the same mutually exclusive modes as the
// original command-line tool (serve, convert, or self-test).
package root

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/samber/mo"
	"github.com/spf13/cobra"

	"github.com/dasch-swiss/ark-resolver/internal/ark/arkformat"
	"github.com/dasch-swiss/ark-resolver/internal/ark/grammar"
	"github.com/dasch-swiss/ark-resolver/internal/ark/httpserver"
	"github.com/dasch-swiss/ark-resolver/internal/ark/redirector"
	"github.com/dasch-swiss/ark-resolver/internal/ark/selftest"
	"github.com/dasch-swiss/ark-resolver/internal/ark/settings"
	"github.com/dasch-swiss/ark-resolver/internal/command"
	"github.com/dasch-swiss/ark-resolver/internal/pkg/arkerrors"
	"github.com/dasch-swiss/ark-resolver/internal/pkg/flags"
	"github.com/dasch-swiss/ark-resolver/internal/pkg/formatter"
	"github.com/dasch-swiss/ark-resolver/internal/pkg/term"
)

const defaultConfigFilename = "ark-config.ini"

type Command struct {
	*command.BaseCommand

	flags rootCommandFlags
}

type rootCommandFlags struct {
	configPath flags.FileFlag
	server     flags.BoolFlag
	ark        flags.StringFlag
	iri        flags.StringFlag
	number     flags.IntegerFlag
	test       flags.BoolFlag
	date       flags.StringFlag
	project    flags.StringFlag
}

var _ command.Command = (*Command)(nil)

func NewRootCommand(cmdContext *command.Context) *Command {
	return &Command{BaseCommand: command.NewBaseCommand(cmdContext)}
}

func (c *Command) Use() string {
	return "ark-resolver"
}

func (c *Command) Short() string {
	return "Convert between repository resource identifiers and ARK URLs"
}

func (c *Command) Long() string {
	return `Convert between repository resource identifiers and ARK URLs,
or run the resolver as an HTTP redirect server.

Exactly one of --server, --ark, --iri, --number, or --test may be given.
With none of them, this prints usage information.`
}

func (c *Command) Args() command.PositionalArgs {
	return command.ExactArgs(0)
}

func (c *Command) Examples() []string {
	return []string{
		"--server  # run the resolver as an HTTP server",
		"--ark http://ark.dasch.swiss/ark:/72163/1/0001  # resolve an ARK URL to its redirect target",
		"--iri http://rdfh.ch/0001/cmfk1DMHRBiR4-_6HXpEFA  # build an ARK URL for a resource IRI",
		"--number 1 --project 0803  # build an ARK URL for a legacy numeric resource id",
		"--test  # run the built-in self-test vectors",
	}
}

func (c *Command) Init() error {
	c.flags.configPath = flags.NewFileFlag(c.Flags(), false, "config", "c", defaultConfigFilename, "config file")
	c.flags.server = flags.NewBoolFlag(c.Flags(), "server", "s", false, "start the resolver HTTP server")
	c.flags.ark = flags.NewStringFlag(c.Flags(), false, "ark", "a", "", "resolve an ARK URL")
	c.flags.iri = flags.NewStringFlag(c.Flags(), false, "iri", "i", "", "build an ARK URL for a resource IRI")
	c.flags.number = flags.NewIntegerFlag(c.Flags(), false, "number", "n", mo.None[int64](), "build an ARK URL for a legacy numeric resource id (with --project)", mo.Some[int64](0), mo.None[int64]())
	c.flags.test = flags.NewBoolFlag(c.Flags(), "test", "t", false, "run the built-in self-test vectors")
	c.flags.date = flags.NewStringFlag(c.Flags(), false, "date", "d", "", "version timestamp (with --iri or --number)")
	c.flags.project = flags.NewStringFlag(c.Flags(), false, "project", "p", "", "project id (with --number)")
	return nil
}

func (c *Command) PreRun(cmd *cobra.Command, args []string) arkerrors.ArkError { return nil }

func (c *Command) Run(cmd *cobra.Command, args []string) arkerrors.ArkError {
	mode, err := c.resolveMode()
	if err != nil {
		return err
	}

	project, err := c.flags.project.Value()
	if err != nil {
		return err
	}
	if project != "" && mode != modeNumber {
		return arkerrors.NewUsageError(fmt.Errorf("--project requires --number"))
	}

	if mode == modeNone {
		return arkerrors.NewArkError(cmd.Help())
	}

	configPath, flagErr := c.flags.configPath.Value()
	if flagErr != nil {
		return flagErr
	}

	s, loadErr := settings.Load(configPath)
	if loadErr != nil {
		return arkerrors.NewArkError(fmt.Errorf("loading %s: %w", configPath, loadErr))
	}

	switch mode {
	case modeServer:
		return c.runServer(cmd, s)
	case modeTest:
		return c.runTest()
	case modeIri:
		return c.runIri(s)
	case modeNumber:
		return c.runNumber(s)
	case modeArk:
		return c.runArk(s)
	default:
		return nil
	}
}

type mode int

const (
	modeNone mode = iota
	modeServer
	modeArk
	modeIri
	modeNumber
	modeTest
)

// resolveMode enforces the same mutually exclusive set of flags the
// original tool's argument group did.
func (c *Command) resolveMode() (mode, arkerrors.ArkError) {
	server, err := c.flags.server.Value()
	if err != nil {
		return modeNone, err
	}
	ark, err := c.flags.ark.Value()
	if err != nil {
		return modeNone, err
	}
	iri, err := c.flags.iri.Value()
	if err != nil {
		return modeNone, err
	}
	number, err := c.flags.number.Value()
	if err != nil {
		return modeNone, err
	}
	test, err := c.flags.test.Value()
	if err != nil {
		return modeNone, err
	}

	names := []string{}
	selected := modeNone
	if server {
		names = append(names, "server")
		selected = modeServer
	}
	if ark != "" {
		names = append(names, "ark")
		selected = modeArk
	}
	if iri != "" {
		names = append(names, "iri")
		selected = modeIri
	}
	if number.IsPresent() {
		names = append(names, "number")
		selected = modeNumber
	}
	if test {
		names = append(names, "test")
		selected = modeTest
	}

	if len(names) > 1 {
		return modeNone, flags.NewConflictingFlagsError(names[0], names[1])
	}
	return selected, nil
}

func (c *Command) runServer(cmd *cobra.Command, s *settings.Settings) arkerrors.ArkError {
	// Template-vocabulary mistakes are configuration errors; fail before
	// binding the port rather than answering live requests with them.
	if validateErr := s.Validate(); validateErr != nil {
		return arkerrors.NewArkError(validateErr)
	}

	srv := httpserver.New(s, c.Logger("server"))
	addr := s.LocalServerHost + ":" + s.LocalServerPort

	httpSrv := &http.Server{Addr: addr, Handler: srv.Handler()}
	errCh := make(chan error, 1)
	go func() {
		if serveErr := httpSrv.ListenAndServe(); serveErr != nil && !errors.Is(serveErr, http.ErrServerClosed) {
			errCh <- serveErr
		}
	}()

	formatter.Printf(formatter.Stdout, "listening on %s\n", addr)

	select {
	case <-cmd.Context().Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := httpSrv.Shutdown(shutdownCtx); shutdownErr != nil {
			return arkerrors.ParseContextError(shutdownErr)
		}
		return nil
	case serveErr := <-errCh:
		return arkerrors.NewArkError(serveErr)
	}
}

func (c *Command) runTest() arkerrors.ArkError {
	failures := selftest.Run()
	if len(failures) == 0 {
		formatter.Println(formatter.Stdout, "OK")
		return nil
	}
	for _, f := range failures {
		formatter.Println(formatter.Stderr, f.String())
	}
	return arkerrors.NewArkError(fmt.Errorf("%d self-test vector(s) failed", len(failures)))
}

func (c *Command) runIri(s *settings.Settings) arkerrors.ArkError {
	iri, err := c.flags.iri.Value()
	if err != nil {
		return err
	}
	date, err := c.flags.date.Value()
	if err != nil {
		return err
	}

	url, convErr := arkformat.FromResourceIri(s.ArkResolverHost, s.ArkNaan, iri, date)
	if convErr != nil {
		return arkerrors.NewArkError(convErr)
	}
	formatter.Println(formatter.Stdout, renderLink(url))
	return nil
}

func (c *Command) runNumber(s *settings.Settings) arkerrors.ArkError {
	number, err := c.flags.number.Value()
	if err != nil {
		return err
	}
	project, err := c.flags.project.Value()
	if err != nil {
		return err
	}
	if project == "" {
		return arkerrors.NewUsageError(fmt.Errorf("--project is required with --number"))
	}
	date, err := c.flags.date.Value()
	if err != nil {
		return err
	}

	url, convErr := arkformat.FromLegacyNumericId(s.ArkResolverHost, s.ArkNaan, number.MustGet(), project, date)
	if convErr != nil {
		return arkerrors.NewArkError(convErr)
	}
	formatter.Println(formatter.Stdout, renderLink(url))
	return nil
}

func (c *Command) runArk(s *settings.Settings) arkerrors.ArkError {
	arkURL, err := c.flags.ark.Value()
	if err != nil {
		return err
	}

	g := grammar.New(s.ArkResolverHost, s.ArkNaan)
	info, parseErr := g.Parse(arkURL)
	if parseErr != nil {
		return arkerrors.NewArkError(parseErr)
	}

	target, resolveErr := redirector.New(s).Resolve(info)
	if resolveErr != nil {
		return arkerrors.NewArkError(resolveErr)
	}
	formatter.Println(formatter.Stdout, renderLink(target))
	return nil
}

// renderLink renders url as a clickable terminal hyperlink when stdout is a
// TTY, and as plain text otherwise.
func renderLink(url string) string {
	if formatter.StdoutIsTTY() {
		return term.RenderLink(url, url)
	}
	return url
}
