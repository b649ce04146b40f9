package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dasch-swiss/ark-resolver/internal/command"
	"github.com/dasch-swiss/ark-resolver/internal/command/root"
	"github.com/dasch-swiss/ark-resolver/internal/pkg/formatter"
)

func main() {
	os.Exit(run())
}

func run() int {
	debug := os.Getenv("ARK_RESOLVER_DEBUG") != ""
	noColor := os.Getenv("NO_COLOR") != ""

	commandCtx := command.NewCommandContext(debug, noColor)

	rootCmd, err := command.RootCommandToCobra(root.NewRootCommand(commandCtx))
	if err != nil {
		formatter.PrintError(err, nil)
		return 1
	}

	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, os.Interrupt)
	defer stop()

	cmd, cmdErr := rootCmd.ExecuteContextC(sigCtx)
	if cmdErr != nil {
		formatter.PrintError(cmdErr, cmd)
		return formatter.ExitCode(cmdErr)
	}
	return 0
}
