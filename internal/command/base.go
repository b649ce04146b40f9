package command

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dasch-swiss/ark-resolver/internal/pkg/arkerrors"
	"github.com/dasch-swiss/ark-resolver/internal/pkg/formatter"
	applog "github.com/dasch-swiss/ark-resolver/internal/pkg/log"
)

// BaseCommand is what each Command implementation must embed.
// This allows new Commands to not have to worry about dependency injection.
// BaseCommand intentionally does not implement the Command interface,
// to "force" commands to implement required methods.
type BaseCommand struct {
	*Context
	rootCmd *cobra.Command
}

func NewBaseCommand(cmdContext *Context) *BaseCommand {
	return &BaseCommand{Context: cmdContext, rootCmd: &cobra.Command{}}
}

func (b *BaseCommand) command() *cobra.Command { return b.rootCmd }

func (b *BaseCommand) Flags() *pflag.FlagSet { return b.rootCmd.Flags() }

func (b *BaseCommand) PersistentFlags() *pflag.FlagSet { return b.rootCmd.PersistentFlags() }

func (b *BaseCommand) PostRun(cmd *cobra.Command, args []string) arkerrors.ArkError { return nil }

func (b *BaseCommand) HelpFunc(cmd *cobra.Command, examples []string) {
	formatter.Println(formatter.Stdout, helpTemplate(cmd, examples))
}

func (b *BaseCommand) UsageFunc(cmd *cobra.Command, examples []string) {
	formatter.Println(formatter.Stderr, usageTemplate(cmd, examples))
}

func (b *BaseCommand) Init() error { return nil }

func (b *BaseCommand) Examples() []string { return []string{} }

func (b *BaseCommand) Long() string { return "" }

func (b *BaseCommand) init(cmd Command) {
	b.rootCmd.PersistentPreRunE = func(cobraCmd *cobra.Command, args []string) error {
		b.SetLogger(applog.New(b.Context.Debug(), nil))
		return nil
	}
}
