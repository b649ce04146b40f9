package formatter

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dasch-swiss/ark-resolver/internal/pkg/arkerrors"
	"github.com/dasch-swiss/ark-resolver/internal/pkg/styles"
)

// PrintError prints an error in a standardized format.
// Takes an optional cobra command to print usage information if the error should print usage.
func PrintError(err error, cmd *cobra.Command) {
	var arkErr arkerrors.ArkError
	if errors.As(err, &arkErr) {
		printArkError(arkErr, cmd)
		return
	}
	fmt.Fprintln(Stderr, err.Error())
}

// printArkError prints a domain error in a standardized format.
func printArkError(err arkerrors.ArkError, cmd *cobra.Command) {
	fmt.Fprintf(Stderr, "[%s]\n", styles.GlobalStyles.Danger.Render(err.Title()))
	fmt.Fprintf(Stderr, "%s\n", styles.GlobalStyles.Warning.Render(err.Error()))
	if cmd != nil && err.ShouldPrintUsage() {
		_ = cmd.Usage()
	}
}
