package formatter

import (
	"fmt"
	"io"
	"os"

	"github.com/dasch-swiss/ark-resolver/internal/pkg/term"
)

var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func StdoutIsTTY() bool {
	return term.IsTTY(Stdout)
}

func Printf(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, format, a...)
}

func Println(w io.Writer, a ...any) {
	fmt.Fprintln(w, a...)
}
