package main

import (
	"errors"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/conn-castle/qtchooser/internal/dispatch"
	"github.com/conn-castle/qtchooser/internal/invocation"
	"github.com/conn-castle/qtchooser/internal/messages"
	"github.com/conn-castle/qtchooser/internal/terminal"
)

// GlobalConfigDirs is a list-separated set of descriptor directories searched after the
// XDG locations. It is overridden at build time.
var GlobalConfigDirs = ""

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// runMain runs qtchooser against the real OS, exiting on fatal errors.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	runMainWithSystem(dispatch.RealSystem{}, args, stdout, stderr, exit)
}

// runMainWithSystem classifies and dispatches args, reporting any failure as
// "<invoked name>: <message>" on stderr followed by exit(1).
func runMainWithSystem(sys dispatch.System, args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	if len(args) == 0 {
		args = []string{invocation.OwnName()}
	}
	err := execute(sys, args, stdout, stderr, exit)
	if err == nil || errors.Is(err, dispatch.ErrDispatched) {
		return
	}
	reportError(sys, stderr, invocation.InvokedAs(args[0]), err)
	exit(1)
}

// reportError writes one diagnostic line, in red when stderr is a terminal.
func reportError(sys dispatch.System, stderr io.Writer, invokedAs string, err error) {
	diag := color.New(color.FgRed)
	if terminal.IsTerminal(stderr) && sys.Getenv("NO_COLOR") == "" {
		diag.EnableColor()
	} else {
		diag.DisableColor()
	}
	_, _ = diag.Fprintf(stderr, messages.DiagnosticFmt, invokedAs, err)
}
