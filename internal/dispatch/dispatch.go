package dispatch

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/conn-castle/qtchooser/internal/config"
	"github.com/conn-castle/qtchooser/internal/envfile"
	"github.com/conn-castle/qtchooser/internal/invocation"
	"github.com/conn-castle/qtchooser/internal/messages"
	"github.com/conn-castle/qtchooser/internal/toolchain"
)

// EnvKeySelect, EnvKeyToolDir, and EnvKeyLibDir are the keys printed by -print-env.
const (
	EnvKeySelect  = "QT_SELECT"
	EnvKeyToolDir = "QTTOOLDIR"
	EnvKeyLibDir  = "QTLIBDIR"
)

// ErrDispatched signals that execution has been handed off to another binary.
var ErrDispatched = errors.New(messages.DispatchErrDispatched)

// Options carries build-time settings into dispatch.
type Options struct {
	// GlobalDirs is a list-separated set of descriptor directories searched last.
	GlobalDirs string
}

// NotFoundError reports that no usable descriptor matched the selector.
type NotFoundError struct {
	Selector string
	Err      error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf(messages.DispatchNoInstallationFmt, e.Selector)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// ExecError reports that the resolved tool could not be executed.
type ExecError struct {
	Path string
	Err  error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf(messages.DispatchExecFailedFmt, e.Path, e.Err)
}

func (e *ExecError) Unwrap() error {
	return e.Err
}

// Run carries out plan, writing list, environment, or help output to stdout.
// For RunTool it returns ErrDispatched once execution has been handed off; on Unix a
// successful handoff never returns at all.
func Run(sys System, plan invocation.Plan, opts Options, stdout io.Writer, exit func(int)) error {
	if sys == nil {
		return errors.New(messages.DispatchSystemRequired)
	}
	if exit == nil {
		return errors.New(messages.DispatchExitHandlerRequired)
	}

	switch plan.Mode {
	case invocation.PrintHelp:
		_, err := io.WriteString(stdout, messages.Usage)
		return err
	case invocation.ListVersions:
		return listVersions(sys, opts, stdout)
	case invocation.PrintEnvironment:
		return printEnvironment(sys, plan.Selector, opts, stdout)
	case invocation.RunTool:
		return runTool(sys, plan, opts, exit)
	default:
		return fmt.Errorf(messages.DispatchUnknownModeFmt, int(plan.Mode))
	}
}

// listVersions prints every discovered toolchain name, one per line.
func listVersions(sys System, opts Options, stdout io.Writer) error {
	for _, name := range toolchain.ListAvailable(sys, searchPath(sys, opts)) {
		if _, err := fmt.Fprintln(stdout, name); err != nil {
			return err
		}
	}
	return nil
}

// printEnvironment prints the selected toolchain's name and directories as KEY="value" lines.
func printEnvironment(sys System, selector string, opts Options, stdout io.Writer) error {
	d, err := selectToolchain(sys, selector, opts)
	if err != nil {
		return err
	}
	return envfile.Write(stdout,
		envfile.Pair{Key: EnvKeySelect, Value: d.Name},
		envfile.Pair{Key: EnvKeyToolDir, Value: d.ToolsDir},
		envfile.Pair{Key: EnvKeyLibDir, Value: d.LibsDir},
	)
}

// runTool replaces the process with <ToolsDir>/<ToolName>, forwarding plan.Args.
func runTool(sys System, plan invocation.Plan, opts Options, exit func(int)) error {
	d, err := selectToolchain(sys, plan.Selector, opts)
	if err != nil {
		return err
	}

	path := filepath.Join(d.ToolsDir, plan.ToolName)
	execArgs := append([]string{path}, plan.Args...)
	if err := sys.ExecBinary(path, execArgs, sys.Environ(), exit); err != nil {
		return &ExecError{Path: path, Err: err}
	}
	return ErrDispatched
}

// selectToolchain resolves selector on the search path.
// Missing and malformed descriptors become *NotFoundError; unreadable ones pass through.
func selectToolchain(sys System, selector string, opts Options) (toolchain.Descriptor, error) {
	norm := config.HostNormalizer{HomeDir: sys.HomeDir}
	d, err := toolchain.Resolve(sys, norm, searchPath(sys, opts), selector)
	if errors.Is(err, toolchain.ErrNotFound) {
		return toolchain.Descriptor{}, &NotFoundError{Selector: selector, Err: err}
	}
	return d, err
}

func searchPath(sys System, opts Options) []string {
	return config.SearchPath(sys, config.HostNormalizer{HomeDir: sys.HomeDir}, opts.GlobalDirs)
}
