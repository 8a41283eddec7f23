// Package invocation classifies a qtchooser command line into an operating plan.
package invocation

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/conn-castle/qtchooser/internal/config"
	"github.com/conn-castle/qtchooser/internal/messages"
)

// Mode is the operating mode selected for an invocation.
type Mode int

// PrintHelp, RunTool, ListVersions, and PrintEnvironment are the operating modes.
const (
	PrintHelp Mode = iota
	RunTool
	ListVersions
	PrintEnvironment
)

func (m Mode) String() string {
	switch m {
	case PrintHelp:
		return "print-help"
	case RunTool:
		return "run-tool"
	case ListVersions:
		return "list-versions"
	case PrintEnvironment:
		return "print-env"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

const (
	selectorPrefix = "qt"
	runToolPrefix  = "run-tool="
	listVersions   = "list-versions"
	listShort      = "l"
	printEnvPrefix = "print-env"
	help           = "help"
)

// Plan is the result of classifying one invocation.
type Plan struct {
	Mode Mode
	// Selector names the toolchain; empty selects the default one.
	Selector string
	// ToolName is the executable to run; only set for RunTool.
	ToolName string
	// Args are forwarded to the tool verbatim; only set for RunTool.
	Args []string
}

// Environment supplies environment variables to the classifier.
type Environment interface {
	Getenv(key string) string
}

// UsageError reports a command line qtchooser cannot act on.
type UsageError struct {
	msg string
}

func (e *UsageError) Error() string {
	return e.msg
}

func usageErrorf(format string, args ...any) error {
	return &UsageError{msg: fmt.Sprintf(format, args...)}
}

// OwnName returns the dispatcher's canonical executable name on this platform.
func OwnName() string {
	if runtime.GOOS == "windows" {
		return messages.RootUse + ".exe"
	}
	return messages.RootUse
}

// InvokedAs returns the final path segment of argv0.
func InvokedAs(argv0 string) string {
	return filepath.Base(argv0)
}

// Classify decides what an invocation should do.
// args[0] is the invocation path; ownName is the dispatcher's canonical name.
// When args[0] names anything else, the invocation forwards to that tool.
func Classify(args []string, env Environment, ownName string) (Plan, error) {
	if len(args) == 0 {
		return Plan{}, errors.New(messages.InvocationMissingArgv0)
	}

	plan := Plan{Mode: PrintHelp, Selector: env.Getenv(config.EnvSelect)}
	toolFixed := false
	if invokedAs := InvokedAs(args[0]); invokedAs != ownName {
		plan.Mode = RunTool
		plan.ToolName = invokedAs
		toolFixed = true
	} else if tool := env.Getenv(config.EnvRunTool); tool != "" {
		plan.ToolName = tool
		toolFixed = true
	}

	rest := args[1:]
	idx := 0
scan:
	for ; idx < len(rest); idx++ {
		arg := rest[idx]
		if isTerminator(arg) {
			idx++
			break
		}
		opt, ok := optionName(arg)
		if !ok {
			break
		}
		switch {
		case strings.HasPrefix(opt, selectorPrefix):
			plan.Selector = selectorValue(opt)
		case !toolFixed && strings.HasPrefix(opt, runToolPrefix):
			plan.ToolName = strings.TrimPrefix(opt, runToolPrefix)
			plan.Mode = RunTool
			toolFixed = true
		default:
			break scan
		}
	}
	remaining := rest[idx:]

	if plan.Mode == RunTool || plan.ToolName != "" {
		if plan.ToolName == "" {
			return Plan{}, usageErrorf(messages.InvocationNoToolSelected)
		}
		plan.Mode = RunTool
		plan.Args = slices.Clone(remaining)
		return plan, nil
	}
	return classifySelf(plan, remaining)
}

// classifySelf handles the arguments left when qtchooser runs under its own name.
// The last recognized flag wins; anything unrecognized is a usage error.
// Unknown options are reported with a single leading dash whatever the user typed.
func classifySelf(plan Plan, args []string) (Plan, error) {
	plan.Mode = PrintHelp
	for _, arg := range args {
		opt, ok := optionName(arg)
		if !ok {
			return Plan{}, usageErrorf(messages.InvocationUnknownArgumentFmt, arg)
		}
		switch {
		case opt == listVersions || opt == listShort:
			plan.Mode = ListVersions
		case strings.HasPrefix(opt, printEnvPrefix):
			plan.Mode = PrintEnvironment
		case opt == help:
		default:
			return Plan{}, usageErrorf(messages.InvocationUnknownOptionFmt, "-"+opt)
		}
	}
	return plan, nil
}

// isTerminator reports whether arg is a bare run of one to three dashes.
func isTerminator(arg string) bool {
	return arg != "" && len(arg) <= 3 && strings.Trim(arg, "-") == ""
}

// optionName strips one or two leading dashes from arg.
// It reports false for arguments that do not start with a dash.
func optionName(arg string) (string, bool) {
	if !strings.HasPrefix(arg, "-") {
		return "", false
	}
	opt := arg[1:]
	return strings.TrimPrefix(opt, "-"), true
}

// selectorValue extracts the selector from "qt=<v>" or "qt<v>".
func selectorValue(opt string) string {
	value := strings.TrimPrefix(opt, selectorPrefix)
	if strings.HasPrefix(value, "=") {
		return value[1:]
	}
	return value
}
