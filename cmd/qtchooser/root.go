package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conn-castle/qtchooser/internal/dispatch"
	"github.com/conn-castle/qtchooser/internal/invocation"
	"github.com/conn-castle/qtchooser/internal/messages"
)

// execute runs the root command for args, where args[0] is the invocation path.
func execute(sys dispatch.System, args []string, stdout io.Writer, stderr io.Writer, exit func(int)) error {
	cmd := newRootCmd(sys, args[0], exit)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	rest := args[1:]
	// cobra claims its completion request commands before RunE runs, even with flag
	// parsing disabled. Those tokens belong to the classifier like any other argument.
	if len(rest) > 0 && strings.HasPrefix(rest[0], cobra.ShellCompRequestCmd) {
		return cmd.RunE(cmd, rest)
	}
	cmd.SetArgs(rest)
	return cmd.Execute()
}

// newRootCmd builds the qtchooser command.
// Flag parsing is disabled: dispatcher options use single-dash long names and anything
// unrecognized must reach the wrapped tool untouched, so the classifier sees every argument.
func newRootCmd(sys dispatch.System, argv0 string, exit func(int)) *cobra.Command {
	return &cobra.Command{
		Use:                messages.RootUse,
		Short:              messages.RootShort,
		Long:               messages.Usage,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			argv := append([]string{argv0}, args...)
			plan, err := invocation.Classify(argv, sys, invocation.OwnName())
			if err != nil {
				return err
			}
			opts := dispatch.Options{GlobalDirs: GlobalConfigDirs}
			return dispatch.Run(sys, plan, opts, cmd.OutOrStdout(), exit)
		},
	}
}
