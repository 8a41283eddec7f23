//go:build windows

package dispatch

import (
	"errors"
	"os"
	"os/exec"
)

// execBinary runs the target binary with inherited stdio and exits with its status.
// Windows has no exec, so the child runs to completion instead.
func execBinary(path string, args []string, env []string, exit func(int)) error {
	cmd := exec.Command(path)
	cmd.Args = args
	cmd.Env = env
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return err
		}
		exit(exitErr.ExitCode())
		return nil
	}
	exit(0)
	return nil
}
