//go:build unix

package dispatch

import "golang.org/x/sys/unix"

var syscallExec = unix.Exec

// execBinary replaces the current process with the target binary.
// It only returns on failure.
func execBinary(path string, args []string, env []string, _ func(int)) error {
	return syscallExec(path, args, env)
}
