package dispatch

import (
	"io"
	"os"

	"github.com/mitchellh/go-homedir"
)

// System abstracts OS operations needed by dispatch.
// Tests substitute a fake so no real environment or exec is touched.
type System interface {
	Getenv(key string) string
	Environ() []string
	HomeDir() (string, error)
	ReadDir(name string) ([]os.DirEntry, error)
	Stat(name string) (os.FileInfo, error)
	Open(name string) (io.ReadCloser, error)
	ExecBinary(path string, args []string, env []string, exit func(int)) error
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// Getenv returns the value of the environment variable named by key.
func (RealSystem) Getenv(key string) string {
	return os.Getenv(key)
}

// Environ returns a copy of strings representing the environment.
func (RealSystem) Environ() []string {
	return os.Environ()
}

// HomeDir returns the caller's home directory.
func (RealSystem) HomeDir() (string, error) {
	return homedir.Dir()
}

// ReadDir lists the named directory.
func (RealSystem) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

// Stat follows symlinks and describes the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Open opens the named file for reading.
func (RealSystem) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}

// ExecBinary replaces the current process with the provided binary.
func (RealSystem) ExecBinary(path string, args []string, env []string, exit func(int)) error {
	return execBinary(path, args, env, exit)
}
