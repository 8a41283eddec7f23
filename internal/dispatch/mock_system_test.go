package dispatch

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// errNotMocked is returned when a testSystem method is called without a mock function set.
var errNotMocked = errors.New("testSystem: method not mocked")

// testSystem provides a mock System for unit tests.
//
// Fallback behavior:
//   - ExecBinary: returns errNotMocked (fail-fast); tests must never replace the test binary.
//   - Getenv, Environ, HomeDir: read Env/Home only, so tests never see the real environment.
//   - ReadDir, Stat, Open: fall back to RealSystem so fixtures can live in t.TempDir().
type testSystem struct {
	RealSystem

	Env  map[string]string
	Home string

	ReadDirFunc    func(name string) ([]os.DirEntry, error)
	OpenFunc       func(name string) (io.ReadCloser, error)
	ExecBinaryFunc func(path string, args []string, env []string, exit func(int)) error

	readDirCalls int
}

func (s *testSystem) Getenv(key string) string {
	return s.Env[key]
}

func (s *testSystem) Environ() []string {
	env := make([]string, 0, len(s.Env))
	for key, value := range s.Env {
		env = append(env, key+"="+value)
	}
	return env
}

func (s *testSystem) HomeDir() (string, error) {
	return s.Home, nil
}

func (s *testSystem) ReadDir(name string) ([]os.DirEntry, error) {
	s.readDirCalls++
	if s.ReadDirFunc != nil {
		return s.ReadDirFunc(name)
	}
	return s.RealSystem.ReadDir(name)
}

func (s *testSystem) Open(name string) (io.ReadCloser, error) {
	if s.OpenFunc != nil {
		return s.OpenFunc(name)
	}
	return s.RealSystem.Open(name)
}

func (s *testSystem) ExecBinary(path string, args []string, env []string, exit func(int)) error {
	if s.ExecBinaryFunc != nil {
		return s.ExecBinaryFunc(path, args, env, exit)
	}
	return fmt.Errorf("%w: ExecBinary", errNotMocked)
}
