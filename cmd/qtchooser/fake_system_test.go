package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/conn-castle/qtchooser/internal/config"
	"github.com/conn-castle/qtchooser/internal/dispatch"
)

var errExecNotMocked = errors.New("fakeSystem: ExecBinary not mocked")

// fakeSystem isolates the environment and exec while reading fixtures from disk.
type fakeSystem struct {
	dispatch.RealSystem

	env      map[string]string
	home     string
	execFunc func(path string, args []string, env []string, exit func(int)) error

	readDirCalls int
}

func (s *fakeSystem) Getenv(key string) string { return s.env[key] }

func (s *fakeSystem) Environ() []string {
	out := make([]string, 0, len(s.env))
	for k, v := range s.env {
		out = append(out, k+"="+v)
	}
	return out
}

func (s *fakeSystem) HomeDir() (string, error) { return s.home, nil }

func (s *fakeSystem) ReadDir(name string) ([]os.DirEntry, error) {
	s.readDirCalls++
	return s.RealSystem.ReadDir(name)
}

func (s *fakeSystem) ExecBinary(path string, args []string, env []string, exit func(int)) error {
	if s.execFunc == nil {
		return errExecNotMocked
	}
	return s.execFunc(path, args, env, exit)
}

// newFakeSystem returns a system whose local descriptor dir and single system
// descriptor dir live under t.TempDir().
func newFakeSystem(t *testing.T) (sys *fakeSystem, localDir string, systemDir string) {
	t.Helper()
	root := t.TempDir()
	configHome := filepath.Join(root, "home", ".config")
	xdg := filepath.Join(root, "xdg")
	sys = &fakeSystem{
		env: map[string]string{
			config.EnvConfigHome: configHome,
			config.EnvConfigDirs: xdg,
		},
		home: filepath.Join(root, "home"),
	}
	return sys, filepath.Join(configHome, config.SubDir), filepath.Join(xdg, config.SubDir)
}

// exitRecorder captures exit codes without terminating the test.
type exitRecorder struct {
	codes []int
}

func (r *exitRecorder) exit(code int) {
	r.codes = append(r.codes, code)
}

