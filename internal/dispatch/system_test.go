//go:build unix

package dispatch

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/qtchooser/internal/testutil"
)

// TestRealSystem_ExecBinary verifies that RealSystem.ExecBinary replaces the process.
// The exec happens in a re-executed copy of the test binary.
func TestRealSystem_ExecBinary(t *testing.T) {
	if os.Getenv("GO_TEST_REALSYSTEM_EXECBINARY_SUBPROCESS") == "1" {
		stub := os.Getenv("GO_TEST_REALSYSTEM_EXECBINARY_STUB")
		err := RealSystem{}.ExecBinary(stub, []string{stub}, os.Environ(), nil)
		// If ExecBinary returns, it failed.
		if err != nil {
			os.Exit(1)
		}
		os.Exit(2)
		return
	}

	stub := testutil.WriteStubWithExit(t, t.TempDir(), "qmake", 7)
	cmd := exec.Command(os.Args[0], "-test.run=^TestRealSystem_ExecBinary$")
	cmd.Env = append(os.Environ(),
		"GO_TEST_REALSYSTEM_EXECBINARY_SUBPROCESS=1",
		"GO_TEST_REALSYSTEM_EXECBINARY_STUB="+stub,
	)
	err := cmd.Run()

	// The stub's exit code proves the process image was replaced.
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 7, exitErr.ExitCode())
}

func TestRealSystem_ExecBinaryMissingTarget(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "qmake")

	err := RealSystem{}.ExecBinary(missing, []string{missing}, nil, nil)

	require.Error(t, err)
}

func TestRealSystem_Filesystem(t *testing.T) {
	dir := t.TempDir()
	path := testutil.WriteDescriptor(t, dir, "5", "/qt5/bin", "/qt5/lib")
	sys := RealSystem{}

	entries, err := sys.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "5.conf", entries[0].Name())

	info, err := sys.Stat(path)
	require.NoError(t, err)
	assert.True(t, info.Mode().IsRegular())

	f, err := sys.Open(path)
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func TestRealSystem_Environment(t *testing.T) {
	t.Setenv("QTCHOOSER_DISPATCH_TEST", "value")
	sys := RealSystem{}

	assert.Equal(t, "value", sys.Getenv("QTCHOOSER_DISPATCH_TEST"))
	assert.Contains(t, sys.Environ(), "QTCHOOSER_DISPATCH_TEST=value")

	home, err := sys.HomeDir()
	require.NoError(t, err)
	assert.NotEmpty(t, home)
}
