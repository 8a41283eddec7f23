package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

// WriteDescriptor writes <dir>/<name>.conf naming toolsDir and libsDir and returns its path.
// t is the active test; dir is created when missing.
func WriteDescriptor(t *testing.T, dir string, name string, toolsDir string, libsDir string) string {
	t.Helper()
	return WriteDescriptorContent(t, dir, name, toolsDir+"\n"+libsDir+"\n")
}

// WriteDescriptorContent writes <dir>/<name>.conf with raw content and returns its path.
// t is the active test; dir is created when missing.
func WriteDescriptorContent(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, name+".conf")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write descriptor: %v", err)
	}
	return path
}

// WriteStub writes an executable shell stub that exits successfully.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStub(t *testing.T, dir string, name string) string {
	t.Helper()
	return WriteStubWithExit(t, dir, name, 0)
}

// WriteStubWithExit writes an executable shell stub that exits with the provided code.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	content := []byte(fmt.Sprintf("#!/bin/sh\nexit %d\n", exitCode))
	if err := os.WriteFile(path, content, 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}
