package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/qtchooser/internal/messages"
)

// Normalizer hides the platform-specific parts of path handling from the resolver.
type Normalizer interface {
	// ExpandHome replaces a leading "~" with the caller's home directory.
	ExpandHome(path string) (string, error)
	// SplitList splits a list of paths joined by the platform list separator.
	SplitList(list string) []string
}

// HostNormalizer implements Normalizer for the running platform.
type HostNormalizer struct {
	// HomeDir resolves the home directory; homedir.Dir is used when nil.
	HomeDir func() (string, error)
}

// ExpandHome expands "~" and "~/..." paths. Other paths, including "~user" forms, are returned unchanged.
// Environment references such as "$QTDIR" are never expanded.
func (n HostNormalizer) ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	if len(path) > 1 && !os.IsPathSeparator(path[1]) {
		return path, nil
	}
	resolve := n.HomeDir
	if resolve == nil {
		resolve = homedir.Dir
	}
	home, err := resolve()
	if err != nil {
		return "", fmt.Errorf(messages.ConfigResolveHomeFmt, err)
	}
	return filepath.Join(home, path[1:]), nil
}

// SplitList splits list on ':' (';' on Windows). An empty list yields no entries.
func (HostNormalizer) SplitList(list string) []string {
	return filepath.SplitList(list)
}
