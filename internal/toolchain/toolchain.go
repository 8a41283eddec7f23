// Package toolchain discovers toolchain descriptors on a search path and resolves selectors to them.
package toolchain

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/conn-castle/qtchooser/internal/messages"
)

// Suffix marks descriptor files; DefaultName is matched by an empty selector.
const (
	Suffix      = ".conf"
	DefaultName = "default"
)

// ErrNotFound reports that no descriptor matched the selector.
var ErrNotFound = errors.New(messages.ToolchainNotFound)

// ErrMalformed reports a matched descriptor with fewer than two non-empty lines.
// It wraps ErrNotFound: a malformed entry is reported like a missing one.
var ErrMalformed = fmt.Errorf(messages.ToolchainMalformedFmt, messages.ToolchainMalformed, ErrNotFound)

// Descriptor is one discovered toolchain configuration.
// ToolsDir and LibsDir are only set once the descriptor has been matched and parsed.
type Descriptor struct {
	Name       string
	ConfigPath string
	ToolsDir   string
	LibsDir    string
}

// Resolved reports whether the descriptor has been parsed successfully.
func (d Descriptor) Resolved() bool {
	return d.ToolsDir != ""
}

// FS is the filesystem access needed to scan and parse descriptors.
type FS interface {
	ReadDir(name string) ([]os.DirEntry, error)
	Stat(name string) (os.FileInfo, error)
	Open(name string) (io.ReadCloser, error)
}

// HomeExpander expands a leading "~" in a descriptor's tools directory.
type HomeExpander interface {
	ExpandHome(path string) (string, error)
}

// Scan yields the descriptors found on searchPath in precedence order.
// Directories that cannot be read are skipped. A name already yielded from an earlier
// directory is not yielded again. The sequence may be abandoned at any point.
func Scan(fsys FS, searchPath []string) iter.Seq[Descriptor] {
	return func(yield func(Descriptor) bool) {
		seen := make(map[string]struct{})
		for _, dir := range searchPath {
			// Entries read before a failure are still usable; an unopenable directory yields none.
			entries, _ := fsys.ReadDir(dir)
			for _, entry := range entries {
				name, ok := descriptorName(entry.Name())
				if !ok {
					continue
				}
				if _, dup := seen[name]; dup {
					continue
				}
				path := filepath.Join(dir, entry.Name())
				if !isRegular(fsys, path, entry) {
					continue
				}
				seen[name] = struct{}{}
				if !yield(Descriptor{Name: name, ConfigPath: path}) {
					return
				}
			}
		}
	}
}

// ListAvailable returns every descriptor name on searchPath, sorted and without duplicates.
func ListAvailable(fsys FS, searchPath []string) []string {
	names := []string{}
	for d := range Scan(fsys, searchPath) {
		names = append(names, d.Name)
	}
	slices.Sort(names)
	return names
}

// Resolve finds the first descriptor matching selector and parses it.
// Only the first same-named descriptor is considered: if it is malformed, later
// directories are not consulted. An unopenable descriptor yields *UnreadableError.
func Resolve(fsys FS, expander HomeExpander, searchPath []string, selector string) (Descriptor, error) {
	for d := range Scan(fsys, searchPath) {
		if !Matches(d.Name, selector) {
			continue
		}
		return load(fsys, expander, d)
	}
	return Descriptor{}, ErrNotFound
}

// Matches reports whether a descriptor named name satisfies selector.
// An empty selector matches DefaultName; nothing matches a descriptor named "".
func Matches(name string, selector string) bool {
	if name == "" {
		return false
	}
	if selector == "" {
		return name == DefaultName
	}
	return name == selector
}

// descriptorName strips Suffix from a file name that is strictly longer than it.
func descriptorName(fileName string) (string, bool) {
	if len(fileName) <= len(Suffix) || !strings.HasSuffix(fileName, Suffix) {
		return "", false
	}
	return strings.TrimSuffix(fileName, Suffix), true
}

// isRegular reports whether entry is a regular file, following symlinks.
func isRegular(fsys FS, path string, entry os.DirEntry) bool {
	mode := entry.Type()
	if mode&fs.ModeSymlink == 0 {
		return mode.IsRegular()
	}
	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
