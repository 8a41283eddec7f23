package toolchain

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/conn-castle/qtchooser/internal/messages"
)

// descriptorLines is the number of lines read from a descriptor; further lines are reserved.
const descriptorLines = 2

// UnreadableError reports a matched descriptor whose file could not be opened or read.
// The installation is broken, so callers treat it as fatal rather than as ErrNotFound.
type UnreadableError struct {
	Path string
	Err  error
	// Opened is true when the file was opened but reading it failed.
	Opened bool
}

func (e *UnreadableError) Error() string {
	if e.Opened {
		return fmt.Sprintf(messages.ToolchainReadConfigFmt, e.Path, e.Err)
	}
	return fmt.Sprintf(messages.ToolchainOpenConfigFmt, e.Path, e.Err)
}

func (e *UnreadableError) Unwrap() error {
	return e.Err
}

// load parses the descriptor file behind d.
// Line 1 is the tools directory (with "~" expanded), line 2 the library directory.
func load(fsys FS, expander HomeExpander, d Descriptor) (Descriptor, error) {
	f, err := fsys.Open(d.ConfigPath)
	if err != nil {
		return Descriptor{}, &UnreadableError{Path: d.ConfigPath, Err: err}
	}
	defer func() {
		_ = f.Close()
	}()

	lines, err := readLines(f, descriptorLines)
	if err != nil {
		return Descriptor{}, &UnreadableError{Path: d.ConfigPath, Err: err, Opened: true}
	}
	if len(lines) < descriptorLines || lines[0] == "" || lines[1] == "" {
		return Descriptor{}, fmt.Errorf(messages.ToolchainMalformedFmt, d.ConfigPath, ErrMalformed)
	}

	toolsDir, err := expander.ExpandHome(lines[0])
	if err != nil {
		return Descriptor{}, fmt.Errorf(messages.ToolchainExpandHomeFmt, d.ConfigPath, err)
	}
	d.ToolsDir = toolsDir
	d.LibsDir = lines[1]
	return d, nil
}

// readLines reads up to n lines from r with their terminators stripped.
// A final line without a terminator still counts.
func readLines(r io.Reader, n int) ([]string, error) {
	reader := bufio.NewReader(r)
	lines := make([]string, 0, n)
	for len(lines) < n {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		if line == "" && err != nil {
			break
		}
		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		lines = append(lines, line)
		if err != nil {
			break
		}
	}
	return lines, nil
}
