// Package envfile writes the KEY="value" lines printed by -print-env.
package envfile

import (
	"fmt"
	"io"
)

// Pair is one KEY="value" line.
type Pair struct {
	Key   string
	Value string
}

// Write writes pairs in order, one KEY="value" line each.
// Values are not escaped: paths containing quotes or newlines are unsupported.
func Write(w io.Writer, pairs ...Pair) error {
	for _, p := range pairs {
		if _, err := fmt.Fprintf(w, "%s=\"%s\"\n", p.Key, p.Value); err != nil {
			return err
		}
	}
	return nil
}
