package testutil

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/conn-castle/qtchooser/internal/envfile"
	"github.com/conn-castle/qtchooser/internal/messages"
)

// ParseEnv reads KEY=VALUE lines in order, as printed by envfile.Write.
// content is the raw text; blank lines and # comments are skipped, and values may be
// wrapped in single or double quotes.
func ParseEnv(content string) ([]envfile.Pair, error) {
	pairs := []envfile.Pair{}
	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		pair, ok, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf(messages.EnvfileLineErrorFmt, lineNo, err)
		}
		if ok {
			pairs = append(pairs, pair)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf(messages.EnvfileReadFailedFmt, err)
	}
	return pairs, nil
}

// parseLine parses a single line and reports whether it held a pair.
func parseLine(line string) (envfile.Pair, bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return envfile.Pair{}, false, nil
	}
	idx := strings.Index(trimmed, "=")
	if idx <= 0 {
		return envfile.Pair{}, false, fmt.Errorf(messages.EnvfileExpectedKeyValue)
	}
	key := strings.TrimSpace(trimmed[:idx])
	if key == "" {
		return envfile.Pair{}, false, fmt.Errorf(messages.EnvfileExpectedKeyValue)
	}
	value, err := unquote(strings.TrimSpace(trimmed[idx+1:]))
	if err != nil {
		return envfile.Pair{}, false, err
	}
	return envfile.Pair{Key: key, Value: value}, true, nil
}

// unquote strips matching surrounding quotes from value.
func unquote(value string) (string, error) {
	if value == "" || (value[0] != '"' && value[0] != '\'') {
		return value, nil
	}
	quote := value[0]
	closing := strings.IndexByte(value[1:], quote)
	if closing < 0 {
		return "", fmt.Errorf(messages.EnvfileUnterminatedQuotedValue)
	}
	closing++
	if suffix := strings.TrimSpace(value[closing+1:]); suffix != "" && !strings.HasPrefix(suffix, "#") {
		return "", fmt.Errorf(messages.EnvfileInvalidQuotedSuffix)
	}
	return value[1:closing], nil
}
