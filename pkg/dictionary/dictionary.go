// Package dictionary provides candidate plaintext lists for dictionary
// attacks: the built-in list of common passwords and a loader for
// newline-separated wordlist files.
package dictionary

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
)

// common holds the built-in list, one candidate per line, most likely first.
//
//go:embed common.txt
var common string

// defaultList is parsed once and never modified.
var defaultList = parse(common) //nolint: gochecknoglobals

func parse(s string) []string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		out = append(out, strings.TrimSuffix(l, "\r"))
	}

	return out
}

// Default returns the built-in candidate list in its fixed order. The list
// contains duplicates; order matters because the first match wins. Callers
// must treat the returned slice as read-only.
func Default() []string {
	return defaultList[:len(defaultList):len(defaultList)]
}

// Len returns the number of entries of the built-in list.
func Len() int {
	return len(defaultList)
}

// Read parses a newline-separated wordlist. Line endings are stripped but
// other whitespace is kept, since it may be part of a password. Empty lines
// are skipped.
func Read(r io.Reader) ([]string, error) {
	var out []string

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not read wordlist: %w", err)
	}

	return out, nil
}

// Load reads the wordlist file at path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open wordlist: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	return Read(f)
}
