// Package roster holds the employee directory searched by the naive
// revision of the intranet. The directory is a plain newline-delimited
// text file, one employee per line, loaded once at startup.
package roster

import (
	"fmt"
	"os"
	"strings"
)

type (
	R struct {
		entries []string
	}
)

func New(entries []string) *R {
	return &R{entries: entries}
}

func Load(path string) (*R, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to load employee list, cause %w", err)
	}
	var entries []string
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		entries = append(entries, line)
	}
	return &R{entries: entries}, nil
}

// Search returns every entry containing q, case-insensitive.
// An empty query matches the whole directory.
func (r *R) Search(q string) []string {
	q = strings.ToLower(q)
	var hits []string
	for _, e := range r.entries {
		if strings.Contains(strings.ToLower(e), q) {
			hits = append(hits, e)
		}
	}
	return hits
}

func (r *R) Len() int {
	return len(r.entries)
}
