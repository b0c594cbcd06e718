// Package model holds the in-memory mark list.
package model

import (
	"fmt"
	"iter"
	"path/filepath"
	"strings"
)

// MarkList is the ordered list of marked directories as loaded from the
// list file. Positions shown to users are 1-based.
type MarkList struct {
	paths []string
}

// Parse builds a MarkList from list file text. Lines are split on "\n",
// a trailing "\r" is dropped, and blank lines are skipped.
func Parse(text string) *MarkList {
	m := &MarkList{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		m.paths = append(m.paths, line)
	}
	return m
}

// Len returns the number of marks.
func (m *MarkList) Len() int {
	return len(m.paths)
}

// Contains reports whether path is marked. Surrounding whitespace is ignored.
func (m *MarkList) Contains(path string) bool {
	_, ok := m.IndexOf(path)
	return ok
}

// IndexOf returns the 1-based index of path.
func (m *MarkList) IndexOf(path string) (int, bool) {
	path = strings.TrimSpace(path)
	for i, p := range m.paths {
		if strings.TrimSpace(p) == path {
			return i + 1, true
		}
	}
	return 0, false
}

// Get returns the path at 1-based index i.
// It returns false for 0 and for indices past the end.
func (m *MarkList) Get(i int) (string, bool) {
	if !m.Valid(i) {
		return "", false
	}
	return m.paths[i-1], true
}

// Valid reports whether i addresses an entry.
func (m *MarkList) Valid(i int) bool {
	return i >= 1 && i <= len(m.paths)
}

// All yields 1-based index and path in insertion order.
func (m *MarkList) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, p := range m.paths {
			if !yield(i+1, p) {
				return
			}
		}
	}
}

// Lines returns a copy of the marks in order.
func (m *MarkList) Lines() []string {
	return append([]string(nil), m.paths...)
}

// Without returns a copy of the marks with 1-based index i removed.
// The receiver is not modified.
func (m *MarkList) Without(i int) []string {
	if !m.Valid(i) {
		return m.Lines()
	}
	out := make([]string, 0, len(m.paths)-1)
	out = append(out, m.paths[:i-1]...)
	return append(out, m.paths[i:]...)
}

// Encode renders lines in list file format: each line terminated by "\n".
func Encode(lines []string) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
	return b.String()
}

// ValidatePath checks that path can be stored as a single list entry.
func ValidatePath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("path must not be empty")
	}
	if strings.ContainsAny(path, "\r\n") {
		return fmt.Errorf("path %q contains a line break", path)
	}
	if !filepath.IsAbs(path) {
		return fmt.Errorf("path %q is not absolute", path)
	}
	return nil
}

// Normalize turns free-form text into a clean list: blank lines and
// surrounding whitespace are dropped, and later duplicates are removed.
// Every remaining line must pass ValidatePath.
func Normalize(text string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for n, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || seen[line] {
			continue
		}
		if err := ValidatePath(line); err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		seen[line] = true
		out = append(out, line)
	}
	return out, nil
}
