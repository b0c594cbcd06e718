package ops

import (
	"fmt"
	"os"
	"strings"

	"github.com/jacksmith/hitlist/internal/cli"
	"github.com/jacksmith/hitlist/internal/model"
)

// Mark appends dir to the list. A directory that is already marked is
// rejected with *cli.DuplicateError and the file is left as it was.
func Mark(s *Session, dir string) error {
	if err := model.ValidatePath(dir); err != nil {
		return fmt.Errorf("cannot mark directory: %w", err)
	}
	if s.Marks.Contains(dir) {
		return &cli.DuplicateError{Path: dir}
	}
	return s.Store.Append(dir)
}

// Unmark removes the entry at 1-based index and rewrites the rest in order.
func Unmark(s *Session, index int) error {
	if !s.Marks.Valid(index) {
		return &cli.IndexError{Index: index, Len: s.Marks.Len()}
	}
	return s.Store.Rewrite(s.Marks.Without(index))
}

// UnmarkPath removes dir from the list, failing with *cli.NotMarkedError
// if it is not there.
func UnmarkPath(s *Session, dir string) error {
	index, ok := s.Marks.IndexOf(dir)
	if !ok {
		return &cli.NotMarkedError{Path: dir}
	}
	return Unmark(s, index)
}

// Entry is one mark as shown by list.
type Entry struct {
	Index int
	Path  string
}

// List returns every mark in order, or *cli.EmptyListError.
func List(s *Session) ([]Entry, error) {
	if s.Marks.Len() == 0 {
		return nil, &cli.EmptyListError{Message: "Nothing to show!"}
	}
	entries := make([]Entry, 0, s.Marks.Len())
	for i, p := range s.Marks.All() {
		entries = append(entries, Entry{Index: i, Path: p})
	}
	return entries, nil
}

// PathStatus is one mark with its on-disk existence.
type PathStatus struct {
	Index  int
	Path   string
	Exists bool
}

// Status probes each mark on disk, in order, or fails with *cli.EmptyListError.
func Status(s *Session) ([]PathStatus, error) {
	if s.Marks.Len() == 0 {
		return nil, &cli.EmptyListError{Message: "Nothing to check!"}
	}
	out := make([]PathStatus, 0, s.Marks.Len())
	for i, p := range s.Marks.All() {
		p = strings.TrimSpace(p)
		_, err := os.Stat(p)
		out = append(out, PathStatus{Index: i, Path: p, Exists: err == nil})
	}
	return out, nil
}

// Clip copies the path at 1-based index to the clipboard and returns it.
func Clip(s *Session, index int, cb Clipboard) (string, error) {
	p, ok := s.Marks.Get(index)
	if !ok {
		return "", &cli.IndexError{Index: index, Len: s.Marks.Len()}
	}
	p = strings.TrimSpace(p)
	if err := cb.SetText(p); err != nil {
		return "", &cli.ClipboardError{Err: err}
	}
	return p, nil
}

// Clear moves a non-empty list to the backup slot. An empty list is a no-op.
func Clear(s *Session) error {
	if s.Marks.Len() == 0 {
		return nil
	}
	_, err := s.Store.ClearWithBackup()
	return err
}

// Restore reinstates the backup taken by the last clear. Without a backup
// it returns *cli.NoBackupError, which callers treat as success.
func Restore(s *Session) error {
	if !s.BackupPresent {
		return &cli.NoBackupError{}
	}
	return s.Store.Restore()
}

// Replace normalises edited text with model.Normalize and rewrites the
// list with the result. It returns the number of marks saved.
func Replace(s *Session, text string) (int, error) {
	lines, err := model.Normalize(text)
	if err != nil {
		return 0, err
	}
	if err := s.Store.Rewrite(lines); err != nil {
		return 0, err
	}
	return len(lines), nil
}
