// Package storage reads and writes the hitlist list and backup files.
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/jacksmith/hitlist/internal/cli"
)

// Store provides access to the list file and its backup.
// Each operation opens and closes its own file handles.
type Store struct {
	paths  *Paths
	logger *slog.Logger
}

// New returns a Store over paths. A nil logger discards log output.
func New(paths *Paths, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{paths: paths, logger: logger}
}

// Paths returns the resolved file locations.
func (s *Store) Paths() *Paths {
	return s.paths
}

// Load returns the list file text, creating an empty file if none exists.
func (s *Store) Load() (string, error) {
	f, err := os.OpenFile(s.paths.List, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", s.paths.List, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", s.paths.List, err)
	}
	return string(data), nil
}

// Append adds line to the end of the list file in a single write.
func (s *Store) Append(line string) error {
	if line == "" || strings.ContainsAny(line, "\r\n") {
		return fmt.Errorf("invalid list entry %q", line)
	}

	lock, err := lockPath(s.paths.Lock)
	if err != nil {
		return err
	}
	defer unlock(lock)

	f, err := os.OpenFile(s.paths.List, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s for append: %w", s.paths.List, err)
	}
	if _, err := f.Write([]byte(line + "\n")); err != nil {
		f.Close()
		return fmt.Errorf("failed to append to %s: %w", s.paths.List, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", s.paths.List, err)
	}

	s.logger.Debug("appended mark", "path", line, "file", s.paths.List)
	return nil
}

// Rewrite replaces the list file with lines, in order.
func (s *Store) Rewrite(lines []string) error {
	lock, err := lockPath(s.paths.Lock)
	if err != nil {
		return err
	}
	defer unlock(lock)

	if err := writeLines(s.paths.List, lines); err != nil {
		return err
	}

	s.logger.Debug("rewrote list", "count", len(lines), "file", s.paths.List)
	return nil
}

// ClearWithBackup copies a non-empty list file over the backup and then
// removes the list file. It reports whether anything was cleared; an empty
// or absent list is left alone and the previous backup is kept.
func (s *Store) ClearWithBackup() (bool, error) {
	lock, err := lockPath(s.paths.Lock)
	if err != nil {
		return false, err
	}
	defer unlock(lock)

	info, err := os.Stat(s.paths.List)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to access %s: %w", s.paths.List, err)
	}
	if info.Size() == 0 {
		return false, nil
	}

	if err := copyFile(s.paths.List, s.paths.Backup); err != nil {
		return false, fmt.Errorf("failed to back up the list: %w", err)
	}
	if err := os.Remove(s.paths.List); err != nil {
		return false, fmt.Errorf("failed to clear %s: %w", s.paths.List, err)
	}

	s.logger.Debug("cleared list", "backup", s.paths.Backup)
	return true, nil
}

// Restore copies the backup over the list file. The backup is kept so the
// same snapshot can be restored again. It fails with *cli.NoBackupError
// when there is no backup.
func (s *Store) Restore() error {
	lock, err := lockPath(s.paths.Lock)
	if err != nil {
		return err
	}
	defer unlock(lock)

	if !s.BackupExists() {
		return &cli.NoBackupError{}
	}
	if err := copyFile(s.paths.Backup, s.paths.List); err != nil {
		return fmt.Errorf("failed to load the backup: %w", err)
	}

	s.logger.Debug("restored list", "backup", s.paths.Backup)
	return nil
}

// BackupExists reports whether a backup file is present.
func (s *Store) BackupExists() bool {
	_, err := os.Stat(s.paths.Backup)
	return err == nil
}

// writeLines truncates path and writes each line followed by "\n".
func writeLines(path string, lines []string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s for writing: %w", path, err)
	}
	w := bufio.NewWriter(f)
	for _, line := range lines {
		w.WriteString(line)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// copyFile replaces dst with the contents of src.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
