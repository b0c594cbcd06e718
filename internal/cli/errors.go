package cli

import (
	"errors"
	"fmt"
)

// EnvMissingError indicates the temp directory variable is unset or empty.
type EnvMissingError struct {
	Var string // "TEMP" or "TMPDIR"
}

func (e *EnvMissingError) Error() string {
	return "Failed to access the tempdir!"
}

// IndexError indicates an index outside 1..Len.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return "Not valid index!"
}

// DuplicateError indicates the directory is already marked.
// It is reported by exit status only.
type DuplicateError struct {
	Path string
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s is already marked", e.Path)
}

// NotMarkedError indicates the current directory is not in the list.
// It is reported by exit status only.
type NotMarkedError struct {
	Path string
}

func (e *NotMarkedError) Error() string {
	return fmt.Sprintf("%s is not marked", e.Path)
}

// EmptyListError indicates a read command found no marks.
type EmptyListError struct {
	Message string // e.g. "Nothing to show!"
}

func (e *EmptyListError) Error() string {
	if e.Message == "" {
		return "Nothing to show!"
	}
	return e.Message
}

// NoBackupError indicates restore was requested without a backup.
// It is not a failure: the process still exits 0.
type NoBackupError struct{}

func (e *NoBackupError) Error() string {
	return "No backup found!"
}

// ClipboardError wraps a failure of the clipboard adapter.
type ClipboardError struct {
	Err error
}

func (e *ClipboardError) Error() string {
	return "Failed to copy to the clipboard!"
}

func (e *ClipboardError) Unwrap() error {
	return e.Err
}

// FormatError returns the message to print on stderr for err.
// Silent errors return "". Errors without a user-facing message (filesystem
// and argument failures) are prefixed with "error: ".
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var (
		dup       *DuplicateError
		notMarked *NotMarkedError
		env       *EnvMissingError
		idx       *IndexError
		empty     *EmptyListError
		noBackup  *NoBackupError
		clip      *ClipboardError
	)
	switch {
	case errors.As(err, &dup), errors.As(err, &notMarked):
		return ""
	case errors.As(err, &env):
		return env.Error()
	case errors.As(err, &idx):
		return idx.Error()
	case errors.As(err, &empty):
		return empty.Error()
	case errors.As(err, &noBackup):
		return noBackup.Error()
	case errors.As(err, &clip):
		if clip.Err != nil {
			return clip.Error() + " (" + clip.Err.Error() + ")"
		}
		return clip.Error()
	}
	return "error: " + err.Error()
}

// ExitCode returns the process exit status for err.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var noBackup *NoBackupError
	if errors.As(err, &noBackup) {
		return 0
	}
	return 1
}
