package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	assert.Equal(t, "Failed to access the tempdir!", (&EnvMissingError{Var: "TMPDIR"}).Error())
	assert.Equal(t, "Not valid index!", (&IndexError{Index: 5, Len: 2}).Error())
	assert.Equal(t, "/a is already marked", (&DuplicateError{Path: "/a"}).Error())
	assert.Equal(t, "/a is not marked", (&NotMarkedError{Path: "/a"}).Error())
	assert.Equal(t, "Nothing to show!", (&EmptyListError{}).Error())
	assert.Equal(t, "Nothing to check!", (&EmptyListError{Message: "Nothing to check!"}).Error())
	assert.Equal(t, "No backup found!", (&NoBackupError{}).Error())
}

func TestClipboardErrorUnwrap(t *testing.T) {
	cause := errors.New("xclip missing")
	err := &ClipboardError{Err: cause}
	assert.ErrorIs(t, err, cause)
}

func TestFormatError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"duplicate is silent", &DuplicateError{Path: "/a"}, ""},
		{"not marked is silent", &NotMarkedError{Path: "/a"}, ""},
		{"env missing", &EnvMissingError{Var: "TMPDIR"}, "Failed to access the tempdir!"},
		{"index", &IndexError{Index: 0, Len: 3}, "Not valid index!"},
		{"empty list", &EmptyListError{Message: "Nothing to check!"}, "Nothing to check!"},
		{"no backup", &NoBackupError{}, "No backup found!"},
		{"clipboard", &ClipboardError{Err: errors.New("boom")}, "Failed to copy to the clipboard! (boom)"},
		{"wrapped index", fmt.Errorf("unmark: %w", &IndexError{Index: 9}), "Not valid index!"},
		{"io", errors.New("failed to open list: permission denied"), "error: failed to open list: permission denied"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatError(tt.err))
		})
	}
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, 0, ExitCode(&NoBackupError{}))
	assert.Equal(t, 1, ExitCode(&DuplicateError{}))
	assert.Equal(t, 1, ExitCode(&IndexError{}))
	assert.Equal(t, 1, ExitCode(&EnvMissingError{}))
	assert.Equal(t, 1, ExitCode(errors.New("disk full")))
}
