package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// EditText opens content in $VISUAL or $EDITOR and returns what the user saved.
// The buffer lives in a throwaway file in the system temp directory, never
// in the list file itself, so an aborted editor leaves the list untouched.
func EditText(content []byte) ([]byte, error) {
	editor := editorCommand()
	if editor == "" {
		return nil, errors.New("no editor configured: set VISUAL or EDITOR")
	}

	buf, err := os.CreateTemp("", "hitlist-edit-*.txt")
	if err != nil {
		return nil, fmt.Errorf("failed to create edit buffer: %w", err)
	}
	bufPath := buf.Name()
	defer os.Remove(bufPath)

	if _, err := buf.Write(content); err != nil {
		buf.Close()
		return nil, fmt.Errorf("failed to write edit buffer: %w", err)
	}
	if err := buf.Close(); err != nil {
		return nil, fmt.Errorf("failed to close edit buffer: %w", err)
	}

	if err := launchEditor(editor, bufPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(bufPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read edit buffer: %w", err)
	}
	return edited, nil
}

// editorCommand prefers VISUAL over EDITOR.
func editorCommand() string {
	if v := os.Getenv("VISUAL"); v != "" {
		return v
	}
	return os.Getenv("EDITOR")
}

// launchEditor runs editor (which may carry arguments, e.g. "code --wait")
// on path with the terminal attached.
func launchEditor(editor, path string) error {
	fields := strings.Fields(editor)
	if len(fields) == 0 {
		return errors.New("empty editor command")
	}

	c := exec.Command(fields[0], append(fields[1:], path)...)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr

	if err := c.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run editor: %w", err)
	}
	return nil
}
