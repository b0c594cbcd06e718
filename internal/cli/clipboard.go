package cli

import (
	"errors"

	"github.com/atotto/clipboard"
)

// SystemClipboard copies text to the desktop clipboard.
type SystemClipboard struct{}

// SetText replaces the clipboard contents with s.
func (SystemClipboard) SetText(s string) error {
	if clipboard.Unsupported {
		return errors.New("no clipboard utility available")
	}
	return clipboard.WriteAll(s)
}
