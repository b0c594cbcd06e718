// Package cli provides terminal-facing helpers for hitlist: styling,
// error rendering, logging, the clipboard adapter and the editor.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Colour modes accepted by --color and the config file.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Status glyphs.
const (
	GlyphPresent = "✓"
	GlyphMissing = "✘"
)

var (
	indexColor   = color.New(color.FgCyan)
	presentColor = color.New(color.FgGreen, color.Bold)
	missingColor = color.New(color.FgRed, color.Bold)
	goneColor    = color.New(color.FgHiBlack, color.CrossedOut)
)

// SetColorMode configures styling for output written to w.
// In auto mode colours are used only when w is a terminal and NO_COLOR is unset.
func SetColorMode(mode string, w io.Writer) error {
	switch mode {
	case ColorAlways:
		color.NoColor = false
	case ColorNever:
		color.NoColor = true
	case ColorAuto, "":
		color.NoColor = os.Getenv("NO_COLOR") != "" || !IsTerminal(w)
	default:
		return fmt.Errorf("invalid color mode %q: must be auto, always or never", mode)
	}
	return nil
}

// SetColorEnabled overrides the colour setting.
func SetColorEnabled(enabled bool) {
	color.NoColor = !enabled
}

// ColorEnabled returns whether colour output is currently enabled.
func ColorEnabled() bool {
	return !color.NoColor
}

// IsTerminal returns true if w is a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// ListLine formats one entry of `list` output, newline included.
func ListLine(index int, path string) string {
	return fmt.Sprintf("[%s] %s\n", indexColor.Sprint(index), path)
}

// StatusLine formats one entry of `status` output, newline included.
// Missing paths are struck through.
func StatusLine(path string, exists bool) string {
	if exists {
		return fmt.Sprintf("[%s] %s\n", presentColor.Sprint(GlyphPresent), path)
	}
	return fmt.Sprintf("[%s] %s\n", missingColor.Sprint(GlyphMissing), goneColor.Sprint(path))
}
