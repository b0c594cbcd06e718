package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"github.com/jacksmith/hitlist/internal/cli"
	"github.com/jacksmith/hitlist/internal/ops"
	"github.com/jacksmith/hitlist/internal/storage"
)

// Replaced in tests.
var (
	getwd        = os.Getwd
	newClipboard = func() ops.Clipboard { return cli.SystemClipboard{} }
	editText     = cli.EditText
)

// openSession resolves the list location and loads it.
func openSession() (*ops.Session, error) {
	paths, err := storage.ResolvePaths(runtime.GOOS, os.Getenv, appConfig.TempDirFallback)
	if err != nil {
		return nil, err
	}
	logger.Debug("opening list", "file", paths.List)
	return ops.OpenSession(storage.New(paths, logger))
}

// currentDir returns the absolute working directory.
func currentDir() (string, error) {
	wd, err := getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get path of the current directory: %w", err)
	}
	return filepath.Abs(wd)
}

// parseIndex parses a 1-based index argument. Range checks are left to ops.
func parseIndex(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: must be a number", arg)
	}
	return n, nil
}
