package storage

import (
	"os"
	"path/filepath"

	"github.com/jacksmith/hitlist/internal/cli"
)

const (
	// listFile holds one marked path per line.
	listFile = ".hitlist"
	// backupFile is the single-slot snapshot written by clear.
	backupFile = ".hitlist.bak"
	// lockFile serialises writers across processes.
	lockFile = ".hitlist.lock"
)

// Paths are the files hitlist keeps in the temp directory.
type Paths struct {
	Dir    string
	List   string
	Backup string
	Lock   string
}

// TempDirVar returns the environment variable naming the temp directory on goos.
func TempDirVar(goos string) string {
	if goos == "windows" {
		return "TEMP"
	}
	return "TMPDIR"
}

// ResolvePaths locates the list and backup files from the temp directory
// variable for goos. If the variable is unset or empty, it fails with
// *cli.EnvMissingError unless fallback is set, in which case os.TempDir()
// is used instead.
func ResolvePaths(goos string, getenv func(string) string, fallback bool) (*Paths, error) {
	key := TempDirVar(goos)
	dir := getenv(key)
	if dir == "" {
		if !fallback {
			return nil, &cli.EnvMissingError{Var: key}
		}
		dir = os.TempDir()
	}
	return &Paths{
		Dir:    dir,
		List:   filepath.Join(dir, listFile),
		Backup: filepath.Join(dir, backupFile),
		Lock:   filepath.Join(dir, lockFile),
	}, nil
}
