package ops

// Store defines the persistence interface required by the commands.
// The concrete implementation is storage.Store; tests may substitute
// an in-memory one.
type Store interface {
	Load() (string, error)
	Append(line string) error
	Rewrite(lines []string) error
	ClearWithBackup() (bool, error)
	Restore() error
	BackupExists() bool
}

// Clipboard receives text copied by clip.
type Clipboard interface {
	SetText(s string) error
}
