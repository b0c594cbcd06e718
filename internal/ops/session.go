// Package ops implements the hitlist commands over a Store.
package ops

import (
	"github.com/jacksmith/hitlist/internal/model"
)

// Session is the state of one invocation: the list as loaded at startup
// and whether a backup existed at that moment. Commands that write do not
// refresh Marks; each process runs a single command.
type Session struct {
	Store         Store
	Marks         *model.MarkList
	BackupPresent bool
}

// OpenSession samples the backup flag and loads the list from store.
func OpenSession(store Store) (*Session, error) {
	backup := store.BackupExists()
	text, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Session{
		Store:         store,
		Marks:         model.Parse(text),
		BackupPresent: backup,
	}, nil
}
