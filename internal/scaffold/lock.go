package scaffold

import (
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockFileName is the advisory lock file created in a merge destination.
const LockFileName = ".liscaf.lock"

// DestinationLock guards a destination directory against concurrent merges.
type DestinationLock struct {
	flock *flock.Flock
	path  string
}

// LockDestination takes the advisory lock for dir without blocking.
// It fails with DestinationBusy when another process holds it.
func LockDestination(dir string) (*DestinationLock, error) {
	path := filepath.Join(dir, LockFileName)
	fl := flock.New(path)

	acquired, err := fl.TryLock()
	if err != nil {
		return nil, newError(WriteFailed, "failed to lock destination", path, err)
	}
	if !acquired {
		return nil, newError(DestinationBusy, "destination is locked by another liscaf run", dir, nil)
	}
	return &DestinationLock{flock: fl, path: path}, nil
}

// Release unlocks and removes the lock file.
func (l *DestinationLock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		return newError(WriteFailed, "failed to release destination lock", l.path, err)
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return newError(WriteFailed, "failed to remove lock file", l.path, err)
	}
	return nil
}
