// Package runlock keeps two sorts from working on the same root at once.
package runlock

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"

	"sortdir/internal/services"
)

// Lock is an advisory file lock held for one root.
type Lock struct {
	path  string
	flock *flock.Flock
}

// PathFor returns the lock file used for root inside lockDir. The file lives
// outside the tree so it never shows up in a scan.
func PathFor(lockDir, root string) string {
	sum := sha256.Sum256([]byte(filepath.Clean(root)))
	return filepath.Join(lockDir, "sortdir-"+hex.EncodeToString(sum[:8])+".lock")
}

// Acquire takes the lock for root without blocking. A lock already held by
// another process yields services.ErrLocked.
func Acquire(lockDir, root string) (*Lock, error) {
	if err := os.MkdirAll(lockDir, 0o755); err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "lock", "create lock directory", lockDir, err)
	}
	path := PathFor(lockDir, root)
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, services.Wrap(services.ErrFilesystem, "lock", "acquire lock", path, err)
	}
	if !ok {
		return nil, services.Wrap(services.ErrLocked, "lock", "acquire lock", fmt.Sprintf("another sortdir run holds %s", root), nil)
	}
	return &Lock{path: path, flock: fl}, nil
}

// Path returns the lock file location.
func (l *Lock) Path() string {
	return l.path
}

// Release unlocks the file. It is safe to call on a nil Lock.
func (l *Lock) Release() error {
	if l == nil || l.flock == nil {
		return nil
	}
	return l.flock.Unlock()
}
