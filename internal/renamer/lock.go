package renamer

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// AcquireRunLock takes an advisory lock scoped to the root being processed so
// two concurrent runs cannot race each other's renames. The caller must
// Unlock the returned lock when the run finishes.
func AcquireRunLock(root string) (*flock.Flock, error) {
	sum := sha256.Sum256([]byte(filepath.Clean(root)))
	lockPath := filepath.Join(os.TempDir(), fmt.Sprintf("reelname-%x.lock", sum[:8]))
	lock := flock.New(lockPath)
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire run lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("another reelname run is already processing %s", root)
	}
	return lock, nil
}
