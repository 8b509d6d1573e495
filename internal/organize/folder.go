package organize

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"reelname/internal/logging"
	"reelname/internal/naming"
	"reelname/internal/services"
)

// EnsureFolder moves a video at .../<stem>.<ext> into an eponymous folder:
// .../<stem>/<stem>.<ext>. A file already inside its own folder is left
// alone and ("", false, nil) is returned. With dryRun the move is planned
// and logged but the filesystem is untouched.
//
// A pre-existing target folder is reported as a conflict rather than
// silently reused; the caller decides whether that fails the file or the
// run.
func EnsureFolder(path string, dryRun bool, logger *slog.Logger) (string, bool, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	stem := naming.Stem(path)
	parent := filepath.Dir(path)

	if filepath.Base(parent) == stem {
		return "", false, nil
	}

	folder := filepath.Join(parent, stem)
	newPath := filepath.Join(folder, filepath.Base(path))
	logger.Info("moving into folder",
		logging.String("from", path),
		logging.String("to", newPath),
		logging.Bool("dry_run", dryRun),
	)

	if dryRun {
		return newPath, true, nil
	}

	if err := os.Mkdir(folder, 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", false, services.Wrap(services.ErrConflict, "organizing", "create folder",
				fmt.Sprintf("folder %q already exists", folder), err)
		}
		return "", false, services.Wrap(services.ErrTransient, "organizing", "create folder", "", err)
	}
	if err := os.Rename(path, newPath); err != nil {
		return "", false, services.Wrap(services.ErrTransient, "organizing", "move file", "", err)
	}
	return newPath, true, nil
}
