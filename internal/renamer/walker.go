package renamer

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"reelname/internal/logging"
	"reelname/internal/organize"
)

// videoExtensions is the fixed allow-list of extensions the walker considers.
var videoExtensions = map[string]struct{}{
	".avi": {},
	".mp4": {},
	".mkv": {},
	".m4v": {},
	".ogm": {},
}

// Stats accumulates what a run did (or, in dry-run mode, would have done).
type Stats struct {
	Changed int
	Moved   int
}

// Runner walks a directory tree and drives the planner and organizer for
// every video file, one file at a time.
type Runner struct {
	planner *Planner
	logger  *slog.Logger
	dryRun  bool
}

// NewRunner builds the driver. With dryRun all filesystem mutations are
// suppressed while search, disambiguation, and logging still happen.
func NewRunner(planner *Planner, logger *slog.Logger, dryRun bool) *Runner {
	return &Runner{
		planner: planner,
		logger:  logging.NewComponentLogger(logger, "walker"),
		dryRun:  dryRun,
	}
}

// Run processes every video file under root in deterministic lexical walk
// order and reports the final counters. Per-file failures are logged and
// tolerated; an operator abort or a search transport failure halts the run.
func (r *Runner) Run(ctx context.Context, root string) (Stats, error) {
	logger := r.logger.With(logging.String("run_id", uuid.NewString()))
	if r.dryRun {
		logger.Warn("dry run: files will not be renamed")
	}

	var stats Stats
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		ext := strings.ToLower(filepath.Ext(path))
		if _, ok := videoExtensions[ext]; !ok {
			logger.Info("skip, doesn't appear to be a video file", logging.String("path", path))
			return nil
		}

		logger.Info("checking", logging.String("path", path))
		return r.processFile(ctx, logger, path, &stats)
	})
	if err != nil {
		return stats, err
	}

	logger.Info("run complete",
		logging.Int("files_changed", stats.Changed),
		logging.Int("files_moved", stats.Moved),
	)
	return stats, nil
}

func (r *Runner) processFile(ctx context.Context, logger *slog.Logger, path string, stats *Stats) error {
	plan, err := r.planner.Plan(ctx, path)
	if err != nil {
		return err
	}

	switch plan.Outcome {
	case OutcomeSkip:
		return nil

	case OutcomeAlreadyCanonical:
		_, moved, err := organize.EnsureFolder(path, r.dryRun, logger)
		if err != nil {
			logger.Error("folder organization failed", logging.String("path", path), logging.Error(err))
			return nil
		}
		if moved {
			stats.Moved++
		}
		return nil
	}

	logger.Info("renaming",
		logging.String("from", plan.Source),
		logging.String("to", plan.Target),
		logging.Bool("dry_run", r.dryRun),
	)
	if !r.dryRun {
		if err := os.Rename(plan.Source, plan.Target); err != nil {
			if errors.Is(err, fs.ErrPermission) {
				logger.Error("permission denied when renaming, did you forget to run with sudo?",
					logging.String("path", plan.Source),
					logging.Error(err),
				)
				return nil
			}
			return err
		}
	}
	stats.Changed++

	_, moved, err := organize.EnsureFolder(plan.Target, r.dryRun, logger)
	if err != nil {
		logger.Error("folder organization failed", logging.String("path", plan.Target), logging.Error(err))
		return nil
	}
	if moved {
		stats.Moved++
	}
	return nil
}
