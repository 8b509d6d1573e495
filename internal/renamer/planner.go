package renamer

import (
	"context"
	"log/slog"
	"path/filepath"

	"reelname/internal/identify"
	"reelname/internal/logging"
	"reelname/internal/naming"
	"reelname/internal/prompt"
	"reelname/internal/services"
	"reelname/internal/tmdb"
)

// Outcome classifies what should happen to one file.
type Outcome int

const (
	// OutcomeRename means the file needs renaming to Plan.Target.
	OutcomeRename Outcome = iota
	// OutcomeAlreadyCanonical means the stem already conforms; only folder
	// organization remains.
	OutcomeAlreadyCanonical
	// OutcomeSkip means the search found nothing and the file is left as is.
	OutcomeSkip
)

// Plan is the per-file rename decision.
type Plan struct {
	Source  string
	Target  string
	Outcome Outcome
}

// Planner derives a query from a filename, searches TMDB, and resolves the
// result through the injected chooser.
type Planner struct {
	search  tmdb.Searcher
	chooser prompt.Chooser
	logger  *slog.Logger
}

// NewPlanner wires the planner's collaborators.
func NewPlanner(search tmdb.Searcher, chooser prompt.Chooser, logger *slog.Logger) *Planner {
	return &Planner{
		search:  search,
		chooser: chooser,
		logger:  logging.NewComponentLogger(logger, "planner"),
	}
}

// Plan decides the outcome for one file. Zero search results yield
// OutcomeSkip; an operator abort propagates tagged with services.ErrAborted;
// search transport failures propagate as external tool errors.
func (p *Planner) Plan(ctx context.Context, path string) (Plan, error) {
	stem := naming.Stem(path)

	if naming.LooksCanonical(stem) {
		p.logger.Info("skip renaming, already looks good", logging.String("file", filepath.Base(path)))
		return Plan{Source: path, Outcome: OutcomeAlreadyCanonical}, nil
	}

	query := identify.DeriveQuery(stem)
	resp, err := p.search.SearchMovie(ctx, query)
	if err != nil {
		return Plan{}, services.Wrap(services.ErrExternalTool, "searching", "query tmdb", query, err)
	}
	if len(resp.Results) == 0 {
		p.logger.Warn("0 results, skipping",
			logging.String("query", query),
			logging.String("file", filepath.Base(path)),
		)
		return Plan{Source: path, Outcome: OutcomeSkip}, nil
	}

	candidates := identify.FromResults(resp.Results, p.logger)
	selection, err := p.chooser.Choose(candidates, filepath.Base(path))
	if err != nil {
		return Plan{}, err
	}

	target := naming.CanonicalPath(path, selection)
	p.logger.Info("rename planned",
		logging.String("from", filepath.Base(path)),
		logging.String("to", filepath.Base(target)),
	)
	return Plan{Source: path, Target: target, Outcome: OutcomeRename}, nil
}
