package identify

import (
	"log/slog"
	"strings"
	"time"

	"reelname/internal/logging"
	"reelname/internal/tmdb"
)

// FallbackYear substitutes for candidates whose release date is missing or
// unparseable. Some TMDB entries are still "coming soon".
const FallbackYear = 1970

// Candidate is one normalized search result. Fields are never mutated after
// construction.
type Candidate struct {
	Title string
	ID    int64
	Year  int
}

// NewCandidate builds a Candidate from a raw TMDB result, defaulting the
// release year when the date cannot be parsed.
func NewCandidate(result tmdb.Result, logger *slog.Logger) Candidate {
	if logger == nil {
		logger = logging.NewNop()
	}
	year := FallbackYear
	release := strings.TrimSpace(result.ReleaseDate)
	if release == "" {
		logger.Warn("result has no release date, it might be coming soon",
			logging.String("title", result.Title),
			logging.Int64("tmdb_id", result.ID),
		)
	} else if parsed, err := time.Parse("2006-01-02", release); err != nil {
		logger.Warn("can't parse release date",
			logging.String("title", result.Title),
			logging.Int64("tmdb_id", result.ID),
			logging.String("release_date", release),
		)
	} else {
		year = parsed.Year()
	}
	return Candidate{Title: result.Title, ID: result.ID, Year: year}
}

// FromResults converts every raw search result into a Candidate, one per
// record.
func FromResults(results []tmdb.Result, logger *slog.Logger) []Candidate {
	candidates := make([]Candidate, 0, len(results))
	for _, result := range results {
		candidates = append(candidates, NewCandidate(result, logger))
	}
	return candidates
}
