package identify_test

import (
	"testing"

	"reelname/internal/identify"
	"reelname/internal/logging"
	"reelname/internal/tmdb"
)

func TestNewCandidateParsesReleaseYear(t *testing.T) {
	c := identify.NewCandidate(tmdb.Result{ID: 123, Title: "foo", ReleaseDate: "2031-03-03"}, logging.NewNop())
	if c.Title != "foo" || c.ID != 123 || c.Year != 2031 {
		t.Fatalf("unexpected candidate: %+v", c)
	}
}

func TestNewCandidateMissingReleaseDate(t *testing.T) {
	c := identify.NewCandidate(tmdb.Result{ID: 1, Title: "soon"}, logging.NewNop())
	if c.Year != identify.FallbackYear {
		t.Fatalf("expected fallback year, got %d", c.Year)
	}
}

func TestNewCandidateUnparseableReleaseDate(t *testing.T) {
	c := identify.NewCandidate(tmdb.Result{ID: 1, Title: "bad", ReleaseDate: "not-a-date"}, logging.NewNop())
	if c.Year != identify.FallbackYear {
		t.Fatalf("expected fallback year, got %d", c.Year)
	}
}

func TestFromResultsOnePerRecord(t *testing.T) {
	results := []tmdb.Result{
		{ID: 1, Title: "a", ReleaseDate: "1999-01-01"},
		{ID: 2, Title: "b"},
	}
	candidates := identify.FromResults(results, logging.NewNop())
	if len(candidates) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(candidates))
	}
	if candidates[0].Year != 1999 || candidates[1].Year != identify.FallbackYear {
		t.Fatalf("unexpected years: %+v", candidates)
	}
}
