package renamer_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"reelname/internal/logging"
	"reelname/internal/prompt"
	"reelname/internal/renamer"
	"reelname/internal/services"
	"reelname/internal/testsupport"
)

func TestRunRenamesAndFolders(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "bar", "baz.avi")
	testsupport.WriteFile(t, src, "video")

	search := &fakeSearcher{responses: singleResult("baz", "foo", "2031-03-03", 123)}
	planner := renamer.NewPlanner(search, prompt.NewFirst(logging.NewNop()), logging.NewNop())
	runner := renamer.NewRunner(planner, logging.NewNop(), false)

	stats, err := runner.Run(context.Background(), root)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if stats.Changed != 1 || stats.Moved != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	stem := "foo (2031) {tmdb-123}"
	want := filepath.Join(root, "bar", stem, stem+".avi")
	if _, err := os.Stat(want); err != nil {
		t.Fatalf("expected organized file at %q: %v", want, err)
	}
	if _, err := os.Stat(src); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("source should be gone, stat err=%v", err)
	}
}

func TestRunAlreadyCanonicalOnlyFolders(t *testing.T) {
	root := t.TempDir()
	stem := "Airplane! (1980) {tmdb-813}"
	src := filepath.Join(root, stem+".mkv")
	testsupport.WriteFile(t, src, "video")

	search := &fakeSearcher{}
	planner := renamer.NewPlanner(search, prompt.NewFirst(logging.NewNop()), logging.NewNop())
	runner := renamer.NewRunner(planner, logging.NewNop(), false)

	stats, err := runner.Run(context.Background(), root)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if stats.Changed != 0 || stats.Moved != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if len(search.queries) != 0 {
		t.Fatalf("canonical files must not trigger searches: %v", search.queries)
	}
	if _, err := os.Stat(filepath.Join(root, stem, stem+".mkv")); err != nil {
		t.Fatalf("expected foldered file: %v", err)
	}
}

func TestRunOrganizedFileIsUntouched(t *testing.T) {
	root := t.TempDir()
	stem := "Airplane! (1980) {tmdb-813}"
	src := filepath.Join(root, stem, stem+".mkv")
	testsupport.WriteFile(t, src, "video")

	planner := renamer.NewPlanner(&fakeSearcher{}, prompt.NewFirst(logging.NewNop()), logging.NewNop())
	runner := renamer.NewRunner(planner, logging.NewNop(), false)

	stats, err := runner.Run(context.Background(), root)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if stats.Changed != 0 || stats.Moved != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if _, err := os.Stat(src); err != nil {
		t.Fatalf("organized file should stay put: %v", err)
	}
}

func TestRunSkipsNonVideoFiles(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "notes.txt"), "text")
	testsupport.WriteFile(t, filepath.Join(root, "cover.jpg"), "image")

	search := &fakeSearcher{}
	planner := renamer.NewPlanner(search, prompt.NewFirst(logging.NewNop()), logging.NewNop())
	runner := renamer.NewRunner(planner, logging.NewNop(), false)

	stats, err := runner.Run(context.Background(), root)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if stats.Changed != 0 || stats.Moved != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if len(search.queries) != 0 {
		t.Fatalf("non-video files must not trigger searches: %v", search.queries)
	}
}

func TestRunZeroResultsLeavesFileAlone(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "unfindable.avi")
	testsupport.WriteFile(t, src, "video")

	planner := renamer.NewPlanner(&fakeSearcher{}, prompt.NewFirst(logging.NewNop()), logging.NewNop())
	runner := renamer.NewRunner(planner, logging.NewNop(), false)

	stats, err := runner.Run(context.Background(), root)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if stats.Changed != 0 || stats.Moved != 0 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if _, err := os.Stat(src); err != nil {
		t.Fatalf("skipped file should stay put: %v", err)
	}
}

func TestRunExtensionMatchingIsCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "baz.AVI")
	testsupport.WriteFile(t, src, "video")

	search := &fakeSearcher{responses: singleResult("baz", "foo", "2031-03-03", 123)}
	planner := renamer.NewPlanner(search, prompt.NewFirst(logging.NewNop()), logging.NewNop())
	runner := renamer.NewRunner(planner, logging.NewNop(), false)

	stats, err := runner.Run(context.Background(), root)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if stats.Changed != 1 {
		t.Fatalf("uppercase extension should still be processed: %+v", stats)
	}
}

func TestRunDryRunTouchesNothing(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "baz.avi")
	testsupport.WriteFile(t, src, "video")

	search := &fakeSearcher{responses: singleResult("baz", "foo", "2031-03-03", 123)}
	planner := renamer.NewPlanner(search, prompt.NewFirst(logging.NewNop()), logging.NewNop())
	runner := renamer.NewRunner(planner, logging.NewNop(), true)

	stats, err := runner.Run(context.Background(), root)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	// The preview still reports what would change.
	if stats.Changed != 1 || stats.Moved != 1 {
		t.Fatalf("unexpected stats %+v", stats)
	}
	if len(search.queries) != 1 {
		t.Fatalf("dry run should still search: %v", search.queries)
	}
	if _, err := os.Stat(src); err != nil {
		t.Fatalf("dry run must not move the source: %v", err)
	}
	entries, err := os.ReadDir(root)
	if err != nil {
		t.Fatalf("read root: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("dry run must not create anything, found %d entries", len(entries))
	}
}

func TestRunAbortHaltsRun(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(root, "a.avi"), "video")
	testsupport.WriteFile(t, filepath.Join(root, "b.avi"), "video")

	search := &fakeSearcher{responses: singleResult("a", "foo", "2031-03-03", 123)}
	search.responses["b"] = search.responses["a"]
	planner := renamer.NewPlanner(search, abortChooser{}, logging.NewNop())
	runner := renamer.NewRunner(planner, logging.NewNop(), false)

	if _, err := runner.Run(context.Background(), root); !errors.Is(err, services.ErrAborted) {
		t.Fatalf("expected abort to halt the run, got %v", err)
	}
	// The first prompt aborted, so the second file was never searched.
	if len(search.queries) != 1 {
		t.Fatalf("processing should stop at the abort, got queries %v", search.queries)
	}
}

func TestAcquireRunLockConflicts(t *testing.T) {
	root := t.TempDir()
	lock, err := renamer.AcquireRunLock(root)
	if err != nil {
		t.Fatalf("AcquireRunLock returned error: %v", err)
	}
	t.Cleanup(func() { _ = lock.Unlock() })

	if _, err := renamer.AcquireRunLock(root); err == nil {
		t.Fatal("expected second lock attempt to fail")
	}
}
