package naming

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"reelname/internal/identify"
)

// Placeholder replaces titles whose every character is filesystem-illegal.
// At least one movie is titled just "?" (tmdb-918197).
const Placeholder = "FIXME"

const illegalChars = `<>:"/\|?*`

// canonicalStem recognizes already-organized stems. The year must be in
// parentheses; both tmdb and tvdb tags are accepted so files named by other
// tooling are left alone.
var canonicalStem = regexp.MustCompile(`^.+ \(\d{4}\) \{t[mv]db-\d+\}$`)

// Format renders the canonical stem for a candidate, eg.
// "Airplane! (1980) {tmdb-813}". Illegal filename characters are deleted
// from the title, not substituted.
func Format(c identify.Candidate) string {
	cleaned := strings.Builder{}
	for _, r := range c.Title {
		if strings.ContainsRune(illegalChars, r) {
			continue
		}
		cleaned.WriteRune(r)
	}
	title := cleaned.String()
	if title == "" {
		title = Placeholder
	}
	return fmt.Sprintf("%s (%d) {tmdb-%d}", title, c.Year, c.ID)
}

// LooksCanonical reports whether a stem already follows the canonical naming
// convention. The whole stem must match; a title containing internal
// parentheses is fine as long as the suffix shape holds.
func LooksCanonical(stem string) bool {
	return canonicalStem.MatchString(stem)
}

// CanonicalPath computes the rename target for path: same directory, same
// extension, stem replaced by the candidate's canonical form.
func CanonicalPath(path string, c identify.Candidate) string {
	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	return filepath.Join(dir, Format(c)+ext)
}

// Stem returns the base filename without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
