package identify

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// Matches eg: [1990], (2024)
	yearTag     = regexp.MustCompile(`\[\d{4}\]|\(\d{4}\)`)
	leadingInfo = regexp.MustCompile(`^(.*? - )(.*-.*)$`)
)

// DeriveQuery attempts to turn a raw filename stem into a TMDB search query.
// The stem must not include the extension. The stages run in fixed order,
// each on the previous stage's output; the function never fails.
func DeriveQuery(stem string) string {
	guess := stripYear(stem)
	guess = stripLeadingInfo(guess)
	guess = stripLeadingNumber(guess)
	guess = firstWordsFromDots(guess)
	if strings.TrimSpace(guess) == "" {
		return fallbackQuery(stem)
	}
	return guess
}

// stripYear removes the first bracketed year tag: "foo [1980]" -> "foo".
func stripYear(s string) string {
	loc := yearTag.FindStringIndex(s)
	if loc == nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(s[:loc[0]] + s[loc[1]:])
}

// stripLeadingInfo drops a leading info segment when the whole string looks
// like "info - 00 - title". Strings without a second separator are left
// untouched.
func stripLeadingInfo(s string) string {
	match := leadingInfo.FindStringSubmatch(s)
	if match == nil {
		return s
	}
	return strings.TrimSpace(match[2])
}

// stripLeadingNumber removes a leading track-number run: "01 - Foo" -> "Foo".
func stripLeadingNumber(s string) string {
	return strings.TrimLeft(s, "0123456789 -")
}

// firstWordsFromDots collapses dot-delimited release names to their first two
// segments: "Some.Long.Title.foo.bar.XXYYZZ.baz" -> "Some Long".
func firstWordsFromDots(s string) string {
	segments := strings.Split(s, ".")
	if len(segments) > 2 {
		return segments[0] + " " + segments[1]
	}
	return s
}

// fallbackQuery recovers a usable query when the pipeline consumed the whole
// stem (eg. a purely numeric title such as "2012"). Separator runs collapse
// to single spaces and the result is title-cased.
func fallbackQuery(stem string) string {
	cleaned := strings.Builder{}
	prevSpace := false
	for _, r := range stem {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			cleaned.WriteRune(r)
			prevSpace = false
		case unicode.IsSpace(r) || r == '-' || r == '_' || r == '.':
			if !prevSpace {
				cleaned.WriteRune(' ')
				prevSpace = true
			}
		}
	}
	title := strings.TrimSpace(cleaned.String())
	if title == "" {
		return stem
	}
	return cases.Title(language.Und).String(title)
}
