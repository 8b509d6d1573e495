// Package renamer orchestrates the rename run: per-file planning (query
// derivation, TMDB search, disambiguation) and the sequential directory walk
// that applies plans and folders results.
package renamer
