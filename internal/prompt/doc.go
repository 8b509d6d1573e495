// Package prompt implements the disambiguation step: choosing one TMDB
// candidate among several. The Chooser interface keeps the rename planner
// testable and lets non-interactive runs swap in a batch strategy.
package prompt
