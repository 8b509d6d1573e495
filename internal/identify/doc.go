// Package identify turns messy on-disk filenames into TMDB search queries
// and normalizes raw search results into candidates.
package identify
