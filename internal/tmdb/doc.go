// Package tmdb implements a minimal client for The Movie Database movie
// search endpoint. Credentials and the request timeout are supplied at
// construction time.
package tmdb
