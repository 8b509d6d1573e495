// Package naming produces and recognizes the canonical
// "Title (Year) {tmdb-ID}" stem convention used by media servers.
//
// See https://support.plex.tv/articles/naming-and-organizing-your-movie-media-files/
package naming
