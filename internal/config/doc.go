// Package config loads and validates the reelname TOML configuration.
// Credentials and the TMDB request timeout live here so the rest of the
// program never reads ambient global state.
package config
