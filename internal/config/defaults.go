package config

const (
	defaultTMDBBaseURL           = "https://api.themoviedb.org/3"
	defaultTMDBLanguage          = "en-US"
	defaultTMDBRequestTimeoutSec = 10
	defaultLogFormat             = "console"
	defaultLogLevel              = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		TMDB: TMDB{
			BaseURL:        defaultTMDBBaseURL,
			Language:       defaultTMDBLanguage,
			RequestTimeout: defaultTMDBRequestTimeoutSec,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
