// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New(...Option) initializer to build a Config with defaults.
// - All future functions must accept context.Context as the first parameter.
// - External errors must be wrapped via this package's error helpers.
package config

// Default sizing constants.
const (
	defaultMaxUploadBytes = 10 << 20 // 10 MiB per spreadsheet
	defaultHistogramBins  = 20
	defaultTeamFTE        = 1.0
	defaultPreviewRows    = 5
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// MaxUploadBytes bounds the accepted spreadsheet size.
	MaxUploadBytes int64 `koanf:"max_upload_bytes"`

	// HistogramBins sets the bin count for the largest-gift distribution.
	HistogramBins int `koanf:"histogram_bins"`

	// TeamFTE is the placeholder staffing constant behind the team factor.
	// There is no data source for it in uploaded tables.
	TeamFTE float64 `koanf:"team_fte"`

	// PreviewRows caps the number of raw rows echoed back for the dashboard preview.
	PreviewRows int `koanf:"preview_rows"`

	// CORSOrigins lists allowed origins for browser uploads.
	CORSOrigins []string `koanf:"cors_origins"`
}

// New creates a Config populated with defaults.
func New() *Config {
	c := &Config{
		LogLevel:       "info",
		Addr:           ":9080",
		MaxUploadBytes: defaultMaxUploadBytes,
		HistogramBins:  defaultHistogramBins,
		TeamFTE:        defaultTeamFTE,
		PreviewRows:    defaultPreviewRows,
		CORSOrigins:    []string{"*"},
	}
	return c
}
