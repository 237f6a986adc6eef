package config

const (
	defaultLogFormat = "console"
	defaultLogLevel  = "info"

	defaultReportUnknownAttributes = true
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Report: Report{
			UnknownAttributes: defaultReportUnknownAttributes,
		},
	}
}
