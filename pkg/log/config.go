package log

// Config is a declarative logger configuration, typically filled from
// environment variables at process start.
type Config struct {
	// Level is the minimum level name: debug, info, warn, error, fatal.
	Level string
	// Format selects the formatter: "json" or "text".
	Format string
}

// ApplyConfig builds a Logger from a Config. Unknown level names are an
// error; an empty config yields the defaults (info, json).
func ApplyConfig(cfg *Config) (Logger, error) {
	level := InfoLevel
	if cfg != nil && cfg.Level != "" {
		l, err := ParseLevel(cfg.Level)
		if err != nil {
			return nil, err
		}
		level = l
	}
	var formatter Formatter = &JSONFormatter{}
	if cfg != nil && cfg.Format == "text" {
		formatter = &TextFormatter{}
	}
	return NewLogger(WithLevel(level), WithFormatter(formatter)), nil
}
