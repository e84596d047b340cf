package cliconfig

// DefaultLogLevel keeps the CLI quiet unless something goes wrong.
const DefaultLogLevel = "warn"

// DefaultLogFormat is the default log output format.
const DefaultLogFormat = "text"

// DefaultViewMode is the editing mode files open in.
const DefaultViewMode = "form"

// NewDefault creates a new CLIConfig with default values.
func NewDefault() *CLIConfig {
	cfg := &CLIConfig{
		LogLevel:  DefaultLogLevel,
		LogFormat: DefaultLogFormat,
		ViewMode:  DefaultViewMode,
		Sources:   make(map[string]string),
	}

	// Mark all as default source
	for _, key := range Keys() {
		cfg.Sources[key] = SourceDefault
	}

	return cfg
}
