package cliconfig

// MergeConfig merges source config into target, updating sources tracking.
// Only non-zero values from source are applied.
func MergeConfig(target, source *CLIConfig, sourceType string) {
	if source == nil {
		return
	}
	if target.Sources == nil {
		target.Sources = make(map[string]string)
	}

	if source.LogLevel != "" {
		target.LogLevel = source.LogLevel
		target.Sources[KeyLogLevel] = sourceType
	}
	if source.LogFormat != "" {
		target.LogFormat = source.LogFormat
		target.Sources[KeyLogFormat] = sourceType
	}
	if source.LogFile != "" {
		target.LogFile = source.LogFile
		target.Sources[KeyLogFile] = sourceType
	}
	if source.Root != "" {
		target.Root = source.Root
		target.Sources[KeyRoot] = sourceType
	}
	if source.ViewMode != "" {
		target.ViewMode = source.ViewMode
		target.Sources[KeyViewMode] = sourceType
	}
	if len(source.Files) > 0 {
		target.Files = append([]string(nil), source.Files...)
		target.Sources[KeyFiles] = sourceType
	}
	// For booleans, checking `if source.X` cannot detect an explicit false.
	// SetFields, populated during file loading, says whether the key was
	// present. Without it only true is merged.
	if boolIsSet(source, KeyJSON) {
		target.JSON = source.JSON
		target.Sources[KeyJSON] = sourceType
	}
}

// boolIsSet reports whether a boolean field identified by its YAML key was
// explicitly set in the source config.
func boolIsSet(cfg *CLIConfig, yamlKey string) bool {
	if cfg.SetFields != nil {
		return cfg.SetFields[yamlKey]
	}
	switch yamlKey {
	case KeyJSON:
		return cfg.JSON
	}
	return false
}
