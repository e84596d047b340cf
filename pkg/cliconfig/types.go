// Package cliconfig provides configuration types and loading for the confdoc CLI.
package cliconfig

// CLIConfig represents the complete configuration for the confdoc CLI.
// Configuration values can come from multiple sources with the following precedence:
// 1. Command-line flags (highest priority)
// 2. Environment variables
// 3. Local config file (.confdocrc.yaml in current directory)
// 4. Global config file (~/.config/confdoc/config.yaml)
// 5. Default values (lowest priority)
type CLIConfig struct {
	// Logging settings
	LogLevel  string `yaml:"logLevel" json:"logLevel"`
	LogFormat string `yaml:"logFormat" json:"logFormat"`
	LogFile   string `yaml:"logFile,omitempty" json:"logFile,omitempty"`

	// Root is the server directory config paths are resolved against.
	Root string `yaml:"root,omitempty" json:"root,omitempty"`

	// ViewMode is the initial editing mode: form or raw.
	ViewMode string `yaml:"viewMode" json:"viewMode"`

	// Files lists the config files of the server template. Entries may be
	// doublestar globs such as "plugins/*/config.yml".
	Files []string `yaml:"files,omitempty" json:"files,omitempty"`

	// Output settings
	JSON bool `yaml:"json" json:"json"`

	// Sources tracks where each value came from.
	Sources map[string]string `yaml:"-" json:"-"`

	// SetFields records which keys were present in a loaded file, so an
	// explicit false can override a true from a lower layer.
	SetFields map[string]bool `yaml:"-" json:"-"`
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceEnv     = "env"
	SourceGlobal  = "global"
	SourceLocal   = "local"
	SourceFlag    = "flag"
)

// Field keys, as used in config files and in Sources.
const (
	KeyLogLevel  = "logLevel"
	KeyLogFormat = "logFormat"
	KeyLogFile   = "logFile"
	KeyRoot      = "root"
	KeyViewMode  = "viewMode"
	KeyFiles     = "files"
	KeyJSON      = "json"
)

// Keys returns every field key in display order.
func Keys() []string {
	return []string{KeyLogLevel, KeyLogFormat, KeyLogFile, KeyRoot, KeyViewMode, KeyFiles, KeyJSON}
}
