package cliconfig

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variables read by LoadEnvConfig.
const (
	EnvLogLevel  = "CONFDOC_LOG_LEVEL"
	EnvLogFormat = "CONFDOC_LOG_FORMAT"
	EnvLogFile   = "CONFDOC_LOG_FILE"
	EnvRoot      = "CONFDOC_ROOT"
	EnvViewMode  = "CONFDOC_VIEW_MODE"
	EnvFiles     = "CONFDOC_FILES"
	EnvJSON      = "CONFDOC_JSON"
)

// LoadEnvConfig applies CONFDOC_* environment variables to cfg.
// CONFDOC_FILES is a comma separated list.
func LoadEnvConfig(cfg *CLIConfig) error {
	env := &CLIConfig{
		LogLevel:  os.Getenv(EnvLogLevel),
		LogFormat: os.Getenv(EnvLogFormat),
		LogFile:   os.Getenv(EnvLogFile),
		Root:      os.Getenv(EnvRoot),
		ViewMode:  os.Getenv(EnvViewMode),
		SetFields: map[string]bool{},
	}
	if v := os.Getenv(EnvFiles); v != "" {
		for _, f := range strings.Split(v, ",") {
			if f = strings.TrimSpace(f); f != "" {
				env.Files = append(env.Files, f)
			}
		}
	}
	if v, ok := os.LookupEnv(EnvJSON); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvJSON, v, err)
		}
		env.JSON = b
		env.SetFields[KeyJSON] = true
	}

	MergeConfig(cfg, env, SourceEnv)
	return nil
}
