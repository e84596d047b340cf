package cliconfig

import (
	"errors"
	"fmt"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/panelkit/confdoc/pkg/configfile"
	"github.com/panelkit/confdoc/pkg/logging"
)

// Validate checks the configuration for invalid values.
func (c *CLIConfig) Validate() error {
	var errs []error
	if !logging.IsValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("logLevel %q is not one of debug, info, warn, error", c.LogLevel))
	}
	if c.LogFormat != string(logging.FormatText) && c.LogFormat != string(logging.FormatJSON) {
		errs = append(errs, fmt.Errorf("logFormat %q is not one of text, json", c.LogFormat))
	}
	if _, err := configfile.ParseViewMode(c.ViewMode); err != nil {
		errs = append(errs, fmt.Errorf("viewMode: %w", err))
	}
	for _, f := range c.Files {
		if !doublestar.ValidatePattern(f) {
			errs = append(errs, fmt.Errorf("files: invalid pattern %q", f))
		}
	}
	return errors.Join(errs...)
}
