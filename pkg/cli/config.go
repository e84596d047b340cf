package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/panelkit/confdoc/pkg/cli/internal/output"
	"github.com/panelkit/confdoc/pkg/cliconfig"
)

// ConfigValue is one row of config's JSON output.
type ConfigValue struct {
	Key    string `json:"key"`
	Value  any    `json:"value"`
	Source string `json:"source"`
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display effective configuration",
	Long: `Display the effective configuration and where each value came from:
default, global (~/.config/confdoc/config.yaml), local (.confdocrc.yaml),
env (CONFDOC_*) or flag.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rows := configRows(cfg)
		w := cmd.OutOrStdout()
		return printResult(w, rows, func() {
			tw := output.Table(w)
			fmt.Fprintln(tw, "KEY\tVALUE\tSOURCE")
			for _, r := range rows {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Key, displayValue(r.Value), r.Source)
			}
			_ = tw.Flush()
		})
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func configRows(c *cliconfig.CLIConfig) []ConfigValue {
	values := map[string]any{
		cliconfig.KeyLogLevel:  c.LogLevel,
		cliconfig.KeyLogFormat: c.LogFormat,
		cliconfig.KeyLogFile:   c.LogFile,
		cliconfig.KeyRoot:      c.Root,
		cliconfig.KeyViewMode:  c.ViewMode,
		cliconfig.KeyFiles:     c.Files,
		cliconfig.KeyJSON:      c.JSON,
	}
	rows := make([]ConfigValue, 0, len(values))
	for _, key := range cliconfig.Keys() {
		source := c.Sources[key]
		if source == "" {
			source = cliconfig.SourceDefault
		}
		rows = append(rows, ConfigValue{Key: key, Value: values[key], Source: source})
	}
	return rows
}

func displayValue(v any) string {
	switch val := v.(type) {
	case []string:
		if len(val) == 0 {
			return "-"
		}
		return strings.Join(val, ",")
	case string:
		if val == "" {
			return "-"
		}
		return val
	default:
		return fmt.Sprint(val)
	}
}
