package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/panelkit/confdoc/pkg/confdoc"
	"github.com/panelkit/confdoc/pkg/confdoc/formats"
)

var convertTo string

// ConvertOutput is the JSON result of convert.
type ConvertOutput struct {
	Source string `json:"source"`
	Target string `json:"target,omitempty"`
	Format string `json:"format"`
}

var convertCmd = &cobra.Command{
	Use:   "convert <source> [<target>]",
	Short: "Write a file's settings in another format",
	Long: `Write a file's settings in another format. The target format comes from
the target's extension, or from --to when printing to stdout.

Nested blocks become dotted keys in .properties output. TOML has no null, so
null values are dropped when converting to TOML.`,
	Example: `  confdoc convert config.yml config.toml
  confdoc convert server.properties --to json`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openForm(cmd, args[0])
		if err != nil {
			return err
		}

		var target formats.Format
		switch {
		case len(args) == 2:
			if target, err = formats.Lookup(args[1]); err != nil {
				return err
			}
		case convertTo != "":
			if target = formats.ParseFormat(convertTo); target == formats.FormatUnknown {
				return fmt.Errorf("%w: %q", confdoc.ErrUnsupportedFormat, convertTo)
			}
		default:
			return fmt.Errorf("convert needs a target file or --to")
		}

		m, err := confdoc.ToConfigMap(st.Sections)
		if err != nil {
			return err
		}
		content, err := formats.Serialize(target, m)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if len(args) == 1 {
			fmt.Fprint(w, content)
			return nil
		}
		if err := store.WriteText(cmd.Context(), args[1], content); err != nil {
			return err
		}
		logger.Info("converted config file", "source", args[0], "target", args[1], "format", string(target))

		out := ConvertOutput{Source: args[0], Target: args[1], Format: string(target)}
		return printResult(w, out, func() {
			fmt.Fprintf(w, "Wrote %s (%s)\n", args[1], target)
		})
	},
}

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVar(&convertTo, "to", "", "Output format when printing to stdout (properties, yaml, json, toml)")
}
