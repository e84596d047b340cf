package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/panelkit/confdoc/pkg/cli/internal/output"
	"github.com/panelkit/confdoc/pkg/confdoc/formats"
)

// DetectOutput is one row of detect's JSON output.
type DetectOutput struct {
	Path      string `json:"path"`
	Format    string `json:"format,omitempty"`
	Supported bool   `json:"supported"`
}

var detectCmd = &cobra.Command{
	Use:   "detect [file...]",
	Short: "Report the configuration format of each file",
	Long: `Report the configuration format of each file, chosen by its extension.
Files with other extensions are reported as unsupported; they can still be
edited as raw text.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := targetFiles(args)
		if err != nil {
			return err
		}

		rows := make([]DetectOutput, 0, len(paths))
		for _, p := range paths {
			f := formats.Detect(p)
			rows = append(rows, DetectOutput{Path: p, Format: string(f), Supported: f != formats.FormatUnknown})
		}

		w := cmd.OutOrStdout()
		return printResult(w, rows, func() {
			tw := output.Table(w)
			for _, r := range rows {
				format := r.Format
				if !r.Supported {
					format = "unsupported"
				}
				fmt.Fprintf(tw, "%s\t%s\n", r.Path, format)
			}
			_ = tw.Flush()
		})
	},
}

func init() {
	rootCmd.AddCommand(detectCmd)
}
