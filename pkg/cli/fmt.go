package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/panelkit/confdoc/pkg/configfile"
)

var (
	fmtCheck  bool
	fmtStdout bool
)

// FormatOutput is one row of fmt's JSON output.
type FormatOutput struct {
	Path    string `json:"path"`
	Changed bool   `json:"changed"`
	Skipped string `json:"skipped,omitempty"`
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [file...]",
	Short: "Rewrite files in canonical form",
	Long: `Rewrite files in canonical form: the output confdoc itself would write
after an edit. Files that cannot be parsed are skipped and left untouched.

With --check nothing is written and the command fails if any file would change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := targetFiles(args)
		if err != nil {
			return err
		}
		states, err := editor.OpenAll(cmd.Context(), paths)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		rows := make([]FormatOutput, 0, len(states))
		var changed int
		for _, st := range states {
			row := FormatOutput{Path: st.Path}
			if st.ViewMode == configfile.ViewRaw {
				row.Skipped = st.Error.Error()
				rows = append(rows, row)
				continue
			}

			content, err := st.Content()
			if err != nil {
				return fmt.Errorf("%s: %w", st.Path, err)
			}
			if fmtStdout {
				fmt.Fprint(w, content)
				continue
			}
			row.Changed = content != st.RawContent
			if row.Changed {
				changed++
				if !fmtCheck {
					if err := editor.Save(cmd.Context(), st); err != nil {
						return err
					}
				}
			}
			rows = append(rows, row)
		}
		if fmtStdout {
			return nil
		}

		if err := printResult(w, rows, func() {
			for _, r := range rows {
				switch {
				case r.Skipped != "":
					fmt.Fprintf(w, "skipped %s: %s\n", r.Path, r.Skipped)
				case r.Changed && fmtCheck:
					fmt.Fprintf(w, "would reformat %s\n", r.Path)
				case r.Changed:
					fmt.Fprintf(w, "reformatted %s\n", r.Path)
				}
			}
		}); err != nil {
			return err
		}

		if fmtCheck && changed > 0 {
			return fmt.Errorf("%w: %d of %d", ErrNotFormatted, changed, len(rows))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fmtCmd)
	fmtCmd.Flags().BoolVar(&fmtCheck, "check", false, "Report files that would change without writing them")
	fmtCmd.Flags().BoolVar(&fmtStdout, "stdout", false, "Print the formatted text instead of writing it")
}
