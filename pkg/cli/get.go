package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/panelkit/confdoc/pkg/configfile"
)

var getSection string

// EntryOutput is the JSON form of a single entry.
type EntryOutput struct {
	Path    string `json:"path"`
	Section string `json:"section,omitempty"`
	Key     string `json:"key"`
	Value   string `json:"value"`
	Type    string `json:"type"`
}

var getCmd = &cobra.Command{
	Use:   "get <file> <key>",
	Short: "Print the value of one key",
	Long: `Print the value of one key.

Keys inside a nested block are addressed with dots ("world.seed"), or with
--section and the plain key. A key that exists verbatim at the root, such
as "level.name" in a .properties file, always wins.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openForm(cmd, args[0])
		if err != nil {
			return err
		}

		section, key := address(cmd, st, getSection, args[1])
		e, ok := st.Lookup(section, key)
		if !ok {
			return fmt.Errorf("%w: %s in %s", ErrKeyNotFound, args[1], st.Path)
		}

		out := EntryOutput{Path: st.Path, Section: section, Key: key, Value: e.RawValue, Type: string(e.Type)}
		w := cmd.OutOrStdout()
		return printResult(w, out, func() {
			if len(e.Children) > 0 {
				renderEntries(w, e.Children, 0)
				return
			}
			fmt.Fprintln(w, e.RawValue)
		})
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().StringVar(&getSection, "section", "", "Section (root key of a nested block) holding the key")
}

// openForm opens path and fails when it cannot be edited as a form.
func openForm(cmd *cobra.Command, path string) (*configfile.State, error) {
	st, err := editor.Open(cmd.Context(), path)
	if err != nil {
		return nil, err
	}
	if st.ViewMode == configfile.ViewRaw {
		return nil, fmt.Errorf("%s: %w", st.Path, st.Error)
	}
	return st, nil
}

// address returns the section and key a command targets. An explicit
// --section wins; otherwise the dotted key is resolved against st.
func address(cmd *cobra.Command, st *configfile.State, section, key string) (string, string) {
	if cmd.Flags().Changed("section") {
		return section, key
	}
	return st.Resolve(key)
}
