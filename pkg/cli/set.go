package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/panelkit/confdoc/pkg/confdoc"
	"github.com/panelkit/confdoc/pkg/configfile"
	"github.com/panelkit/confdoc/pkg/fileaccess"
)

var (
	setSection string
	setType    string
)

// ChangeOutput is the JSON result of set and unset.
type ChangeOutput struct {
	Path    string `json:"path"`
	Section string `json:"section,omitempty"`
	Key     string `json:"key"`
	Value   string `json:"value,omitempty"`
	Type    string `json:"type,omitempty"`
	Changed bool   `json:"changed"`
}

var setCmd = &cobra.Command{
	Use:   "set <file> <key> <value>",
	Short: "Change or add a key and save the file",
	Long: `Change or add a key and save the file.

An existing key keeps its position and type; a new key is appended and its
type is inferred from the value (true/false, null, numbers, otherwise text).
A boolean key only takes true or false; a null key takes the type of
its new value. Use --type to force a type. A missing file is created.`,
	Example: `  confdoc set server.properties max-players 40
  confdoc set config.yml world.seed 42
  confdoc set ops.json level 4 --type number`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, key, value := args[0], args[1], args[2]

		var typ confdoc.EntryType
		if setType != "" {
			if typ = confdoc.ParseEntryType(setType); typ == "" {
				return fmt.Errorf("unknown type %q (expected string, number, boolean or null)", setType)
			}
		}

		st, err := editor.Open(cmd.Context(), path)
		switch {
		case errors.Is(err, fileaccess.ErrNotFound):
			st = configfile.NewState(path)
			st.Load("")
			if st.Error != nil {
				return st.Error
			}
			logger.Info("creating config file", "path", path, "format", string(st.Format))
		case err != nil:
			return err
		case st.ViewMode == configfile.ViewRaw:
			return fmt.Errorf("%s: %w", st.Path, st.Error)
		}

		section, key := address(cmd, st, setSection, key)
		if err := st.Set(section, key, value, typ); err != nil {
			return err
		}
		if err := editor.Save(cmd.Context(), st); err != nil {
			return err
		}

		e, _ := st.Lookup(section, key)
		out := ChangeOutput{Path: st.Path, Section: section, Key: key, Value: e.RawValue, Type: string(e.Type), Changed: true}
		w := cmd.OutOrStdout()
		return printResult(w, out, func() {
			fmt.Fprintf(w, "Set %s = %s (%s) in %s\n", args[1], e.RawValue, e.Type, st.Path)
		})
	},
}

var unsetSection string

var unsetCmd = &cobra.Command{
	Use:   "unset <file> <key>",
	Short: "Remove a key and save the file",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openForm(cmd, args[0])
		if err != nil {
			return err
		}

		section, key := address(cmd, st, unsetSection, args[1])
		removed, err := st.Unset(section, key)
		if err != nil {
			return err
		}
		if !removed {
			return fmt.Errorf("%w: %s in %s", ErrKeyNotFound, args[1], st.Path)
		}
		if err := editor.Save(cmd.Context(), st); err != nil {
			return err
		}

		out := ChangeOutput{Path: st.Path, Section: section, Key: key, Changed: true}
		w := cmd.OutOrStdout()
		return printResult(w, out, func() {
			fmt.Fprintf(w, "Removed %s from %s\n", args[1], st.Path)
		})
	},
}

func init() {
	rootCmd.AddCommand(setCmd)
	rootCmd.AddCommand(unsetCmd)
	setCmd.Flags().StringVar(&setSection, "section", "", "Section (root key of a nested block) holding the key")
	setCmd.Flags().StringVar(&setType, "type", "", "Value type: string, number, boolean or null")
	unsetCmd.Flags().StringVar(&unsetSection, "section", "", "Section (root key of a nested block) holding the key")
}
