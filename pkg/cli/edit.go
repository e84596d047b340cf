package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/panelkit/confdoc/pkg/cli/internal/output"
	"github.com/panelkit/confdoc/pkg/confdoc"
	"github.com/panelkit/confdoc/pkg/configfile"
)

var editRaw bool

// editField binds one scalar entry to a form input. Key is dotted below the
// section for entries nested in objects.
type editField struct {
	Section  string
	Key      string
	Type     confdoc.EntryType
	Value    string
	original string
}

func (f *editField) changed() bool {
	return f.Value != f.original
}

var editCmd = &cobra.Command{
	Use:   "edit [file]",
	Short: "Edit a file interactively",
	Long: `Edit a file interactively, one form page per section.

Files that cannot be parsed, or any file when --raw is given, open in a
text area holding the whole file. Without a file argument a configured
file is picked from a list.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := pickFile(args)
		if err != nil {
			return err
		}
		st, err := editor.Open(cmd.Context(), path)
		if err != nil {
			return err
		}
		if st.Error != nil {
			output.Warn(cmd.ErrOrStderr(), "%s opened as raw text: %v", st.Path, st.Error)
		}
		if initialViewMode(editRaw) == configfile.ViewRaw {
			st.ViewMode = configfile.ViewRaw
		}

		var changes int
		if st.ViewMode == configfile.ViewRaw {
			changes, err = editRawContent(st)
		} else {
			changes, err = editSections(st)
		}
		if errors.Is(err, huh.ErrUserAborted) {
			fmt.Fprintln(cmd.ErrOrStderr(), "Edit cancelled; nothing saved.")
			return nil
		}
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if changes == 0 {
			fmt.Fprintln(w, "No changes.")
			return nil
		}

		save := true
		confirm := huh.NewConfirm().
			Title(fmt.Sprintf("Save %d change(s) to %s?", changes, st.Path)).
			Affirmative("Save").
			Negative("Discard").
			Value(&save)
		if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
			return err
		}
		if !save {
			fmt.Fprintln(w, "Changes discarded.")
			return nil
		}
		if err := editor.Save(cmd.Context(), st); err != nil {
			return err
		}
		fmt.Fprintf(w, "Saved %s\n", st.Path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().BoolVar(&editRaw, "raw", false, "Edit the raw file text")
}

// pickFile returns the file named in args, or asks the user to choose one
// of the configured files.
func pickFile(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	paths, err := targetFiles(nil)
	if err != nil {
		return "", err
	}
	if len(paths) == 1 {
		return paths[0], nil
	}

	var choice string
	sel := huh.NewSelect[string]().
		Title("Which file do you want to edit?").
		Options(huh.NewOptions(paths...)...).
		Value(&choice)
	if err := huh.NewForm(huh.NewGroup(sel)).Run(); err != nil {
		return "", err
	}
	return choice, nil
}

func editRawContent(st *configfile.State) (int, error) {
	content := st.RawContent
	title := st.Path
	if st.Error != nil {
		title = fmt.Sprintf("%s (%v)", st.Path, st.Error)
	}
	text := huh.NewText().
		Title(title).
		Lines(20).
		Value(&content)
	if err := huh.NewForm(huh.NewGroup(text)).Run(); err != nil {
		return 0, err
	}
	if content == st.RawContent {
		return 0, nil
	}
	st.RawContent = content
	return 1, nil
}

func editSections(st *configfile.State) (int, error) {
	fields := collectFields(st)
	if len(fields) == 0 {
		return 0, nil
	}
	if err := buildEditForm(st, fields).Run(); err != nil {
		return 0, err
	}
	return applyFields(st, fields)
}

// collectFields returns one field per scalar entry, in section order.
func collectFields(st *configfile.State) []*editField {
	var fields []*editField
	for _, sec := range st.Sections {
		section := ""
		if !sec.General {
			section = sec.RootKey()
		}
		fields = appendFields(fields, section, "", sec.Entries)
	}
	return fields
}

func appendFields(fields []*editField, section, prefix string, entries []confdoc.Entry) []*editField {
	for _, e := range entries {
		key := e.Key
		if prefix != "" {
			key = prefix + "." + e.Key
		}
		if e.Type == confdoc.TypeObject {
			fields = appendFields(fields, section, key, e.Children)
			continue
		}
		fields = append(fields, &editField{Section: section, Key: key, Type: e.Type, Value: e.RawValue, original: e.RawValue})
	}
	return fields
}

// applyFields writes changed fields back to st and returns how many changed.
func applyFields(st *configfile.State, fields []*editField) (int, error) {
	var n int
	for _, f := range fields {
		if !f.changed() {
			continue
		}
		if err := st.Set(f.Section, f.Key, f.Value, ""); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// buildEditForm lays out one form group per section.
func buildEditForm(st *configfile.State, fields []*editField) *huh.Form {
	var groups []*huh.Group
	var current []huh.Field
	section := ""
	flush := func() {
		if len(current) == 0 {
			return
		}
		groups = append(groups, huh.NewGroup(current...).Title(sectionTitle(st, section)))
		current = nil
	}

	for i, f := range fields {
		if i == 0 || f.Section != section {
			flush()
			section = f.Section
		}
		current = append(current, inputFor(f))
	}
	flush()
	return huh.NewForm(groups...)
}

func sectionTitle(st *configfile.State, section string) string {
	for _, sec := range st.Sections {
		if (section == "" && sec.General) || (!sec.General && sec.RootKey() == section) {
			return sec.Title
		}
	}
	return section
}

func inputFor(f *editField) huh.Field {
	if f.Type == confdoc.TypeBoolean {
		return huh.NewSelect[string]().
			Title(f.Key).
			Options(huh.NewOptions("true", "false")...).
			Value(&f.Value)
	}
	return huh.NewInput().
		Title(f.Key).
		Description(string(f.Type)).
		Value(&f.Value).
		Validate(validatorFor(f.Type))
}

func validatorFor(typ confdoc.EntryType) func(string) error {
	return func(s string) error {
		if typ != confdoc.TypeNumber || strings.TrimSpace(s) == "" {
			return nil
		}
		if _, err := confdoc.ParseNumber(strings.TrimSpace(s)); err != nil {
			return fmt.Errorf("%q is not a number", s)
		}
		return nil
	}
}
