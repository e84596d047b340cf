package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/panelkit/confdoc/pkg/confdoc"
	"github.com/panelkit/confdoc/pkg/configfile"
)

var (
	showRaw       bool
	showCollapsed bool
)

// FileOutput is the JSON form of an opened file.
type FileOutput struct {
	Path       string            `json:"path"`
	Format     string            `json:"format,omitempty"`
	ViewMode   string            `json:"viewMode"`
	Error      string            `json:"error,omitempty"`
	Sections   []confdoc.Section `json:"sections,omitempty"`
	RawContent *string           `json:"rawContent,omitempty"`
}

func fileOutput(st *configfile.State) FileOutput {
	out := FileOutput{
		Path:     st.Path,
		Format:   string(st.Format),
		ViewMode: string(st.ViewMode),
		Sections: st.Sections,
	}
	if st.Error != nil {
		out.Error = st.Error.Error()
	}
	if st.ViewMode == configfile.ViewRaw {
		raw := st.RawContent
		out.RawContent = &raw
		out.Sections = nil
	}
	return out
}

var showCmd = &cobra.Command{
	Use:   "show [file...]",
	Short: "Display configuration files as sections",
	Long: `Display configuration files as sections of typed entries.

Root-level values are listed under General; every nested block gets its own
section. Files that cannot be parsed are shown as raw text together with the
parse error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := targetFiles(args)
		if err != nil {
			return err
		}

		states, err := editor.OpenAll(cmd.Context(), paths)
		if err != nil {
			return err
		}
		mode := initialViewMode(showRaw)
		for _, st := range states {
			if st.Loaded && mode == configfile.ViewRaw {
				st.ViewMode = configfile.ViewRaw
			}
		}

		outs := make([]FileOutput, 0, len(states))
		for _, st := range states {
			outs = append(outs, fileOutput(st))
		}

		w := cmd.OutOrStdout()
		if err := printResult(w, outs, func() {
			for i, st := range states {
				if i > 0 {
					fmt.Fprintln(w)
				}
				renderState(w, st, showCollapsed)
			}
		}); err != nil {
			return err
		}

		for _, st := range states {
			if !st.Loaded {
				return fmt.Errorf("%s: %w", st.Path, st.Error)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "Show the raw file text instead of sections")
	showCmd.Flags().BoolVar(&showCollapsed, "collapsed", false, "Only list the titles of collapsed sections")
}

// renderState writes a human-readable view of st.
func renderState(w io.Writer, st *configfile.State, collapse bool) {
	format := string(st.Format)
	if format == "" {
		format = "unsupported"
	}
	fmt.Fprintf(w, "%s %s\n", fileStyle.Render(st.Path), typeStyle.Render("("+format+", "+string(st.ViewMode)+")"))

	if st.Error != nil {
		fmt.Fprintln(w, errorStyle.Render("! "+st.Error.Error()))
	}
	if !st.Loaded {
		return
	}
	if st.ViewMode == configfile.ViewRaw {
		fmt.Fprint(w, st.RawContent)
		if st.RawContent != "" && !strings.HasSuffix(st.RawContent, "\n") {
			fmt.Fprintln(w)
		}
		return
	}

	for _, sec := range st.Sections {
		fmt.Fprintln(w, sectionStyle.Render("["+sec.Title+"]"))
		if collapse && sec.Collapsed {
			fmt.Fprintf(w, "  %s\n", typeStyle.Render(fmt.Sprintf("%d entries", len(sec.Entries))))
			continue
		}
		renderEntries(w, sec.Entries, 1)
	}
}

func renderEntries(w io.Writer, entries []confdoc.Entry, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, e := range entries {
		if e.Type == confdoc.TypeObject {
			fmt.Fprintf(w, "%s%s:\n", indent, keyStyle.Render(e.Key))
			renderEntries(w, e.Children, depth+1)
			continue
		}
		fmt.Fprintf(w, "%s%s = %s %s\n", indent, keyStyle.Render(e.Key), e.RawValue, typeStyle.Render("("+string(e.Type)+")"))
	}
}
