package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/panelkit/confdoc/pkg/confdoc"
	"github.com/panelkit/confdoc/pkg/confdoc/formats"
)

// Common CLI errors
var (
	ErrKeyNotFound  = errors.New("key not found")
	ErrNoFiles      = errors.New("no files given and none configured (set files: in .confdocrc.yaml)")
	ErrNotFormatted = errors.New("files are not formatted")
)

// printError writes err to w, adding a hint for errors the user can act on.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)

	var perr *confdoc.ParseError
	switch {
	case errors.As(err, &perr):
		fmt.Fprintln(w, "Hint: fix the file or edit it with: confdoc edit --raw <file>")
	case errors.Is(err, confdoc.ErrUnsupportedFormat):
		var exts []string
		for _, f := range formats.AllFormats() {
			exts = append(exts, formats.Extensions(f)...)
		}
		fmt.Fprintf(w, "Hint: supported extensions are %s\n", strings.Join(exts, ", "))
	}
}
