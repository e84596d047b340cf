package configfile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/panelkit/confdoc/pkg/fileaccess"
	"github.com/panelkit/confdoc/pkg/logging"
)

// ErrNotLoaded is returned when saving a state whose file was never read.
var ErrNotLoaded = errors.New("file has not been loaded")

// maxParallelOpens bounds the number of files read at once by OpenAll.
const maxParallelOpens = 8

// Editor opens and saves configuration files through a fileaccess.Store.
type Editor struct {
	store  *fileaccess.Store
	logger *slog.Logger
}

// NewEditor creates an Editor. A nil logger discards output.
func NewEditor(store *fileaccess.Store, logger *slog.Logger) *Editor {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Editor{store: store, logger: logger}
}

// Open reads path and loads it into a new State. Read failures are returned
// and also recorded on the state; parse failures only switch the state to
// raw mode.
func (e *Editor) Open(ctx context.Context, path string) (*State, error) {
	st := NewState(path)
	content, err := e.store.ReadText(ctx, path)
	if err != nil {
		st.ViewMode = ViewRaw
		st.Error = err
		e.logger.Warn("failed to read config file", "path", path, "error", err)
		return st, err
	}

	st.Load(content)
	if st.Error != nil {
		e.logger.Warn("config file opened in raw mode", "path", path, "format", string(st.Format), "error", st.Error)
	} else {
		e.logger.Debug("opened config file", "path", path, "format", string(st.Format), "sections", len(st.Sections))
	}
	return st, nil
}

// OpenAll opens every path concurrently. The result has one state per path,
// in input order; a file that cannot be read carries the failure in its
// state. Only cancellation of ctx is returned as an error.
func (e *Editor) OpenAll(ctx context.Context, paths []string) ([]*State, error) {
	states := make([]*State, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelOpens)

	for i, p := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			states[i], _ = e.Open(gctx, p)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return states, nil
}

// Save writes the state back to its file. The complete content is computed
// before anything is written, so a failing build or serialization leaves the
// file untouched.
func (e *Editor) Save(ctx context.Context, st *State) error {
	if !st.Loaded {
		return fmt.Errorf("%w: %s", ErrNotLoaded, st.Path)
	}
	content, err := st.Content()
	if err != nil {
		e.logger.Warn("failed to render config file", "path", st.Path, "format", string(st.Format), "error", err)
		return err
	}
	if err := e.store.WriteText(ctx, st.Path, content); err != nil {
		e.logger.Error("failed to write config file", "path", st.Path, "error", err)
		return err
	}

	st.RawContent = content
	e.logger.Info("saved config file", "path", st.Path, "format", string(st.Format), "mode", string(st.ViewMode))
	return nil
}

// Expand resolves the config file paths declared by a server template.
// Patterns may use doublestar globs ("plugins/*/config.yml",
// "config/**/*.toml") and are matched against regular files in the store;
// plain paths are kept even when the file does not exist yet. The result is
// sorted and free of duplicates.
func (e *Editor) Expand(patterns []string) ([]string, error) {
	fsys := afero.NewIOFS(e.store.Fs())

	var out []string
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if !hasMeta(p) {
			out = append(out, p)
			continue
		}

		pattern := strings.TrimPrefix(path.Clean(p), "/")
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid pattern %q: %w", p, doublestar.ErrBadPattern)
		}
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("failed to expand %q: %w", p, err)
		}
		e.logger.Debug("expanded config pattern", "pattern", p, "matches", len(matches))
		out = append(out, matches...)
	}

	slices.Sort(out)
	return slices.Compact(out), nil
}

func hasMeta(p string) bool {
	return strings.ContainsAny(p, `*?[{\`)
}
