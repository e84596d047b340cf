package confdoc

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedFormat is returned when no format is registered for a file.
// Such files can only be edited as raw text.
var ErrUnsupportedFormat = errors.New("unsupported configuration format")

// ParseError reports a document that could not be turned into a Map.
// Line and Column are 1-based and zero when unknown.
type ParseError struct {
	Format  string
	Line    int
	Column  int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("%s parse error at line %d, column %d: %s", e.Format, e.Line, e.Column, e.Message)
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s parse error at line %d: %s", e.Format, e.Line, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// BuildError reports an entry that could not be materialized into a node.
// Path holds the keys from the root to the offending entry.
type BuildError struct {
	Path    []string
	Message string
	Err     error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("build error at %q: %s", strings.Join(e.Path, "."), e.Message)
}

func (e *BuildError) Unwrap() error {
	return e.Err
}

// SerializeError reports a value that cannot be represented in the target
// format. Key is the dotted path of the offending key.
type SerializeError struct {
	Format  string
	Key     string
	Message string
}

func (e *SerializeError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s serialize error: %s", e.Format, e.Message)
	}
	return fmt.Sprintf("%s serialize error at %q: %s", e.Format, e.Key, e.Message)
}
