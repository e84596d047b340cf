package formats

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/panelkit/confdoc/pkg/confdoc"
)

func TestParse_StripsUTF8BOM(t *testing.T) {
	m, err := Parse(FormatProperties, "\ufeffmotd=hello\n")
	require.NoError(t, err)
	assert.Equal(t, []string{"motd"}, m.Keys())
}

func TestParse_RejectsUTF16(t *testing.T) {
	for _, f := range AllFormats() {
		_, err := Parse(f, "\xff\xfea\x00=\x001\x00")
		var perr *confdoc.ParseError
		require.True(t, errors.As(err, &perr), f.String())
		assert.Equal(t, 1, perr.Line)
		assert.Contains(t, perr.Message, "UTF-16")
	}
}

func TestParse_RejectsInvalidUTF8(t *testing.T) {
	_, err := Parse(FormatProperties, "a=1\nbé=\xff\n")
	var perr *confdoc.ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, 4, perr.Column)
	assert.Equal(t, "properties", perr.Format)
}

func TestLineColumn(t *testing.T) {
	text := "ab\ncdé\nf"
	line, col := lineColumn(text, 0)
	assert.Equal(t, []int{1, 1}, []int{line, col})
	line, col = lineColumn(text, 3)
	assert.Equal(t, []int{2, 1}, []int{line, col})
	line, col = lineColumn(text, len("ab\ncdé"))
	assert.Equal(t, []int{2, 4}, []int{line, col})
	line, col = lineColumn(text, 1000)
	assert.Equal(t, []int{3, 2}, []int{line, col})
}

func TestLineFromMessage(t *testing.T) {
	line, msg := lineFromMessage("yaml: line 3: did not find expected key", "yaml: ")
	assert.Equal(t, 3, line)
	assert.Equal(t, "did not find expected key", msg)

	line, msg = lineFromMessage("properties: Line 12: invalid unicode literal", "properties: ")
	assert.Equal(t, 12, line)
	assert.Equal(t, "invalid unicode literal", msg)

	line, msg = lineFromMessage("something else", "yaml: ")
	assert.Equal(t, 0, line)
	assert.Equal(t, "something else", msg)
}
