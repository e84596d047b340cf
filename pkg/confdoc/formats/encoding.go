package formats

import (
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"

	"github.com/panelkit/confdoc/pkg/confdoc"
)

// decodeText validates that text is UTF-8 and drops a leading byte order mark.
func decodeText(format Format, text string) (string, error) {
	if strings.HasPrefix(text, "\xfe\xff") || strings.HasPrefix(text, "\xff\xfe") {
		return "", &confdoc.ParseError{
			Format:  string(format),
			Line:    1,
			Column:  1,
			Message: "UTF-16 text is not supported, convert the file to UTF-8",
		}
	}
	if !utf8.ValidString(text) {
		line, col := lineColumn(text, invalidUTF8Offset(text))
		return "", &confdoc.ParseError{
			Format:  string(format),
			Line:    line,
			Column:  col,
			Message: "text is not valid UTF-8",
		}
	}
	decoded, err := unicode.UTF8BOM.NewDecoder().String(text)
	if err != nil {
		return "", &confdoc.ParseError{Format: string(format), Message: err.Error(), Err: err}
	}
	return decoded, nil
}

func invalidUTF8Offset(text string) int {
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return len(text)
}

// lineColumn converts a byte offset into a 1-based line and rune column.
func lineColumn(text string, offset int) (line, col int) {
	if offset > len(text) {
		offset = len(text)
	}
	line, col = 1, 1
	for _, r := range text[:offset] {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

var lineInMessage = regexp.MustCompile(`(?i)\bline (\d+)\b:?\s*`)

// lineFromMessage extracts "line N" from a library error message and returns
// the message with that fragment and the library prefix removed.
func lineFromMessage(msg, prefix string) (int, string) {
	msg = strings.TrimPrefix(msg, prefix)
	loc := lineInMessage.FindStringSubmatchIndex(msg)
	if loc == nil {
		return 0, strings.TrimSpace(msg)
	}
	line, _ := strconv.Atoi(msg[loc[2]:loc[3]])
	return line, strings.TrimSpace(msg[:loc[0]] + msg[loc[1]:])
}

func invalidUTF8(format Format, key string) error {
	return &confdoc.SerializeError{Format: string(format), Key: key, Message: "key or value is not valid UTF-8"}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
