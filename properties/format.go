package properties

import (
	"fmt"
	"strings"
)

// ParseError describes a data line that has no "=" separator.
// Load skips such lines and reports them instead of aborting.
type ParseError struct {
	// 1-based line number within the stream, 0 if unknown
	LineNo int
	// the offending line, trimmed
	Line string
}

func (e *ParseError) Error() string {
	if e.LineNo > 0 {
		return fmt.Sprintf("line %d in unrecognized format: '%s'", e.LineNo, e.Line)
	}
	return fmt.Sprintf("line in unrecognized format: '%s'", e.Line)
}

// FormatLine serializes a single key / value pair the way Store writes it
func FormatLine(key, value string) string {
	return key + " = " + value + "\n"
}

// IsCommentOrBlank returns true if line contributes no property:
// it is empty after trimming or its trimmed content starts with
// "#", "//" or "/*"
func IsCommentOrBlank(line string) bool {
	s := strings.TrimSpace(line)
	if len(s) == 0 {
		return true
	}
	return strings.HasPrefix(s, "#") ||
		strings.HasPrefix(s, "//") ||
		strings.HasPrefix(s, "/*")
}

// ParseLine parses one line of properties text.
// ok is false for blank and comment lines.
// A data line without "=" returns a *ParseError (LineNo is 0, Load
// fills it in). Key and value are split on the first "=" and trimmed
// of surrounding whitespace.
func ParseLine(line string) (key, value string, ok bool, err error) {
	s := strings.TrimSpace(line)
	if IsCommentOrBlank(s) {
		return "", "", false, nil
	}
	idx := strings.IndexByte(s, '=')
	if idx == -1 {
		return "", "", false, &ParseError{Line: s}
	}
	key = strings.TrimSpace(s[:idx])
	value = strings.TrimSpace(s[idx+1:])
	return key, value, true, nil
}
