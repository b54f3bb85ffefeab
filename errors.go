package fluentschema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidCursor       = "invalid_cursor"
	CodeInvalidKeywordValue = "invalid_keyword_value"
	CodeTypeAlreadySet      = "type_already_set"
	CodeDuplicateDefinition = "duplicate_definition"
	// Import-only codes
	CodeParseError         = "parse_error"
	CodeUnsupportedKeyword = "unsupported_keyword"
)

// Issue represents a single builder error. Path is the JSON Pointer of the
// node the offending call targeted (for example: /properties/email).
type Issue struct {
	Path    string
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: the offending value, expected shapes, etc.
	// Params carries structured parameters (e.g., {"got": -1}) for
	// observability and custom translators.
	Params map[string]any
}

// Issues is a collection of builder errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_cursor at /properties/email
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}
