package replace

import "strings"

// contextWindow is the number of characters of surrounding text shown on
// each side of an offending token in a diagnostic.
const contextWindow = 20

// Diagnostic describes one token that could not be resolved. It is computed
// on demand from the match and the full text, emitted once through a
// Reporter, and never persisted.
type Diagnostic struct {
	Token   string // full matched token text
	Message string // what went wrong
	Path    string // relative file path, for the human reading build logs
	Line    int    // 1-based line number of the token

	// Context window around the token, already clamped to the text bounds.
	Before           string
	After            string
	LeadingEllipsis  bool
	TrailingEllipsis bool
}

// Reporter receives diagnostics for problematic tokens. Implementations
// must not fail; reporting is purely observational. A Reporter shared by
// concurrent Engine.Apply calls must be safe for concurrent use.
type Reporter interface {
	Report(d Diagnostic)
}

// newDiagnostic computes the line number and context window for a token at
// the given byte offset in text.
//
// The leading ellipsis appears when the window start was clamped, i.e. there
// is text before the window that is not shown. The trailing ellipsis appears
// when the window's end reaches the exact end of the text; this asymmetry is
// the tool's historical behavior and is kept as-is.
func newDiagnostic(raw string, offset int, text, path, message string) Diagnostic {
	d := Diagnostic{
		Token:   raw,
		Message: message,
		Path:    path,
		Line:    1 + strings.Count(text[:offset], "\n"),
	}

	start := offset - contextWindow
	if start > 0 {
		d.LeadingEllipsis = true
	} else {
		start = 0
	}
	d.Before = text[start:offset]

	end := offset + len(raw) + contextWindow
	if end >= len(text) {
		end = len(text)
		d.TrailingEllipsis = true
	}
	d.After = text[offset+len(raw) : end]

	return d
}

// Context renders the window around the token as a single line, with
// ellipses applied. The token itself is included verbatim; sinks that want
// to highlight it can rebuild the line from the individual fields.
func (d Diagnostic) Context() string {
	var b strings.Builder
	if d.LeadingEllipsis {
		b.WriteString("...")
	}
	b.WriteString(d.Before)
	b.WriteString(d.Token)
	b.WriteString(d.After)
	if d.TrailingEllipsis {
		b.WriteString("...")
	}
	return b.String()
}
