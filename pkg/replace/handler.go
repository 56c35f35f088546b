package replace

import "fmt"

// matchHandler is the per-token decision logic: resolve the token to its
// replacement value, or report a problem and delete the token from the
// output. It never fails; malformed or unknown tokens degrade to diagnosed
// removal so a whole file is never lost to one bad token.
type matchHandler struct {
	table    Table
	prefix   string // empty in unprefixed mode
	reporter Reporter
}

// handle returns the text that replaces tok in the output, and whether the
// token resolved to a table value. A false return means the token was
// reported and is being deleted.
func (h *matchHandler) handle(tok Token, text, path string) (string, bool) {
	if tok.Kind == TokenMissingPrefix {
		h.report(tok, text, path, fmt.Sprintf("replacement must start with '%s.'", h.prefix))
		return "", false
	}

	value, ok := h.table.Lookup(tok.Key)
	if !ok {
		h.report(tok, text, path, "has no replacement!")
		return "", false
	}
	return value, true
}

func (h *matchHandler) report(tok Token, text, path, message string) {
	if h.reporter == nil {
		return
	}
	h.reporter.Report(newDiagnostic(tok.Raw, tok.Offset, text, path, message))
}
