package weaver

import (
	"bytes"
	"io"
)

// writeFieldHead writes the head of a selection to w.
//
// E.g., ("newPost", "post", [id: 1]) -> "newPost: post(id: 1)".
func writeFieldHead(w io.Writer, alias, name string, args []Argument) {
	if alias != "" {
		_, _ = io.WriteString(w, alias)
		_, _ = io.WriteString(w, ": ")
	}
	_, _ = io.WriteString(w, name)
	writeArguments(w, args)
}

// writeSelection writes a selection set " { body }" to w, or " { }" when
// body is empty.
func writeSelection(w io.Writer, body string) {
	if body == "" {
		_, _ = io.WriteString(w, " { }")
		return
	}
	_, _ = io.WriteString(w, " { ")
	_, _ = io.WriteString(w, body)
	_, _ = io.WriteString(w, " }")
}

// selection renders head followed by the selection set of body.
//
// E.g., ("... on User", "id") -> "... on User { id }".
func selection(head, body string) string {
	var buf bytes.Buffer
	_, _ = io.WriteString(&buf, head)
	writeSelection(&buf, body)
	return buf.String()
}
