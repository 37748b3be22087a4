package weaver

import (
	"bytes"
	"io"
	"strings"

	"github.com/llehouerou/go-graphql-weaver/types"
)

// PaginationType selects how a sliced object is expanded.
type PaginationType int

const (
	// NoPagination renders a sliced object as a plain object with slice arguments.
	NoPagination PaginationType = iota
	// CursorPagination wraps the selection of a sliced object in a cursor
	// connection: `cursor edges { node { ... } } pageInfo { ... }`.
	CursorPagination
)

func (p PaginationType) String() string {
	switch p {
	case CursorPagination:
		return "cursor"
	default:
		return "none"
	}
}

// Slice limits the results of an object.
//
// Offset and After are mutually exclusive; Offset wins when both are set.
type Slice struct {
	First  int
	Offset *int
	After  Value
}

// arguments returns the slice as field arguments: first, then offset or after.
func (s Slice) arguments() []Argument {
	args := []Argument{{Key: types.FirstArgument, Value: Int(s.First)}}
	switch {
	case s.Offset != nil:
		args = append(args, Argument{Key: types.OffsetArgument, Value: Int(*s.Offset)})
	case !isNull(s.After):
		args = append(args, Argument{Key: types.AfterArgument, Value: s.After})
	}
	return args
}

// String renders the slice as an argument list, e.g. `(first: 2, offset: 4)`.
func (s Slice) String() string {
	var buf bytes.Buffer
	writeArguments(&buf, s.arguments())
	return buf.String()
}

// PageInfoSpec describes the page info selection appended to a cursor connection.
type PageInfoSpec struct {
	Label string
	Keys  []string
}

// String renders `label { k1 k2 }`, or nothing when no key is selected.
func (p PageInfoSpec) String() string {
	if len(p.Keys) == 0 {
		return ""
	}
	return selection(p.Label, strings.Join(p.Keys, " "))
}

// writeCursorConnection writes the cursor connection wrapping body to w.
//
// E.g., ("id", pageInfo { endCursor }) -> "cursor edges { node { id } } pageInfo { endCursor }".
func writeCursorConnection(w io.Writer, body string, pageInfo *PageInfoSpec) {
	_, _ = io.WriteString(w, types.CursorField)
	_, _ = io.WriteString(w, " ")
	_, _ = io.WriteString(w, selection(types.EdgesField, selection(types.NodeField, body)))
	if pageInfo == nil {
		return
	}
	if info := pageInfo.String(); info != "" {
		_, _ = io.WriteString(w, " ")
		_, _ = io.WriteString(w, info)
	}
}
