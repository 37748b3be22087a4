package weaver

// ForEachNode repeats a selection over a collection. Its items are spliced
// into the parent selection in order.
type ForEachNode struct {
	body string
	directives
	err error
}

// ForEach builds one node per item with fn and composes them.
//
// E.g., ForEach([]string{"id", "title"}, func(s string) Node { return NewField(s) }) -> "id title".
func ForEach[T any](items []T, fn func(T) Node) ForEachNode {
	children := make([]Node, 0, len(items))
	for _, item := range items {
		children = append(children, fn(item))
	}
	body, err := compose(children)
	return ForEachNode{body: body, err: err}
}

// Include keeps the repeated selection only if include is true.
func (n ForEachNode) Include(include bool) ForEachNode {
	n.directives = n.directives.include(include)
	return n
}

// Skip drops the repeated selection if skip is true.
func (n ForEachNode) Skip(skip bool) ForEachNode {
	n.directives = n.directives.skip(skip)
	return n
}

func (n ForEachNode) String() string {
	if n.dropped() {
		return ""
	}
	return n.body
}

func (n ForEachNode) Err() error {
	return n.err
}
