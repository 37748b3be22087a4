package weaver

import (
	"fmt"

	"github.com/llehouerou/go-graphql-weaver/types"
)

// FragmentSpec identifies a named fragment and the type it applies to.
type FragmentSpec struct {
	Name string
	On   string
}

// NewFragmentSpec returns the spec of fragment name on type on.
func NewFragmentSpec(name, on string) FragmentSpec {
	return FragmentSpec{Name: name, On: on}
}

// String renders the fragment definition head, e.g. `fragment authorFields on Author`.
func (s FragmentSpec) String() string {
	return types.FragmentKeyword + " " + s.Name + " on " + s.On
}

// Reference returns a spread of the fragment.
func (s FragmentSpec) Reference() FragmentReference {
	return FragmentReference{spec: s}
}

// Fragment is a named fragment definition. It is not a Node: fragments are
// rendered after the operation they belong to, see Operation.Fragments.
type Fragment struct {
	spec FragmentSpec
	body string
	err  error
}

// NewFragment returns the definition of spec selecting children.
func NewFragment(spec FragmentSpec, children ...Node) Fragment {
	body, err := compose(children)
	if err != nil {
		err = fmt.Errorf("failed to compose fragment `%s`: %w", spec.Name, err)
	}
	return Fragment{spec: spec, body: body, err: err}
}

// Spec returns the identity of the fragment.
func (f Fragment) Spec() FragmentSpec {
	return f.spec
}

// Reference returns a spread of the fragment.
func (f Fragment) Reference() FragmentReference {
	return f.spec.Reference()
}

func (f Fragment) String() string {
	return selection(f.spec.String(), f.body)
}

func (f Fragment) Err() error {
	return f.err
}

// FragmentReference spreads a named fragment, e.g. `...authorFields`.
type FragmentReference struct {
	spec FragmentSpec
	directives
}

// Include keeps the spread only if include is true.
func (r FragmentReference) Include(include bool) FragmentReference {
	r.directives = r.directives.include(include)
	return r
}

// Skip drops the spread if skip is true.
func (r FragmentReference) Skip(skip bool) FragmentReference {
	r.directives = r.directives.skip(skip)
	return r
}

func (r FragmentReference) String() string {
	if r.dropped() {
		return ""
	}
	return types.FragmentPrefix + r.spec.Name
}

func (FragmentReference) Err() error {
	return nil
}

// InlineFragment selects fields on a concrete type, e.g. `... on User { id }`.
// Like an Object, it is removed when its children compose to nothing.
type InlineFragment struct {
	on   string
	body string
	directives
	err error
}

// NewInlineFragment returns an inline fragment on type on selecting children.
func NewInlineFragment(on string, children ...Node) InlineFragment {
	body, err := compose(children)
	if err != nil {
		err = fmt.Errorf("failed to compose inline fragment on `%s`: %w", on, err)
	}
	return InlineFragment{on: on, body: body, err: err}
}

func (f InlineFragment) removed() bool {
	return f.body == ""
}

// Include keeps the fragment only if include is true.
func (f InlineFragment) Include(include bool) InlineFragment {
	f.directives = f.directives.include(include)
	return f
}

// Skip drops the fragment if skip is true.
func (f InlineFragment) Skip(skip bool) InlineFragment {
	f.directives = f.directives.skip(skip)
	return f
}

func (f InlineFragment) String() string {
	if f.dropped() || f.removed() {
		return ""
	}
	return selection(types.FragmentOnPrefix+f.on, f.body)
}

func (f InlineFragment) Err() error {
	return f.err
}
