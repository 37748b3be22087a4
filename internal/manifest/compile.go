package manifest

import (
	"fmt"
	"strings"

	"github.com/jensneuse/abstractlogger"

	"github.com/llehouerou/go-graphql-weaver"
	"github.com/llehouerou/go-graphql-weaver/ident"
	"github.com/llehouerou/go-graphql-weaver/internal/tagparser"
	"github.com/llehouerou/go-graphql-weaver/types"
)

const defaultPageInfoLabel = "pageInfo"

// Compiler turns manifests into weaver operations.
type Compiler struct {
	logger abstractlogger.Logger
}

// NewCompiler returns a compiler logging to logger. A nil logger discards
// everything.
func NewCompiler(logger abstractlogger.Logger) *Compiler {
	if logger == nil {
		logger = abstractlogger.NoopLogger
	}
	return &Compiler{logger: logger}
}

// compilation holds the state of a single Compile call.
type compilation struct {
	logger abstractlogger.Logger
	specs  map[string]weaver.FragmentSpec
}

// Compile builds the operation described by m. Structural mistakes fail here;
// argument values that cannot be encoded are reported by Operation.Build.
func (c *Compiler) Compile(m *Manifest) (weaver.Operation, error) {
	typ, err := operationType(m.Operation)
	if err != nil {
		return weaver.Operation{}, err
	}

	cc := &compilation{
		logger: c.logger,
		specs:  make(map[string]weaver.FragmentSpec, len(m.Fragments)),
	}
	// Fragments may spread each other, so every spec is known before any body
	// is compiled.
	for _, f := range m.Fragments {
		cc.specs[f.Name] = weaver.NewFragmentSpec(f.Name, f.On)
	}

	fragments := make([]weaver.Fragment, 0, len(m.Fragments))
	for _, f := range m.Fragments {
		children, err := cc.nodes(f.Selections, f.Name)
		if err != nil {
			return weaver.Operation{}, fmt.Errorf("failed to compile fragment `%s`: %w", f.Name, err)
		}
		fragments = append(fragments, weaver.NewFragment(cc.specs[f.Name], children...))
	}

	children, err := cc.nodes(m.Selections, string(typ))
	if err != nil {
		return weaver.Operation{}, fmt.Errorf("failed to compile %s: %w", typ, err)
	}

	op := weaver.NewOperation(typ, children...)
	if m.Name != "" {
		op = op.Named(m.Name)
	}
	for _, v := range m.Variables {
		op = op.Variable(v.Name, v.Type)
	}
	for _, d := range m.Directives {
		op = op.With(weaver.OperationDirective(d))
	}

	c.logger.Debug("manifest compiled",
		abstractlogger.String("operation", string(typ)),
		abstractlogger.String("name", m.Name),
		abstractlogger.Int("fragments", len(fragments)),
	)

	return op.Fragments(fragments...), nil
}

func operationType(name string) (weaver.OperationType, error) {
	switch typ := weaver.OperationType(strings.ToLower(strings.TrimSpace(name))); typ {
	case "":
		return weaver.Query, nil
	case weaver.Query, weaver.Mutation, weaver.Subscription:
		return typ, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOperation, name)
	}
}

func (cc *compilation) nodes(selections []Selection, parent string) ([]weaver.Node, error) {
	nodes := make([]weaver.Node, 0, len(selections))
	for i, s := range selections {
		node, err := cc.node(s, parent)
		if err != nil {
			return nil, fmt.Errorf("selection %d of `%s`: %w", i, parent, err)
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func (cc *compilation) node(s Selection, parent string) (weaver.Node, error) {
	set := 0
	for _, ok := range []bool{
		s.Field != "",
		s.Object != "",
		s.Inline != "",
		s.Fragment != "",
		s.Meta != "",
		len(s.Keys) > 0,
	} {
		if ok {
			set++
		}
	}
	if set != 1 {
		return nil, fmt.Errorf("%w: exactly one of field, object, inline, fragment, meta or keys must be set", ErrInvalidSelection)
	}

	switch {
	case s.Field != "":
		return cc.field(s, parent)
	case s.Object != "":
		return cc.object(s, parent)
	case s.Inline != "":
		return cc.inline(s.Inline, s, parent)
	case s.Fragment != "":
		return cc.reference(s.Fragment, s, parent)
	case s.Meta != "":
		return metaField(s.Meta), nil
	default:
		return cc.fieldSet(s, parent)
	}
}

func (cc *compilation) field(s Selection, parent string) (weaver.Node, error) {
	sel, err := tagparser.ParseSelector(s.Field)
	if err != nil {
		return nil, fmt.Errorf("%w: `%s`: %w", ErrInvalidSelection, s.Field, err)
	}
	if sel.IsFragment {
		return cc.spread(sel, s, parent)
	}
	if len(s.Children) > 0 {
		return nil, fmt.Errorf("%w: field `%s` has children, use object", ErrInvalidSelection, sel.FieldName)
	}

	path := parent + "." + sel.FieldName
	f := weaver.NewField(sel.FieldName)

	if alias := firstNonEmpty(s.Alias, sel.Alias); alias != "" {
		f = f.Alias(alias)
	}
	if s.CaseStyle != "" {
		style, err := caseStyle(s.CaseStyle)
		if err != nil {
			return nil, err
		}
		f = f.CaseStyle(style)
	}
	if s.SchemaName != "" {
		f = f.SchemaName(s.SchemaName)
	}
	for _, a := range s.Arguments {
		value, opts, err := argumentValue(a)
		if err != nil {
			return nil, err
		}
		f = f.Argument(a.Name, value, opts...)
	}

	cc.logDropped(s, path)
	return f.Include(included(s)).Skip(s.Skip), nil
}

func (cc *compilation) object(s Selection, parent string) (weaver.Node, error) {
	sel, err := tagparser.ParseSelector(s.Object)
	if err != nil {
		return nil, fmt.Errorf("%w: `%s`: %w", ErrInvalidSelection, s.Object, err)
	}
	if sel.IsFragment {
		return cc.spread(sel, s, parent)
	}

	path := parent + "." + sel.FieldName
	children, err := cc.nodes(s.Children, path)
	if err != nil {
		return nil, err
	}
	o := weaver.NewObject(sel.FieldName, children...)

	if alias := firstNonEmpty(s.Alias, sel.Alias); alias != "" {
		o = o.Alias(alias)
	}
	if s.CaseStyle != "" {
		style, err := caseStyle(s.CaseStyle)
		if err != nil {
			return nil, err
		}
		o = o.CaseStyle(style)
	}
	if s.SchemaName != "" {
		o = o.SchemaName(s.SchemaName)
	}
	for _, a := range s.Arguments {
		value, opts, err := argumentValue(a)
		if err != nil {
			return nil, err
		}
		o = o.Argument(a.Name, value, opts...)
	}

	if s.Slice != nil {
		switch {
		case s.Slice.Offset != nil:
			o = o.SliceOffset(s.Slice.First, *s.Slice.Offset)
		case s.Slice.After != nil:
			o = o.SliceAfter(s.Slice.First, s.Slice.After)
		default:
			o = o.Slice(s.Slice.First)
		}
	}

	pagination, err := paginationType(s.Pagination)
	if err != nil {
		return nil, err
	}
	if pagination == weaver.CursorPagination && s.Slice == nil {
		cc.logger.Debug("pagination ignored without slice", abstractlogger.String("path", path))
	}
	o = o.Pagination(pagination)

	if s.PageInfo != nil {
		o, err = withPageInfo(o, s.PageInfo)
		if err != nil {
			return nil, err
		}
	}

	cc.logDropped(s, path)
	o = o.Include(included(s)).Skip(s.Skip)
	if included(s) && !s.Skip && o.String() == "" {
		cc.logger.Debug("object removed, empty selection", abstractlogger.String("path", path))
	}
	return o, nil
}

// spread compiles the selector shorthands "...name" and "... on Type".
func (cc *compilation) spread(sel tagparser.Selector, s Selection, parent string) (weaver.Node, error) {
	if sel.TypeName != "" {
		return cc.inline(sel.TypeName, s, parent)
	}
	return cc.reference(sel.FragmentName, s, parent)
}

func (cc *compilation) inline(on string, s Selection, parent string) (weaver.Node, error) {
	path := parent + "." + types.FragmentOnPrefix + on
	children, err := cc.nodes(s.Children, path)
	if err != nil {
		return nil, err
	}

	cc.logDropped(s, path)
	return weaver.NewInlineFragment(on, children...).Include(included(s)).Skip(s.Skip), nil
}

func (cc *compilation) reference(name string, s Selection, parent string) (weaver.Node, error) {
	spec, ok := cc.specs[name]
	if !ok {
		return nil, fmt.Errorf("%w: `%s`", ErrUnknownFragment, name)
	}

	cc.logDropped(s, parent+"."+types.FragmentPrefix+name)
	return spec.Reference().Include(included(s)).Skip(s.Skip), nil
}

func (cc *compilation) fieldSet(s Selection, parent string) (weaver.Node, error) {
	set := weaver.Keys(s.Keys...).Exclude(s.Exclude...)
	for _, m := range s.Merge {
		children, err := cc.nodes(m.Children, parent+"."+m.Key)
		if err != nil {
			return nil, err
		}
		set = set.Merge(m.Key, children...)
	}
	return set, nil
}

func metaField(name string) weaver.MetaField {
	if strings.TrimPrefix(name, types.MetaFieldPrefix) == strings.TrimPrefix(types.TypenameField, types.MetaFieldPrefix) {
		return weaver.Typename()
	}
	return weaver.NewMetaField(name)
}

func (cc *compilation) logDropped(s Selection, path string) {
	if included(s) && !s.Skip {
		return
	}
	cc.logger.Debug("selection dropped",
		abstractlogger.String("path", path),
		abstractlogger.Any("include", included(s)),
		abstractlogger.Any("skip", s.Skip),
	)
}

func included(s Selection) bool {
	return s.Include == nil || *s.Include
}

func argumentValue(a Argument) (any, []weaver.ArgumentOption, error) {
	var opts []weaver.ArgumentOption
	if a.IncludeNull {
		opts = append(opts, weaver.IncludeIfNull())
	}

	switch {
	case a.Enum != "" && (a.Var != "" || a.Value != nil), a.Var != "" && a.Value != nil:
		return nil, nil, fmt.Errorf("%w: `%s` sets more than one of value, enum and var", ErrInvalidArgument, a.Name)
	case a.Enum != "":
		return weaver.Enum(a.Enum), opts, nil
	case a.Var != "":
		return weaver.Var(a.Var), opts, nil
	default:
		return a.Value, opts, nil
	}
}

func caseStyle(name string) (ident.Style, error) {
	style, ok := ident.ParseStyle(name)
	if !ok {
		return style, fmt.Errorf("%w: %q", ErrUnknownCaseStyle, name)
	}
	return style, nil
}

func paginationType(name string) (weaver.PaginationType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", weaver.NoPagination.String():
		return weaver.NoPagination, nil
	case weaver.CursorPagination.String():
		return weaver.CursorPagination, nil
	default:
		return weaver.NoPagination, fmt.Errorf("%w: %q", ErrUnknownPagination, name)
	}
}

func withPageInfo(o weaver.Object, p *PageInfo) (weaver.Object, error) {
	switch {
	case p.Label != "":
		return o.PageInfo(p.Label, p.Keys...), nil
	case p.Type != "":
		style := ident.CamelCase
		if p.Style != "" {
			var err error
			if style, err = caseStyle(p.Style); err != nil {
				return o, err
			}
		}
		return o.PageInfoType(p.Type, style, p.Keys...), nil
	default:
		return o.PageInfo(defaultPageInfoLabel, p.Keys...), nil
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
