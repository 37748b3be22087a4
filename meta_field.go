package weaver

import (
	"strings"

	"github.com/llehouerou/go-graphql-weaver/types"
)

// MetaField is an introspection field such as `__typename`.
type MetaField struct {
	name string
}

// Typename returns the `__typename` meta field.
func Typename() MetaField {
	return MetaField{name: types.TypenameField}
}

// NewMetaField returns the meta field `__name`. A name already carrying the
// "__" prefix is used as is.
func NewMetaField(name string) MetaField {
	return MetaField{name: types.MetaFieldPrefix + strings.TrimPrefix(name, types.MetaFieldPrefix)}
}

func (m MetaField) String() string {
	return m.name
}

func (MetaField) Err() error {
	return nil
}
