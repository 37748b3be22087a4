package weaver

import (
	"fmt"
	"math"
	"reflect"

	"github.com/llehouerou/go-graphql-weaver/ident"
	"github.com/llehouerou/go-graphql-weaver/internal/reflectutil"
	"github.com/llehouerou/go-graphql-weaver/internal/tagparser"
	"github.com/llehouerou/go-graphql-weaver/types"
)

// EnumValuer marks an application value as enum representable.
type EnumValuer = types.EnumValuer

// ValueOf converts a Go value into a Value.
//
//   - Value implementations are returned as is
//   - nil, nil pointers, nil slices and nil maps become Null
//   - EnumValuer becomes Enum
//   - encoding.TextMarshaler (time.Time, uuid.UUID, ...) becomes String
//   - bool, integers, floats and strings become Boolean, Int, Float and String
//   - slices and arrays become List
//   - maps with string keys become Map
//   - structs are records: a Map keyed by the `graphql` tag, the `json` tag or
//     the camel-cased field name. Nil fields are left out unless tagged
//     `includeNull`.
//
// Anything else fails with ErrUnsupportedValue, as do NaN and infinite floats,
// empty enum names and values referencing themselves.
func ValueOf(v any) (Value, error) {
	if v == nil {
		return Null, nil
	}
	if value, ok := v.(Value); ok {
		return value, checkValue(value)
	}
	enc := valueEncoder{seen: make(map[visit]struct{})}
	return enc.valueOf(reflect.ValueOf(v))
}

// checkValue rejects values built directly that have no GraphQL literal form.
func checkValue(v Value) error {
	switch v := v.(type) {
	case Float:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return fmt.Errorf("%w: %v has no literal form", ErrUnsupportedValue, float64(v))
		}
	case Enum:
		if v == "" {
			return fmt.Errorf("%w: empty enum name", ErrUnsupportedValue)
		}
	case List:
		for i, item := range v {
			if err := checkValue(item); err != nil {
				return fmt.Errorf("failed to encode list item %d: %w", i, err)
			}
		}
	case Map:
		for k, item := range v {
			if err := checkValue(item); err != nil {
				return fmt.Errorf("failed to encode map entry `%s`: %w", k, err)
			}
		}
	}
	return nil
}

// visit identifies a pointer, map or slice being encoded.
type visit struct {
	ptr uintptr
	typ reflect.Type
	len int
}

// valueEncoder walks a Go value. seen holds the references on the current
// path so that cyclic values fail instead of recursing forever.
type valueEncoder struct {
	seen map[visit]struct{}
}

func (e valueEncoder) valueOf(v reflect.Value) (Value, error) {
	if reflectutil.IsNull(v) {
		return Null, nil
	}
	if v.CanInterface() {
		if value, ok := v.Interface().(Value); ok {
			return value, checkValue(value)
		}
	}
	if name, ok := reflectutil.GetEnumName(v); ok {
		if name == "" {
			return nil, fmt.Errorf("%w: empty enum name from %v", ErrUnsupportedValue, v.Type())
		}
		return Enum(name), nil
	}
	if text, ok, err := reflectutil.GetText(v); ok {
		if err != nil {
			return nil, fmt.Errorf("failed to marshal `%v` as text: %w", v.Type(), err)
		}
		return String(text), nil
	}

	kind := v.Kind()
	switch kind {
	case reflect.Ptr, reflect.Map, reflect.Slice:
		key := visit{ptr: v.Pointer(), typ: v.Type()}
		if kind == reflect.Slice {
			key.len = v.Len()
		}
		if _, ok := e.seen[key]; ok {
			return nil, fmt.Errorf("%w: cyclic value %v", ErrUnsupportedValue, v.Type())
		}
		e.seen[key] = struct{}{}
		defer delete(e.seen, key)
	}

	switch {
	case kind == reflect.Ptr || kind == reflect.Interface:
		return e.valueOf(v.Elem())
	case kind == reflect.Bool:
		return Boolean(v.Bool()), nil
	case reflectutil.IsSignedKind(kind):
		return Int(v.Int()), nil
	case reflectutil.IsUnsignedKind(kind):
		if v.Uint() > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d overflows Int", ErrUnsupportedValue, v.Uint())
		}
		return Int(int64(v.Uint())), nil
	case reflectutil.IsFloatKind(kind):
		f := Float(v.Float())
		return f, checkValue(f)
	case kind == reflect.String:
		return String(v.String()), nil
	case kind == reflect.Slice || kind == reflect.Array:
		return e.listOf(v)
	case kind == reflect.Map:
		return e.mapOf(v)
	case kind == reflect.Struct:
		return e.recordOf(v)
	}

	return nil, fmt.Errorf("%w: %v", ErrUnsupportedValue, v.Type())
}

func (e valueEncoder) listOf(v reflect.Value) (Value, error) {
	list := make(List, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		item, err := e.valueOf(v.Index(i))
		if err != nil {
			return nil, fmt.Errorf("failed to encode list item %d: %w", i, err)
		}
		list = append(list, item)
	}
	return list, nil
}

func (e valueEncoder) mapOf(v reflect.Value) (Value, error) {
	if v.Type().Key().Kind() != reflect.String {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedMapKey, v.Type().Key())
	}

	m := make(Map, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		key := iter.Key().String()
		item, err := e.valueOf(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("failed to encode map entry `%s`: %w", key, err)
		}
		m[key] = item
	}
	return m, nil
}

// recordOf encodes a struct as an object value. Anonymous struct fields
// without a name in their tag are flattened into the parent.
func (e valueEncoder) recordOf(v reflect.Value) (Value, error) {
	t := v.Type()
	record := make(Map, t.NumField())

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if !f.IsExported() {
			continue
		}

		tag := recordTag(f)
		if tag.Skip {
			continue
		}

		fieldVal := v.Field(i)

		if f.Anonymous && tag.Name == "" {
			embedded := reflectutil.Indirect(fieldVal)
			if embedded.IsValid() && embedded.Kind() == reflect.Struct {
				inner, err := e.valueOf(fieldVal)
				if err != nil {
					return nil, err
				}
				if inner, ok := inner.(Map); ok {
					for k, item := range inner {
						record[k] = item
					}
					continue
				}
			}
		}

		name := tag.Name
		if name == "" {
			name = ident.Convert(f.Name, ident.CamelCase)
		}

		item, err := e.valueOf(fieldVal)
		if err != nil {
			return nil, fmt.Errorf("failed to encode record field `%v`: %w", f.Name, err)
		}
		if isNull(item) && !tag.IncludeNull {
			continue
		}
		record[name] = item
	}

	return record, nil
}

func recordTag(f reflect.StructField) tagparser.RecordTag {
	if tag, ok := f.Tag.Lookup(types.GraphQLTag); ok {
		return tagparser.ParseRecordTag(tag)
	}
	return tagparser.ParseRecordTag(f.Tag.Get(types.JSONTag))
}
