package typehint

import (
	"math/big"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Predeclared hints for common primitive shapes.
var (
	Int      = Of(int(0))
	Float    = Of(float64(0))
	Bool     = Of(false)
	String   = Of("")
	Bytes    = Of([]byte(nil))
	DateTime = Of(time.Time{})
	UUID     = Of(uuid.UUID{})
	Decimal  = Of(big.Rat{})
)

var opaqueTypes = map[reflect.Type]bool{
	reflect.TypeOf(time.Time{}): true,
	reflect.TypeOf(uuid.UUID{}): true,
	reflect.TypeOf(big.Rat{}):   true,
}

// FromType introspects a Go type and produces the matching hint. Pointers
// become Optional, slices become Sequence, arrays become fixed-arity Tuple,
// maps become Map, and structs become presence-aware records driven by
// their json tags. An interface type has no structure and yields nil.
func FromType(t reflect.Type) Hint {
	if t == nil {
		return nil
	}

	if t.Kind() == reflect.Pointer {
		return Optional{Inner: FromType(t.Elem())}
	}

	if opaqueTypes[t] {
		return Basic{Type: t}
	}

	switch t.Kind() {
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Uint8 {
			return Basic{Type: t}
		}
		return Sequence{Elem: FromType(t.Elem())}

	case reflect.Array:
		return Tuple{Elem: FromType(t.Elem()), Arity: t.Len()}

	case reflect.Map:
		return Map{Key: FromType(t.Key()), Elem: FromType(t.Elem())}

	case reflect.Struct:
		return recordFromStruct(t)

	case reflect.Interface:
		return nil
	}

	return Basic{Type: t}
}

// recordFromStruct builds a presence-aware record from struct fields.
// Fields with the json omitempty/omitzero option are optional. Embedded
// structs are inlined unless their json tag names them explicitly; fields
// inlined through a pointer embedding are all optional because the pointer
// can be nil.
func recordFromStruct(t reflect.Type) Record {
	record := Record{
		Name: t.Name(),
		Doc:  GetDoc(t),
		Kind: RecordMap,
	}
	record.Fields = collectStructFields(t, false)
	return record
}

func collectStructFields(t reflect.Type, allOptional bool) []RecordField {
	var fields []RecordField

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if !field.IsExported() {
			continue
		}

		if field.Anonymous {
			jsonName, _ := parseJSONTag(field.Tag.Get("json"))
			if jsonName == "" {
				ft := field.Type
				isPtr := ft.Kind() == reflect.Pointer
				if isPtr {
					ft = ft.Elem()
				}
				if ft.Kind() == reflect.Struct && !opaqueTypes[ft] {
					fields = append(fields, collectStructFields(ft, allOptional || isPtr)...)
					continue
				}
			}
		}

		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue
		}

		name, optional := parseJSONTag(jsonTag)
		if name == "" {
			name = field.Name
		}

		fields = append(fields, RecordField{
			Name:     name,
			Type:     FromType(field.Type),
			Optional: optional || allOptional,
		})
	}

	return fields
}

func parseJSONTag(tag string) (string, bool) {
	if tag == "" {
		return "", false
	}
	name, rest, _ := strings.Cut(tag, ",")
	return name, strings.Contains(rest, "omitempty") || strings.Contains(rest, "omitzero")
}
