package schema

import (
	"reflect"
	"sort"

	"github.com/vitalvas/specgen/typehint"
)

// ResolveTypeHint resolves a type hint into a schema fragment. Resolution
// recurses into nested shapes and never fails: a shape that cannot be
// resolved yields the empty fragment.
func ResolveTypeHint(h typehint.Hint) *Fragment {
	switch hint := h.(type) {
	case nil:
		return &Fragment{}

	case typehint.Optional:
		return resolveNullable(hint.Inner)

	case typehint.Union:
		return resolveUnion(hint.Members, false)

	case typehint.Sequence:
		return &Fragment{Type: "array", Items: resolveOrEmpty(hint.Elem)}

	case typehint.Tuple:
		n := hint.Arity
		return &Fragment{
			Type:      "array",
			Items:     resolveOrEmpty(hint.Elem),
			MinLength: &n,
			MaxLength: &n,
		}

	case typehint.Map:
		return &Fragment{Type: "object", AdditionalProperties: resolveOrEmpty(hint.Elem)}

	case typehint.Enum:
		fragment := &Fragment{Enum: append(EnumValues{}, hint.Values...)}
		if hint.Base == reflect.String {
			fragment.Type = "string"
		}
		return fragment

	case typehint.Literal:
		fragment := &Fragment{Enum: append(EnumValues{}, hint.Values...)}
		if allStrings(hint.Values) {
			fragment.Type = "string"
		}
		return fragment

	case typehint.Record:
		return resolveRecord(hint)

	case typehint.Alias:
		return ResolveTypeHint(hint.Target)

	case typehint.None:
		return &Fragment{Nullable: true}

	case typehint.Basic:
		if fragment := BuildBasicType(hint.Type); fragment != nil {
			return fragment
		}
		return &Fragment{}
	}

	return &Fragment{}
}

// resolveNullable resolves the inner hint and marks the result nullable.
// When the inner hint is a union, nullability sits alongside the oneOf
// branches, never inside them, so Optional[Union[A, B]] collapses into a
// two-branch oneOf with nullability at the top level.
func resolveNullable(inner typehint.Hint) *Fragment {
	switch h := inner.(type) {
	case typehint.Union:
		return resolveUnion(h.Members, true)
	case typehint.Alias:
		return resolveNullable(h.Target)
	case nil, typehint.None:
		return &Fragment{Nullable: true}
	}

	fragment := *ResolveTypeHint(inner)
	fragment.Nullable = true
	return &fragment
}

// resolveUnion resolves union members in declaration order. None members
// are removed first and converted into top-level nullability instead of a
// oneOf branch.
func resolveUnion(members []typehint.Hint, nullable bool) *Fragment {
	var kept []typehint.Hint
	for _, member := range members {
		switch h := member.(type) {
		case typehint.None:
			nullable = true
		case typehint.Optional:
			nullable = true
			kept = append(kept, h.Inner)
		default:
			kept = append(kept, member)
		}
	}

	switch len(kept) {
	case 0:
		return &Fragment{Nullable: nullable}
	case 1:
		if nullable {
			return resolveNullable(kept[0])
		}
		return ResolveTypeHint(kept[0])
	}

	branches := make([]*Fragment, len(kept))
	for i, member := range kept {
		branches[i] = ResolveTypeHint(member)
	}
	return &Fragment{Nullable: nullable, OneOf: branches}
}

// resolveRecord builds an object fragment from a structured record type.
// The two record kinds pin two historical required-list behaviors: tuple
// records list every field in declaration order, presence-aware records
// list only non-optional fields sorted and drop the key entirely when no
// field is required.
func resolveRecord(record typehint.Record) *Fragment {
	fragment := &Fragment{
		Description: record.Doc,
		Type:        "object",
		Properties:  make(map[string]*Fragment, len(record.Fields)),
	}

	var required []string
	for _, field := range record.Fields {
		fragment.Properties[field.Name] = resolveOrEmpty(field.Type)
		if record.Kind == typehint.RecordTuple || !field.Optional {
			required = append(required, field.Name)
		}
	}

	if record.Kind == typehint.RecordMap {
		sort.Strings(required)
	}
	fragment.Required = required

	return fragment
}

func resolveOrEmpty(h typehint.Hint) *Fragment {
	if h == nil {
		return &Fragment{}
	}
	return ResolveTypeHint(h)
}

func allStrings(values []any) bool {
	for _, v := range values {
		if _, ok := v.(string); !ok {
			return false
		}
	}
	return true
}
