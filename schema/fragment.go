package schema

import "reflect"

// EnumValues is an ordered list of allowed literal values. A nil list means
// the enum keyword is absent; a non-nil empty list marshals as an explicit
// empty enum.
type EnumValues []any

// IsZero implements the encoding/json omitzero and yaml.v3 IsZeroer
// contracts so that only an absent enum is omitted.
func (e EnumValues) IsZero() bool {
	return e == nil
}

// Fragment is one node of a JSON Schema tree, shaped for OpenAPI 3.0
// composition. Field order mirrors the emitted key order: a description,
// when present, is the first key of the fragment.
//
// A fragment carrying $ref must not carry sibling keys; SafeRef rewrites
// such fragments into a composition-safe allOf form.
type Fragment struct {
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	Type   string     `json:"type,omitempty" yaml:"type,omitempty"`
	Format string     `json:"format,omitempty" yaml:"format,omitempty"`
	Enum   EnumValues `json:"enum,omitzero" yaml:"enum,omitempty"`

	Items     *Fragment `json:"items,omitempty" yaml:"items,omitempty"`
	MinLength *int      `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength *int      `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`

	Properties           map[string]*Fragment `json:"properties,omitempty" yaml:"properties,omitempty"`
	Required             []string             `json:"required,omitempty" yaml:"required,omitempty"`
	AdditionalProperties *Fragment            `json:"additionalProperties,omitempty" yaml:"additionalProperties,omitempty"`

	Nullable bool `json:"nullable,omitempty" yaml:"nullable,omitempty"`

	OneOf []*Fragment `json:"oneOf,omitempty" yaml:"oneOf,omitempty"`
	AllOf []*Fragment `json:"allOf,omitempty" yaml:"allOf,omitempty"`
	Ref   string      `json:"$ref,omitempty" yaml:"$ref,omitempty"`
}

// IsEmpty reports whether the fragment carries no keys at all. An empty
// fragment is the "schema unknown" value: it constrains nothing.
func (f *Fragment) IsEmpty() bool {
	return f == nil || reflect.DeepEqual(*f, Fragment{})
}
