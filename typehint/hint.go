package typehint

import "reflect"

// Hint describes one shape of a runtime type annotation. The set of shapes
// is closed: resolution dispatches over exactly these variants.
type Hint interface {
	isHint()
}

// Basic wraps a concrete Go type with no further structure. It resolves
// through the primitive type table.
type Basic struct {
	Type reflect.Type
}

// None marks the absence of a value inside a Union. A Union member of this
// shape is elided from the member list and surfaces as nullable instead.
type None struct{}

// Optional marks a value that may be absent or null.
type Optional struct {
	Inner Hint
}

// Union holds two or more alternative shapes in declaration order.
type Union struct {
	Members []Hint
}

// Sequence is a homogeneous collection (list, set, iterable). A nil Elem
// means the element type is unparametrized.
type Sequence struct {
	Elem Hint
}

// Tuple is a fixed-arity homogeneous collection.
type Tuple struct {
	Elem  Hint
	Arity int
}

// Map is a mapping with homogeneous values. A nil Elem means the value type
// is unparametrized.
type Map struct {
	Key  Hint
	Elem Hint
}

// Enum is a named enumeration over literal values. Base carries the kind of
// the enumeration's declared value base; an enumeration declared over a
// string base resolves with "type: string", while a plain enumeration whose
// values merely happen to be strings does not.
type Enum struct {
	Name   string
	Base   reflect.Kind
	Values []any
}

// Literal is an anonymous set of allowed literal values.
type Literal struct {
	Values []any
}

// RecordKind distinguishes the two historical record flavors, which differ
// in how the required property list is produced.
type RecordKind int

const (
	// RecordTuple carries no optionality metadata: every field is required,
	// listed in declaration order.
	RecordTuple RecordKind = iota
	// RecordMap is presence-aware: only non-optional fields are required,
	// listed in sorted order, and the required list is omitted when empty.
	RecordMap
)

// RecordField is one named field of a structured record type. A nil Type
// resolves to the empty fragment.
type RecordField struct {
	Name     string
	Type     Hint
	Optional bool
}

// Record is a structured record type with named, typed fields.
type Record struct {
	Name   string
	Doc    string
	Kind   RecordKind
	Fields []RecordField
}

// Alias is a transparent name for another hint. Resolution unwraps aliases,
// recursing through nested ones, before dispatching.
type Alias struct {
	Name   string
	Target Hint
}

func (Basic) isHint()    {}
func (None) isHint()     {}
func (Optional) isHint() {}
func (Union) isHint()    {}
func (Sequence) isHint() {}
func (Tuple) isHint()    {}
func (Map) isHint()      {}
func (Enum) isHint()     {}
func (Literal) isHint()  {}
func (Record) isHint()   {}
func (Alias) isHint()    {}

// Of wraps the dynamic type of v as a Basic hint.
func Of(v any) Basic {
	return Basic{Type: reflect.TypeOf(v)}
}
