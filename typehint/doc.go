// Package typehint models runtime type annotations as a closed set of
// shapes and introspects Go types into them.
//
// A Hint is one of: Basic, None, Optional, Union, Sequence, Tuple, Map,
// Enum, Literal, Record, or Alias. Hints are either constructed directly,
// which covers shapes Go's type system cannot express (unions, literals,
// string-based enumerations), or derived from a reflect.Type via FromType.
//
// The schema package resolves hints into JSON Schema fragments.
package typehint

import "reflect"

// Documenter can be implemented by types to provide a description for the
// generated schema.
//
//	func (u User) SchemaDoc() string {
//	    return "A registered account."
//	}
type Documenter interface {
	SchemaDoc() string
}

// GetDoc returns the documentation a type declares for itself. Record and
// Alias hints carry their own doc. For Go types the Documenter capability
// is consulted; a doc promoted unchanged from an embedded base type is
// inherited boilerplate, not the type's own, and yields "".
func GetDoc(v any) string {
	switch h := v.(type) {
	case Record:
		return h.Doc
	case Alias:
		return GetDoc(h.Target)
	case reflect.Type:
		return docForType(h)
	case nil:
		return ""
	}
	return docForType(reflect.TypeOf(v))
}

func docForType(t reflect.Type) string {
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	d, ok := reflect.New(t).Interface().(Documenter)
	if !ok {
		return ""
	}
	doc := d.SchemaDoc()
	if doc == "" {
		return ""
	}

	// A promoted SchemaDoc from an embedded type returning the same text
	// means the outer type declares no doc of its own.
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if !field.Anonymous {
				continue
			}
			ft := field.Type
			if ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if base, ok := reflect.New(ft).Interface().(Documenter); ok && base.SchemaDoc() == doc {
				return ""
			}
		}
	}

	return doc
}
