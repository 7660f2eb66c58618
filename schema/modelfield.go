package schema

import (
	"fmt"

	"github.com/vitalvas/specgen/modelmeta"
)

// modelFieldTypeMap maps model field kinds to OpenAPI type and format.
var modelFieldTypeMap = map[modelmeta.FieldKind][2]string{
	modelmeta.KindAuto:     {"integer", ""},
	modelmeta.KindBool:     {"boolean", ""},
	modelmeta.KindChar:     {"string", ""},
	modelmeta.KindText:     {"string", ""},
	modelmeta.KindInt:      {"integer", ""},
	modelmeta.KindFloat:    {"number", ""},
	modelmeta.KindUUID:     {"string", "uuid"},
	modelmeta.KindDate:     {"string", "date"},
	modelmeta.KindDateTime: {"string", "date-time"},
	modelmeta.KindDecimal:  {"string", "decimal"},
	modelmeta.KindBinary:   {"string", "byte"},
}

// BuildModelFieldType maps a model field descriptor to its fragment.
// Unknown kinds behave like unknown basic types: a diagnostic is emitted
// and nil is returned.
func BuildModelFieldType(field *modelmeta.Field) *Fragment {
	if tf, ok := modelFieldTypeMap[field.Kind]; ok {
		fragment := &Fragment{Type: tf[0], Format: tf[1]}
		if field.MaxLength > 0 && tf[0] == "string" {
			n := field.MaxLength
			fragment.MaxLength = &n
		}
		return fragment
	}

	fmt.Fprintf(DiagnosticOutput, "schema: could not resolve model field %q of kind %s, defaulting to unknown\n",
		field.Name, field.Kind)
	return nil
}
