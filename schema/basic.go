package schema

import (
	"fmt"
	"io"
	"math/big"
	"os"
	"reflect"
	"time"

	"github.com/google/uuid"
)

// DiagnosticOutput receives one line per unresolvable type. Tests swap it
// for a buffer; it is not written to concurrently by this package beyond
// single formatted writes.
var DiagnosticOutput io.Writer = os.Stderr

var (
	timeType = reflect.TypeOf(time.Time{})
	uuidType = reflect.TypeOf(uuid.UUID{})
	ratType  = reflect.TypeOf(big.Rat{})
)

// BuildBasicType maps a primitive Go type to its fragment. Unknown types
// are non-fatal: a diagnostic line naming the type is written to
// DiagnosticOutput and nil is returned, which callers must treat as
// "schema unknown".
func BuildBasicType(t reflect.Type) *Fragment {
	if t == nil {
		fmt.Fprintf(DiagnosticOutput, "schema: could not resolve type <nil>, defaulting to unknown\n")
		return nil
	}

	switch t {
	case timeType:
		return &Fragment{Type: "string", Format: "date-time"}
	case uuidType:
		return &Fragment{Type: "string", Format: "uuid"}
	case ratType:
		return &Fragment{Type: "string", Format: "decimal"}
	}

	switch t.Kind() {
	case reflect.Bool:
		return &Fragment{Type: "boolean"}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Fragment{Type: "integer"}

	case reflect.Float32, reflect.Float64:
		return &Fragment{Type: "number"}

	case reflect.String:
		return &Fragment{Type: "string"}

	case reflect.Slice, reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return &Fragment{Type: "string", Format: "byte"}
		}
		return &Fragment{Type: "array", Items: &Fragment{}}

	case reflect.Map:
		return &Fragment{Type: "object", AdditionalProperties: &Fragment{}}
	}

	fmt.Fprintf(DiagnosticOutput, "schema: could not resolve type %q, defaulting to unknown\n", t.String())
	return nil
}
