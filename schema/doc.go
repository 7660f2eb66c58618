// Package schema converts runtime type information into OpenAPI-compatible
// JSON Schema fragments.
//
// The central entry point is ResolveTypeHint, which recursively resolves a
// typehint.Hint into a Fragment: optionals become nullable, unions become
// ordered oneOf lists with None elided into nullability, sequences and
// fixed-arity tuples become arrays, mappings become objects with
// additionalProperties, enumerations and literals become enums, and
// structured record types become object schemas with properties and a
// required list. BuildBasicType backs the primitive cases.
//
// Resolution never fails: unknown primitives produce a diagnostic line on
// DiagnosticOutput and a nil fragment, and unresolvable hint structures
// fall through to the empty fragment.
//
// The remaining helpers build enum fragments from choice fields
// (BuildChoiceField), map model field descriptors (BuildModelFieldType),
// and rewrite fragments carrying sibling keys next to $ref into a
// composition-safe allOf form (SafeRef).
package schema
