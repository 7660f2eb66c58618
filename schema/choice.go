package schema

// ChoiceSource is the capability surface of a field constrained to a fixed
// choice set. The serializer package's ChoiceField satisfies it.
type ChoiceSource interface {
	Choices() []any
	AllowBlank() bool
	AllowNull() bool
}

// BuildChoiceField builds an enum fragment from a field's declared choices.
// Declared order is preserved, duplicates included. A blank sentinel is
// appended when the field allows blank values, a null sentinel when it
// allows null (blank before null), neither when the sentinel is already a
// declared choice.
//
// The "type: string" tag depends on the declared choices only: it is set
// when every declared choice is a string and the choice set is non-empty,
// or when an empty choice set allows blank. Appended sentinels never flip
// it, so mixed or non-string choice sets leave the type unset.
func BuildChoiceField(field ChoiceSource) *Fragment {
	choices := field.Choices()

	enum := make(EnumValues, 0, len(choices)+2)
	enum = append(enum, choices...)

	if field.AllowBlank() && !containsValue(enum, "") {
		enum = append(enum, "")
	}
	if field.AllowNull() && !containsValue(enum, nil) {
		enum = append(enum, nil)
	}

	fragment := &Fragment{Enum: enum}
	if allStrings(choices) && (len(choices) > 0 || field.AllowBlank()) {
		fragment.Type = "string"
	}
	return fragment
}

func containsValue(values EnumValues, want any) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
