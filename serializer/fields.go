package serializer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Field is the capability surface of a single-value field: it validates
// one value. Classification is by capability, never by concrete type.
type Field interface {
	Validate(value any) error
}

// CharField validates string values with an optional length limit.
type CharField struct {
	MaxLength int
}

func (f *CharField) Validate(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("serializer: expected string, got %T", value)
	}
	if f.MaxLength > 0 && len(s) > f.MaxLength {
		return fmt.Errorf("serializer: value exceeds max length %d", f.MaxLength)
	}
	return nil
}

var slugRegexp = regexp.MustCompile(`^[-a-zA-Z0-9_]+$`)

// SlugField validates short labels of letters, numbers, hyphens and
// underscores.
type SlugField struct{}

func (f *SlugField) Validate(value any) error {
	s, ok := value.(string)
	if !ok || !slugRegexp.MatchString(s) {
		return fmt.Errorf("serializer: %v is not a valid slug", value)
	}
	return nil
}

// IntegerField validates integer values.
type IntegerField struct{}

func (f *IntegerField) Validate(value any) error {
	switch value.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return nil
	}
	return fmt.Errorf("serializer: expected integer, got %T", value)
}

// FloatField validates floating point values.
type FloatField struct{}

func (f *FloatField) Validate(value any) error {
	switch value.(type) {
	case float32, float64, int:
		return nil
	}
	return fmt.Errorf("serializer: expected number, got %T", value)
}

// BooleanField validates boolean values.
type BooleanField struct{}

func (f *BooleanField) Validate(value any) error {
	if _, ok := value.(bool); !ok {
		return fmt.Errorf("serializer: expected bool, got %T", value)
	}
	return nil
}

// UUIDField validates canonical UUID strings and uuid.UUID values.
type UUIDField struct{}

func (f *UUIDField) Validate(value any) error {
	switch v := value.(type) {
	case uuid.UUID:
		return nil
	case string:
		if _, err := uuid.Parse(v); err != nil {
			return fmt.Errorf("serializer: %q is not a valid uuid: %w", v, err)
		}
		return nil
	}
	return fmt.Errorf("serializer: expected uuid, got %T", value)
}

// ChoiceField validates membership in a fixed choice set. It satisfies the
// schema package's ChoiceSource capability.
type ChoiceField struct {
	choices    []any
	allowBlank bool
	allowNull  bool
}

// NewChoiceField creates a choice field over the given values.
func NewChoiceField(choices ...any) *ChoiceField {
	return &ChoiceField{choices: choices}
}

// WithBlank allows the blank string as a value.
func (f *ChoiceField) WithBlank() *ChoiceField {
	f.allowBlank = true
	return f
}

// WithNull allows null as a value.
func (f *ChoiceField) WithNull() *ChoiceField {
	f.allowNull = true
	return f
}

// Choices returns the declared choice values in declaration order.
func (f *ChoiceField) Choices() []any {
	return f.choices
}

// AllowBlank reports whether the blank string is allowed.
func (f *ChoiceField) AllowBlank() bool {
	return f.allowBlank
}

// AllowNull reports whether null is allowed.
func (f *ChoiceField) AllowNull() bool {
	return f.allowNull
}

func (f *ChoiceField) Validate(value any) error {
	for _, choice := range f.choices {
		if choice == value {
			return nil
		}
	}
	if value == nil && f.allowNull {
		return nil
	}
	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" && f.allowBlank {
		return nil
	}
	return fmt.Errorf("serializer: %v is not a valid choice", value)
}
