// Package serializer defines the capability surfaces of the serialization
// framework consumed by the schema generator: fields that validate a single
// value and serializers that declare a mapping of named fields.
//
// Classification is duck-typed: IsField and IsSerializer check capability
// interfaces, never concrete types, so third-party fields participate by
// implementing the same surface. Constructors stand in for classes: a
// zero-argument func returning a Field or Serializer is instantiated by
// ForceInstance, anything else passes through verbatim.
package serializer

// Serializer is the capability surface of an object serializer: it
// declares a mapping of named fields.
type Serializer interface {
	Fields() map[string]Field
}

// contexted is satisfied by serializers carrying a caller context.
type contexted interface {
	Context() map[string]any
}

// ObjectSerializer is a serializer over an explicit field mapping with an
// optional caller context.
type ObjectSerializer struct {
	fields  map[string]Field
	context map[string]any
}

// NewObjectSerializer creates a serializer over the given fields.
func NewObjectSerializer(fields map[string]Field) *ObjectSerializer {
	return &ObjectSerializer{fields: fields}
}

// WithContext attaches a caller context.
func (s *ObjectSerializer) WithContext(context map[string]any) *ObjectSerializer {
	s.context = context
	return s
}

// Fields returns the declared field mapping.
func (s *ObjectSerializer) Fields() map[string]Field {
	return s.fields
}

// Context returns the caller context, nil when unset.
func (s *ObjectSerializer) Context() map[string]any {
	return s.context
}

// ListSerializer wraps a child serializer for many-item payloads.
type ListSerializer struct {
	child   Serializer
	context map[string]any
}

// GetListSerializer wraps child as a many-item serializer, preserving the
// child's context when it carries one.
func GetListSerializer(child Serializer) *ListSerializer {
	list := &ListSerializer{child: child}
	if c, ok := child.(contexted); ok {
		list.context = c.Context()
	}
	return list
}

// Child returns the wrapped serializer.
func (s *ListSerializer) Child() Serializer {
	return s.child
}

// Fields returns the child's field mapping.
func (s *ListSerializer) Fields() map[string]Field {
	return s.child.Fields()
}

// Context returns the preserved context.
func (s *ListSerializer) Context() map[string]any {
	return s.context
}

// ForceInstance instantiates field and serializer constructors. Values
// that are not such constructors, framework or not, are returned unchanged.
func ForceInstance(v any) any {
	switch ctor := v.(type) {
	case func() Field:
		return ctor()
	case func() Serializer:
		return ctor()
	}
	return v
}

// IsSerializer reports whether v, given as an instance or a constructor,
// exposes the serializer capability surface.
func IsSerializer(v any) bool {
	_, ok := ForceInstance(v).(Serializer)
	return ok
}

// IsField reports whether v, given as an instance or a constructor,
// exposes the field capability surface and is not itself a serializer.
func IsField(v any) bool {
	instance := ForceInstance(v)
	if _, ok := instance.(Serializer); ok {
		return false
	}
	_, ok := instance.(Field)
	return ok
}
