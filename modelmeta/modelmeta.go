// Package modelmeta describes record models and the relation graph between
// them. Models declare typed fields and forward relations; reverse
// relations are derived from the graph. FollowFieldSource walks a dotted
// relation path to its terminal field descriptor.
package modelmeta

import (
	"errors"
	"fmt"
	"strings"
)

// FieldKind classifies a concrete model field.
type FieldKind int

const (
	KindAuto FieldKind = iota
	KindBool
	KindChar
	KindText
	KindInt
	KindFloat
	KindUUID
	KindDate
	KindDateTime
	KindDecimal
	KindBinary
)

func (k FieldKind) String() string {
	switch k {
	case KindAuto:
		return "auto"
	case KindBool:
		return "bool"
	case KindChar:
		return "char"
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindUUID:
		return "uuid"
	case KindDate:
		return "date"
	case KindDateTime:
		return "datetime"
	case KindDecimal:
		return "decimal"
	case KindBinary:
		return "binary"
	}
	return "unknown"
}

// Field is a concrete field declared on a model.
type Field struct {
	Name       string
	Kind       FieldKind
	PrimaryKey bool
	MaxLength  int
}

// Relation is a forward relation declared on a model, pointing at another
// model. RelatedName overrides the reverse accessor name; when empty, the
// accessor defaults to the lower-cased name of the declaring model.
type Relation struct {
	Name        string
	Target      *Model
	RelatedName string
}

// Model is one record model registered in a graph.
type Model struct {
	name      string
	graph     *Graph
	fields    []*Field
	byName    map[string]*Field
	relations  map[string]*Relation
	pk         *Field
	implicitPK bool
}

// Graph is a registry of models forming a relation graph. Reverse-relation
// lookups scan the registry, which keeps traversal an explicit loop over an
// adjacency structure rather than recursion through live metadata.
type Graph struct {
	models []*Model
	byName map[string]*Model
}

// NewGraph creates an empty model graph.
func NewGraph() *Graph {
	return &Graph{byName: make(map[string]*Model)}
}

// Model registers and returns a model with the given name. Registering the
// same name twice returns the existing model. A fresh model starts with an
// implicit auto primary key named "id"; declaring an explicit primary key
// field replaces it.
func (g *Graph) Model(name string) *Model {
	if m, ok := g.byName[name]; ok {
		return m
	}
	pk := &Field{Name: "id", Kind: KindAuto, PrimaryKey: true}
	m := &Model{
		name:       name,
		graph:      g,
		fields:     []*Field{pk},
		byName:     map[string]*Field{pk.Name: pk},
		relations:  make(map[string]*Relation),
		pk:         pk,
		implicitPK: true,
	}
	g.models = append(g.models, m)
	g.byName[name] = m
	return m
}

// Name returns the model name.
func (m *Model) Name() string {
	return m.name
}

// AddField declares a concrete field on the model. A primary-key field
// evicts the implicit "id" field, if still present.
func (m *Model) AddField(field *Field) *Model {
	if field.PrimaryKey && m.implicitPK {
		delete(m.byName, m.pk.Name)
		for i, f := range m.fields {
			if f == m.pk {
				m.fields = append(m.fields[:i], m.fields[i+1:]...)
				break
			}
		}
		m.implicitPK = false
	}
	m.fields = append(m.fields, field)
	m.byName[field.Name] = field
	if field.PrimaryKey {
		m.pk = field
	}
	return m
}

// ForeignKey declares a forward relation under the given attribute name.
func (m *Model) ForeignKey(name string, target *Model) *Model {
	m.relations[name] = &Relation{Name: name, Target: target}
	return m
}

// ForeignKeyRelated declares a forward relation with an explicit reverse
// accessor name on the target model.
func (m *Model) ForeignKeyRelated(name string, target *Model, relatedName string) *Model {
	m.relations[name] = &Relation{Name: name, Target: target, RelatedName: relatedName}
	return m
}

// Field returns the concrete field with the given name, if declared.
func (m *Model) Field(name string) (*Field, bool) {
	f, ok := m.byName[name]
	return f, ok
}

// PrimaryKey returns the model's primary key field. Models that never
// declared one keep the implicit auto field named "id".
func (m *Model) PrimaryKey() *Field {
	return m.pk
}

func (r *Relation) accessor(declaring *Model) string {
	if r.RelatedName != "" {
		return r.RelatedName
	}
	return strings.ToLower(declaring.name)
}

// reverseRelation finds the model declaring a forward relation back at
// current whose reverse accessor matches name.
func (g *Graph) reverseRelation(current *Model, name string) (*Model, bool) {
	for _, m := range g.models {
		for _, rel := range m.relations {
			if rel.Target == current && rel.accessor(m) == name {
				return m, true
			}
		}
	}
	return nil, false
}

// ErrUnknownAttribute marks a relation-path hop that resolves to neither a
// relation nor, at the final position, a concrete field. It signals a
// configuration error on the caller's side and is never swallowed.
var ErrUnknownAttribute = errors.New("modelmeta: unknown attribute")

// FollowFieldSource walks the dotted relation path starting at model and
// returns the terminal field descriptor. Each hop first tries a forward
// relation, then a reverse one. A final hop naming a relation resolves to
// the target model's primary key; otherwise it must name a concrete field.
func FollowFieldSource(model *Model, path []string) (*Field, error) {
	if model == nil {
		return nil, fmt.Errorf("%w: no model for path %v", ErrUnknownAttribute, path)
	}
	if len(path) == 0 {
		return nil, fmt.Errorf("%w: empty path on model %s", ErrUnknownAttribute, model.name)
	}

	current := model
	for i, hop := range path {
		last := i == len(path)-1

		if rel, ok := current.relations[hop]; ok {
			if last {
				return rel.Target.PrimaryKey(), nil
			}
			current = rel.Target
			continue
		}

		if source, ok := current.graph.reverseRelation(current, hop); ok {
			if last {
				return source.PrimaryKey(), nil
			}
			current = source
			continue
		}

		if last {
			if field, ok := current.byName[hop]; ok {
				return field, nil
			}
		}

		return nil, fmt.Errorf("%w: %s has no relation or field %q (path %v)",
			ErrUnknownAttribute, current.name, hop, path)
	}

	return nil, fmt.Errorf("%w: path %v did not terminate", ErrUnknownAttribute, path)
}
