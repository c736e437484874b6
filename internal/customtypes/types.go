// Package customtypes models user-declared GraphQL types and reconciles
// edits against an existing catalog.
package customtypes

import (
	"fmt"

	"github.com/purush7/graphql-engine/internal/typewrap"
)

// Kind discriminates the CustomType variants.
type Kind string

const (
	KindScalar      Kind = "scalar"
	KindObject      Kind = "object"
	KindInputObject Kind = "input_object"
	KindEnum        Kind = "enum"
)

// Kinds lists every kind in wire bucket order.
var Kinds = []Kind{KindScalar, KindObject, KindInputObject, KindEnum}

// Bucket returns the pluralized wire key of k.
func (k Kind) Bucket() string { return string(k) + "s" }

// ParseKind accepts a kind or its plural bucket key.
func ParseKind(s string) (Kind, error) {
	for _, k := range Kinds {
		if s == string(k) || s == k.Bucket() {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown type kind %q", s)
}

// KindOfBucket singularizes a wire bucket key.
func KindOfBucket(bucket string) (Kind, bool) {
	for _, k := range Kinds {
		if k.Bucket() == bucket {
			return k, true
		}
	}
	return "", false
}

// CustomType is one of *Scalar, *Enum, *Object or *InputObject.
type CustomType interface {
	TypeName() string
	Kind() Kind
	Modifying() bool
	customType()
}

// Header holds what every variant carries.
type Header struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	// IsModifying marks an edit that replaces the catalog entry of the same name.
	IsModifying bool `json:"-" yaml:"-"`
}

func (h Header) TypeName() string { return h.Name }
func (h Header) Modifying() bool  { return h.IsModifying }

type Scalar struct {
	Header `yaml:",inline"`
}

type Enum struct {
	Header `yaml:",inline"`
	Values []EnumValue `json:"values" yaml:"values"`
}

type Object struct {
	Header `yaml:",inline"`
	Fields []Field `json:"fields" yaml:"fields"`
}

type InputObject struct {
	Header `yaml:",inline"`
	Fields []Field `json:"fields" yaml:"fields"`
}

func (*Scalar) Kind() Kind      { return KindScalar }
func (*Enum) Kind() Kind        { return KindEnum }
func (*Object) Kind() Kind      { return KindObject }
func (*InputObject) Kind() Kind { return KindInputObject }

func (*Scalar) customType()      {}
func (*Enum) customType()        {}
func (*Object) customType()      {}
func (*InputObject) customType() {}

// EnumValue is a single member of an enum.
type EnumValue struct {
	Value       string `json:"value" yaml:"value"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

func (v EnumValue) Attr(name string) string {
	switch name {
	case AttrValue:
		return v.Value
	case AttrDescription:
		return v.Description
	}
	return ""
}

// Field is a field of an object or input object. Type holds the wrapped
// type name, e.g. "[String!]".
type Field struct {
	Name        string `json:"name" yaml:"name"`
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// NewField builds a field of base type wrapped by choice.
func NewField(name, base string, choice typewrap.Choice) Field {
	return Field{Name: name, Type: choice.Wrap(base)}
}

// Wrap returns the editor modifier choice of f's type.
func (f Field) Wrap() (typewrap.Choice, bool) {
	_, stack, err := typewrap.Unwrap(f.Type)
	if err != nil {
		return 0, false
	}
	return typewrap.ChoiceOf(stack)
}

func (f Field) Attr(name string) string {
	switch name {
	case AttrName:
		return f.Name
	case AttrType:
		return f.Type
	case AttrDescription:
		return f.Description
	}
	return ""
}

// FieldsOf returns the fields of object and input object types, nil otherwise.
func FieldsOf(t CustomType) []Field {
	switch t := t.(type) {
	case *Object:
		return t.Fields
	case *InputObject:
		return t.Fields
	case *Scalar, *Enum:
		return nil
	default:
		panic("unreachable")
	}
}

// Clone returns a deep copy of t.
func Clone(t CustomType) CustomType {
	switch t := t.(type) {
	case *Scalar:
		c := *t
		return &c
	case *Enum:
		c := *t
		c.Values = append([]EnumValue(nil), t.Values...)
		return &c
	case *Object:
		c := *t
		c.Fields = append([]Field(nil), t.Fields...)
		return &c
	case *InputObject:
		c := *t
		c.Fields = append([]Field(nil), t.Fields...)
		return &c
	default:
		panic("unreachable")
	}
}

// New returns an empty type of kind k.
func New(k Kind, name string) CustomType {
	h := Header{Name: name}
	switch k {
	case KindScalar:
		return &Scalar{Header: h}
	case KindEnum:
		return &Enum{Header: h}
	case KindObject:
		return &Object{Header: h}
	case KindInputObject:
		return &InputObject{Header: h}
	default:
		panic("unreachable")
	}
}

var inbuilt = map[string]struct{}{
	"Int":     {},
	"String":  {},
	"Float":   {},
	"Boolean": {},
}

// IsInbuilt reports whether name is a built-in scalar that never needs a
// declaration.
func IsInbuilt(name string) bool {
	_, ok := inbuilt[name]
	return ok
}

// WithModifying returns a copy of t whose IsModifying flag is v.
func WithModifying(t CustomType, v bool) CustomType {
	c := Clone(t)
	switch c := c.(type) {
	case *Scalar:
		c.IsModifying = v
	case *Enum:
		c.IsModifying = v
	case *Object:
		c.IsModifying = v
	case *InputObject:
		c.IsModifying = v
	}
	return c
}
