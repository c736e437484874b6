package customtypes

import "github.com/purush7/graphql-engine/internal/typewrap"

// Wire is the server representation of a catalog: types grouped by kind
// under pluralized keys, with the kind itself implied by the bucket.
type Wire struct {
	Scalars      []Scalar      `json:"scalars" yaml:"scalars"`
	Objects      []Object      `json:"objects" yaml:"objects"`
	InputObjects []InputObject `json:"input_objects" yaml:"input_objects"`
	Enums        []Enum        `json:"enums" yaml:"enums"`
}

// ToWire groups types by kind. Nameless types, fields missing a name or
// type, and enum values missing a value are dropped.
func ToWire(types []CustomType) Wire {
	w := Wire{
		Scalars:      []Scalar{},
		Objects:      []Object{},
		InputObjects: []InputObject{},
		Enums:        []Enum{},
	}
	for _, t := range types {
		if t.TypeName() == "" {
			continue
		}
		switch t := t.(type) {
		case *Scalar:
			c := *t
			c.IsModifying = false
			w.Scalars = append(w.Scalars, c)
		case *Enum:
			c := *t
			c.IsModifying = false
			c.Values = FilterIncomplete(t.Values, AttrValue)
			w.Enums = append(w.Enums, c)
		case *Object:
			c := *t
			c.IsModifying = false
			c.Fields = FilterIncomplete(t.Fields, AttrName, AttrType)
			w.Objects = append(w.Objects, c)
		case *InputObject:
			c := *t
			c.IsModifying = false
			c.Fields = FilterIncomplete(t.Fields, AttrName, AttrType)
			w.InputObjects = append(w.InputObjects, c)
		default:
			panic("unreachable")
		}
	}
	return w
}

// FromWire flattens w, visiting buckets in Kinds order and keeping the
// member order of each bucket. Every member is tagged with the kind its
// bucket key names.
func FromWire(w Wire) []CustomType {
	var out []CustomType
	for _, k := range Kinds {
		out = append(out, w.bucket(k.Bucket())...)
	}
	return out
}

func (w Wire) bucket(key string) []CustomType {
	k, ok := KindOfBucket(key)
	if !ok {
		return nil
	}
	var out []CustomType
	switch k {
	case KindScalar:
		for i := range w.Scalars {
			c := w.Scalars[i]
			out = append(out, &c)
		}
	case KindObject:
		for i := range w.Objects {
			c := w.Objects[i]
			c.Fields = append([]Field(nil), c.Fields...)
			out = append(out, &c)
		}
	case KindInputObject:
		for i := range w.InputObjects {
			c := w.InputObjects[i]
			c.Fields = append([]Field(nil), c.Fields...)
			out = append(out, &c)
		}
	case KindEnum:
		for i := range w.Enums {
			c := w.Enums[i]
			c.Values = append([]EnumValue(nil), c.Values...)
			out = append(out, &c)
		}
	default:
		panic("unreachable")
	}
	return out
}

// Len returns the number of types in w.
func (w Wire) Len() int {
	return len(w.Scalars) + len(w.Objects) + len(w.InputObjects) + len(w.Enums)
}

// Catalog is a read-only name index over a list of custom types.
type Catalog struct {
	types  []CustomType
	byName map[string]CustomType
}

// NewCatalog indexes types. When names repeat the first entry wins.
func NewCatalog(types []CustomType) *Catalog {
	c := &Catalog{
		types:  append([]CustomType(nil), types...),
		byName: make(map[string]CustomType, len(types)),
	}
	for _, t := range types {
		if _, ok := c.byName[t.TypeName()]; !ok {
			c.byName[t.TypeName()] = t
		}
	}
	return c
}

// Lookup finds a declared type by name. Inbuilt types are never found.
func (c *Catalog) Lookup(name string) (CustomType, bool) {
	t, ok := c.byName[name]
	return t, ok
}

// Types returns the catalog entries in their original order.
func (c *Catalog) Types() []CustomType { return append([]CustomType(nil), c.types...) }

func (c *Catalog) Len() int { return len(c.types) }

// OfKind returns the entries of kind k.
func (c *Catalog) OfKind(k Kind) []CustomType {
	var out []CustomType
	for _, t := range c.types {
		if t.Kind() == k {
			out = append(out, t)
		}
	}
	return out
}

func baseName(wrapped string) string {
	name, err := typewrap.Base(wrapped)
	if err != nil {
		return ""
	}
	return name
}
