package customtypes

// Attribute names understood by FilterIncomplete.
const (
	AttrName        = "name"
	AttrType        = "type"
	AttrValue       = "value"
	AttrDescription = "description"
)

// Attributed is implemented by editor rows that FilterIncomplete can inspect.
type Attributed interface {
	Attr(name string) string
}

// FilterIncomplete returns the items whose required attributes are all
// non-empty. It never modifies items.
func FilterIncomplete[T Attributed](items []T, required ...string) []T {
	out := make([]T, 0, len(items))
next:
	for _, item := range items {
		for _, attr := range required {
			if item.Attr(attr) == "" {
				continue next
			}
		}
		out = append(out, item)
	}
	return out
}

// MergeResult is the outcome of Merge. Conflict is empty when no new type
// would silently replace an existing one.
type MergeResult struct {
	Types    []CustomType
	Conflict string
}

// Merge puts newTypes in front of existing. An existing type is dropped when
// a new type of the same name is marked modifying; a same-named new type
// that is not marked modifying is reported as Conflict. Only the first
// conflict is reported.
func Merge(newTypes, existing []CustomType) MergeResult {
	index := make(map[string]int, len(existing))
	for i := len(existing) - 1; i >= 0; i-- {
		index[existing[i].TypeName()] = i
	}

	var res MergeResult
	superseded := make(map[int]bool)
	res.Types = make([]CustomType, 0, len(newTypes)+len(existing))
	for _, nt := range newTypes {
		if i, ok := index[nt.TypeName()]; ok {
			if nt.Modifying() {
				superseded[i] = true
			} else if res.Conflict == "" {
				res.Conflict = nt.TypeName()
			}
		}
		res.Types = append(res.Types, nt)
	}
	for i, et := range existing {
		if !superseded[i] {
			res.Types = append(res.Types, et)
		}
	}
	return res
}

// Remove returns types without the entry called name. Fields of other types
// that reference it are dropped as well.
func Remove(types []CustomType, name string) []CustomType {
	out := make([]CustomType, 0, len(types))
	for _, t := range types {
		if t.TypeName() == name {
			continue
		}
		out = append(out, purgeFields(t, name))
	}
	return out
}

func purgeFields(t CustomType, name string) CustomType {
	keep := func(fields []Field) []Field {
		kept := make([]Field, 0, len(fields))
		for _, f := range fields {
			if baseName(f.Type) != name {
				kept = append(kept, f)
			}
		}
		return kept
	}
	switch t := t.(type) {
	case *Object:
		c := *t
		c.Fields = keep(t.Fields)
		return &c
	case *InputObject:
		c := *t
		c.Fields = keep(t.Fields)
		return &c
	case *Scalar, *Enum:
		return t
	default:
		panic("unreachable")
	}
}
