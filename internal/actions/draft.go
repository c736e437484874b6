package actions

import (
	"slices"

	"github.com/purush7/graphql-engine/internal/customtypes"
	"github.com/purush7/graphql-engine/internal/typewrap"
)

// Draft is the state of an action being edited. Every method returns a new
// Draft and leaves the receiver untouched.
type Draft struct {
	Name       string
	Kind       Kind
	Handler    string
	Arguments  []Argument
	OutputType string
	Types      []customtypes.CustomType
}

// NewDraft returns an empty draft with one placeholder argument and one
// placeholder type.
func NewDraft() Draft {
	return Draft{
		Kind:      Synchronous,
		Arguments: []Argument{{}},
		Types:     []customtypes.CustomType{customtypes.New(customtypes.KindScalar, "")},
	}
}

// SetArguments replaces the arguments, appending a blank row once the last
// row has both a name and a type.
func (d Draft) SetArguments(args []Argument) Draft {
	args = slices.Clone(args)
	if n := len(args); n == 0 || (args[n-1].Name != "" && args[n-1].Type != "") {
		args = append(args, Argument{})
	}
	d.Arguments = args
	return d
}

// SetTypes replaces the types, appending a blank scalar once the last type
// is named.
func (d Draft) SetTypes(types []customtypes.CustomType) Draft {
	types = slices.Clone(types)
	if n := len(types); n == 0 || types[n-1].TypeName() != "" {
		types = append(types, customtypes.New(customtypes.KindScalar, ""))
	}
	d.Types = types
	return d
}

// RemoveType drops the type at index together with every argument and field
// that references it. An output type referencing it is cleared.
func (d Draft) RemoveType(index int) Draft {
	if index < 0 || index >= len(d.Types) {
		return d
	}
	name := d.Types[index].TypeName()

	types := make([]customtypes.CustomType, 0, len(d.Types)-1)
	types = append(types, d.Types[:index]...)
	types = append(types, d.Types[index+1:]...)
	if name != "" {
		types = customtypes.Remove(types, name)
	}
	d.Types = types

	args := make([]Argument, 0, len(d.Arguments))
	for _, a := range d.Arguments {
		if name == "" || !references(a.Type, name) {
			args = append(args, a)
		}
	}
	d.Arguments = args

	if name != "" && references(d.OutputType, name) {
		d.OutputType = ""
	}
	return d
}

// Definition returns the definition described by d with placeholder rows
// removed, along with the declared types.
func (d Draft) Definition() (Definition, []customtypes.CustomType) {
	def := Definition{
		Name:       d.Name,
		Kind:       d.Kind,
		Handler:    d.Handler,
		Arguments:  customtypes.FilterIncomplete(d.Arguments, customtypes.AttrName, customtypes.AttrType),
		OutputType: d.OutputType,
	}
	types := make([]customtypes.CustomType, 0, len(d.Types))
	for _, t := range d.Types {
		if t.TypeName() != "" {
			types = append(types, t)
		}
	}
	return def, types
}

func references(wrapped, name string) bool {
	base, err := typewrap.Base(wrapped)
	return err == nil && base == name
}
