package actions

import (
	"github.com/purush7/graphql-engine/internal/customtypes"
	"github.com/purush7/graphql-engine/internal/typewrap"
)

// Resolution is the dependency closure of an action.
type Resolution struct {
	// Types in first-discovery order: arguments first, then the output type,
	// each walked depth first.
	Types []customtypes.CustomType
	// Unresolved lists referenced base names that are neither inbuilt nor in
	// the catalog, in discovery order.
	Unresolved []string
	// Malformed lists non-empty type strings that could not be unwrapped.
	Malformed []string
}

// GetActionTypes returns the custom types the SDL of def must declare.
// Unknown references are skipped.
func GetActionTypes(def Definition, allTypes []customtypes.CustomType) []customtypes.CustomType {
	return Resolve(def, customtypes.NewCatalog(allTypes)).Types
}

// Resolve walks the arguments and output type of def through catalog. The
// type graph may be cyclic; every base name is visited at most once.
func Resolve(def Definition, catalog *customtypes.Catalog) Resolution {
	r := &resolver{
		catalog: catalog,
		visited: make(map[string]bool),
	}
	for _, arg := range def.Arguments {
		r.visitWrapped(arg.Type)
	}
	r.visitWrapped(def.OutputType)
	return r.res
}

type resolver struct {
	catalog *customtypes.Catalog
	visited map[string]bool
	res     Resolution
}

func (r *resolver) visitWrapped(wrapped string) {
	if wrapped == "" {
		return
	}
	name, _, err := typewrap.Unwrap(wrapped)
	if err != nil {
		r.res.Malformed = append(r.res.Malformed, wrapped)
		return
	}
	r.visit(name)
}

func (r *resolver) visit(name string) {
	if r.visited[name] {
		return
	}
	r.visited[name] = true
	if customtypes.IsInbuilt(name) {
		return
	}
	t, ok := r.catalog.Lookup(name)
	if !ok {
		r.res.Unresolved = append(r.res.Unresolved, name)
		return
	}
	r.res.Types = append(r.res.Types, t)
	for _, f := range customtypes.FieldsOf(t) {
		r.visitWrapped(f.Type)
	}
}
