package actions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/purush7/graphql-engine/internal/customtypes"
)

func names(types []customtypes.CustomType) []string {
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, t.TypeName())
	}
	return out
}

func object(name string, fields ...customtypes.Field) *customtypes.Object {
	return &customtypes.Object{Header: customtypes.Header{Name: name}, Fields: fields}
}

func TestGetActionTypesSample(t *testing.T) {
	sampleInput := &customtypes.InputObject{
		Header: customtypes.Header{Name: "SampleInput"},
		Fields: []customtypes.Field{{Name: "username", Type: "String!"}},
	}
	sampleOutput := object("SampleOutput", customtypes.Field{Name: "accessToken", Type: "String!"})
	unused := &customtypes.Scalar{Header: customtypes.Header{Name: "Unused"}}

	def := Definition{
		Name:       "login",
		Arguments:  []Argument{{Name: "arg1", Type: "SampleInput!"}},
		OutputType: "SampleOutput",
	}
	got := GetActionTypes(def, []customtypes.CustomType{unused, sampleOutput, sampleInput})
	require.Equal(t, []customtypes.CustomType{sampleInput, sampleOutput}, got)
}

func TestResolveCycle(t *testing.T) {
	a := object("A", customtypes.Field{Name: "b", Type: "B"})
	b := object("B", customtypes.Field{Name: "a", Type: "[A!]!"}, customtypes.Field{Name: "self", Type: "B"})
	def := Definition{Name: "cyclic", OutputType: "A"}

	res := Resolve(def, customtypes.NewCatalog([]customtypes.CustomType{a, b}))
	require.Equal(t, []string{"A", "B"}, names(res.Types))
	require.Empty(t, res.Unresolved)
}

func TestResolveOrderAndTermination(t *testing.T) {
	catalog := customtypes.NewCatalog([]customtypes.CustomType{
		&customtypes.Scalar{Header: customtypes.Header{Name: "Date"}},
		&customtypes.Enum{Header: customtypes.Header{Name: "Role"}, Values: []customtypes.EnumValue{{Value: "ADMIN"}}},
		object("User",
			customtypes.Field{Name: "born", Type: "Date"},
			customtypes.Field{Name: "role", Type: "Role!"},
			customtypes.Field{Name: "friends", Type: "[User]"},
			customtypes.Field{Name: "id", Type: "Int!"},
		),
		&customtypes.InputObject{
			Header: customtypes.Header{Name: "Filter"},
			Fields: []customtypes.Field{{Name: "role", Type: "Role"}, {Name: "since", Type: "Date"}},
		},
	})
	def := Definition{
		Arguments:  []Argument{{Name: "where", Type: "Filter"}, {Name: "limit", Type: "Int"}},
		OutputType: "[User!]!",
	}
	res := Resolve(def, catalog)
	require.Equal(t, []string{"Filter", "Role", "Date", "User"}, names(res.Types))
}

func TestResolveReportsUnresolvedAndMalformed(t *testing.T) {
	def := Definition{
		Arguments: []Argument{
			{Name: "a", Type: "Missing!"},
			{Name: "b", Type: "[Broken"},
			{Name: "c", Type: "Missing"},
		},
		OutputType: "Boolean",
	}
	res := Resolve(def, customtypes.NewCatalog(nil))
	require.Empty(t, res.Types)
	require.Equal(t, []string{"Missing"}, res.Unresolved)
	require.Equal(t, []string{"[Broken"}, res.Malformed)

	require.Empty(t, GetActionTypes(def, nil))
}

func TestDraftPlaceholders(t *testing.T) {
	d := NewDraft()
	require.Len(t, d.Arguments, 1)

	d2 := d.SetArguments([]Argument{{Name: "id", Type: "Int!"}})
	require.Len(t, d2.Arguments, 2)
	require.Equal(t, Argument{}, d2.Arguments[1])
	require.Len(t, d.Arguments, 1)

	d3 := d2.SetArguments([]Argument{{Name: "id", Type: "Int!"}, {Name: "half"}})
	require.Len(t, d3.Arguments, 2)

	d4 := d.SetTypes([]customtypes.CustomType{object("User")})
	require.Equal(t, []string{"User", ""}, names(d4.Types))
}

func TestDraftRemoveType(t *testing.T) {
	d := Draft{
		Name: "createUser",
		Types: []customtypes.CustomType{
			&customtypes.Scalar{Header: customtypes.Header{Name: "Date"}},
			&customtypes.InputObject{
				Header: customtypes.Header{Name: "UserInput"},
				Fields: []customtypes.Field{{Name: "born", Type: "Date!"}, {Name: "name", Type: "String"}},
			},
			object("User", customtypes.Field{Name: "id", Type: "Int!"}),
		},
		Arguments:  []Argument{{Name: "input", Type: "UserInput!"}, {Name: "at", Type: "Date"}},
		OutputType: "User",
	}

	got := d.RemoveType(0)
	require.Equal(t, []string{"UserInput", "User"}, names(got.Types))
	require.Equal(t, []customtypes.Field{{Name: "name", Type: "String"}}, customtypes.FieldsOf(got.Types[0]))
	require.Equal(t, []Argument{{Name: "input", Type: "UserInput!"}}, got.Arguments)
	require.Equal(t, "User", got.OutputType)

	got = got.RemoveType(1)
	require.Empty(t, got.OutputType)

	require.Len(t, d.Types, 3, "receiver must not be modified")
	require.Len(t, customtypes.FieldsOf(d.Types[1]), 2)
	require.Equal(t, d, d.RemoveType(7))
}

func TestDraftDefinition(t *testing.T) {
	d := NewDraft()
	d.Name = "ping"
	d = d.SetArguments([]Argument{{Name: "msg", Type: "String"}})
	d.OutputType = "Boolean"
	def, types := d.Definition()
	require.Equal(t, []Argument{{Name: "msg", Type: "String"}}, def.Arguments)
	require.Empty(t, types)
	require.Equal(t, "Mutation", def.Type.RootTypeName())
	require.Equal(t, "Query", Query.RootTypeName())
}
