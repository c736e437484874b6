package customtypes

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/purush7/graphql-engine/internal/typewrap"
)

func scalar(name string) *Scalar { return &Scalar{Header: Header{Name: name}} }

func object(name string, fields ...Field) *Object {
	return &Object{Header: Header{Name: name}, Fields: fields}
}

func input(name string, fields ...Field) *InputObject {
	return &InputObject{Header: Header{Name: name}, Fields: fields}
}

func TestFilterIncomplete(t *testing.T) {
	fields := []Field{
		{Name: "id", Type: "Int!"},
		{Name: "", Type: "String"},
		{Name: "name", Type: ""},
		{},
	}
	got := FilterIncomplete(fields, AttrName, AttrType)
	require.Equal(t, []Field{{Name: "id", Type: "Int!"}}, got)

	got = FilterIncomplete(fields, AttrName)
	require.Len(t, got, 2)

	values := []EnumValue{{Value: "RED"}, {Description: "placeholder"}}
	require.Equal(t, []EnumValue{{Value: "RED"}}, FilterIncomplete(values, AttrValue))

	require.Len(t, fields, 4, "input must not be modified")
}

func TestMergeConflict(t *testing.T) {
	res := Merge([]CustomType{scalar("A")}, []CustomType{scalar("A")})
	require.Equal(t, "A", res.Conflict)
	require.Len(t, res.Types, 2)
}

func TestMergeModifying(t *testing.T) {
	modified := &Scalar{Header: Header{Name: "A", IsModifying: true}}
	res := Merge([]CustomType{modified}, []CustomType{scalar("A")})
	require.Empty(t, res.Conflict)
	require.Equal(t, []CustomType{modified}, res.Types)
}

func TestMergeKeepsUnrelatedAndReportsFirstConflict(t *testing.T) {
	existing := []CustomType{scalar("A"), scalar("B"), scalar("C"), scalar("D")}
	newTypes := []CustomType{
		&Scalar{Header: Header{Name: "A", IsModifying: true}},
		scalar("C"),
		scalar("D"),
		scalar("E"),
	}
	res := Merge(newTypes, existing)
	require.Equal(t, "C", res.Conflict)

	var names []string
	for _, ct := range res.Types {
		names = append(names, ct.TypeName())
	}
	require.Equal(t, []string{"A", "C", "D", "E", "B", "C", "D"}, names)
}

func TestWireRoundTrip(t *testing.T) {
	types := []CustomType{
		scalar("Date"),
		object("SampleOutput", Field{Name: "accessToken", Type: "String!"}),
		input("SampleInput",
			Field{Name: "username", Type: "String!"},
			Field{Name: "password", Type: "String!", Description: "plain text"},
		),
		&Enum{Header: Header{Name: "Color"}, Values: []EnumValue{{Value: "RED"}, {Value: "BLUE", Description: "sky"}}},
	}

	w := ToWire(types)
	require.Equal(t, 4, w.Len())
	got := FromWire(w)
	if diff := cmp.Diff(types, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestWireDropsIncomplete(t *testing.T) {
	types := []CustomType{
		object("User",
			Field{Name: "id", Type: "Int!"},
			Field{Name: "nickname"},
			Field{Type: "String"},
		),
		scalar(""),
		&Enum{Header: Header{Name: "Color"}, Values: []EnumValue{{Value: "RED"}, {}}},
	}
	w := ToWire(types)
	require.Empty(t, w.Scalars)
	require.Equal(t, []Field{{Name: "id", Type: "Int!"}}, w.Objects[0].Fields)
	require.Equal(t, []EnumValue{{Value: "RED"}}, w.Enums[0].Values)

	got := FromWire(w)
	require.Len(t, got, 2)
	require.Len(t, FieldsOf(got[0]), 1)

	require.Len(t, FieldsOf(types[0]), 3, "input must not be modified")
}

func TestWireJSON(t *testing.T) {
	w := ToWire([]CustomType{
		&Scalar{Header: Header{Name: "Date", IsModifying: true}},
		object("User", Field{Name: "id", Type: "Int!"}),
	})
	data, err := json.Marshal(w)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"scalars": [{"name": "Date"}],
		"objects": [{"name": "User", "fields": [{"name": "id", "type": "Int!"}]}],
		"input_objects": [],
		"enums": []
	}`, string(data))

	var decoded Wire
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, w, decoded)
}

func TestWireYAML(t *testing.T) {
	src := `
scalars:
  - name: Date
    description: ISO date
input_objects:
  - name: SampleInput
    fields:
      - name: username
        type: String!
`
	var w Wire
	require.NoError(t, yaml.Unmarshal([]byte(src), &w))
	got := FromWire(w)
	require.Len(t, got, 2)
	require.Equal(t, KindScalar, got[0].Kind())
	require.Equal(t, "ISO date", got[0].(*Scalar).Description)
	require.Equal(t, KindInputObject, got[1].Kind())
	require.Equal(t, []Field{{Name: "username", Type: "String!"}}, FieldsOf(got[1]))
}

func TestCatalog(t *testing.T) {
	first := scalar("A")
	c := NewCatalog([]CustomType{first, object("B"), scalar("A")})
	got, ok := c.Lookup("A")
	require.True(t, ok)
	require.Same(t, first, got)
	_, ok = c.Lookup("String")
	require.False(t, ok)
	require.Equal(t, 3, c.Len())
	require.Len(t, c.OfKind(KindScalar), 2)
}

func TestInbuilt(t *testing.T) {
	for _, name := range []string{"Int", "String", "Float", "Boolean"} {
		require.True(t, IsInbuilt(name), name)
	}
	require.False(t, IsInbuilt("Date"))
}

func TestKinds(t *testing.T) {
	k, err := ParseKind("input_objects")
	require.NoError(t, err)
	require.Equal(t, KindInputObject, k)
	_, err = ParseKind("union")
	require.Error(t, err)

	k, ok := KindOfBucket("enums")
	require.True(t, ok)
	require.Equal(t, KindEnum, k)

	require.Equal(t, KindObject, New(KindObject, "X").Kind())
}

func TestRemove(t *testing.T) {
	types := []CustomType{
		scalar("Date"),
		object("User", Field{Name: "born", Type: "Date!"}, Field{Name: "id", Type: "Int"}),
	}
	got := Remove(types, "Date")
	require.Len(t, got, 1)
	require.Equal(t, []Field{{Name: "id", Type: "Int"}}, FieldsOf(got[0]))
	require.Len(t, FieldsOf(types[1]), 2)
}

func TestFieldWrap(t *testing.T) {
	f := NewField("tags", "String", typewrap.ChoiceNullableListOfNonNullable)
	require.Equal(t, "[String!]", f.Type)
	c, ok := f.Wrap()
	require.True(t, ok)
	require.Equal(t, typewrap.ChoiceNullableListOfNonNullable, c)

	_, ok = Field{Type: "[[Int]]"}.Wrap()
	require.False(t, ok)
}

func TestClone(t *testing.T) {
	orig := object("User", Field{Name: "id", Type: "Int"})
	c := Clone(orig).(*Object)
	c.Fields[0].Name = "changed"
	require.Equal(t, "id", orig.Fields[0].Name)
}

func TestWithModifying(t *testing.T) {
	orig := scalar("A")
	got := WithModifying(orig, true)
	require.True(t, got.Modifying())
	require.False(t, orig.Modifying())
}
