package sdl

import (
	"strings"

	"github.com/purush7/graphql-engine/internal/actions"
	"github.com/purush7/graphql-engine/internal/customtypes"
)

// RenderTypes produces SDL for types in the given order. Incomplete fields
// and enum values are left out.
func RenderTypes(types []customtypes.CustomType) string {
	var b strings.Builder
	for _, t := range types {
		if t.TypeName() == "" {
			continue
		}
		switch t := t.(type) {
		case *customtypes.Scalar:
			renderScalar(&b, t)
		case *customtypes.Enum:
			renderEnum(&b, t)
		case *customtypes.Object:
			renderFields(&b, "type", t.Header, t.Fields)
		case *customtypes.InputObject:
			renderFields(&b, "input", t.Header, t.Fields)
		default:
			panic("unreachable")
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// RenderAction produces the root type extension declaring def.
func RenderAction(def actions.Definition) string {
	var b strings.Builder
	b.WriteString("type ")
	b.WriteString(def.Type.RootTypeName())
	b.WriteString(" {\n")
	b.WriteString("  ")
	b.WriteString(def.Name)
	args := customtypes.FilterIncomplete(def.Arguments, customtypes.AttrName, customtypes.AttrType)
	if len(args) > 0 {
		b.WriteString(" (\n")
		for _, arg := range args {
			renderDescription(&b, "    ", arg.Description)
			b.WriteString("    ")
			b.WriteString(arg.Name)
			b.WriteString(": ")
			b.WriteString(arg.Type)
			b.WriteString("\n")
		}
		b.WriteString("  )")
	}
	b.WriteString(": ")
	b.WriteString(def.OutputType)
	b.WriteString("\n}\n")
	return b.String()
}

// RenderComplete joins the action declaration and the types it needs.
func RenderComplete(def actions.Definition, types []customtypes.CustomType) string {
	out := RenderAction(def)
	if len(types) == 0 {
		return out
	}
	return out + "\n" + RenderTypes(types)
}

// ----- render helpers -----

func renderDescription(b *strings.Builder, indent, desc string) {
	if desc == "" {
		return
	}
	b.WriteString(indent)
	b.WriteString("\"\"\"")
	b.WriteString(strings.ReplaceAll(desc, "\"\"\"", "\\\"\"\""))
	b.WriteString("\"\"\"\n")
}

func renderScalar(b *strings.Builder, t *customtypes.Scalar) {
	renderDescription(b, "", t.Description)
	b.WriteString("scalar ")
	b.WriteString(t.Name)
	b.WriteString("\n\n")
}

func renderEnum(b *strings.Builder, t *customtypes.Enum) {
	renderDescription(b, "", t.Description)
	b.WriteString("enum ")
	b.WriteString(t.Name)
	b.WriteString(" {\n")
	for _, v := range customtypes.FilterIncomplete(t.Values, customtypes.AttrValue) {
		renderDescription(b, "  ", v.Description)
		b.WriteString("  ")
		b.WriteString(v.Value)
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")
}

func renderFields(b *strings.Builder, keyword string, h customtypes.Header, fields []customtypes.Field) {
	renderDescription(b, "", h.Description)
	b.WriteString(keyword)
	b.WriteString(" ")
	b.WriteString(h.Name)
	b.WriteString(" {\n")
	for _, f := range customtypes.FilterIncomplete(fields, customtypes.AttrName, customtypes.AttrType) {
		renderDescription(b, "  ", f.Description)
		b.WriteString("  ")
		b.WriteString(f.Name)
		b.WriteString(": ")
		b.WriteString(f.Type)
		b.WriteString("\n")
	}
	b.WriteString("}\n\n")
}
