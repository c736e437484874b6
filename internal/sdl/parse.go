// Package sdl renders custom types and actions as GraphQL SDL and imports
// them back from SDL documents.
package sdl

import (
	"fmt"

	"github.com/purush7/graphql-engine/internal/actions"
	"github.com/purush7/graphql-engine/internal/customtypes"
	language "github.com/purush7/graphql-engine/internal/language"
	"github.com/purush7/graphql-engine/internal/typewrap"
)

// Document is what an SDL source declares: actions from root operation
// types and custom types from everything else.
type Document struct {
	Actions []actions.Definition
	Types   []customtypes.CustomType
}

// Parse reads an SDL document. Object types named by the schema definition
// (Mutation and Query by default) and their extensions declare actions.
func Parse(name, source string) (*Document, error) {
	doc, err := language.ParseSchema(name, source)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	b := &builder{
		roots: map[string]actions.OperationType{
			"Mutation": actions.Mutation,
			"Query":    actions.Query,
		},
		types:   make(map[string]bool),
		actions: make(map[string]bool),
	}
	b.processSchemaDefinitions(doc)
	for _, def := range doc.Definitions {
		b.definition(def)
	}
	for _, ext := range doc.Extensions {
		if op, ok := b.roots[ext.Name]; ok && ext.Kind == language.Object {
			b.rootFields(ext, op)
			continue
		}
		b.addViolation(violationUnsupportedExtension(ext.Name, ext.Position))
	}
	if len(b.violations) > 0 {
		return nil, b.violations
	}
	return &b.doc, nil
}

type builder struct {
	doc        Document
	roots      map[string]actions.OperationType
	subs       map[string]bool
	types      map[string]bool
	actions    map[string]bool
	violations ValidationError
}

func (b *builder) addViolation(v ...*Violation) {
	b.violations = append(b.violations, v...)
}

func (b *builder) processSchemaDefinitions(doc *language.SchemaDocument) {
	for _, schemaDef := range append(doc.Schema, doc.SchemaExtension...) {
		for _, opType := range schemaDef.OperationTypes {
			switch opType.Operation {
			case language.Mutation:
				delete(b.roots, "Mutation")
				b.roots[opType.Type] = actions.Mutation
			case language.Query:
				delete(b.roots, "Query")
				b.roots[opType.Type] = actions.Query
			case language.Subscription:
				if b.subs == nil {
					b.subs = make(map[string]bool)
				}
				b.subs[opType.Type] = true
			}
		}
	}
}

func (b *builder) definition(def *language.Definition) {
	if op, ok := b.roots[def.Name]; ok && def.Kind == language.Object {
		b.rootFields(def, op)
		return
	}
	if b.subs[def.Name] {
		b.addViolation(violationSubscription(def.Name, def.Position))
		return
	}
	if customtypes.IsInbuilt(def.Name) {
		b.addViolation(violationInbuiltType(def.Name, def.Position))
		return
	}
	if b.types[def.Name] {
		b.addViolation(violationDuplicateType(def.Name, def.Position))
		return
	}
	b.types[def.Name] = true

	h := customtypes.Header{Name: def.Name, Description: def.Description}
	switch def.Kind {
	case language.Scalar:
		b.doc.Types = append(b.doc.Types, &customtypes.Scalar{Header: h})
	case language.Enum:
		t := &customtypes.Enum{Header: h}
		for _, v := range def.EnumValues {
			t.Values = append(t.Values, customtypes.EnumValue{Value: v.Name, Description: v.Description})
		}
		b.doc.Types = append(b.doc.Types, t)
	case language.Object:
		b.doc.Types = append(b.doc.Types, &customtypes.Object{Header: h, Fields: b.fields(def)})
	case language.InputObject:
		b.doc.Types = append(b.doc.Types, &customtypes.InputObject{Header: h, Fields: b.fields(def)})
	default:
		b.addViolation(violationUnsupportedKind(def.Kind, def.Name, def.Position))
	}
}

func (b *builder) fields(def *language.Definition) []customtypes.Field {
	fields := make([]customtypes.Field, 0, len(def.Fields))
	for _, f := range def.Fields {
		if len(f.Arguments) > 0 {
			b.addViolation(violationFieldArguments(def.Name, f.Name, f.Position))
		}
		fields = append(fields, customtypes.Field{
			Name:        f.Name,
			Type:        typeString(f.Type),
			Description: f.Description,
		})
	}
	return fields
}

func (b *builder) rootFields(def *language.Definition, op actions.OperationType) {
	for _, f := range def.Fields {
		if b.actions[f.Name] {
			b.addViolation(violationDuplicateAction(f.Name, f.Position))
			continue
		}
		b.actions[f.Name] = true
		action := actions.Definition{
			Name:       f.Name,
			Type:       op,
			Arguments:  make([]actions.Argument, 0, len(f.Arguments)),
			OutputType: typeString(f.Type),
		}
		for _, arg := range f.Arguments {
			action.Arguments = append(action.Arguments, actions.Argument{
				Name:        arg.Name,
				Type:        typeString(arg.Type),
				Description: arg.Description,
			})
		}
		b.doc.Actions = append(b.doc.Actions, action)
	}
}

func typeString(t *language.Type) string {
	return typewrap.Wrap(typewrap.FromAST(t))
}
