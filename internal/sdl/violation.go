package sdl

import (
	"fmt"
	"strings"

	language "github.com/purush7/graphql-engine/internal/language"
)

type Violation struct {
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

// ValidationError collects every violation found in a document.
type ValidationError []*Violation

func (e ValidationError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "cannot import SDL, %d problem(s):", len(e))
	for _, v := range e {
		b.WriteString("\n  ")
		if v.File != "" {
			fmt.Fprintf(&b, "%s:%d:%d: ", v.File, v.Line, v.Column)
		}
		b.WriteString(v.Message)
	}
	return b.String()
}

func violationWithPosition(message string, pos *language.Position) *Violation {
	v := &Violation{Message: message}
	if pos != nil {
		v.Line = pos.Line
		v.Column = pos.Column
		if pos.Src != nil {
			v.File = pos.Src.Name
		}
	}
	return v
}

// NOTE: Keep messages stable; tests match on them.

func violationUnsupportedKind(kind language.DefinitionKind, name string, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("%s type %q cannot be declared as a custom type", kind, name),
		pos,
	)
}

func violationDuplicateType(name string, pos *language.Position) *Violation {
	return violationWithPosition(fmt.Sprintf("Type %q is declared more than once", name), pos)
}

func violationInbuiltType(name string, pos *language.Position) *Violation {
	return violationWithPosition(fmt.Sprintf("Type %q is built in and cannot be redeclared", name), pos)
}

func violationFieldArguments(typeName, fieldName string, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("Field %q of type %q cannot take arguments", fieldName, typeName),
		pos,
	)
}

func violationDuplicateAction(name string, pos *language.Position) *Violation {
	return violationWithPosition(fmt.Sprintf("Action %q is declared more than once", name), pos)
}

func violationUnsupportedExtension(name string, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("Only root operation types can be extended, found extension of %q", name),
		pos,
	)
}

func violationSubscription(name string, pos *language.Position) *Violation {
	return violationWithPosition(
		fmt.Sprintf("Subscription root %q cannot declare actions", name),
		pos,
	)
}
