// Package typewrap converts between GraphQL wrapped type names such as
// "[String!]!" and a base name plus a stack of list/non-null modifiers.
//
// Stacks are ordered outermost-first: Unwrap pushes modifiers in the order it
// strips them from the end of the string, and Wrap applies them starting from
// the last (innermost) element. Unwrap("[String!]!") therefore yields
// "String" and [NonNull, List, NonNull].
package typewrap

import (
	"fmt"
	"strings"
)

// Modifier is a single list or non-null wrapper.
type Modifier string

const (
	List    Modifier = "list"
	NonNull Modifier = "non-null"
)

// Stack is an ordered sequence of modifiers, outermost first.
type Stack []Modifier

func (s Stack) String() string {
	parts := make([]string, len(s))
	for i, m := range s {
		parts[i] = string(m)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// MalformedTypeNameError reports a wrapped type name that cannot be unwrapped.
type MalformedTypeNameError struct {
	Name   string
	Reason string
}

func (e *MalformedTypeNameError) Error() string {
	return fmt.Sprintf("malformed type name %q: %s", e.Name, e.Reason)
}

// Unwrap strips modifiers from the end of wrapped until a bare name remains.
func Unwrap(wrapped string) (string, Stack, error) {
	name := wrapped
	var stack Stack
	for {
		if strings.HasSuffix(name, "!") {
			if len(stack) > 0 && stack[len(stack)-1] == NonNull {
				return "", nil, &MalformedTypeNameError{Name: wrapped, Reason: "non-null cannot wrap non-null"}
			}
			name = name[:len(name)-1]
			stack = append(stack, NonNull)
			continue
		}
		if strings.HasSuffix(name, "]") {
			if !strings.HasPrefix(name, "[") {
				return "", nil, &MalformedTypeNameError{Name: wrapped, Reason: "unbalanced brackets"}
			}
			name = name[1 : len(name)-1]
			stack = append(stack, List)
			continue
		}
		break
	}
	if name == "" {
		return "", nil, &MalformedTypeNameError{Name: wrapped, Reason: "missing base type name"}
	}
	if strings.ContainsAny(name, "[]") {
		return "", nil, &MalformedTypeNameError{Name: wrapped, Reason: "unbalanced brackets"}
	}
	if !IsValidName(name) {
		return "", nil, &MalformedTypeNameError{Name: wrapped, Reason: "invalid base type name"}
	}
	return name, stack, nil
}

// Base returns the base type name of wrapped.
func Base(wrapped string) (string, error) {
	name, _, err := Unwrap(wrapped)
	return name, err
}

// Wrap applies stack to name, innermost modifier first.
func Wrap(name string, stack Stack) string {
	wrapped := name
	for i := len(stack) - 1; i >= 0; i-- {
		switch stack[i] {
		case List:
			wrapped = "[" + wrapped + "]"
		case NonNull:
			wrapped = wrapped + "!"
		}
	}
	return wrapped
}

// IsNonNull reports whether the outermost modifier is non-null.
func IsNonNull(wrapped string) bool {
	return strings.HasSuffix(wrapped, "!")
}

// IsList reports whether the outermost modifier is a list.
// A non-null list ("[T]!") is not a list by this test.
func IsList(wrapped string) bool {
	return strings.HasSuffix(wrapped, "]")
}

// IsValidName reports whether name is a GraphQL name.
func IsValidName(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
