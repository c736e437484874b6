package typewrap

import "github.com/vektah/gqlparser/v2/ast"

// FromAST flattens a parsed type reference into its base name and stack.
func FromAST(t *ast.Type) (string, Stack) {
	var stack Stack
	for t != nil {
		if t.NonNull {
			stack = append(stack, NonNull)
		}
		if t.Elem == nil {
			return t.NamedType, stack
		}
		stack = append(stack, List)
		t = t.Elem
	}
	return "", stack
}

// ToAST builds a parsed type reference from name and stack.
func ToAST(name string, stack Stack) *ast.Type {
	t := ast.NamedType(name, nil)
	for i := len(stack) - 1; i >= 0; i-- {
		switch stack[i] {
		case List:
			t = ast.ListType(t, nil)
		case NonNull:
			t.NonNull = true
		}
	}
	return t
}
