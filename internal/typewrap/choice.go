package typewrap

import "slices"

// Choice is one of the discrete modifier combinations offered by the type
// editors. The zero value is Nullable.
type Choice int

const (
	ChoiceNullable Choice = iota
	ChoiceNonNullable
	ChoiceNullableListOfNullable
	ChoiceNullableListOfNonNullable
	ChoiceNonNullableListOfNullable
	ChoiceNonNullableListOfNonNullable
)

var choices = []struct {
	label string
	stack Stack
}{
	ChoiceNullable:                     {"Nullable", nil},
	ChoiceNonNullable:                  {"Non-nullable", Stack{NonNull}},
	ChoiceNullableListOfNullable:       {"Nullable list of nullable", Stack{List}},
	ChoiceNullableListOfNonNullable:    {"Nullable list of non-nullable", Stack{List, NonNull}},
	ChoiceNonNullableListOfNullable:    {"Non-nullable list of nullable", Stack{NonNull, List}},
	ChoiceNonNullableListOfNonNullable: {"Non-nullable list of non-nullable", Stack{NonNull, List, NonNull}},
}

// Choices returns every choice in editor order.
func Choices() []Choice {
	out := make([]Choice, len(choices))
	for i := range choices {
		out[i] = Choice(i)
	}
	return out
}

// Valid reports whether c is one of the six known choices.
func (c Choice) Valid() bool { return c >= 0 && int(c) < len(choices) }

func (c Choice) String() string {
	if !c.Valid() {
		return "Unknown"
	}
	return choices[c].label
}

// Stack returns the modifier stack of c.
func (c Choice) Stack() Stack {
	if !c.Valid() {
		return nil
	}
	return slices.Clone(choices[c].stack)
}

// Wrap applies c to name. Unknown choices leave name unwrapped.
func (c Choice) Wrap(name string) string { return Wrap(name, c.Stack()) }

// ChoiceOf returns the choice whose stack equals s. Deeper nestings such as
// [[Int]] have no choice.
func ChoiceOf(s Stack) (Choice, bool) {
	for i, c := range choices {
		if slices.Equal(c.stack, s) {
			return Choice(i), true
		}
	}
	return 0, false
}

func Nullable(name string) string { return ChoiceNullable.Wrap(name) }

func NonNullable(name string) string { return ChoiceNonNullable.Wrap(name) }

func NullableListOfNullable(name string) string { return ChoiceNullableListOfNullable.Wrap(name) }

func NullableListOfNonNullable(name string) string { return ChoiceNullableListOfNonNullable.Wrap(name) }

func NonNullableListOfNullable(name string) string { return ChoiceNonNullableListOfNullable.Wrap(name) }

func NonNullableListOfNonNullable(name string) string {
	return ChoiceNonNullableListOfNonNullable.Wrap(name)
}
