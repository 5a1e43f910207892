// eval.go
//
// The public entry points. Evaluate runs source in a fresh context;
// EvaluateWithContext runs it against a caller-supplied one. A "::" splits
// the source into pipeline stages: the left stage's result is bound to
// "input" before the right stage runs.
package whale

import "strings"

// Evaluate runs source text in a fresh context with the standard macros.
// When the result is Empty, the populated context is returned as a map
// instead, so a script of plain assignments yields its bindings.
func Evaluate(src string) (Value, error) {
	context := NewVariableMap()
	value, err := EvaluateWithContext(src, context)
	if err != nil {
		return Empty, err
	}
	if value.IsEmpty() {
		return MapVal(context), nil
	}
	return value, nil
}

// EvaluateWithContext runs source text against the given context. Bindings
// made by the source stay in the context.
func EvaluateWithContext(src string, context *VariableMap) (Value, error) {
	if left, right, piped := strings.Cut(src, "::"); piped {
		value, err := evaluateStage(left, context)
		if err != nil {
			return Empty, err
		}
		if err := context.SetValue("input", value); err != nil {
			return Empty, err
		}
		return EvaluateWithContext(right, context)
	}
	return evaluateStage(src, context)
}

func evaluateStage(src string, context *VariableMap) (Value, error) {
	tokens, err := Tokenize(src)
	if err != nil {
		return Empty, err
	}
	tree, err := BuildTree(tokens)
	if err != nil {
		return Empty, err
	}
	return tree.EvalMut(context)
}
