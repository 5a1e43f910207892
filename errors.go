// errors.go
//
// The shared error taxonomy. Every failure the engine can produce is a
// *Error with a Kind from the closed set below plus whatever data the kind
// carries (offending values, arity counts, identifiers). Macros wrap any
// underlying I/O or library failure into MacroFailure.
package whale

import (
	"fmt"
	"strings"
)

// ErrorKind discriminates the closed set of engine failures.
type ErrorKind int

const (
	// Table rows must match the column schema.
	WrongColumnAmount ErrorKind = iota

	// Arity failures for operators and macro/function calls.
	WrongOperatorArgumentAmount
	WrongFunctionArgumentAmount

	// A value had the wrong variant.
	ExpectedString
	ExpectedInt
	ExpectedFloat
	ExpectedNumber
	ExpectedNumberOrString
	ExpectedBoolean
	ExpectedList
	ExpectedFixedLenList
	ExpectedEmpty
	ExpectedMap
	ExpectedTable
	ExpectedFunction
	ExpectedTime

	// Tree building failures. AppendedToLeafNode is the syntax error for
	// an operand with no place to attach, as in "1 2"; PrecedenceViolation
	// indicates a builder bug.
	AppendedToLeafNode
	PrecedenceViolation

	// Identifier resolution.
	VariableIdentifierNotFound
	FunctionIdentifierNotFound

	// Generic type failures carrying the expected variant set, or the
	// operator and the actual variant combination.
	TypeError
	WrongTypeCombination

	// Structural parse failures.
	UnmatchedLBrace
	UnmatchedRBrace
	MissingOperatorOutsideOfBrace

	// Lexical failures.
	UnmatchedPartialToken
	IllegalEscapeSequence
	UnterminatedString

	// Checked integer arithmetic failures, carrying the operands.
	AdditionError
	SubtractionError
	NegationError
	MultiplicationError
	DivisionError
	ModulationError

	// A mutation was attempted through the read-only evaluation path.
	ContextNotMutable

	// An external collaborator (macro) failed; the message is whatever the
	// underlying library reported.
	MacroFailure

	// A custom error explained by its message.
	CustomMessage
)

// Error is the single error type shared by the lexer, tree builder,
// evaluator, context and macros.
type Error struct {
	Kind ErrorKind

	// Arity errors.
	Expected int
	Actual   int

	// The offending value for Expected* and TypeError kinds; the operands
	// for arithmetic kinds.
	Value    Value
	Operands []Value

	// Identifier errors, operator symbols, escape sequences and partial
	// tokens, depending on the kind.
	Identifier string

	// Expected variant set for TypeError; actual combination for
	// WrongTypeCombination.
	ExpectedTags []ValueTag
	ActualTags   []ValueTag

	// MacroFailure and CustomMessage text.
	Message string
}

func (e *Error) Error() string {
	switch e.Kind {
	case WrongColumnAmount:
		return fmt.Sprintf("wrong column amount: expected %d, got %d", e.Expected, e.Actual)
	case WrongOperatorArgumentAmount:
		return fmt.Sprintf("an operator expected %d arguments, but got %d", e.Expected, e.Actual)
	case WrongFunctionArgumentAmount:
		return fmt.Sprintf("a function expected %d arguments, but got %d", e.Expected, e.Actual)
	case ExpectedString:
		return fmt.Sprintf("expected a string, but got %s", e.Value)
	case ExpectedInt:
		return fmt.Sprintf("expected an integer, but got %s", e.Value)
	case ExpectedFloat:
		return fmt.Sprintf("expected a float, but got %s", e.Value)
	case ExpectedNumber:
		return fmt.Sprintf("expected a number, but got %s", e.Value)
	case ExpectedNumberOrString:
		return fmt.Sprintf("expected a number or string, but got %s", e.Value)
	case ExpectedBoolean:
		return fmt.Sprintf("expected a boolean, but got %s", e.Value)
	case ExpectedList:
		return fmt.Sprintf("expected a list, but got %s", e.Value)
	case ExpectedFixedLenList:
		return fmt.Sprintf("expected a list of length %d, but got %s", e.Expected, e.Value)
	case ExpectedEmpty:
		return fmt.Sprintf("expected an empty value, but got %s", e.Value)
	case ExpectedMap:
		return fmt.Sprintf("expected a map, but got %s", e.Value)
	case ExpectedTable:
		return fmt.Sprintf("expected a table, but got %s", e.Value)
	case ExpectedFunction:
		return fmt.Sprintf("expected a function, but got %s", e.Value)
	case ExpectedTime:
		return fmt.Sprintf("expected a time, but got %s", e.Value)
	case AppendedToLeafNode:
		return fmt.Sprintf("syntax error at %q", e.Identifier)
	case PrecedenceViolation:
		return "tried to append a child with lower precedence than its parent; this is a bug, please report it"
	case VariableIdentifierNotFound:
		return fmt.Sprintf("variable identifier not found: %s", e.Identifier)
	case FunctionIdentifierNotFound:
		return fmt.Sprintf("function identifier not found: %s", e.Identifier)
	case TypeError:
		return fmt.Sprintf("type error: expected one of %s, but got %s", tagList(e.ExpectedTags), e.Value)
	case WrongTypeCombination:
		return fmt.Sprintf("the operator %s cannot be applied to the type combination %s", e.Identifier, tagList(e.ActualTags))
	case UnmatchedLBrace:
		return "found an opening brace without a matching closing brace"
	case UnmatchedRBrace:
		return "found a closing brace without a matching opening brace"
	case MissingOperatorOutsideOfBrace:
		return "found an opening or closing brace next to a token that cannot take an operand there"
	case UnmatchedPartialToken:
		return fmt.Sprintf("found a partial token %q that cannot be combined into a full token", e.Identifier)
	case IllegalEscapeSequence:
		return fmt.Sprintf("illegal escape sequence: %s", e.Identifier)
	case UnterminatedString:
		return "a string literal was not terminated"
	case AdditionError:
		return fmt.Sprintf("addition of %s and %s failed", e.Operands[0], e.Operands[1])
	case SubtractionError:
		return fmt.Sprintf("subtraction of %s and %s failed", e.Operands[0], e.Operands[1])
	case NegationError:
		return fmt.Sprintf("negation of %s failed", e.Operands[0])
	case MultiplicationError:
		return fmt.Sprintf("multiplication of %s and %s failed", e.Operands[0], e.Operands[1])
	case DivisionError:
		return fmt.Sprintf("division of %s by %s failed", e.Operands[0], e.Operands[1])
	case ModulationError:
		return fmt.Sprintf("modulo of %s by %s failed", e.Operands[0], e.Operands[1])
	case ContextNotMutable:
		return "attempted to modify a context that does not allow modifications"
	case MacroFailure:
		return fmt.Sprintf("macro failure: %s", e.Message)
	case CustomMessage:
		return e.Message
	default:
		return "unknown error"
	}
}

func tagList(tags []ValueTag) string {
	names := make([]string, len(tags))
	for i, t := range tags {
		names[i] = t.String()
	}
	return strings.Join(names, ", ")
}

func errWrongColumnAmount(expected, actual int) *Error {
	return &Error{Kind: WrongColumnAmount, Expected: expected, Actual: actual}
}

func errWrongOperatorArgumentAmount(actual, expected int) *Error {
	return &Error{Kind: WrongOperatorArgumentAmount, Expected: expected, Actual: actual}
}

func errWrongFunctionArgumentAmount(actual, expected int) *Error {
	return &Error{Kind: WrongFunctionArgumentAmount, Expected: expected, Actual: actual}
}

func errExpected(kind ErrorKind, actual Value) *Error {
	return &Error{Kind: kind, Value: actual}
}

func errExpectedFixedLenList(expected int, actual Value) *Error {
	return &Error{Kind: ExpectedFixedLenList, Expected: expected, Value: actual}
}

func errVariableNotFound(identifier string) *Error {
	return &Error{Kind: VariableIdentifierNotFound, Identifier: identifier}
}

func errFunctionNotFound(identifier string) *Error {
	return &Error{Kind: FunctionIdentifierNotFound, Identifier: identifier}
}

func errWrongTypeCombination(operator string, actual []Value) *Error {
	tags := make([]ValueTag, len(actual))
	for i, v := range actual {
		tags[i] = v.Tag
	}
	return &Error{Kind: WrongTypeCombination, Identifier: operator, ActualTags: tags}
}

func errArithmetic(kind ErrorKind, operands ...Value) *Error {
	return &Error{Kind: kind, Operands: operands}
}

func errMacroFailure(err error) *Error {
	return &Error{Kind: MacroFailure, Message: err.Error()}
}

func errCustom(message string) *Error {
	return &Error{Kind: CustomMessage, Message: message}
}

// expectOperatorArgumentAmount checks an operator application's arity.
func expectOperatorArgumentAmount(actual, expected int) error {
	if actual == expected {
		return nil
	}
	return errWrongOperatorArgumentAmount(actual, expected)
}

// expectFunctionArgumentAmount checks a macro call's arity.
func expectFunctionArgumentAmount(actual, expected int) error {
	if actual == expected {
		return nil
	}
	return errWrongFunctionArgumentAmount(actual, expected)
}
