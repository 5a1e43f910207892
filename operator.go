// operator.go
//
// The operator table. Every tree node carries an Operator; the precedence,
// associativity and arity reported here drive the tree builder, and eval
// applies the operator to its already evaluated child values. Integer
// arithmetic is checked and fails loudly on overflow instead of wrapping.
package whale

import "math"

type operatorKind int

const (
	opRootNode operatorKind = iota
	opAdd
	opSub
	opNeg
	opMul
	opDiv
	opMod
	opExp
	opEq
	opNeq
	opGt
	opLt
	opGeq
	opLeq
	opAnd
	opOr
	opNot
	opAssign
	opAddAssign
	opSubAssign
	opMulAssign
	opDivAssign
	opModAssign
	opExpAssign
	opAndAssign
	opOrAssign
	opTuple
	opChain
	opConst
	opVariableRead
	opVariableWrite
	opFunctionIdentifier
)

// Operator is the payload of a tree node: a kind plus, for leaves, the
// constant value or the identifier.
type Operator struct {
	kind       operatorKind
	value      Value
	identifier string
}

func rootOperator() Operator              { return Operator{kind: opRootNode} }
func constOperator(value Value) Operator  { return Operator{kind: opConst, value: value} }
func readOperator(name string) Operator   { return Operator{kind: opVariableRead, identifier: name} }
func writeOperator(name string) Operator  { return Operator{kind: opVariableWrite, identifier: name} }
func callOperator(name string) Operator   { return Operator{kind: opFunctionIdentifier, identifier: name} }
func plainOperator(kind operatorKind) Operator { return Operator{kind: kind} }

// precedence orders operators for tree building; higher binds tighter.
func (o Operator) precedence() int {
	switch o.kind {
	case opRootNode, opConst, opVariableRead, opVariableWrite:
		return 200
	case opFunctionIdentifier:
		return 190
	case opExp:
		return 120
	case opNeg, opNot:
		return 110
	case opMul, opDiv, opMod:
		return 100
	case opAdd, opSub:
		return 95
	case opEq, opNeq, opGt, opLt, opGeq, opLeq:
		return 80
	case opAnd:
		return 75
	case opOr:
		return 70
	case opAssign, opAddAssign, opSubAssign, opMulAssign, opDivAssign,
		opModAssign, opExpAssign, opAndAssign, opOrAssign:
		return 50
	case opTuple:
		return 40
	default: // opChain
		return 0
	}
}

// isLeftToRight reports left associativity. Assignments and function
// application chain right to left.
func (o Operator) isLeftToRight() bool {
	switch o.kind {
	case opAssign, opAddAssign, opSubAssign, opMulAssign, opDivAssign,
		opModAssign, opExpAssign, opAndAssign, opOrAssign, opFunctionIdentifier:
		return false
	default:
		return true
	}
}

// isSequence reports whether same-kind neighbors flatten into one node.
func (o Operator) isSequence() bool {
	return o.kind == opTuple || o.kind == opChain
}

// isPrefix reports whether the operator takes no left operand and instead
// opens a new operand subtree.
func (o Operator) isPrefix() bool {
	switch o.kind {
	case opNeg, opNot, opFunctionIdentifier:
		return true
	default:
		return false
	}
}

func (o Operator) isLeaf() bool {
	max, bounded := o.maxArgumentAmount()
	return bounded && max == 0
}

// maxArgumentAmount returns the operator's arity cap. Sequences are
// unbounded and report bounded == false.
func (o Operator) maxArgumentAmount() (int, bool) {
	switch o.kind {
	case opTuple, opChain:
		return 0, false
	case opConst, opVariableRead, opVariableWrite:
		return 0, true
	case opRootNode, opNeg, opNot, opFunctionIdentifier:
		return 1, true
	default:
		return 2, true
	}
}

func (o Operator) isAssignment() bool {
	switch o.kind {
	case opAssign, opAddAssign, opSubAssign, opMulAssign, opDivAssign,
		opModAssign, opExpAssign, opAndAssign, opOrAssign:
		return true
	default:
		return false
	}
}

// eval applies the operator to its evaluated arguments. The context is read
// only; assignment operators fail here and succeed only through evalMut.
func (o Operator) eval(arguments []Value, context *VariableMap) (Value, error) {
	switch o.kind {
	case opRootNode:
		if len(arguments) == 0 {
			return Empty, nil
		}
		return arguments[0], nil
	case opConst:
		if err := expectOperatorArgumentAmount(len(arguments), 0); err != nil {
			return Empty, err
		}
		return o.value, nil
	case opVariableRead:
		if err := expectOperatorArgumentAmount(len(arguments), 0); err != nil {
			return Empty, err
		}
		value, found, err := context.GetValue(o.identifier)
		if err != nil {
			return Empty, err
		}
		if !found {
			return Empty, errVariableNotFound(o.identifier)
		}
		return value, nil
	case opVariableWrite:
		if err := expectOperatorArgumentAmount(len(arguments), 0); err != nil {
			return Empty, err
		}
		return Str(o.identifier), nil
	case opFunctionIdentifier:
		if err := expectOperatorArgumentAmount(len(arguments), 1); err != nil {
			return Empty, err
		}
		return context.CallFunction(o.identifier, arguments[0])
	case opAdd:
		return evalAdd(arguments)
	case opSub:
		return evalNumeric(arguments, "-", SubtractionError, checkedSub,
			func(a, b float64) float64 { return a - b })
	case opMul:
		return evalNumeric(arguments, "*", MultiplicationError, checkedMul,
			func(a, b float64) float64 { return a * b })
	case opDiv:
		return evalNumeric(arguments, "/", DivisionError, checkedDiv,
			func(a, b float64) float64 { return a / b })
	case opMod:
		return evalNumeric(arguments, "%", ModulationError, checkedMod,
			func(a, b float64) float64 { return math.Mod(a, b) })
	case opNeg:
		return evalNeg(arguments)
	case opExp:
		return evalExp(arguments)
	case opEq:
		if err := expectOperatorArgumentAmount(len(arguments), 2); err != nil {
			return Empty, err
		}
		return Bool(arguments[0].Equal(arguments[1])), nil
	case opNeq:
		if err := expectOperatorArgumentAmount(len(arguments), 2); err != nil {
			return Empty, err
		}
		return Bool(!arguments[0].Equal(arguments[1])), nil
	case opGt:
		return evalComparison(arguments, ">", func(c int) bool { return c > 0 })
	case opLt:
		return evalComparison(arguments, "<", func(c int) bool { return c < 0 })
	case opGeq:
		return evalComparison(arguments, ">=", func(c int) bool { return c >= 0 })
	case opLeq:
		return evalComparison(arguments, "<=", func(c int) bool { return c <= 0 })
	case opAnd:
		return evalLogic(arguments, func(a, b bool) bool { return a && b })
	case opOr:
		return evalLogic(arguments, func(a, b bool) bool { return a || b })
	case opNot:
		if err := expectOperatorArgumentAmount(len(arguments), 1); err != nil {
			return Empty, err
		}
		b, err := arguments[0].AsBoolean()
		if err != nil {
			return Empty, err
		}
		return Bool(!b), nil
	case opTuple:
		return List(arguments), nil
	case opChain:
		if len(arguments) == 0 {
			return Empty, nil
		}
		return arguments[len(arguments)-1], nil
	default:
		// The assignment family.
		return Empty, &Error{Kind: ContextNotMutable}
	}
}

// evalMut is eval plus the assignment family, which writes through the
// context.
func (o Operator) evalMut(arguments []Value, context *VariableMap) (Value, error) {
	if !o.isAssignment() {
		return o.eval(arguments, context)
	}
	if err := expectOperatorArgumentAmount(len(arguments), 2); err != nil {
		return Empty, err
	}
	identifier, err := arguments[0].AsString()
	if err != nil {
		return Empty, err
	}
	value := arguments[1]
	if o.kind != opAssign {
		current, found, err := context.GetValue(identifier)
		if err != nil {
			return Empty, err
		}
		if !found {
			return Empty, errVariableNotFound(identifier)
		}
		value, err = plainOperator(o.baseOperator()).eval([]Value{current, value}, context)
		if err != nil {
			return Empty, err
		}
	}
	if err := context.SetValue(identifier, value); err != nil {
		return Empty, err
	}
	return Empty, nil
}

// baseOperator maps a compound assignment onto the operator it applies
// before storing.
func (o Operator) baseOperator() operatorKind {
	switch o.kind {
	case opAddAssign:
		return opAdd
	case opSubAssign:
		return opSub
	case opMulAssign:
		return opMul
	case opDivAssign:
		return opDiv
	case opModAssign:
		return opMod
	case opExpAssign:
		return opExp
	case opAndAssign:
		return opAnd
	default: // opOrAssign
		return opOr
	}
}

func evalAdd(arguments []Value) (Value, error) {
	if err := expectOperatorArgumentAmount(len(arguments), 2); err != nil {
		return Empty, err
	}
	a, b := arguments[0], arguments[1]
	if a.IsInt() && b.IsInt() {
		sum, ok := checkedAdd(a.Data.(int64), b.Data.(int64))
		if !ok {
			return Empty, errArithmetic(AdditionError, a, b)
		}
		return Int(sum), nil
	}
	if a.IsNumber() && b.IsNumber() {
		x, _ := a.AsNumber()
		y, _ := b.AsNumber()
		return Float(x + y), nil
	}
	if a.IsString() && b.IsString() {
		return Str(a.Data.(string) + b.Data.(string)), nil
	}
	return Empty, errWrongTypeCombination("+", arguments)
}

func evalNumeric(
	arguments []Value,
	symbol string,
	overflowKind ErrorKind,
	checked func(a, b int64) (int64, bool),
	floats func(a, b float64) float64,
) (Value, error) {
	if err := expectOperatorArgumentAmount(len(arguments), 2); err != nil {
		return Empty, err
	}
	a, b := arguments[0], arguments[1]
	if a.IsInt() && b.IsInt() {
		result, ok := checked(a.Data.(int64), b.Data.(int64))
		if !ok {
			return Empty, errArithmetic(overflowKind, a, b)
		}
		return Int(result), nil
	}
	if a.IsNumber() && b.IsNumber() {
		x, _ := a.AsNumber()
		y, _ := b.AsNumber()
		return Float(floats(x, y)), nil
	}
	return Empty, errWrongTypeCombination(symbol, arguments)
}

func evalNeg(arguments []Value) (Value, error) {
	if err := expectOperatorArgumentAmount(len(arguments), 1); err != nil {
		return Empty, err
	}
	if arguments[0].IsInt() {
		n := arguments[0].Data.(int64)
		if n == math.MinInt64 {
			return Empty, errArithmetic(NegationError, arguments[0])
		}
		return Int(-n), nil
	}
	f, err := arguments[0].AsNumber()
	if err != nil {
		return Empty, err
	}
	return Float(-f), nil
}

// evalExp always works in floats, even for integer operands.
func evalExp(arguments []Value) (Value, error) {
	if err := expectOperatorArgumentAmount(len(arguments), 2); err != nil {
		return Empty, err
	}
	base, err := arguments[0].AsNumber()
	if err != nil {
		return Empty, err
	}
	exponent, err := arguments[1].AsNumber()
	if err != nil {
		return Empty, err
	}
	return Float(math.Pow(base, exponent)), nil
}

// evalComparison orders two strings lexicographically or two numbers
// numerically; any other combination is a type error.
func evalComparison(arguments []Value, symbol string, accept func(int) bool) (Value, error) {
	if err := expectOperatorArgumentAmount(len(arguments), 2); err != nil {
		return Empty, err
	}
	a, b := arguments[0], arguments[1]
	if a.IsString() && b.IsString() {
		return Bool(accept(a.Compare(b))), nil
	}
	if a.IsNumber() && b.IsNumber() {
		x, _ := a.AsNumber()
		y, _ := b.AsNumber()
		return Bool(accept(compareOrdered(x, y))), nil
	}
	return Empty, errWrongTypeCombination(symbol, arguments)
}

// evalLogic combines two booleans. Both operands are always evaluated
// before this runs; there is no short circuit.
func evalLogic(arguments []Value, combine func(a, b bool) bool) (Value, error) {
	if err := expectOperatorArgumentAmount(len(arguments), 2); err != nil {
		return Empty, err
	}
	a, err := arguments[0].AsBoolean()
	if err != nil {
		return Empty, err
	}
	b, err := arguments[1].AsBoolean()
	if err != nil {
		return Empty, err
	}
	return Bool(combine(a, b)), nil
}

func checkedAdd(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

func checkedSub(a, b int64) (int64, bool) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, false
	}
	return a - b, true
}

func checkedMul(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	result := a * b
	if result/b != a {
		return 0, false
	}
	return result, true
}

func checkedDiv(a, b int64) (int64, bool) {
	if b == 0 || (a == math.MinInt64 && b == -1) {
		return 0, false
	}
	return a / b, true
}

func checkedMod(a, b int64) (int64, bool) {
	if b == 0 || (a == math.MinInt64 && b == -1) {
		return 0, false
	}
	return a % b, true
}

// String renders the operator the way it appears in source text.
func (o Operator) String() string {
	switch o.kind {
	case opRootNode:
		return "()"
	case opAdd:
		return "+"
	case opSub, opNeg:
		return "-"
	case opMul:
		return "*"
	case opDiv:
		return "/"
	case opMod:
		return "%"
	case opExp:
		return "^"
	case opEq:
		return "=="
	case opNeq:
		return "!="
	case opGt:
		return ">"
	case opLt:
		return "<"
	case opGeq:
		return ">="
	case opLeq:
		return "<="
	case opAnd:
		return "&&"
	case opOr:
		return "||"
	case opNot:
		return "!"
	case opAssign:
		return "="
	case opAddAssign:
		return "+="
	case opSubAssign:
		return "-="
	case opMulAssign:
		return "*="
	case opDivAssign:
		return "/="
	case opModAssign:
		return "%="
	case opExpAssign:
		return "^="
	case opAndAssign:
		return "&&="
	case opOrAssign:
		return "||="
	case opTuple:
		return ","
	case opChain:
		return ";"
	case opConst:
		return o.value.String()
	case opVariableRead, opVariableWrite, opFunctionIdentifier:
		return o.identifier
	default:
		return "?"
	}
}
