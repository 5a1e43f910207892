// tree.go
//
// Operator precedence tree building. BuildTree folds a token stream into a
// single tree in one pass: each new node sinks down the right spine of the
// tree until it finds its place, guided by the precedences in operator.go.
// Parenthesized subexpressions are built in their own scope and re-enter the
// outer tree as sealed operands under a root node wrapper.
package whale

// Node is one node of the expression tree: an operator and its operands.
type Node struct {
	operator Operator
	children []*Node
}

func newNode(operator Operator) *Node { return &Node{operator: operator} }

func (n *Node) Operator() Operator { return n.operator }
func (n *Node) Children() []*Node  { return n.children }

// BuildTree folds tokens into a tree rooted at a sentinel root node.
func BuildTree(tokens []Token) (*Node, error) {
	scopes := []*Node{newNode(rootOperator())}
	lastTokenIsRightsided := false

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		var next *Token
		if i+1 < len(tokens) {
			next = &tokens[i+1]
		}

		var node *Node
		rightsided := token.Type.isRightsidedValue()

		switch token.Type {
		case PLUS:
			node = newNode(plainOperator(opAdd))
		case MINUS:
			// A minus after a completed operand subtracts; anywhere else
			// it negates.
			if lastTokenIsRightsided {
				node = newNode(plainOperator(opSub))
			} else {
				node = newNode(plainOperator(opNeg))
			}
		case STAR:
			node = newNode(plainOperator(opMul))
		case SLASH:
			node = newNode(plainOperator(opDiv))
		case PERCENT:
			node = newNode(plainOperator(opMod))
		case HAT:
			node = newNode(plainOperator(opExp))
		case EQ:
			node = newNode(plainOperator(opEq))
		case NEQ:
			node = newNode(plainOperator(opNeq))
		case GT:
			node = newNode(plainOperator(opGt))
		case LT:
			node = newNode(plainOperator(opLt))
		case GEQ:
			node = newNode(plainOperator(opGeq))
		case LEQ:
			node = newNode(plainOperator(opLeq))
		case AND:
			node = newNode(plainOperator(opAnd))
		case OR:
			node = newNode(plainOperator(opOr))
		case NOT:
			node = newNode(plainOperator(opNot))
		case ASSIGN:
			node = newNode(plainOperator(opAssign))
		case PLUS_ASSIGN:
			node = newNode(plainOperator(opAddAssign))
		case MINUS_ASSIGN:
			node = newNode(plainOperator(opSubAssign))
		case STAR_ASSIGN:
			node = newNode(plainOperator(opMulAssign))
		case SLASH_ASSIGN:
			node = newNode(plainOperator(opDivAssign))
		case PERCENT_ASSIGN:
			node = newNode(plainOperator(opModAssign))
		case HAT_ASSIGN:
			node = newNode(plainOperator(opExpAssign))
		case AND_ASSIGN:
			node = newNode(plainOperator(opAndAssign))
		case OR_ASSIGN:
			node = newNode(plainOperator(opOrAssign))
		case COMMA:
			node = newNode(plainOperator(opTuple))
		case SEMICOLON:
			node = newNode(plainOperator(opChain))
		case INT:
			node = newNode(constOperator(Int(token.Literal.(int64))))
		case FLOAT:
			node = newNode(constOperator(Float(token.Literal.(float64))))
		case BOOLEAN:
			node = newNode(constOperator(Bool(token.Literal.(bool))))
		case STRING:
			node = newNode(constOperator(Str(token.Literal.(string))))
		case IDENTIFIER:
			name := token.Literal.(string)
			switch {
			case next != nil && next.Type.isAssignment():
				node = newNode(writeOperator(name))
			case next != nil && next.Type == LBRACE:
				// The identifier is being applied to the braced argument,
				// so the brace after it is not a missing operator.
				node = newNode(callOperator(name))
				rightsided = false
			default:
				node = newNode(readOperator(name))
			}
		case LBRACE:
			if lastTokenIsRightsided {
				return nil, &Error{Kind: MissingOperatorOutsideOfBrace}
			}
			scopes = append(scopes, newNode(rootOperator()))
		case RBRACE:
			if len(scopes) < 2 {
				return nil, &Error{Kind: UnmatchedRBrace}
			}
			if next != nil && next.Type.isLeftsidedValue() {
				return nil, &Error{Kind: MissingOperatorOutsideOfBrace}
			}
			closed := scopes[len(scopes)-1]
			scopes = scopes[:len(scopes)-1]
			if len(closed.children) == 0 {
				node = newNode(constOperator(Empty))
			} else {
				node = closed
			}
		}

		if node != nil {
			scope := scopes[len(scopes)-1]
			if err := scope.insertBackPrioritized(node, true); err != nil {
				return nil, err
			}
		}
		lastTokenIsRightsided = rightsided
	}

	if len(scopes) > 1 {
		return nil, &Error{Kind: UnmatchedLBrace}
	}
	return scopes[0], nil
}

// insertBackPrioritized sinks node into the right spine of the tree.
// Operands and prefix operators descend to the deepest open operand slot;
// infix operators descend while the rightmost child binds tighter, then take
// that child as their left operand.
func (n *Node) insertBackPrioritized(node *Node, isRootNode bool) error {
	if n.operator.isLeaf() {
		return &Error{Kind: AppendedToLeafNode, Identifier: node.operator.String()}
	}
	if !isRootNode && !node.isOperandLike() &&
		n.operator.precedence() > node.operator.precedence() {
		// Unreachable when the descent conditions are correct; kept as a
		// consistency check.
		return &Error{Kind: PrecedenceViolation}
	}

	if node.isOperandLike() {
		return n.insertOperand(node)
	}
	return n.insertInfix(node)
}

// isOperandLike groups the nodes that open or complete an operand rather
// than combining two: leaves, prefix operators and sealed subexpressions.
func (n *Node) isOperandLike() bool {
	if n.operator.kind == opRootNode {
		return true
	}
	return n.operator.isLeaf() || n.operator.isPrefix()
}

func (n *Node) insertOperand(node *Node) error {
	if len(n.children) > 0 {
		last := n.children[len(n.children)-1]
		if last.hasOpenOperandSlot() {
			return last.insertBackPrioritized(node, false)
		}
	}
	if !n.hasEnoughChildren() {
		n.children = append(n.children, node)
		return nil
	}
	return &Error{Kind: AppendedToLeafNode, Identifier: node.operator.String()}
}

func (n *Node) insertInfix(node *Node) error {
	if len(n.children) == 0 {
		n.children = append(n.children, node)
		return nil
	}
	last := n.children[len(n.children)-1]
	if last.operator.precedence() < node.operator.precedence() ||
		(last.operator.precedence() == node.operator.precedence() &&
			!last.operator.isLeftToRight() && !node.operator.isLeftToRight()) {
		return last.insertBackPrioritized(node, false)
	}
	if !n.hasEnoughChildren() && !n.operator.isSequence() {
		// A new operand subtree is still owed here, so the operator opens
		// it instead of stealing a child.
		n.children = append(n.children, node)
		return nil
	}

	// Take the rightmost child as the new node's left operand. Adjacent
	// sequence operators of the same kind fold into one node instead of
	// nesting.
	n.children = n.children[:len(n.children)-1]
	if node.operator.isSequence() && node.operator.kind == last.operator.kind {
		node.children = last.children
	} else {
		node.children = append(node.children, last)
	}
	n.children = append(n.children, node)
	return nil
}

// hasOpenOperandSlot reports whether the rightmost spine of the subtree
// still owes an operand. Sealed subexpressions never do.
func (n *Node) hasOpenOperandSlot() bool {
	if n.operator.kind == opRootNode && len(n.children) > 0 {
		return false
	}
	if !n.hasEnoughChildren() {
		return true
	}
	if len(n.children) == 0 {
		return false
	}
	return n.children[len(n.children)-1].hasOpenOperandSlot()
}

func (n *Node) hasEnoughChildren() bool {
	max, bounded := n.operator.maxArgumentAmount()
	return bounded && len(n.children) >= max
}

// Eval walks the tree bottom up against a read-only context.
func (n *Node) Eval(context *VariableMap) (Value, error) {
	arguments := make([]Value, 0, len(n.children))
	for _, child := range n.children {
		value, err := child.Eval(context)
		if err != nil {
			return Empty, err
		}
		arguments = append(arguments, value)
	}
	return n.operator.eval(arguments, context)
}

// EvalMut walks the tree bottom up and lets the assignment operators write
// through the context.
func (n *Node) EvalMut(context *VariableMap) (Value, error) {
	arguments := make([]Value, 0, len(n.children))
	for _, child := range n.children {
		value, err := child.EvalMut(context)
		if err != nil {
			return Empty, err
		}
		arguments = append(arguments, value)
	}
	return n.operator.evalMut(arguments, context)
}
