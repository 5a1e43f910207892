package whale

import (
	"errors"
	"strings"
	"testing"
)

// buildSrc tokenizes and builds a tree, failing the test on error.
func buildSrc(t *testing.T, src string) *Node {
	t.Helper()
	tokens, err := Tokenize(src)
	if err != nil {
		t.Fatalf("tokenize %q: %v", src, err)
	}
	tree, err := BuildTree(tokens)
	if err != nil {
		t.Fatalf("build %q: %v", src, err)
	}
	return tree
}

func TestTreeShape(t *testing.T) {
	// 1 + 2 * 3 nests the multiplication under the addition.
	root := buildSrc(t, "1 + 2 * 3")
	if len(root.Children()) != 1 {
		t.Fatalf("the root must hold exactly one child, got %d", len(root.Children()))
	}
	add := root.Children()[0]
	if add.Operator().kind != opAdd || len(add.Children()) != 2 {
		t.Fatalf("want an addition with two children, got %s", add.Operator())
	}
	mul := add.Children()[1]
	if mul.Operator().kind != opMul || len(mul.Children()) != 2 {
		t.Fatalf("want a multiplication on the right, got %s", mul.Operator())
	}
}

func TestTreeSequenceFlattening(t *testing.T) {
	// Repeated commas widen one tuple node instead of nesting.
	tuple := buildSrc(t, "1, 2, 3, 4").Children()[0]
	if tuple.Operator().kind != opTuple {
		t.Fatalf("want a tuple, got %s", tuple.Operator())
	}
	if len(tuple.Children()) != 4 {
		t.Fatalf("want 4 flattened children, got %d", len(tuple.Children()))
	}

	chain := buildSrc(t, "1; 2; 3").Children()[0]
	if chain.Operator().kind != opChain || len(chain.Children()) != 3 {
		t.Fatalf("want a chain with 3 children, got %s with %d", chain.Operator(), len(chain.Children()))
	}
}

func TestTreeAssignmentChainsRight(t *testing.T) {
	assign := buildSrc(t, "a = b = 1").Children()[0]
	if assign.Operator().kind != opAssign {
		t.Fatalf("want an assignment, got %s", assign.Operator())
	}
	inner := assign.Children()[1]
	if inner.Operator().kind != opAssign {
		t.Fatalf("want a nested assignment on the right, got %s", inner.Operator())
	}
}

func TestTreeIdentifierRoles(t *testing.T) {
	// The token after an identifier decides whether it reads, writes or
	// calls.
	read := buildSrc(t, "x").Children()[0]
	if read.Operator().kind != opVariableRead {
		t.Fatalf("want a read, got %s", read.Operator())
	}
	write := buildSrc(t, "x = 1").Children()[0].Children()[0]
	if write.Operator().kind != opVariableWrite {
		t.Fatalf("want a write, got %s", write.Operator())
	}
	call := buildSrc(t, "x()").Children()[0]
	if call.Operator().kind != opFunctionIdentifier {
		t.Fatalf("want a call, got %s", call.Operator())
	}
}

func TestTreeParenthesesSeal(t *testing.T) {
	// A parenthesized chain must not adopt operands from outside.
	value := evalSrc(t, "(1; 2) + 3")
	wantInt(t, value, 5)
	value = evalSrc(t, "2 * (3 + 4)")
	wantInt(t, value, 14)
}

func TestTreeMissingOperand(t *testing.T) {
	tokens, err := Tokenize("1 2")
	if err != nil {
		t.Fatal(err)
	}
	_, err = BuildTree(tokens)
	var engineErr *Error
	if !errors.As(err, &engineErr) || engineErr.Kind != AppendedToLeafNode {
		t.Fatalf("two adjacent operands must not build, got %v", err)
	}
	// Adjacent operands are bad input, so the message reads as a syntax
	// error and names the operand that had no place to go.
	if !strings.Contains(err.Error(), "syntax error") || !strings.Contains(err.Error(), "2") {
		t.Fatalf("unexpected rendering %q", err.Error())
	}
}
