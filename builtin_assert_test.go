package whale

import (
	"strings"
	"testing"
)

func TestAssertMacro(t *testing.T) {
	if _, err := EvaluateWithContext("assert(1 == 1)", NewVariableMap()); err != nil {
		t.Fatal(err)
	}
	if _, err := EvaluateWithContext("assert((true, 1 < 2, true))", NewVariableMap()); err != nil {
		t.Fatal(err)
	}
	if _, err := EvaluateWithContext("assert(1 == 2)", NewVariableMap()); err == nil {
		t.Fatal("a false assertion must fail")
	}
	if _, err := EvaluateWithContext("assert(1)", NewVariableMap()); err == nil {
		t.Fatal("a non-boolean assertion must fail")
	}
}

func TestAssertEqualMacro(t *testing.T) {
	if _, err := EvaluateWithContext(`assert_equal(("a", "a"))`, NewVariableMap()); err != nil {
		t.Fatal(err)
	}
	_, err := EvaluateWithContext("assert_equal((1, 2))", NewVariableMap())
	if err == nil {
		t.Fatal("unequal values must fail")
	}
	if !strings.Contains(err.Error(), "1") || !strings.Contains(err.Error(), "2") {
		t.Fatalf("the failure must show both values, got %v", err)
	}
}
