package whale

import (
	"errors"
	"testing"
)

func TestContextDottedAccess(t *testing.T) {
	context := NewVariableMap()
	if err := context.SetValue("server.port", Int(8080)); err != nil {
		t.Fatal(err)
	}
	if err := context.SetValue("server.host", Str("localhost")); err != nil {
		t.Fatal(err)
	}

	port, found, err := context.GetValue("server.port")
	if err != nil || !found {
		t.Fatalf("server.port: found=%t err=%v", found, err)
	}
	wantInt(t, port, 8080)

	// The intermediate map is a value of its own.
	server, found, err := context.GetValue("server")
	if err != nil || !found {
		t.Fatalf("server: found=%t err=%v", found, err)
	}
	inner, err := server.AsMap()
	if err != nil {
		t.Fatal(err)
	}
	if inner.Len() != 2 {
		t.Fatalf("want 2 nested bindings, got %d", inner.Len())
	}
}

func TestContextDottedAccessThroughNonMap(t *testing.T) {
	context := NewVariableMap()
	if err := context.SetValue("a", Int(1)); err != nil {
		t.Fatal(err)
	}
	err := context.SetValue("a.b", Int(2))
	var engineErr *Error
	if !errors.As(err, &engineErr) || engineErr.Kind != ExpectedMap {
		t.Fatalf("want an expected-map error, got %v", err)
	}
	_, _, err = context.GetValue("a.b")
	if !errors.As(err, &engineErr) || engineErr.Kind != ExpectedMap {
		t.Fatalf("want an expected-map error, got %v", err)
	}
}

func TestContextMissingIdentifier(t *testing.T) {
	context := NewVariableMap()
	_, found, err := context.GetValue("missing")
	if err != nil {
		t.Fatal(err)
	}
	if found {
		t.Fatal("an unbound identifier must not be found")
	}
	_, found, err = context.GetValue("missing.nested")
	if err != nil || found {
		t.Fatalf("unbound dotted path: found=%t err=%v", found, err)
	}
}

func TestContextGetReturnsCopies(t *testing.T) {
	context := NewVariableMap()
	if err := context.SetValue("items", List([]Value{Int(1), Int(2)})); err != nil {
		t.Fatal(err)
	}
	value, _, err := context.GetValue("items")
	if err != nil {
		t.Fatal(err)
	}
	value.Data.([]Value)[0] = Int(99)

	again, _, err := context.GetValue("items")
	if err != nil {
		t.Fatal(err)
	}
	wantInt(t, again.Data.([]Value)[0], 1)
}

func TestContextKeysAreSorted(t *testing.T) {
	context := NewVariableMap()
	for _, key := range []string{"zebra", "apple", "mango"} {
		if err := context.SetValue(key, Int(0)); err != nil {
			t.Fatal(err)
		}
	}
	keys := context.Keys()
	want := []string{"apple", "mango", "zebra"}
	for i, key := range want {
		if keys[i] != key {
			t.Fatalf("want keys %v, got %v", want, keys)
		}
	}
}

func TestCallDispatchOrder(t *testing.T) {
	// A local function binding shadows the colon chain but not the macros.
	context := NewVariableMap()
	if err := context.SetValue("shout", FunctionVal(NewFunction(`input + "!"`))); err != nil {
		t.Fatal(err)
	}
	result, err := context.CallFunction("shout", Str("hey"))
	if err != nil {
		t.Fatal(err)
	}
	wantStr(t, result, "hey!")

	// Calling a non-function binding is a type error.
	if err := context.SetValue("num", Int(1)); err != nil {
		t.Fatal(err)
	}
	_, err = context.CallFunction("num", Empty)
	var engineErr *Error
	if !errors.As(err, &engineErr) || engineErr.Kind != ExpectedFunction {
		t.Fatalf("want an expected-function error, got %v", err)
	}
}

func TestColonChainCombinesArgument(t *testing.T) {
	context := NewVariableMap()
	if err := context.SetValue("items", List([]Value{Int(1), Int(2)})); err != nil {
		t.Fatal(err)
	}
	// A non-empty argument rides along as the second element of a pair.
	result, err := context.CallFunction("items:get", Int(1))
	if err != nil {
		t.Fatal(err)
	}
	wantInt(t, result, 2)
}

func TestCustomMacroSet(t *testing.T) {
	greet := macroFunc{
		identifier:  "greet",
		description: "Greet a name.",
		run: func(argument Value) (Value, error) {
			name, err := argument.AsString()
			if err != nil {
				return Empty, err
			}
			return Str("hello " + name), nil
		},
	}
	context := NewVariableMapWithMacros(NewMacroSet(greet))
	result, err := EvaluateWithContext(`greet("whale")`, context)
	if err != nil {
		t.Fatal(err)
	}
	wantStr(t, result, "hello whale")

	// The standard macros are absent from the custom set.
	if _, err := EvaluateWithContext("now()", context); err == nil {
		t.Fatal("a custom macro set must not include the standard macros")
	}
}
