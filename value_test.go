package whale

import "testing"

func TestValueOrdering(t *testing.T) {
	// Same-variant payload comparisons.
	if Int(1).Compare(Int(2)) != -1 {
		t.Fatal("1 should be less than 2")
	}
	if Str("b").Compare(Str("a")) != 1 {
		t.Fatal("b should be greater than a")
	}
	if Bool(false).Compare(Bool(true)) != -1 {
		t.Fatal("false should be less than true")
	}
	if List([]Value{Int(1), Int(2)}).Compare(List([]Value{Int(1), Int(3)})) != -1 {
		t.Fatal("lists should compare element-wise")
	}
	if List([]Value{Int(1)}).Compare(List([]Value{Int(1), Int(0)})) != -1 {
		t.Fatal("a prefix list should be less than a longer one")
	}

	// Cross-variant comparisons follow the variant ranking, with strings
	// above everything and empty below everything.
	if Str("").Compare(Int(9)) != 1 {
		t.Fatal("any string should be greater than any integer")
	}
	if Int(0).Compare(Bool(true)) != 1 {
		t.Fatal("any integer should be greater than any boolean")
	}
	if Bool(false).Compare(Float(9e9)) != 1 {
		t.Fatal("any boolean should be greater than any float")
	}
	if Empty.Compare(Float(-1)) != -1 {
		t.Fatal("empty should be less than everything")
	}
}

func TestValueEquality(t *testing.T) {
	if !Int(1).Equal(Int(1)) {
		t.Fatal("equal integers")
	}
	if Int(1).Equal(Float(1)) {
		t.Fatal("an integer is never equal to a float")
	}
	if !Empty.Equal(Empty) {
		t.Fatal("empty equals empty")
	}
	a := List([]Value{Str("x"), Int(1)})
	b := List([]Value{Str("x"), Int(1)})
	if !a.Equal(b) {
		t.Fatal("equal lists")
	}
}

func TestValueClone(t *testing.T) {
	original := List([]Value{Int(1), List([]Value{Int(2)})})
	clone := original.Clone()
	clone.Data.([]Value)[0] = Int(99)
	clone.Data.([]Value)[1].Data.([]Value)[0] = Int(99)
	if !original.Equal(List([]Value{Int(1), List([]Value{Int(2)})})) {
		t.Fatal("mutating a clone changed the original")
	}
}

func TestValueDisplay(t *testing.T) {
	cases := []struct {
		value Value
		want  string
	}{
		{Int(42), "42"},
		{Float(2.5), "2.5"},
		{Float(100000), "100000.0"},
		{Str("hi"), `"hi"`},
		{Bool(true), "true"},
		{Empty, "()"},
		{List([]Value{Int(1), Str("a")}), `(1, "a")`},
	}
	for _, c := range cases {
		if got := c.value.String(); got != c.want {
			t.Errorf("want %s, got %s", c.want, got)
		}
	}
}
