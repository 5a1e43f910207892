package whale

import "testing"

func TestRandomMacros(t *testing.T) {
	for i := 0; i < 20; i++ {
		n, err := evalSrc(t, "random_integer((10, 20))").AsInt()
		if err != nil {
			t.Fatal(err)
		}
		if n < 10 || n >= 20 {
			t.Fatalf("random integer %d out of bounds", n)
		}
	}

	s, err := evalSrc(t, "random_string(5)").AsString()
	if err != nil {
		t.Fatal(err)
	}
	if len(s) != 5 {
		t.Fatalf("want 5 characters, got %q", s)
	}

	picked := evalSrc(t, `random(("only",))`)
	wantStr(t, picked, "only")

	if _, err := EvaluateWithContext("random_integer((5, 5))", NewVariableMap()); err == nil {
		t.Fatal("an empty range must fail")
	}
}

func TestTimeMacros(t *testing.T) {
	value := evalSrc(t, "now()")
	captured, err := value.AsTime()
	if err != nil {
		t.Fatal(err)
	}
	if captured.Instant().IsZero() {
		t.Fatal("now must capture a real instant")
	}
	if _, err := evalSrc(t, "utc(now())").AsString(); err != nil {
		t.Fatal(err)
	}
	if _, err := evalSrc(t, "local(now())").AsString(); err != nil {
		t.Fatal(err)
	}
}

func TestHelpMacro(t *testing.T) {
	table, err := evalSrc(t, "help()").AsTable()
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() == 0 {
		t.Fatal("help must list the macros")
	}
	listed := false
	for _, row := range table.Rows() {
		if name, err := row[0].AsString(); err == nil && name == "count" {
			listed = true
		}
	}
	if !listed {
		t.Fatal("help must list count")
	}
}

func TestSystemMacros(t *testing.T) {
	cpus, err := evalSrc(t, "num_cpus()").AsInt()
	if err != nil {
		t.Fatal(err)
	}
	if cpus < 1 {
		t.Fatalf("unexpected cpu count %d", cpus)
	}
	if _, err := evalSrc(t, "current_dir()").AsString(); err != nil {
		t.Fatal(err)
	}
	environment, err := evalSrc(t, "environment()").AsMap()
	if err != nil {
		t.Fatal(err)
	}
	if environment.Len() == 0 {
		t.Fatal("the environment must not be empty")
	}
}
