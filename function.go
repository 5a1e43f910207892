package whale

// Function is a callable value holding unevaluated source text. Calling it
// builds a fresh child context, binds the call argument to "input" and
// evaluates the body there.
type Function struct {
	body string
}

func NewFunction(body string) Function { return Function{body: body} }

// Body returns the unevaluated source text.
func (f Function) Body() string { return f.body }

// Call evaluates the body in a child of the given context. The argument is
// bound to "input"; bindings made by the body stay in the child scope.
func (f Function) Call(argument Value, parent *VariableMap) (Value, error) {
	child := NewVariableMapWithMacros(parent.Macros())
	if err := child.SetValue("input", argument); err != nil {
		return Empty, err
	}
	return EvaluateWithContext(f.body, child)
}

// Run evaluates the body in a fresh context with the standard macros.
func (f Function) Run(argument Value) (Value, error) {
	return f.Call(argument, NewVariableMap())
}

func (f Function) String() string { return "'" + f.body + "'" }
