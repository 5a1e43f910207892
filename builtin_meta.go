// builtin_meta.go
//
// Macros about the language itself.
package whale

import "os"

func metaMacros() []Macro {
	return []Macro{
		macroFunc{
			identifier:  "help",
			description: "List every macro with its description.",
			run: func(argument Value) (Value, error) {
				if !argument.IsEmpty() {
					return Empty, errExpected(ExpectedEmpty, argument)
				}
				table := NewTable([]string{"identifier", "description"})
				for _, macro := range Builtins().List() {
					info := macro.Info()
					if err := table.Insert([]Value{Str(info.Identifier), Str(info.Description)}); err != nil {
						return Empty, err
					}
				}
				return TableVal(table), nil
			},
		},
		macroFunc{
			identifier:  "run",
			description: "Evaluate a file as a script and return its result.",
			run: func(argument Value) (Value, error) {
				path, err := argument.AsString()
				if err != nil {
					return Empty, err
				}
				contents, err := os.ReadFile(path)
				if err != nil {
					return Empty, errMacroFailure(err)
				}
				return Evaluate(string(contents))
			},
		},
	}
}
