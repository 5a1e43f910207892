// builtin_sys.go
//
// Host environment macros.
package whale

import (
	"os"
	"runtime"
	"strings"
)

func systemMacros() []Macro {
	return []Macro{
		macroFunc{
			identifier:  "hostname",
			description: "Return the hostname.",
			run: func(argument Value) (Value, error) {
				if !argument.IsEmpty() {
					return Empty, errExpected(ExpectedEmpty, argument)
				}
				hostname, err := os.Hostname()
				if err != nil {
					return Empty, errMacroFailure(err)
				}
				return Str(hostname), nil
			},
		},
		macroFunc{
			identifier:  "num_cpus",
			description: "Return the number of logical processors.",
			run: func(argument Value) (Value, error) {
				if !argument.IsEmpty() {
					return Empty, errExpected(ExpectedEmpty, argument)
				}
				return Int(int64(runtime.NumCPU())), nil
			},
		},
		macroFunc{
			identifier:  "environment",
			description: "Return the process environment as a map.",
			run: func(argument Value) (Value, error) {
				if !argument.IsEmpty() {
					return Empty, errExpected(ExpectedEmpty, argument)
				}
				environment := NewVariableMap()
				for _, entry := range os.Environ() {
					name, value, found := strings.Cut(entry, "=")
					// Identifiers with dots would be misread as nested maps.
					if !found || strings.Contains(name, ".") {
						continue
					}
					if err := environment.SetValue(name, Str(value)); err != nil {
						return Empty, err
					}
				}
				return MapVal(environment), nil
			},
		},
		macroFunc{
			identifier:  "current_dir",
			description: "Return the working directory.",
			run: func(argument Value) (Value, error) {
				if !argument.IsEmpty() {
					return Empty, errExpected(ExpectedEmpty, argument)
				}
				directory, err := os.Getwd()
				if err != nil {
					return Empty, errMacroFailure(err)
				}
				return Str(directory), nil
			},
		},
	}
}
