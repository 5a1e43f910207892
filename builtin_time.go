// builtin_time.go
//
// Time macros.
package whale

import "time"

func timeMacros() []Macro {
	return []Macro{
		macroFunc{
			identifier:  "now",
			description: "Return the current time.",
			run: func(argument Value) (Value, error) {
				if !argument.IsEmpty() {
					return Empty, errExpected(ExpectedEmpty, argument)
				}
				return TimeVal(Now()), nil
			},
		},
		macroFunc{
			identifier:  "local",
			description: "Render a time in the zone it was captured in.",
			run: func(argument Value) (Value, error) {
				t, err := argument.AsTime()
				if err != nil {
					return Empty, err
				}
				return Str(t.Local()), nil
			},
		},
		macroFunc{
			identifier:  "utc",
			description: "Render a time in UTC.",
			run: func(argument Value) (Value, error) {
				t, err := argument.AsTime()
				if err != nil {
					return Empty, err
				}
				return Str(t.UTC()), nil
			},
		},
		macroFunc{
			identifier:  "wait",
			description: "Sleep for a number of seconds.",
			run: func(argument Value) (Value, error) {
				seconds, err := argument.AsNumber()
				if err != nil {
					return Empty, err
				}
				if seconds < 0 {
					return Empty, errCustom("cannot wait a negative amount of time")
				}
				time.Sleep(time.Duration(seconds * float64(time.Second)))
				return Empty, nil
			},
		},
	}
}
