// builtin_assert.go
//
// Assertion macros for scripts that test other scripts.
package whale

import "fmt"

func testMacros() []Macro {
	return []Macro{
		macroFunc{
			identifier:  "assert",
			description: "Fail unless every argument is true.",
			run: func(argument Value) (Value, error) {
				if b, err := argument.AsBoolean(); err == nil {
					if !b {
						return Empty, errCustom("assertion failed")
					}
					return Empty, nil
				}
				items, err := argument.AsList()
				if err != nil {
					return Empty, err
				}
				for _, item := range items {
					b, err := item.AsBoolean()
					if err != nil {
						return Empty, err
					}
					if !b {
						return Empty, errCustom("assertion failed")
					}
				}
				return Empty, nil
			},
		},
		macroFunc{
			identifier:  "assert_equal",
			description: "Fail unless the two arguments are equal.",
			run: func(argument Value) (Value, error) {
				pair, err := argument.AsFixedLenList(2)
				if err != nil {
					return Empty, err
				}
				if !pair[0].Equal(pair[1]) {
					return Empty, errCustom(fmt.Sprintf("assertion failed: %s does not equal %s", pair[0], pair[1]))
				}
				return Empty, nil
			},
		},
	}
}
