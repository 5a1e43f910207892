// builtin_random.go
//
// Randomness macros.
package whale

import "math/rand"

const randomStringLength = 10

func randomMacros() []Macro {
	return []Macro{
		macroFunc{
			identifier:  "random",
			description: "Pick a random item from a list.",
			run: func(argument Value) (Value, error) {
				items, err := argument.AsList()
				if err != nil {
					return Empty, err
				}
				if len(items) == 0 {
					return Empty, errCustom("cannot pick from an empty list")
				}
				return items[rand.Intn(len(items))], nil
			},
		},
		macroFunc{
			identifier:  "random_integer",
			description: "Return a random integer, optionally bounded by (low, high).",
			run: func(argument Value) (Value, error) {
				if argument.IsEmpty() {
					return Int(rand.Int63()), nil
				}
				pair, err := argument.AsFixedLenList(2)
				if err != nil {
					return Empty, err
				}
				low, err := pair[0].AsInt()
				if err != nil {
					return Empty, err
				}
				high, err := pair[1].AsInt()
				if err != nil {
					return Empty, err
				}
				if high <= low {
					return Empty, errCustom("the upper bound must be greater than the lower bound")
				}
				return Int(low + rand.Int63n(high-low)), nil
			},
		},
		macroFunc{
			identifier:  "random_float",
			description: "Return a random float in the half-open range from zero to one.",
			run: func(argument Value) (Value, error) {
				if !argument.IsEmpty() {
					return Empty, errExpected(ExpectedEmpty, argument)
				}
				return Float(rand.Float64()), nil
			},
		},
		macroFunc{
			identifier:  "random_boolean",
			description: "Return a random boolean.",
			run: func(argument Value) (Value, error) {
				if !argument.IsEmpty() {
					return Empty, errExpected(ExpectedEmpty, argument)
				}
				return Bool(rand.Intn(2) == 1), nil
			},
		},
		macroFunc{
			identifier:  "random_string",
			description: "Return a random alphanumeric string, ten characters unless a length is given.",
			run: func(argument Value) (Value, error) {
				length := int64(randomStringLength)
				if !argument.IsEmpty() {
					var err error
					length, err = argument.AsInt()
					if err != nil {
						return Empty, err
					}
					if length < 0 {
						return Empty, errCustom("the length must not be negative")
					}
				}
				const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
				characters := make([]byte, length)
				for i := range characters {
					characters[i] = alphabet[rand.Intn(len(alphabet))]
				}
				return Str(string(characters)), nil
			},
		},
	}
}
