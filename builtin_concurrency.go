// builtin_concurrency.go
//
// Concurrency macros. Each function passed to async runs in its own
// goroutine with its own child context, so the workers never share mutable
// state; results come back in argument order.
package whale

import "sync"

func concurrencyMacros() []Macro {
	return []Macro{
		macroFunc{
			identifier:  "async",
			description: "Run functions concurrently and return their results in order.",
			run: func(argument Value) (Value, error) {
				if function, err := argument.AsFunction(); err == nil {
					return function.Run(Empty)
				}
				items, err := argument.AsList()
				if err != nil {
					return Empty, err
				}
				functions := make([]Function, len(items))
				for i, item := range items {
					function, err := item.AsFunction()
					if err != nil {
						return Empty, err
					}
					functions[i] = function
				}

				results := make([]Value, len(functions))
				errors := make([]error, len(functions))
				var group sync.WaitGroup
				for i, function := range functions {
					group.Add(1)
					go func(i int, function Function) {
						defer group.Done()
						results[i], errors[i] = function.Run(Empty)
					}(i, function)
				}
				group.Wait()

				for _, err := range errors {
					if err != nil {
						return Empty, err
					}
				}
				return List(results), nil
			},
		},
	}
}
