// builtin_command.go
//
// Macros that run external programs. The sh and bash macros hand a script
// to the named shell; command runs a program directly with its arguments.
package whale

import (
	"os/exec"
	"strings"
)

func commandMacros() []Macro {
	return []Macro{
		macroFunc{
			identifier:  "sh",
			description: "Run a script with sh and return its output.",
			run:         shellMacro("sh"),
		},
		macroFunc{
			identifier:  "bash",
			description: "Run a script with bash and return its output.",
			run:         shellMacro("bash"),
		},
		macroFunc{
			identifier:  "command",
			description: "Run a program with arguments and return its output.",
			run: func(argument Value) (Value, error) {
				var program string
				var arguments []string
				if s, err := argument.AsString(); err == nil {
					program = s
				} else {
					items, err := argument.AsList()
					if err != nil {
						return Empty, err
					}
					if len(items) == 0 {
						return Empty, errExpectedFixedLenList(1, argument)
					}
					program, err = items[0].AsString()
					if err != nil {
						return Empty, err
					}
					for _, item := range items[1:] {
						arg, err := item.AsString()
						if err != nil {
							return Empty, err
						}
						arguments = append(arguments, arg)
					}
				}
				return runCommand(exec.Command(program, arguments...))
			},
		},
	}
}

func shellMacro(shell string) func(Value) (Value, error) {
	return func(argument Value) (Value, error) {
		script, err := argument.AsString()
		if err != nil {
			return Empty, err
		}
		return runCommand(exec.Command(shell, "-c", script))
	}
}

func runCommand(command *exec.Cmd) (Value, error) {
	output, err := command.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok && len(exitErr.Stderr) > 0 {
			return Empty, errCustom(strings.TrimSpace(string(exitErr.Stderr)))
		}
		return Empty, errMacroFailure(err)
	}
	return Str(strings.TrimSuffix(string(output), "\n")), nil
}
