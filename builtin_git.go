// builtin_git.go
//
// Git macros built on go-git, so no git binary is needed.
package whale

import (
	"sort"

	git "github.com/go-git/go-git/v5"
)

func gitMacros() []Macro {
	return []Macro{
		macroFunc{
			identifier:  "git_status",
			description: "Return the worktree status of a repository as a table.",
			run: func(argument Value) (Value, error) {
				path := "."
				if !argument.IsEmpty() {
					var err error
					path, err = argument.AsString()
					if err != nil {
						return Empty, err
					}
				}
				repository, err := git.PlainOpen(path)
				if err != nil {
					return Empty, errMacroFailure(err)
				}
				worktree, err := repository.Worktree()
				if err != nil {
					return Empty, errMacroFailure(err)
				}
				status, err := worktree.Status()
				if err != nil {
					return Empty, errMacroFailure(err)
				}

				paths := make([]string, 0, len(status))
				for file := range status {
					paths = append(paths, file)
				}
				sort.Strings(paths)

				table := NewTable([]string{"path", "staging", "worktree"})
				for _, file := range paths {
					fileStatus := status[file]
					row := []Value{
						Str(file),
						Str(string(fileStatus.Staging)),
						Str(string(fileStatus.Worktree)),
					}
					if err := table.Insert(row); err != nil {
						return Empty, err
					}
				}
				return TableVal(table), nil
			},
		},
	}
}
