// builtin_fs.go
//
// Filesystem macros.
package whale

import (
	"os"
	"path/filepath"
	"sort"
	"time"
)

func fsMacros() []Macro {
	return []Macro{
		macroFunc{
			identifier:  "read",
			description: "Read a file into a string.",
			run: func(argument Value) (Value, error) {
				path, err := argument.AsString()
				if err != nil {
					return Empty, err
				}
				contents, err := os.ReadFile(path)
				if err != nil {
					return Empty, errMacroFailure(err)
				}
				return Str(string(contents)), nil
			},
		},
		macroFunc{
			identifier:  "write",
			description: "Write a string to a file, replacing its contents.",
			run: func(argument Value) (Value, error) {
				pair, err := argument.AsFixedLenList(2)
				if err != nil {
					return Empty, err
				}
				path, err := pair[0].AsString()
				if err != nil {
					return Empty, err
				}
				contents, err := pair[1].AsString()
				if err != nil {
					return Empty, err
				}
				if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
					return Empty, errMacroFailure(err)
				}
				return Empty, nil
			},
		},
		macroFunc{
			identifier:  "append",
			description: "Append a string to a file.",
			run: func(argument Value) (Value, error) {
				pair, err := argument.AsFixedLenList(2)
				if err != nil {
					return Empty, err
				}
				path, err := pair[0].AsString()
				if err != nil {
					return Empty, err
				}
				contents, err := pair[1].AsString()
				if err != nil {
					return Empty, err
				}
				file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
				if err != nil {
					return Empty, errMacroFailure(err)
				}
				defer file.Close()
				if _, err := file.WriteString(contents); err != nil {
					return Empty, errMacroFailure(err)
				}
				return Empty, nil
			},
		},
		macroFunc{
			identifier:  "read_dir",
			description: "List a directory as a table of name, size and kind.",
			run: func(argument Value) (Value, error) {
				path := "."
				if !argument.IsEmpty() {
					var err error
					path, err = argument.AsString()
					if err != nil {
						return Empty, err
					}
				}
				entries, err := os.ReadDir(path)
				if err != nil {
					return Empty, errMacroFailure(err)
				}
				sort.Slice(entries, func(i, j int) bool {
					return entries[i].Name() < entries[j].Name()
				})
				table := NewTable([]string{"name", "size", "is_directory", "modified"})
				for _, entry := range entries {
					info, err := entry.Info()
					if err != nil {
						return Empty, errMacroFailure(err)
					}
					row := []Value{
						Str(entry.Name()),
						Int(info.Size()),
						Bool(entry.IsDir()),
						TimeVal(NewTime(info.ModTime())),
					}
					if err := table.Insert(row); err != nil {
						return Empty, err
					}
				}
				return TableVal(table), nil
			},
		},
		macroFunc{
			identifier:  "make_dir",
			description: "Create a directory and any missing parents.",
			run: func(argument Value) (Value, error) {
				path, err := argument.AsString()
				if err != nil {
					return Empty, err
				}
				if err := os.MkdirAll(path, 0o755); err != nil {
					return Empty, errMacroFailure(err)
				}
				return Empty, nil
			},
		},
		macroFunc{
			identifier:  "remove",
			description: "Remove a file or directory.",
			run: func(argument Value) (Value, error) {
				path, err := argument.AsString()
				if err != nil {
					return Empty, err
				}
				if err := os.RemoveAll(path); err != nil {
					return Empty, errMacroFailure(err)
				}
				return Empty, nil
			},
		},
		macroFunc{
			identifier:  "move",
			description: "Move a file or directory to a new path.",
			run: func(argument Value) (Value, error) {
				pair, err := argument.AsFixedLenList(2)
				if err != nil {
					return Empty, err
				}
				source, err := pair[0].AsString()
				if err != nil {
					return Empty, err
				}
				target, err := pair[1].AsString()
				if err != nil {
					return Empty, err
				}
				if err := os.Rename(source, target); err != nil {
					return Empty, errMacroFailure(err)
				}
				return Empty, nil
			},
		},
		macroFunc{
			identifier:  "copy",
			description: "Copy a file to a new path.",
			run: func(argument Value) (Value, error) {
				pair, err := argument.AsFixedLenList(2)
				if err != nil {
					return Empty, err
				}
				source, err := pair[0].AsString()
				if err != nil {
					return Empty, err
				}
				target, err := pair[1].AsString()
				if err != nil {
					return Empty, err
				}
				contents, err := os.ReadFile(source)
				if err != nil {
					return Empty, errMacroFailure(err)
				}
				if err := os.WriteFile(target, contents, 0o644); err != nil {
					return Empty, errMacroFailure(err)
				}
				return Empty, nil
			},
		},
		macroFunc{
			identifier:  "metadata",
			description: "Return a map of size, kind and modification time for a path.",
			run: func(argument Value) (Value, error) {
				path, err := argument.AsString()
				if err != nil {
					return Empty, err
				}
				info, err := os.Stat(path)
				if err != nil {
					return Empty, errMacroFailure(err)
				}
				metadata := NewVariableMap()
				metadata.SetValue("name", Str(filepath.Base(path)))
				metadata.SetValue("size", Int(info.Size()))
				metadata.SetValue("is_directory", Bool(info.IsDir()))
				metadata.SetValue("modified", TimeVal(NewTime(info.ModTime())))
				return MapVal(metadata), nil
			},
		},
		macroFunc{
			identifier:  "file_exists",
			description: "Report whether a path exists.",
			run: func(argument Value) (Value, error) {
				path, err := argument.AsString()
				if err != nil {
					return Empty, err
				}
				_, statErr := os.Stat(path)
				return Bool(statErr == nil), nil
			},
		},
		macroFunc{
			identifier:  "watch",
			description: "Block until a file is modified.",
			run: func(argument Value) (Value, error) {
				path, err := argument.AsString()
				if err != nil {
					return Empty, err
				}
				info, err := os.Stat(path)
				if err != nil {
					return Empty, errMacroFailure(err)
				}
				initial := info.ModTime()
				for {
					time.Sleep(100 * time.Millisecond)
					current, err := os.Stat(path)
					if err != nil {
						return Empty, errMacroFailure(err)
					}
					if current.ModTime().After(initial) {
						return Empty, nil
					}
				}
			},
		},
	}
}
