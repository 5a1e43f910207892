// builtin_collections.go
//
// Macros for lists, maps and tables.
package whale

import "sort"

func collectionsMacros() []Macro {
	return []Macro{
		macroFunc{
			identifier:  "count",
			description: "Return the number of items in a collection.",
			run: func(argument Value) (Value, error) {
				switch argument.Tag {
				case TagString:
					return Int(int64(len(argument.Data.(string)))), nil
				case TagList:
					return Int(int64(len(argument.Data.([]Value)))), nil
				case TagMap:
					return Int(int64(argument.Data.(*VariableMap).Len())), nil
				case TagTable:
					return Int(int64(argument.Data.(*Table).Len())), nil
				default:
					return Empty, errExpected(ExpectedList, argument)
				}
			},
		},
		macroFunc{
			identifier:  "first",
			description: "Return the first item of a list.",
			run: func(argument Value) (Value, error) {
				items, err := argument.AsList()
				if err != nil {
					return Empty, err
				}
				if len(items) == 0 {
					return Empty, errCustom("cannot take the first item of an empty list")
				}
				return items[0], nil
			},
		},
		macroFunc{
			identifier:  "last",
			description: "Return the last item of a list.",
			run: func(argument Value) (Value, error) {
				items, err := argument.AsList()
				if err != nil {
					return Empty, err
				}
				if len(items) == 0 {
					return Empty, errCustom("cannot take the last item of an empty list")
				}
				return items[len(items)-1], nil
			},
		},
		macroFunc{
			identifier:  "get",
			description: "Return the item of a list or the row of a table at an index.",
			run: func(argument Value) (Value, error) {
				pair, err := argument.AsFixedLenList(2)
				if err != nil {
					return Empty, err
				}
				index, err := pair[1].AsInt()
				if err != nil {
					return Empty, err
				}
				if table, tableErr := pair[0].AsTable(); tableErr == nil {
					if index < 0 || index >= int64(table.Len()) {
						return Empty, errCustom("index out of bounds")
					}
					return List(cloneRow(table.Rows()[index])), nil
				}
				items, err := pair[0].AsList()
				if err != nil {
					return Empty, err
				}
				if index < 0 || index >= int64(len(items)) {
					return Empty, errCustom("index out of bounds")
				}
				return items[index], nil
			},
		},
		macroFunc{
			identifier:  "sort",
			description: "Return a sorted copy of a list or table.",
			run: func(argument Value) (Value, error) {
				if table, err := argument.AsTable(); err == nil {
					sorted := table.Clone()
					sorted.Sort()
					return TableVal(sorted), nil
				}
				items, err := argument.AsList()
				if err != nil {
					return Empty, err
				}
				sorted := make([]Value, len(items))
				copy(sorted, items)
				sort.SliceStable(sorted, func(i, j int) bool {
					return sorted[i].Compare(sorted[j]) < 0
				})
				return List(sorted), nil
			},
		},
		macroFunc{
			identifier:  "reverse",
			description: "Return a reversed copy of a list.",
			run: func(argument Value) (Value, error) {
				items, err := argument.AsList()
				if err != nil {
					return Empty, err
				}
				reversed := make([]Value, len(items))
				for i, item := range items {
					reversed[len(items)-1-i] = item
				}
				return List(reversed), nil
			},
		},
		macroFunc{
			identifier:  "transform",
			description: "Apply a function to every item of a list.",
			run: func(argument Value) (Value, error) {
				pair, err := argument.AsFixedLenList(2)
				if err != nil {
					return Empty, err
				}
				items, err := pair[0].AsList()
				if err != nil {
					return Empty, err
				}
				function, err := pair[1].AsFunction()
				if err != nil {
					return Empty, err
				}
				results := make([]Value, len(items))
				for i, item := range items {
					result, err := function.Run(item)
					if err != nil {
						return Empty, err
					}
					results[i] = result
				}
				return List(results), nil
			},
		},
		macroFunc{
			identifier:  "where",
			description: "Keep the list items a function accepts, or the table rows matching a column value.",
			run: func(argument Value) (Value, error) {
				items, err := argument.AsList()
				if err != nil {
					return Empty, err
				}
				if len(items) == 3 {
					table, err := items[0].AsTable()
					if err != nil {
						return Empty, err
					}
					columnName, err := items[1].AsString()
					if err != nil {
						return Empty, err
					}
					filtered, err := table.Where(columnName, items[2])
					if err != nil {
						return Empty, err
					}
					return TableVal(filtered), nil
				}
				if len(items) != 2 {
					return Empty, errExpectedFixedLenList(2, argument)
				}
				source, err := items[0].AsList()
				if err != nil {
					return Empty, err
				}
				function, err := items[1].AsFunction()
				if err != nil {
					return Empty, err
				}
				var kept []Value
				for _, item := range source {
					result, err := function.Run(item)
					if err != nil {
						return Empty, err
					}
					accepted, err := result.AsBoolean()
					if err != nil {
						return Empty, err
					}
					if accepted {
						kept = append(kept, item)
					}
				}
				return List(kept), nil
			},
		},
		macroFunc{
			identifier:  "select",
			description: "Project a table onto the named columns.",
			run: func(argument Value) (Value, error) {
				items, err := argument.AsList()
				if err != nil {
					return Empty, err
				}
				if len(items) < 2 {
					return Empty, errExpectedFixedLenList(2, argument)
				}
				table, err := items[0].AsTable()
				if err != nil {
					return Empty, err
				}
				columnNames := make([]string, len(items)-1)
				for i, item := range items[1:] {
					name, err := item.AsString()
					if err != nil {
						return Empty, err
					}
					columnNames[i] = name
				}
				selected, err := table.Select(columnNames)
				if err != nil {
					return Empty, err
				}
				return TableVal(selected), nil
			},
		},
		macroFunc{
			identifier:  "create_table",
			description: "Build a table from a list of column names and row lists.",
			run: func(argument Value) (Value, error) {
				items, err := argument.AsList()
				if err != nil {
					return Empty, err
				}
				if len(items) == 0 {
					return Empty, errExpectedFixedLenList(1, argument)
				}
				header, err := items[0].AsList()
				if err != nil {
					return Empty, err
				}
				columnNames := make([]string, len(header))
				for i, cell := range header {
					name, err := cell.AsString()
					if err != nil {
						return Empty, err
					}
					columnNames[i] = name
				}
				table := NewTable(columnNames)
				for _, item := range items[1:] {
					row, err := item.AsList()
					if err != nil {
						return Empty, err
					}
					if err := table.Insert(cloneRow(row)); err != nil {
						return Empty, err
					}
				}
				return TableVal(table), nil
			},
		},
		macroFunc{
			identifier:  "insert",
			description: "Return a copy of a table with rows appended.",
			run: func(argument Value) (Value, error) {
				items, err := argument.AsList()
				if err != nil {
					return Empty, err
				}
				if len(items) < 2 {
					return Empty, errExpectedFixedLenList(2, argument)
				}
				table, err := items[0].AsTable()
				if err != nil {
					return Empty, err
				}
				extended := table.Clone()
				for _, item := range items[1:] {
					row, err := item.AsList()
					if err != nil {
						return Empty, err
					}
					if err := extended.Insert(cloneRow(row)); err != nil {
						return Empty, err
					}
				}
				return TableVal(extended), nil
			},
		},
		macroFunc{
			identifier:  "columns",
			description: "Return the column names of a table.",
			run: func(argument Value) (Value, error) {
				table, err := argument.AsTable()
				if err != nil {
					return Empty, err
				}
				names := make([]Value, len(table.ColumnNames()))
				for i, name := range table.ColumnNames() {
					names[i] = Str(name)
				}
				return List(names), nil
			},
		},
		macroFunc{
			identifier:  "rows",
			description: "Return the rows of a table as a list of lists.",
			run: func(argument Value) (Value, error) {
				table, err := argument.AsTable()
				if err != nil {
					return Empty, err
				}
				rows := make([]Value, table.Len())
				for i, row := range table.Rows() {
					rows[i] = List(cloneRow(row))
				}
				return List(rows), nil
			},
		},
		macroFunc{
			identifier:  "function",
			description: "Wrap source text into a callable function value.",
			run: func(argument Value) (Value, error) {
				body, err := argument.AsString()
				if err != nil {
					return Empty, err
				}
				return FunctionVal(NewFunction(body)), nil
			},
		},
	}
}
