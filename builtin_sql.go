// builtin_sql.go
//
// SQLite macros. Queries return tables; statements return the number of
// affected rows.
package whale

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

func sqlMacros() []Macro {
	return []Macro{
		macroFunc{
			identifier:  "sql_query",
			description: "Run a query against a SQLite database and return the result as a table.",
			run: func(argument Value) (Value, error) {
				path, query, err := sqlArguments(argument)
				if err != nil {
					return Empty, err
				}
				database, err := sql.Open("sqlite3", path)
				if err != nil {
					return Empty, errMacroFailure(err)
				}
				defer database.Close()

				rows, err := database.Query(query)
				if err != nil {
					return Empty, errMacroFailure(err)
				}
				defer rows.Close()

				columnNames, err := rows.Columns()
				if err != nil {
					return Empty, errMacroFailure(err)
				}
				table := NewTable(columnNames)
				for rows.Next() {
					cells := make([]any, len(columnNames))
					pointers := make([]any, len(columnNames))
					for i := range cells {
						pointers[i] = &cells[i]
					}
					if err := rows.Scan(pointers...); err != nil {
						return Empty, errMacroFailure(err)
					}
					row := make([]Value, len(cells))
					for i, cell := range cells {
						row[i] = fromSQL(cell)
					}
					if err := table.Insert(row); err != nil {
						return Empty, err
					}
				}
				if err := rows.Err(); err != nil {
					return Empty, errMacroFailure(err)
				}
				return TableVal(table), nil
			},
		},
		macroFunc{
			identifier:  "sql_exec",
			description: "Run a statement against a SQLite database and return the affected row count.",
			run: func(argument Value) (Value, error) {
				path, statement, err := sqlArguments(argument)
				if err != nil {
					return Empty, err
				}
				database, err := sql.Open("sqlite3", path)
				if err != nil {
					return Empty, errMacroFailure(err)
				}
				defer database.Close()

				result, err := database.Exec(statement)
				if err != nil {
					return Empty, errMacroFailure(err)
				}
				affected, err := result.RowsAffected()
				if err != nil {
					return Empty, errMacroFailure(err)
				}
				return Int(affected), nil
			},
		},
	}
}

func sqlArguments(argument Value) (path, text string, err error) {
	pair, err := argument.AsFixedLenList(2)
	if err != nil {
		return "", "", err
	}
	path, err = pair[0].AsString()
	if err != nil {
		return "", "", err
	}
	text, err = pair[1].AsString()
	if err != nil {
		return "", "", err
	}
	return path, text, nil
}

func fromSQL(cell any) Value {
	switch c := cell.(type) {
	case nil:
		return Empty
	case int64:
		return Int(c)
	case float64:
		return Float(c)
	case bool:
		return Bool(c)
	case string:
		return Str(c)
	case []byte:
		return Str(string(c))
	case time.Time:
		return TimeVal(NewTime(c))
	default:
		return Empty
	}
}
