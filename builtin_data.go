// builtin_data.go
//
// Interchange format macros: JSON, YAML, CSV and zstd compression.
package whale

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"
)

func dataMacros() []Macro {
	return []Macro{
		macroFunc{
			identifier:  "from_json",
			description: "Parse a JSON document into a value.",
			run: func(argument Value) (Value, error) {
				text, err := argument.AsString()
				if err != nil {
					return Empty, err
				}
				// UseNumber keeps integral numbers out of float64, so they
				// come back as integers.
				decoder := json.NewDecoder(strings.NewReader(text))
				decoder.UseNumber()
				var document any
				if err := decoder.Decode(&document); err != nil {
					return Empty, errMacroFailure(err)
				}
				if decoder.More() {
					return Empty, errCustom("trailing data after the json document")
				}
				return fromAny(document)
			},
		},
		macroFunc{
			identifier:  "to_json",
			description: "Render a value as a JSON document.",
			run: func(argument Value) (Value, error) {
				encoded, err := json.Marshal(toAny(argument))
				if err != nil {
					return Empty, errMacroFailure(err)
				}
				return Str(string(encoded)), nil
			},
		},
		macroFunc{
			identifier:  "from_yaml",
			description: "Parse a YAML document into a value.",
			run: func(argument Value) (Value, error) {
				text, err := argument.AsString()
				if err != nil {
					return Empty, err
				}
				var document any
				if err := yaml.Unmarshal([]byte(text), &document); err != nil {
					return Empty, errMacroFailure(err)
				}
				return fromAny(normalizeYaml(document))
			},
		},
		macroFunc{
			identifier:  "to_yaml",
			description: "Render a value as a YAML document.",
			run: func(argument Value) (Value, error) {
				encoded, err := yaml.Marshal(toAny(argument))
				if err != nil {
					return Empty, errMacroFailure(err)
				}
				return Str(string(encoded)), nil
			},
		},
		macroFunc{
			identifier:  "from_csv",
			description: "Parse CSV text into a table; the first record names the columns.",
			run: func(argument Value) (Value, error) {
				text, err := argument.AsString()
				if err != nil {
					return Empty, err
				}
				records, err := csv.NewReader(strings.NewReader(text)).ReadAll()
				if err != nil {
					return Empty, errMacroFailure(err)
				}
				if len(records) == 0 {
					return Empty, errCustom("cannot build a table from empty csv text")
				}
				table := NewTable(records[0])
				for _, record := range records[1:] {
					row := make([]Value, len(record))
					for i, cell := range record {
						row[i] = Str(cell)
					}
					if err := table.Insert(row); err != nil {
						return Empty, err
					}
				}
				return TableVal(table), nil
			},
		},
		macroFunc{
			identifier:  "to_csv",
			description: "Render a table as CSV text.",
			run: func(argument Value) (Value, error) {
				table, err := argument.AsTable()
				if err != nil {
					return Empty, err
				}
				var buffer bytes.Buffer
				writer := csv.NewWriter(&buffer)
				if err := writer.Write(table.ColumnNames()); err != nil {
					return Empty, errMacroFailure(err)
				}
				for _, row := range table.Rows() {
					record := make([]string, len(row))
					for i, cell := range row {
						if cell.IsString() {
							record[i] = cell.Data.(string)
						} else {
							record[i] = cell.String()
						}
					}
					if err := writer.Write(record); err != nil {
						return Empty, errMacroFailure(err)
					}
				}
				writer.Flush()
				if err := writer.Error(); err != nil {
					return Empty, errMacroFailure(err)
				}
				return Str(buffer.String()), nil
			},
		},
		macroFunc{
			identifier:  "zstd_compress",
			description: "Compress a string with zstd.",
			run: func(argument Value) (Value, error) {
				text, err := argument.AsString()
				if err != nil {
					return Empty, err
				}
				encoder, err := zstd.NewWriter(nil)
				if err != nil {
					return Empty, errMacroFailure(err)
				}
				defer encoder.Close()
				return Str(string(encoder.EncodeAll([]byte(text), nil))), nil
			},
		},
		macroFunc{
			identifier:  "zstd_decompress",
			description: "Decompress a zstd-compressed string.",
			run: func(argument Value) (Value, error) {
				text, err := argument.AsString()
				if err != nil {
					return Empty, err
				}
				decoder, err := zstd.NewReader(nil)
				if err != nil {
					return Empty, errMacroFailure(err)
				}
				defer decoder.Close()
				decoded, err := decoder.DecodeAll([]byte(text), nil)
				if err != nil {
					return Empty, errMacroFailure(err)
				}
				return Str(string(decoded)), nil
			},
		},
	}
}

// normalizeYaml rewrites the map[any]any shapes the YAML decoder can
// produce into map[string]any.
func normalizeYaml(document any) any {
	switch d := document.(type) {
	case map[any]any:
		normalized := make(map[string]any, len(d))
		for key, value := range d {
			if name, ok := key.(string); ok {
				normalized[name] = normalizeYaml(value)
			}
		}
		return normalized
	case map[string]any:
		for key, value := range d {
			d[key] = normalizeYaml(value)
		}
		return d
	case []any:
		for i, value := range d {
			d[i] = normalizeYaml(value)
		}
		return d
	default:
		return document
	}
}
