// value.go
//
// The dynamic value model. A Value is a tagged union: the Tag names the
// variant and Data holds the payload. Values are plain data; assignment into
// a context always stores an independent deep copy, so no two scopes ever
// alias the same list, map or table.
package whale

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ValueTag names a value variant.
type ValueTag int

const (
	TagString ValueTag = iota
	TagFloat
	TagInteger
	TagBoolean
	TagList
	TagMap
	TagTable
	TagFunction
	TagTime
	TagEmpty
)

func (t ValueTag) String() string {
	switch t {
	case TagString:
		return "string"
	case TagFloat:
		return "float"
	case TagInteger:
		return "integer"
	case TagBoolean:
		return "boolean"
	case TagList:
		return "list"
	case TagMap:
		return "map"
	case TagTable:
		return "table"
	case TagFunction:
		return "function"
	case TagTime:
		return "time"
	case TagEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Value is one dynamically typed value. The payload in Data depends on Tag:
// string, float64, int64, bool, []Value, *VariableMap, *Table, Function or
// TimeValue. Empty carries no payload.
type Value struct {
	Tag  ValueTag
	Data any
}

// Empty is the unit value produced by assignments, empty parentheses and
// macros that exist only for their side effects.
var Empty = Value{Tag: TagEmpty}

func Str(s string) Value          { return Value{Tag: TagString, Data: s} }
func Float(f float64) Value       { return Value{Tag: TagFloat, Data: f} }
func Int(n int64) Value           { return Value{Tag: TagInteger, Data: n} }
func Bool(b bool) Value           { return Value{Tag: TagBoolean, Data: b} }
func List(items []Value) Value    { return Value{Tag: TagList, Data: items} }
func MapVal(m *VariableMap) Value { return Value{Tag: TagMap, Data: m} }
func TableVal(t *Table) Value     { return Value{Tag: TagTable, Data: t} }
func FunctionVal(f Function) Value {
	return Value{Tag: TagFunction, Data: f}
}
func TimeVal(t TimeValue) Value { return Value{Tag: TagTime, Data: t} }

func (v Value) IsEmpty() bool   { return v.Tag == TagEmpty }
func (v Value) IsString() bool  { return v.Tag == TagString }
func (v Value) IsInt() bool     { return v.Tag == TagInteger }
func (v Value) IsFloat() bool   { return v.Tag == TagFloat }
func (v Value) IsNumber() bool  { return v.Tag == TagInteger || v.Tag == TagFloat }
func (v Value) IsBoolean() bool { return v.Tag == TagBoolean }
func (v Value) IsList() bool    { return v.Tag == TagList }
func (v Value) IsMap() bool     { return v.Tag == TagMap }
func (v Value) IsTable() bool   { return v.Tag == TagTable }

// AsString returns the payload of a string value.
func (v Value) AsString() (string, error) {
	if v.Tag != TagString {
		return "", errExpected(ExpectedString, v)
	}
	return v.Data.(string), nil
}

func (v Value) AsInt() (int64, error) {
	if v.Tag != TagInteger {
		return 0, errExpected(ExpectedInt, v)
	}
	return v.Data.(int64), nil
}

func (v Value) AsFloat() (float64, error) {
	if v.Tag != TagFloat {
		return 0, errExpected(ExpectedFloat, v)
	}
	return v.Data.(float64), nil
}

// AsNumber widens an integer or float payload to float64.
func (v Value) AsNumber() (float64, error) {
	switch v.Tag {
	case TagInteger:
		return float64(v.Data.(int64)), nil
	case TagFloat:
		return v.Data.(float64), nil
	default:
		return 0, errExpected(ExpectedNumber, v)
	}
}

func (v Value) AsBoolean() (bool, error) {
	if v.Tag != TagBoolean {
		return false, errExpected(ExpectedBoolean, v)
	}
	return v.Data.(bool), nil
}

func (v Value) AsList() ([]Value, error) {
	if v.Tag != TagList {
		return nil, errExpected(ExpectedList, v)
	}
	return v.Data.([]Value), nil
}

// AsFixedLenList returns a list payload of exactly the given length.
func (v Value) AsFixedLenList(length int) ([]Value, error) {
	items, err := v.AsList()
	if err != nil {
		return nil, err
	}
	if len(items) != length {
		return nil, errExpectedFixedLenList(length, v)
	}
	return items, nil
}

func (v Value) AsMap() (*VariableMap, error) {
	if v.Tag != TagMap {
		return nil, errExpected(ExpectedMap, v)
	}
	return v.Data.(*VariableMap), nil
}

func (v Value) AsTable() (*Table, error) {
	if v.Tag != TagTable {
		return nil, errExpected(ExpectedTable, v)
	}
	return v.Data.(*Table), nil
}

func (v Value) AsFunction() (Function, error) {
	if v.Tag != TagFunction {
		return Function{}, errExpected(ExpectedFunction, v)
	}
	return v.Data.(Function), nil
}

func (v Value) AsTime() (TimeValue, error) {
	if v.Tag != TagTime {
		return TimeValue{}, errExpected(ExpectedTime, v)
	}
	return v.Data.(TimeValue), nil
}

// Clone returns a deep copy. Scalars share immutable payloads; lists, maps
// and tables are copied element by element.
func (v Value) Clone() Value {
	switch v.Tag {
	case TagList:
		items := v.Data.([]Value)
		copied := make([]Value, len(items))
		for i, item := range items {
			copied[i] = item.Clone()
		}
		return List(copied)
	case TagMap:
		return MapVal(v.Data.(*VariableMap).Clone())
	case TagTable:
		return TableVal(v.Data.(*Table).Clone())
	default:
		return v
	}
}

// rank orders the variants for cross-variant comparison. A value of a
// higher-ranked variant is greater than any value of a lower-ranked one.
func (v Value) rank() int {
	switch v.Tag {
	case TagString:
		return 9
	case TagInteger:
		return 8
	case TagBoolean:
		return 7
	case TagFloat:
		return 6
	case TagList:
		return 5
	case TagMap:
		return 4
	case TagTable:
		return 3
	case TagFunction:
		return 2
	case TagTime:
		return 1
	default:
		return 0
	}
}

// Compare imposes a total order: same-variant values compare by payload,
// different variants compare by rank. The result is -1, 0 or 1.
func (v Value) Compare(other Value) int {
	if v.Tag != other.Tag {
		return compareOrdered(v.rank(), other.rank())
	}
	switch v.Tag {
	case TagString:
		return strings.Compare(v.Data.(string), other.Data.(string))
	case TagInteger:
		return compareOrdered(v.Data.(int64), other.Data.(int64))
	case TagFloat:
		return compareOrdered(v.Data.(float64), other.Data.(float64))
	case TagBoolean:
		a, b := v.Data.(bool), other.Data.(bool)
		if a == b {
			return 0
		}
		if !a {
			return -1
		}
		return 1
	case TagList:
		return compareLists(v.Data.([]Value), other.Data.([]Value))
	case TagMap:
		return v.Data.(*VariableMap).compare(other.Data.(*VariableMap))
	case TagTable:
		return v.Data.(*Table).compare(other.Data.(*Table))
	case TagFunction:
		return strings.Compare(v.Data.(Function).Body(), other.Data.(Function).Body())
	case TagTime:
		return v.Data.(TimeValue).compare(other.Data.(TimeValue))
	default:
		return 0
	}
}

// Equal reports structural equality across all variants.
func (v Value) Equal(other Value) bool { return v.Compare(other) == 0 }

func compareOrdered[T int | int64 | float64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareLists(a, b []Value) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	return compareOrdered(len(a), len(b))
}

// String renders the value as source text. Scalar and list renderings parse
// back to an equal value; maps and tables render as grids for display.
func (v Value) String() string {
	switch v.Tag {
	case TagString:
		return strconv.Quote(v.Data.(string))
	case TagFloat:
		return formatFloat(v.Data.(float64))
	case TagInteger:
		return strconv.FormatInt(v.Data.(int64), 10)
	case TagBoolean:
		return strconv.FormatBool(v.Data.(bool))
	case TagList:
		items := v.Data.([]Value)
		parts := make([]string, len(items))
		for i, item := range items {
			parts[i] = item.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case TagMap:
		return v.Data.(*VariableMap).String()
	case TagTable:
		return v.Data.(*Table).String()
	case TagFunction:
		return v.Data.(Function).String()
	case TagTime:
		return v.Data.(TimeValue).String()
	case TagEmpty:
		return "()"
	default:
		return fmt.Sprintf("invalid value %v", v.Data)
	}
}

// formatFloat keeps a decimal point or exponent in the output so the text
// reads back as a float rather than an integer.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eENI") {
		s += ".0"
	}
	return s
}

// fromAny converts a decoded JSON or YAML document into a Value.
func fromAny(data any) (Value, error) {
	switch d := data.(type) {
	case nil:
		return Empty, nil
	case bool:
		return Bool(d), nil
	case string:
		return Str(d), nil
	case int:
		return Int(int64(d)), nil
	case int64:
		return Int(d), nil
	case float64:
		return Float(d), nil
	case json.Number:
		if n, err := strconv.ParseInt(d.String(), 10, 64); err == nil {
			return Int(n), nil
		}
		f, err := d.Float64()
		if err != nil {
			return Empty, errMacroFailure(err)
		}
		return Float(f), nil
	case []any:
		items := make([]Value, len(d))
		for i, item := range d {
			v, err := fromAny(item)
			if err != nil {
				return Empty, err
			}
			items[i] = v
		}
		return List(items), nil
	case map[string]any:
		m := NewVariableMap()
		for key, item := range d {
			v, err := fromAny(item)
			if err != nil {
				return Empty, err
			}
			// A dot in a document key is part of the key, not a path.
			m.setLocal(key, v)
		}
		return MapVal(m), nil
	default:
		return Empty, errCustom(fmt.Sprintf("cannot convert %T into a value", data))
	}
}

// toAny converts a Value into the plain Go shape the JSON and YAML encoders
// expect.
func toAny(v Value) any {
	switch v.Tag {
	case TagString:
		return v.Data.(string)
	case TagFloat:
		return v.Data.(float64)
	case TagInteger:
		return v.Data.(int64)
	case TagBoolean:
		return v.Data.(bool)
	case TagList:
		items := v.Data.([]Value)
		out := make([]any, len(items))
		for i, item := range items {
			out[i] = toAny(item)
		}
		return out
	case TagMap:
		m := v.Data.(*VariableMap)
		out := make(map[string]any, m.Len())
		for key, value := range m.variables {
			out[key] = toAny(value)
		}
		return out
	case TagTable:
		t := v.Data.(*Table)
		rows := make([]any, 0, len(t.Rows()))
		for _, row := range t.Rows() {
			entry := make(map[string]any, len(t.ColumnNames()))
			for i, name := range t.ColumnNames() {
				entry[name] = toAny(row[i])
			}
			rows = append(rows, entry)
		}
		return rows
	case TagFunction:
		return v.Data.(Function).Body()
	case TagTime:
		return v.Data.(TimeValue).UTC()
	default:
		return nil
	}
}
