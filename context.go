// context.go
//
// VariableMap is both the interpreter's variable context and the language's
// map value. Keys iterate in sorted order. Dotted identifiers address nested
// maps, creating intermediate maps on write; colon chains dispatch calls
// through the map, so "list:count" calls count on the value bound to list.
package whale

import (
	"sort"
	"strings"
)

// VariableMap is an ordered map of identifiers to values. Every map carries
// the macro set its calls dispatch through.
type VariableMap struct {
	macros    *MacroSet
	variables map[string]Value
}

// NewVariableMap creates an empty map dispatching to the standard macros.
func NewVariableMap() *VariableMap {
	return NewVariableMapWithMacros(Builtins())
}

// NewVariableMapWithMacros creates an empty map dispatching to the given
// macro set.
func NewVariableMapWithMacros(macros *MacroSet) *VariableMap {
	return &VariableMap{macros: macros, variables: make(map[string]Value)}
}

// Macros returns the macro set this map dispatches through.
func (m *VariableMap) Macros() *MacroSet { return m.macros }

// Len returns the number of top-level bindings.
func (m *VariableMap) Len() int { return len(m.variables) }

// Keys returns the top-level identifiers in sorted order.
func (m *VariableMap) Keys() []string {
	keys := make([]string, 0, len(m.variables))
	for key := range m.variables {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// GetValue resolves an identifier, following dots into nested maps. The
// second result reports whether the identifier was bound; resolving through
// a non-map intermediate is an error.
func (m *VariableMap) GetValue(identifier string) (Value, bool, error) {
	head, rest, nested := strings.Cut(identifier, ".")
	value, found := m.variables[head]
	if !found {
		return Empty, false, nil
	}
	if !nested {
		return value.Clone(), true, nil
	}
	inner, err := value.AsMap()
	if err != nil {
		return Empty, false, err
	}
	return inner.GetValue(rest)
}

// SetValue binds an identifier, following dots into nested maps and
// creating intermediate maps as needed. Writing through a non-map
// intermediate is an error.
func (m *VariableMap) SetValue(identifier string, value Value) error {
	head, rest, nested := strings.Cut(identifier, ".")
	if !nested {
		m.variables[head] = value.Clone()
		return nil
	}
	existing, found := m.variables[head]
	if !found {
		inner := NewVariableMapWithMacros(m.macros)
		if err := inner.SetValue(rest, value); err != nil {
			return err
		}
		m.variables[head] = MapVal(inner)
		return nil
	}
	inner, err := existing.AsMap()
	if err != nil {
		return err
	}
	return inner.SetValue(rest, value)
}

// setLocal binds an identifier verbatim, without dotted path splitting, so
// decoded document keys keep any dots they contain.
func (m *VariableMap) setLocal(identifier string, value Value) {
	m.variables[identifier] = value.Clone()
}

// RemoveValue drops a top-level binding.
func (m *VariableMap) RemoveValue(identifier string) {
	delete(m.variables, identifier)
}

// CallFunction dispatches a call. Resolution order: the macro set, then a
// local Function binding, then a colon chain, whose left side resolves to a
// value that is fed into the call named on the right. Anything else is a
// strict lookup failure.
func (m *VariableMap) CallFunction(identifier string, argument Value) (Value, error) {
	if macro, found := m.macros.Lookup(identifier); found {
		return macro.Run(argument)
	}

	if value, found := m.variables[identifier]; found {
		function, err := value.AsFunction()
		if err != nil {
			return Empty, err
		}
		return function.Call(argument, m)
	}

	if split := strings.LastIndex(identifier, ":"); split > 0 {
		variableIdentifier := strings.TrimRight(identifier[:split], ":")
		functionIdentifier := identifier[split+1:]
		value, found, err := m.GetValue(variableIdentifier)
		if err != nil {
			return Empty, err
		}
		if found {
			if !argument.IsEmpty() {
				value = List([]Value{value, argument})
			}
			return m.CallFunction(functionIdentifier, value)
		}
	}

	return Empty, errFunctionNotFound(identifier)
}

// Clone returns a deep copy sharing the macro set.
func (m *VariableMap) Clone() *VariableMap {
	copied := NewVariableMapWithMacros(m.macros)
	for key, value := range m.variables {
		copied.variables[key] = value.Clone()
	}
	return copied
}

// compare orders maps by their sorted key-value pairs.
func (m *VariableMap) compare(other *VariableMap) int {
	keys, otherKeys := m.Keys(), other.Keys()
	for i := 0; i < len(keys) && i < len(otherKeys); i++ {
		if c := strings.Compare(keys[i], otherKeys[i]); c != 0 {
			return c
		}
		if c := m.variables[keys[i]].Compare(other.variables[otherKeys[i]]); c != 0 {
			return c
		}
	}
	return compareOrdered(len(keys), len(otherKeys))
}

// String renders the bindings as "key = value" lines in key order.
func (m *VariableMap) String() string {
	var builder strings.Builder
	for i, key := range m.Keys() {
		if i > 0 {
			builder.WriteByte('\n')
		}
		builder.WriteString(key)
		builder.WriteString(" = ")
		builder.WriteString(m.variables[key].String())
	}
	return builder.String()
}
