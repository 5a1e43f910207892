// macro.go
//
// The macro registry. A macro is a named builtin callable; contexts own an
// ordered set of them and dispatch calls through it, so tests and embedders
// can swap the set without touching any global state.
package whale

// MacroInfo describes a macro for help listings and completion.
type MacroInfo struct {
	Identifier  string
	Description string
}

// Macro is one builtin callable. Run takes the single evaluated argument,
// which is Empty for calls like "now()".
type Macro interface {
	Info() MacroInfo
	Run(argument Value) (Value, error)
}

// MacroSet is an ordered, name-indexed collection of macros.
type MacroSet struct {
	ordered []Macro
	byName  map[string]Macro
}

// NewMacroSet collects macros into a set. Later macros shadow earlier ones
// with the same identifier.
func NewMacroSet(macros ...Macro) *MacroSet {
	set := &MacroSet{byName: make(map[string]Macro, len(macros))}
	for _, macro := range macros {
		set.Add(macro)
	}
	return set
}

// Add registers a macro, replacing any previous one with the same
// identifier.
func (s *MacroSet) Add(macro Macro) {
	identifier := macro.Info().Identifier
	if _, exists := s.byName[identifier]; !exists {
		s.ordered = append(s.ordered, macro)
	} else {
		for i, existing := range s.ordered {
			if existing.Info().Identifier == identifier {
				s.ordered[i] = macro
				break
			}
		}
	}
	s.byName[identifier] = macro
}

// Lookup finds a macro by identifier.
func (s *MacroSet) Lookup(identifier string) (Macro, bool) {
	macro, found := s.byName[identifier]
	return macro, found
}

// List returns the macros in registration order.
func (s *MacroSet) List() []Macro {
	return append([]Macro(nil), s.ordered...)
}

// macroFunc adapts a function to the Macro interface; the builtin catalog
// is built from these.
type macroFunc struct {
	identifier  string
	description string
	run         func(argument Value) (Value, error)
}

func (m macroFunc) Info() MacroInfo { return MacroInfo{m.identifier, m.description} }

func (m macroFunc) Run(argument Value) (Value, error) { return m.run(argument) }

// Builtins returns the standard macro set.
func Builtins() *MacroSet {
	var all []Macro
	all = append(all, collectionsMacros()...)
	all = append(all, fsMacros()...)
	all = append(all, commandMacros()...)
	all = append(all, dataMacros()...)
	all = append(all, sqlMacros()...)
	all = append(all, gitMacros()...)
	all = append(all, randomMacros()...)
	all = append(all, timeMacros()...)
	all = append(all, networkMacros()...)
	all = append(all, systemMacros()...)
	all = append(all, concurrencyMacros()...)
	all = append(all, testMacros()...)
	all = append(all, metaMacros()...)
	return NewMacroSet(all...)
}
