package runtime

import (
	"fmt"
	"sort"

	"lox/pkg/token"
)

// UndefinedVariableError is returned by Assign/Get when a name is not
// bound anywhere in the scope chain. It carries the offending token so the
// interpreter can attribute the failure to a source line.
type UndefinedVariableError struct {
	Name token.Token
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'.", e.Name.Lexeme)
}

// Environment provides lexical scoping for the language's runtime values.
// Child environments hold a back-reference to their parent; parents never
// reference their children, so the chain cannot form cycles.
type Environment struct {
	values map[string]Value
	parent *Environment
}

// NewEnvironment creates a new environment, optionally nested under a parent.
// A nil parent marks the root (global) environment.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		values: make(map[string]Value),
		parent: parent,
	}
}

// Parent exposes the lexical parent (nil when global).
func (e *Environment) Parent() *Environment {
	return e.parent
}

// Define inserts or shadows a binding in the current scope. Redefining an
// already-bound name in the same scope is legal and replaces it.
func (e *Environment) Define(name string, value Value) {
	e.values[name] = value
}

// Assign updates an existing binding in the first scope (walking outward)
// where name already exists. It never creates a new binding.
func (e *Environment) Assign(name token.Token, value Value) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.parent != nil {
		return e.parent.Assign(name, value)
	}
	return &UndefinedVariableError{Name: name}
}

// Get retrieves a binding, searching outward through the scope chain.
func (e *Environment) Get(name token.Token) (Value, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.parent != nil {
		return e.parent.Get(name)
	}
	return nil, &UndefinedVariableError{Name: name}
}

// Keys returns the bindings in the local scope, sorted (useful for
// deterministic REPL introspection and tests).
func (e *Environment) Keys() []string {
	keys := make([]string, 0, len(e.values))
	for k := range e.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
