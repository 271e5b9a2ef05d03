// Package tclenv implements the interpreter's chained variable scopes.
// Scoping is flat: Lookup only searches the current frame, never a
// parent — a procedure cannot see its caller's variables. The parent
// link exists purely for teardown bookkeeping, not lookup
// fall-through.
package tclenv

import "github.com/cwbudde/minitcl/internal/value"

// Variable is a (name, value) pair owned by exactly one Env.
type Variable struct {
	Name  string
	Value value.Value
}

// Env is one frame in the environment chain.
type Env struct {
	parent *Env
	vars   []*Variable
}

// New allocates a fresh Env whose parent link is recorded only for
// Free to walk back to — not consulted by Lookup.
func New(parent *Env) *Env {
	return &Env{parent: parent}
}

// Lookup searches only this frame for a variable named name.
func (e *Env) Lookup(name string) (*Variable, bool) {
	for _, v := range e.vars {
		if v.Name == name {
			return v, true
		}
	}
	return nil, false
}

// Var returns the variable named name in this frame, creating it with
// an empty value if it does not already exist (the env_var operation).
func (e *Env) Var(name string) *Variable {
	if v, ok := e.Lookup(name); ok {
		return v
	}
	v := &Variable{Name: name, Value: value.Empty}
	e.vars = append(e.vars, v)
	return v
}

// Free releases this frame's variables and returns the parent link
// (the env_free operation).
func (e *Env) Free() *Env {
	parent := e.parent
	e.vars = nil
	return parent
}
