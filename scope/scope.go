/*
File    : lux/scope/scope.go
Project : Lux language interpreter
*/

// Package scope implements the evaluator's variable store: a chain of
// lexical scopes, each a map from name to value. Lookup walks from the
// innermost scope outward; declarations always install into the
// innermost scope (shadowing any outer binding of the same name);
// assignment mutates the innermost scope in which the name is already
// bound.
package scope

import "github.com/samjay22/Lux/objects"

// Scope is one frame of the store. Parent points at the enclosing
// scope; nil marks the global (root) scope.
type Scope struct {
	// Variables maps variable names to their current values in this scope
	Variables map[string]objects.LuxObject

	// Parent points to the enclosing scope, forming a scope chain
	Parent *Scope
}

// NewScope creates a scope with the given parent. A nil parent creates
// the global scope.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		Variables: make(map[string]objects.LuxObject),
		Parent:    parent,
	}
}

// LookUp searches for a variable by name in this scope and all parent
// scopes, innermost first. It returns the bound value and whether the
// name was found anywhere on the chain.
func (s *Scope) LookUp(varName string) (objects.LuxObject, bool) {
	obj, ok := s.Variables[varName]
	if !ok && s.Parent != nil {
		return s.Parent.LookUp(varName)
	}
	return obj, ok
}

// Bind installs a binding in this scope only, shadowing any binding of
// the same name in outer scopes. Re-binding an existing name in the
// same scope replaces it.
func (s *Scope) Bind(varName string, obj objects.LuxObject) {
	s.Variables[varName] = obj
}

// Assign updates an existing variable in the innermost scope where it
// is bound. It reports false when the name is bound nowhere on the
// chain; declaring is Bind's job, never Assign's.
func (s *Scope) Assign(varName string, obj objects.LuxObject) bool {
	if _, ok := s.Variables[varName]; ok {
		s.Variables[varName] = obj
		return true
	}
	if s.Parent != nil {
		return s.Parent.Assign(varName, obj)
	}
	return false
}

// Snapshot produces an independent copy of the entire chain for a join
// thread. Every frame is copied and every table value deep-cloned, so
// mutations by the task are not observable to peers or to the parent.
// Pointer cells stay shared: their own mutex mediates access.
func (s *Scope) Snapshot() *Scope {
	if s == nil {
		return nil
	}
	copy := &Scope{
		Variables: make(map[string]objects.LuxObject, len(s.Variables)),
		Parent:    s.Parent.Snapshot(),
	}
	for k, v := range s.Variables {
		copy.Variables[k] = objects.Clone(v)
	}
	return copy
}
