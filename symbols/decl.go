// Package symbols holds the process-lifetime declaration tables: predicate
// declarations, function declarations and variable declarations. Formula and
// term nodes in package ast never own a declaration — they hold a pointer
// into one of these tables, and pointers are shared by reference exactly as
// long as any formula refers to them.
package symbols

import "fmt"

// Visibility controls whether a predicate survives hidden-predicate
// elimination (C8).
type Visibility int

const (
	// Default defers to the context's default predicate visibility.
	Default Visibility = iota
	// Visible predicates are kept in the final theory.
	Visible
	// Hidden predicates are inlined away wherever possible.
	Hidden
)

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Hidden:
		return "hidden"
	default:
		return "default"
	}
}

// PredicateDeclaration is allocated once per (name, arity) pair and shared
// by every Predicate term that refers to it.
type PredicateDeclaration struct {
	Name       string
	Arity      int
	Domains    []Sort // parameter sorts, len == Arity once known; entries may be Unknown
	Visibility Visibility
	IsUsed     bool // appears in at least one rule head or body
	IsExternal bool // declared #external: never completed, never eliminated
}

// Signature returns the "name/arity" textual signature used in messages and
// in the human-readable emit format.
func (p *PredicateDeclaration) Signature() string {
	return fmt.Sprintf("%s/%d", p.Name, p.Arity)
}

func (p *PredicateDeclaration) String() string { return p.Signature() }

// FunctionDeclaration is allocated once per (name, arity) pair for symbolic
// function applications (0-ary functions are constants).
type FunctionDeclaration struct {
	Name   string
	Arity  int
	Domain Sort // return domain
}

// Signature mirrors PredicateDeclaration.Signature.
func (f *FunctionDeclaration) Signature() string {
	return fmt.Sprintf("%s/%d", f.Name, f.Arity)
}

func (f *FunctionDeclaration) String() string { return f.Signature() }

// VariableKind records why a VariableDeclaration was created, mirroring the
// provenance distinctions the rule translator needs (§3, §4.3).
type VariableKind int

const (
	// UserDefined variables come directly from the source rule.
	UserDefined VariableKind = iota
	// Head variables are the fresh v1..vn introduced for a head atom's arguments.
	Head
	// Body variables are auxiliary variables introduced by choose-value-in-term
	// (u_i, i, j, q, r, k, z').
	Body
	// Input marks variables replayed from a scope into another context; no
	// pass in this module creates them.
	Input
)

func (k VariableKind) String() string {
	switch k {
	case Head:
		return "head"
	case Body:
		return "body"
	case Input:
		return "input"
	default:
		return "user-defined"
	}
}

// Sort is the declared or inferred domain of a variable or predicate parameter.
type Sort int

const (
	// Unknown means no sort has been determined yet.
	Unknown Sort = iota
	// Program is the "general term" sort (the GLOSSARY/spec calls it "General").
	Program
	// Integer is the sort of values proven (by C7) to only ever be integers.
	Integer
	// Symbolic is the sort of non-integer symbolic/string/special values.
	Symbolic
	// Union is the single-sort target of domain unification (C9).
	Union
)

func (s Sort) String() string {
	switch s {
	case Program:
		return "program"
	case Integer:
		return "integer"
	case Symbolic:
		return "symbolic"
	case Union:
		return "union"
	default:
		return "unknown"
	}
}

// VariableDeclaration is created once per variable occurrence site: the rule
// translator creates one per free/head/body-auxiliary variable, and every
// Exists/ForAll constructor creates one per bound variable. A Variable term
// is a non-owning reference to one of these; see ast.Variable.
type VariableDeclaration struct {
	Kind        VariableKind
	DisplayName string // name as it should be printed; "_" for anonymous
	Sort        Sort
}

// NewVariableDeclaration allocates a fresh declaration. Declarations are
// never interned/deduplicated: distinct occurrences that happen to share a
// display name are still distinct declarations, by design (§3 "Each
// VariableDeclaration exists once").
func NewVariableDeclaration(kind VariableKind, displayName string, sort Sort) *VariableDeclaration {
	return &VariableDeclaration{Kind: kind, DisplayName: displayName, Sort: sort}
}

// Clone allocates a fresh declaration with the same kind/name/sort, used by
// prepare_copy (§4.1) to rebind bound variables without aliasing.
func (v *VariableDeclaration) Clone() *VariableDeclaration {
	return &VariableDeclaration{Kind: v.Kind, DisplayName: v.DisplayName, Sort: v.Sort}
}

func (v *VariableDeclaration) String() string { return v.DisplayName }
