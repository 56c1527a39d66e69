// Package sorts implements integer-variable detection (C7): after
// completion, a fixed-point analysis proves some Unknown-sorted bound
// variables can only ever take integer values, and upgrades their
// symbols.VariableDeclaration.Sort to Integer so that later passes
// (simplifier rule 13, domain unification) can treat them specially.
//
// Grounded directly on spec.md §4.6's algorithm (no original_source file
// implements quite this shape — the original tool's type system is a
// compile-time C++ template hierarchy rather than a runtime fixed point, so
// this package follows the specification text itself rather than a
// upstream source file; see DESIGN.md).
package sorts

import (
	"github.com/potassco/anthem-go/ast"
	"github.com/potassco/anthem-go/symbols"
	"github.com/potassco/anthem-go/visit"
)

// Value is the evaluator's four-valued result.
type Value int

const (
	False Value = iota
	True
	Unknown
	Error
)

// Detect runs integer-variable detection to a fixed point over formulas,
// mutating the Sort field of every bound variable it can prove Integer.
func Detect(formulas []ast.Formula) {
	vars := collectUnknownVars(formulas)
	for {
		changed := false
		for _, v := range vars {
			if v.Sort != symbols.Unknown {
				continue
			}
			if hypothesizeInteger(formulas, v) {
				v.Sort = symbols.Integer
				changed = true
			}
		}
		if propagateFromPredicates(formulas) {
			changed = true
		}
		if !changed {
			return
		}
	}
}

// hypothesizeInteger implements steps 1-3 of §4.6 for one variable: the
// formula set must evaluate to neither Error nor False as is (step 1); if
// hypothesizing v as non-integer (sort Symbolic) then contradicts that (step 2,3),
// v is Integer.
func hypothesizeInteger(formulas []ast.Formula, v *symbols.VariableDeclaration) bool {
	if base := evalAll(formulas); base == Error || base == False {
		return false
	}
	old := v.Sort
	v.Sort = symbols.Symbolic
	hyp := evalAll(formulas)
	v.Sort = old
	return hyp == Error || hyp == False
}

func evalAll(formulas []ast.Formula) Value {
	result := True
	for _, f := range formulas {
		result = andValue(result, eval(f))
		if result == Error {
			return Error
		}
	}
	return result
}

// propagateFromPredicates implements step 4: a variable argument in a
// predicate parameter position known Integer is itself marked Integer.
func propagateFromPredicates(formulas []ast.Formula) bool {
	changed := false
	for _, f := range formulas {
		walkPredicates(f, func(pred *ast.Predicate) {
			for i, arg := range pred.Args {
				if i >= len(pred.Declaration.Domains) || pred.Declaration.Domains[i] != symbols.Integer {
					continue
				}
				if v, ok := arg.(*ast.Variable); ok && v.Declaration.Sort == symbols.Unknown {
					v.Declaration.Sort = symbols.Integer
					changed = true
				}
			}
		})
	}
	return changed
}

func walkPredicates(f ast.Formula, visitP func(*ast.Predicate)) {
	visit.WalkFormula(f, func(n ast.Formula) {
		if p, ok := n.(*ast.Predicate); ok {
			visitP(p)
		}
	}, nil)
}

// collectUnknownVars returns every bound variable declaration, reachable
// from formulas, whose sort is still Unknown. Declarations are deduplicated
// by pointer identity since the same declaration may be referenced by
// several Variable terms.
func collectUnknownVars(formulas []ast.Formula) []*symbols.VariableDeclaration {
	seen := make(map[*symbols.VariableDeclaration]bool)
	var out []*symbols.VariableDeclaration
	var walk func(ast.Formula)
	walk = func(f ast.Formula) {
		switch x := f.(type) {
		case *ast.Exists:
			addUnknown(x.Vars, seen, &out)
			walk(x.Argument)
		case *ast.ForAll:
			addUnknown(x.Vars, seen, &out)
			walk(x.Argument)
		case *ast.Not:
			walk(x.Argument)
		case *ast.And:
			for _, a := range x.Args {
				walk(a)
			}
		case *ast.Or:
			for _, a := range x.Args {
				walk(a)
			}
		case *ast.Implies:
			walk(x.Antecedent)
			walk(x.Consequent)
		case *ast.Biconditional:
			walk(x.Left)
			walk(x.Right)
		}
	}
	for _, f := range formulas {
		walk(f)
	}
	return out
}

func addUnknown(vars []*symbols.VariableDeclaration, seen map[*symbols.VariableDeclaration]bool, out *[]*symbols.VariableDeclaration) {
	for _, v := range vars {
		if v.Sort == symbols.Unknown && !seen[v] {
			seen[v] = true
			*out = append(*out, v)
		}
	}
}

// eval is the conservative three-valued (four-valued, counting Error)
// abstract interpreter of §4.6.
func eval(f ast.Formula) Value {
	switch x := f.(type) {
	case *ast.Boolean:
		if x.Value {
			return True
		}
		return False
	case *ast.Comparison:
		return evalComparison(x)
	case *ast.In:
		return evalIn(x)
	case *ast.Predicate:
		return evalPredicate(x)
	case *ast.Not:
		switch eval(x.Argument) {
		case True:
			return False
		case False:
			return True
		case Error:
			return Error
		default:
			return Unknown
		}
	case *ast.And:
		result := True
		for _, a := range x.Args {
			result = andValue(result, eval(a))
			if result == Error {
				return Error
			}
		}
		return result
	case *ast.Or:
		result := False
		for _, a := range x.Args {
			v := eval(a)
			if v == Error {
				return Error
			}
			result = orValue(result, v)
		}
		return result
	case *ast.Implies:
		ant := eval(x.Antecedent)
		if ant == Error {
			return Error
		}
		cons := eval(x.Consequent)
		if cons == Error {
			return Error
		}
		return orValue(negate(ant), cons)
	case *ast.Biconditional:
		l := eval(x.Left)
		r := eval(x.Right)
		if l == Error || r == Error {
			return Error
		}
		if l == Unknown || r == Unknown {
			return Unknown
		}
		if l == r {
			return True
		}
		return False
	case *ast.Exists:
		return eval(x.Argument)
	case *ast.ForAll:
		return eval(x.Argument)
	default:
		return Unknown
	}
}

func negate(v Value) Value {
	switch v {
	case True:
		return False
	case False:
		return True
	default:
		return v
	}
}

func andValue(a, b Value) Value {
	if a == Error || b == Error {
		return Error
	}
	if a == False || b == False {
		return False
	}
	if a == True && b == True {
		return True
	}
	return Unknown
}

func orValue(a, b Value) Value {
	if a == Error || b == Error {
		return Error
	}
	if a == True || b == True {
		return True
	}
	if a == False && b == False {
		return False
	}
	return Unknown
}

// evalComparison implements §4.6's "a ⊙ b" case: both arithmetic yields
// Unknown (no concrete values to compare); one arithmetic and one symbolic
// yields False for = and True for ≠ (they can never be equal), Unknown
// otherwise.
func evalComparison(c *ast.Comparison) Value {
	la, ra := isArithmetic(c.Left), isArithmetic(c.Right)
	if la == Error || ra == Error {
		return Error
	}
	if la == True && ra == True {
		return Unknown
	}
	if (la == True && ra == False) || (la == False && ra == True) {
		switch c.Op {
		case ast.Equal:
			return False
		case ast.NotEqual:
			return True
		default:
			return Unknown
		}
	}
	return Unknown
}

// evalIn implements §4.6's "In(a,b) with a,b in disjoint domains ⇒ False".
func evalIn(in *ast.In) Value {
	ed, sd := elementDomain(in.Element), setDomain(in.Set)
	if ed == domainUnknown || sd == domainUnknown {
		return Unknown
	}
	if ed != sd {
		return False
	}
	return Unknown
}

func evalPredicate(p *ast.Predicate) Value {
	for i, arg := range p.Args {
		if i >= len(p.Declaration.Domains) || p.Declaration.Domains[i] != symbols.Integer {
			continue
		}
		if isArithmetic(arg) == False {
			return Error
		}
	}
	return Unknown
}

// isArithmetic implements §4.6's isArithmetic(t): a compound operation on
// any non-arithmetic subterm is an Error, per the rule as stated.
func isArithmetic(t ast.Term) Value {
	switch x := t.(type) {
	case *ast.Integer, *ast.SpecialInteger:
		return True
	case *ast.StringTerm, *ast.BooleanTerm:
		return False
	case *ast.Variable:
		switch x.Declaration.Sort {
		case symbols.Integer:
			return True
		case symbols.Symbolic:
			return False
		default:
			return Unknown
		}
	case *ast.Function:
		if len(x.Args) == 0 {
			if x.Declaration.Domain == symbols.Integer {
				return True
			}
			return False
		}
		return Error
	case *ast.BinaryOperation:
		return arithmeticOfAll(x.Left, x.Right)
	case *ast.UnaryOperation:
		return arithmeticOfAll(x.Argument)
	default:
		return Error
	}
}

func arithmeticOfAll(terms ...ast.Term) Value {
	result := True
	for _, t := range terms {
		switch isArithmetic(t) {
		case Error:
			return Error
		case False:
			return Error
		case Unknown:
			result = Unknown
		}
	}
	return result
}

type domain int

const (
	domainUnknown domain = iota
	domainInteger
	domainSymbolic
)

// elementDomain classifies a term appearing on the element side of an In
// for the disjoint-domain test of evalIn.
func elementDomain(t ast.Term) domain {
	switch isArithmetic(t) {
	case True:
		return domainInteger
	case False:
		return domainSymbolic
	default:
		return domainUnknown
	}
}

// setDomain classifies a term appearing on the set side of an In: an
// interval's elements are always integers regardless of the shape of its
// bounds; otherwise it falls back to elementDomain's arithmetic test.
func setDomain(t ast.Term) domain {
	if _, ok := t.(*ast.Interval); ok {
		return domainInteger
	}
	return elementDomain(t)
}
