// Package domain implements domain unification and domain mapping (C9): the
// two alternative passes that prepare a formula for a single-sorted emit
// target (TPTP's "object" sort in particular, package emit).
//
// Grounded on original_source/include/anthem/translation-common/Integer.h
// and original_source/src/anthem/TranslationCommon.cpp's choice between
// explicit integer injection and integer/symbolic interleaving when
// flattening anthem's two-sorted (integer, symbolic) model into one.
package domain

import (
	"github.com/potassco/anthem-go/ast"
	"github.com/potassco/anthem-go/symbols"
	"github.com/potassco/anthem-go/visit"
)

// Symbols names the uninterpreted function and predicate declarations
// Unify introduces in place of native arithmetic and comparisons, so the
// caller (package emit) can print them and their axioms consistently.
type Symbols struct {
	Integer      *symbols.FunctionDeclaration // integer injection, integer(n)
	Sum          *symbols.FunctionDeclaration
	Difference   *symbols.FunctionDeclaration
	Product      *symbols.FunctionDeclaration
	Quotient     *symbols.FunctionDeclaration
	Remainder    *symbols.FunctionDeclaration
	Power        *symbols.FunctionDeclaration
	Negate       *symbols.FunctionDeclaration
	Less         *symbols.PredicateDeclaration
	LessEqual    *symbols.PredicateDeclaration
	Greater      *symbols.PredicateDeclaration
	GreaterEqual *symbols.PredicateDeclaration
	Equal        *symbols.PredicateDeclaration
	NotEqual     *symbols.PredicateDeclaration
	IsInteger    *symbols.PredicateDeclaration
}

// NewSymbols declares the auxiliary function/predicate symbols in ctx. Call
// once per translation unit before Unify.
func NewSymbols(ctx *symbols.Context) *Symbols {
	s := &Symbols{
		Integer:      ctx.FindOrCreateFunction("f__integer__", 1),
		Sum:          ctx.FindOrCreateFunction("f__sum__", 2),
		Difference:   ctx.FindOrCreateFunction("f__difference__", 2),
		Product:      ctx.FindOrCreateFunction("f__product__", 2),
		Quotient:     ctx.FindOrCreateFunction("f__quotient__", 2),
		Remainder:    ctx.FindOrCreateFunction("f__remainder__", 2),
		Power:        ctx.FindOrCreateFunction("f__power__", 2),
		Negate:       ctx.FindOrCreateFunction("f__negate__", 1),
		Less:         ctx.FindOrCreatePredicate("p__less__", 2),
		LessEqual:    ctx.FindOrCreatePredicate("p__less_equal__", 2),
		Greater:      ctx.FindOrCreatePredicate("p__greater__", 2),
		GreaterEqual: ctx.FindOrCreatePredicate("p__greater_equal__", 2),
		Equal:        ctx.FindOrCreatePredicate("p__equal__", 2),
		NotEqual:     ctx.FindOrCreatePredicate("p__not_equal__", 2),
		IsInteger:    ctx.FindOrCreatePredicate("p__is_integer__", 1),
	}
	for _, fn := range []*symbols.FunctionDeclaration{s.Integer, s.Sum, s.Difference, s.Product, s.Quotient, s.Remainder, s.Power, s.Negate} {
		fn.Domain = symbols.Union
	}
	for _, pred := range []*symbols.PredicateDeclaration{s.Less, s.LessEqual, s.Greater, s.GreaterEqual, s.Equal, s.NotEqual, s.IsInteger} {
		for i := range pred.Domains {
			pred.Domains[i] = symbols.Union
		}
	}
	return s
}

// Unify rewrites f so every variable is of sort Union: integer-valued
// subterms are wrapped in integer(.), arithmetic operators and comparisons
// become applications of the uninterpreted symbols s declares, and every
// quantifier over a variable whose source sort was Integer gains an
// is_integer(.) guard (§4.8).
func (s *Symbols) Unify(f ast.Formula) ast.Formula {
	return visit.RewriteFormula(f, func(self *ast.Formula) {
		switch x := (*self).(type) {
		case *ast.Comparison:
			*self = &ast.Predicate{Declaration: s.comparisonPredicate(x.Op), Args: []ast.Term{x.Left, x.Right}}
		case *ast.In:
			*self = s.rewriteIn(x)
		case *ast.Exists:
			*self = s.guard(x.Vars, x.Argument, true)
		case *ast.ForAll:
			*self = s.guard(x.Vars, x.Argument, false)
		}
	}, func(self *ast.Term) {
		*self = s.rewriteTerm(*self)
	})
}

func (s *Symbols) comparisonPredicate(op ast.ComparisonOp) *symbols.PredicateDeclaration {
	switch op {
	case ast.LessThan:
		return s.Less
	case ast.LessEqual:
		return s.LessEqual
	case ast.GreaterThan:
		return s.Greater
	case ast.GreaterEqual:
		return s.GreaterEqual
	case ast.NotEqual:
		return s.NotEqual
	default:
		return s.Equal
	}
}

// rewriteTerm wraps an already sort-determined leaf in integer(.) and turns
// arithmetic operations into uninterpreted function applications. Operands
// are assumed already rewritten (post-order).
func (s *Symbols) rewriteTerm(t ast.Term) ast.Term {
	switch x := t.(type) {
	case *ast.Integer, *ast.SpecialInteger:
		return &ast.Function{Declaration: s.Integer, Args: []ast.Term{t}}
	case *ast.Variable:
		if x.Declaration.Sort == symbols.Integer {
			return &ast.Function{Declaration: s.Integer, Args: []ast.Term{t}}
		}
		return t
	case *ast.BinaryOperation:
		return &ast.Function{Declaration: s.binaryFunction(x.Op), Args: []ast.Term{x.Left, x.Right}}
	case *ast.UnaryOperation:
		if x.Op == ast.Minus {
			return &ast.Function{Declaration: s.Negate, Args: []ast.Term{x.Argument}}
		}
		return t
	default:
		return t
	}
}

func (s *Symbols) binaryFunction(op ast.BinaryOp) *symbols.FunctionDeclaration {
	switch op {
	case ast.Add:
		return s.Sum
	case ast.Sub:
		return s.Difference
	case ast.Mul:
		return s.Product
	case ast.Div:
		return s.Quotient
	case ast.Pow:
		return s.Power
	default:
		return s.Remainder
	}
}

// rewriteIn handles the one In shape that can survive to domain unification
// (simplification having already collapsed every primitive/unit-size case):
// membership in an interval becomes a conjunction of the two uninterpreted
// bound comparisons.
func (s *Symbols) rewriteIn(in *ast.In) ast.Formula {
	interval, ok := in.Set.(*ast.Interval)
	if !ok {
		return &ast.Predicate{Declaration: s.Equal, Args: []ast.Term{in.Element, in.Set}}
	}
	return &ast.And{Args: []ast.Formula{
		&ast.Predicate{Declaration: s.GreaterEqual, Args: []ast.Term{in.Element, interval.From}},
		&ast.Predicate{Declaration: s.LessEqual, Args: []ast.Term{in.Element, interval.To}},
	}}
}

// guard adds an is_integer(.) conjunct/antecedent for every variable in
// vars whose source sort was Integer, then marks it Union (its domain is
// unified from here on). isExists selects And-guarding (∃) versus
// Implies-guarding (∀).
func (s *Symbols) guard(vars []*symbols.VariableDeclaration, argument ast.Formula, isExists bool) ast.Formula {
	var guards []ast.Formula
	for _, v := range vars {
		if v.Sort == symbols.Integer {
			guards = append(guards, &ast.Predicate{Declaration: s.IsInteger, Args: []ast.Term{&ast.Variable{Declaration: v}}})
		}
		v.Sort = symbols.Union
	}
	body := argument
	if len(guards) > 0 {
		if isExists {
			body = &ast.And{Args: append(guards, argument)}
		} else {
			guard := ast.Formula(guards[0])
			if len(guards) > 1 {
				guard = &ast.And{Args: guards}
			}
			body = &ast.Implies{Antecedent: guard, Consequent: argument}
		}
	}
	if isExists {
		return &ast.Exists{Vars: vars, Argument: body}
	}
	return &ast.ForAll{Vars: vars, Argument: body}
}
