// Package simplify implements C6: the fixed-point rewrite system that turns
// the raw choose-value-shaped formulas completion produces into the compact
// form shown throughout the worked examples (§4.5, §8). Each rule is tried in
// the order the specification lists them; Simplify repeats a full bottom-up
// pass over the formula until one reports no change.
//
// Grounded on original_source/src/anthem/Simplification.cpp, which drives an
// equivalent rewrite-to-fixed-point loop over the same formula shapes, and on
// package visit's traversal, which this package is the first consumer of.
package simplify

import (
	"github.com/potassco/anthem-go/ast"
	"github.com/potassco/anthem-go/symbols"
	"github.com/potassco/anthem-go/visit"
)

// Simplify rewrites f to a fixed point under rules 1-13.
func Simplify(f ast.Formula) ast.Formula {
	for {
		changed := false
		f = visit.RewriteFormula(f, func(self *ast.Formula) {
			if out, ok := applyRules(*self); ok {
				*self = out
				changed = true
			}
		}, nil)
		if !changed {
			return f
		}
	}
}

// applyRules tries rules 1 through 13, in the specification's own numbering,
// against f and returns the first one that fires.
func applyRules(f ast.Formula) (ast.Formula, bool) {
	if out, ok := rule1(f); ok {
		return out, true
	}
	if out, ok := rule2(f); ok {
		return out, true
	}
	if out, ok := rule3(f); ok {
		return out, true
	}
	if out, ok := rule4(f); ok {
		return out, true
	}
	if out, ok := rule5(f); ok {
		return out, true
	}
	if out, ok := rule6(f); ok {
		return out, true
	}
	if out, ok := rule7(f); ok {
		return out, true
	}
	if out, ok := rule8(f); ok {
		return out, true
	}
	if out, ok := rule9(f); ok {
		return out, true
	}
	if out, ok := rule10(f); ok {
		return out, true
	}
	if out, ok := rule11(f); ok {
		return out, true
	}
	if out, ok := rule12(f); ok {
		return out, true
	}
	if out, ok := rule13(f); ok {
		return out, true
	}
	return nil, false
}

// rule1: ¬¬F ⇒ F.
func rule1(f ast.Formula) (ast.Formula, bool) {
	n, ok := f.(*ast.Not)
	if !ok {
		return nil, false
	}
	inner, ok := n.Argument.(*ast.Not)
	if !ok {
		return nil, false
	}
	return inner.Argument, true
}

// rule2: ∃x (x=y ∧ G) ⇒ G[y/x] (with x dropped from the binder and the
// equality conjunct removed), when x is one of the existential's own bound
// variables and y does not mention x.
func rule2(f ast.Formula) (ast.Formula, bool) {
	e, ok := f.(*ast.Exists)
	if !ok {
		return nil, false
	}
	and, ok := e.Argument.(*ast.And)
	if !ok {
		return nil, false
	}
	for _, v := range e.Vars {
		for ci, conj := range and.Args {
			repl, ok := equalityPartner(conj, v)
			if !ok {
				continue
			}
			newVars := make([]*symbols.VariableDeclaration, 0, len(e.Vars)-1)
			for _, v2 := range e.Vars {
				if v2 != v {
					newVars = append(newVars, v2)
				}
			}
			newArgs := make([]ast.Formula, 0, len(and.Args)-1)
			for j, a := range and.Args {
				if j == ci {
					continue
				}
				newArgs = append(newArgs, substituteFormula(a, v, repl))
			}
			return &ast.Exists{Vars: newVars, Argument: &ast.And{Args: newArgs}}, true
		}
	}
	return nil, false
}

// rule3: ∃x (x=y) ⇒ ⊤, when x is the existential's sole bound variable.
func rule3(f ast.Formula) (ast.Formula, bool) {
	e, ok := f.(*ast.Exists)
	if !ok || len(e.Vars) != 1 {
		return nil, false
	}
	if _, ok := equalityPartner(e.Argument, e.Vars[0]); ok {
		return ast.True(), true
	}
	return nil, false
}

// equalityPartner reports whether f is an equality with v on exactly one
// side and, if so, returns the other side provided it does not mention v.
func equalityPartner(f ast.Formula, v *symbols.VariableDeclaration) (ast.Term, bool) {
	cmp, ok := f.(*ast.Comparison)
	if !ok || cmp.Op != ast.Equal {
		return nil, false
	}
	lv, lok := cmp.Left.(*ast.Variable)
	rv, rok := cmp.Right.(*ast.Variable)
	switch {
	case lok && lv.Declaration == v && !containsVar(cmp.Right, v):
		return cmp.Right, true
	case rok && rv.Declaration == v && !containsVar(cmp.Left, v):
		return cmp.Left, true
	default:
		return nil, false
	}
}

// rule4: an empty conjunction is ⊤.
func rule4(f ast.Formula) (ast.Formula, bool) {
	a, ok := f.(*ast.And)
	if !ok || len(a.Args) != 0 {
		return nil, false
	}
	return ast.True(), true
}

// rule5: ∃... ⊤ ⇒ ⊤, and analogously for ⊥ and for ForAll.
func rule5(f ast.Formula) (ast.Formula, bool) {
	switch q := f.(type) {
	case *ast.Exists:
		if b, ok := q.Argument.(*ast.Boolean); ok {
			return b, true
		}
	case *ast.ForAll:
		if b, ok := q.Argument.(*ast.Boolean); ok {
			return b, true
		}
	}
	return nil, false
}

// rule6: a one-element conjunction is its element.
func rule6(f ast.Formula) (ast.Formula, bool) {
	a, ok := f.(*ast.And)
	if !ok || len(a.Args) != 1 {
		return nil, false
	}
	return a.Args[0], true
}

// rule7: ∃() F ⇒ F, and analogously ForAll() F ⇒ F.
func rule7(f ast.Formula) (ast.Formula, bool) {
	switch q := f.(type) {
	case *ast.Exists:
		if len(q.Vars) == 0 {
			return q.Argument, true
		}
	case *ast.ForAll:
		if len(q.Vars) == 0 {
			return q.Argument, true
		}
	}
	return nil, false
}

// rule8: In(a,b) with both a and b primitive (not an interval, a binary or
// unary operation, or a function applied to arguments) ⇒ a=b.
func rule8(f ast.Formula) (ast.Formula, bool) {
	in, ok := f.(*ast.In)
	if !ok {
		return nil, false
	}
	if isPrimitiveTerm(in.Element) && isPrimitiveTerm(in.Set) {
		return &ast.Comparison{Op: ast.Equal, Left: in.Element, Right: in.Set}, true
	}
	return nil, false
}

// rule9: (F <-> (F and G)) ⇒ (F -> G), detected via Similar rather than
// syntactic equality so it still fires once earlier rules have normalized F
// on both sides to the same (but not necessarily identical) shape.
func rule9(f ast.Formula) (ast.Formula, bool) {
	b, ok := f.(*ast.Biconditional)
	if !ok {
		return nil, false
	}
	if and, ok := b.Right.(*ast.And); ok {
		if consequent, ok := subsumeOneConjunct(b.Left, and); ok {
			return &ast.Implies{Antecedent: b.Left, Consequent: consequent}, true
		}
	}
	if and, ok := b.Left.(*ast.And); ok {
		if consequent, ok := subsumeOneConjunct(b.Right, and); ok {
			return &ast.Implies{Antecedent: b.Right, Consequent: consequent}, true
		}
	}
	return nil, false
}

func subsumeOneConjunct(f ast.Formula, and *ast.And) (ast.Formula, bool) {
	for i, a := range and.Args {
		if ast.Similar(f, a) != ast.SimilarYes {
			continue
		}
		rest := make([]ast.Formula, 0, len(and.Args)-1)
		for j, a2 := range and.Args {
			if j != i {
				rest = append(rest, a2)
			}
		}
		if len(rest) == 0 {
			return ast.True(), true
		}
		if len(rest) == 1 {
			return rest[0], true
		}
		return &ast.And{Args: rest}, true
	}
	return nil, false
}

// rule10: ¬(F and G) ⇒ ¬F or ¬G, generalized to n-ary And.
func rule10(f ast.Formula) (ast.Formula, bool) {
	n, ok := f.(*ast.Not)
	if !ok {
		return nil, false
	}
	and, ok := n.Argument.(*ast.And)
	if !ok {
		return nil, false
	}
	args := make([]ast.Formula, len(and.Args))
	for i, a := range and.Args {
		args[i] = &ast.Not{Argument: a}
	}
	return &ast.Or{Args: args}, true
}

// rule11: (¬F or G) ⇒ (F -> G), for a binary Or with a negated disjunct on
// either side.
func rule11(f ast.Formula) (ast.Formula, bool) {
	or, ok := f.(*ast.Or)
	if !ok || len(or.Args) != 2 {
		return nil, false
	}
	if n, ok := or.Args[0].(*ast.Not); ok {
		return &ast.Implies{Antecedent: n.Argument, Consequent: or.Args[1]}, true
	}
	if n, ok := or.Args[1].(*ast.Not); ok {
		return &ast.Implies{Antecedent: n.Argument, Consequent: or.Args[0]}, true
	}
	return nil, false
}

// rule12: ¬(a ⊙ b) ⇒ a ⊙̄ b, complementing the comparison operator.
func rule12(f ast.Formula) (ast.Formula, bool) {
	n, ok := f.(*ast.Not)
	if !ok {
		return nil, false
	}
	cmp, ok := n.Argument.(*ast.Comparison)
	if !ok {
		return nil, false
	}
	return &ast.Comparison{Op: cmp.Op.Complement(), Left: cmp.Left, Right: cmp.Right}, true
}

// rule13: In(a,b) with both a and b of integer domain and of unit size ⇒
// a=b — the generalization of rule 8 that also fires on arithmetic
// expressions and integer-sorted variables once sort detection (package
// sorts) has annotated them, rather than only on already-primitive terms.
func rule13(f ast.Formula) (ast.Formula, bool) {
	in, ok := f.(*ast.In)
	if !ok {
		return nil, false
	}
	if isIntegerDomain(in.Element) && isUnitSize(in.Element) && isIntegerDomain(in.Set) && isUnitSize(in.Set) {
		return &ast.Comparison{Op: ast.Equal, Left: in.Element, Right: in.Set}, true
	}
	return nil, false
}

// isPrimitiveTerm reports whether t is a leaf value — never an interval, an
// arithmetic operation, or a function applied to arguments.
func isPrimitiveTerm(t ast.Term) bool {
	switch x := t.(type) {
	case *ast.Integer, *ast.SpecialInteger, *ast.StringTerm, *ast.BooleanTerm, *ast.Variable:
		return true
	case *ast.Function:
		return len(x.Args) == 0
	default:
		return false
	}
}

// isIntegerDomain reports whether t is known to range over the integers:
// integer literals and arithmetic expressions always are, a variable is
// exactly when its declaration was sorted Integer (package sorts), and a
// 0-ary function is exactly when its declaration's domain was.
func isIntegerDomain(t ast.Term) bool {
	switch x := t.(type) {
	case *ast.Integer, *ast.SpecialInteger, *ast.BinaryOperation, *ast.UnaryOperation:
		return true
	case *ast.Variable:
		return x.Declaration.Sort == symbols.Integer
	case *ast.Function:
		return x.Declaration.Domain == symbols.Integer
	default:
		return false
	}
}

// isUnitSize reports whether t denotes a single value rather than a range:
// every term shape is unit-size except an interval, which spans more than
// one value whenever its bounds differ (and is conservatively treated as
// many-valued even when they happen to coincide, since that can only be
// known by evaluation, not by shape).
func isUnitSize(t ast.Term) bool {
	_, isInterval := t.(*ast.Interval)
	return !isInterval
}

func containsVar(t ast.Term, decl *symbols.VariableDeclaration) bool {
	return ContainsVariable(t, decl)
}

func substituteFormula(f ast.Formula, decl *symbols.VariableDeclaration, repl ast.Term) ast.Formula {
	return SubstituteFormula(f, decl, repl)
}

// ContainsVariable reports whether t mentions decl anywhere within it.
// Exported alongside SubstituteTerm/SubstituteFormula; within this module
// only the simplifier's own rules call it.
func ContainsVariable(t ast.Term, decl *symbols.VariableDeclaration) bool {
	found := false
	visit.WalkTerm(t, func(x ast.Term) {
		if v, ok := x.(*ast.Variable); ok && v.Declaration == decl {
			found = true
		}
	})
	return found
}

// SubstituteTerm replaces every occurrence of decl within t by repl.
func SubstituteTerm(t ast.Term, decl *symbols.VariableDeclaration, repl ast.Term) ast.Term {
	return visit.RewriteTerm(t, func(self *ast.Term) {
		if v, ok := (*self).(*ast.Variable); ok && v.Declaration == decl {
			*self = repl
		}
	})
}

// SubstituteFormula replaces every occurrence of decl within f by repl.
func SubstituteFormula(f ast.Formula, decl *symbols.VariableDeclaration, repl ast.Term) ast.Formula {
	return visit.RewriteFormula(f, func(self *ast.Formula) {}, func(self *ast.Term) {
		if v, ok := (*self).(*ast.Variable); ok && v.Declaration == decl {
			*self = repl
		}
	})
}
