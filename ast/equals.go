package ast

import "github.com/potassco/anthem-go/symbols"

// TermEquals decides syntactic (structural) equality of two terms. Two
// Variable terms are equal iff they reference the identical declaration
// (pointer identity) — not merely the same display name, per the §3
// invariant that each VariableDeclaration exists once.
func TermEquals(a, b Term) bool {
	switch x := a.(type) {
	case *Integer:
		y, ok := b.(*Integer)
		return ok && x.Value == y.Value
	case *SpecialInteger:
		y, ok := b.(*SpecialInteger)
		return ok && x.Kind == y.Kind
	case *StringTerm:
		y, ok := b.(*StringTerm)
		return ok && x.Value == y.Value
	case *BooleanTerm:
		y, ok := b.(*BooleanTerm)
		return ok && x.Value == y.Value
	case *Function:
		y, ok := b.(*Function)
		if !ok || x.Declaration != y.Declaration || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !TermEquals(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	case *Variable:
		y, ok := b.(*Variable)
		return ok && x.Declaration == y.Declaration
	case *BinaryOperation:
		y, ok := b.(*BinaryOperation)
		if !ok || x.Op != y.Op {
			return false
		}
		if TermEquals(x.Left, y.Left) && TermEquals(x.Right, y.Right) {
			return true
		}
		if isCommutativeOp(x.Op) {
			return TermEquals(x.Left, y.Right) && TermEquals(x.Right, y.Left)
		}
		return false
	case *UnaryOperation:
		y, ok := b.(*UnaryOperation)
		return ok && x.Op == y.Op && TermEquals(x.Argument, y.Argument)
	case *Interval:
		y, ok := b.(*Interval)
		return ok && TermEquals(x.From, y.From) && TermEquals(x.To, y.To)
	default:
		return false
	}
}

func isCommutativeOp(op BinaryOp) bool {
	return op == Add || op == Mul
}

// FormulaEquals decides strict structural equality of two formulas,
// treating commutative connectives (And/Or) order-insensitively and
// commutative comparisons (=, !=) argument-order-insensitively. Bound
// variables of Exists/ForAll are compared by declaration identity, so two
// alpha-equivalent but distinctly-allocated quantifiers are NOT considered
// equal by this function — see Similar for the weaker notion rule 9 needs.
func FormulaEquals(a, b Formula) bool {
	switch x := a.(type) {
	case *Boolean:
		y, ok := b.(*Boolean)
		return ok && x.Value == y.Value
	case *Comparison:
		y, ok := b.(*Comparison)
		if !ok || x.Op != y.Op {
			return false
		}
		if TermEquals(x.Left, y.Left) && TermEquals(x.Right, y.Right) {
			return true
		}
		if x.Op == Equal || x.Op == NotEqual {
			return TermEquals(x.Left, y.Right) && TermEquals(x.Right, y.Left)
		}
		return false
	case *In:
		y, ok := b.(*In)
		return ok && TermEquals(x.Element, y.Element) && TermEquals(x.Set, y.Set)
	case *Predicate:
		y, ok := b.(*Predicate)
		if !ok || x.Declaration != y.Declaration || len(x.Args) != len(y.Args) {
			return false
		}
		for i := range x.Args {
			if !TermEquals(x.Args[i], y.Args[i]) {
				return false
			}
		}
		return true
	case *Not:
		y, ok := b.(*Not)
		return ok && FormulaEquals(x.Argument, y.Argument)
	case *And:
		y, ok := b.(*And)
		return ok && sameMultiset(x.Args, y.Args)
	case *Or:
		y, ok := b.(*Or)
		return ok && sameMultiset(x.Args, y.Args)
	case *Implies:
		y, ok := b.(*Implies)
		return ok && FormulaEquals(x.Antecedent, y.Antecedent) && FormulaEquals(x.Consequent, y.Consequent)
	case *Biconditional:
		y, ok := b.(*Biconditional)
		return ok && FormulaEquals(x.Left, y.Left) && FormulaEquals(x.Right, y.Right)
	case *Exists:
		y, ok := b.(*Exists)
		return ok && sameVars(x.Vars, y.Vars) && FormulaEquals(x.Argument, y.Argument)
	case *ForAll:
		y, ok := b.(*ForAll)
		return ok && sameVars(x.Vars, y.Vars) && FormulaEquals(x.Argument, y.Argument)
	default:
		return false
	}
}

func sameMultiset(xs, ys []Formula) bool {
	if len(xs) != len(ys) {
		return false
	}
	used := make([]bool, len(ys))
	for _, x := range xs {
		found := false
		for j, y := range ys {
			if used[j] {
				continue
			}
			if FormulaEquals(x, y) {
				used[j] = true
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func sameVars(xs, ys []*symbols.VariableDeclaration) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i := range xs {
		if xs[i] != ys[i] {
			return false
		}
	}
	return true
}
