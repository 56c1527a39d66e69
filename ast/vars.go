package ast

import "github.com/potassco/anthem-go/symbols"

// FreeVariables returns, in first-occurrence order, the declarations of
// every Variable reference in f that is not bound by an enclosing
// Exists/ForAll within f itself.
func FreeVariables(f Formula) []*symbols.VariableDeclaration {
	var order []*symbols.VariableDeclaration
	seen := make(map[*symbols.VariableDeclaration]bool)
	collectFormula(f, map[*symbols.VariableDeclaration]bool{}, seen, &order)
	return order
}

func collectFormula(f Formula, bound map[*symbols.VariableDeclaration]bool, seen map[*symbols.VariableDeclaration]bool, order *[]*symbols.VariableDeclaration) {
	switch x := f.(type) {
	case *Boolean:
	case *Comparison:
		collectTerm(x.Left, bound, seen, order)
		collectTerm(x.Right, bound, seen, order)
	case *In:
		collectTerm(x.Element, bound, seen, order)
		collectTerm(x.Set, bound, seen, order)
	case *Predicate:
		for _, a := range x.Args {
			collectTerm(a, bound, seen, order)
		}
	case *Not:
		collectFormula(x.Argument, bound, seen, order)
	case *And:
		for _, a := range x.Args {
			collectFormula(a, bound, seen, order)
		}
	case *Or:
		for _, a := range x.Args {
			collectFormula(a, bound, seen, order)
		}
	case *Implies:
		collectFormula(x.Antecedent, bound, seen, order)
		collectFormula(x.Consequent, bound, seen, order)
	case *Biconditional:
		collectFormula(x.Left, bound, seen, order)
		collectFormula(x.Right, bound, seen, order)
	case *Exists:
		collectFormula(x.Argument, withBound(bound, x.Vars), seen, order)
	case *ForAll:
		collectFormula(x.Argument, withBound(bound, x.Vars), seen, order)
	}
}

func collectTerm(t Term, bound map[*symbols.VariableDeclaration]bool, seen map[*symbols.VariableDeclaration]bool, order *[]*symbols.VariableDeclaration) {
	switch x := t.(type) {
	case *Function:
		for _, a := range x.Args {
			collectTerm(a, bound, seen, order)
		}
	case *BinaryOperation:
		collectTerm(x.Left, bound, seen, order)
		collectTerm(x.Right, bound, seen, order)
	case *UnaryOperation:
		collectTerm(x.Argument, bound, seen, order)
	case *Interval:
		collectTerm(x.From, bound, seen, order)
		collectTerm(x.To, bound, seen, order)
	case *Variable:
		if bound[x.Declaration] {
			return
		}
		if seen[x.Declaration] {
			return
		}
		seen[x.Declaration] = true
		*order = append(*order, x.Declaration)
	}
}

// PredicatesIn returns, in first-occurrence order and without duplicates,
// every predicate declaration referenced anywhere in f. Used by completion
// (C5) and hidden-predicate elimination (C8) to find occurrence sites.
func PredicatesIn(f Formula) []*symbols.PredicateDeclaration {
	var order []*symbols.PredicateDeclaration
	seen := make(map[*symbols.PredicateDeclaration]bool)
	var walk func(Formula)
	walk = func(f Formula) {
		switch x := f.(type) {
		case *Predicate:
			if !seen[x.Declaration] {
				seen[x.Declaration] = true
				order = append(order, x.Declaration)
			}
		case *Not:
			walk(x.Argument)
		case *And:
			for _, a := range x.Args {
				walk(a)
			}
		case *Or:
			for _, a := range x.Args {
				walk(a)
			}
		case *Implies:
			walk(x.Antecedent)
			walk(x.Consequent)
		case *Biconditional:
			walk(x.Left)
			walk(x.Right)
		case *Exists:
			walk(x.Argument)
		case *ForAll:
			walk(x.Argument)
		}
	}
	walk(f)
	return order
}
