package ast

import "github.com/potassco/anthem-go/symbols"

// ScopedFormula is (formula, owned free-variable declarations): all free
// variable references in Formula must resolve to one of Vars, and all
// bound ones resolve to an Exists/ForAll inside Formula (§3).
type ScopedFormula struct {
	Formula Formula
	Vars    []*symbols.VariableDeclaration
}

type varEnv map[*symbols.VariableDeclaration]*symbols.VariableDeclaration

// PrepareCopy produces a structural deep copy of a formula, cloning every
// bound-variable declaration it owns and rebinding every reference to an
// original bound declaration to the corresponding clone, while leaving
// references to free (unowned) declarations pointing at the originals
// (§4.1). It is the operation that makes splicing a subtree from one scope
// into another variable-capture-safe.
func PrepareCopy(f Formula) Formula {
	return copyFormula(f, varEnv{})
}

// PrepareCopyTerm is PrepareCopy for a standalone term, used when splicing a
// term (rather than a whole formula) across scopes.
func PrepareCopyTerm(t Term) Term {
	return copyTerm(t, varEnv{})
}

func extendEnv(env varEnv, originals, clones []*symbols.VariableDeclaration) varEnv {
	next := make(varEnv, len(env)+len(originals))
	for k, v := range env {
		next[k] = v
	}
	for i, o := range originals {
		next[o] = clones[i]
	}
	return next
}

func cloneVars(vars []*symbols.VariableDeclaration) []*symbols.VariableDeclaration {
	clones := make([]*symbols.VariableDeclaration, len(vars))
	for i, v := range vars {
		clones[i] = v.Clone()
	}
	return clones
}

func copyTerm(t Term, env varEnv) Term {
	switch x := t.(type) {
	case *Integer:
		return &Integer{Value: x.Value}
	case *SpecialInteger:
		return &SpecialInteger{Kind: x.Kind}
	case *StringTerm:
		return &StringTerm{Value: x.Value}
	case *BooleanTerm:
		return &BooleanTerm{Value: x.Value}
	case *Function:
		args := make([]Term, len(x.Args))
		for i, a := range x.Args {
			args[i] = copyTerm(a, env)
		}
		return &Function{Declaration: x.Declaration, Args: args}
	case *Variable:
		if clone, ok := env[x.Declaration]; ok {
			return &Variable{Declaration: clone}
		}
		return &Variable{Declaration: x.Declaration}
	case *BinaryOperation:
		return &BinaryOperation{Op: x.Op, Left: copyTerm(x.Left, env), Right: copyTerm(x.Right, env)}
	case *UnaryOperation:
		return &UnaryOperation{Op: x.Op, Argument: copyTerm(x.Argument, env)}
	case *Interval:
		return &Interval{From: copyTerm(x.From, env), To: copyTerm(x.To, env)}
	default:
		panic("ast: PrepareCopy: unhandled term variant")
	}
}

func copyFormula(f Formula, env varEnv) Formula {
	switch x := f.(type) {
	case *Boolean:
		return &Boolean{Value: x.Value}
	case *Comparison:
		return &Comparison{Op: x.Op, Left: copyTerm(x.Left, env), Right: copyTerm(x.Right, env)}
	case *In:
		return &In{Element: copyTerm(x.Element, env), Set: copyTerm(x.Set, env)}
	case *Predicate:
		args := make([]Term, len(x.Args))
		for i, a := range x.Args {
			args[i] = copyTerm(a, env)
		}
		return &Predicate{Declaration: x.Declaration, Args: args}
	case *Not:
		return &Not{Argument: copyFormula(x.Argument, env)}
	case *And:
		args := make([]Formula, len(x.Args))
		for i, a := range x.Args {
			args[i] = copyFormula(a, env)
		}
		return &And{Args: args}
	case *Or:
		args := make([]Formula, len(x.Args))
		for i, a := range x.Args {
			args[i] = copyFormula(a, env)
		}
		return &Or{Args: args}
	case *Implies:
		return &Implies{Antecedent: copyFormula(x.Antecedent, env), Consequent: copyFormula(x.Consequent, env)}
	case *Biconditional:
		return &Biconditional{Left: copyFormula(x.Left, env), Right: copyFormula(x.Right, env)}
	case *Exists:
		clones := cloneVars(x.Vars)
		inner := extendEnv(env, x.Vars, clones)
		return &Exists{Vars: clones, Argument: copyFormula(x.Argument, inner)}
	case *ForAll:
		clones := cloneVars(x.Vars)
		inner := extendEnv(env, x.Vars, clones)
		return &ForAll{Vars: clones, Argument: copyFormula(x.Argument, inner)}
	default:
		panic("ast: PrepareCopy: unhandled formula variant")
	}
}

// FixDangling walks sf.Formula and redeclares, as a fresh free variable of
// sf, any variable reference whose declaration is not visible through any
// enclosing binder and is not already among sf.Vars (§4.1). All occurrences
// of the same dangling declaration are rewritten to point to the same new
// declaration.
func FixDangling(sf *ScopedFormula) {
	bound := make(map[*symbols.VariableDeclaration]bool, len(sf.Vars))
	for _, v := range sf.Vars {
		bound[v] = true
	}
	replacements := make(map[*symbols.VariableDeclaration]*symbols.VariableDeclaration)
	fixDanglingFormula(sf.Formula, bound, sf, replacements)
}

func fixDanglingFormula(f Formula, bound map[*symbols.VariableDeclaration]bool, sf *ScopedFormula, replacements map[*symbols.VariableDeclaration]*symbols.VariableDeclaration) {
	switch x := f.(type) {
	case *Comparison:
		fixDanglingTerm(x.Left, bound, sf, replacements)
		fixDanglingTerm(x.Right, bound, sf, replacements)
	case *In:
		fixDanglingTerm(x.Element, bound, sf, replacements)
		fixDanglingTerm(x.Set, bound, sf, replacements)
	case *Predicate:
		for _, a := range x.Args {
			fixDanglingTerm(a, bound, sf, replacements)
		}
	case *Not:
		fixDanglingFormula(x.Argument, bound, sf, replacements)
	case *And:
		for _, a := range x.Args {
			fixDanglingFormula(a, bound, sf, replacements)
		}
	case *Or:
		for _, a := range x.Args {
			fixDanglingFormula(a, bound, sf, replacements)
		}
	case *Implies:
		fixDanglingFormula(x.Antecedent, bound, sf, replacements)
		fixDanglingFormula(x.Consequent, bound, sf, replacements)
	case *Biconditional:
		fixDanglingFormula(x.Left, bound, sf, replacements)
		fixDanglingFormula(x.Right, bound, sf, replacements)
	case *Exists:
		fixDanglingFormula(x.Argument, withBound(bound, x.Vars), sf, replacements)
	case *ForAll:
		fixDanglingFormula(x.Argument, withBound(bound, x.Vars), sf, replacements)
	case *Boolean:
		// no variables
	default:
		panic("ast: FixDangling: unhandled formula variant")
	}
}

func withBound(bound map[*symbols.VariableDeclaration]bool, vars []*symbols.VariableDeclaration) map[*symbols.VariableDeclaration]bool {
	next := make(map[*symbols.VariableDeclaration]bool, len(bound)+len(vars))
	for k, v := range bound {
		next[k] = v
	}
	for _, v := range vars {
		next[v] = true
	}
	return next
}

func fixDanglingTerm(t Term, bound map[*symbols.VariableDeclaration]bool, sf *ScopedFormula, replacements map[*symbols.VariableDeclaration]*symbols.VariableDeclaration) {
	switch x := t.(type) {
	case *Function:
		for _, a := range x.Args {
			fixDanglingTerm(a, bound, sf, replacements)
		}
	case *BinaryOperation:
		fixDanglingTerm(x.Left, bound, sf, replacements)
		fixDanglingTerm(x.Right, bound, sf, replacements)
	case *UnaryOperation:
		fixDanglingTerm(x.Argument, bound, sf, replacements)
	case *Interval:
		fixDanglingTerm(x.From, bound, sf, replacements)
		fixDanglingTerm(x.To, bound, sf, replacements)
	case *Variable:
		if bound[x.Declaration] {
			return
		}
		if replacement, ok := replacements[x.Declaration]; ok {
			x.Declaration = replacement
			return
		}
		fresh := x.Declaration.Clone()
		replacements[x.Declaration] = fresh
		sf.Vars = append(sf.Vars, fresh)
		x.Declaration = fresh
	}
}
