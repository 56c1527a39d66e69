// Package emit renders translated formulas in the two textual forms §6
// names: a human-readable infix notation and TPTP. Both modes are pure
// functions over ast.Formula/ast.Term — emit owns no pipeline state and
// never mutates what it is given.
//
// Grounded on ast/print.go's existing default String() implementation
// (already the "normal" parenthesization style) plus
// original_source/src/anthem/Output.cpp's two output backends, which this
// package's ParenStyle/Role split mirrors.
package emit

import (
	"strings"

	"github.com/potassco/anthem-go/ast"
	"github.com/potassco/anthem-go/symbols"
)

// ParenStyle selects how liberally HumanReadable parenthesizes a formula,
// per the CLI's --parentheses flag (§6).
type ParenStyle int

const (
	// Normal is ast.Formula.String()'s own default rendering: every And, Or,
	// Implies, Biconditional and binary arithmetic operation is wrapped in
	// parentheses, while negations, comparisons, In formulas and atoms are not.
	Normal ParenStyle = iota
	// Full parenthesizes every connective and comparison unconditionally,
	// trading brevity for a rendering that never relies on the reader
	// knowing operator precedence.
	Full
)

// HumanReadable renders f using the keyword infix syntax §6 specifies
// (and/or/not/in/exists/forall/#true/#false, intervals a..b, the six
// comparison operators and the five arithmetic ones).
func HumanReadable(f ast.Formula, style ParenStyle) string {
	if style == Normal {
		return f.String()
	}
	return fullFormula(f)
}

// HumanReadableTerm renders a term using the same infix syntax, for
// contexts (e.g. the "int(p/1@1)" integer-detection annotation of §8
// scenario 5) that print one term without a surrounding formula.
func HumanReadableTerm(t ast.Term, style ParenStyle) string {
	if style == Normal {
		return t.String()
	}
	return fullTerm(t)
}

func fullTerm(t ast.Term) string {
	switch x := t.(type) {
	case *ast.BinaryOperation:
		return "(" + fullTerm(x.Left) + " " + x.Op.String() + " " + fullTerm(x.Right) + ")"
	case *ast.UnaryOperation:
		if x.Op == ast.Abs {
			return "|" + fullTerm(x.Argument) + "|"
		}
		return "(-" + fullTerm(x.Argument) + ")"
	case *ast.Interval:
		return "(" + fullTerm(x.From) + ".." + fullTerm(x.To) + ")"
	case *ast.Function:
		if len(x.Args) == 0 {
			return x.Declaration.Name
		}
		parts := make([]string, len(x.Args))
		for i, a := range x.Args {
			parts[i] = fullTerm(a)
		}
		return x.Declaration.Name + "(" + strings.Join(parts, ",") + ")"
	default:
		return t.String()
	}
}

func fullFormula(f ast.Formula) string {
	switch x := f.(type) {
	case *ast.Comparison:
		return "(" + fullTerm(x.Left) + " " + x.Op.String() + " " + fullTerm(x.Right) + ")"
	case *ast.In:
		return "(" + fullTerm(x.Element) + " in " + fullTerm(x.Set) + ")"
	case *ast.Predicate:
		if len(x.Args) == 0 {
			return x.Declaration.Name
		}
		parts := make([]string, len(x.Args))
		for i, a := range x.Args {
			parts[i] = fullTerm(a)
		}
		return x.Declaration.Name + "(" + strings.Join(parts, ",") + ")"
	case *ast.Not:
		return "(not " + fullFormula(x.Argument) + ")"
	case *ast.And:
		return joinFull(x.Args, " and ", "#true")
	case *ast.Or:
		return joinFull(x.Args, " or ", "#false")
	case *ast.Implies:
		return "(" + fullFormula(x.Antecedent) + " -> " + fullFormula(x.Consequent) + ")"
	case *ast.Biconditional:
		return "(" + fullFormula(x.Left) + " <-> " + fullFormula(x.Right) + ")"
	case *ast.Exists:
		return "(exists " + joinVars(x.Vars) + " (" + fullFormula(x.Argument) + "))"
	case *ast.ForAll:
		return "(forall " + joinVars(x.Vars) + " (" + fullFormula(x.Argument) + "))"
	default:
		return f.String()
	}
}

func joinFull(args []ast.Formula, sep, empty string) string {
	if len(args) == 0 {
		return empty
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fullFormula(a)
	}
	return "(" + strings.Join(parts, sep) + ")"
}

func joinVars(vars []*symbols.VariableDeclaration) string {
	parts := make([]string, len(vars))
	for i, v := range vars {
		parts[i] = v.DisplayName
	}
	return strings.Join(parts, ",")
}
