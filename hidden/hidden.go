// Package hidden implements hidden-predicate elimination (C8): after
// completion, every predicate declared Hidden (or defaulting to Hidden) is
// substituted away in favor of its defining formula everywhere it is used,
// and its own now-trivial definition is dropped.
//
// Grounded on original_source/src/anthem/HiddenPredicateElimination.cpp's
// substitute-and-drop construction, reusing ast.PrepareCopy
// (§4.1) for the capture-avoiding splice and package simplify's
// SubstituteFormula for the formal/actual parameter replacement.
package hidden

import (
	"github.com/potassco/anthem-go/ast"
	"github.com/potassco/anthem-go/errs"
	"github.com/potassco/anthem-go/simplify"
	"github.com/potassco/anthem-go/symbols"
	"github.com/potassco/anthem-go/visit"
)

// pattern is one of the four replacement shapes §4.7 supports, already
// normalized to (formal parameters, replacement formula).
type pattern struct {
	params []*symbols.VariableDeclaration
	phi    ast.Formula
}

// Eliminate rewrites formulas in place (as a new slice) substituting away
// every predicate ctx resolves as Hidden and non-external, and returns the
// surviving formulas (the eliminated predicates' own trivial definitions
// dropped) plus any warnings raised for circular definitions that were left
// un-eliminated.
func Eliminate(formulas []ast.Formula, ctx *symbols.Context) ([]ast.Formula, []errs.Warning, error) {
	result := append([]ast.Formula{}, formulas...)
	var warnings []errs.Warning

	for _, decl := range ctx.Predicates() {
		if decl.IsExternal || ctx.EffectiveVisibility(decl) != symbols.Hidden {
			continue
		}

		idx, pat, found := findDefinition(result, decl)
		if !found {
			continue
		}

		if definesCircularly(pat.phi, decl) {
			warnings = append(warnings, errs.Warning{Message: "hidden predicate " + decl.Signature() + " skipped: circular definition"})
			continue
		}

		for j := range result {
			if j == idx {
				continue
			}
			result[j] = substitutePredicate(result[j], decl, pat)
		}
		result[idx] = ast.True()
	}

	out := result[:0]
	for _, f := range result {
		if b, ok := f.(*ast.Boolean); ok && b.Value {
			continue
		}
		out = append(out, f)
	}
	return out, warnings, nil
}

// findDefinition locates decl's completed definition among formulas and
// derives its replacement pattern, per the four shapes §4.7 supports.
func findDefinition(formulas []ast.Formula, decl *symbols.PredicateDeclaration) (int, pattern, bool) {
	for i, f := range formulas {
		if pat, ok := matchDefinition(f, decl); ok {
			return i, pat, true
		}
	}
	return -1, pattern{}, false
}

func matchDefinition(f ast.Formula, decl *symbols.PredicateDeclaration) (pattern, bool) {
	switch x := f.(type) {
	case *ast.ForAll:
		if b, ok := x.Argument.(*ast.Biconditional); ok {
			if p, ok := b.Left.(*ast.Predicate); ok && p.Declaration == decl && paramsMatch(x.Vars, p.Args) {
				return pattern{params: x.Vars, phi: b.Right}, true
			}
		}
	case *ast.Predicate:
		if x.Declaration == decl {
			if params, ok := variableParams(x.Args); ok {
				return pattern{params: params, phi: ast.True()}, true
			}
		}
	case *ast.Not:
		if p, ok := x.Argument.(*ast.Predicate); ok && p.Declaration == decl {
			if params, ok := variableParams(p.Args); ok {
				return pattern{params: params, phi: ast.False()}, true
			}
		}
	case *ast.Biconditional:
		if p, ok := x.Left.(*ast.Predicate); ok && p.Declaration == decl {
			if params, ok := variableParams(p.Args); ok {
				return pattern{params: params, phi: x.Right}, true
			}
		}
	}
	return pattern{}, false
}

// paramsMatch checks that a biconditional's left-hand predicate applies the
// ForAll's own bound variables, each exactly once in binder order — the
// shape completion always builds.
func paramsMatch(vars []*symbols.VariableDeclaration, args []ast.Term) bool {
	if len(vars) != len(args) {
		return false
	}
	for i, a := range args {
		v, ok := a.(*ast.Variable)
		if !ok || v.Declaration != vars[i] {
			return false
		}
	}
	return true
}

func variableParams(args []ast.Term) ([]*symbols.VariableDeclaration, bool) {
	params := make([]*symbols.VariableDeclaration, len(args))
	for i, a := range args {
		v, ok := a.(*ast.Variable)
		if !ok {
			return nil, false
		}
		params[i] = v.Declaration
	}
	return params, true
}

// definesCircularly reports whether phi itself applies decl — §4.7 step 3.
func definesCircularly(phi ast.Formula, decl *symbols.PredicateDeclaration) bool {
	found := false
	visit.WalkFormula(phi, func(f ast.Formula) {
		if p, ok := f.(*ast.Predicate); ok && p.Declaration == decl {
			found = true
		}
	}, nil)
	return found
}

// substitutePredicate rewrites every occurrence of decl's application within
// f to pat.phi, with pat.params replaced by the occurrence's actual
// arguments. Each occurrence gets its own prepare_copy of phi so sibling
// occurrences, and phi's own internally-bound variables, never alias.
func substitutePredicate(f ast.Formula, decl *symbols.PredicateDeclaration, pat pattern) ast.Formula {
	return visit.RewriteFormula(f, func(self *ast.Formula) {
		p, ok := (*self).(*ast.Predicate)
		if !ok || p.Declaration != decl {
			return
		}
		replacement := ast.PrepareCopy(pat.phi)
		for i, param := range pat.params {
			replacement = simplify.SubstituteFormula(replacement, param, p.Args[i])
		}
		*self = replacement
	}, nil)
}
