// Package complete implements completion (C5): turning the set of rules
// translated for one head predicate into a single universally-closed
// biconditional definition, per the classical completion construction
// (Clark's completion) generalized to the fresh-variable, choose-value-built
// disjuncts the rule translator produces.
//
// Grounded on src/anthem/Completion.cpp and include/anthem/Completion.h of
// original_source: predicates with no defining rule complete to ¬p(...),
// integrity constraints stay as ForAll(¬Body), and — since each rule's head
// values arrive from the rule translator as fresh head variables, already
// related to their source terms by the rule's head conjuncts (an In
// membership in DirectMode, a choose-value formula in ChooseMode) —
// completion here only ever has to equate its own head variables against
// those fresh variables, never re-derive In/interval membership itself.
package complete

import (
	"sort"

	"github.com/potassco/anthem-go/ast"
	"github.com/potassco/anthem-go/errs"
	"github.com/potassco/anthem-go/symbols"
	"github.com/potassco/anthem-go/translate"
)

// Complete runs C5 over every translated rule, returning one ast.Formula per
// predicate that has at least one defining (non-choice, non-disjunctive)
// rule, plus the standalone formulas integrity constraints, choice rules and
// disjunctive rules contribute directly (§4.10).
func Complete(rules []*translate.TranslatedRule, ctx *symbols.Context) ([]ast.Formula, error) {
	type predicateKey struct {
		name  string
		arity int
	}

	defining := make(map[predicateKey][]*translate.TranslatedRule)
	choiceHandled := make(map[predicateKey]bool)
	var standalone []ast.Formula

	for _, r := range rules {
		switch r.Kind {
		case translate.HeadIntegrityConstraint:
			standalone = append(standalone, closeOver(r.FreeVars, &ast.Not{Argument: r.Body}))

		case translate.HeadSingleAtom:
			key := predicateKey{r.Head.Predicate.Name, r.Head.Predicate.Arity}
			defining[key] = append(defining[key], r)

		case translate.HeadChoice:
			vars := append(append([]*symbols.VariableDeclaration{}, r.FreeVars...), r.Head.AuxVars...)
			body := conjoin(r.Body, r.Head.Conjuncts)
			consequent := &ast.Predicate{Declaration: r.Head.Predicate, Args: r.Head.Values}
			standalone = append(standalone, closeOver(vars, &ast.Implies{Antecedent: body, Consequent: consequent}))
			choiceHandled[predicateKey{r.Head.Predicate.Name, r.Head.Predicate.Arity}] = true

		case translate.HeadDisjunction:
			var vars []*symbols.VariableDeclaration
			vars = append(vars, r.FreeVars...)
			var conjuncts []ast.Formula
			disjuncts := make([]ast.Formula, 0, len(r.Disjuncts))
			for _, d := range r.Disjuncts {
				vars = append(vars, d.AuxVars...)
				conjuncts = append(conjuncts, d.Conjuncts...)
				disjuncts = append(disjuncts, &ast.Predicate{Declaration: d.Predicate, Args: d.Values})
			}
			body := conjoin(r.Body, conjuncts)
			standalone = append(standalone, closeOver(vars, &ast.Implies{Antecedent: body, Consequent: &ast.Or{Args: disjuncts}}))

		default:
			return nil, errs.NewLogicFailure("unexpected head kind %d", r.Kind)
		}
	}

	var keys []predicateKey
	for k := range defining {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].name != keys[j].name {
			return keys[i].name < keys[j].name
		}
		return keys[i].arity < keys[j].arity
	})

	out := make([]ast.Formula, 0, len(keys)+len(standalone))
	for _, k := range keys {
		f, err := completeOne(k.name, k.arity, defining[k], ctx)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	out = append(out, standalone...)

	// Predicates that were used in a head position somewhere but, because
	// every rule defining them was filtered out by an earlier fatal error,
	// never reached completeOne are not handled specially: the caller
	// surfaces the fatal TranslationFailure and never calls Complete.
	//
	// Predicates with zero defining rules (e.g. used only in rule bodies)
	// complete to ¬p(...), unless marked external.
	for _, decl := range ctx.PredicatesSorted() {
		if decl.IsExternal {
			continue
		}
		key := predicateKey{decl.Name, decl.Arity}
		if _, ok := defining[key]; ok {
			continue
		}
		if choiceHandled[key] {
			continue
		}
		out = append(out, negativeCompletion(decl))
	}

	return out, nil
}

// completeOne builds ForAll(v1..vn, p(v1,...,vn) <-> Or_i disjunct_i) for a
// predicate with at least one normal defining rule.
func completeOne(name string, arity int, rules []*translate.TranslatedRule, ctx *symbols.Context) (ast.Formula, error) {
	decl, ok := ctx.FindPredicate(name, arity)
	if !ok {
		return nil, errs.NewCompletionFailure("predicate %s/%d has defining rules but no declaration", name, arity)
	}

	headVars := make([]*symbols.VariableDeclaration, arity)
	headArgs := make([]ast.Term, arity)
	for i := range headVars {
		headVars[i] = symbols.NewVariableDeclaration(symbols.Head, ac("v", i), symbols.Unknown)
		headArgs[i] = &ast.Variable{Declaration: headVars[i]}
	}

	disjuncts := make([]ast.Formula, 0, len(rules))
	for _, r := range rules {
		if len(r.Head.Values) != arity {
			return nil, errs.NewCompletionFailure("rule at %s has %d head arguments, expected %d", r.Location, len(r.Head.Values), arity)
		}
		vars := append(append([]*symbols.VariableDeclaration{}, r.FreeVars...), r.Head.AuxVars...)
		conjuncts := append([]ast.Formula{}, r.Head.Conjuncts...)
		for i, v := range r.Head.Values {
			conjuncts = append(conjuncts, &ast.Comparison{Op: ast.Equal, Left: headArgs[i], Right: v})
		}
		body := conjoin(r.Body, conjuncts)
		disjuncts = append(disjuncts, closeExists(vars, body))
	}

	consequent := disjunctionOf(disjuncts)
	biconditional := &ast.Biconditional{Left: &ast.Predicate{Declaration: decl, Args: headArgs}, Right: consequent}
	return &ast.ForAll{Vars: headVars, Argument: biconditional}, nil
}

func negativeCompletion(decl *symbols.PredicateDeclaration) ast.Formula {
	if decl.Arity == 0 {
		return &ast.Not{Argument: &ast.Predicate{Declaration: decl}}
	}
	vars := make([]*symbols.VariableDeclaration, decl.Arity)
	args := make([]ast.Term, decl.Arity)
	for i := range vars {
		vars[i] = symbols.NewVariableDeclaration(symbols.Head, ac("v", i), symbols.Unknown)
		args[i] = &ast.Variable{Declaration: vars[i]}
	}
	return &ast.ForAll{Vars: vars, Argument: &ast.Not{Argument: &ast.Predicate{Declaration: decl, Args: args}}}
}

func conjoin(body ast.Formula, extra []ast.Formula) ast.Formula {
	if len(extra) == 0 {
		return body
	}
	return &ast.And{Args: append(append([]ast.Formula{}, extra...), body)}
}

func closeExists(vars []*symbols.VariableDeclaration, f ast.Formula) ast.Formula {
	if len(vars) == 0 {
		return f
	}
	return &ast.Exists{Vars: vars, Argument: f}
}

func closeOver(vars []*symbols.VariableDeclaration, f ast.Formula) ast.Formula {
	if len(vars) == 0 {
		return f
	}
	return &ast.ForAll{Vars: vars, Argument: f}
}

func disjunctionOf(fs []ast.Formula) ast.Formula {
	if len(fs) == 1 {
		return fs[0]
	}
	return &ast.Or{Args: fs}
}

func ac(prefix string, i int) string {
	return prefix + itoa(i+1)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
