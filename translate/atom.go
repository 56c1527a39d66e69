package translate

import (
	"github.com/potassco/anthem-go/ast"
	"github.com/potassco/anthem-go/errs"
	"github.com/potassco/anthem-go/source"
	"github.com/potassco/anthem-go/symbols"
)

// inArgs builds one fresh variable and one defining conjunct per atom
// argument. In DirectMode the conjunct is In(z, translateTerm(arg)): t is
// kept compound (e.g. an interval or arithmetic expression stays intact)
// rather than decomposed, matching §4.3's "vᵢ ∈ tᵢ (using the In formula)"
// for head atoms and the equivalent top-level choose(tᵢ,uᵢ) for body atoms
// — grounded on HeadDirect.h / Body.h's In-based direct translation, the
// mode the worked end-to-end scenarios (§8) exercise. Simplifier rule 8
// later collapses In(z, primitive) to an equality. In ChooseMode the
// conjunct instead comes from chooseValueInTerm, which recurses into t
// itself rather than leaving it for the simplifier — grounded on
// ChooseValueInTerm.h, the construction examine-semantics-style property
// checks are built against.
func inArgs(args []source.Term, kind symbols.VariableKind, prefix string, mode TranslationMode, ctx *symbols.Context, sc *scope, ac *auxCounter) (values []ast.Term, auxVars []*symbols.VariableDeclaration, conjuncts []ast.Formula, err error) {
	values = make([]ast.Term, len(args))
	for i, a := range args {
		z := sc.fresh(kind, ac.next(prefix), symbols.Unknown)
		auxVars = append(auxVars, z)

		var conjunct ast.Formula
		if mode == ChooseMode {
			conjunct, err = chooseValueInTerm(a, z, ctx, sc, ac)
		} else {
			var set ast.Term
			set, err = translateTerm(a, ctx, sc)
			if err == nil {
				conjunct = &ast.In{Element: &ast.Variable{Declaration: z}, Set: set}
			}
		}
		if err != nil {
			return nil, nil, nil, err
		}
		conjuncts = append(conjuncts, conjunct)
		values[i] = &ast.Variable{Declaration: z}
	}
	return values, auxVars, conjuncts, nil
}

// translateAtom builds the formula for one body atom application: an In
// conjunct per argument plus the (sign-wrapped) predicate application,
// existentially closed over the fresh argument variables. Per §4.3 line 115
// the sign applies to the predicate application itself, inside the
// existential — `∃u (sign p(u) ∧ choose(t,u))`, not `sign ∃u (...)`.
func translateAtom(atom source.Atom, sign source.Sign, loc source.Location, ctx *symbols.Context, mode TranslationMode, sc *scope, ac *auxCounter) (ast.Formula, error) {
	decl := ctx.FindOrCreatePredicate(atom.Name, len(atom.Args))
	decl.IsUsed = true

	if len(atom.Args) == 0 {
		return applySign(sign, &ast.Predicate{Declaration: decl}, loc, true)
	}

	values, auxVars, conjuncts, err := inArgs(atom.Args, symbols.Body, "u", mode, ctx, sc, ac)
	if err != nil {
		return nil, err
	}

	predicate, err := applySign(sign, &ast.Predicate{Declaration: decl, Args: values}, loc, true)
	if err != nil {
		return nil, err
	}
	conjuncts = append(conjuncts, predicate)

	return &ast.Exists{Vars: auxVars, Argument: &ast.And{Args: conjuncts}}, nil
}

// translateHeadAtom chooses a value for every argument of a head atom
// without wrapping a Predicate around the result: the fresh head variables
// (returned as auxVars) are appended to the rule's free-variable footprint
// rather than bound locally (§4.3 line 117), since completion (package
// complete) equates them against the shared, predicate-level universally
// quantified head variables of the definition it builds.
func translateHeadAtom(atom source.Atom, ctx *symbols.Context, mode TranslationMode, sc *scope, ac *auxCounter) (decl *symbols.PredicateDeclaration, values []ast.Term, auxVars []*symbols.VariableDeclaration, conjuncts []ast.Formula, err error) {
	decl = ctx.FindOrCreatePredicate(atom.Name, len(atom.Args))
	decl.IsUsed = true
	values, auxVars, conjuncts, err = inArgs(atom.Args, symbols.Head, "v", mode, ctx, sc, ac)
	return decl, values, auxVars, conjuncts, err
}

// translateComparison builds left op right after relating each operand to
// its fresh variable, per §4.3's treatment of body comparisons — via In in
// DirectMode, via chooseValueInTerm's recursive decomposition in ChooseMode.
func translateComparison(op source.ComparisonOperator, left, right source.Term, loc source.Location, ctx *symbols.Context, mode TranslationMode, sc *scope, ac *auxCounter) (ast.Formula, error) {
	zl := sc.fresh(symbols.Body, ac.next("u"), symbols.Unknown)
	zr := sc.fresh(symbols.Body, ac.next("u"), symbols.Unknown)

	var relateLeft, relateRight ast.Formula
	var err error
	if mode == ChooseMode {
		relateLeft, err = chooseValueInTerm(left, zl, ctx, sc, ac)
		if err == nil {
			relateRight, err = chooseValueInTerm(right, zr, ctx, sc, ac)
		}
	} else {
		var leftTerm, rightTerm ast.Term
		leftTerm, err = translateTerm(left, ctx, sc)
		if err == nil {
			rightTerm, err = translateTerm(right, ctx, sc)
		}
		if err == nil {
			relateLeft = &ast.In{Element: &ast.Variable{Declaration: zl}, Set: leftTerm}
			relateRight = &ast.In{Element: &ast.Variable{Declaration: zr}, Set: rightTerm}
		}
	}
	if err != nil {
		return nil, err
	}

	cmp := &ast.Comparison{
		Op:    translateComparisonOp(op),
		Left:  &ast.Variable{Declaration: zl},
		Right: &ast.Variable{Declaration: zr},
	}

	return &ast.Exists{
		Vars:     []*symbols.VariableDeclaration{zl, zr},
		Argument: &ast.And{Args: []ast.Formula{relateLeft, relateRight, cmp}},
	}, nil
}

func translateComparisonOp(op source.ComparisonOperator) ast.ComparisonOp {
	switch op {
	case source.CmpGreater:
		return ast.GreaterThan
	case source.CmpLess:
		return ast.LessThan
	case source.CmpLessEqual:
		return ast.LessEqual
	case source.CmpGreaterEqual:
		return ast.GreaterEqual
	case source.CmpNotEqual:
		return ast.NotEqual
	default:
		return ast.Equal
	}
}

// applySign wraps f in the Not(s) that Sign dictates, rejecting double
// negation where the caller says it is not allowed (head literals).
func applySign(sign source.Sign, f ast.Formula, loc source.Location, allowDoubleNegation bool) (ast.Formula, error) {
	switch sign {
	case source.SignNone:
		return f, nil
	case source.SignNegation:
		return &ast.Not{Argument: f}, nil
	case source.SignDoubleNegation:
		if !allowDoubleNegation {
			return nil, errs.NewTranslationFailure(loc, "double negation is not supported in this position")
		}
		return &ast.Not{Argument: &ast.Not{Argument: f}}, nil
	default:
		return nil, errs.NewLogicFailure("unexpected sign %d", sign)
	}
}
