package driver

import (
	"testing"

	"github.com/potassco/anthem-go/ast"
	"github.com/potassco/anthem-go/source"
	"github.com/potassco/anthem-go/symbols"
	"github.com/potassco/anthem-go/translate"
)

func num(n int64) *source.Symbol { return &source.Symbol{Kind: source.SymbolNumber, Number: n} }

func atomRule(head string, body ...string) source.Rule {
	bl := make([]source.BodyLiteral, len(body))
	for i, b := range body {
		bl[i] = source.BodyLiteral{Kind: source.BodyAtom, Atom: source.Atom{Name: b}}
	}
	return source.Rule{
		Head: source.HeadLiteral{Kind: source.HeadLiteralAtom, Literal: source.Atom{Name: head}},
		Body: bl,
	}
}

func TestPipelineRunWithCompletionOnly(t *testing.T) {
	ctx := symbols.NewContext()
	p := New(ctx, Options{Complete: true})

	if err := p.VisitRule(atomRule("p", "q")); err != nil {
		t.Fatalf("VisitRule: %v", err)
	}

	formulas, semantics, err := p.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(formulas) == 0 {
		t.Fatal("Run: expected at least one completed formula")
	}
	if semantics != translate.ClassicalLogic {
		t.Errorf("Semantics = %v, want ClassicalLogic (no negation/choice present)", semantics)
	}
}

func TestPipelineWithoutCompletionReturnsScopedImplication(t *testing.T) {
	ctx := symbols.NewContext()
	p := New(ctx, Options{})

	if err := p.VisitRule(atomRule("p", "q")); err != nil {
		t.Fatalf("VisitRule: %v", err)
	}

	formulas, _, err := p.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(formulas) != 1 {
		t.Fatalf("Run: got %d formulas, want 1 (one rule's scoped implication)", len(formulas))
	}
	if _, ok := formulas[0].(*ast.Implies); !ok {
		t.Errorf("Run: formula = %T, want *ast.Implies (body -> head, no completion closure)", formulas[0])
	}
}

// A rule that fails to translate (here: a power-operator head argument,
// rejected per translate/rule_test.go's TestTranslateRulePowerIsRejected)
// must not stop a good rule elsewhere in the same file from being
// translated, and Run must surface the accumulated error only once every
// rule has been attempted.
func TestPipelineAccumulatesRuleErrorsAcrossFile(t *testing.T) {
	ctx := symbols.NewContext()
	p := New(ctx, Options{})

	bad := source.Rule{
		Head: source.HeadLiteral{Kind: source.HeadLiteralAtom, Literal: source.Atom{Name: "bad", Args: []source.Term{
			&source.BinaryOperation{Operator: source.OpPow, Left: num(1), Right: num(2)},
		}}},
	}
	if err := p.VisitRule(bad); err != nil {
		t.Fatalf("VisitRule: got %v, want nil (error must be accumulated, not returned)", err)
	}
	if err := p.VisitRule(atomRule("p", "q")); err != nil {
		t.Fatalf("VisitRule: %v", err)
	}
	if len(p.rules) != 1 {
		t.Fatalf("rules accumulated = %d, want 1 (the good rule, despite the earlier failure)", len(p.rules))
	}

	if _, _, err := p.Run(); err == nil {
		t.Fatal("Run: expected the accumulated translation failure, got nil")
	}
}

func TestPipelineNegationDowngradesSemanticsAndWarns(t *testing.T) {
	ctx := symbols.NewContext()
	p := New(ctx, Options{Complete: true})

	r := source.Rule{
		Head: source.HeadLiteral{Kind: source.HeadLiteralAtom, Literal: source.Atom{Name: "p"}},
		Body: []source.BodyLiteral{
			{Kind: source.BodyAtom, Sign: source.SignNegation, Atom: source.Atom{Name: "q"}},
		},
	}
	if err := p.VisitRule(r); err != nil {
		t.Fatalf("VisitRule: %v", err)
	}

	_, semantics, err := p.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if semantics != translate.LogicOfHereAndThere {
		t.Errorf("Semantics = %v, want LogicOfHereAndThere", semantics)
	}
	if len(p.Warnings()) == 0 {
		t.Error("Warnings: expected a semantics-downgrade warning, got none")
	}
}

func TestPipelineShowDirectiveHidesUnshownPredicate(t *testing.T) {
	ctx := symbols.NewContext()
	p := New(ctx, Options{Complete: true, Hidden: true})

	if err := p.VisitShowSignature(source.ShowSignature{Name: "p", Arity: 0}); err != nil {
		t.Fatalf("VisitShowSignature: %v", err)
	}
	if err := p.VisitRule(atomRule("p", "q")); err != nil {
		t.Fatalf("VisitRule: %v", err)
	}
	if err := p.VisitRule(atomRule("q")); err != nil {
		t.Fatalf("VisitRule: %v", err)
	}

	formulas, _, err := p.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	for _, f := range formulas {
		if containsPredicateNamed(f, "q") {
			t.Errorf("Run: q should have been eliminated as hidden, found in %s", f)
		}
	}
}

func TestPipelineDomainUnifyWrapsIntegerComparison(t *testing.T) {
	ctx := symbols.NewContext()
	p := New(ctx, Options{Complete: true, Simplify: true, Domain: UnifyDomainPass})

	x := &source.Variable{Name: "X"}
	r := source.Rule{
		Head: source.HeadLiteral{Kind: source.HeadLiteralAtom, Literal: source.Atom{Name: "p", Args: []source.Term{x}}},
		Body: []source.BodyLiteral{
			{Kind: source.BodyComparison, ComparisonOp: source.CmpLess, Left: x, Right: num(5)},
		},
	}
	if err := p.VisitRule(r); err != nil {
		t.Fatalf("VisitRule: %v", err)
	}

	if _, _, err := p.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestVerifyPropertyBuildsBiconditional(t *testing.T) {
	decl := &symbols.PredicateDeclaration{Name: "p", Arity: 0}
	program := []ast.Formula{&ast.Predicate{Declaration: decl}}
	property := ast.True()

	goal := VerifyProperty(program, property)
	bicond, ok := goal.(*ast.Biconditional)
	if !ok {
		t.Fatalf("VerifyProperty = %T, want *ast.Biconditional", goal)
	}
	if bicond.Right != property {
		t.Errorf("VerifyProperty: Right = %v, want the property formula unchanged", bicond.Right)
	}
}

func TestStrongEquivalenceGoalConjoinsBothSides(t *testing.T) {
	declA := &symbols.PredicateDeclaration{Name: "a", Arity: 0}
	declB := &symbols.PredicateDeclaration{Name: "b", Arity: 0}
	aFormulas := []ast.Formula{&ast.Predicate{Declaration: declA}}
	bFormulas := []ast.Formula{&ast.Predicate{Declaration: declB}}

	goal := StrongEquivalenceGoal(aFormulas, bFormulas)
	bicond, ok := goal.(*ast.Biconditional)
	if !ok {
		t.Fatalf("StrongEquivalenceGoal = %T, want *ast.Biconditional", goal)
	}
	if bicond.Left != aFormulas[0] || bicond.Right != bFormulas[0] {
		t.Errorf("StrongEquivalenceGoal: sides not preserved, got %v", bicond)
	}
}

func containsPredicateNamed(f ast.Formula, name string) bool {
	found := false
	visitFormula(f, func(pred *ast.Predicate) {
		if pred.Declaration.Name == name {
			found = true
		}
	})
	return found
}

// visitFormula is a tiny ad hoc pre-order walk local to this test file; it
// deliberately does not reuse package visit to keep the test independent of
// that package's traversal contract.
func visitFormula(f ast.Formula, fn func(*ast.Predicate)) {
	switch x := f.(type) {
	case *ast.Predicate:
		fn(x)
	case *ast.Not:
		visitFormula(x.Argument, fn)
	case *ast.And:
		for _, a := range x.Args {
			visitFormula(a, fn)
		}
	case *ast.Or:
		for _, a := range x.Args {
			visitFormula(a, fn)
		}
	case *ast.Implies:
		visitFormula(x.Antecedent, fn)
		visitFormula(x.Consequent, fn)
	case *ast.Biconditional:
		visitFormula(x.Left, fn)
		visitFormula(x.Right, fn)
	case *ast.Exists:
		visitFormula(x.Argument, fn)
	case *ast.ForAll:
		visitFormula(x.Argument, fn)
	}
}
