package complete

import (
	"testing"

	"github.com/potassco/anthem-go/ast"
	"github.com/potassco/anthem-go/source"
	"github.com/potassco/anthem-go/symbols"
	"github.com/potassco/anthem-go/translate"
)

func TestCompleteBuildsBiconditionalForDefinedPredicate(t *testing.T) {
	ctx := symbols.NewContext()
	tr := translate.NewTranslator(ctx)

	x := &source.Variable{Name: "X"}
	r := source.Rule{
		Head: source.HeadLiteral{Kind: source.HeadLiteralAtom, Literal: source.Atom{Name: "p", Args: []source.Term{x}}},
		Body: []source.BodyLiteral{
			{Kind: source.BodyAtom, Atom: source.Atom{Name: "q", Args: []source.Term{x}}},
		},
	}
	rule, err := tr.TranslateRule(r)
	if err != nil {
		t.Fatalf("TranslateRule: %v", err)
	}

	out, err := Complete([]*translate.TranslatedRule{rule}, ctx)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	var foundP, foundQ bool
	for _, f := range out {
		forall, ok := f.(*ast.ForAll)
		if !ok || len(forall.Vars) != 1 {
			continue
		}
		bicond, ok := forall.Argument.(*ast.Biconditional)
		if !ok {
			continue
		}
		pred, ok := bicond.Left.(*ast.Predicate)
		if !ok {
			continue
		}
		switch pred.Declaration.Name {
		case "p":
			foundP = true
		}
		_ = bicond
		if pred.Declaration.Name == "q" {
			foundQ = true
		}
	}
	if !foundP {
		t.Errorf("Complete: no biconditional definition found for p, got %v", out)
	}
	// q has no defining rule of its own — it completes negatively, not via a
	// biconditional, so it must not appear as foundQ here.
	if foundQ {
		t.Errorf("Complete: q should complete negatively (no defining rule), not via a biconditional")
	}
}

func TestCompleteUndefinedPredicateCompletesNegatively(t *testing.T) {
	ctx := symbols.NewContext()
	tr := translate.NewTranslator(ctx)

	r := source.Rule{
		Head: source.HeadLiteral{Kind: source.HeadLiteralAtom, Literal: source.Atom{Name: "p"}},
		Body: []source.BodyLiteral{
			{Kind: source.BodyAtom, Atom: source.Atom{Name: "q"}},
		},
	}
	rule, err := tr.TranslateRule(r)
	if err != nil {
		t.Fatalf("TranslateRule: %v", err)
	}

	out, err := Complete([]*translate.TranslatedRule{rule}, ctx)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	var foundNegQ bool
	for _, f := range out {
		not, ok := f.(*ast.Not)
		if !ok {
			continue
		}
		pred, ok := not.Argument.(*ast.Predicate)
		if ok && pred.Declaration.Name == "q" {
			foundNegQ = true
		}
	}
	if !foundNegQ {
		t.Errorf("Complete: expected ¬q() among the output for undefined 0-ary q, got %v", out)
	}
}

func TestCompleteIntegrityConstraintBecomesForAllNot(t *testing.T) {
	ctx := symbols.NewContext()
	tr := translate.NewTranslator(ctx)

	r := source.Rule{
		Head: source.HeadLiteral{Empty: true},
		Body: []source.BodyLiteral{
			{Kind: source.BodyAtom, Atom: source.Atom{Name: "q"}},
		},
	}
	rule, err := tr.TranslateRule(r)
	if err != nil {
		t.Fatalf("TranslateRule: %v", err)
	}

	out, err := Complete([]*translate.TranslatedRule{rule}, ctx)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	var foundConstraint bool
	for _, f := range out {
		if _, ok := f.(*ast.Not); ok {
			foundConstraint = true
		}
	}
	if !foundConstraint {
		t.Errorf("Complete: integrity constraint should contribute a negated body formula, got %v", out)
	}
}
