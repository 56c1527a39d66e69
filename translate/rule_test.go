package translate

import (
	"testing"

	"github.com/potassco/anthem-go/ast"
	"github.com/potassco/anthem-go/source"
	"github.com/potassco/anthem-go/symbols"
)

// num builds a literal integer source term.
func num(n int64) *source.Symbol { return &source.Symbol{Kind: source.SymbolNumber, Number: n} }

func sum(left, right source.Term) *source.BinaryOperation {
	return &source.BinaryOperation{Operator: source.OpAdd, Left: left, Right: right}
}

// p(X+1) :- q(X). — exercises a compound head argument under both modes.
func sampleRule() source.Rule {
	x := &source.Variable{Name: "X"}
	return source.Rule{
		Head: source.HeadLiteral{Kind: source.HeadLiteralAtom, Literal: source.Atom{Name: "p", Args: []source.Term{sum(x, num(1))}}},
		Body: []source.BodyLiteral{
			{Kind: source.BodyAtom, Atom: source.Atom{Name: "q", Args: []source.Term{x}}},
		},
	}
}

func TestTranslateRuleDirectModeUsesIn(t *testing.T) {
	ctx := symbols.NewContext()
	tr := NewTranslator(ctx)

	out, err := tr.TranslateRule(sampleRule())
	if err != nil {
		t.Fatalf("TranslateRule: %v", err)
	}
	if len(out.Head.Conjuncts) != 1 {
		t.Fatalf("Head.Conjuncts = %d, want 1", len(out.Head.Conjuncts))
	}
	if _, ok := out.Head.Conjuncts[0].(*ast.In); !ok {
		t.Errorf("DirectMode head conjunct = %T, want *ast.In", out.Head.Conjuncts[0])
	}
}

func TestTranslateRuleChooseModeDecomposesCompoundArgument(t *testing.T) {
	ctx := symbols.NewContext()
	tr := NewTranslator(ctx)
	tr.Mode = ChooseMode

	out, err := tr.TranslateRule(sampleRule())
	if err != nil {
		t.Fatalf("TranslateRule: %v", err)
	}
	if len(out.Head.Conjuncts) != 1 {
		t.Fatalf("Head.Conjuncts = %d, want 1", len(out.Head.Conjuncts))
	}
	// choose-value-in-term's plus-minus-mul rule wraps X+1's decomposition in
	// its own Exists binding the two auxiliaries it introduces.
	exists, ok := out.Head.Conjuncts[0].(*ast.Exists)
	if !ok {
		t.Fatalf("ChooseMode head conjunct = %T, want *ast.Exists (choose-value's own binder)", out.Head.Conjuncts[0])
	}
	if len(exists.Vars) != 2 {
		t.Errorf("ChooseMode exists binds %d variables, want 2 (the two arithmetic auxiliaries)", len(exists.Vars))
	}
	and, ok := exists.Argument.(*ast.And)
	if !ok || len(and.Args) != 3 {
		t.Fatalf("ChooseMode exists argument = %s, want a 3-conjunct And (equation, choose-left, choose-right)", exists.Argument)
	}
	if _, ok := and.Args[0].(*ast.Comparison); !ok {
		t.Errorf("ChooseMode first conjunct = %T, want *ast.Comparison (target = u1 + u2)", and.Args[0])
	}
}

func TestTranslateRuleIntegrityConstraint(t *testing.T) {
	ctx := symbols.NewContext()
	tr := NewTranslator(ctx)

	r := source.Rule{
		Head: source.HeadLiteral{Empty: true},
		Body: []source.BodyLiteral{
			{Kind: source.BodyAtom, Atom: source.Atom{Name: "q", Args: nil}},
		},
	}
	out, err := tr.TranslateRule(r)
	if err != nil {
		t.Fatalf("TranslateRule: %v", err)
	}
	if out.Kind != HeadIntegrityConstraint {
		t.Errorf("Kind = %v, want HeadIntegrityConstraint", out.Kind)
	}
}

func TestTranslateBodyNegationDowngradesSemantics(t *testing.T) {
	ctx := symbols.NewContext()
	tr := NewTranslator(ctx)

	r := source.Rule{
		Head: source.HeadLiteral{Kind: source.HeadLiteralAtom, Literal: source.Atom{Name: "p"}},
		Body: []source.BodyLiteral{
			{Kind: source.BodyAtom, Sign: source.SignNegation, Atom: source.Atom{Name: "q"}},
		},
	}
	if _, err := tr.TranslateRule(r); err != nil {
		t.Fatalf("TranslateRule: %v", err)
	}
	if tr.Semantics != LogicOfHereAndThere {
		t.Errorf("Semantics = %v, want logic of here-and-there after a negated body literal", tr.Semantics)
	}
}

// {p(a)}. — a choice rule raises Semantics to the logic of here-and-there
// even with no negation anywhere in the program, matching Head.h's
// HeadLiteralTranslateToConsequentVisitor aggregate-head handling.
func TestTranslateChoiceHeadDowngradesSemantics(t *testing.T) {
	ctx := symbols.NewContext()
	tr := NewTranslator(ctx)

	r := source.Rule{
		Head: source.HeadLiteral{Kind: source.HeadAggregate, Aggregate: source.Aggregate{
			Elements: []source.AggregateElement{{
				Terms: []source.Term{&source.Function{Name: "p", Args: []source.Term{num(1)}}},
			}},
		}},
	}
	if _, err := tr.TranslateRule(r); err != nil {
		t.Fatalf("TranslateRule: %v", err)
	}
	if tr.Semantics != LogicOfHereAndThere {
		t.Errorf("Semantics = %v, want logic of here-and-there after a choice-rule head", tr.Semantics)
	}
}

func TestTranslateRulePowerIsRejected(t *testing.T) {
	ctx := symbols.NewContext()
	tr := NewTranslator(ctx)

	x := &source.Variable{Name: "X"}
	r := source.Rule{
		Head: source.HeadLiteral{Kind: source.HeadLiteralAtom, Literal: source.Atom{Name: "p", Args: []source.Term{
			&source.BinaryOperation{Operator: source.OpPow, Left: x, Right: num(2)},
		}}},
	}
	if _, err := tr.TranslateRule(r); err == nil {
		t.Error("TranslateRule: power operator should fail translation, got nil error")
	}
}
