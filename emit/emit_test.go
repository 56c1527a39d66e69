package emit

import (
	"strings"
	"testing"

	"github.com/potassco/anthem-go/ast"
	"github.com/potassco/anthem-go/domain"
	"github.com/potassco/anthem-go/symbols"
)

func TestHumanReadableNormalMatchesDefaultString(t *testing.T) {
	decl := &symbols.PredicateDeclaration{Name: "p", Arity: 0}
	f := &ast.Not{Argument: &ast.Predicate{Declaration: decl}}

	got := HumanReadable(f, Normal)
	want := f.String()
	if got != want {
		t.Errorf("HumanReadable(Normal) = %q, want %q", got, want)
	}
}

func TestHumanReadableFullParenthesizesConnectives(t *testing.T) {
	declP := &symbols.PredicateDeclaration{Name: "p", Arity: 0}
	declQ := &symbols.PredicateDeclaration{Name: "q", Arity: 0}
	f := &ast.And{Args: []ast.Formula{
		&ast.Predicate{Declaration: declP},
		&ast.Predicate{Declaration: declQ},
	}}

	got := HumanReadable(f, Full)
	if !strings.Contains(got, "(p and q)") {
		t.Errorf("HumanReadable(Full) = %q, want it to contain \"(p and q)\"", got)
	}
}

func TestHumanReadableFullRendersArithmetic(t *testing.T) {
	v := symbols.NewVariableDeclaration(symbols.UserDefined, "X", symbols.Program)
	term := &ast.BinaryOperation{Op: ast.Add, Left: &ast.Variable{Declaration: v}, Right: &ast.Integer{Value: 1}}

	got := HumanReadableTerm(term, Full)
	if got != "(X + 1)" {
		t.Errorf("HumanReadableTerm(Full) = %q, want \"(X + 1)\"", got)
	}
}

func TestTPTPRendersForAllAndBiconditional(t *testing.T) {
	v := symbols.NewVariableDeclaration(symbols.UserDefined, "N", symbols.Program)
	declP := &symbols.PredicateDeclaration{Name: "p", Arity: 1}
	declQ := &symbols.PredicateDeclaration{Name: "q", Arity: 1}
	f := &ast.ForAll{
		Vars: []*symbols.VariableDeclaration{v},
		Argument: &ast.Biconditional{
			Left:  &ast.Predicate{Declaration: declP, Args: []ast.Term{&ast.Variable{Declaration: v}}},
			Right: &ast.Predicate{Declaration: declQ, Args: []ast.Term{&ast.Variable{Declaration: v}}},
		},
	}

	got := TPTP("p_definition", Axiom, f)
	want := "tff(p_definition, axiom, ! [N] : (p(N) <=> q(N)))."
	if got != want {
		t.Errorf("TPTP = %q, want %q", got, want)
	}
}

func TestTPTPLowercasesVariableGetsUppercased(t *testing.T) {
	v := symbols.NewVariableDeclaration(symbols.Body, "u1", symbols.Unknown)
	declP := &symbols.PredicateDeclaration{Name: "p", Arity: 1}
	f := &ast.Exists{
		Vars:     []*symbols.VariableDeclaration{v},
		Argument: &ast.Predicate{Declaration: declP, Args: []ast.Term{&ast.Variable{Declaration: v}}},
	}

	got := TPTP("goal", Conjecture, f)
	if !strings.Contains(got, "? [U1] : p(U1)") {
		t.Errorf("TPTP = %q, want it to contain \"? [U1] : p(U1)\" (lower-case aux variable upper-cased for TPTP)", got)
	}
}

func TestPreambleDeclaresEachUninterpretedSymbol(t *testing.T) {
	ctx := symbols.NewContext()
	s := domain.NewSymbols(ctx)

	lines := Preamble(s)
	joined := strings.Join(lines, "\n")
	for _, name := range []string{"f__integer__", "f__sum__", "p__less__", "p__is_integer__"} {
		if !strings.Contains(joined, name) {
			t.Errorf("Preamble: expected a declaration mentioning %q, got:\n%s", name, joined)
		}
	}
}
