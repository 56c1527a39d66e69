package hidden

import (
	"testing"

	"github.com/potassco/anthem-go/ast"
	"github.com/potassco/anthem-go/symbols"
)

func TestEliminateSubstitutesIntoOtherDefinition(t *testing.T) {
	ctx := symbols.NewContext()
	ctx.DefaultVisibility = symbols.Hidden

	p := ctx.FindOrCreatePredicate("p", 1)
	q := ctx.FindOrCreatePredicate("q", 1)
	q.Visibility = symbols.Visible

	v := symbols.NewVariableDeclaration(symbols.Head, "V1", symbols.Unknown)
	pDef := &ast.ForAll{
		Vars: []*symbols.VariableDeclaration{v},
		Argument: &ast.Biconditional{
			Left:  &ast.Predicate{Declaration: p, Args: []ast.Term{&ast.Variable{Declaration: v}}},
			Right: &ast.Comparison{Op: ast.Equal, Left: &ast.Variable{Declaration: v}, Right: &ast.Integer{Value: 1}},
		},
	}

	w := symbols.NewVariableDeclaration(symbols.Head, "V1", symbols.Unknown)
	qDef := &ast.ForAll{
		Vars: []*symbols.VariableDeclaration{w},
		Argument: &ast.Biconditional{
			Left:  &ast.Predicate{Declaration: q, Args: []ast.Term{&ast.Variable{Declaration: w}}},
			Right: &ast.Predicate{Declaration: p, Args: []ast.Term{&ast.Variable{Declaration: w}}},
		},
	}

	out, warnings, err := Eliminate([]ast.Formula{pDef, qDef}, ctx)
	if err != nil {
		t.Fatalf("Eliminate: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("Eliminate: unexpected warnings %v", warnings)
	}
	if len(out) != 1 {
		t.Fatalf("Eliminate: got %d formulas, want 1 (p's own definition dropped)", len(out))
	}

	want := &ast.ForAll{
		Vars: []*symbols.VariableDeclaration{w},
		Argument: &ast.Biconditional{
			Left:  &ast.Predicate{Declaration: q, Args: []ast.Term{&ast.Variable{Declaration: w}}},
			Right: &ast.Comparison{Op: ast.Equal, Left: &ast.Variable{Declaration: w}, Right: &ast.Integer{Value: 1}},
		},
	}
	if !ast.FormulaEquals(out[0], want) {
		t.Errorf("Eliminate: q's definition = %s, want %s", out[0], want)
	}
}

func TestEliminateSkipsCircularDefinition(t *testing.T) {
	ctx := symbols.NewContext()
	ctx.DefaultVisibility = symbols.Hidden

	p := ctx.FindOrCreatePredicate("p", 1)
	v := symbols.NewVariableDeclaration(symbols.Head, "V1", symbols.Unknown)
	pDef := &ast.ForAll{
		Vars: []*symbols.VariableDeclaration{v},
		Argument: &ast.Biconditional{
			Left:  &ast.Predicate{Declaration: p, Args: []ast.Term{&ast.Variable{Declaration: v}}},
			Right: &ast.Predicate{Declaration: p, Args: []ast.Term{&ast.Variable{Declaration: v}}},
		},
	}

	out, warnings, err := Eliminate([]ast.Formula{pDef}, ctx)
	if err != nil {
		t.Fatalf("Eliminate: %v", err)
	}
	if len(warnings) != 1 {
		t.Fatalf("Eliminate: got %d warnings, want 1 (circular definition)", len(warnings))
	}
	if len(out) != 1 || !ast.FormulaEquals(out[0], pDef) {
		t.Errorf("Eliminate: circular definition should be left untouched, got %s", out)
	}
}

func TestEliminateBareAtomPattern(t *testing.T) {
	ctx := symbols.NewContext()
	ctx.DefaultVisibility = symbols.Hidden

	p := ctx.FindOrCreatePredicate("p", 0)
	q := ctx.FindOrCreatePredicate("q", 0)
	q.Visibility = symbols.Visible

	pDef := &ast.Predicate{Declaration: p}
	qDef := &ast.Biconditional{Left: &ast.Predicate{Declaration: q}, Right: &ast.Predicate{Declaration: p}}

	out, _, err := Eliminate([]ast.Formula{pDef, qDef}, ctx)
	if err != nil {
		t.Fatalf("Eliminate: %v", err)
	}
	want := &ast.Biconditional{Left: &ast.Predicate{Declaration: q}, Right: ast.True()}
	if len(out) != 1 || !ast.FormulaEquals(out[0], want) {
		t.Errorf("Eliminate: got %s, want %s", out, want)
	}
}
