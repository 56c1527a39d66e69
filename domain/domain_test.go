package domain

import (
	"testing"

	"github.com/potassco/anthem-go/ast"
	"github.com/potassco/anthem-go/symbols"
)

func TestUnifyWrapsIntegerLiteralsAndRewritesComparison(t *testing.T) {
	ctx := symbols.NewContext()
	s := NewSymbols(ctx)

	f := &ast.Comparison{Op: ast.LessThan, Left: &ast.Integer{Value: 1}, Right: &ast.Integer{Value: 2}}
	got := s.Unify(f)

	want := &ast.Predicate{
		Declaration: s.Less,
		Args: []ast.Term{
			&ast.Function{Declaration: s.Integer, Args: []ast.Term{&ast.Integer{Value: 1}}},
			&ast.Function{Declaration: s.Integer, Args: []ast.Term{&ast.Integer{Value: 2}}},
		},
	}
	if !ast.FormulaEquals(got, want) {
		t.Errorf("Unify(1 < 2) = %s, want %s", got, want)
	}
}

func TestUnifyGuardsExistsOverIntegerVariable(t *testing.T) {
	ctx := symbols.NewContext()
	s := NewSymbols(ctx)

	v := symbols.NewVariableDeclaration(symbols.Head, "N1", symbols.Integer)
	f := &ast.Exists{
		Vars:     []*symbols.VariableDeclaration{v},
		Argument: &ast.Predicate{Declaration: ctx.FindOrCreatePredicate("p", 1), Args: []ast.Term{&ast.Variable{Declaration: v}}},
	}
	got := s.Unify(f)

	gotExists, ok := got.(*ast.Exists)
	if !ok {
		t.Fatalf("Unify: got %T, want *ast.Exists", got)
	}
	and, ok := gotExists.Argument.(*ast.And)
	if !ok || len(and.Args) != 2 {
		t.Fatalf("Unify: guarded argument = %s, want And{is_integer(N1), p(N1)}", gotExists.Argument)
	}
	guard, ok := and.Args[0].(*ast.Predicate)
	if !ok || guard.Declaration != s.IsInteger {
		t.Errorf("Unify: first conjunct = %s, want is_integer(N1)", and.Args[0])
	}
	if v.Sort != symbols.Union {
		t.Errorf("Unify: N1.Sort = %s, want union (unified)", v.Sort)
	}
}

func TestUnifyForAllGuardUsesImplies(t *testing.T) {
	ctx := symbols.NewContext()
	s := NewSymbols(ctx)

	v := symbols.NewVariableDeclaration(symbols.Head, "N1", symbols.Integer)
	f := &ast.ForAll{
		Vars:     []*symbols.VariableDeclaration{v},
		Argument: &ast.Predicate{Declaration: ctx.FindOrCreatePredicate("p", 1), Args: []ast.Term{&ast.Variable{Declaration: v}}},
	}
	got := s.Unify(f)

	gotForAll, ok := got.(*ast.ForAll)
	if !ok {
		t.Fatalf("Unify: got %T, want *ast.ForAll", got)
	}
	if _, ok := gotForAll.Argument.(*ast.Implies); !ok {
		t.Errorf("Unify: guarded argument = %s, want Implies(is_integer(N1), p(N1))", gotForAll.Argument)
	}
}

func TestUnifyIntervalMembershipBecomesBoundedConjunction(t *testing.T) {
	ctx := symbols.NewContext()
	s := NewSymbols(ctx)

	in := &ast.In{Element: &ast.Integer{Value: 3}, Set: &ast.Interval{From: &ast.Integer{Value: 1}, To: &ast.Integer{Value: 5}}}
	got := s.Unify(in)

	and, ok := got.(*ast.And)
	if !ok || len(and.Args) != 2 {
		t.Fatalf("Unify(3 in 1..5) = %s, want a two-conjunct And", got)
	}
	lower, ok := and.Args[0].(*ast.Predicate)
	if !ok || lower.Declaration != s.GreaterEqual {
		t.Errorf("Unify: first conjunct = %s, want p__greater_equal__(3, 1)", and.Args[0])
	}
	upper, ok := and.Args[1].(*ast.Predicate)
	if !ok || upper.Declaration != s.LessEqual {
		t.Errorf("Unify: second conjunct = %s, want p__less_equal__(3, 5)", and.Args[1])
	}
}

func TestUnifyNonIntegerVariableIsNotWrapped(t *testing.T) {
	ctx := symbols.NewContext()
	s := NewSymbols(ctx)

	v := symbols.NewVariableDeclaration(symbols.Head, "X1", symbols.Symbolic)
	got := s.rewriteTerm(&ast.Variable{Declaration: v})
	if !ast.TermEquals(got, &ast.Variable{Declaration: v}) {
		t.Errorf("rewriteTerm(X1) = %s, want X1 unwrapped (not integer-sorted)", got)
	}
}

func TestMapDoublesIntegerLiterals(t *testing.T) {
	m := NewMapping()
	got := m.Map(&ast.Comparison{Op: ast.Equal, Left: &ast.Integer{Value: 3}, Right: &ast.Integer{Value: 3}})
	want := &ast.Comparison{Op: ast.Equal, Left: &ast.Integer{Value: 6}, Right: &ast.Integer{Value: 6}}
	if !ast.FormulaEquals(got, want) {
		t.Errorf("Map(3 = 3) = %s, want %s", got, want)
	}
}

func TestMapAssignsStableOddCodesToSymbolicConstants(t *testing.T) {
	ctx := symbols.NewContext()
	a := ctx.FindOrCreateFunction("a", 0)
	b := ctx.FindOrCreateFunction("b", 0)

	m := NewMapping()
	f := &ast.Comparison{Op: ast.NotEqual, Left: &ast.Function{Declaration: a}, Right: &ast.Function{Declaration: b}}
	got1 := m.Map(f).(*ast.Comparison)

	// Re-encoding the same constant later must reuse its earlier code.
	again := m.Map(&ast.Comparison{Op: ast.Equal, Left: &ast.Function{Declaration: a}, Right: &ast.Integer{Value: 0}}).(*ast.Comparison)

	left, ok := got1.Left.(*ast.Integer)
	if !ok || left.Value%2 != 1 {
		t.Fatalf("Map: a's code = %v, want an odd integer", got1.Left)
	}
	repeat, ok := again.Left.(*ast.Integer)
	if !ok || repeat.Value != left.Value {
		t.Errorf("Map: a's code changed between calls: %v then %v", left.Value, again.Left)
	}
	right, ok := got1.Right.(*ast.Integer)
	if !ok || right.Value == left.Value {
		t.Errorf("Map: a and b must receive distinct codes, both got %v", left.Value)
	}
}
