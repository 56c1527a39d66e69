package simplify

import (
	"testing"

	"github.com/potassco/anthem-go/ast"
	"github.com/potassco/anthem-go/symbols"
)

func v(kind symbols.VariableKind, name string, sort symbols.Sort) *symbols.VariableDeclaration {
	return symbols.NewVariableDeclaration(kind, name, sort)
}

func TestRule1DoubleNegation(t *testing.T) {
	p := &ast.Predicate{Declaration: &symbols.PredicateDeclaration{Name: "p"}}
	got := Simplify(&ast.Not{Argument: &ast.Not{Argument: p}})
	if !ast.FormulaEquals(got, p) {
		t.Errorf("Simplify(not not p) = %s, want p", got)
	}
}

func TestRule2EliminatesEqualityBoundVariable(t *testing.T) {
	x := v(symbols.Body, "U1", symbols.Unknown)
	n := v(symbols.UserDefined, "N1", symbols.Unknown)
	p := &symbols.PredicateDeclaration{Name: "p", Arity: 1}

	f := &ast.Exists{
		Vars: []*symbols.VariableDeclaration{x},
		Argument: &ast.And{Args: []ast.Formula{
			&ast.Comparison{Op: ast.Equal, Left: &ast.Variable{Declaration: x}, Right: &ast.Variable{Declaration: n}},
			&ast.Predicate{Declaration: p, Args: []ast.Term{&ast.Variable{Declaration: x}}},
		}},
	}

	want := &ast.Predicate{Declaration: p, Args: []ast.Term{&ast.Variable{Declaration: n}}}
	got := Simplify(f)
	if !ast.FormulaEquals(got, want) {
		t.Errorf("Simplify(exists U1(U1=N1 and p(U1))) = %s, want %s", got, want)
	}
}

func TestRule3BareEquality(t *testing.T) {
	x := v(symbols.Body, "U1", symbols.Unknown)
	n := v(symbols.UserDefined, "N1", symbols.Unknown)
	f := &ast.Exists{
		Vars:     []*symbols.VariableDeclaration{x},
		Argument: &ast.Comparison{Op: ast.Equal, Left: &ast.Variable{Declaration: x}, Right: &ast.Variable{Declaration: n}},
	}
	got := Simplify(f)
	if !ast.FormulaEquals(got, ast.True()) {
		t.Errorf("Simplify(exists U1(U1=N1)) = %s, want #true", got)
	}
}

func TestRule8PrimitiveIn(t *testing.T) {
	x := v(symbols.Head, "V1", symbols.Unknown)
	n := v(symbols.UserDefined, "N1", symbols.Unknown)
	in := &ast.In{Element: &ast.Variable{Declaration: x}, Set: &ast.Variable{Declaration: n}}
	want := &ast.Comparison{Op: ast.Equal, Left: &ast.Variable{Declaration: x}, Right: &ast.Variable{Declaration: n}}
	got := Simplify(in)
	if !ast.FormulaEquals(got, want) {
		t.Errorf("Simplify(V1 in N1) = %s, want %s", got, want)
	}
}

func TestRule8DoesNotCollapseInterval(t *testing.T) {
	x := v(symbols.Head, "V1", symbols.Unknown)
	in := &ast.In{
		Element: &ast.Variable{Declaration: x},
		Set:     &ast.Interval{From: &ast.Integer{Value: 1}, To: &ast.Integer{Value: 5}},
	}
	got := Simplify(in)
	if !ast.FormulaEquals(got, in) {
		t.Errorf("Simplify(V1 in (1..5)) = %s, want unchanged", got)
	}
}

func TestRule13IntegerArithmeticCollapses(t *testing.T) {
	x := v(symbols.Body, "U1", symbols.Integer)
	n := v(symbols.UserDefined, "N1", symbols.Integer)
	in := &ast.In{
		Element: &ast.Variable{Declaration: x},
		Set:     &ast.BinaryOperation{Op: ast.Add, Left: &ast.Variable{Declaration: n}, Right: &ast.Integer{Value: 1}},
	}
	want := &ast.Comparison{Op: ast.Equal, Left: in.Element, Right: in.Set}
	got := Simplify(in)
	if !ast.FormulaEquals(got, want) {
		t.Errorf("Simplify(U1 in N1+1) = %s, want %s", got, want)
	}
}

func TestRule13DoesNotCollapseWhenSortUnknown(t *testing.T) {
	x := v(symbols.Body, "U1", symbols.Unknown)
	n := v(symbols.UserDefined, "N1", symbols.Unknown)
	in := &ast.In{
		Element: &ast.Variable{Declaration: x},
		Set:     &ast.BinaryOperation{Op: ast.Add, Left: &ast.Variable{Declaration: n}, Right: &ast.Integer{Value: 1}},
	}
	got := Simplify(in)
	if !ast.FormulaEquals(got, in) {
		t.Errorf("Simplify(U1 in N1+1) with unsorted operands = %s, want unchanged (rule 8/13 both inapplicable)", got)
	}
}

func TestRule9BiconditionalSubsumption(t *testing.T) {
	p := &ast.Predicate{Declaration: &symbols.PredicateDeclaration{Name: "p"}}
	q := &ast.Predicate{Declaration: &symbols.PredicateDeclaration{Name: "q"}}
	f := &ast.Biconditional{Left: p, Right: &ast.And{Args: []ast.Formula{p, q}}}
	want := &ast.Implies{Antecedent: p, Consequent: q}
	got := Simplify(f)
	if !ast.FormulaEquals(got, want) {
		t.Errorf("Simplify(p <-> (p and q)) = %s, want %s", got, want)
	}
}

func TestRule10DeMorgan(t *testing.T) {
	p := &ast.Predicate{Declaration: &symbols.PredicateDeclaration{Name: "p"}}
	q := &ast.Predicate{Declaration: &symbols.PredicateDeclaration{Name: "q"}}
	f := &ast.Not{Argument: &ast.And{Args: []ast.Formula{p, q}}}
	// Rule 10 yields (not p or not q); the fixed-point loop then applies
	// rule 11 to that binary Or, giving (p -> not q).
	want := &ast.Implies{Antecedent: p, Consequent: &ast.Not{Argument: q}}
	got := Simplify(f)
	if !ast.FormulaEquals(got, want) {
		t.Errorf("Simplify(not(p and q)) = %s, want %s", got, want)
	}
}

func TestRule11OrToImplies(t *testing.T) {
	p := &ast.Predicate{Declaration: &symbols.PredicateDeclaration{Name: "p"}}
	q := &ast.Predicate{Declaration: &symbols.PredicateDeclaration{Name: "q"}}
	f := &ast.Or{Args: []ast.Formula{&ast.Not{Argument: p}, q}}
	want := &ast.Implies{Antecedent: p, Consequent: q}
	got := Simplify(f)
	if !ast.FormulaEquals(got, want) {
		t.Errorf("Simplify(not p or q) = %s, want %s", got, want)
	}
}

func TestRule12ComplementComparison(t *testing.T) {
	n := v(symbols.UserDefined, "N1", symbols.Unknown)
	f := &ast.Not{Argument: &ast.Comparison{Op: ast.LessThan, Left: &ast.Variable{Declaration: n}, Right: &ast.Integer{Value: 0}}}
	want := &ast.Comparison{Op: ast.GreaterEqual, Left: &ast.Variable{Declaration: n}, Right: &ast.Integer{Value: 0}}
	got := Simplify(f)
	if !ast.FormulaEquals(got, want) {
		t.Errorf("Simplify(not(N1<0)) = %s, want %s", got, want)
	}
}

// scenario5 mirrors the worked example `p(X):-X=1..5.` translated, completed
// and simplified with integer detection on: the head variable's choice
// formula stays an interval membership rather than collapsing, because an
// interval is never unit-sized.
func TestScenario5IntervalSurvivesSimplification(t *testing.T) {
	n := v(symbols.Head, "N1", symbols.Integer)
	p := &symbols.PredicateDeclaration{Name: "p", Arity: 1}
	f := &ast.ForAll{
		Vars: []*symbols.VariableDeclaration{n},
		Argument: &ast.Biconditional{
			Left: &ast.Predicate{Declaration: p, Args: []ast.Term{&ast.Variable{Declaration: n}}},
			Right: &ast.In{
				Element: &ast.Variable{Declaration: n},
				Set:     &ast.Interval{From: &ast.Integer{Value: 1}, To: &ast.Integer{Value: 5}},
			},
		},
	}
	got := Simplify(f)
	if !ast.FormulaEquals(got, f) {
		t.Errorf("Simplify(scenario 5) = %s, want unchanged (interval kept intact)", got)
	}
}

func TestFixedPointCascade(t *testing.T) {
	// exists U1 () collapses in one descending pass: rule 4 turns the empty
	// conjunction into #true on the way up, and rule 5 then immediately
	// collapses the now-trivial existential into #true too.
	x := v(symbols.Body, "U1", symbols.Unknown)
	f := &ast.Exists{Vars: []*symbols.VariableDeclaration{x}, Argument: &ast.And{}}
	got := Simplify(f)
	if !ast.FormulaEquals(got, ast.True()) {
		t.Errorf("Simplify(exists U1 ()) = %s, want #true", got)
	}
}
