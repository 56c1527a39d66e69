package parse

import (
	"strings"
	"testing"

	"github.com/potassco/anthem-go/driver"
	"github.com/potassco/anthem-go/symbols"
)

func runDriver(t *testing.T, text string, opts driver.Options) []string {
	t.Helper()
	ctx := symbols.NewContext()
	p := driver.New(ctx, opts)
	if err := String("test.lp", text, p); err != nil {
		t.Fatalf("String: %v", err)
	}
	formulas, _, err := p.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	rendered := make([]string, len(formulas))
	for i, f := range formulas {
		rendered[i] = f.String()
	}
	return rendered
}

// §8 scenario 1: p(1..5). → (v1 in 1..5 -> p(v1))
func TestParseFactWithInterval(t *testing.T) {
	out := runDriver(t, "p(1..5).", driver.Options{})
	if len(out) != 1 {
		t.Fatalf("got %d formulas, want 1: %v", len(out), out)
	}
	if !strings.Contains(out[0], "in") || !strings.Contains(out[0], "1..5") {
		t.Errorf("formula = %q, want an In conjunct over the 1..5 interval", out[0])
	}
}

// §8 scenario 2: p(N+1) :- q(N).
func TestParseRuleWithArithmeticHeadArgument(t *testing.T) {
	out := runDriver(t, "p(N+1) :- q(N).", driver.Options{})
	if len(out) != 1 {
		t.Fatalf("got %d formulas, want 1: %v", len(out), out)
	}
	if !strings.Contains(out[0], "q(") || !strings.Contains(out[0], "N + 1") {
		t.Errorf("formula = %q, want it to mention q(...) and N + 1", out[0])
	}
}

// §8 scenario 3 (negation + comparison): :- not covered(I), I = 1..n.
func TestParseIntegrityConstraintWithNegationAndComparison(t *testing.T) {
	out := runDriver(t, ":- not covered(I), I = 1..n.", driver.Options{Simplify: true})
	if len(out) != 1 {
		t.Fatalf("got %d formulas, want 1: %v", len(out), out)
	}
	if !strings.Contains(out[0], "not covered") {
		t.Errorf("formula = %q, want a negated covered(...) literal", out[0])
	}
}

// §8 scenario 6: {p(a)}. with --simplify --complete
func TestParseChoiceRule(t *testing.T) {
	out := runDriver(t, "{p(a)}.", driver.Options{Simplify: true, Complete: true})
	if len(out) != 1 {
		t.Fatalf("got %d formulas, want 1: %v", len(out), out)
	}
	if !strings.Contains(out[0], "->") {
		t.Errorf("formula = %q, want the choice rule's one-way implication", out[0])
	}
}

func TestParseDisjunctiveHead(t *testing.T) {
	out := runDriver(t, "p | q :- r.", driver.Options{})
	if len(out) == 0 {
		t.Fatal("got no formulas for a disjunctive-head rule")
	}
}

func TestParseShowAndExternalDirectives(t *testing.T) {
	ctx := symbols.NewContext()
	p := driver.New(ctx, driver.Options{})
	text := "#show p/1.\n#external q/0.\np(X) :- q.\n"
	if err := String("test.lp", text, p); err != nil {
		t.Fatalf("String: %v", err)
	}
	if _, _, err := p.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
}

func TestParseSyntaxErrorReturnsDiagnostic(t *testing.T) {
	ctx := symbols.NewContext()
	p := driver.New(ctx, driver.Options{})
	err := String("bad.lp", "p(X) :- .", p)
	if err == nil {
		t.Fatal("String: expected a syntax error, got nil")
	}
}
