package emit

import (
	"fmt"
	"strings"

	"github.com/potassco/anthem-go/ast"
	"github.com/potassco/anthem-go/domain"
	"github.com/potassco/anthem-go/symbols"
)

// Role is a TPTP annotated-formula role (§6: "role ∈ {axiom, conjecture,
// type}").
type Role int

const (
	Axiom Role = iota
	Conjecture
	TypeDecl
)

func (r Role) String() string {
	switch r {
	case Conjecture:
		return "conjecture"
	case TypeDecl:
		return "type"
	default:
		return "axiom"
	}
}

// TPTP renders one formula as a complete `tff(name, role, formula).`
// annotated formula. Grounded on original_source/src/anthem/AnthemTPTP.cpp's
// translation of a completed/simplified formula into TFF syntax: ~/&/|/=>/
// <=>/!/? for the connectives and quantifiers, $true/$false for the
// propositional constants, and plain TFF function/predicate application
// otherwise — after domain unification no native Comparison, In,
// BinaryOperation or UnaryOperation node remains, since §4.8's unification
// step has already turned them into uninterpreted predicate/function
// applications. A formula that has not been through domain unification still
// renders: comparisons and In become uninterpreted p__…__ predicate
// applications (p__less__, p__in__, …), +, -, *, / and \ become TFF's $sum,
// $difference, $product, $quotient_e and $remainder_e, ** becomes
// f__power__, and unary minus becomes $uminus.
func TPTP(name string, role Role, f ast.Formula) string {
	n := newNamer()
	return fmt.Sprintf("tff(%s, %s, %s).", name, role, n.formula(f))
}

// Preamble returns the fixed TFF preamble §6 describes: one TypeDecl
// statement for each uninterpreted symbol domain.Symbols.Unify introduces —
// the integer injection, the sum, difference, product, quotient, remainder,
// power and negation functions, the six comparison predicates and
// p__is_integer__ — followed by four axioms: every f__integer__ value
// satisfies p__is_integer__, p__less__ is irreflexive and transitive, and
// p__less_equal__ is reflexive. No axiom states that integer and symbolic
// values are disjoint.
func Preamble(s *domain.Symbols) []string {
	var lines []string
	for _, fn := range []*symbols.FunctionDeclaration{
		s.Integer, s.Sum, s.Difference, s.Product, s.Quotient, s.Remainder, s.Power, s.Negate,
	} {
		lines = append(lines, typeDecl(fn.Name, fn.Arity))
	}
	for _, pred := range []*symbols.PredicateDeclaration{
		s.Less, s.LessEqual, s.Greater, s.GreaterEqual, s.Equal, s.NotEqual, s.IsInteger,
	} {
		lines = append(lines, predTypeDecl(pred.Name, pred.Arity))
	}
	lines = append(lines,
		fmt.Sprintf("tff(integer_injection_is_integer, axiom, ! [X] : %s(%s(X))).", s.IsInteger.Name, s.Integer.Name),
		fmt.Sprintf("tff(less_irreflexive, axiom, ! [X] : ~ %s(X, X)).", s.Less.Name),
		fmt.Sprintf("tff(less_equal_reflexive, axiom, ! [X] : %s(X, X)).", s.LessEqual.Name),
		fmt.Sprintf("tff(less_transitive, axiom, ! [X, Y, Z] : ((%s(X, Y) & %s(Y, Z)) => %s(X, Z))).", s.Less.Name, s.Less.Name, s.Less.Name),
	)
	return lines
}

func typeDecl(name string, arity int) string {
	return fmt.Sprintf("tff(%s_type, type, %s: %s > $i).", name, name, strings.Repeat("$i * ", arity-1)+"$i")
}

func predTypeDecl(name string, arity int) string {
	return fmt.Sprintf("tff(%s_type, type, %s: %s > $o).", name, name, strings.Repeat("$i * ", arity-1)+"$i")
}

// namer assigns every distinct *symbols.VariableDeclaration a TPTP-legal
// (upper-case-initial) variable name, stable for the lifetime of one TPTP
// statement render: TPTP requires variables to start with an upper-case
// letter, but anthem's own auxiliary variables are named u1/v1/z1/etc.
type namer struct {
	names map[*symbols.VariableDeclaration]string
	used  map[string]bool
}

func newNamer() *namer {
	return &namer{names: make(map[*symbols.VariableDeclaration]string), used: make(map[string]bool)}
}

func (n *namer) name(v *symbols.VariableDeclaration) string {
	if existing, ok := n.names[v]; ok {
		return existing
	}
	base := strings.ToUpper(v.DisplayName[:1]) + v.DisplayName[1:]
	if base == "" || base == "_" {
		base = "V"
	}
	candidate := base
	for i := 2; n.used[candidate]; i++ {
		candidate = fmt.Sprintf("%s%d", base, i)
	}
	n.used[candidate] = true
	n.names[v] = candidate
	return candidate
}

func (n *namer) formula(f ast.Formula) string {
	switch x := f.(type) {
	case *ast.Boolean:
		if x.Value {
			return "$true"
		}
		return "$false"
	case *ast.Comparison:
		return fmt.Sprintf("%s(%s, %s)", comparisonPredicate(x.Op), n.term(x.Left), n.term(x.Right))
	case *ast.In:
		return fmt.Sprintf("p__in__(%s, %s)", n.term(x.Element), n.term(x.Set))
	case *ast.Predicate:
		if len(x.Args) == 0 {
			return x.Declaration.Name
		}
		return fmt.Sprintf("%s(%s)", x.Declaration.Name, n.termList(x.Args))
	case *ast.Not:
		return "~ " + n.parenFormula(x.Argument)
	case *ast.And:
		return n.joinFormula(x.Args, " & ", "$true")
	case *ast.Or:
		return n.joinFormula(x.Args, " | ", "$false")
	case *ast.Implies:
		return fmt.Sprintf("(%s => %s)", n.formula(x.Antecedent), n.formula(x.Consequent))
	case *ast.Biconditional:
		return fmt.Sprintf("(%s <=> %s)", n.formula(x.Left), n.formula(x.Right))
	case *ast.Exists:
		return fmt.Sprintf("? [%s] : %s", n.varList(x.Vars), n.formula(x.Argument))
	case *ast.ForAll:
		return fmt.Sprintf("! [%s] : %s", n.varList(x.Vars), n.formula(x.Argument))
	default:
		return f.String()
	}
}

func (n *namer) parenFormula(f ast.Formula) string {
	switch f.(type) {
	case *ast.Predicate, *ast.Boolean, *ast.Not:
		return n.formula(f)
	default:
		return "(" + n.formula(f) + ")"
	}
}

func (n *namer) joinFormula(args []ast.Formula, sep, empty string) string {
	if len(args) == 0 {
		return empty
	}
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = n.parenFormula(a)
	}
	return "(" + strings.Join(parts, sep) + ")"
}

func (n *namer) varList(vars []*symbols.VariableDeclaration) string {
	parts := make([]string, len(vars))
	for i, v := range vars {
		parts[i] = n.name(v)
	}
	return strings.Join(parts, ", ")
}

func (n *namer) termList(args []ast.Term) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = n.term(a)
	}
	return strings.Join(parts, ", ")
}

func (n *namer) term(t ast.Term) string {
	switch x := t.(type) {
	case *ast.Integer:
		return x.String()
	case *ast.SpecialInteger:
		if x.Kind == ast.Infimum {
			return "anthem_inf"
		}
		return "anthem_sup"
	case *ast.StringTerm:
		return "'" + x.Value + "'"
	case *ast.Variable:
		return n.name(x.Declaration)
	case *ast.Function:
		if len(x.Args) == 0 {
			return x.Declaration.Name
		}
		return fmt.Sprintf("%s(%s)", x.Declaration.Name, n.termList(x.Args))
	case *ast.BinaryOperation:
		return fmt.Sprintf("%s(%s, %s)", arithmeticFunction(x.Op), n.term(x.Left), n.term(x.Right))
	case *ast.UnaryOperation:
		if x.Op == ast.Minus {
			return fmt.Sprintf("$uminus(%s)", n.term(x.Argument))
		}
		return n.term(x.Argument)
	case *ast.Interval:
		return fmt.Sprintf("p__interval__(%s, %s)", n.term(x.From), n.term(x.To))
	default:
		return t.String()
	}
}

func comparisonPredicate(op ast.ComparisonOp) string {
	switch op {
	case ast.Equal:
		return "p__equal__"
	case ast.NotEqual:
		return "p__not_equal__"
	case ast.LessThan:
		return "p__less__"
	case ast.LessEqual:
		return "p__less_equal__"
	case ast.GreaterThan:
		return "p__greater__"
	default:
		return "p__greater_equal__"
	}
}

func arithmeticFunction(op ast.BinaryOp) string {
	switch op {
	case ast.Add:
		return "$sum"
	case ast.Sub:
		return "$difference"
	case ast.Mul:
		return "$product"
	case ast.Div:
		return "$quotient_e"
	case ast.Pow:
		return "f__power__"
	default:
		return "$remainder_e"
	}
}
