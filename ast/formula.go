package ast

import "github.com/potassco/anthem-go/symbols"

// Formula is implemented by every formula variant (§3 Formulas).
type Formula interface {
	isFormula()
	String() string
}

// Boolean is a propositional constant, #true or #false.
type Boolean struct {
	Value bool
}

func (*Boolean) isFormula() {}

// ComparisonOp enumerates the six relational operators.
type ComparisonOp int

const (
	Equal ComparisonOp = iota
	NotEqual
	LessThan
	LessEqual
	GreaterThan
	GreaterEqual
)

// Complement returns the comparison operator whose meaning is the negation
// of op, used by simplifier rule 12 (¬(a ⊙ b) ⇒ a ⊙̄ b).
func (op ComparisonOp) Complement() ComparisonOp {
	switch op {
	case Equal:
		return NotEqual
	case NotEqual:
		return Equal
	case LessThan:
		return GreaterEqual
	case LessEqual:
		return GreaterThan
	case GreaterThan:
		return LessEqual
	case GreaterEqual:
		return LessThan
	default:
		return op
	}
}

func (op ComparisonOp) String() string {
	switch op {
	case Equal:
		return "="
	case NotEqual:
		return "!="
	case LessThan:
		return "<"
	case LessEqual:
		return "<="
	case GreaterThan:
		return ">"
	case GreaterEqual:
		return ">="
	default:
		return "?"
	}
}

// Comparison is left op right for a relational operator.
type Comparison struct {
	Op          ComparisonOp
	Left, Right Term
}

func (*Comparison) isFormula() {}

// In is "Element is one of the values denoted by Set" (Set may be an
// interval or a compound term; see simplifier rules 8 and 13).
type In struct {
	Element, Set Term
}

func (*In) isFormula() {}

// Predicate is an atomic application p(args...). len(Args) must equal
// Declaration.Arity.
type Predicate struct {
	Declaration *symbols.PredicateDeclaration
	Args        []Term
}

func (*Predicate) isFormula() {}

// Not is ¬argument.
type Not struct {
	Argument Formula
}

func (*Not) isFormula() {}

// And is a (possibly empty, §4.5 rule 4) conjunction.
type And struct {
	Args []Formula
}

func (*And) isFormula() {}

// Or is a (possibly empty) disjunction.
type Or struct {
	Args []Formula
}

func (*Or) isFormula() {}

// Implies is antecedent -> consequent.
type Implies struct {
	Antecedent, Consequent Formula
}

func (*Implies) isFormula() {}

// Biconditional is left <-> right.
type Biconditional struct {
	Left, Right Formula
}

func (*Biconditional) isFormula() {}

// Exists owns its bound variable declarations: every Variable term inside
// Argument that refers to one of Vars is bound by this node (§3 invariants).
type Exists struct {
	Vars     []*symbols.VariableDeclaration
	Argument Formula
}

func (*Exists) isFormula() {}

// ForAll mirrors Exists for universal quantification.
type ForAll struct {
	Vars     []*symbols.VariableDeclaration
	Argument Formula
}

func (*ForAll) isFormula() {}

// True and False are convenience constructors for the two formula-level
// Boolean constants.
func True() Formula  { return &Boolean{Value: true} }
func False() Formula { return &Boolean{Value: false} }
