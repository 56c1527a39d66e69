package source

// Sign is the polarity of a body literal (§6).
type Sign int

const (
	SignNone Sign = iota
	SignNegation
	SignDoubleNegation
)

// ComparisonOperator enumerates the six relational operators the source
// grammar allows in a body comparison.
type ComparisonOperator int

const (
	CmpGreater ComparisonOperator = iota
	CmpLess
	CmpLessEqual
	CmpGreaterEqual
	CmpNotEqual
	CmpEqual
)

// Atom is a predicate application name(args...).
type Atom struct {
	Location Location
	Name     string
	Args     []Term
}

// BodyLiteralKind discriminates the three body literal shapes the glossary
// describes as BodyLiteral(sign, Literal|Comparison|Boolean).
type BodyLiteralKind int

const (
	BodyAtom BodyLiteralKind = iota
	BodyComparison
	BodyBoolean
)

// BodyLiteral is one literal of a rule body.
type BodyLiteral struct {
	Location Location
	Sign     Sign
	Kind     BodyLiteralKind

	// valid when Kind == BodyAtom
	Atom Atom

	// valid when Kind == BodyComparison
	ComparisonOp          ComparisonOperator
	Left, Right           Term

	// valid when Kind == BodyBoolean
	BooleanValue bool
}

// AggregateElement is one element of a choice-rule aggregate: a tuple of
// terms (only the first is used by the restricted choice aggregate this
// module supports) with an optional condition.
type AggregateElement struct {
	Location  Location
	Terms     []Term
	Condition []BodyLiteral
}

// Aggregate is a head aggregate `{ e1; e2; ... }` with optional guards. The
// rule translator (§4.3) only accepts aggregates with no guards, exactly
// one element, no condition and no negation on that element — any other
// shape is a TranslationFailure.
type Aggregate struct {
	Location Location
	HasLeftGuard, HasRightGuard bool
	LeftOp, RightOp             ComparisonOperator
	LeftBound, RightBound       Term
	Elements                    []AggregateElement
	ElementSign                 Sign
}

// HeadLiteralKind discriminates the three head shapes (§6 HeadLiteral).
type HeadLiteralKind int

const (
	HeadLiteralAtom HeadLiteralKind = iota
	HeadDisjunction
	HeadAggregate
)

// HeadLiteral is a rule head: an atom, a disjunction of atoms, or a choice
// aggregate. A HeadLiteral with Empty set represents the empty head of an
// integrity constraint.
type HeadLiteral struct {
	Location  Location
	Kind      HeadLiteralKind
	Literal   Atom        // valid when Kind == HeadLiteralAtom
	Disjuncts []Atom      // valid when Kind == HeadDisjunction
	Aggregate Aggregate   // valid when Kind == HeadAggregate
	Empty     bool        // true for an integrity constraint's empty head
}

// Rule is one source statement: head :- body. (§6).
type Rule struct {
	Location Location
	Head     HeadLiteral
	Body     []BodyLiteral
}

// ShowSignature is a #show name/arity. directive.
type ShowSignature struct {
	Location Location
	Name     string
	Arity    int
}

// External is a #external name/arity. directive.
type External struct {
	Location Location
	Name     string
	Arity    int
}

// Statement is one top-level unit the front end hands the core: either a
// Rule, a ShowSignature directive, or an External directive.
type Statement struct {
	Rule          *Rule
	ShowSignature *ShowSignature
	External      *External
}

// StatementVisitor is the contract an external ASP front end is expected to drive
// the core pipeline through: for every statement in a file, call exactly
// one of the StatementVisitor methods below in source order. The core's
// driver (package driver) implements this interface; a real front end lives
// outside this module (see spec.md §1 "out of scope"). Package parse
// supplies a convenience, non-normative implementation for tests and the
// CLI (see parse's doc comment).
type StatementVisitor interface {
	VisitRule(Rule) error
	VisitShowSignature(ShowSignature) error
	VisitExternal(External) error
}
