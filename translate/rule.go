package translate

import (
	"github.com/potassco/anthem-go/ast"
	"github.com/potassco/anthem-go/errs"
	"github.com/potassco/anthem-go/source"
	"github.com/potassco/anthem-go/symbols"
)

// Semantics records whether any rule translated so far required the logic
// of here-and-there rather than classical logic — i.e. whether negation (or
// a choice construct) was used anywhere in the file (§4.2, §4.10).
type Semantics int

const (
	ClassicalLogic Semantics = iota
	LogicOfHereAndThere
)

func (s Semantics) String() string {
	if s == LogicOfHereAndThere {
		return "logic of here-and-there"
	}
	return "classical logic"
}

// TranslationMode selects between the two equivalent ways §4.3 permits an
// atom argument (or comparison operand) to be related to its source term:
// DirectMode keeps the term intact and uses the In formula (HeadDirect.h /
// Body.h); ChooseMode decomposes it recursively into primitive equalities
// via choose-value-in-term (ChooseValueInTerm.h), the shape
// examine-semantics-style property checks expect their input in.
type TranslationMode int

const (
	DirectMode TranslationMode = iota
	ChooseMode
)

func (m TranslationMode) String() string {
	if m == ChooseMode {
		return "choose"
	}
	return "direct"
}

// HeadKind classifies a translated rule's head shape for completion (C5).
type HeadKind int

const (
	HeadIntegrityConstraint HeadKind = iota
	HeadSingleAtom
	HeadChoice
	HeadDisjunction
)

// HeadAtomTranslation is one translated head atom: Values are the fresh head
// variables standing for its arguments, AuxVars are their declarations, and
// Conjuncts relate each one to its source term (an In membership in
// DirectMode, a choose-value-in-term formula in ChooseMode).
type HeadAtomTranslation struct {
	Predicate *symbols.PredicateDeclaration
	Values    []ast.Term
	AuxVars   []*symbols.VariableDeclaration
	Conjuncts []ast.Formula
}

// TranslatedRule is one source rule after C4. Completion (C5) groups these
// by head predicate; the simplifier (C6) and later passes operate on Body
// and on the formulas completion builds from Head*.
type TranslatedRule struct {
	Location source.Location
	Kind     HeadKind

	// valid when Kind is HeadSingleAtom or HeadChoice
	Head HeadAtomTranslation

	// valid when Kind == HeadDisjunction
	Disjuncts []HeadAtomTranslation

	Body     ast.Formula
	FreeVars []*symbols.VariableDeclaration
}

// Translator drives the rule-by-rule translation (C4), accumulating the
// program's required semantics as it goes.
type Translator struct {
	Ctx       *symbols.Context
	Semantics Semantics
	Mode      TranslationMode
}

func NewTranslator(ctx *symbols.Context) *Translator {
	return &Translator{Ctx: ctx, Semantics: ClassicalLogic, Mode: DirectMode}
}

func (tr *Translator) downgrade() { tr.Semantics = LogicOfHereAndThere }

// TranslateRule implements C4 for one rule: translate the body into a
// conjunction, analyze and translate the head per its shape, and collect the
// rule's free variables (both user-named and anonymous).
func (tr *Translator) TranslateRule(r source.Rule) (*TranslatedRule, error) {
	sc := newScope()
	ac := &auxCounter{}

	bodyArgs := make([]ast.Formula, 0, len(r.Body))
	for _, lit := range r.Body {
		f, err := tr.translateBodyLiteral(lit, sc, ac)
		if err != nil {
			return nil, err
		}
		bodyArgs = append(bodyArgs, f)
	}
	var body ast.Formula = ast.True()
	if len(bodyArgs) > 0 {
		body = &ast.And{Args: bodyArgs}
	}

	out := &TranslatedRule{Location: r.Location, Body: body}

	switch {
	case r.Head.Empty:
		out.Kind = HeadIntegrityConstraint
	case r.Head.Kind == source.HeadLiteralAtom:
		out.Kind = HeadSingleAtom
		h, err := tr.translateHeadLiteralAtom(r.Head.Literal, sc, ac)
		if err != nil {
			return nil, err
		}
		out.Head = h
	case r.Head.Kind == source.HeadDisjunction:
		out.Kind = HeadDisjunction
		for _, atom := range r.Head.Disjuncts {
			h, err := translateHeadAtomTranslation(atom, tr.Ctx, tr.Mode, sc, ac)
			if err != nil {
				return nil, err
			}
			out.Disjuncts = append(out.Disjuncts, h)
		}
	case r.Head.Kind == source.HeadAggregate:
		out.Kind = HeadChoice
		h, err := tr.translateChoiceHead(r.Head.Aggregate, sc, ac)
		if err != nil {
			return nil, err
		}
		out.Head = h
	default:
		return nil, errs.NewLogicFailure("unexpected head literal kind %d", r.Head.Kind)
	}

	out.FreeVars = sc.free
	return out, nil
}

func (tr *Translator) translateHeadLiteralAtom(atom source.Atom, sc *scope, ac *auxCounter) (HeadAtomTranslation, error) {
	return translateHeadAtomTranslation(atom, tr.Ctx, tr.Mode, sc, ac)
}

func translateHeadAtomTranslation(atom source.Atom, ctx *symbols.Context, mode TranslationMode, sc *scope, ac *auxCounter) (HeadAtomTranslation, error) {
	decl, values, aux, conj, err := translateHeadAtom(atom, ctx, mode, sc, ac)
	if err != nil {
		return HeadAtomTranslation{}, err
	}
	return HeadAtomTranslation{Predicate: decl, Values: values, AuxVars: aux, Conjuncts: conj}, nil
}

// translateChoiceHead accepts only the restricted choice-aggregate shape
// §4.3 supports: no left/right guard, exactly one element, no condition, no
// sign on that element — matching Head.h's aggregate.elements.size() == 1
// fast path (the general multi-element Or-of-literals case the original
// supports is a disjunctive choice and is out of scope here; see DESIGN.md).
func (tr *Translator) translateChoiceHead(agg source.Aggregate, sc *scope, ac *auxCounter) (HeadAtomTranslation, error) {
	tr.downgrade()

	if agg.HasLeftGuard || agg.HasRightGuard {
		return HeadAtomTranslation{}, errs.NewTranslationFailure(agg.Location, "aggregates with a left or right guard are not supported")
	}
	if len(agg.Elements) != 1 {
		return HeadAtomTranslation{}, errs.NewTranslationFailure(agg.Location, "choice rules with more than one element are not supported")
	}
	if agg.ElementSign != source.SignNone {
		return HeadAtomTranslation{}, errs.NewTranslationFailure(agg.Location, "a negated choice element is not supported")
	}
	el := agg.Elements[0]
	if len(el.Condition) != 0 {
		return HeadAtomTranslation{}, errs.NewTranslationFailure(agg.Location, "conditional choice elements are not supported")
	}
	if len(el.Terms) != 1 {
		return HeadAtomTranslation{}, errs.NewTranslationFailure(agg.Location, "a choice element must be a single atom")
	}
	fn, ok := el.Terms[0].(*source.Function)
	if !ok {
		return HeadAtomTranslation{}, errs.NewTranslationFailure(agg.Location, "a choice element must be an atom")
	}
	return translateHeadAtomTranslation(source.Atom{Location: fn.Location, Name: fn.Name, Args: fn.Args}, tr.Ctx, tr.Mode, sc, ac)
}

func (tr *Translator) translateBodyLiteral(lit source.BodyLiteral, sc *scope, ac *auxCounter) (ast.Formula, error) {
	if lit.Sign == source.SignNegation || lit.Sign == source.SignDoubleNegation {
		tr.downgrade()
	}

	switch lit.Kind {
	case source.BodyAtom:
		return translateAtom(lit.Atom, lit.Sign, lit.Location, tr.Ctx, tr.Mode, sc, ac)
	case source.BodyComparison:
		if lit.Sign != source.SignNone {
			return nil, errs.NewTranslationFailure(lit.Location, "negated comparisons are not supported")
		}
		return translateComparison(lit.ComparisonOp, lit.Left, lit.Right, lit.Location, tr.Ctx, tr.Mode, sc, ac)
	case source.BodyBoolean:
		var f ast.Formula = ast.False()
		if lit.BooleanValue {
			f = ast.True()
		}
		return applySign(lit.Sign, f, lit.Location, true)
	default:
		return nil, errs.NewLogicFailure("unexpected body literal kind %d", lit.Kind)
	}
}
