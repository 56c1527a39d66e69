// Package driver implements the per-file pipeline state machine (C10):
// Parse → Translate → [Completion] → [Hidden-predicate elimination] →
// [Integer-variable detection] → [Simplification] → [Domain unification] →
// Emit, each optional step gated by Options, plus the examine-semantics and
// strong-equivalence convenience goals (§4.10).
//
// Grounded on original_source/src/anthem/Translate.cpp's TranslateVisitor,
// the single-threaded, single-owner-Context driver §5 describes; the
// logging idiom (glog, aliased "log") follows google-mangle's
// interpreter/mg/mg.go.
package driver

import (
	"github.com/potassco/anthem-go/ast"
	"github.com/potassco/anthem-go/complete"
	"github.com/potassco/anthem-go/domain"
	"github.com/potassco/anthem-go/errs"
	"github.com/potassco/anthem-go/hidden"
	"github.com/potassco/anthem-go/simplify"
	"github.com/potassco/anthem-go/sorts"
	"github.com/potassco/anthem-go/source"
	"github.com/potassco/anthem-go/symbols"
	"github.com/potassco/anthem-go/translate"

	log "github.com/golang/glog"
)

// DomainPass selects which of §4.8's two alternatives, if any, the pipeline
// applies in its final optional step.
type DomainPass int

const (
	NoDomainPass DomainPass = iota
	UnifyDomainPass
	MappingDomainPass
)

// Options gates each optional pipeline step, mirroring the CLI surface's
// --simplify/--complete/--detect-integers/--hidden flags (§6), the
// --domain flag's domain-pass selector and the --choose-mode translation mode.
type Options struct {
	Complete       bool
	Hidden         bool
	DetectIntegers bool
	Simplify       bool
	Domain         DomainPass
	TranslateMode  translate.TranslationMode
}

// Pipeline accumulates one file's (or stream's) statements as a
// source.StatementVisitor, then runs them through the optional passes
// Options selects. One Pipeline is scoped to one translation unit; Ctx is
// shared across VerifyProperty/StrongEquivalenceGoal call sites that need
// more than one unit's symbols to coexist.
type Pipeline struct {
	Ctx        *symbols.Context
	Options    Options
	translator *translate.Translator
	rules      []*translate.TranslatedRule
	warnings   []errs.Warning

	// ruleErr accumulates every TranslationFailure raised by VisitRule via
	// errs.Append (go.uber.org/multierr), so that one bad rule does not stop
	// the rest of the file from being attempted (§7 Propagation). Run()
	// surfaces it only once every statement has been visited.
	ruleErr error
}

var _ source.StatementVisitor = (*Pipeline)(nil)

// New returns a Pipeline ready to accept statements via the
// source.StatementVisitor methods.
func New(ctx *symbols.Context, opts Options) *Pipeline {
	tr := translate.NewTranslator(ctx)
	tr.Mode = opts.TranslateMode
	return &Pipeline{Ctx: ctx, Options: opts, translator: tr}
}

// VisitRule translates r and, on failure, accumulates the error rather than
// aborting: it always returns nil so that source.StatementVisitor drivers
// (package parse's drive, cmd/anthem's file loop) keep attempting every
// remaining rule in the file. The accumulated error surfaces from Run.
func (p *Pipeline) VisitRule(r source.Rule) error {
	tr, err := p.translator.TranslateRule(r)
	if err != nil {
		p.ruleErr = errs.Append(p.ruleErr, err)
		return nil
	}
	p.rules = append(p.rules, tr)
	return nil
}

func (p *Pipeline) VisitShowSignature(s source.ShowSignature) error {
	p.Ctx.DeclareShow(s.Name, s.Arity)
	return nil
}

func (p *Pipeline) VisitExternal(e source.External) error {
	p.Ctx.DeclareExternal(e.Name, e.Arity)
	return nil
}

// Run executes every optional step Options selects, in the fixed §4.9
// order, over the rules accumulated via the StatementVisitor methods, and
// returns the resulting formula set ready for package emit. Semantics
// (ClassicalLogic vs LogicOfHereAndThere) is read off p.translator once
// translation is done — a downgrade can only happen during VisitRule.
func (p *Pipeline) Run() ([]ast.Formula, translate.Semantics, error) {
	if p.ruleErr != nil {
		return nil, p.translator.Semantics, p.ruleErr
	}

	var formulas []ast.Formula
	if p.Options.Complete {
		completed, err := complete.Complete(p.rules, p.Ctx)
		if err != nil {
			return nil, p.translator.Semantics, err
		}
		formulas = completed
	} else {
		for _, r := range p.rules {
			f, err := scopedFormula(r)
			if err != nil {
				return nil, p.translator.Semantics, err
			}
			formulas = append(formulas, f)
		}
	}

	if p.translator.Semantics == translate.LogicOfHereAndThere {
		log.V(1).Info("program requires the logic of here-and-there (negation or choice present)")
		p.warnings = append(p.warnings, errs.Warning{Message: "program requires " + p.translator.Semantics.String()})
	}

	if p.Options.Hidden {
		out, warnings, err := hidden.Eliminate(formulas, p.Ctx)
		if err != nil {
			return nil, p.translator.Semantics, err
		}
		formulas = out
		p.warnings = append(p.warnings, warnings...)
	}

	if p.Options.DetectIntegers {
		sorts.Detect(formulas)
	}

	if p.Options.Simplify {
		for i, f := range formulas {
			formulas[i] = simplify.Simplify(f)
		}
	}

	switch p.Options.Domain {
	case UnifyDomainPass:
		s := domain.NewSymbols(p.Ctx)
		for i, f := range formulas {
			formulas[i] = s.Unify(f)
		}
	case MappingDomainPass:
		m := domain.NewMapping()
		for i, f := range formulas {
			formulas[i] = m.Map(f)
		}
	}

	return formulas, p.translator.Semantics, nil
}

// Warnings returns every non-fatal diagnostic accumulated so far (§7):
// semantics downgrade notices and hidden-predicate circular-definition
// skips, in the order they were raised.
func (p *Pipeline) Warnings() []errs.Warning { return p.warnings }

// VerifyProperty implements the examine-semantics convenience mode
// (§4.10): it does not add core semantics, only wraps an already-produced
// program formula set and a user-supplied property formula in the
// biconditional goal a downstream prover checks — "the program's
// completion holds iff the property does".
func VerifyProperty(programFormulas []ast.Formula, property ast.Formula) ast.Formula {
	return &ast.Biconditional{Left: conjoinAll(programFormulas), Right: property}
}

// StrongEquivalenceGoal implements the prove-strong-equivalence convenience
// helper (§4.10): the standard proof obligation that two programs' logic-
// of-here-and-there translations are logically equivalent, built by
// conjoining each program's own (already completed/simplified) formula set
// and relating the two conjunctions with a biconditional.
func StrongEquivalenceGoal(aFormulas, bFormulas []ast.Formula) ast.Formula {
	return &ast.Biconditional{Left: conjoinAll(aFormulas), Right: conjoinAll(bFormulas)}
}

// scopedFormula renders one translated rule as the single implication §8's
// worked scenarios show when --complete is off: body (and any head
// defining conjuncts) implies the head's consequent, with no universal
// closure — free variables stay implicitly universally quantified, ASP's
// own convention. Grounded on the same Head*/Body shapes package complete
// closes over (Complete's choice/disjunction branches), minus the
// ForAll wrapper completion adds once rules are grouped by predicate.
func scopedFormula(r *translate.TranslatedRule) (ast.Formula, error) {
	switch r.Kind {
	case translate.HeadIntegrityConstraint:
		return &ast.Implies{Antecedent: r.Body, Consequent: ast.False()}, nil
	case translate.HeadSingleAtom, translate.HeadChoice:
		antecedent := conjoinBody(r.Body, r.Head.Conjuncts)
		consequent := &ast.Predicate{Declaration: r.Head.Predicate, Args: r.Head.Values}
		return &ast.Implies{Antecedent: antecedent, Consequent: consequent}, nil
	case translate.HeadDisjunction:
		var conjuncts []ast.Formula
		disjuncts := make([]ast.Formula, 0, len(r.Disjuncts))
		for _, d := range r.Disjuncts {
			conjuncts = append(conjuncts, d.Conjuncts...)
			disjuncts = append(disjuncts, &ast.Predicate{Declaration: d.Predicate, Args: d.Values})
		}
		antecedent := conjoinBody(r.Body, conjuncts)
		return &ast.Implies{Antecedent: antecedent, Consequent: &ast.Or{Args: disjuncts}}, nil
	default:
		return nil, errs.NewLogicFailure("unexpected head kind %d", r.Kind)
	}
}

func conjoinBody(body ast.Formula, extra []ast.Formula) ast.Formula {
	if len(extra) == 0 {
		return body
	}
	args := append([]ast.Formula{}, extra...)
	if b, ok := body.(*ast.Boolean); !ok || !b.Value {
		args = append(args, body)
	}
	if len(args) == 1 {
		return args[0]
	}
	return &ast.And{Args: args}
}

func conjoinAll(formulas []ast.Formula) ast.Formula {
	if len(formulas) == 0 {
		return ast.True()
	}
	if len(formulas) == 1 {
		return formulas[0]
	}
	return &ast.And{Args: formulas}
}
