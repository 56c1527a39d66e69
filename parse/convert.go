package parse

import (
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/potassco/anthem-go/source"
)

func loc(p lexer.Position) source.Location {
	return source.Location{File: p.Filename, LineStart: p.Line, ColStart: p.Column, LineEnd: p.Line, ColEnd: p.Column}
}

// drive feeds every statement parsed into prog to v, in source order,
// stopping at the first error a visitor method returns.
func drive(prog *Program, v source.StatementVisitor) error {
	for _, st := range prog.Statements {
		switch {
		case st.Show != nil:
			if err := v.VisitShowSignature(source.ShowSignature{
				Location: loc(st.Show.Pos), Name: st.Show.Name, Arity: st.Show.Arity,
			}); err != nil {
				return err
			}
		case st.External != nil:
			if err := v.VisitExternal(source.External{
				Location: loc(st.External.Pos), Name: st.External.Name, Arity: st.External.Arity,
			}); err != nil {
				return err
			}
		case st.Rule != nil:
			rule, err := convertRule(st.Rule)
			if err != nil {
				return err
			}
			if err := v.VisitRule(rule); err != nil {
				return err
			}
		}
	}
	return nil
}

func convertRule(r *gRule) (source.Rule, error) {
	rule := source.Rule{Location: loc(r.Pos)}

	if r.Head == nil {
		rule.Head = source.HeadLiteral{Empty: true}
	} else if r.Head.Choice != nil {
		atom, err := convertAtom(r.Head.Choice)
		if err != nil {
			return rule, err
		}
		rule.Head = source.HeadLiteral{Kind: source.HeadAggregate, Aggregate: source.Aggregate{
			Location: loc(r.Head.Pos),
			Elements: []source.AggregateElement{{Location: loc(r.Head.Pos), Terms: []source.Term{}}},
		}}
		// The restricted choice shape this module supports (§4.3: exactly one
		// unconditioned, unnegated element) is expressed as a single-element
		// Aggregate whose element carries the chosen atom's arguments via a
		// synthetic Function term, letting translate.translateChoiceHead reuse
		// the same Atom-shaped access pattern as a plain head atom.
		rule.Head.Aggregate.Elements[0].Terms = []source.Term{&source.Function{
			Location: atom.Location, Name: atom.Name, Args: atomArgTerms(atom),
		}}
	} else {
		atoms := make([]source.Atom, len(r.Head.Disjuncts))
		for i, a := range r.Head.Disjuncts {
			atom, err := convertAtom(a)
			if err != nil {
				return rule, err
			}
			atoms[i] = atom
		}
		if len(atoms) == 1 {
			rule.Head = source.HeadLiteral{Kind: source.HeadLiteralAtom, Literal: atoms[0]}
		} else {
			rule.Head = source.HeadLiteral{Kind: source.HeadDisjunction, Disjuncts: atoms}
		}
	}

	for _, b := range r.Body {
		lit, err := convertBodyLiteral(b)
		if err != nil {
			return rule, err
		}
		rule.Body = append(rule.Body, lit)
	}
	return rule, nil
}

func atomArgTerms(a source.Atom) []source.Term { return a.Args }

func convertBodyLiteral(b *gBodyLit) (source.BodyLiteral, error) {
	sign := source.SignNone
	switch len(b.Negation) {
	case 0:
	case 1:
		sign = source.SignNegation
	default:
		sign = source.SignDoubleNegation
	}

	lit := source.BodyLiteral{Location: loc(b.Pos), Sign: sign}
	if b.Comparison != nil {
		left, err := convertTerm(b.Comparison.Left)
		if err != nil {
			return lit, err
		}
		right, err := convertTerm(b.Comparison.Right)
		if err != nil {
			return lit, err
		}
		lit.Kind = source.BodyComparison
		lit.ComparisonOp = convertComparisonOp(b.Comparison.Op)
		lit.Left, lit.Right = left, right
		return lit, nil
	}

	atom, err := convertAtom(b.Atom)
	if err != nil {
		return lit, err
	}
	lit.Kind = source.BodyAtom
	lit.Atom = atom
	return lit, nil
}

func convertComparisonOp(op string) source.ComparisonOperator {
	switch op {
	case "=":
		return source.CmpEqual
	case "!=":
		return source.CmpNotEqual
	case "<":
		return source.CmpLess
	case "<=":
		return source.CmpLessEqual
	case ">":
		return source.CmpGreater
	default:
		return source.CmpGreaterEqual
	}
}

func convertAtom(a *gAtom) (source.Atom, error) {
	atom := source.Atom{Location: loc(a.Pos), Name: a.Name}
	for _, t := range a.Args {
		term, err := convertTerm(t)
		if err != nil {
			return atom, err
		}
		atom.Args = append(atom.Args, term)
	}
	return atom, nil
}

func convertTerm(t *gTerm) (source.Term, error) {
	left, err := convertAddExpr(t.Left)
	if err != nil {
		return nil, err
	}
	if t.Right == nil {
		return left, nil
	}
	right, err := convertAddExpr(t.Right)
	if err != nil {
		return nil, err
	}
	return &source.Interval{Location: loc(t.Pos), Left: left, Right: right}, nil
}

func convertAddExpr(e *gAddExpr) (source.Term, error) {
	left, err := convertMulExpr(e.Left)
	if err != nil {
		return nil, err
	}
	for _, tail := range e.Rest {
		right, err := convertMulExpr(tail.Right)
		if err != nil {
			return nil, err
		}
		op := source.OpAdd
		if tail.Op == "-" {
			op = source.OpSub
		}
		left = &source.BinaryOperation{Location: loc(e.Pos), Operator: op, Left: left, Right: right}
	}
	return left, nil
}

func convertMulExpr(e *gMulExpr) (source.Term, error) {
	left, err := convertPowExpr(e.Left)
	if err != nil {
		return nil, err
	}
	for _, tail := range e.Rest {
		right, err := convertPowExpr(tail.Right)
		if err != nil {
			return nil, err
		}
		var op source.BinaryOperator
		switch tail.Op {
		case "*":
			op = source.OpMul
		case "/":
			op = source.OpDiv
		default:
			op = source.OpMod
		}
		left = &source.BinaryOperation{Location: loc(e.Pos), Operator: op, Left: left, Right: right}
	}
	return left, nil
}

func convertPowExpr(e *gPowExpr) (source.Term, error) {
	left, err := convertUnary(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Right == nil {
		return left, nil
	}
	right, err := convertUnary(e.Right)
	if err != nil {
		return nil, err
	}
	return &source.BinaryOperation{Location: loc(e.Pos), Operator: source.OpPow, Left: left, Right: right}, nil
}

func convertUnary(u *gUnary) (source.Term, error) {
	if u.Abs != nil {
		arg, err := convertTerm(u.Abs)
		if err != nil {
			return nil, err
		}
		abs := &source.UnaryOperation{Location: loc(u.Pos), Operator: source.UnaryAbsolute, Argument: arg}
		if u.Minus {
			return &source.UnaryOperation{Location: loc(u.Pos), Operator: source.UnaryMinus, Argument: abs}, nil
		}
		return abs, nil
	}
	primary, err := convertPrimary(u.Primary)
	if err != nil {
		return nil, err
	}
	if u.Minus {
		return &source.UnaryOperation{Location: loc(u.Pos), Operator: source.UnaryMinus, Argument: primary}, nil
	}
	return primary, nil
}

func convertPrimary(p *gPrimary) (source.Term, error) {
	switch {
	case p.Number != nil:
		return &source.Symbol{Location: loc(p.Pos), Kind: source.SymbolNumber, Number: *p.Number}, nil
	case p.Text != nil:
		return &source.Symbol{Location: loc(p.Pos), Kind: source.SymbolString, Text: unquote(*p.Text)}, nil
	case p.Infimum:
		return &source.Symbol{Location: loc(p.Pos), Kind: source.SymbolInfimum}, nil
	case p.Supremum:
		return &source.Symbol{Location: loc(p.Pos), Kind: source.SymbolSupremum}, nil
	case p.Variable != nil:
		return &source.Variable{Location: loc(p.Pos), Name: *p.Variable}, nil
	case p.Function != nil:
		atom, err := convertAtom(p.Function)
		if err != nil {
			return nil, err
		}
		if len(atom.Args) == 0 {
			return &source.Symbol{Location: atom.Location, Kind: source.SymbolFunction, Text: atom.Name}, nil
		}
		return &source.Function{Location: atom.Location, Name: atom.Name, Args: atom.Args}, nil
	default:
		return convertTerm(p.Paren)
	}
}

func unquote(s string) string {
	if len(s) >= 2 {
		return s[1 : len(s)-1]
	}
	return s
}
