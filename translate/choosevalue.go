package translate

import (
	"github.com/potassco/anthem-go/ast"
	"github.com/potassco/anthem-go/errs"
	"github.com/potassco/anthem-go/source"
	"github.com/potassco/anthem-go/symbols"
)

// chooseValueInTerm builds the formula constraining target to "be" t: for a
// primitive term this is a plain equation; for a compound term it
// existentially quantifies whatever auxiliary variables are needed and
// recurses into t's subterms with those auxiliaries as their own targets.
// target is always allocated by the caller (inArgs for a top-level atom
// argument, translateComparison for a comparison operand, or this function
// itself for a subterm).
func chooseValueInTerm(t source.Term, target *symbols.VariableDeclaration, ctx *symbols.Context, sc *scope, ac *auxCounter) (ast.Formula, error) {
	switch term := t.(type) {
	case *source.Symbol:
		return chooseValueInSymbol(term, target, ctx)
	case *source.Variable:
		d := sc.resolve(term.Name)
		return choosePrimitive(&ast.Variable{Declaration: d}, target), nil
	case *source.BinaryOperation:
		return chooseValueInBinaryOperation(term, target, ctx, sc, ac)
	case *source.UnaryOperation:
		return chooseValueInUnaryOperation(term, target, ctx, sc, ac)
	case *source.Interval:
		return chooseValueInInterval(term, target, ctx, sc, ac)
	case *source.Function:
		return chooseValueInFunction(term, target, ctx, sc, ac)
	case *source.Pool:
		return nil, errs.NewTranslationFailure(term.Location, "pools are not supported")
	default:
		return nil, errs.NewLogicFailure("unexpected source term type %T", t)
	}
}

// choosePrimitive is the base case: target = term, no quantification needed.
func choosePrimitive(term ast.Term, target *symbols.VariableDeclaration) ast.Formula {
	return &ast.Comparison{Op: ast.Equal, Left: &ast.Variable{Declaration: target}, Right: term}
}

func chooseValueInSymbol(s *source.Symbol, target *symbols.VariableDeclaration, ctx *symbols.Context) (ast.Formula, error) {
	switch s.Kind {
	case source.SymbolNumber:
		return choosePrimitive(&ast.Integer{Value: s.Number}, target), nil
	case source.SymbolInfimum:
		return choosePrimitive(&ast.SpecialInteger{Kind: ast.Infimum}, target), nil
	case source.SymbolSupremum:
		return choosePrimitive(&ast.SpecialInteger{Kind: ast.Supremum}, target), nil
	case source.SymbolString:
		return choosePrimitive(&ast.StringTerm{Value: s.Text}, target), nil
	case source.SymbolFunction:
		decl := ctx.FindOrCreateFunction(s.Text, 0)
		return choosePrimitive(&ast.Function{Declaration: decl}, target), nil
	default:
		return nil, errs.NewLogicFailure("unexpected symbol kind %d", s.Kind)
	}
}

func translateArithOp(op source.BinaryOperator) ast.BinaryOp {
	switch op {
	case source.OpAdd:
		return ast.Add
	case source.OpSub:
		return ast.Sub
	case source.OpMul:
		return ast.Mul
	default:
		return ast.Add
	}
}

func chooseValueInBinaryOperation(b *source.BinaryOperation, target *symbols.VariableDeclaration, ctx *symbols.Context, sc *scope, ac *auxCounter) (ast.Formula, error) {
	switch b.Operator {
	case source.OpAdd, source.OpSub, source.OpMul:
		return chooseValuePlusMinusMul(b, target, ctx, sc, ac)
	case source.OpDiv, source.OpMod:
		return chooseValueDivMod(b, target, ctx, sc, ac)
	case source.OpPow:
		return nil, errs.NewTranslationFailure(b.Location, "binary operator \"power\" is not supported")
	default:
		return nil, errs.NewTranslationFailure(b.Location, "bitwise operators are not supported")
	}
}

// chooseValuePlusMinusMul implements §4.3's rule for +, -, *: introduce two
// fresh integer auxiliaries u1, u2, relate target = u1 op u2, and choose a
// value for each operand into its own auxiliary.
func chooseValuePlusMinusMul(b *source.BinaryOperation, target *symbols.VariableDeclaration, ctx *symbols.Context, sc *scope, ac *auxCounter) (ast.Formula, error) {
	u1 := sc.fresh(symbols.Body, ac.next("u"), symbols.Integer)
	u2 := sc.fresh(symbols.Body, ac.next("u"), symbols.Integer)

	eq := &ast.Comparison{
		Op:   ast.Equal,
		Left: &ast.Variable{Declaration: target},
		Right: &ast.BinaryOperation{
			Op:    translateArithOp(b.Operator),
			Left:  &ast.Variable{Declaration: u1},
			Right: &ast.Variable{Declaration: u2},
		},
	}

	chooseLeft, err := chooseValueInTerm(b.Left, u1, ctx, sc, ac)
	if err != nil {
		return nil, err
	}
	chooseRight, err := chooseValueInTerm(b.Right, u2, ctx, sc, ac)
	if err != nil {
		return nil, err
	}

	return &ast.Exists{
		Vars:     []*symbols.VariableDeclaration{u1, u2},
		Argument: &ast.And{Args: []ast.Formula{eq, chooseLeft, chooseRight}},
	}, nil
}

// chooseValueDivMod implements §4.3's division/modulo rule: decompose
// i = j*q + r with j != 0, 0 <= r < q, then set target to q for division or
// to r for modulo — exactly one of the two equalities is added, never both,
// resolving the Open Question in favor of a single deterministic choice per
// operator.
func chooseValueDivMod(b *source.BinaryOperation, target *symbols.VariableDeclaration, ctx *symbols.Context, sc *scope, ac *auxCounter) (ast.Formula, error) {
	pi := sc.fresh(symbols.Body, ac.next("u"), symbols.Integer)
	pj := sc.fresh(symbols.Body, ac.next("u"), symbols.Integer)
	pq := sc.fresh(symbols.Body, ac.next("u"), symbols.Integer)
	pr := sc.fresh(symbols.Body, ac.next("u"), symbols.Integer)

	chooseI, err := chooseValueInTerm(b.Left, pi, ctx, sc, ac)
	if err != nil {
		return nil, err
	}
	chooseJ, err := chooseValueInTerm(b.Right, pj, ctx, sc, ac)
	if err != nil {
		return nil, err
	}

	iVar, jVar, qVar, rVar := &ast.Variable{Declaration: pi}, &ast.Variable{Declaration: pj}, &ast.Variable{Declaration: pq}, &ast.Variable{Declaration: pr}

	decomposition := &ast.Comparison{
		Op:   ast.Equal,
		Left: iVar,
		Right: &ast.BinaryOperation{
			Op:    ast.Add,
			Left:  &ast.BinaryOperation{Op: ast.Mul, Left: jVar, Right: qVar},
			Right: rVar,
		},
	}
	jNonZero := &ast.Comparison{Op: ast.NotEqual, Left: jVar, Right: &ast.Integer{Value: 0}}
	rNonNegative := &ast.Comparison{Op: ast.GreaterEqual, Left: rVar, Right: &ast.Integer{Value: 0}}
	rBelowQ := &ast.Comparison{Op: ast.LessThan, Left: rVar, Right: qVar}

	args := []ast.Formula{decomposition, chooseI, chooseJ, jNonZero, rNonNegative, rBelowQ}

	switch b.Operator {
	case source.OpDiv:
		args = append(args, &ast.Comparison{Op: ast.Equal, Left: &ast.Variable{Declaration: target}, Right: qVar})
	case source.OpMod:
		args = append(args, &ast.Comparison{Op: ast.Equal, Left: &ast.Variable{Declaration: target}, Right: rVar})
	}

	return &ast.Exists{
		Vars:     []*symbols.VariableDeclaration{pi, pj, pq, pr},
		Argument: &ast.And{Args: args},
	}, nil
}

func chooseValueInUnaryOperation(u *source.UnaryOperation, target *symbols.VariableDeclaration, ctx *symbols.Context, sc *scope, ac *auxCounter) (ast.Formula, error) {
	switch u.Operator {
	case source.UnaryMinus:
		zPrime := sc.fresh(symbols.Body, ac.next("u"), symbols.Integer)
		eq := &ast.Comparison{
			Op:    ast.Equal,
			Left:  &ast.Variable{Declaration: target},
			Right: &ast.UnaryOperation{Op: ast.Minus, Argument: &ast.Variable{Declaration: zPrime}},
		}
		chooseArg, err := chooseValueInTerm(u.Argument, zPrime, ctx, sc, ac)
		if err != nil {
			return nil, err
		}
		return &ast.Exists{
			Vars:     []*symbols.VariableDeclaration{zPrime},
			Argument: &ast.And{Args: []ast.Formula{eq, chooseArg}},
		}, nil
	case source.UnaryAbsolute:
		return nil, errs.NewTranslationFailure(u.Location, "unary operation \"absolute value\" is not supported")
	default:
		return nil, errs.NewTranslationFailure(u.Location, "unary operator is not supported")
	}
}

// chooseValueInInterval implements §4.3's rule for a..b: the chosen value k
// ranges over [a,b]; the resulting formula only pins down the relationship,
// leaving the existential quantifier to range over every value in the
// interval when the surrounding formula is itself existentially closed (and
// to constrain every value when universally closed, matching simplifier
// rule 13's use of In for the universally-quantified dual).
func chooseValueInInterval(iv *source.Interval, target *symbols.VariableDeclaration, ctx *symbols.Context, sc *scope, ac *auxCounter) (ast.Formula, error) {
	pi := sc.fresh(symbols.Body, ac.next("u"), symbols.Integer)
	pj := sc.fresh(symbols.Body, ac.next("u"), symbols.Integer)
	pk := sc.fresh(symbols.Body, ac.next("u"), symbols.Integer)

	chooseLeft, err := chooseValueInTerm(iv.Left, pi, ctx, sc, ac)
	if err != nil {
		return nil, err
	}
	chooseRight, err := chooseValueInTerm(iv.Right, pj, ctx, sc, ac)
	if err != nil {
		return nil, err
	}

	iVar, jVar, kVar := &ast.Variable{Declaration: pi}, &ast.Variable{Declaration: pj}, &ast.Variable{Declaration: pk}

	lowerBound := &ast.Comparison{Op: ast.LessEqual, Left: iVar, Right: kVar}
	upperBound := &ast.Comparison{Op: ast.LessEqual, Left: kVar, Right: jVar}
	eq := &ast.Comparison{Op: ast.Equal, Left: &ast.Variable{Declaration: target}, Right: kVar}

	return &ast.Exists{
		Vars:     []*symbols.VariableDeclaration{pi, pj, pk},
		Argument: &ast.And{Args: []ast.Formula{chooseLeft, chooseRight, lowerBound, upperBound, eq}},
	}, nil
}

// chooseValueInFunction implements the compound-function-term case spec.md
// §4.3's table adds beyond the original tool's translation-common visitor
// (which rejected every n-ary symbolic function application outright): a
// fresh auxiliary per argument, each chosen independently, combined back
// into a function application that target is set equal to.
func chooseValueInFunction(fn *source.Function, target *symbols.VariableDeclaration, ctx *symbols.Context, sc *scope, ac *auxCounter) (ast.Formula, error) {
	if len(fn.Args) == 0 {
		decl := ctx.FindOrCreateFunction(fn.Name, 0)
		return choosePrimitive(&ast.Function{Declaration: decl}, target), nil
	}

	params := make([]*symbols.VariableDeclaration, len(fn.Args))
	args := make([]ast.Term, len(fn.Args))
	conjuncts := make([]ast.Formula, 0, len(fn.Args)+1)

	for i, a := range fn.Args {
		p := sc.fresh(symbols.Body, ac.next("u"), symbols.Unknown)
		params[i] = p
		args[i] = &ast.Variable{Declaration: p}
		chosen, err := chooseValueInTerm(a, p, ctx, sc, ac)
		if err != nil {
			return nil, err
		}
		conjuncts = append(conjuncts, chosen)
	}

	decl := ctx.FindOrCreateFunction(fn.Name, len(fn.Args))
	eq := &ast.Comparison{Op: ast.Equal, Left: &ast.Variable{Declaration: target}, Right: &ast.Function{Declaration: decl, Args: args}}
	conjuncts = append([]ast.Formula{eq}, conjuncts...)

	return &ast.Exists{Vars: params, Argument: &ast.And{Args: conjuncts}}, nil
}
