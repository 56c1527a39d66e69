package translate

import (
	"github.com/potassco/anthem-go/ast"
	"github.com/potassco/anthem-go/errs"
	"github.com/potassco/anthem-go/source"
	"github.com/potassco/anthem-go/symbols"
)

// translateTerm maps a source term to an ast.Term structurally: compound
// terms (binary/unary operations, intervals, n-ary functions) keep their
// shape rather than being decomposed, and a source variable resolves to its
// scope declaration. Grounded on original_source/include/anthem/Term.h's
// TermTranslateVisitor — the structural translator DirectMode uses, as
// opposed to choosevalue.go's fully decomposing construction that ChooseMode
// selects instead (see Translator.Mode).
func translateTerm(t source.Term, ctx *symbols.Context, sc *scope) (ast.Term, error) {
	switch term := t.(type) {
	case *source.Symbol:
		return translateSymbol(term, ctx)
	case *source.Variable:
		return &ast.Variable{Declaration: sc.resolve(term.Name)}, nil
	case *source.BinaryOperation:
		op, err := translateBinaryOp(term.Operator, term.Location)
		if err != nil {
			return nil, err
		}
		left, err := translateTerm(term.Left, ctx, sc)
		if err != nil {
			return nil, err
		}
		right, err := translateTerm(term.Right, ctx, sc)
		if err != nil {
			return nil, err
		}
		return &ast.BinaryOperation{Op: op, Left: left, Right: right}, nil
	case *source.UnaryOperation:
		switch term.Operator {
		case source.UnaryMinus:
			arg, err := translateTerm(term.Argument, ctx, sc)
			if err != nil {
				return nil, err
			}
			return &ast.UnaryOperation{Op: ast.Minus, Argument: arg}, nil
		case source.UnaryAbsolute:
			return nil, errs.NewTranslationFailure(term.Location, "unary operation \"absolute value\" is not supported")
		default:
			return nil, errs.NewTranslationFailure(term.Location, "unary operator is not supported")
		}
	case *source.Interval:
		from, err := translateTerm(term.Left, ctx, sc)
		if err != nil {
			return nil, err
		}
		to, err := translateTerm(term.Right, ctx, sc)
		if err != nil {
			return nil, err
		}
		return &ast.Interval{From: from, To: to}, nil
	case *source.Function:
		if term.External {
			return nil, errs.NewTranslationFailure(term.Location, "external functions are not supported")
		}
		decl := ctx.FindOrCreateFunction(term.Name, len(term.Args))
		args := make([]ast.Term, len(term.Args))
		for i, a := range term.Args {
			translated, err := translateTerm(a, ctx, sc)
			if err != nil {
				return nil, err
			}
			args[i] = translated
		}
		return &ast.Function{Declaration: decl, Args: args}, nil
	case *source.Pool:
		return nil, errs.NewTranslationFailure(term.Location, "pools are not supported")
	default:
		return nil, errs.NewLogicFailure("unexpected source term type %T", t)
	}
}

func translateSymbol(s *source.Symbol, ctx *symbols.Context) (ast.Term, error) {
	switch s.Kind {
	case source.SymbolNumber:
		return &ast.Integer{Value: s.Number}, nil
	case source.SymbolInfimum:
		return &ast.SpecialInteger{Kind: ast.Infimum}, nil
	case source.SymbolSupremum:
		return &ast.SpecialInteger{Kind: ast.Supremum}, nil
	case source.SymbolString:
		return &ast.StringTerm{Value: s.Text}, nil
	case source.SymbolFunction:
		decl := ctx.FindOrCreateFunction(s.Text, 0)
		return &ast.Function{Declaration: decl}, nil
	default:
		return nil, errs.NewLogicFailure("unexpected symbol kind %d", s.Kind)
	}
}

func translateBinaryOp(op source.BinaryOperator, loc source.Location) (ast.BinaryOp, error) {
	switch op {
	case source.OpAdd:
		return ast.Add, nil
	case source.OpSub:
		return ast.Sub, nil
	case source.OpMul:
		return ast.Mul, nil
	case source.OpDiv:
		return ast.Div, nil
	case source.OpMod:
		return ast.Mod, nil
	case source.OpPow:
		return 0, errs.NewTranslationFailure(loc, "binary operator \"power\" is not supported")
	default:
		return 0, errs.NewTranslationFailure(loc, "bitwise operators are not supported")
	}
}
