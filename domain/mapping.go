package domain

import (
	"github.com/potassco/anthem-go/ast"
	"github.com/potassco/anthem-go/symbols"
	"github.com/potassco/anthem-go/visit"
)

// Mapping is the alternative to Unify described in §4.8: instead of
// injecting integers into a union sort via an uninterpreted wrapper, it
// encodes integer literals and symbolic constants as plain integers — n for
// an integer n becomes 2n, and each distinct symbolic constant (0-ary
// function) is assigned a fresh odd integer — without any auxiliary function
// symbols. String literals, #inf/#sup and functions applied to arguments are
// not encoded and stay as they are. Arithmetic and comparisons are left
// native.
type Mapping struct {
	codes map[*symbols.FunctionDeclaration]int64
	next  int64
}

// NewMapping returns an empty code table; codes are assigned on first use
// so Map can run over several formulas sharing one symbol table.
func NewMapping() *Mapping {
	return &Mapping{codes: make(map[*symbols.FunctionDeclaration]int64), next: 1}
}

// Map rewrites f under the integer/odd-integer encoding. Like Unify, it
// also settles every quantified variable's sort to Integer, since the
// target domain no longer distinguishes sorts.
func (m *Mapping) Map(f ast.Formula) ast.Formula {
	return visit.RewriteFormula(f, func(self *ast.Formula) {
		switch x := (*self).(type) {
		case *ast.Exists:
			for _, v := range x.Vars {
				v.Sort = symbols.Integer
			}
		case *ast.ForAll:
			for _, v := range x.Vars {
				v.Sort = symbols.Integer
			}
		}
	}, func(self *ast.Term) {
		*self = m.mapTerm(*self)
	})
}

func (m *Mapping) mapTerm(t ast.Term) ast.Term {
	switch x := t.(type) {
	case *ast.Integer:
		return &ast.Integer{Value: 2 * x.Value}
	case *ast.Function:
		if len(x.Args) == 0 {
			return &ast.Integer{Value: m.codeFor(x.Declaration)}
		}
		return t
	default:
		return t
	}
}

// codeFor assigns each distinct symbolic constant a fresh odd integer the
// first time it's seen, so a=b iff code(a)=code(b) — the encoding that
// keeps the mapping injective.
func (m *Mapping) codeFor(decl *symbols.FunctionDeclaration) int64 {
	if code, ok := m.codes[decl]; ok {
		return code
	}
	code := 2*m.next + 1
	m.next++
	m.codes[decl] = code
	return code
}
