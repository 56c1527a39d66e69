package parse

import "github.com/alecthomas/participle/v2/lexer"

// Program is the root grammar node: a sequence of top-level statements, one
// rule/fact/constraint or directive per iteration, matching source.Rule /
// source.ShowSignature / source.External (§6).
type Program struct {
	Statements []*gStatement `@@*`
}

type gStatement struct {
	Pos      lexer.Position
	Show     *gShow     `( @@`
	External *gExternal `| @@`
	Rule     *gRule     `| @@ )`
}

// gShow is a "#show name/arity." directive.
type gShow struct {
	Pos   lexer.Position
	Name  string `"#show" @Ident "/"`
	Arity int    `@Number "."`
}

// gExternal is a "#external name/arity." directive.
type gExternal struct {
	Pos   lexer.Position
	Name  string `"#external" @Ident "/"`
	Arity int    `@Number "."`
}

// gRule is "head :- body." / "head." / ":- body." — the head and the ":-"
// body clause are each optional, matching a fact, an integrity constraint,
// or a full rule.
type gRule struct {
	Pos  lexer.Position
	Head *gHead        `[ @@ ]`
	Body []*gBodyLit   `[ ":-" @@ ( "," @@ )* ] "."`
}

// gHead is one of: a choice aggregate "{ atom }", or a (possibly singleton)
// disjunction of atoms "a1 | a2 | ...". The rule translator (package
// translate) rejects anything beyond what §4.3 allows; this grammar stays
// permissive about what it accepts syntactically.
type gHead struct {
	Pos       lexer.Position
	Choice    *gAtom   `( "{" @@ "}"`
	Disjuncts []*gAtom `| @@ ( "|" @@ )* )`
}

type gAtom struct {
	Pos  lexer.Position
	Name string    `@Ident`
	Args []*gTerm   `[ "(" @@ ( "," @@ )* ")" ]`
}

// gBodyLit is one body literal: a (possibly negated, possibly doubly
// negated) atom, or a comparison between two terms.
type gBodyLit struct {
	Pos        lexer.Position
	Negation   []string     `@"not"*`
	Comparison *gComparison `(  @@`
	Atom       *gAtom       ` | @@ )`
}

type gComparison struct {
	Pos   lexer.Position
	Left  *gTerm            `@@`
	Op    string            `@( "=" | "!=" | "<=" | ">=" | "<" | ">" )`
	Right *gTerm            `@@`
}

// gTerm is the lowest-precedence term production: an additive expression
// optionally forming an interval a..b.
type gTerm struct {
	Pos   lexer.Position
	Left  *gAddExpr `@@`
	Right *gAddExpr `[ ".." @@ ]`
}

type gAddExpr struct {
	Pos   lexer.Position
	Left  *gMulExpr    `@@`
	Rest  []*gAddTail  `@@*`
}

type gAddTail struct {
	Op    string    `@( "+" | "-" )`
	Right *gMulExpr `@@`
}

type gMulExpr struct {
	Pos  lexer.Position
	Left *gPowExpr   `@@`
	Rest []*gMulTail `@@*`
}

type gMulTail struct {
	Op    string    `@( "*" | "/" | "\\" )`
	Right *gPowExpr `@@`
}

type gPowExpr struct {
	Pos   lexer.Position
	Left  *gUnary `@@`
	Right *gUnary `[ "**" @@ ]`
}

// gUnary is an optional "-" prefix followed by either a primary or the
// bracketed absolute-value form "|t|" (source.UnaryMinus /
// source.UnaryAbsolute; "-|t|" yields a minus applied to the absolute value).
type gUnary struct {
	Pos     lexer.Position
	Minus   bool      `@"-"?`
	Abs     *gTerm    `(   "|" @@ "|"`
	Primary *gPrimary `  | @@ )`
}

// gPrimary is an atomic term: a number, string, #inf/#sup constant, a
// variable, a 0-ary or n-ary function application, or a parenthesized term.
type gPrimary struct {
	Pos      lexer.Position
	Number   *int64    `(  @Number`
	Text     *string   ` | @String`
	Infimum  bool      ` | @"#inf"`
	Supremum bool      ` | @"#sup"`
	Variable *string   ` | @Variable`
	Function *gAtom    ` | @@`
	Paren    *gTerm    ` | "(" @@ ")" )`
}
