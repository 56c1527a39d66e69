// Package parse is a convenience, non-normative front end (source/rule.go's
// doc comment on StatementVisitor): a participle-based reader for a textual
// ASP-like syntax that drives the core pipeline's source.StatementVisitor,
// used by the test suite and by cmd/anthem. A real ASP grounder's front end
// is explicitly out of scope for the core (spec.md §1) — this package exists
// only so the module has something to read files with.
//
// Grounded on kanso-lang-kanso's grammar package: a participle lexer.MustSimple
// lexer plus struct-tag grammar feeding participle.Build, and on its
// parser.ParseFile/ParseSource pair of entry points.
package parse

import "github.com/alecthomas/participle/v2/lexer"

// Lexer tokenizes the subset of ASP's textual syntax this front end
// accepts: facts and rules, integrity constraints, choice and disjunctive
// heads, comparisons, arithmetic, intervals, and #show/#external
// directives. Predicate/function names start lower-case; variables start
// upper-case or "_", following ASP's own lexical convention.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `%[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Directive", Pattern: `#[a-zA-Z_]+`},
	{Name: "Ident", Pattern: `[a-z][a-zA-Z0-9_']*`},
	{Name: "Variable", Pattern: `[A-Z_][a-zA-Z0-9_']*`},
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "DotDot", Pattern: `\.\.`},
	{Name: "Pow", Pattern: `\*\*`},
	{Name: "ColonDash", Pattern: `:-`},
	{Name: "LessEqual", Pattern: `<=`},
	{Name: "GreaterEqual", Pattern: `>=`},
	{Name: "NotEqual", Pattern: `!=`},
	{Name: "Punct", Pattern: `[|{}()\[\].,;+\-*/\\=<>]`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
})
