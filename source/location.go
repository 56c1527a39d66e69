// Package source specifies the boundary the translation pipeline consumes:
// the source AST produced by an external ASP front-end parser (out of
// scope for this module; see spec.md §1 and §6). Only the shapes are
// defined here — Rule, HeadLiteral, BodyLiteral, Term, Sign, the two
// operator enumerations, and Location — plus the StatementVisitor contract a front
// end is expected to let core code dispatch through.
package source

import "fmt"

// Location pinpoints a span in one source file, carried by every source AST
// node for use in TranslationFailure messages (§6, §7).
type Location struct {
	File                         string
	LineStart, ColStart          int
	LineEnd, ColEnd              int
}

// IsZero reports whether loc carries no location information (e.g. a
// synthetic rule built directly in Go rather than parsed from text).
func (loc Location) IsZero() bool { return loc.File == "" && loc.LineStart == 0 }

func (loc Location) String() string {
	if loc.IsZero() {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", loc.File, loc.LineStart, loc.ColStart)
}
