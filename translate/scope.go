// Package translate implements the rule translator (C4): mapping one
// source.Rule to a TranslatedRule (body formula, translated head and free
// variables), including the choose-value-in-term construction that, in
// ChooseMode, eliminates compound terms and intervals (§4.3).
//
// Grounded on include/anthem/translation-common/ChooseValueInTerm.h and
// src/anthem/Translate.cpp of the original_source tree; the visitor-per-
// term-variant shape and the fixed auxiliary-variable layout for each
// arithmetic operator are taken directly from there, corrected per the two
// Open Questions spec.md §9 resolves (division/modulo selects exactly one
// of z=q / z=r; power is uniformly unsupported).
package translate

import "github.com/potassco/anthem-go/symbols"

// scope accumulates the free variables of the ScopedFormula under
// construction for one rule, and maps each source variable name already
// seen in this rule to the single declaration it resolves to. Per §4.3: a
// source variable name that recurs within a rule must resolve to the same
// declaration every time ("variable x already in scope"); a name seen for
// the first time is "unbound" and gets a fresh declaration appended to the
// scope. The anonymous wildcard "_" is never shared between occurrences.
type scope struct {
	byName map[string]*symbols.VariableDeclaration
	free   []*symbols.VariableDeclaration
}

func newScope() *scope {
	return &scope{byName: make(map[string]*symbols.VariableDeclaration)}
}

// resolve returns the declaration a source variable name refers to within
// this rule, creating and recording a fresh one on first mention.
func (s *scope) resolve(name string) *symbols.VariableDeclaration {
	if name == "_" {
		fresh := symbols.NewVariableDeclaration(symbols.UserDefined, "_", symbols.Program)
		s.free = append(s.free, fresh)
		return fresh
	}
	if d, ok := s.byName[name]; ok {
		return d
	}
	fresh := symbols.NewVariableDeclaration(symbols.UserDefined, name, symbols.Program)
	s.byName[name] = fresh
	s.free = append(s.free, fresh)
	return fresh
}

// fresh allocates an auxiliary variable not tied to any source name (the
// u_i / i / j / q / r / k / z' variables §4.3 introduces, and the top-level
// z_i allocated per atom argument). Unlike resolve, it is NOT added to
// s.free: body auxiliaries are bound immediately by an Exists wrapped
// around the formula that introduced them, and head variables are handed
// back to the caller as HeadAtomTranslation.AuxVars instead.
func (s *scope) fresh(kind symbols.VariableKind, displayName string, sort symbols.Sort) *symbols.VariableDeclaration {
	return symbols.NewVariableDeclaration(kind, displayName, sort)
}

// auxCounter names auxiliary variables deterministically (u1, u2, ... per
// rule) purely for readability in emitted output; it carries no semantic
// weight since identity is by pointer, not name.
type auxCounter struct{ n int }

func (c *auxCounter) next(prefix string) string {
	c.n++
	return prefix + itoa(c.n)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
