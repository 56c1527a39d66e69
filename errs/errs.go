// Package errs implements the error taxonomy of §7: TranslationFailure and
// LogicFailure are fatal for the surrounding translation unit;
// SimplificationFailure and CompletionFailure specialize LogicFailure for
// their respective passes; Warning is informational and never aborts
// anything. Multiple TranslationFailures accumulated while translating the
// rules of one file are combined with go.uber.org/multierr (grounded on the
// teacher's engine/seminaivebottomup.go use of the same package), exactly
// as the teacher accumulates per-clause evaluation errors without letting
// one bad clause stop the rest.
package errs

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/potassco/anthem-go/source"
)

// TranslationFailure is raised for an unsupported source construct or a
// violated precondition (e.g. a head aggregate with guards). Fatal for the
// current rule; translation of other rules in the same file continues.
type TranslationFailure struct {
	Location source.Location
	Message  string
}

func (e *TranslationFailure) Error() string {
	if e.Location.IsZero() {
		return "translation failure: " + e.Message
	}
	return fmt.Sprintf("%s: %s", e.Location, e.Message)
}

// NewTranslationFailure constructs a TranslationFailure at loc.
func NewTranslationFailure(loc source.Location, format string, args ...any) error {
	return &TranslationFailure{Location: loc, Message: fmt.Sprintf(format, args...)}
}

// LogicFailure indicates a broken internal invariant (e.g. an unexpected
// AST variant after normalization). Carries no location; always a bug.
type LogicFailure struct {
	Message string
}

func (e *LogicFailure) Error() string { return "internal error: " + e.Message }

// NewLogicFailure constructs a LogicFailure.
func NewLogicFailure(format string, args ...any) error {
	return &LogicFailure{Message: fmt.Sprintf(format, args...)}
}

// SimplificationFailure specializes LogicFailure for the simplifier (C6).
type SimplificationFailure struct {
	Message string
}

func (e *SimplificationFailure) Error() string { return "simplification error: " + e.Message }

// NewSimplificationFailure constructs a SimplificationFailure.
func NewSimplificationFailure(format string, args ...any) error {
	return &SimplificationFailure{Message: fmt.Sprintf(format, args...)}
}

// CompletionFailure specializes LogicFailure for completion (C5): a
// predicate with defining rules but no declaration in the Context, or a
// defining rule whose number of head arguments differs from the predicate's
// arity.
type CompletionFailure struct {
	Message string
}

func (e *CompletionFailure) Error() string { return "completion error: " + e.Message }

// NewCompletionFailure constructs a CompletionFailure.
func NewCompletionFailure(format string, args ...any) error {
	return &CompletionFailure{Message: fmt.Sprintf(format, args...)}
}

// IsFatal reports whether err should abort translation of the file it came
// from. All of the typed errors in this package are fatal by construction;
// this helper exists for callers that receive a plain `error` and need to
// decide whether to keep processing a Warning-only situation (which is
// never constructed as an `error` at all — see Warning below).
func IsFatal(err error) bool { return err != nil }

// Append accumulates err into merr using multierr, preserving the "no
// partial output on failure, but keep translating the rest of the file"
// policy (§7 Propagation).
func Append(merr error, err error) error {
	return multierr.Append(merr, err)
}

// Warning is a non-fatal diagnostic: the pipeline raises one for a hidden
// predicate skipped due to circularity and for a semantics downgrade to the
// logic of here-and-there; an unused #show or an #external with no matching
// predicate raises none. Warnings are never raised as errors;
// driver.Pipeline collects them (see Pipeline.Warnings) separately from the
// fatal multierr chain, and cmd/anthem logs them.
type Warning struct {
	Location source.Location
	Message  string
}

func (w Warning) String() string {
	if w.Location.IsZero() {
		return w.Message
	}
	return fmt.Sprintf("%s: %s", w.Location, w.Message)
}
