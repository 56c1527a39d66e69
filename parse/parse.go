package parse

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"

	"github.com/potassco/anthem-go/source"
)

var parser = buildParser()

func buildParser() *participle.Parser[Program] {
	p, err := participle.Build[Program](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(4),
	)
	if err != nil {
		panic(fmt.Errorf("parse: failed to build grammar: %w", err))
	}
	return p
}

// File reads path and drives v's StatementVisitor methods over every
// statement it contains, in source order, stopping at the first parse or
// visitor error.
func File(path string, v source.StatementVisitor) error {
	text, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	return String(path, string(text), v)
}

// String parses source text already in memory (name is used only for
// location reporting) and drives v the same way File does.
func String(name, text string, v source.StatementVisitor) error {
	prog, err := parser.ParseString(name, text)
	if err != nil {
		return reportParseError(name, text, err)
	}
	return drive(prog, v)
}

// reportParseError renders a caret-style diagnostic for a syntax error,
// matching the --color CLI option's intent (§6): colorized when attached to
// a terminal, plain text otherwise (fatih/color auto-detects this).
func reportParseError(name, text string, err error) error {
	pe, ok := err.(participle.Error)
	if !ok {
		return fmt.Errorf("%s: %w", name, err)
	}
	pos := pe.Position()
	lines := strings.Split(text, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		return fmt.Errorf("%s: %w", name, err)
	}
	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", max(pos.Column-1, 0)) + "^"
	color.New(color.FgRed).Fprintf(os.Stderr, "%s:%d:%d: %s\n", name, pos.Line, pos.Column, pe.Message())
	fmt.Fprintln(os.Stderr, line)
	color.New(color.FgHiRed).Fprintln(os.Stderr, caret)
	return fmt.Errorf("%s:%d:%d: %s", name, pos.Line, pos.Column, pe.Message())
}
