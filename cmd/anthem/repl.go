package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/potassco/anthem-go/ast"
	"github.com/potassco/anthem-go/driver"
	"github.com/potassco/anthem-go/parse"
	"github.com/potassco/anthem-go/symbols"
)

const (
	normalPrompt    = "anthem> "
	continuedPrompt = " ...  > "
)

// runREPL is an interactive line-at-a-time mode: read one statement
// (possibly spanning several lines, ended by "."), translate it in the
// context of every statement read so far, and print only the formulas the
// new statement contributed. Grounded on google-mangle's
// interpreter.Interpreter.Loop — same readline.New-per-line/AddHistory
// prompt discipline, same multi-line continuation-until-terminator read.
func runREPL(ctx *symbols.Context, opts driver.Options) error {
	p := driver.New(ctx, opts)
	seen, warningsSeen := 0, 0

	fmt.Println("anthem interactive mode — enter rules terminated by '.', ::quit to exit")
	for {
		line, err := readLine(normalPrompt)
		if err == io.EOF || err == readline.ErrInterrupt {
			return nil
		}
		if err != nil {
			return err
		}

		switch {
		case line == "":
			continue
		case line == "::quit" || line == "::exit":
			return nil
		case line == "::help":
			fmt.Println("enter a rule, fact, integrity constraint, or #show/#external directive, ending in '.'")
			fmt.Println("::quit or ::exit to leave")
			continue
		}

		text := line
		for !strings.HasSuffix(strings.TrimSpace(text), ".") {
			cont, err := readLine(continuedPrompt)
			if err == io.EOF || err == readline.ErrInterrupt {
				return nil
			}
			if err != nil {
				return err
			}
			text += "\n" + cont
		}

		if err := parse.String("<interactive>", text, p); err != nil {
			fmt.Println(err)
			continue
		}
		formulas, _, err := p.Run()
		if err != nil {
			fmt.Println(err)
			continue
		}
		for _, w := range p.Warnings()[warningsSeen:] {
			logWarning(w.String())
		}
		warningsSeen = len(p.Warnings())
		printNew(formulas, &seen, opts)
	}
}

func printNew(formulas []ast.Formula, seen *int, opts driver.Options) {
	for _, f := range formulas[*seen:] {
		printOne(f, opts)
	}
	*seen = len(formulas)
}

func readLine(prompt string) (string, error) {
	rl, err := readline.New(prompt)
	if err != nil {
		return "", err
	}
	defer rl.Close()
	line, err := rl.Readline()
	if err != nil {
		return "", err
	}
	readline.AddHistory(line)
	return strings.TrimSpace(line), nil
}
