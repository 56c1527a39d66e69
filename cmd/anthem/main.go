// Binary anthem translates an answer set program into first-order logic
// (§6): read one or more files (or stdin when none are given), run them
// through package driver's pipeline, and print the resulting formulas either
// as human-readable infix notation or as a TPTP tff() problem file.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	log "github.com/golang/glog"

	"github.com/potassco/anthem-go/ast"
	"github.com/potassco/anthem-go/domain"
	"github.com/potassco/anthem-go/driver"
	"github.com/potassco/anthem-go/emit"
	"github.com/potassco/anthem-go/parse"
	"github.com/potassco/anthem-go/symbols"
	"github.com/potassco/anthem-go/translate"
)

var (
	complete       = flag.Bool("complete", false, "close rules under completion (§4.4)")
	hidden         = flag.Bool("hidden", false, "eliminate hidden predicates via their defining completion (§4.7)")
	detectIntegers = flag.Bool("detect-integers", false, "annotate predicate arguments provably integer-sorted (§4.6)")
	simplify       = flag.Bool("simplify", false, "rewrite formulas into a shorter logically-equivalent form (§4.5)")
	domainPass     = flag.String("domain", "none", "final sort-restriction pass: none, unify, or mapping (§4.8)")
	chooseMode     = flag.Bool("choose-mode", false, "decompose compound atom arguments and comparison operands recursively instead of via the In predicate (§4.3)")
	format         = flag.String("format", "human", "output format: human or tptp")
	parentheses    = flag.String("parentheses", "normal", "human-readable parenthesization: normal or full (§6)")
	colorMode      = flag.String("color", "auto", "colorize diagnostics: always, never, or auto")
	logPriority    = flag.String("log-priority", "warning", "minimum diagnostic priority to print: debug, info, warning, or error")
	interactive    = flag.Bool("interactive", false, "read and translate rules one at a time from an interactive prompt instead of files/stdin")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: anthem [flags] [file...]\n\n")
		fmt.Fprintf(os.Stderr, "Translates an answer set program into first-order logic.\n")
		fmt.Fprintf(os.Stderr, "With no file arguments, reads the program from stdin.\n")
		fmt.Fprintf(os.Stderr, "With --interactive, reads rules one at a time from a prompt instead.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExit codes:\n")
		fmt.Fprintf(os.Stderr, "  0  Translated successfully\n")
		fmt.Fprintf(os.Stderr, "  1  Parse or translation error\n")
		fmt.Fprintf(os.Stderr, "  2  Usage error (bad flag value)\n")
	}
	flag.Parse()
	setColor()

	opts, err := buildOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "anthem: %v\n", err)
		os.Exit(2)
	}

	ctx := symbols.NewContext()

	if *interactive {
		if err := runREPL(ctx, opts); err != nil {
			log.Errorf("anthem: %v", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	p := driver.New(ctx, opts)

	files := flag.Args()
	if len(files) == 0 {
		if err := parse.String("<stdin>", readStdin(), p); err != nil {
			os.Exit(1)
		}
	} else {
		for _, f := range files {
			if err := parse.File(f, p); err != nil {
				os.Exit(1)
			}
		}
	}

	formulas, semantics, err := p.Run()
	if err != nil {
		log.Errorf("anthem: %v", err)
		os.Exit(1)
	}
	for _, w := range p.Warnings() {
		logWarning(w.String())
	}
	log.V(1).Infof("translated under %s", semantics)

	printFormulas(ctx, opts, formulas)
	os.Exit(0)
}

func buildOptions() (driver.Options, error) {
	opts := driver.Options{
		Complete:       *complete,
		Hidden:         *hidden,
		DetectIntegers: *detectIntegers,
		Simplify:       *simplify,
	}
	if *chooseMode {
		opts.TranslateMode = translate.ChooseMode
	}
	switch *domainPass {
	case "none":
		opts.Domain = driver.NoDomainPass
	case "unify":
		opts.Domain = driver.UnifyDomainPass
	case "mapping":
		opts.Domain = driver.MappingDomainPass
	default:
		return opts, fmt.Errorf("--domain must be none, unify, or mapping, got %q", *domainPass)
	}
	return opts, nil
}

func printFormulas(ctx *symbols.Context, opts driver.Options, formulas []ast.Formula) {
	if *format == "tptp" && opts.Domain != driver.NoDomainPass {
		s := domain.NewSymbols(ctx)
		for _, line := range emit.Preamble(s) {
			fmt.Println(line)
		}
	}
	for i, f := range formulas {
		printOneNamed(i+1, f, opts)
	}
}

func printOne(f ast.Formula, opts driver.Options) {
	printOneNamed(1, f, opts)
}

func printOneNamed(n int, f ast.Formula, opts driver.Options) {
	if *format == "tptp" {
		fmt.Println(emit.TPTP(fmt.Sprintf("formula_%d", n), emit.Axiom, f))
		return
	}
	style := emit.Normal
	if *parentheses == "full" {
		style = emit.Full
	}
	fmt.Println(emit.HumanReadable(f, style))
}

func setColor() {
	switch *colorMode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}
}

func logWarning(msg string) {
	if *logPriority == "error" {
		return
	}
	log.Warning(msg)
}

func readStdin() string {
	var b strings.Builder
	buf := make([]byte, 4096)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			b.Write(buf[:n])
		}
		if err != nil {
			break
		}
	}
	return b.String()
}
