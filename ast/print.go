package ast

import (
	"strings"

	"github.com/potassco/anthem-go/symbols"
)

// String renders terms and formulas using the same infix keyword syntax as
// the human-readable emit mode (§6 Emit format). It exists so declarations,
// errors and tests have a readable default without depending on package
// emit; emit.HumanReadable additionally handles parenthesization styles and
// TPTP has its own renderer entirely.

func (t *Integer) String() string        { return formatInt(t.Value) }
func (t *SpecialInteger) String() string { return t.Kind.String() }
func (t *StringTerm) String() string     { return "\"" + t.Value + "\"" }
func (t *BooleanTerm) String() string {
	if t.Value {
		return "#true"
	}
	return "#false"
}

func (t *Function) String() string {
	if len(t.Args) == 0 {
		return t.Declaration.Name
	}
	parts := make([]string, len(t.Args))
	for i, a := range t.Args {
		parts[i] = a.String()
	}
	return t.Declaration.Name + "(" + strings.Join(parts, ",") + ")"
}

func (t *Variable) String() string { return t.Declaration.DisplayName }

func (t *BinaryOperation) String() string {
	return "(" + t.Left.String() + " " + t.Op.String() + " " + t.Right.String() + ")"
}

func (t *UnaryOperation) String() string {
	if t.Op == Abs {
		return "|" + t.Argument.String() + "|"
	}
	return "-" + t.Argument.String()
}

func (t *Interval) String() string {
	return t.From.String() + ".." + t.To.String()
}

func (f *Boolean) String() string {
	if f.Value {
		return "#true"
	}
	return "#false"
}

func (f *Comparison) String() string {
	return f.Left.String() + " " + f.Op.String() + " " + f.Right.String()
}

func (f *In) String() string {
	return f.Element.String() + " in " + f.Set.String()
}

func (f *Predicate) String() string {
	if len(f.Args) == 0 {
		return f.Declaration.Name
	}
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.String()
	}
	return f.Declaration.Name + "(" + strings.Join(parts, ",") + ")"
}

func (f *Not) String() string {
	return "not " + f.Argument.String()
}

func (f *And) String() string {
	if len(f.Args) == 0 {
		return "#true"
	}
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.String()
	}
	return "(" + strings.Join(parts, " and ") + ")"
}

func (f *Or) String() string {
	if len(f.Args) == 0 {
		return "#false"
	}
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.String()
	}
	return "(" + strings.Join(parts, " or ") + ")"
}

func (f *Implies) String() string {
	return "(" + f.Antecedent.String() + " -> " + f.Consequent.String() + ")"
}

func (f *Biconditional) String() string {
	return "(" + f.Left.String() + " <-> " + f.Right.String() + ")"
}

func (f *Exists) String() string {
	return "exists " + joinVars(f.Vars) + " (" + f.Argument.String() + ")"
}

func (f *ForAll) String() string {
	return "forall " + joinVars(f.Vars) + " (" + f.Argument.String() + ")"
}

func joinVars(vars []*symbols.VariableDeclaration) string {
	parts := make([]string, len(vars))
	for i, v := range vars {
		parts[i] = v.String()
	}
	return strings.Join(parts, ",")
}

func formatInt(v int64) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [24]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
