package symbols

import (
	"sort"

	"bitbucket.org/creachadair/stringset"
)

type predicateKey struct {
	name  string
	arity int
}

type functionKey struct {
	name  string
	arity int
}

// Context is the process-lifetime symbol table. It is mutated by every pass
// of the pipeline and is never copied; the driver owns the single instance
// for one file's translation.
type Context struct {
	predicates map[predicateKey]*PredicateDeclaration
	functions  map[functionKey]*FunctionDeclaration

	// predicateOrder preserves first-mention order, which completion (C5) and
	// hidden-predicate elimination (C8) rely on for deterministic output.
	predicateOrder []*PredicateDeclaration

	// DefaultVisibility governs predicates whose declared Visibility is
	// symbols.Default (no explicit #show/#external seen).
	DefaultVisibility Visibility

	// visibleNames and externalNames are populated by #show/#external
	// directives (SPEC_FULL §4.10) before any predicate is resolved, so that
	// FindOrCreatePredicate can apply them at declaration time.
	visibleNames  stringset.Set
	externalNames stringset.Set
}

// NewContext constructs an empty symbol table. By default all predicates are
// visible (ASP's usual convention absent #show directives); callers that
// want the anthem default ("hidden unless shown") should set
// DefaultVisibility to Hidden once #show directives have been collected.
func NewContext() *Context {
	return &Context{
		predicates:        make(map[predicateKey]*PredicateDeclaration),
		functions:         make(map[functionKey]*FunctionDeclaration),
		DefaultVisibility: Visible,
		visibleNames:      stringset.New(),
		externalNames:     stringset.New(),
	}
}

// DeclareShow marks name/arity as explicitly visible, as #show name/arity.
// does, and switches DefaultVisibility to Hidden (anthem's convention: once
// any #show directive is present, only shown predicates are visible).
func (c *Context) DeclareShow(name string, arity int) {
	c.visibleNames.Add(signature(name, arity))
	c.DefaultVisibility = Hidden
	if d, ok := c.predicates[predicateKey{name, arity}]; ok {
		d.Visibility = Visible
	}
}

// DeclareExternal marks name/arity as #external: never completed and never
// eliminated.
func (c *Context) DeclareExternal(name string, arity int) {
	c.externalNames.Add(signature(name, arity))
	if d, ok := c.predicates[predicateKey{name, arity}]; ok {
		d.IsExternal = true
	}
}

func signature(name string, arity int) string {
	return name + "/" + itoa(arity)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// FindOrCreatePredicate returns the unique declaration for name/arity,
// allocating it on first mention (§3 "created lazily by name+arity on first
// mention").
func (c *Context) FindOrCreatePredicate(name string, arity int) *PredicateDeclaration {
	key := predicateKey{name, arity}
	if d, ok := c.predicates[key]; ok {
		return d
	}
	d := &PredicateDeclaration{
		Name:       name,
		Arity:      arity,
		Domains:    make([]Sort, arity),
		Visibility: Default,
	}
	sig := signature(name, arity)
	if c.visibleNames.Contains(sig) {
		d.Visibility = Visible
	}
	if c.externalNames.Contains(sig) {
		d.IsExternal = true
	}
	c.predicates[key] = d
	c.predicateOrder = append(c.predicateOrder, d)
	return d
}

// FindPredicate looks up an existing predicate declaration without creating one.
func (c *Context) FindPredicate(name string, arity int) (*PredicateDeclaration, bool) {
	d, ok := c.predicates[predicateKey{name, arity}]
	return d, ok
}

// FindOrCreateFunction returns the unique declaration for name/arity,
// allocating it on first mention. 0-ary functions represent symbolic
// constants.
func (c *Context) FindOrCreateFunction(name string, arity int) *FunctionDeclaration {
	key := functionKey{name, arity}
	if d, ok := c.functions[key]; ok {
		return d
	}
	d := &FunctionDeclaration{Name: name, Arity: arity, Domain: Program}
	c.functions[key] = d
	return d
}

// Predicates returns all predicate declarations in first-mention order.
func (c *Context) Predicates() []*PredicateDeclaration {
	out := make([]*PredicateDeclaration, len(c.predicateOrder))
	copy(out, c.predicateOrder)
	return out
}

// PredicatesSorted returns all predicate declarations sorted by signature,
// for output that must not depend on mention order (e.g. deterministic
// golden-file tests across input permutations, §8 "Completion is
// order-insensitive").
func (c *Context) PredicatesSorted() []*PredicateDeclaration {
	out := c.Predicates()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].Arity < out[j].Arity
	})
	return out
}

// EffectiveVisibility resolves symbols.Default against the context's default.
func (c *Context) EffectiveVisibility(d *PredicateDeclaration) Visibility {
	if d.Visibility != Default {
		return d.Visibility
	}
	return c.DefaultVisibility
}
