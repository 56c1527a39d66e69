// Package visit provides the generic, reusable term/formula traversals the
// later passes (simplify, sorts, hidden, domain) are built on (C2). Two
// shapes are provided: a post-order *rewrite* that lets a callback replace
// the node it is visiting by assigning through a `*ast.Formula`/`*ast.Term`
// slot, and a read-only pre-order *walk* for collectors.
package visit

import "github.com/potassco/anthem-go/ast"

// RewriteFormula performs a post-order traversal of f: it first rewrites
// every child formula (and, through them, every child term), then invokes
// post with a pointer to the slot holding the (possibly already rewritten)
// node, so post may replace it in place. It returns the possibly-replaced
// root.
func RewriteFormula(f ast.Formula, post func(self *ast.Formula), postTerm func(self *ast.Term)) ast.Formula {
	root := f
	rewriteFormula(&root, post, postTerm)
	return root
}

func rewriteFormula(self *ast.Formula, post func(*ast.Formula), postTerm func(*ast.Term)) {
	switch n := (*self).(type) {
	case *ast.And:
		for i := range n.Args {
			rewriteFormula(&n.Args[i], post, postTerm)
		}
	case *ast.Or:
		for i := range n.Args {
			rewriteFormula(&n.Args[i], post, postTerm)
		}
	case *ast.Not:
		rewriteFormula(&n.Argument, post, postTerm)
	case *ast.Implies:
		rewriteFormula(&n.Antecedent, post, postTerm)
		rewriteFormula(&n.Consequent, post, postTerm)
	case *ast.Biconditional:
		rewriteFormula(&n.Left, post, postTerm)
		rewriteFormula(&n.Right, post, postTerm)
	case *ast.Exists:
		rewriteFormula(&n.Argument, post, postTerm)
	case *ast.ForAll:
		rewriteFormula(&n.Argument, post, postTerm)
	case *ast.Comparison:
		if postTerm != nil {
			RewriteTerm2(&n.Left, postTerm)
			RewriteTerm2(&n.Right, postTerm)
		}
	case *ast.In:
		if postTerm != nil {
			RewriteTerm2(&n.Element, postTerm)
			RewriteTerm2(&n.Set, postTerm)
		}
	case *ast.Predicate:
		if postTerm != nil {
			for i := range n.Args {
				RewriteTerm2(&n.Args[i], postTerm)
			}
		}
	case *ast.Boolean:
		// leaf, nothing to recurse into
	}
	post(self)
}

// RewriteTerm performs a post-order traversal of t, analogous to
// RewriteFormula but over the term sub-language.
func RewriteTerm(t ast.Term, post func(self *ast.Term)) ast.Term {
	root := t
	RewriteTerm2(&root, post)
	return root
}

// RewriteTerm2 is RewriteTerm operating directly on an existing slot.
func RewriteTerm2(self *ast.Term, post func(*ast.Term)) {
	switch n := (*self).(type) {
	case *ast.Function:
		for i := range n.Args {
			RewriteTerm2(&n.Args[i], post)
		}
	case *ast.BinaryOperation:
		RewriteTerm2(&n.Left, post)
		RewriteTerm2(&n.Right, post)
	case *ast.UnaryOperation:
		RewriteTerm2(&n.Argument, post)
	case *ast.Interval:
		RewriteTerm2(&n.From, post)
		RewriteTerm2(&n.To, post)
	}
	post(self)
}

// WalkFormula performs a read-only pre-order traversal of f, invoking visit
// on every formula node and visitTerm on every term node reachable from it.
// Either callback may be nil.
func WalkFormula(f ast.Formula, visitF func(ast.Formula), visitT func(ast.Term)) {
	if visitF != nil {
		visitF(f)
	}
	switch x := f.(type) {
	case *ast.Comparison:
		WalkTerm(x.Left, visitT)
		WalkTerm(x.Right, visitT)
	case *ast.In:
		WalkTerm(x.Element, visitT)
		WalkTerm(x.Set, visitT)
	case *ast.Predicate:
		for _, a := range x.Args {
			WalkTerm(a, visitT)
		}
	case *ast.Not:
		WalkFormula(x.Argument, visitF, visitT)
	case *ast.And:
		for _, a := range x.Args {
			WalkFormula(a, visitF, visitT)
		}
	case *ast.Or:
		for _, a := range x.Args {
			WalkFormula(a, visitF, visitT)
		}
	case *ast.Implies:
		WalkFormula(x.Antecedent, visitF, visitT)
		WalkFormula(x.Consequent, visitF, visitT)
	case *ast.Biconditional:
		WalkFormula(x.Left, visitF, visitT)
		WalkFormula(x.Right, visitF, visitT)
	case *ast.Exists:
		WalkFormula(x.Argument, visitF, visitT)
	case *ast.ForAll:
		WalkFormula(x.Argument, visitF, visitT)
	}
}

// WalkTerm performs a read-only pre-order traversal of t.
func WalkTerm(t ast.Term, visitT func(ast.Term)) {
	if visitT != nil {
		visitT(t)
	}
	switch x := t.(type) {
	case *ast.Function:
		for _, a := range x.Args {
			WalkTerm(a, visitT)
		}
	case *ast.BinaryOperation:
		WalkTerm(x.Left, visitT)
		WalkTerm(x.Right, visitT)
	case *ast.UnaryOperation:
		WalkTerm(x.Argument, visitT)
	case *ast.Interval:
		WalkTerm(x.From, visitT)
		WalkTerm(x.To, visitT)
	}
}
