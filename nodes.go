package fractions

import (
	"strings"
)

// node is one term of an expression.
type node struct {
	kind nodeKind

	// val is the value of a literal.
	val Rational
	// whole marks a literal added as an integer, rendered without "/ 1".
	whole bool
	// sign is the sign applied to a group's reduced value.
	sign Sign
	// kids are the terms of a group or the factors of a product.
	kids []node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeLit   // val
	nodeGroup // sign * (sum of kids)
	nodeProd  // product of kids
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node

// Expr is a built expression: an ordered sum of terms. An Expr is immutable
// and safe to evaluate concurrently.
type Expr struct {
	nodes []node
}

// Len returns the number of top-level terms in e.
func (e *Expr) Len() int {
	if e == nil {
		return 0
	}
	return len(e.nodes)
}

// String renders e. Terms are separated by spaces, and the first term never
// shows a leading plus, e.g. "2 - 7 / 3 + 5 / 6 - (1 / 4 + 3 / 10)".
func (e *Expr) String() string {
	if e == nil {
		return ""
	}
	var b strings.Builder
	fmtterms(&b, e.nodes)
	return b.String()
}

func fmtterms(b *strings.Builder, nodes []node) {
	for i := range nodes {
		if i > 0 {
			b.WriteByte(' ')
		}
		nodes[i].fmt(b, i == 0)
	}
}

func (n *node) fmt(b *strings.Builder, first bool) {
	switch n.kind {
	case nodeLit:
		n.val.fmt(b, !first, n.whole)
	case nodeGroup:
		switch {
		case n.sign < 0:
			b.WriteString("- ")
		case !first:
			b.WriteString("+ ")
		}
		b.WriteByte('(')
		fmtterms(b, n.kids)
		b.WriteByte(')')
	case nodeProd:
		if len(n.kids) == 0 {
			// Empty products can't be reduced. Mark them with an invalid
			// character.
			b.WriteByte('$')
			return
		}
		for i := range n.kids {
			if i > 0 {
				b.WriteString(" * ")
			}
			n.kids[i].fmt(b, first || i > 0)
		}
	default:
		panic("fractions: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}
