package fractions

import (
	"github.com/hashicorp/go-multierror"
)

// Factor is a term of a product: an Int, a Frac, or a Rational.
type Factor interface {
	factor() (Rational, error)
}

// Int is an integer factor.
type Int int64

// Frac is a fraction factor, Sign*Num/Den.
type Frac struct {
	Sign     Sign
	Num, Den int64
}

func (n Int) factor() (Rational, error) {
	return NewRational(Plus, int64(n), 1)
}

func (f Frac) factor() (Rational, error) {
	return NewRational(f.Sign, f.Num, f.Den)
}

func (x Rational) factor() (Rational, error) {
	return x, nil
}

// group is a group under construction.
type group struct {
	sign  Sign
	nodes []node
}

// Builder builds an expression term by term. Groups opened with Open collect
// every term added until the matching Close.
//
// Builder methods return the builder for chaining. A method that fails
// records its error and leaves the expression unchanged; Expr reports every
// recorded error. The zero value is an empty builder ready to use.
type Builder struct {
	// stack holds the open groups. stack[0] is the top-level expression.
	stack []*group
	errs  *multierror.Error
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// cur returns the group currently being edited.
func (b *Builder) cur() *group {
	if len(b.stack) == 0 {
		b.stack = append(b.stack, &group{sign: Plus})
	}
	return b.stack[len(b.stack)-1]
}

func (b *Builder) fail(err error) *Builder {
	b.errs = multierror.Append(b.errs, err)
	return b
}

// Value returns the value of f, or the error a builder records when f is added.
func Value(f Factor) (Rational, error) {
	return f.factor()
}

// lift converts f to a literal node.
func lift(f Factor) (node, error) {
	r, err := f.factor()
	if err != nil {
		return node{}, err
	}
	_, whole := f.(Int)
	return node{kind: nodeLit, val: r, whole: whole}, nil
}

// Term adds the single factor f. An Int renders as a bare integer.
func (b *Builder) Term(f Factor) *Builder {
	n, err := lift(f)
	if err != nil {
		return b.fail(err)
	}
	g := b.cur()
	g.nodes = append(g.nodes, n)
	return b
}

// Number adds the integer n.
func (b *Builder) Number(n int64) *Builder {
	return b.Term(Int(n))
}

// Fraction adds sign*num/den. A zero denominator records a *FractionError.
func (b *Builder) Fraction(sign Sign, num, den int64) *Builder {
	return b.Term(Frac{Sign: sign, Num: num, Den: den})
}

// Rational adds x.
func (b *Builder) Rational(x Rational) *Builder {
	return b.Term(x)
}

// Open starts a parenthesized group whose reduced value is multiplied by sign.
// Terms are added to the group until the matching Close.
func (b *Builder) Open(sign Sign) *Builder {
	b.cur()
	b.stack = append(b.stack, &group{sign: sign})
	return b
}

// Close ends the innermost open group. Closing with no open group records a
// *GroupError.
func (b *Builder) Close() *Builder {
	if len(b.stack) <= 1 {
		return b.fail(&GroupError{Depth: 0})
	}
	g := b.stack[len(b.stack)-1]
	b.stack[len(b.stack)-1] = nil
	b.stack = b.stack[:len(b.stack)-1]
	p := b.cur()
	p.nodes = append(p.nodes, node{kind: nodeGroup, sign: g.sign, kids: g.nodes})
	return b
}

// Product adds the product of factors. If any factor is invalid, the product
// is not added.
func (b *Builder) Product(factors ...Factor) *Builder {
	kids := make([]node, 0, len(factors))
	ok := true
	for _, f := range factors {
		n, err := lift(f)
		if err != nil {
			b.fail(err)
			ok = false
			continue
		}
		kids = append(kids, n)
	}
	if ok {
		g := b.cur()
		g.nodes = append(g.nodes, node{kind: nodeProd, kids: kids})
	}
	return b
}

// Depth returns the number of open groups.
func (b *Builder) Depth() int {
	if len(b.stack) == 0 {
		return 0
	}
	return len(b.stack) - 1
}

// Err returns the errors recorded so far, or nil. A single error is returned
// as itself; several are combined into a *multierror.Error.
func (b *Builder) Err() error {
	if b.errs == nil {
		return nil
	}
	if len(b.errs.Errors) == 1 {
		return b.errs.Errors[0]
	}
	return b.errs.ErrorOrNil()
}

// Expr returns the built expression. It fails if any builder call failed or if
// a group is still open. The builder may continue to be used afterward
// without affecting the returned expression.
func (b *Builder) Expr() (*Expr, error) {
	if err := b.Err(); err != nil {
		return nil, err
	}
	if d := b.Depth(); d > 0 {
		return nil, &GroupError{Depth: d}
	}
	g := b.cur()
	nodes := make([]node, len(g.nodes))
	copy(nodes, g.nodes)
	return &Expr{nodes: nodes}, nil
}
