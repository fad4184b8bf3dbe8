package fractions

import (
	"golang.org/x/sync/errgroup"
)

// reducer collapses expression trees into single values.
type reducer struct {
	// fast enables summing terms that already share a denominator without
	// computing an lcm.
	fast bool
	// procs is the number of goroutines used to reduce top-level terms.
	procs int
}

// expr reduces a whole expression.
func (r *reducer) expr(e *Expr) (Rational, error) {
	if e.Len() == 0 {
		return Rational{}, &EmptyExpressionError{What: "expression"}
	}
	vals := make([]Rational, len(e.nodes))
	if r.procs > 1 && len(e.nodes) > 1 {
		var g errgroup.Group
		g.SetLimit(r.procs)
		for i := range e.nodes {
			g.Go(func() error {
				v, err := r.node(&e.nodes[i])
				vals[i] = v
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return Rational{}, err
		}
	} else {
		for i := range e.nodes {
			v, err := r.node(&e.nodes[i])
			if err != nil {
				return Rational{}, err
			}
			vals[i] = v
		}
	}
	return r.sum(vals)
}

// node reduces one term.
func (r *reducer) node(n *node) (Rational, error) {
	switch n.kind {
	case nodeLit:
		return n.val.Normalize(), nil
	case nodeGroup:
		vals := make([]Rational, len(n.kids))
		for i := range n.kids {
			v, err := r.node(&n.kids[i])
			if err != nil {
				return Rational{}, err
			}
			vals[i] = v
		}
		s, err := r.sum(vals)
		if err != nil {
			return Rational{}, err
		}
		return s.withSign(n.sign), nil
	case nodeProd:
		if len(n.kids) == 0 {
			return Rational{}, &EmptyExpressionError{What: "product"}
		}
		p, err := r.node(&n.kids[0])
		if err != nil {
			return Rational{}, err
		}
		for i := 1; i < len(n.kids); i++ {
			v, err := r.node(&n.kids[i])
			if err != nil {
				return Rational{}, err
			}
			if p, err = p.Mul(v); err != nil {
				return Rational{}, err
			}
		}
		return p, nil
	default:
		panic("fractions: invalid node kind " + n.kind.String())
	}
}

// sum adds normalized values. The sum of no values is zero.
func (r *reducer) sum(vals []Rational) (Rational, error) {
	if len(vals) == 0 {
		return Rational{}, nil
	}
	if r.fast && homogeneous(vals) {
		logger.Debugf("summing %d terms over shared denominator %d", len(vals), vals[0].den())
		return sumHomogeneous(vals)
	}
	return sumHeterogeneous(vals)
}

// homogeneous returns whether all of vals have the same denominator.
func homogeneous(vals []Rational) bool {
	for _, v := range vals[1:] {
		if v.dm1 != vals[0].dm1 {
			return false
		}
	}
	return true
}

// sumHomogeneous folds vals left to right with Add. vals must share a
// denominator apart from zeros.
func sumHomogeneous(vals []Rational) (Rational, error) {
	s := vals[0].Normalize()
	for i, v := range vals[1:] {
		var err error
		if s, err = s.Add(v); err != nil {
			return Rational{}, err
		}
		logger.Debugf("partial sum %d: %v", i+1, s)
	}
	return s, nil
}

// sumHeterogeneous rewrites vals over the lcm of their denominators and sums
// them.
func sumHeterogeneous(vals []Rational) (Rational, error) {
	dens := make([]int64, len(vals))
	for i, v := range vals {
		dens[i] = v.Normalize().den()
	}
	l, err := LCM(dens...)
	if err != nil {
		return Rational{}, err
	}
	logger.Debugf("homogenizing %d terms over lcm %d", len(vals), l)
	h := make([]Rational, len(vals))
	for i, v := range vals {
		if h[i], err = v.Normalize().rescale(l); err != nil {
			return Rational{}, err
		}
	}
	return sumHomogeneous(h)
}
