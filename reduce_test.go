package fractions

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathAgreement(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		den := rng.Int63n(50) + 1
		vals := make([]Rational, rng.Intn(8)+1)
		for j := range vals {
			for {
				r, err := NewRational(Sign(rng.Intn(3)-1), rng.Int63n(201)-100, den)
				require.NoError(t, err)
				// Zero normalizes to 0/1, which would make the terms heterogeneous.
				if r.num != 0 {
					vals[j] = r.Normalize()
					break
				}
			}
		}
		require.True(t, homogeneous(vals))
		h, err := sumHomogeneous(vals)
		require.NoError(t, err)
		g, err := sumHeterogeneous(vals)
		require.NoError(t, err)
		if h != g {
			t.Errorf("paths disagree on %v: homogeneous %v, heterogeneous %v", vals, h, g)
		}
	}
}

func TestHomogeneous(t *testing.T) {
	half := Rational{num: 1, dm1: 1}
	third := Rational{num: 1, dm1: 2}
	assert.True(t, homogeneous([]Rational{half}))
	assert.True(t, homogeneous([]Rational{half, half, {neg: true, num: 3, dm1: 1}}))
	assert.False(t, homogeneous([]Rational{half, third}))
	assert.False(t, homogeneous([]Rational{half, {}}))
}

func TestReducerSum(t *testing.T) {
	r := reducer{fast: true}
	s, err := r.sum(nil)
	require.NoError(t, err)
	assert.Equal(t, Rational{}, s)

	// A zero partial sum must still combine with the remaining terms.
	vals := []Rational{{num: 1, dm1: 5}, {neg: true, num: 1, dm1: 5}, {num: 1, dm1: 2}}
	for _, fast := range []bool{true, false} {
		r := reducer{fast: fast}
		s, err := r.sum(vals)
		require.NoError(t, err)
		assert.Equal(t, "2 / 6", s.String())
	}
}

func TestNormalizeZeroDenominator(t *testing.T) {
	// Only reachable by constructing the struct directly.
	bad := Rational{num: 3, dm1: -1}
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(*SignError)
		require.True(t, ok, "panic with %T, not *SignError", r)
		assert.Equal(t, UndefinedSign, err.Kind())
	}()
	bad.Normalize()
}

// TestZeroDenominatorUnreachable checks that every way of making a Rational
// through the package yields a non-zero denominator.
func TestZeroDenominatorUnreachable(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	edges := []int64{0, 1, -1, 2, -2, math.MaxInt64, -math.MaxInt64, math.MinInt64}
	pick := func() int64 {
		if rng.Intn(3) == 0 {
			return edges[rng.Intn(len(edges))]
		}
		return rng.Int63n(1<<20) - 1<<19
	}
	check := func(r Rational) {
		t.Helper()
		if r.den() == 0 {
			t.Fatalf("%#v has a zero denominator", r)
		}
		n := r.Normalize()
		if n.den() <= 0 || n.num < 0 {
			t.Fatalf("%#v normalized to %#v", r, n)
		}
	}
	for i := 0; i < 5000; i++ {
		x, err := NewRational(Sign(rng.Intn(3)-1), pick(), pick())
		if err != nil {
			continue
		}
		check(x)
		check(x.Simplify())
		y, err := NewRational(Plus, pick(), pick())
		if err != nil {
			continue
		}
		if p, err := x.Mul(y); err == nil {
			check(p)
		}
		if s, err := x.Add(y); err == nil {
			check(s)
		}
		if s, err := x.Add(x); err == nil {
			check(s)
		}
		if l, err := LCM(x.Den(), y.Den()); err == nil {
			if r, err := x.Normalize().rescale(l); err == nil {
				check(r)
			}
		}
	}
	check(Rational{})
}

func TestInvalidNodeKind(t *testing.T) {
	r := reducer{fast: true}
	assert.Panics(t, func() { r.node(&node{kind: nodeNone}) })
	e := Expr{nodes: []node{{kind: nodeKind(9)}}}
	assert.Panics(t, func() { _ = e.String() })
}
