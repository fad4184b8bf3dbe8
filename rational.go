package fractions

import (
	"math"
	"math/big"
	"math/bits"
	"strconv"
	"strings"
)

// Sign is the sign of a term. Any negative Sign means minus; anything else,
// including zero, means plus.
type Sign int8

const (
	Minus Sign = -1
	Plus  Sign = 1
)

func (s Sign) String() string {
	if s < 0 {
		return "-"
	}
	return "+"
}

// Rational is an exact fraction with a separate sign. Its numerator and
// denominator may each carry a sign of their own until the value is
// normalized; every operation normalizes its operands first.
//
// Rational has value semantics: no method modifies its receiver, and values
// can be freely copied. The zero value is the canonical zero, 0/1.
type Rational struct {
	neg bool
	num int64
	// dm1 is the denominator minus one, so that the zero value is 0/1.
	dm1 int64
}

// NewRational creates the fraction sign*num/den. The numerator and
// denominator may be negative. It returns a *FractionError if den is zero and
// an *OverflowError if either part is math.MinInt64, whose magnitude does not
// fit in 63 bits.
func NewRational(sign Sign, num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, &FractionError{Num: num, Den: den}
	}
	if num == math.MinInt64 || den == math.MinInt64 {
		return Rational{}, &OverflowError{Op: "fraction", X: num, Y: den}
	}
	return Rational{neg: sign < 0, num: num, dm1: den - 1}, nil
}

func (x Rational) den() int64 {
	return x.dm1 + 1
}

// Normalize returns x with a non-negative numerator, a positive denominator,
// and the overall sign carried separately. A zero value normalizes to the
// canonical zero regardless of its denominator.
func (x Rational) Normalize() Rational {
	d := x.den()
	if d == 0 {
		panic(&SignError{Num: x.num})
	}
	s := signum(x.num) * signum(d)
	if s == 0 {
		return Rational{}
	}
	if x.neg {
		s = -s
	}
	return Rational{neg: s < 0, num: abs64(x.num), dm1: abs64(d) - 1}
}

// Sign returns the sign of x. Zero is Plus.
func (x Rational) Sign() Sign {
	if x.Normalize().neg {
		return Minus
	}
	return Plus
}

// Num returns the magnitude of the numerator of x.
func (x Rational) Num() int64 {
	return x.Normalize().num
}

// Den returns the magnitude of the denominator of x.
func (x Rational) Den() int64 {
	return x.Normalize().den()
}

// IsZero returns whether x is zero.
func (x Rational) IsZero() bool {
	return x.num == 0
}

// Simplify returns x in lowest terms.
func (x Rational) Simplify() Rational {
	x = x.Normalize()
	if x.num == 0 {
		return Rational{}
	}
	g := int64(gcd(uint64(x.num), uint64(x.den())))
	return Rational{neg: x.neg, num: x.num / g, dm1: x.den()/g - 1}
}

// Equal returns whether x and y are the same number.
func (x Rational) Equal(y Rational) bool {
	return x.Simplify() == y.Simplify()
}

// Float64 returns the nearest float64 to x. The conversion is lossy and is
// meant for display.
func (x Rational) Float64() float64 {
	f, _ := x.BigRat().Float64()
	return f
}

// BigRat returns x as a new big.Rat.
func (x Rational) BigRat() *big.Rat {
	x = x.Normalize()
	r := new(big.Rat).SetFrac64(x.num, x.den())
	if x.neg {
		r.Neg(r)
	}
	return r
}

// Add returns x + y. The operands must have the same denominator after
// normalization unless one of them is zero; otherwise Add returns a
// *DenominatorError. The result is not simplified.
func (x Rational) Add(y Rational) (Rational, error) {
	x, y = x.Normalize(), y.Normalize()
	switch {
	case x.num == 0:
		return y, nil
	case y.num == 0:
		return x, nil
	case x.dm1 != y.dm1:
		return Rational{}, &DenominatorError{Left: x.den(), Right: y.den()}
	}
	if x.neg == y.neg {
		if s, _ := bits.Add64(uint64(x.num), uint64(y.num), 0); s > math.MaxInt64 {
			return Rational{}, &OverflowError{Op: "add", X: x.num, Y: y.num}
		}
	}
	n := x.signed() + y.signed()
	return Rational{num: n, dm1: x.dm1}.Normalize(), nil
}

// Mul returns x * y. The result is not simplified, so its denominator is the
// product of the operands' denominators.
func (x Rational) Mul(y Rational) (Rational, error) {
	x, y = x.Normalize(), y.Normalize()
	num, err := mulmag("multiply", x.num, y.num)
	if err != nil {
		return Rational{}, err
	}
	den, err := mulmag("multiply", x.den(), y.den())
	if err != nil {
		return Rational{}, err
	}
	return Rational{neg: x.neg != y.neg, num: num, dm1: den - 1}.Normalize(), nil
}

// signed returns the numerator of normalized x with its sign applied.
func (x Rational) signed() int64 {
	if x.neg {
		return -x.num
	}
	return x.num
}

// withSign returns s*x.
func (x Rational) withSign(s Sign) Rational {
	x = x.Normalize()
	x.neg = x.neg != (s < 0)
	return x.Normalize()
}

// rescale returns normalized x written over the denominator l, which must be
// a multiple of x's denominator.
func (x Rational) rescale(l int64) (Rational, error) {
	num, err := mulmag("homogenize", x.num, l/x.den())
	if err != nil {
		return Rational{}, err
	}
	return Rational{neg: x.neg, num: num, dm1: l - 1}, nil
}

// Format renders x as "n / d", preceded by "- " if x is negative or by "+ " if
// x is positive and plus is true.
func (x Rational) Format(plus bool) string {
	var b strings.Builder
	x.fmt(&b, plus, false)
	return b.String()
}

// String renders x without a leading plus.
func (x Rational) String() string {
	return x.Format(false)
}

// fmt writes x to b. If whole is set, integers omit the denominator.
func (x Rational) fmt(b *strings.Builder, plus, whole bool) {
	x = x.Normalize()
	switch {
	case x.neg:
		b.WriteString("- ")
	case plus:
		b.WriteString("+ ")
	}
	b.WriteString(strconv.FormatInt(x.num, 10))
	if whole && x.dm1 == 0 {
		return
	}
	b.WriteString(" / ")
	b.WriteString(strconv.FormatInt(x.den(), 10))
}
