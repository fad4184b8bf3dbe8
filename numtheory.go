package fractions

import (
	"math"
	"math/bits"
)

// GCD returns the greatest common divisor of |a| and |b|, with GCD(a, 0) = |a|.
// The result is unsigned because GCD(math.MinInt64, 0) is 2^63.
func GCD(a, b int64) uint64 {
	return gcd(uabs(a), uabs(b))
}

// LCM returns the least common multiple of the absolute values of its
// arguments. Every value must be non-zero, and at least one must be given.
func LCM(values ...int64) (int64, error) {
	if len(values) == 0 {
		return 0, &EmptyExpressionError{What: "lcm"}
	}
	l := int64(1)
	for i, v := range values {
		if v == 0 {
			return 0, &DomainError{X: v, Arg: i + 1, Func: "lcm"}
		}
		var err error
		l, err = lcm2(l, v)
		if err != nil {
			return 0, err
		}
	}
	return l, nil
}

// gcd is the Euclidean algorithm.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// lcm2 returns lcm(|a|, |b|). Dividing by the gcd before multiplying keeps the
// intermediate no larger than the result.
func lcm2(a, b int64) (int64, error) {
	switch {
	case a == 0:
		return 0, &DomainError{X: a, Arg: 1, Func: "lcm"}
	case b == 0:
		return 0, &DomainError{X: b, Arg: 2, Func: "lcm"}
	}
	ua, ub := uabs(a), uabs(b)
	hi, lo := bits.Mul64(ua/gcd(ua, ub), ub)
	if hi != 0 || lo > math.MaxInt64 {
		return 0, &OverflowError{Op: "lcm", X: a, Y: b}
	}
	return int64(lo), nil
}

// signum is the three-way sign of x.
func signum(x int64) int64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

func uabs(x int64) uint64 {
	if x < 0 {
		return -uint64(x)
	}
	return uint64(x)
}

// abs64 must not be called with math.MinInt64.
func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// mulmag multiplies two non-negative magnitudes, reporting results that do not
// fit in 63 bits.
func mulmag(op string, a, b int64) (int64, error) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, &OverflowError{Op: op, X: a, Y: b}
	}
	return int64(lo), nil
}
