// Package fractions evaluates sums of exact fractions.
//
// Expressions are built term by term with a Builder: integers, signed
// fractions, products of fractions, and parenthesized groups that may be
// negated and nested to any depth. Evaluating an expression reduces every
// group and product to a single fraction, rewrites the terms over their least
// common denominator, and adds them. The result is exact; Simplify puts it in
// lowest terms.
//
//	b := fractions.NewBuilder()
//	b.Number(2).Fraction(fractions.Minus, 7, 3).Fraction(fractions.Plus, 5, 6)
//	e, err := b.Expr()
//	...
//	r, err := fractions.Evaluate(e)
//	fmt.Println(e, "=", r.Exact, "=", r.Simplified) // 2 - 7 / 3 + 5 / 6 = 3 / 6 = 1 / 2
//
// Numerators and denominators are 63-bit magnitudes. Arithmetic that would
// exceed them fails with an OverflowError rather than wrapping.
package fractions
