package fractions_test

import (
	"fmt"

	"github.com/zephyrtronium/fractions"
)

func Example() {
	e, err := fractions.NewBuilder().
		Number(2).
		Fraction(fractions.Minus, 7, 3).
		Fraction(fractions.Plus, 5, 6).
		Expr()
	if err != nil {
		panic(err)
	}
	r, err := fractions.Evaluate(e)
	if err != nil {
		panic(err)
	}
	fmt.Println(e)
	fmt.Println(r.Exact)
	fmt.Println(r.Simplified)

	// Output:
	// 2 - 7 / 3 + 5 / 6
	// 3 / 6
	// 1 / 2
}

func ExampleBuilder_Open() {
	b := fractions.NewBuilder()
	b.Number(2).Fraction(fractions.Minus, 7, 3).Fraction(fractions.Plus, 5, 6)
	b.Open(fractions.Plus).Fraction(fractions.Plus, 1, 4).Fraction(fractions.Plus, 3, 10).Close()
	e, _ := b.Expr()
	r, _ := fractions.Evaluate(e)
	exact, simp := r.Strings()
	fmt.Println(e, "=", exact, "=", simp)

	// Output:
	// 2 - 7 / 3 + 5 / 6 + (1 / 4 + 3 / 10) = 63 / 60 = 21 / 20
}

func ExampleResult_Strings() {
	e, _ := fractions.NewBuilder().
		Fraction(fractions.Plus, 1, 2).
		Fraction(fractions.Minus, 1, 2).
		Expr()
	r, _ := fractions.Evaluate(e)
	exact, simp := r.Strings()
	fmt.Printf("%q %q\n", exact, simp)

	// Output:
	// "0 / 1" ""
}

func ExampleBuilder_Close() {
	_, err := fractions.NewBuilder().Number(1).Close().Expr()
	k, _ := fractions.KindOf(err)
	fmt.Println(k, err)

	// Output:
	// UnbalancedGroup close group with no open group
}

func ExampleRational_Format() {
	r, _ := fractions.NewRational(fractions.Plus, 3, -4)
	fmt.Println(r.Format(true))
	fmt.Println(r.Normalize().Num(), r.Normalize().Den(), r.Sign())
	s, _ := fractions.NewRational(fractions.Minus, -3, 4)
	fmt.Println(s.Format(true))

	// Output:
	// - 3 / 4
	// 3 4 -
	// + 3 / 4
}
