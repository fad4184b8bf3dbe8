package fractions

// Evaluator evaluates expressions to exact fractions. An Evaluator holds only
// its configuration and is safe to use concurrently.
type Evaluator struct {
	r reducer
}

// Option is an option used when creating an evaluator.
type Option interface {
	evalOption()
}

type (
	fastopt bool
	procopt int
)

func (fastopt) evalOption() {}
func (procopt) evalOption() {}

// FastPath sets whether terms that already share a denominator are summed
// without computing a common denominator. The result is the same either way.
// The default is true.
func FastPath(on bool) Option {
	return fastopt(on)
}

// Concurrency sets the number of goroutines used to reduce the top-level terms
// of an expression. Values less than 2 reduce sequentially, which is the
// default. The result does not depend on the setting, but when several terms
// fail, which error is reported does.
func Concurrency(n int) Option {
	return procopt(n)
}

// NewEvaluator creates an evaluator.
func NewEvaluator(opts ...Option) *Evaluator {
	ev := Evaluator{r: reducer{fast: true, procs: 1}}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case fastopt:
			ev.r.fast = bool(opt)
		case procopt:
			ev.r.procs = int(opt)
		default:
			panic("fractions: unknown option type")
		}
	}
	return &ev
}

// Result is the value of an expression.
type Result struct {
	// Exact is the sum as reduced, over the common denominator of its terms.
	Exact Rational
	// Simplified is Exact in lowest terms.
	Simplified Rational
}

// Strings renders the result. simplified is empty if simplifying did not
// change the fraction.
func (r Result) Strings() (exact, simplified string) {
	exact = r.Exact.String()
	if r.Simplified.Normalize() != r.Exact.Normalize() {
		simplified = r.Simplified.String()
	}
	return exact, simplified
}

// Reduce returns the exact value of e without simplifying it.
func (ev *Evaluator) Reduce(e *Expr) (Rational, error) {
	return ev.r.expr(e)
}

// Evaluate reduces e and simplifies the result. Errors from reduction are
// returned unchanged.
func (ev *Evaluator) Evaluate(e *Expr) (Result, error) {
	x, err := ev.r.expr(e)
	if err != nil {
		return Result{}, err
	}
	return Result{Exact: x, Simplified: x.Simplify()}, nil
}

// Evaluate is a shortcut to evaluate an expression with a new evaluator.
func Evaluate(e *Expr, opts ...Option) (Result, error) {
	return NewEvaluator(opts...).Evaluate(e)
}
