package fractions

import (
	"errors"
	"strconv"
)

// ErrorKind classifies the errors produced while building or evaluating an
// expression.
type ErrorKind int8

const (
	kindNone ErrorKind = iota

	// InvalidFraction is a fraction with a zero denominator, or an operation
	// whose operands could not share a denominator.
	InvalidFraction
	// UnbalancedGroup is a close with no open group, or an expression
	// finished while a group remains open.
	UnbalancedGroup
	// InvalidExpression is a reduction over zero terms.
	InvalidExpression
	// ArithmeticOverflow is a numerator or denominator whose magnitude does
	// not fit in 63 bits.
	ArithmeticOverflow
	// UndefinedSign is an attempt to take the sign of a fraction with a zero
	// denominator. Values built through this package never reach it.
	UndefinedSign
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidFraction:
		return "InvalidFraction"
	case UnbalancedGroup:
		return "UnbalancedGroup"
	case InvalidExpression:
		return "InvalidExpression"
	case ArithmeticOverflow:
		return "ArithmeticOverflow"
	case UndefinedSign:
		return "UndefinedSign"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error is an error with a kind. Every error returned by this package
// implements Error, possibly wrapped.
type Error interface {
	error
	// Kind returns the class of the error.
	Kind() ErrorKind
}

// KindOf returns the kind of the first Error in err's chain.
func KindOf(err error) (ErrorKind, bool) {
	var e Error
	if !errors.As(err, &e) {
		return kindNone, false
	}
	return e.Kind(), true
}

// FractionError is an error indicating a fraction with a zero denominator.
type FractionError struct {
	// Num and Den are the parts of the fraction as given.
	Num, Den int64
}

func (err *FractionError) Error() string {
	return "invalid fraction " + strconv.FormatInt(err.Num, 10) + "/" + strconv.FormatInt(err.Den, 10) + ": zero denominator"
}

func (err *FractionError) Kind() ErrorKind {
	return InvalidFraction
}

// DenominatorError is an error from adding two fractions directly with
// different denominators.
type DenominatorError struct {
	// Left and Right are the mismatched denominators.
	Left, Right int64
}

func (err *DenominatorError) Error() string {
	return "cannot add over different denominators " + strconv.FormatInt(err.Left, 10) + " and " + strconv.FormatInt(err.Right, 10)
}

func (err *DenominatorError) Kind() ErrorKind {
	return InvalidFraction
}

// DomainError is an error returned when a number theory function is called on
// an argument outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X int64
	// Arg is the 1-based index of the argument.
	Arg int
	// Func is a name identifying the function.
	Func string
}

func (err *DomainError) Error() string {
	r := strconv.FormatInt(err.X, 10) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	if err.Arg > 0 {
		r += " (argument " + strconv.Itoa(err.Arg) + ")"
	}
	return r
}

func (err *DomainError) Kind() ErrorKind {
	return InvalidFraction
}

// GroupError is an error indicating mismatched group open and close calls.
type GroupError struct {
	// Depth is the number of groups open when the error occurred.
	Depth int
}

func (err *GroupError) Error() string {
	if err.Depth == 0 {
		return "close group with no open group"
	}
	return strconv.Itoa(err.Depth) + " open group(s) with no close"
}

func (err *GroupError) Kind() ErrorKind {
	return UnbalancedGroup
}

// EmptyExpressionError is an error indicating a reduction with no terms.
type EmptyExpressionError struct {
	// What names the empty thing: "expression", "product", or "lcm".
	What string
}

func (err *EmptyExpressionError) Error() string {
	return "empty " + err.What
}

func (err *EmptyExpressionError) Kind() ErrorKind {
	return InvalidExpression
}

// OverflowError is an error indicating a result too large to represent.
type OverflowError struct {
	// Op is the operation that overflowed.
	Op string
	// X and Y are the operands of the overflowing step.
	X, Y int64
}

func (err *OverflowError) Error() string {
	return err.Op + " overflow: " + strconv.FormatInt(err.X, 10) + ", " + strconv.FormatInt(err.Y, 10)
}

func (err *OverflowError) Kind() ErrorKind {
	return ArithmeticOverflow
}

// SignError reports an attempt to normalize a fraction with a zero
// denominator. It is only ever a panic value: constructors reject zero
// denominators, so seeing one means an internal invariant broke.
type SignError struct {
	Num int64
}

func (err *SignError) Error() string {
	return "undefined sign of " + strconv.FormatInt(err.Num, 10) + "/0"
}

func (err *SignError) Kind() ErrorKind {
	return UndefinedSign
}

var (
	_ Error = (*FractionError)(nil)
	_ Error = (*DenominatorError)(nil)
	_ Error = (*DomainError)(nil)
	_ Error = (*GroupError)(nil)
	_ Error = (*EmptyExpressionError)(nil)
	_ Error = (*OverflowError)(nil)
	_ Error = (*SignError)(nil)
)
