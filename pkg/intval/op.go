package intval

import "math/big"

// The generic runners below are the shared skeleton of every arithmetic and
// bitwise operator: unwrap the operands, run the raw computation over the
// magnitude engine, and post-process the unchecked result into a Value (or a
// pair of them). The Behavior parameter decides what happens on a NaN operand
// or an overflowing result, so concrete operators never branch on it.

// extract unwraps the magnitude of v. ok == false means the operation must
// stop without computing: either err is set (checked behavior) or the caller
// substitutes its NaN result (quiet behavior).
func extract[B Behavior](v Value) (mag *big.Int, ok bool, err error) {
	if v.mag != nil {
		return v.mag, true, nil
	}
	var b B
	return nil, false, b.OnNaNParameter()
}

// substitute finishes a short-circuited operation: it propagates the checked
// error or yields the quiet NaN result.
func substitute[R any](nanValue func() R, err error) (R, error) {
	if err != nil {
		var zero R
		return zero, err
	}
	return nanValue(), nil
}

// unaryOp runs a single-operand operation: NaN-checks the operand, applies
// compute to the raw magnitude and hands the raw result to process.
func unaryOp[B Behavior, RI, R any](
	operand Value,
	compute func(*big.Int) RI,
	nanValue func() R,
	process func(RI, func() R) (R, error),
) (R, error) {
	x, ok, err := extract[B](operand)
	if !ok {
		return substitute(nanValue, err)
	}
	return process(compute(x), nanValue)
}

// binaryOp runs a two-operand operation; operands are NaN-checked left to
// right and compute is never called if either check short-circuits.
func binaryOp[B Behavior, RI, R any](
	lhs, rhs Value,
	compute func(x, y *big.Int) RI,
	nanValue func() R,
	process func(RI, func() R) (R, error),
) (R, error) {
	x, ok, err := extract[B](lhs)
	if !ok {
		return substitute(nanValue, err)
	}
	y, ok, err := extract[B](rhs)
	if !ok {
		return substitute(nanValue, err)
	}
	return process(compute(x, y), nanValue)
}

// rawPair carries the unchecked output of a double-result computation, such
// as a quotient and remainder. A nil first member marks a computation with no
// defined result (division by zero) and is treated as an overflow.
type rawPair struct {
	first, second *big.Int
}

// processSingleResult wraps one raw magnitude into a Value, width-checking it
// once. The raw magnitude is owned by the result; it is not copied.
func processSingleResult[B Behavior](raw *big.Int, nanValue func() Value) (Value, error) {
	if checkOverflow(raw) {
		return Value{mag: raw}, nil
	}
	var b B
	if err := b.OnIntegerOverflow(); err != nil {
		return NaN(), err
	}
	return nanValue(), nil
}

// valuePair groups the two outputs of a double-result operation.
type valuePair struct {
	first, second Value
}

// processDoubleResult wraps a raw pair into two Values. Only the first member
// is width-checked: when it fits, the second is taken as consistent with it
// (a remainder is never wider than the divisor), and when it does not,
// overflow handling fires for the pair as a whole and both outputs come from
// the paired NaN constructor.
func processDoubleResult[B Behavior](raw rawPair, nanValue func() valuePair) (valuePair, error) {
	if raw.first != nil && checkOverflow(raw.first) {
		return valuePair{Value{mag: raw.first}, Value{mag: raw.second}}, nil
	}
	var b B
	if err := b.OnIntegerOverflow(); err != nil {
		return valuePair{}, err
	}
	return nanValue(), nil
}

// singleNaN and doubleNaN are the standard NaN constructors matching the two
// result arities.
func singleNaN() Value {
	return NaN()
}

func doubleNaN() valuePair {
	return valuePair{NaN(), NaN()}
}
