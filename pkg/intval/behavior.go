package intval

import (
	"vmint/pkg/errors"
)

// Behavior selects, at compile time, how an operation reacts to a NaN operand
// or an out-of-range result. Every framework entry point is generic over a
// Behavior, so each call site is specialized to either the fail-fast or the
// substitute-NaN code path; there is no runtime flag.
//
// A hook returning nil tells the framework to substitute NaN and complete the
// operation successfully. A hook returning an error aborts the operation.
type Behavior interface {
	OnNaNParameter() error
	OnIntegerOverflow() error
}

// Checked aborts the operation: a NaN operand or an overflowing result is
// surfaced to the caller as an error.
type Checked struct{}

func (Checked) OnNaNParameter() error {
	return errors.NewNaNOperand("operation applied to a NaN value")
}

func (Checked) OnIntegerOverflow() error {
	return errors.NewIntegerOverflow("result does not fit into 257 bits")
}

// Quiet never fails: both conditions make the operation yield NaN, which then
// propagates through subsequent quiet operations like a floating-point NaN.
type Quiet struct{}

func (Quiet) OnNaNParameter() error { return nil }

func (Quiet) OnIntegerOverflow() error { return nil }
