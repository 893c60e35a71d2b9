package errors

import (
	"errors"
	"fmt"
)

// VMError is the interface implemented by all vmint errors.
type VMError interface {
	error         // Embed the standard error interface
	Kind() string // e.g., "NaNOperand", "IntegerOverflow", "Range", "Encoding"
	// Message returns the specific error message without the kind prefix.
	// This might be useful if the caller wants to format the error differently.
	Message() string
	Unwrap() error // For error wrapping support (errors.Is/As)
}

// --- Concrete Error Types ---

// NaNOperandError reports that an operation received a NaN operand while the
// checked behavior was active.
type NaNOperandError struct {
	Msg   string
	Cause error // Underlying cause, if any
}

func (e *NaNOperandError) Error() string {
	return fmt.Sprintf("NaN operand: %s", e.Msg)
}
func (e *NaNOperandError) Kind() string    { return "NaNOperand" }
func (e *NaNOperandError) Message() string { return e.Msg }
func (e *NaNOperandError) Unwrap() error   { return e.Cause }
func (e *NaNOperandError) CausedBy(cause error) *NaNOperandError {
	e.Cause = cause
	return e
}

// IntegerOverflowError reports a computed result that does not fit the VM's
// native integer width while the checked behavior was active. Division by
// zero is reported under this kind as well, matching the VM's exception
// taxonomy.
type IntegerOverflowError struct {
	Msg   string
	Cause error // Underlying cause, if any
}

func (e *IntegerOverflowError) Error() string {
	return fmt.Sprintf("integer overflow: %s", e.Msg)
}
func (e *IntegerOverflowError) Kind() string    { return "IntegerOverflow" }
func (e *IntegerOverflowError) Message() string { return e.Msg }
func (e *IntegerOverflowError) Unwrap() error   { return e.Cause }
func (e *IntegerOverflowError) CausedBy(cause error) *IntegerOverflowError {
	e.Cause = cause
	return e
}

// RangeError reports a value that does not fit a caller-requested width, such
// as a serialization width or a native integer type.
type RangeError struct {
	Msg   string
	Cause error // Underlying cause, if any
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range error: %s", e.Msg)
}
func (e *RangeError) Kind() string    { return "Range" }
func (e *RangeError) Message() string { return e.Msg }
func (e *RangeError) Unwrap() error   { return e.Cause }
func (e *RangeError) CausedBy(cause error) *RangeError {
	e.Cause = cause
	return e
}

// EncodingError reports malformed input to a decoder or an attempt to encode
// a value (such as NaN) that has no representation in the target format.
type EncodingError struct {
	Msg   string
	Cause error // Underlying cause, if any
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding error: %s", e.Msg)
}
func (e *EncodingError) Kind() string    { return "Encoding" }
func (e *EncodingError) Message() string { return e.Msg }
func (e *EncodingError) Unwrap() error   { return e.Cause }
func (e *EncodingError) CausedBy(cause error) *EncodingError {
	e.Cause = cause
	return e
}

// --- Constructors ---

func NewNaNOperand(format string, args ...interface{}) *NaNOperandError {
	return &NaNOperandError{Msg: fmt.Sprintf(format, args...)}
}

func NewIntegerOverflow(format string, args ...interface{}) *IntegerOverflowError {
	return &IntegerOverflowError{Msg: fmt.Sprintf(format, args...)}
}

func NewRange(format string, args ...interface{}) *RangeError {
	return &RangeError{Msg: fmt.Sprintf(format, args...)}
}

func NewEncoding(format string, args ...interface{}) *EncodingError {
	return &EncodingError{Msg: fmt.Sprintf(format, args...)}
}

// --- Classification helpers ---

func IsNaNOperand(err error) bool {
	var e *NaNOperandError
	return errors.As(err, &e)
}

func IsIntegerOverflow(err error) bool {
	var e *IntegerOverflowError
	return errors.As(err, &e)
}

func IsRange(err error) bool {
	var e *RangeError
	return errors.As(err, &e)
}

func IsEncoding(err error) bool {
	var e *EncodingError
	return errors.As(err, &e)
}
