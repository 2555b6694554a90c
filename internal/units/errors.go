package units

import (
	"errors"
	"fmt"
)

// Error kinds. Boundary packages wrap these with fmt.Errorf("...: %w"), so
// callers match with errors.Is.
var (
	// ErrSchema: a unit-scalar or quantity value does not have the expected shape.
	ErrSchema = errors.New("units: invalid schema")

	// ErrNullUnit: a unit value is null or contains null entries.
	ErrNullUnit = errors.New("units: null unit")

	// ErrDimensionMismatch: the operands carry unequal dimensions.
	ErrDimensionMismatch = errors.New("units: dimension mismatch")

	// ErrIncompatibleBase: same dimension, but the conversion links do not
	// point at a common reference unit.
	ErrIncompatibleBase = errors.New("units: incompatible base units")

	// ErrOffsetNotSupported: a conversion carries an additive offset.
	ErrOffsetNotSupported = errors.New("units: offset conversions are not supported")

	// ErrNotFound: registry lookup miss.
	ErrNotFound = errors.New("units: not found")

	ErrInvalidFactor = errors.New("units: conversion factor must be finite and non-zero")
	ErrDuplicate     = errors.New("units: already registered")
	ErrFrozen        = errors.New("units: registry is frozen")
	ErrInvariant     = errors.New("units: invariant violated")
)

// ConversionError records which pair of units failed to convert.
type ConversionError struct {
	From string
	To   string
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("convert %q to %q: %v", e.From, e.To, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// InvariantError is the panic value raised by the unit algebra when a
// composed unit would be internally inconsistent.
type InvariantError struct {
	Op  string
	Err error
	Msg string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Op, e.Err, e.Msg)
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}

func invariant(op string, err error, format string, args ...any) {
	panic(&InvariantError{Op: op, Err: err, Msg: fmt.Sprintf(format, args...)})
}
