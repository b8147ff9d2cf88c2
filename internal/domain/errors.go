package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLatitude signals a latitude outside [-90, 90].
	ErrInvalidLatitude = errors.New("invalid latitude")
	// ErrDegenerateDivision signals a division by zero or by a non-finite value.
	ErrDegenerateDivision = errors.New("degenerate division")
)

// ErrorKind classifies a DomainError.
type ErrorKind string

const (
	// KindInvalidLatitude maps to ErrInvalidLatitude.
	KindInvalidLatitude ErrorKind = "invalid_latitude"
	// KindDegenerateDivision maps to ErrDegenerateDivision.
	KindDegenerateDivision ErrorKind = "degenerate_division"
)

// DomainError wraps a domain sentinel with the failing operation and offending value.
type DomainError struct {
	Kind  ErrorKind
	Op    string
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s: got %g", e.Op, e.sentinel().Error(), e.Value)
}

func (e *DomainError) Unwrap() error { return e.sentinel() }

func (e *DomainError) sentinel() error {
	if e.Kind == KindInvalidLatitude {
		return ErrInvalidLatitude
	}
	return ErrDegenerateDivision
}

// NewInvalidLatitude creates an invalid latitude error.
func NewInvalidLatitude(op string, lat float64) error {
	return &DomainError{Kind: KindInvalidLatitude, Op: op, Value: lat}
}

// NewDegenerateDivision creates a degenerate division error. divisor is the value that
// could not be divided by.
func NewDegenerateDivision(op string, divisor float64) error {
	return &DomainError{Kind: KindDegenerateDivision, Op: op, Value: divisor}
}

// KindOf returns the ErrorKind of err, or "" when err is not a DomainError.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}
