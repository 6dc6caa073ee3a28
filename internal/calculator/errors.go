package calculator

import (
	"errors"
	"fmt"

	"ozzus/scicalc/internal/domain"
)

// ErrorKind classifies why an operation failed.
type ErrorKind string

const (
	// KindInvalidOperand indicates an operand that is not a number
	KindInvalidOperand ErrorKind = "INVALID_OPERAND"
	// KindDivisionByZero indicates a zero divisor
	KindDivisionByZero ErrorKind = "DIVISION_BY_ZERO"
	// KindNegativeDomain indicates a square root of a negative number
	KindNegativeDomain ErrorKind = "NEGATIVE_DOMAIN"
	// KindNonPositiveDomain indicates a logarithm of zero or a negative number
	KindNonPositiveDomain ErrorKind = "NON_POSITIVE_DOMAIN"
	// KindUnknownOperation indicates an operation name outside the supported set
	KindUnknownOperation ErrorKind = "UNKNOWN_OPERATION"
	// KindArity indicates the wrong number of operands for an operation
	KindArity ErrorKind = "ARITY"
)

// Sentinels for errors.Is. Any *Error of the same kind matches.
var (
	ErrInvalidOperand    = &Error{Kind: KindInvalidOperand, Message: "operand is not a number"}
	ErrDivisionByZero    = &Error{Kind: KindDivisionByZero, Message: "cannot divide by zero"}
	ErrNegativeDomain    = &Error{Kind: KindNegativeDomain, Message: "cannot take the square root of a negative number"}
	ErrNonPositiveDomain = &Error{Kind: KindNonPositiveDomain, Message: "cannot take the logarithm of a number less than or equal to zero"}
	ErrUnknownOperation  = &Error{Kind: KindUnknownOperation, Message: "unknown operation"}
	ErrArity             = &Error{Kind: KindArity, Message: "wrong number of operands"}
)

// Error is returned by every failing calculator operation.
type Error struct {
	Kind    ErrorKind
	Op      domain.Operation
	Message string
	// ReceivedKind is the runtime type of the offending operand. Set only
	// for KindInvalidOperand.
	ReceivedKind string
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// Is reports whether target is a calculator error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func invalidOperandError(op domain.Operation, receivedKind string) *Error {
	return &Error{
		Kind:         KindInvalidOperand,
		Op:           op,
		Message:      fmt.Sprintf("expected a number, received %s", receivedKind),
		ReceivedKind: receivedKind,
	}
}

func divisionByZeroError() *Error {
	return &Error{Kind: KindDivisionByZero, Op: domain.OpDivide, Message: ErrDivisionByZero.Message}
}

func negativeDomainError(op domain.Operation) *Error {
	return &Error{Kind: KindNegativeDomain, Op: op, Message: ErrNegativeDomain.Message}
}

func nonPositiveDomainError(op domain.Operation) *Error {
	return &Error{Kind: KindNonPositiveDomain, Op: op, Message: ErrNonPositiveDomain.Message}
}

func unknownOperationError(op domain.Operation) *Error {
	return &Error{Kind: KindUnknownOperation, Op: op, Message: ErrUnknownOperation.Message}
}

func arityError(op domain.Operation, got int) *Error {
	return &Error{
		Kind:    KindArity,
		Op:      op,
		Message: fmt.Sprintf("expected %d operand(s), received %d", op.Arity(), got),
	}
}

// KindOf returns the kind of a calculator error, or "" if err is not one.
func KindOf(err error) ErrorKind {
	var calcErr *Error
	if errors.As(err, &calcErr) {
		return calcErr.Kind
	}
	return ""
}

// IsDomainError reports whether err is a value-domain failure: the operand
// was a number, but outside the set the operation is defined on.
func IsDomainError(err error) bool {
	switch KindOf(err) {
	case KindDivisionByZero, KindNegativeDomain, KindNonPositiveDomain:
		return true
	}
	return false
}

// IsInvalidOperand reports whether err is an operand kind failure.
func IsInvalidOperand(err error) bool {
	return KindOf(err) == KindInvalidOperand
}
