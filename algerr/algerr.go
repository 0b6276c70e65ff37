// Package algerr collects the error taxonomy shared by every curve package:
// InvalidInput, PrecomputationMismatch and DomainMismatch. All three are
// fail-fast, non-retryable conditions -- the pairing engine is pure and has
// no partial-result or recovery path.
package algerr

import (
	"errors"
	"fmt"
)

// Kind classifies why an operation rejected its input or its own state.
type Kind int

const (
	// InvalidInput covers a modular inverse of zero, a square root of a
	// non-residue, or an off-curve point handed to a precompute call.
	InvalidInput Kind = iota
	// PrecomputationMismatch is a programmer error: a G2Precomp's
	// coefficient list has the wrong length at the end of a Miller loop.
	// Treated as a fatal invariant violation, never recovered from.
	PrecomputationMismatch
	// DomainMismatch covers a multiexp call whose bases and scalars
	// slices disagree in length.
	DomainMismatch
)

func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "invalid_input"
	case PrecomputationMismatch:
		return "precomputation_mismatch"
	case DomainMismatch:
		return "domain_mismatch"
	default:
		return "unknown"
	}
}

// Each Kind has exactly one unexported sentinel error; EngineError.Is
// matches a target against the sentinel of its own Kind.
var (
	errInvalidInput           = errors.New("invalid input")
	errPrecomputationMismatch = errors.New("precomputation mismatch")
	errDomainMismatch         = errors.New("domain mismatch")
)

func sentinelFor(k Kind) error {
	switch k {
	case InvalidInput:
		return errInvalidInput
	case PrecomputationMismatch:
		return errPrecomputationMismatch
	case DomainMismatch:
		return errDomainMismatch
	default:
		return errInvalidInput
	}
}

// EngineError is the concrete error type returned by every package in this
// module. It carries a Kind, a Curve tag for structured logging, the
// operation name, and the triggering cause (if any) so errors.Is/errors.As
// keep working through the taxonomy.
type EngineError struct {
	Kind  Kind
	Curve string
	Op    string
	Cause error
}

func (e *EngineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s/%s: %v", e.Kind, e.Curve, e.Op, e.Cause)
	}
	return fmt.Sprintf("%s: %s/%s", e.Kind, e.Curve, e.Op)
}

// Unwrap exposes the wrapped cause to errors.As/errors.Unwrap.
func (e *EngineError) Unwrap() error { return e.Cause }

// Is reports whether target is the sentinel error of e's Kind, in addition
// to the usual cause-unwrapping chain that errors.Is follows.
func (e *EngineError) Is(target error) bool {
	return target == sentinelFor(e.Kind)
}

// New builds an EngineError for the given kind, curve and operation.
func New(kind Kind, curve, op string, cause error) *EngineError {
	return &EngineError{Kind: kind, Curve: curve, Op: op, Cause: cause}
}

// Invalid is a convenience constructor for the common InvalidInput case.
func Invalid(curve, op string, cause error) *EngineError {
	return New(InvalidInput, curve, op, cause)
}

// Mismatch is a convenience constructor for PrecomputationMismatch.
func Mismatch(curve, op string, cause error) *EngineError {
	return New(PrecomputationMismatch, curve, op, cause)
}

// Domain is a convenience constructor for DomainMismatch.
func Domain(curve, op string, cause error) *EngineError {
	return New(DomainMismatch, curve, op, cause)
}
