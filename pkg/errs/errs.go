// Package errs defines the error taxonomy shared by all SDK clients.
//
// Every validation failure is raised before any on-chain call or subgraph
// query is attempted, and carries enough detail (the parameter name and,
// where it exists, the offending value) for the caller to act on. Failures
// of the external collaborators themselves are wrapped as Passthrough and
// never reinterpreted.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an SDK error.
type Kind uint8

const (
	// KindMissingArgument marks a required argument that was not provided.
	KindMissingArgument Kind = iota + 1
	// KindInvalidArgument marks an argument that was provided but is
	// malformed or out of range.
	KindInvalidArgument
	// KindUnsupportedNetwork marks a chain ID with no known deployment.
	KindUnsupportedNetwork
	// KindPassthrough marks a failure of an external collaborator
	// (node, contract, subgraph, storage) forwarded unchanged.
	KindPassthrough
)

// String returns a short label for the kind.
func (k Kind) String() string {
	switch k {
	case KindMissingArgument:
		return "missing argument"
	case KindInvalidArgument:
		return "invalid argument"
	case KindUnsupportedNetwork:
		return "unsupported network"
	case KindPassthrough:
		return "passthrough"
	default:
		return "unknown"
	}
}

// Error is the structured error type returned by the SDK. Param names the
// argument the error refers to, Value holds the offending value when one
// exists, and Reason carries a human-readable detail.
type Error struct {
	Kind   Kind
	Param  string
	Value  any
	Reason string

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingArgument:
		return fmt.Sprintf("%s: %q is required", e.Kind, e.Param)
	case KindInvalidArgument:
		if e.Reason != "" {
			return fmt.Sprintf("%s: %q: %s (got %v)", e.Kind, e.Param, e.Reason, e.Value)
		}
		return fmt.Sprintf("%s: %q (got %v)", e.Kind, e.Param, e.Value)
	case KindUnsupportedNetwork:
		return fmt.Sprintf("%s: no deployment for chain %v", e.Kind, e.Value)
	case KindPassthrough:
		return fmt.Sprintf("%s: %v", e.Kind, e.cause)
	default:
		return e.Kind.String()
	}
}

// Unwrap exposes the wrapped collaborator error, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// MissingArgument reports that the required argument named param was absent.
func MissingArgument(param string) error {
	return &Error{Kind: KindMissingArgument, Param: param}
}

// InvalidArgument reports that param was provided with the malformed or
// out-of-range value. The reason describes what the value violated.
func InvalidArgument(param string, value any, reason string) error {
	return &Error{Kind: KindInvalidArgument, Param: param, Value: value, Reason: reason}
}

// UnsupportedNetwork reports that no contract deployment is known for chainID.
func UnsupportedNetwork(chainID string) error {
	return &Error{Kind: KindUnsupportedNetwork, Param: "chainID", Value: chainID}
}

// Passthrough wraps a failure raised by an external collaborator without
// reinterpreting it. A nil err yields nil so delegated results can be
// forwarded unconditionally.
func Passthrough(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: KindPassthrough, cause: err}
}

// IsKind reports whether err (or any error it wraps) is an SDK Error of the
// given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
