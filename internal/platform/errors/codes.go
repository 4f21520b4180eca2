// Package errors provides structured ritual errors and their gRPC mapping.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Request errors
	CodeRequestMissing    Code = "REQUEST_MISSING"
	CodeRitualNameTooLong Code = "RITUAL_NAME_TOO_LONG"

	// Handler errors
	CodeInternal Code = "INTERNAL"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - malformed or oversized input
	case CodeRequestMissing,
		CodeRitualNameTooLong:
		return codes.InvalidArgument

	default:
		return codes.Internal
	}
}
