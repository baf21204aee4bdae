package api

import (
	"errors"
	"fmt"
)

// Kind classifies a failed call. Every error the pipeline returns carries
// exactly one of these.
type Kind string

const (
	// KindCredentialExpired: expiry detected locally; the call never reached
	// the network and the session was cleared.
	KindCredentialExpired Kind = "credential_expired"
	// KindUnauthorized: the server rejected the credential (HTTP 401); the
	// session was cleared.
	KindUnauthorized Kind = "unauthorized"
	// KindApplicationRejected: the server answered with a business-level
	// envelope whose code signals failure. No session change.
	KindApplicationRejected Kind = "application_rejected"
	// KindHTTPError: transport-level rejection other than 401. No session change.
	KindHTTPError Kind = "http_error"
	// KindNetworkUnavailable: no response was obtained at all.
	KindNetworkUnavailable Kind = "network_unavailable"
	// KindConfiguration: the call could not even be constructed.
	KindConfiguration Kind = "configuration"
)

// Error is the classified failure the pipeline hands to callers.
type Error struct {
	Kind    Kind
	Message string
	Status  int   // transport status, set for http_error and unauthorized
	Code    int   // application envelope code, set for application_rejected
	Err     error // original cause, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the classification of err, or "" when err is not a
// pipeline error.
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

// IsKind reports whether err is a pipeline error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
