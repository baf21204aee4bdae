// Package common defines shared constants and sentinel errors used across
// the chainmarket client layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
	ErrUnauthorized = errors.New("unauthorized")

	// Sign-in flow errors.
	ErrNoToken = errors.New("no token in sign-in response")
)
