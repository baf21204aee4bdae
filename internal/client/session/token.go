package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IsExpired reports whether the bearer token can no longer be sent to the
// server. It fails safe: any token that is not a well-formed three-segment
// JWT, has an undecodable payload, or carries no usable exp claim is
// reported expired. Only a token whose exp is strictly in the future is
// considered live.
//
// The signature is deliberately not verified here; the server is the
// authority on authenticity, the client only needs the expiry instant.
func IsExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}

	return !time.Now().Before(exp.Time)
}
