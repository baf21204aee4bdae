package common

// AuthorizationHeader is the HTTP header carrying the bearer credential on
// outbound requests.
const AuthorizationHeader = "Authorization"

// RequestIDHeader carries the client-generated request ID so a failed call
// can be correlated with server logs.
const RequestIDHeader = "X-Request-Id"
