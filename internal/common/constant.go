// Package common contains shared constants and sentinel errors used across
// gophblog components.
package common

// Durable storage keys. Both are always written and cleared together.
const (
	StorageKeyToken = "token"
	StorageKeyUser  = "user"
)

// AuthorizationHeaderName carries the bearer credential on outbound requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the raw token in the Authorization header.
const BearerPrefix = "Bearer "

// RequestIDHeaderName tags every outbound request for server-side tracing.
const RequestIDHeaderName = "X-Request-ID"
