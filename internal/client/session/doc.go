// Package session holds the single authoritative auth session of the client.
//
// The Store keeps the token and user profile in memory and mirrors them to
// durable storage on every change. Storage seeds the store once, at
// Bootstrap; after that memory always overwrites storage. Token and user are
// written and cleared together, so neither memory nor storage is ever left
// half-authenticated.
package session
