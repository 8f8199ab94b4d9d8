// Package client is the transport layer of the gophblog CLI: a JSON-over-HTTP
// client for the blogging API.
//
// # Authorization
//
// Before every request the client asks its TokenSource (the durable session
// storage, never the in-memory session store) for the current token and, if
// one exists, sends it as "Authorization: Bearer <token>". Requests without a
// token go out unauthenticated; the server decides whether that is allowed.
// A 401 is reported to the caller and nothing else happens: no logout, no
// retry.
//
// # Error Handling
//
// Failures match the sentinels with errors.Is: ErrUnavailable (no response),
// ErrUnauthorized, ErrForbidden, ErrNotFound, ErrRejected, ErrServer and
// ErrInvalidResponse (2xx body that does not fit the canonical schema).
// Non-2xx responses are *APIError values carrying the status and the
// server-provided message.
package client
