// Package sessions persists the client session as the two metadata keys
// "token" and "user". Both keys are always written and removed in the same
// transaction, so the table never holds half a session produced by this
// package.
package sessions
