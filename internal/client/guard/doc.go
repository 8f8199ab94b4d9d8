// Package guard decides whether a navigation destination may be shown.
//
// Router maps a path to a named page using chi's pattern matching. Guard
// gates protected pages behind the session token and redirects to /login
// otherwise. History applies the decisions to a back stack, replacing the
// current entry on redirects.
package guard
