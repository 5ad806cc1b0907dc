// Package context holds request-scoped values. Everything a handler needs to
// know about the request it is serving travels in the request context rather
// than in ambient globals.
package context

type contextKey string
