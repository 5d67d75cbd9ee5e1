// Package store implements Store, a tiny Publisher-capable container for
// application state that is shared by being observed rather than locked:
// mutating it runs a callback whose typical body publishes a change
// notification to the Commutator.
package store
