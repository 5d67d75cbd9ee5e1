// Package scenarios contains end-to-end tests that wire the commutator,
// hsm, timer, and store packages together the way an application would,
// covering the concrete scenarios used to validate the rest of the module.
package scenarios
