// Package hsm implements the hierarchical-state-machine engine described by
// the Stator concept: states arranged in a tree, events bubbling to parents,
// and transitions that run the correct exit/entry sequence across the
// least-common-ancestor boundary.
//
// Scope:
//   - State[A, T, M]: a pure function (actor, event) -> Response.
//   - Response: Handled, Parent(state), or Transition(state).
//   - Component[A, T, M]: the piece of per-actor state the engine needs
//     (current state, deferred event queue). Concrete actors embed it.
//   - Handle, Init, and the transition algorithm itself.
//   - Entry/Exit/Nop meta-events, modeled as an explicit sum type alongside
//     the application message rather than folding them into it, so the
//     application's message type never needs synthetic framework variants.
//
// Non-Goals:
//   - Deriving state trees from struct tags or code generation. State
//     functions and their Parent/Transition responses are hand-written.
//   - Guards or internal transitions (hsm.TransitionBuilder-style fluent
//     construction, guard conditions). This engine is the direct "pure
//     function returns a Response" style, not a builder DSL.
package hsm
