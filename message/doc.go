// Package message defines the data model shared by every other package in
// this module: the Message/MessageType contract application code must
// satisfy, and the Envelope that carries a message through a Commutator.
//
// Scope:
//   - Message[T] contract: a message type's Type method must be total and
//     deterministic, stripping payload down to a comparable routing tag.
//   - Origin/Destination: who sent an envelope and where it is headed.
//   - Envelope[T, M]: the transport record itself.
//
// Non-Goals:
//   - Deriving T from M automatically. There is no macro or reflection-based
//     derivation here; application code writes its own Type method.
//   - Wire encoding. Envelopes never leave the process.
package message
