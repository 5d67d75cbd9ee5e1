package commutator

import "github.com/mdeloof/stator/message"

type interceptResultKind uint8

const (
	interceptPass interceptResultKind = iota
	interceptSwallow
	interceptBreak
)

// InterceptResult is what an Interceptor returns: continue dispatch with
// (possibly rewritten) m, swallow this envelope and keep running, or stop
// the loop entirely.
type InterceptResult[T comparable, M message.Message[T]] struct {
	kind interceptResultKind
	m    M
}

// Pass continues normal dispatch with m, which may be the original message
// or a replacement the interceptor constructed.
func Pass[T comparable, M message.Message[T]](m M) InterceptResult[T, M] {
	return InterceptResult[T, M]{kind: interceptPass, m: m}
}

// Interception discards the current envelope without dispatching it and
// returns control to the loop for the next one.
func Interception[T comparable, M message.Message[T]]() InterceptResult[T, M] {
	return InterceptResult[T, M]{kind: interceptSwallow}
}

// Break stops the run loop; the current envelope is not dispatched.
func Break[T comparable, M message.Message[T]]() InterceptResult[T, M] {
	return InterceptResult[T, M]{kind: interceptBreak}
}

// Interceptor is installed with SetInterceptor and runs before normal
// dispatch on every envelope the loop receives. It sees only the message,
// not its routing metadata: on Pass, the (possibly rewritten) message is
// redelivered using the original envelope's Origin/Destination. The common
// use is recognizing application-level Attach/Detach convention messages and
// calling the corresponding Commutator method, then returning Interception.
type Interceptor[T comparable, M message.Message[T]] func(c *Commutator[T, M], m M) InterceptResult[T, M]
