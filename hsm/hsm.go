package hsm

import (
	"reflect"

	"github.com/mdeloof/stator/message"
	"github.com/mdeloof/stator/staterr"
)

// MaxDepth bounds how many ancestors a state tree may have above any leaf.
// Building an exit or entry path that would exceed it is a fatal
// programmer error (staterr.DepthExceeded).
const MaxDepth = 16

// Meta distinguishes the three events the engine itself drives a state
// function with from an ordinary application message.
type Meta uint8

const (
	// metaNone marks an Event carrying an application message.
	metaNone Meta = iota
	// Entry is delivered to a state as it is entered during init or a
	// transition.
	Entry
	// Exit is delivered to a state as it is left during a transition.
	Exit
	// Nop is delivered solely to discover a state's parent: a response of
	// Parent(p) means p is the parent, anything else means this state is
	// the root.
	Nop
)

// Event is what a State function receives: either one of the three
// meta-events, or an application message. Exactly one of Meta/App is
// meaningful at a time, discriminated by Meta itself.
type Event[T comparable, M message.Message[T]] struct {
	Meta Meta
	App  M
}

// EntryEvent builds the distinguished entry meta-event.
func EntryEvent[T comparable, M message.Message[T]]() Event[T, M] {
	return Event[T, M]{Meta: Entry}
}

// ExitEvent builds the distinguished exit meta-event.
func ExitEvent[T comparable, M message.Message[T]]() Event[T, M] {
	return Event[T, M]{Meta: Exit}
}

// NopEvent builds the distinguished nop meta-event, used only to probe a
// state's parent.
func NopEvent[T comparable, M message.Message[T]]() Event[T, M] {
	return Event[T, M]{Meta: Nop}
}

// AppEvent wraps an application message for dispatch through the HSM.
func AppEvent[T comparable, M message.Message[T]](m M) Event[T, M] {
	return Event[T, M]{Meta: metaNone, App: m}
}

// IsApp reports whether this Event carries an application message rather
// than a meta-event.
func (e Event[T, M]) IsApp() bool { return e.Meta == metaNone }

// State is a state handler: a pure function from (actor, event) to a
// Response. State functions must not capture mutable environment — all
// state lives on the actor passed in. Two State values are considered the
// same state if they point at the same function, compared via their
// reflect.Value pointer (Go function values are not otherwise comparable).
type State[A any, T comparable, M message.Message[T]] func(*A, Event[T, M]) Response[A, T, M]

func stateIdentity[A any, T comparable, M message.Message[T]](s State[A, T, M]) uintptr {
	if s == nil {
		return 0
	}
	return reflect.ValueOf(s).Pointer()
}

func sameState[A any, T comparable, M message.Message[T]](a, b State[A, T, M]) bool {
	return stateIdentity(a) == stateIdentity(b)
}

type responseKind uint8

const (
	respHandled responseKind = iota
	respParent
	respTransition
)

// Response is what a State function returns.
type Response[A any, T comparable, M message.Message[T]] struct {
	kind  responseKind
	state State[A, T, M]
}

// Handled reports that the event was fully processed; dispatch stops here.
func Handled[A any, T comparable, M message.Message[T]]() Response[A, T, M] {
	return Response[A, T, M]{kind: respHandled}
}

// Parent delegates the event to the given parent state, and also declares
// that state to be this one's parent when probed with Nop.
func Parent[A any, T comparable, M message.Message[T]](s State[A, T, M]) Response[A, T, M] {
	return Response[A, T, M]{kind: respParent, state: s}
}

// Transition requests a transition to the given target state. Target must
// be a leaf state; responding with Transition from an Entry or Exit handler
// is a fatal error (staterr.TransitionDuringMetaEvent).
func Transition[A any, T comparable, M message.Message[T]](s State[A, T, M]) Response[A, T, M] {
	return Response[A, T, M]{kind: respTransition, state: s}
}

// Component is the piece of per-actor state the HSM engine needs: the
// current leaf state and a deferral queue. Concrete stators embed Component
// alongside actor.Base.
type Component[A any, T comparable, M message.Message[T]] struct {
	current  State[A, T, M]
	deferred []M
}

// NewComponent builds a Component whose initial (pre-Init) state is init.
// Init must still be called once to run the actual entry sequence down to
// init's leaf.
func NewComponent[A any, T comparable, M message.Message[T]](init State[A, T, M]) Component[A, T, M] {
	return Component[A, T, M]{current: init}
}

// Current returns the state the engine is presently in.
func (c *Component[A, T, M]) Current() State[A, T, M] { return c.current }

// parentOf probes state with Nop to discover its parent, if any.
func parentOf[A any, T comparable, M message.Message[T]](actor *A, state State[A, T, M]) (State[A, T, M], bool) {
	resp := state(actor, NopEvent[T, M]())
	if resp.kind == respParent {
		return resp.state, true
	}
	var zero State[A, T, M]
	return zero, false
}

// pathToRoot walks parent links starting at state (inclusive), stopping at
// the root. It panics with staterr.DepthExceeded past MaxDepth steps.
func pathToRoot[A any, T comparable, M message.Message[T]](actor *A, state State[A, T, M]) []State[A, T, M] {
	path := make([]State[A, T, M], 0, MaxDepth)
	cur := state
	for i := 0; ; i++ {
		path = append(path, cur)
		parent, ok := parentOf(actor, cur)
		if !ok {
			return path
		}
		cur = parent
		if i == MaxDepth {
			panic(&staterr.DepthExceeded{MaxDepth: MaxDepth})
		}
	}
}

// Handle dispatches ev starting from component's current state, bubbling to
// parents on Parent responses and running the transition protocol on
// Transition responses.
func Handle[A any, T comparable, M message.Message[T]](actor *A, component *Component[A, T, M], ev Event[T, M]) {
	callHandler(actor, component, component.current, ev)
}

func callHandler[A any, T comparable, M message.Message[T]](actor *A, component *Component[A, T, M], state State[A, T, M], ev Event[T, M]) {
	resp := state(actor, ev)
	switch resp.kind {
	case respHandled:
		return
	case respParent:
		callHandler(actor, component, resp.state, ev)
	case respTransition:
		doTransition(actor, component, resp.state)
	}
}

// Init drills down from component's current (pre-init) state to the root,
// then replays Entry top-down, placing the actor in its initial leaf state.
func Init[A any, T comparable, M message.Message[T]](actor *A, component *Component[A, T, M]) {
	entryPath := pathToRoot(actor, component.current)
	fireEntries(actor, entryPath)
}

// doTransition implements the exit -> LCA -> entry protocol from source s
// (component.current) to target t.
func doTransition[A any, T comparable, M message.Message[T]](actor *A, component *Component[A, T, M], target State[A, T, M]) {
	exitPath := pathToRoot(actor, component.current)
	entryPath := pathToRoot(actor, target)

	// Trim shared ancestors off the root end of both paths, leaving the
	// self-transition special case (both paths length 1 and equal) intact.
	for {
		exitTop := exitPath[len(exitPath)-1]
		entryTop := entryPath[len(entryPath)-1]
		if !sameState(exitTop, entryTop) {
			break
		}
		if len(exitPath) == 1 && len(entryPath) == 1 {
			break
		}
		exitPath = exitPath[:len(exitPath)-1]
		entryPath = entryPath[:len(entryPath)-1]
	}

	fireExits(actor, exitPath)
	fireEntries(actor, entryPath)
	component.current = target
}

func fireExits[A any, T comparable, M message.Message[T]](actor *A, path []State[A, T, M]) {
	for _, s := range path {
		resp := s(actor, ExitEvent[T, M]())
		if resp.kind == respTransition {
			panic(&staterr.TransitionDuringMetaEvent{Phase: "exit"})
		}
	}
}

func fireEntries[A any, T comparable, M message.Message[T]](actor *A, path []State[A, T, M]) {
	for i := len(path) - 1; i >= 0; i-- {
		resp := path[i](actor, EntryEvent[T, M]())
		if resp.kind == respTransition {
			panic(&staterr.TransitionDuringMetaEvent{Phase: "entry"})
		}
	}
}
