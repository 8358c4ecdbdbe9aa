// Package liststate holds the per-section fetch state machine: a section
// is Loading until its fetch resolves, then Ready with a snapshot or
// Error with a message, until the next refresh.
package liststate

// Phase is the tag of a State.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseReady
	PhaseError
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseReady:
		return "ready"
	case PhaseError:
		return "error"
	}
	return "unknown"
}

// State is a tagged union over the three phases. Data is only set when
// Ready and the message only when Error.
type State[S any] struct {
	phase   Phase
	data    S
	message string
}

// Loading returns the loading state.
func Loading[S any]() State[S] {
	return State[S]{phase: PhaseLoading}
}

// Ready returns the ready state carrying data.
func Ready[S any](data S) State[S] {
	return State[S]{phase: PhaseReady, data: data}
}

// Failed returns the error state carrying message.
func Failed[S any](message string) State[S] {
	return State[S]{phase: PhaseError, message: message}
}

func (s State[S]) Phase() Phase { return s.phase }

func (s State[S]) Loading() bool { return s.phase == PhaseLoading }

// Data returns the snapshot and true when Ready.
func (s State[S]) Data() (S, bool) {
	if s.phase != PhaseReady {
		var zero S
		return zero, false
	}
	return s.data, true
}

// Message returns the error text and true when Error.
func (s State[S]) Message() (string, bool) {
	if s.phase != PhaseError {
		return "", false
	}
	return s.message, true
}
