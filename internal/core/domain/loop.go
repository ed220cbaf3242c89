package domain

// LoopState is a state of the edit/compile/convert/copy loop.
type LoopState string

// Loop states.
const (
	StateEditing     LoopState = "editing"
	StateCompiling   LoopState = "compiling"
	StateRasterizing LoopState = "rasterizing"
	StateCopying     LoopState = "copying"
	StateDone        LoopState = "done"
)

// String returns the string representation.
func (s LoopState) String() string {
	return string(s)
}

// IsTerminal returns true if the loop stops in this state.
func (s LoopState) IsTerminal() bool {
	return s == StateDone
}

// Outcome is the result of running a state.
type Outcome string

// Outcomes.
const (
	// OutcomeUnchanged means the editor session left the document as it was.
	OutcomeUnchanged Outcome = "unchanged"

	// OutcomeChanged means the editor session modified the document.
	OutcomeChanged Outcome = "changed"

	// OutcomeSucceeded means the stage's external program exited zero.
	OutcomeSucceeded Outcome = "succeeded"

	// OutcomeFailed means the stage's external program exited non-zero.
	OutcomeFailed Outcome = "failed"
)

type transitionKey struct {
	from    LoopState
	outcome Outcome
}

var transitions = map[transitionKey]LoopState{
	{StateEditing, OutcomeUnchanged}:     StateDone,
	{StateEditing, OutcomeChanged}:       StateCompiling,
	{StateCompiling, OutcomeFailed}:      StateEditing,
	{StateCompiling, OutcomeSucceeded}:   StateRasterizing,
	{StateRasterizing, OutcomeFailed}:    StateEditing,
	{StateRasterizing, OutcomeSucceeded}: StateCopying,
	{StateCopying, OutcomeFailed}:        StateEditing,
	{StateCopying, OutcomeSucceeded}:     StateEditing,
}

// Transition returns the state that follows from with the given outcome.
// The second return value is false if the pair is not a valid transition.
func Transition(from LoopState, outcome Outcome) (LoopState, bool) {
	to, ok := transitions[transitionKey{from, outcome}]
	return to, ok
}

// RequiresAcknowledgment returns true if a failure in this state must be
// acknowledged by the user before editing resumes.
// Compilation failures are the user's own mistakes and are visible in the
// compiler output, so they return to editing straight away.
func RequiresAcknowledgment(s LoopState) bool {
	return s == StateRasterizing || s == StateCopying
}
