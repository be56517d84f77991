package planner

// Listener receives state-change notifications from a Controller. The
// controller calls listeners synchronously after each successful operation,
// outside its own lock, passing copies of the new state; a listener may
// safely call back into the controller. Rendering sinks (the TUI, the demo
// printer) implement this to stay decoupled from the state machine.
type Listener interface {
	PlanCreated(plan Plan)
	SessionStarted(sess Session)
	ProgressUpdated(progress Progress)
	SessionEnded(minutes int)
}
