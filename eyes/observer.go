package eyes

// Observer receives engine activity as a side channel. It is purely
// observational: the engine behaves identically with or without one
// attached, and never branches on observer state beyond the nil check.
type Observer interface {
	// Event is called once per state-changing command with a short
	// human-readable description.
	Event(kind, detail string)

	// State is called once per tick with the current render snapshot.
	// Implementations are expected to filter for significant changes.
	State(snap Snapshot)
}

func (e *Eyes) notify(kind, detail string) {
	if e.observer != nil {
		e.observer.Event(kind, detail)
	}
}

func (e *Eyes) notifyState() {
	if e.observer != nil {
		e.observer.State(e.Snapshot())
	}
}
