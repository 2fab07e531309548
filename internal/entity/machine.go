package entity

type machineState int

const (
	stateIdle machineState = iota
	stateAccumulating
)

func (s machineState) String() string {
	if s == stateAccumulating {
		return "accumulating"
	}
	return "idle"
}

// accumulator is the line-oriented state machine behind the education and
// experience extractors. An opening line commits (or discards) the entry
// being built and starts a new one. Other lines are fed to the open entry.
// At end of input the open entry is committed or discarded.
type accumulator[T any] struct {
	state   machineState
	current T
	entries []T

	opens    func(line string) bool
	open     func(line string) T
	feed     func(entry *T, line string)
	complete func(entry T) bool
}

func (a *accumulator[T]) step(line string) {
	switch {
	case a.opens(line):
		if a.state == stateAccumulating {
			a.close()
		}
		a.current = a.open(line)
		a.state = stateAccumulating
	case a.state == stateAccumulating && a.feed != nil:
		a.feed(&a.current, line)
	}
}

// close commits the open entry when its required fields are present and
// drops it otherwise. The machine returns to idle either way.
func (a *accumulator[T]) close() {
	if a.state != stateAccumulating {
		return
	}
	if a.complete(a.current) {
		a.entries = append(a.entries, a.current)
	}
	var zero T
	a.current = zero
	a.state = stateIdle
}

func (a *accumulator[T]) finish() []T {
	a.close()
	return a.entries
}
