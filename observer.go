package tagmap

// Stats describes the size of a map right after a mutation.
type Stats struct {
	// Keys is the number of live keys.
	Keys int
	// Tags is the number of tags with at least one value.
	Tags int
}

// Observer is notified after every mutation that changed the map. No-op
// removals and replacements are not reported.
type Observer interface {
	Observe(op Op, stats Stats)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(op Op, stats Stats)

// Observe implements Observer.
func (f ObserverFunc) Observe(op Op, stats Stats) { f(op, stats) }

type noopObserver struct{}

func (noopObserver) Observe(Op, Stats) {}
