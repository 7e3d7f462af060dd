package slotarena

// counters are lifetime totals. They survive Clear.
type counters struct {
	created    uint64
	destructed uint64
	refreshes  uint64
	grows      uint64
}

// Pending returns the number of slots past Len that the next Refresh will
// examine: elements created since the last Refresh.
func (a *Arena[T]) Pending() int {
	return a.sizeNext - a.size
}

// Utilization returns the ratio of live elements to allocated slots
// (0.0 to 1.0). Returns 0.0 if the arena has no capacity.
func (a *Arena[T]) Utilization() float64 {
	capacity := a.Cap()
	if capacity == 0 {
		return 0
	}
	return float64(a.size) / float64(capacity)
}

// Metrics returns a snapshot of arena statistics.
func (a *Arena[T]) Metrics() Metrics {
	return Metrics{
		Len:         a.size,
		LenNext:     a.sizeNext,
		Cap:         a.Cap(),
		Pending:     a.Pending(),
		Utilization: a.Utilization(),
		Created:     a.stats.created,
		Destructed:  a.stats.destructed,
		Refreshes:   a.stats.refreshes,
		Grows:       a.stats.grows,
	}
}

// Metrics contains statistical information about an arena.
type Metrics struct {
	Len         int     // Live elements as of the last Refresh
	LenNext     int     // Slots in use, including unswept ones
	Cap         int     // Allocated slots
	Pending     int     // LenNext - Len
	Utilization float64 // Len / Cap (0.0-1.0)
	Created     uint64  // Elements ever constructed
	Destructed  uint64  // Elements ever destructed
	Refreshes   uint64  // Refresh calls
	Grows       uint64  // Storage growths
}

// Live returns the number of constructed elements not yet destructed.
func (m Metrics) Live() uint64 {
	return m.Created - m.Destructed
}
