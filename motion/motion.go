package motion

// A Motion binds a Clock to a pure value producer and writes the producer's
// value at the clock's time into one target slot on every step or jump. The
// motion owns its clock exclusively, shares the producer, and holds only a
// non-owning reference to the slot.
type Motion[T any] struct {
	clock          Clock
	source         Phrase[T]
	target         *Output[T]
	removeOnFinish bool
}

// NewMotion binds out to a new motion over source. If another motion is
// already driving out, that connection is severed first; a slot never has
// two live writers.
func NewMotion[T any](out *Output[T], source Phrase[T]) *Motion[T] {
	m := &Motion[T]{
		clock:  Clock{speed: 1, duration: source.Duration()},
		source: source,
	}
	m.connect(out)
	return m
}

func (m *Motion[T]) connect(out *Output[T]) {
	if out == nil {
		return
	}
	if out.conn != nil && out.conn != m {
		out.conn.target = nil
	}
	out.conn = m
	m.target = out
}

// Step advances the clock by dt (scaled by the motion's speed) and writes
// the recomputed value into the target slot. A disconnected motion still
// advances its clock but writes nothing.
func (m *Motion[T]) Step(dt float64) {
	m.clock.Step(dt)
	m.write()
}

// SkipTo jumps the clock directly to t, ignoring speed, and writes the
// value at t.
func (m *Motion[T]) SkipTo(t float64) {
	m.clock.JumpTo(t)
	m.write()
}

func (m *Motion[T]) write() {
	if m.target == nil {
		return
	}
	m.target.value = m.source.Value(m.clock.Time())
}

// IsConnected reports whether the motion currently has a live target slot.
func (m *Motion[T]) IsConnected() bool { return m.target != nil }

// Disconnect severs the connection on both sides. Call when destroying a
// motion that is still connected so the slot's back-link never dangles.
func (m *Motion[T]) Disconnect() {
	if m.target != nil {
		m.target.conn = nil
		m.target = nil
	}
}

// Output returns the target slot, or nil when disconnected.
func (m *Motion[T]) Output() *Output[T] { return m.target }

// MoveFrom relocates src into m. m takes over src's clock, producer and
// target, the slot's back-link is repointed at m, and src is left
// disconnected. Any slot m was previously driving is severed first.
func (m *Motion[T]) MoveFrom(src *Motion[T]) {
	if src == m {
		return
	}
	m.Disconnect()
	m.clock = src.clock
	m.source = src.source
	m.removeOnFinish = src.removeOnFinish
	m.target = src.target
	if m.target != nil {
		m.target.conn = m
	}
	src.target = nil
}

// Time returns the clock's current position.
func (m *Motion[T]) Time() float64 { return m.clock.Time() }

// Speed returns the clock's signed playback speed.
func (m *Motion[T]) Speed() float64 { return m.clock.Speed() }

// SetSpeed changes the playback speed. Negative speeds play backward.
func (m *Motion[T]) SetSpeed(speed float64) { m.clock.SetSpeed(speed) }

// Duration returns the producer's duration.
func (m *Motion[T]) Duration() float64 { return m.clock.Duration() }

// IsFinished reports whether the clock reached the end of travel in its
// current direction.
func (m *Motion[T]) IsFinished() bool { return m.clock.IsFinished() }

// ResetTime rewinds the clock to the logical start of travel for replay.
func (m *Motion[T]) ResetTime() { m.clock.ResetTime() }

// SetRemoveOnFinish opts the motion into being reaped by its owning
// timeline once finished. By default finished motions stay owned; finished
// and disconnected are independent conditions.
func (m *Motion[T]) SetRemoveOnFinish(remove bool) { m.removeOnFinish = remove }

// RemoveOnFinish reports the reap-on-finish policy.
func (m *Motion[T]) RemoveOnFinish() bool { return m.removeOnFinish }

// removable reports whether an owning timeline should drop this motion:
// either its slot is gone, or it finished and opted into removal.
func (m *Motion[T]) removable() bool {
	return m.target == nil || (m.removeOnFinish && m.IsFinished())
}
