package motion

// A Timeline owns a collection of motions and advances them together, one
// Step call per frame. Motions are stepped in insertion order with the same
// dt; producers are pure, so order affects only the side effects of
// user-visible callbacks, never the numeric results.
type Timeline struct {
	motions []timelineMotion
}

// timelineMotion is the type-erased view the timeline needs of a
// Motion[T].
type timelineMotion interface {
	Step(dt float64)
	Disconnect()
	removable() bool
}

// NewTimeline creates an empty timeline.
func NewTimeline() *Timeline {
	return &Timeline{}
}

// Apply binds out to a new motion over source and hands ownership of the
// motion to the timeline. The motion is returned for further configuration
// such as speed or the remove-on-finish policy. Any motion already driving
// out is severed and will be reaped on the next step.
func Apply[T any](t *Timeline, out *Output[T], source Phrase[T]) *Motion[T] {
	m := NewMotion(out, source)
	t.motions = append(t.motions, m)
	return m
}

// Step advances every owned motion by dt in insertion order, then reaps
// motions whose slot has been destroyed along with finished motions that
// opted into removal. Reaped motions are disconnected so their slots never
// hold a stale back-link.
func (t *Timeline) Step(dt float64) {
	for _, m := range t.motions {
		m.Step(dt)
	}
	live := t.motions[:0]
	for _, m := range t.motions {
		if m.removable() {
			m.Disconnect()
			continue
		}
		live = append(live, m)
	}
	for i := len(live); i < len(t.motions); i++ {
		t.motions[i] = nil
	}
	t.motions = live
}

// Size returns the number of currently owned motions, connected or not.
func (t *Timeline) Size() int { return len(t.motions) }

// Empty reports whether the timeline owns no motions.
func (t *Timeline) Empty() bool { return len(t.motions) == 0 }
