package motion

// An Output is an addressable slot holding the latest value computed by the
// motion driving it. Slots are value-like: application code owns them and
// may relocate or duplicate them, so instead of raw pointer-patching the
// slot exposes explicit MoveFrom, CopyFrom and Close operations that keep
// the slot/motion back-references consistent on both sides.
//
// At most one motion drives a slot at any time. Whenever a connection
// exists, the motion's target points at this exact slot and the slot's
// back-link points at that exact motion.
type Output[T any] struct {
	value T
	conn  *Motion[T]
}

// NewOutput creates a disconnected slot holding initial.
func NewOutput[T any](initial T) *Output[T] {
	return &Output[T]{value: initial}
}

// Value returns the last written value.
func (o *Output[T]) Value() T { return o.value }

// IsConnected reports whether a motion currently drives this slot.
func (o *Output[T]) IsConnected() bool { return o.conn != nil }

// Driver returns the motion currently driving this slot, or nil.
func (o *Output[T]) Driver() *Motion[T] { return o.conn }

// Disconnect severs the connection on both sides. The slot keeps its
// current value; the driving motion, if any, stops writing.
func (o *Output[T]) Disconnect() {
	if o.conn != nil {
		o.conn.target = nil
		o.conn = nil
	}
}

// Close destroys the slot as a write target. The driving motion becomes
// disconnected and its subsequent steps no longer write anywhere; an owning
// timeline will reap it on its next step.
func (o *Output[T]) Close() {
	o.Disconnect()
}

// MoveFrom relocates src into o. o takes over src's value and its live
// connection, and the driving motion is repointed at o within this call, so
// the motion never observes the stale location. src is left as a
// disconnected, zero-valued shell. Any motion previously driving o is
// severed first.
func (o *Output[T]) MoveFrom(src *Output[T]) {
	if src == o {
		return
	}
	o.Disconnect()
	o.value = src.value
	o.conn = src.conn
	if o.conn != nil {
		o.conn.target = o
	}
	var zero T
	src.conn = nil
	src.value = zero
}

// CopyFrom duplicates src's value into o. Copying never transfers live
// control: o ends up disconnected even when src is driven, and src keeps
// its own connection untouched.
func (o *Output[T]) CopyFrom(src *Output[T]) {
	if src == o {
		return
	}
	o.Disconnect()
	o.value = src.value
}
