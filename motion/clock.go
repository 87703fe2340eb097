package motion

// A Clock is the time cursor for a single motion. It tracks a position along
// a fixed [0, duration] range, advancing by a signed speed multiplier. The
// playback direction is derived from the sign of the speed rather than
// stored separately, so it can never fall out of sync.
type Clock struct {
	time         float64
	previousTime float64
	speed        float64
	duration     float64
}

// NewClock creates a Clock over duration seconds, playing forward at unit
// speed.
func NewClock(duration float64) *Clock {
	return &Clock{speed: 1, duration: duration}
}

// Step advances the cursor by dt * speed. dt may be zero (an idempotent
// re-query) or negative (caller-driven reverse scrubbing); only the stored
// speed determines the direction used by IsFinished and ResetTime.
func (c *Clock) Step(dt float64) {
	c.time += dt * c.speed
	c.previousTime = c.time
}

// JumpTo moves the cursor directly to t, ignoring speed.
func (c *Clock) JumpTo(t float64) {
	c.time = t
	c.previousTime = c.time
}

// Time returns the current position in seconds. It may lie outside
// [0, duration] after large steps or jumps.
func (c *Clock) Time() float64 { return c.time }

// PreviousTime returns the position at the last completed step or jump.
func (c *Clock) PreviousTime() float64 { return c.previousTime }

// Duration returns the length of the range the clock travels.
func (c *Clock) Duration() float64 { return c.duration }

// Speed returns the signed multiplier applied to incoming dt.
func (c *Clock) Speed() float64 { return c.speed }

// SetSpeed changes the playback speed. A negative speed plays backward.
func (c *Clock) SetSpeed(speed float64) { c.speed = speed }

// Forward reports whether the clock plays toward duration.
func (c *Clock) Forward() bool { return c.speed >= 0 }

// Backward reports whether the clock plays toward zero.
func (c *Clock) Backward() bool { return c.speed < 0 }

// IsFinished reports whether the cursor has reached the end of the range in
// its direction of travel: duration when playing forward, zero when playing
// backward.
func (c *Clock) IsFinished() bool {
	if c.Backward() {
		return c.time <= 0
	}
	return c.time >= c.duration
}

// ResetTime rewinds the cursor to the logical start of travel: zero when
// playing forward, duration when playing backward. Use before replaying a
// finished clock.
func (c *Clock) ResetTime() {
	if c.Forward() {
		c.time = 0
		c.previousTime = 0
	} else {
		c.time = c.duration
		c.previousTime = c.duration
	}
}
