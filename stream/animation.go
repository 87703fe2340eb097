package stream

// An Animation implements a way to render a specific animation. dt is the
// measured time in seconds since the previous frame.
type Animation interface {
	CalculateFrame(dt float64) *Frame
}
