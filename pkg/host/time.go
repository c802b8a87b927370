// Package host models the parts of the 3D application's object graph the light
// exporter reads from: animated parameter blocks, nodes, objects and meshes.
package host

// TimeValue is an animation time in ticks
type TimeValue int

const (
	TicksPerSecond TimeValue = 4800
	TicksPerFrame  TimeValue = 160
)

// FrameTime returns the time of the given frame
func FrameTime(frame int) TimeValue {
	return TimeValue(frame) * TicksPerFrame
}

// Seconds returns t in seconds
func (t TimeValue) Seconds() float64 {
	return float64(t) / float64(TicksPerSecond)
}
