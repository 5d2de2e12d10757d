// Package host defines the capabilities a game session borrows from whatever
// runs it: a drawing surface, a frame scheduler and touch input.
package host

// FrameFunc is a frame callback. It receives the frame timestamp in
// milliseconds; timestamps are monotonically increasing.
type FrameFunc func(ms float64)

// Scheduler requests a callback on the next display frame.
type Scheduler interface {
	RequestFrame(fn FrameFunc)
}

// FrameQueue is a Scheduler driven explicitly by its owner. Each Flush runs
// the callbacks that were requested before the flush started; callbacks
// requested while flushing wait for the next Flush.
//
// FrameQueue is not safe for concurrent use.
type FrameQueue struct {
	pending []FrameFunc
	frames  uint64
	last    float64
}

// NewFrameQueue creates an empty frame queue.
func NewFrameQueue() *FrameQueue {
	return &FrameQueue{}
}

// RequestFrame implements Scheduler.
func (q *FrameQueue) RequestFrame(fn FrameFunc) {
	if fn == nil {
		return
	}
	q.pending = append(q.pending, fn)
}

// Flush runs one display frame at time ms and returns how many callbacks ran.
// A timestamp older than the previous frame is raised to it.
func (q *FrameQueue) Flush(ms float64) int {
	if ms < q.last {
		ms = q.last
	}
	q.last = ms
	q.frames++

	due := q.pending
	q.pending = nil
	for _, fn := range due {
		fn(ms)
	}
	return len(due)
}

// Pending returns the number of callbacks waiting for the next frame.
func (q *FrameQueue) Pending() int {
	return len(q.pending)
}

// Frames returns how many frames have been flushed.
func (q *FrameQueue) Frames() uint64 {
	return q.frames
}
