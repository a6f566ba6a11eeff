// Package window provides the fixed-capacity rolling windows used to
// smooth noisy per-frame measurements.
//
// Each metric owns one window: pushes past capacity evict the oldest
// sample, and the smoothed value is the arithmetic mean of the current
// contents. Windows are not safe for concurrent use; the pipeline
// confines each one to a single execution context.
package window

// Default window configuration constants.
const (
	defaultCapacity = 30
)

// Window is a fixed-capacity ring of the most recent raw samples.
type Window struct {
	buf      []float64
	capacity int
	next     int
	size     int
}

// New creates a rolling window with configuration options.
func New(opts ...Option) *Window {
	w := &Window{
		capacity: defaultCapacity,
	}

	for _, opt := range opts {
		opt(w)
	}

	w.buf = make([]float64, w.capacity)
	return w
}

// Push appends a sample, evicting the oldest once the window is full.
func (w *Window) Push(v float64) {
	w.buf[w.next] = v
	w.next = (w.next + 1) % w.capacity
	if w.size < w.capacity {
		w.size++
	}
}

// Mean returns the arithmetic mean of the current contents. The mean of
// an empty window is 0; in normal operation the first push always
// precedes the first read.
func (w *Window) Mean() float64 {
	if w.size == 0 {
		return 0
	}
	var sum float64
	for i := 0; i < w.size; i++ {
		sum += w.buf[i]
	}
	return sum / float64(w.size)
}

// Len returns the number of samples currently held.
func (w *Window) Len() int {
	return w.size
}

// Cap returns the configured capacity.
func (w *Window) Cap() int {
	return w.capacity
}

// Reset empties the window unconditionally.
func (w *Window) Reset() {
	w.next = 0
	w.size = 0
}
