package window

// Option applies a configuration option to the Window.
type Option func(*Window)

// WithCapacity sets the maximum number of samples the window holds.
func WithCapacity(capacity int) Option {
	return func(w *Window) {
		if capacity > 0 {
			w.capacity = capacity
		}
	}
}
