package adaptive

// DefaultWindowSize bounds the rolling window when the caller does not
// choose one.
const DefaultWindowSize = 12

// Observation is one attempt's contribution to the window.
type Observation struct {
	Correct  bool
	Category TriggerCategory
}

// Window is a bounded ordered sequence of the most recent observations.
// Oldest entries are evicted once capacity is reached. The selector
// only reads it; ownership stays with the caller.
type Window struct {
	capacity int
	obs      []Observation
}

// NewWindow creates a window with the given capacity, or
// DefaultWindowSize when capacity is not positive.
func NewWindow(capacity int) *Window {
	if capacity <= 0 {
		capacity = DefaultWindowSize
	}
	return &Window{capacity: capacity, obs: make([]Observation, 0, capacity)}
}

// Add appends an observation, evicting the oldest if full.
func (w *Window) Add(o Observation) {
	if len(w.obs) == w.capacity {
		copy(w.obs, w.obs[1:])
		w.obs = w.obs[:len(w.obs)-1]
	}
	w.obs = append(w.obs, o)
}

// Len returns the number of observations held.
func (w *Window) Len() int { return len(w.obs) }

// Full reports whether the window is at capacity.
func (w *Window) Full() bool { return len(w.obs) == w.capacity }

// Accuracy returns the fraction of correct observations, 0 when empty.
func (w *Window) Accuracy() float64 {
	if len(w.obs) == 0 {
		return 0
	}
	correct := 0
	for _, o := range w.obs {
		if o.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(w.obs))
}

// Observations returns a copy of the window's contents, oldest first.
func (w *Window) Observations() []Observation {
	out := make([]Observation, len(w.obs))
	copy(out, w.obs)
	return out
}
