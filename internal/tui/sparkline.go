package tui

// sparklineChars are the eight block heights of a sparkline.
var sparklineChars = []rune("▁▂▃▄▅▆▇█")

// RingBuffer keeps the most recent samples of a series.
type RingBuffer struct {
	data  []float64
	head  int
	count int
}

// NewRingBuffer creates a buffer holding up to capacity samples.
func NewRingBuffer(capacity int) *RingBuffer {
	return &RingBuffer{data: make([]float64, max(capacity, 1))}
}

// Push appends v, evicting the oldest sample when full.
func (r *RingBuffer) Push(v float64) {
	r.data[(r.head+r.count)%len(r.data)] = v
	if r.count < len(r.data) {
		r.count++
	} else {
		r.head = (r.head + 1) % len(r.data)
	}
}

// Len returns the number of stored samples.
func (r *RingBuffer) Len() int { return r.count }

// Slice returns the samples oldest first.
func (r *RingBuffer) Slice() []float64 {
	out := make([]float64, r.count)
	for i := range out {
		out[i] = r.data[(r.head+i)%len(r.data)]
	}
	return out
}

// RenderSparkline draws percentages (clamped to 0..100) with block runes.
func RenderSparkline(values []float64) string {
	runes := make([]rune, len(values))
	for i, v := range values {
		v = min(max(v, 0), 100)
		runes[i] = sparklineChars[min(int(v/100*7), 7)]
	}
	return string(runes)
}
