package frame

// MaxHistory is the number of samples a History keeps.
const MaxHistory = 256

// History is a ring of the most recent samples, used for frame times.
type History struct {
	samples [MaxHistory]float32
	head    int
	count   int
}

func (h *History) Add(v float32) {
	h.head = (h.head + MaxHistory - 1) % MaxHistory
	h.samples[h.head] = v
	if h.count < MaxHistory {
		h.count++
	}
}

func (h *History) Len() int { return h.count }

// Sample returns the i-th most recent sample, 0 being the newest.
func (h *History) Sample(i int) float32 {
	return h.samples[(h.head+i)%MaxHistory]
}

func (h *History) Min() float32 {
	if h.count == 0 {
		return 0
	}
	v := h.Sample(0)
	for i := 1; i < h.count; i++ {
		v = min(v, h.Sample(i))
	}
	return v
}

func (h *History) Max() float32 {
	if h.count == 0 {
		return 0
	}
	v := h.Sample(0)
	for i := 1; i < h.count; i++ {
		v = max(v, h.Sample(i))
	}
	return v
}

func (h *History) Average() float32 {
	if h.count == 0 {
		return 0
	}
	var sum float32
	for i := 0; i < h.count; i++ {
		sum += h.Sample(i)
	}
	return sum / float32(h.count)
}
