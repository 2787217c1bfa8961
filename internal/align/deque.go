package align

// deque is a double-ended queue on a ring buffer. The reverse scan visits
// words back to front and prepends them, so both ends need O(1) pushes.
type deque[T any] struct {
	buf  []T
	head int
	n    int
}

func (d *deque[T]) Len() int { return d.n }

func (d *deque[T]) PushBack(v T) {
	d.grow()
	d.buf[(d.head+d.n)%len(d.buf)] = v
	d.n++
}

func (d *deque[T]) PushFront(v T) {
	d.grow()
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = v
	d.n++
}

// Push prepends when front is set and appends otherwise.
func (d *deque[T]) Push(v T, front bool) {
	if front {
		d.PushFront(v)
		return
	}
	d.PushBack(v)
}

// Slice returns the elements front to back in a new slice.
func (d *deque[T]) Slice() []T {
	out := make([]T, d.n)
	for i := range d.n {
		out[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	return out
}

// Reset empties the deque, keeping its storage.
func (d *deque[T]) Reset() {
	clear(d.buf)
	d.head, d.n = 0, 0
}

func (d *deque[T]) grow() {
	if d.n < len(d.buf) {
		return
	}
	size := 2 * len(d.buf)
	if size == 0 {
		size = 8
	}
	buf := make([]T, size)
	for i := range d.n {
		buf[i] = d.buf[(d.head+i)%len(d.buf)]
	}
	d.buf, d.head = buf, 0
}
