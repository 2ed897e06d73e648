package asyncpipe

// ringBuffer is the state shared by the two halves of a pipe: the backing
// store, the read/write cursors and the single waker slot.
//
// Cursors live in [0, 2*capacity) rather than [0, capacity) so that a full
// ring (cursors differ by exactly capacity) is distinguishable from an empty
// one (cursors equal) without giving up a slot of storage.
type ringBuffer struct {
	data     []byte
	readIdx  int
	writeIdx int
	waker    Waker
}

// newRingBuffer creates ring state with the specified capacity.
func newRingBuffer(capacity int) *ringBuffer {
	return &ringBuffer{
		data: make([]byte, capacity),
	}
}

// wrap reduces a cursor to its physical position in data.
func (r *ringBuffer) wrap(idx int) int {
	if idx >= len(r.data) {
		idx -= len(r.data)
	}
	return idx
}

// readable returns the number of bytes available in one contiguous span
// starting at the physical read position. When the buffered data wraps
// around the end of the store only the prefix up to the end is reported;
// the remainder becomes visible on a later call.
func (r *ringBuffer) readable() int {
	if r.readIdx == r.writeIdx {
		return 0
	}

	readIdx := r.wrap(r.readIdx)
	writeIdx := r.wrap(r.writeIdx)
	if readIdx < writeIdx {
		// Buffered bytes sit in one span.
		//   [. r x x w .]
		return writeIdx - readIdx
	}
	// Write cursor has wrapped; read up to the end of the store.
	//   [x w . . r x]
	return len(r.data) - readIdx
}

// writable returns the free space in one contiguous span starting at the
// physical write position, never crossing the end of the store.
func (r *ringBuffer) writable() int {
	capacity := len(r.data)

	writeIdx := r.writeIdx
	if writeIdx < r.readIdx {
		writeIdx += 2 * capacity
	}

	free := capacity - (writeIdx - r.readIdx)
	spaceBeforeEnd := capacity - r.wrap(r.writeIdx)
	return min(free, spaceBeforeEnd)
}

// advanceRead moves the read cursor forward by n, which must not exceed
// readable().
func (r *ringBuffer) advanceRead(n int) {
	r.readIdx += n
	if r.readIdx >= 2*len(r.data) {
		r.readIdx -= 2 * len(r.data)
	}
}

// advanceWrite moves the write cursor forward by n, which must not exceed
// writable().
func (r *ringBuffer) advanceWrite(n int) {
	r.writeIdx += n
	if r.writeIdx >= 2*len(r.data) {
		r.writeIdx -= 2 * len(r.data)
	}
}

// park stores w, replacing any previously parked waker without signalling
// it. With one producer and one consumer on one scheduler at most one side
// is parked at a time.
func (r *ringBuffer) park(w Waker) {
	r.waker = w
}

// wake takes the parked waker, if any, and signals it.
func (r *ringBuffer) wake() {
	if w := r.waker; w != nil {
		r.waker = nil
		w.Wake()
	}
}
