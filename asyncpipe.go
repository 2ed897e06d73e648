package asyncpipe

import "errors"

var (
	_ ByteSink   = (*Writer)(nil)
	_ ByteSource = (*Reader)(nil)
)

// ErrWouldBlock is returned by PollWrite and PollRead when the operation
// cannot make progress. The waker supplied with the call has been parked and
// will be signalled once the other half moves the pipe.
var ErrWouldBlock = errors.New("asyncpipe: would block")

// Waker is the resume token a cooperative scheduler associates with the task
// it is polling. Signalling it must cause that task to be polled again.
type Waker interface {
	Wake()
}

// WakerFunc adapts a plain function to the Waker interface.
type WakerFunc func()

// Wake calls f.
func (f WakerFunc) Wake() { f() }

// ByteSink is the pollable write side of a byte stream.
type ByteSink interface {
	PollWrite(p []byte, w Waker) (int, error)
	PollFlush(w Waker) error
	PollClose(w Waker) error
}

// ByteSource is the pollable read side of a byte stream.
type ByteSource interface {
	PollRead(p []byte, w Waker) (int, error)
}

// New creates a pipe with the given capacity and returns its two halves,
// bound to one shared ring. A negative capacity is treated as zero; a
// zero-capacity pipe is legal but never makes progress.
//
// The pipe performs no locking of its own: both halves must be polled by the
// same cooperative scheduler on the same goroutine, and the scheduler must
// re-poll a parked task once its waker fires.
func New(capacity int) (*Writer, *Reader) {
	if capacity < 0 {
		capacity = 0
	}
	rb := newRingBuffer(capacity)
	return &Writer{rb: rb}, &Reader{rb: rb}
}

// Writer is the producing half of a pipe.
type Writer struct {
	rb *ringBuffer
}

// PollWrite copies bytes from p into the pipe and returns the number
// accepted. It accepts at most the contiguous span before the ring's wrap
// point, so the count may be short of len(p) even when more space is free;
// callers with remaining bytes poll again. When the ring is full, w is
// parked and PollWrite returns ErrWouldBlock. An empty p completes
// immediately with zero.
func (wr *Writer) PollWrite(p []byte, w Waker) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	rb := wr.rb
	n := min(rb.writable(), len(p))
	if n == 0 {
		rb.park(w)
		return 0, ErrWouldBlock
	}

	begin := rb.wrap(rb.writeIdx)
	copy(rb.data[begin:begin+n], p[:n])
	rb.advanceWrite(n)
	rb.wake()
	return n, nil
}

// PollFlush reports success immediately; the ring is the only buffer.
func (wr *Writer) PollFlush(Waker) error {
	return nil
}

// PollClose reports success immediately. It does not mark the stream closed
// and the reader is not notified; end-of-stream, if needed, must be layered
// above the pipe.
func (wr *Writer) PollClose(Waker) error {
	return nil
}

// Reader is the consuming half of a pipe.
type Reader struct {
	rb *ringBuffer
}

// PollRead copies bytes from the pipe into p and returns the number
// delivered. It delivers at most the contiguous span before the ring's wrap
// point, so the count may be short of len(p) even when more bytes are
// buffered; callers wanting more poll again. When the ring is empty, w is
// parked and PollRead returns ErrWouldBlock. An empty p completes
// immediately with zero.
func (rd *Reader) PollRead(p []byte, w Waker) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	rb := rd.rb
	n := min(rb.readable(), len(p))
	if n == 0 {
		rb.park(w)
		return 0, ErrWouldBlock
	}

	begin := rb.wrap(rb.readIdx)
	copy(p[:n], rb.data[begin:begin+n])
	rb.advanceRead(n)
	rb.wake()
	return n, nil
}
