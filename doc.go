package asyncpipe

// Package asyncpipe exposes a bounded single-producer/single-consumer byte pipe for
// cooperative schedulers. One task writes bytes and another reads them back in FIFO
// order; an operation that cannot make progress parks the caller's waker and reports
// ErrWouldBlock, and the next successful operation on the other half signals that
// waker. The pipe holds a single waker slot and takes no locks, so both halves must
// be polled by the same scheduler on the same goroutine.
