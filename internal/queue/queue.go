package queue

import "sync"

// Queue is a mutex-guarded FIFO. Guess events are pushed by request
// handlers and drained in batches by the worker, so the hot path is
// Push plus GetAndEmpty rather than item-by-item Pop.
type Queue[T any] struct {
	mu   sync.Mutex
	head int
	buf  []T
}

// New creates an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push appends items in order.
func (q *Queue[T]) Push(items ...T) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.buf = append(q.buf, items...)
}

// Pop removes and returns the oldest item, or the zero value when the
// queue is empty.
func (q *Queue[T]) Pop() T {
	q.mu.Lock()
	defer q.mu.Unlock()
	var zero T
	if q.head >= len(q.buf) {
		return zero
	}
	item := q.buf[q.head]
	q.buf[q.head] = zero
	q.head++
	if q.head == len(q.buf) {
		q.buf = q.buf[:0]
		q.head = 0
	}
	return item
}

// Empty reports whether the queue holds no items.
func (q *Queue[T]) Empty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.head >= len(q.buf)
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.buf) - q.head
}

// Clear discards all queued items.
func (q *Queue[T]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.buf = q.buf[:0]
	q.head = 0
}

// GetAndEmpty takes every queued item in one batch, leaving the queue
// empty. The returned slice is owned by the caller.
func (q *Queue[T]) GetAndEmpty() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.head >= len(q.buf) {
		return nil
	}
	batch := make([]T, len(q.buf)-q.head)
	copy(batch, q.buf[q.head:])
	q.buf = q.buf[:0]
	q.head = 0
	return batch
}
