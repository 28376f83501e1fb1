/*
Package queue provides a FIFO queue on top of a ring buffer.

The queue does not keep any state of its own besides the buffer: its length
is always the length of the buffer.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package queue

import (
	"iter"

	"github.com/npillmayer/dsc"
	"github.com/npillmayer/dsc/ring"
)

// Queue is a first-in first-out queue. It is not safe for concurrent use.
type Queue[T any] struct {
	buffer *ring.Buffer[T]
}

// New creates an empty queue. The optional configuration is passed to the
// underlying ring buffer.
func New[T any](cfg ...ring.Config[T]) (*Queue[T], error) {
	var c ring.Config[T]
	switch len(cfg) {
	case 0:
	case 1:
		c = cfg[0]
	default:
		return nil, dsc.Errorf(dsc.InvalidParameter, "queue.New", "at most one config allowed, have %d", len(cfg))
	}
	if c.Name == "" {
		c.Name = "queue"
	}
	buffer, err := ring.New(c)
	if err != nil {
		return nil, err
	}
	return &Queue[T]{buffer: buffer}, nil
}

// Enqueue appends v at the back of the queue.
func (q *Queue[T]) Enqueue(v T) error {
	if err := q.valid("queue.Enqueue"); err != nil {
		return err
	}
	return q.buffer.Insert(v)
}

// Dequeue removes and returns the element at the front of the queue.
// Errors are reported as for ring.Buffer.PopFirst.
func (q *Queue[T]) Dequeue() (T, error) {
	if err := q.valid("queue.Dequeue"); err != nil {
		var zero T
		return zero, err
	}
	return q.buffer.PopFirst()
}

// Peek returns the element at the front of the queue without removing it.
func (q *Queue[T]) Peek() (T, error) {
	if err := q.valid("queue.Peek"); err != nil {
		var zero T
		return zero, err
	}
	return q.buffer.PeekFirst()
}

// ValueAt returns the element at position index, counted from the front.
func (q *Queue[T]) ValueAt(index int) (T, error) {
	if err := q.valid("queue.ValueAt"); err != nil {
		var zero T
		return zero, err
	}
	return q.buffer.At(index)
}

// Len returns the number of queued elements.
func (q *Queue[T]) Len() int {
	if q == nil {
		return 0
	}
	return q.buffer.Len()
}

// Cap returns the capacity of the underlying buffer.
func (q *Queue[T]) Cap() int {
	if q == nil {
		return 0
	}
	return q.buffer.Cap()
}

// Name returns the debug name of the queue.
func (q *Queue[T]) Name() string {
	if q == nil {
		return "<nil queue>"
	}
	return q.buffer.Name()
}

// IsEmpty reports whether the queue has no elements.
func (q *Queue[T]) IsEmpty() bool {
	return q.Len() == 0
}

// All iterates over the queued elements, front first.
func (q *Queue[T]) All() iter.Seq2[int, T] {
	if q == nil {
		return func(func(int, T) bool) {}
	}
	return q.buffer.All()
}

// Destroy releases the underlying buffer.
func (q *Queue[T]) Destroy() {
	if q == nil {
		return
	}
	q.buffer.Destroy()
	q.buffer = nil
}

func (q *Queue[T]) valid(op string) error {
	if q == nil {
		return dsc.Errorf(dsc.InvalidParameter, op, "queue is nil")
	}
	if q.buffer == nil {
		return dsc.Errorf(dsc.InvalidParameter, op, "queue has no buffer")
	}
	return nil
}
