package ring

import (
	"fmt"
	"iter"

	"github.com/npillmayer/dsc"
)

// Buffer is a deque maintained over a ring buffer.
//
// Live elements occupy Len() slots starting at the head slot, wrapping around
// the end of the storage. New elements are written at the next-position slot.
// Capacity starts at StartCapacity, doubles when at most GrowThreshold slots
// are free and halves when at most 1/ShrinkRatio of the slots are live, but
// never drops below StartCapacity.
//
// A Buffer is not safe for concurrent use.
type Buffer[T any] struct {
	cfg      Config[T]
	data     []T // len(data) is the capacity
	head     int // slot of the first element
	next     int // slot where the next inserted element lands
	length   int
	released bool
}

// New creates an empty ring buffer with StartCapacity slots. At most one
// configuration may be given.
func New[T any](cfg ...Config[T]) (*Buffer[T], error) {
	c, err := configure("ring.New", cfg)
	if err != nil {
		return nil, err
	}
	data, err := dsc.Allocate(c.Allocator, "ring.New", StartCapacity)
	if err != nil {
		return nil, err
	}
	return &Buffer[T]{cfg: c, data: data}, nil
}

// Name returns the debug name of the buffer.
func (r *Buffer[T]) Name() string {
	if r == nil {
		return "<nil ring>"
	}
	return r.cfg.Name
}

// Len returns the number of elements in the buffer.
func (r *Buffer[T]) Len() int {
	if r == nil {
		return 0
	}
	return r.length
}

// Cap returns the number of slots of the backing storage.
func (r *Buffer[T]) Cap() int {
	if r == nil {
		return 0
	}
	return len(r.data)
}

// Head returns the slot index of the first element.
func (r *Buffer[T]) Head() int {
	if r == nil {
		return 0
	}
	return r.head
}

// Next returns the slot index where the next inserted element will land.
func (r *Buffer[T]) Next() int {
	if r == nil {
		return 0
	}
	return r.next
}

// IsEmpty reports whether the buffer has no elements.
func (r *Buffer[T]) IsEmpty() bool {
	return r.Len() == 0
}

// Insert appends v at the tail of the buffer.
//
// If storage cannot be grown, Insert returns an error of kind
// MemoryAllocationFailure and the buffer is left unmodified.
func (r *Buffer[T]) Insert(v T) error {
	if err := r.valid("ring.Insert"); err != nil {
		return err
	}
	if len(r.data)-r.length <= GrowThreshold {
		if err := r.resize("ring.Insert", len(r.data)*CapacityMultiply); err != nil {
			return err
		}
	}
	r.data[r.next] = v
	r.length++
	r.next = (r.next + 1) % len(r.data)
	return nil
}

// PopFirst removes and returns the element at the head of the buffer.
//
// A non-nil error flagged as completed (see dsc.Completed) signals that the
// element has been removed but shrinking the storage failed.
func (r *Buffer[T]) PopFirst() (T, error) {
	var zero T
	if err := r.nonEmpty("ring.PopFirst"); err != nil {
		return zero, err
	}
	v := r.data[r.head]
	r.data[r.head] = zero
	r.head = (r.head + 1) % len(r.data)
	r.length--
	return v, r.afterPop("ring.PopFirst")
}

// PopLast removes and returns the element at the tail of the buffer.
//
// Errors are reported as for PopFirst.
func (r *Buffer[T]) PopLast() (T, error) {
	var zero T
	if err := r.nonEmpty("ring.PopLast"); err != nil {
		return zero, err
	}
	last := r.lastSlot()
	v := r.data[last]
	r.data[last] = zero
	r.next = last
	r.length--
	return v, r.afterPop("ring.PopLast")
}

// PeekFirst returns the element at the head of the buffer without removing it.
func (r *Buffer[T]) PeekFirst() (T, error) {
	var zero T
	if err := r.nonEmpty("ring.PeekFirst"); err != nil {
		return zero, err
	}
	return r.data[r.head], nil
}

// PeekLast returns the element at the tail of the buffer without removing it.
func (r *Buffer[T]) PeekLast() (T, error) {
	var zero T
	if err := r.nonEmpty("ring.PeekLast"); err != nil {
		return zero, err
	}
	return r.data[r.lastSlot()], nil
}

// At returns the element at logical position i, where 0 is the head.
func (r *Buffer[T]) At(i int) (T, error) {
	var zero T
	if err := r.nonEmpty("ring.At"); err != nil {
		return zero, err
	}
	if i < 0 || i >= r.length {
		return zero, dsc.Errorf(dsc.InvalidParameter, "ring.At",
			"index %d out of range (length %d)", i, r.length)
	}
	return r.data[r.slot(i)], nil
}

// Destroy releases the backing storage. Every later operation reports
// InvalidParameter. Destroy may be called on a nil or destroyed buffer.
func (r *Buffer[T]) Destroy() {
	if r == nil || r.released {
		return
	}
	dsc.T().Infof("%s: destroy, releasing %d slots", r.cfg.Name, len(r.data))
	r.data = nil
	r.head, r.next, r.length = 0, 0, 0
	r.released = true
}

// All iterates over logical position/element pairs, starting at the head.
func (r *Buffer[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if r == nil {
			return
		}
		for i := 0; i < r.length; i++ {
			if !yield(i, r.data[r.slot(i)]) {
				return
			}
		}
	}
}

// Values returns a copy of the elements in logical order.
func (r *Buffer[T]) Values() []T {
	if r == nil || r.length == 0 {
		return nil
	}
	values := make([]T, 0, r.length)
	for _, v := range r.All() {
		values = append(values, v)
	}
	return values
}

// Check validates structural buffer invariants.
func (r *Buffer[T]) Check() error {
	if err := r.valid("ring.Check"); err != nil {
		return err
	}
	capacity := len(r.data)
	if capacity < StartCapacity {
		return fmt.Errorf("%w: capacity %d below minimum %d", dsc.InvalidParameter, capacity, StartCapacity)
	}
	if capacity/StartCapacity&(capacity/StartCapacity-1) != 0 || capacity%StartCapacity != 0 {
		return fmt.Errorf("%w: capacity %d is not %d·2^k", dsc.InvalidParameter, capacity, StartCapacity)
	}
	if r.length < 0 || r.length > capacity {
		return fmt.Errorf("%w: length %d exceeds capacity %d", dsc.InvalidParameter, r.length, capacity)
	}
	if r.head < 0 || r.head >= capacity {
		return fmt.Errorf("%w: head %d outside [0,%d)", dsc.InvalidParameter, r.head, capacity)
	}
	if r.next != (r.head+r.length)%capacity {
		return fmt.Errorf("%w: next position %d inconsistent with head %d and length %d",
			dsc.InvalidParameter, r.next, r.head, r.length)
	}
	return nil
}

// --- Internals -------------------------------------------------------------

func (r *Buffer[T]) valid(op string) error {
	if r == nil {
		return dsc.Errorf(dsc.InvalidParameter, op, "buffer is nil")
	}
	if r.released {
		return dsc.Errorf(dsc.InvalidParameter, op, "buffer has been destroyed")
	}
	return nil
}

func (r *Buffer[T]) nonEmpty(op string) error {
	if err := r.valid(op); err != nil {
		return err
	}
	if r.length == 0 {
		return dsc.Errorf(dsc.ContainerEmpty, op, "buffer is empty")
	}
	return nil
}

func (r *Buffer[T]) slot(i int) int {
	return (r.head + i) % len(r.data)
}

func (r *Buffer[T]) lastSlot() int {
	return (r.next + len(r.data) - 1) % len(r.data)
}

func (r *Buffer[T]) shouldDecreaseCapacity() bool {
	if len(r.data) <= StartCapacity {
		return false
	}
	return r.length <= len(r.data)/ShrinkRatio
}

// afterPop runs the best-effort shrink and resets the slot indices of an empty
// buffer.
func (r *Buffer[T]) afterPop(op string) error {
	var err error
	if r.shouldDecreaseCapacity() {
		if e := r.resize(op, len(r.data)/CapacityMultiply); e != nil {
			err = dsc.AsCompleted(e)
		}
	}
	if r.length == 0 {
		r.head, r.next = 0, 0
	}
	return err
}

// resize linearizes the live elements into fresh storage of newCapacity
// slots, starting at slot 0. On error the buffer is unchanged.
func (r *Buffer[T]) resize(op string, newCapacity int) error {
	ev := dsc.ResizeEvent{
		Container: r.cfg.Name,
		Op:        op,
		From:      len(r.data),
		To:        newCapacity,
		Length:    r.length,
	}
	if newCapacity < r.length || newCapacity < StartCapacity {
		err := dsc.Errorf(dsc.ResizeRejected, op,
			"cannot resize from %d to %d slots with %d live elements", len(r.data), newCapacity, r.length)
		r.cfg.Monitor.Rejected(ev, err)
		return err
	}
	data, err := dsc.Allocate(r.cfg.Allocator, op, newCapacity)
	if err != nil {
		r.cfg.Monitor.Rejected(ev, err)
		return err
	}
	for i := 0; i < r.length; i++ {
		data[i] = r.data[r.slot(i)]
	}
	r.data = data
	r.head = 0
	r.next = r.length % newCapacity
	r.cfg.Monitor.Resized(ev)
	return nil
}
