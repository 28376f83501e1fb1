package list

import (
	"fmt"
	"iter"

	"github.com/npillmayer/dsc"
)

// List is a contiguous sequence of elements which grows and shrinks its
// backing storage in steps of CapacityIncrement.
//
// Elements occupy slots [0, Len()) in positional order. A list created by New
// has capacity 0 and no backing storage; the first insert allocates.
//
//	Operation     |  Cost
//	--------------+----------------------
//	Insert        |  O(1) amortized, O(n) on resize
//	InsertAt      |  O(n)
//	Remove        |  O(n)
//	ValueAt       |  O(1)
//
// A List is not safe for concurrent use.
type List[T any] struct {
	cfg      Config[T]
	data     []T // len(data) is the capacity
	length   int
	released bool
}

// New creates an empty list. At most one configuration may be given.
func New[T any](cfg ...Config[T]) (*List[T], error) {
	c, err := configure("list.New", cfg)
	if err != nil {
		return nil, err
	}
	return &List[T]{cfg: c}, nil
}

// Name returns the debug name of the list.
func (l *List[T]) Name() string {
	if l == nil {
		return "<nil list>"
	}
	return l.cfg.Name
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// Cap returns the number of slots of the backing storage.
func (l *List[T]) Cap() int {
	if l == nil {
		return 0
	}
	return len(l.data)
}

// IsEmpty reports whether the list has no elements.
func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// Insert appends item at the end of the list.
//
// If storage cannot be grown, Insert returns an error of kind
// MemoryAllocationFailure and the list is left unmodified.
func (l *List[T]) Insert(item T) error {
	if err := l.valid("list.Insert"); err != nil {
		return err
	}
	if err := l.ensureRoom("list.Insert"); err != nil {
		return err
	}
	l.data[l.length] = item
	l.length++
	return nil
}

// InsertAt inserts item at position, shifting elements at [position, Len())
// one slot to the right. position == Len() appends.
func (l *List[T]) InsertAt(item T, position int) error {
	if err := l.valid("list.InsertAt"); err != nil {
		return err
	}
	if position < 0 || position > l.length {
		return dsc.Errorf(dsc.InvalidParameter, "list.InsertAt",
			"position %d out of range [0,%d]", position, l.length)
	}
	if err := l.ensureRoom("list.InsertAt"); err != nil {
		return err
	}
	if position < l.length {
		copy(l.data[position+1:l.length+1], l.data[position:l.length])
	}
	l.data[position] = item
	l.length++
	return nil
}

// Remove deletes the element at index, shifting subsequent elements one slot
// to the left.
//
// After removal the list may shrink its storage. Shrinking is best-effort:
// if it fails, the element is still removed and the returned error is flagged
// as completed (see dsc.Completed).
func (l *List[T]) Remove(index int) error {
	if err := l.valid("list.Remove"); err != nil {
		return err
	}
	if l.length == 0 {
		return dsc.Errorf(dsc.ContainerEmpty, "list.Remove", "cannot remove from empty list")
	}
	if index < 0 || index >= l.length {
		return dsc.Errorf(dsc.InvalidParameter, "list.Remove",
			"index %d out of range (length %d)", index, l.length)
	}
	copy(l.data[index:l.length-1], l.data[index+1:l.length])
	var zero T
	l.data[l.length-1] = zero // do not retain references
	l.length--
	if l.needsCapacityDecrease() {
		if err := l.resize("list.Remove", len(l.data)-CapacityIncrement); err != nil {
			return dsc.AsCompleted(err)
		}
	}
	return nil
}

// PointerTo returns a reference to the element at index. The reference points
// into the list's storage and is valid until the next mutating call.
func (l *List[T]) PointerTo(index int) (*T, error) {
	if err := l.valid("list.PointerTo"); err != nil {
		return nil, err
	}
	if index < 0 || index >= l.length {
		return nil, dsc.Errorf(dsc.InvalidParameter, "list.PointerTo",
			"index %d out of range (length %d)", index, l.length)
	}
	return &l.data[index], nil
}

// ValueAt returns a copy of the element at index.
func (l *List[T]) ValueAt(index int) (T, error) {
	var zero T
	if err := l.valid("list.ValueAt"); err != nil {
		return zero, err
	}
	if l.length == 0 {
		return zero, dsc.Errorf(dsc.ContainerEmpty, "list.ValueAt", "list is empty")
	}
	if index < 0 || index >= l.length {
		return zero, dsc.Errorf(dsc.InvalidParameter, "list.ValueAt",
			"index %d out of range (length %d)", index, l.length)
	}
	return l.data[index], nil
}

// Destroy releases the backing storage. Every later operation reports
// InvalidParameter. Destroy may be called on a nil or destroyed list.
func (l *List[T]) Destroy() {
	if l == nil || l.released {
		return
	}
	dsc.T().Infof("%s: destroy, releasing %d slots", l.cfg.Name, len(l.data))
	l.data = nil
	l.length = 0
	l.released = true
}

// All iterates over index/element pairs in positional order.
func (l *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if l == nil {
			return
		}
		for i := 0; i < l.length; i++ {
			if !yield(i, l.data[i]) {
				return
			}
		}
	}
}

// Values returns a copy of the elements in positional order.
func (l *List[T]) Values() []T {
	if l == nil || l.length == 0 {
		return nil
	}
	return append([]T(nil), l.data[:l.length]...)
}

// Check validates structural list invariants.
func (l *List[T]) Check() error {
	if l == nil {
		return dsc.Errorf(dsc.InvalidParameter, "list.Check", "nil list")
	}
	if l.length < 0 || l.length > len(l.data) {
		return fmt.Errorf("%w: length %d exceeds capacity %d", dsc.InvalidParameter, l.length, len(l.data))
	}
	if (l.data == nil) != (len(l.data) == 0) {
		return fmt.Errorf("%w: storage present iff capacity > 0 violated", dsc.InvalidParameter)
	}
	if len(l.data)%CapacityIncrement != 0 {
		return fmt.Errorf("%w: capacity %d not a multiple of %d", dsc.InvalidParameter,
			len(l.data), CapacityIncrement)
	}
	return nil
}

// --- Capacity management ---------------------------------------------------

func (l *List[T]) valid(op string) error {
	if l == nil {
		return dsc.Errorf(dsc.InvalidParameter, op, "list is nil")
	}
	if l.released {
		return dsc.Errorf(dsc.InvalidParameter, op, "list has been destroyed")
	}
	return nil
}

func (l *List[T]) needsCapacity() bool {
	return len(l.data)-l.length <= NeedsRoomThreshold
}

func (l *List[T]) needsCapacityDecrease() bool {
	return len(l.data)-l.length >= CapacityIncrement+NeedsRoomThreshold
}

func (l *List[T]) ensureRoom(op string) error {
	if !l.needsCapacity() {
		return nil
	}
	return l.resize(op, len(l.data)+CapacityIncrement)
}

// resize moves the live elements to fresh storage of newCapacity slots.
// On error the list is unchanged.
func (l *List[T]) resize(op string, newCapacity int) error {
	ev := dsc.ResizeEvent{
		Container: l.cfg.Name,
		Op:        op,
		From:      len(l.data),
		To:        newCapacity,
		Length:    l.length,
	}
	if newCapacity < l.length {
		err := dsc.Errorf(dsc.ResizeRejected, op,
			"new capacity %d below length %d", newCapacity, l.length)
		l.cfg.Monitor.Rejected(ev, err)
		return err
	}
	var data []T
	if newCapacity > 0 {
		var err error
		if data, err = dsc.Allocate(l.cfg.Allocator, op, newCapacity); err != nil {
			l.cfg.Monitor.Rejected(ev, err)
			return err
		}
		copy(data, l.data[:l.length])
	}
	l.data = data
	l.cfg.Monitor.Resized(ev)
	return nil
}
