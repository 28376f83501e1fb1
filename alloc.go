package dsc

import "errors"

// Allocator provides backing storage for containers.
//
// Allocate returns a slice of exactly slots elements or an error of kind
// MemoryAllocationFailure. Containers never resize a slice they got from an
// allocator; every capacity change is a fresh allocation plus a copy.
type Allocator[E any] interface {
	Allocate(slots int) ([]E, error)
}

// Heap allocates storage from the Go heap. It is the default allocator.
type Heap[E any] struct{}

// Allocate returns a new slice of length slots. Allocations the runtime
// refuses (e.g., a length exceeding the address space) are reported as
// MemoryAllocationFailure instead of crashing the program.
func (Heap[E]) Allocate(slots int) (buf []E, err error) {
	if slots < 0 {
		return nil, Errorf(MemoryAllocationFailure, "allocate", "negative slot count %d", slots)
	}
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = Errorf(MemoryAllocationFailure, "allocate",
				"cannot allocate %d slots: %v", slots, r)
		}
	}()
	return make([]E, slots), nil
}

// Limited allocates from the Go heap but refuses requests for more than Max
// slots. It may be used to cap the growth of a container.
type Limited[E any] struct {
	Max int
}

// Allocate returns a new slice of length slots, if slots does not exceed l.Max.
func (l Limited[E]) Allocate(slots int) ([]E, error) {
	if slots > l.Max {
		return nil, Errorf(MemoryAllocationFailure, "allocate",
			"request for %d slots exceeds limit of %d", slots, l.Max)
	}
	return Heap[E]{}.Allocate(slots)
}

// AllocatorFunc adapts a function to the Allocator interface.
type AllocatorFunc[E any] func(slots int) ([]E, error)

// Allocate calls f(slots).
func (f AllocatorFunc[E]) Allocate(slots int) ([]E, error) {
	return f(slots)
}

// Allocate requests storage from a, wrapping foreign errors as
// MemoryAllocationFailure for operation op. A nil allocator means Heap.
func Allocate[E any](a Allocator[E], op string, slots int) ([]E, error) {
	if a == nil {
		a = Heap[E]{}
	}
	buf, err := a.Allocate(slots)
	if err != nil {
		T().Errorf("%s: cannot allocate storage for %d slots", op, slots)
		var e *Error
		if errors.As(err, &e) && e.Kind == MemoryAllocationFailure {
			restamped := *e
			restamped.Op = op
			return nil, &restamped
		}
		return nil, Errorf(MemoryAllocationFailure, op, "%s", err.Error())
	}
	if len(buf) != slots {
		return nil, Errorf(MemoryAllocationFailure, op,
			"allocator returned %d slots, requested %d", len(buf), slots)
	}
	return buf, nil
}

var _ Allocator[int] = Heap[int]{}
var _ Allocator[int] = Limited[int]{}
