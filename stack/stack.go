/*
Package stack provides a LIFO stack on top of a dynamic list.

The top of the stack is the last element of the list.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package stack

import (
	"iter"

	"github.com/npillmayer/dsc"
	"github.com/npillmayer/dsc/list"
)

// Stack is a last-in first-out stack. It is not safe for concurrent use.
type Stack[T any] struct {
	list *list.List[T]
}

// New creates an empty stack. The optional configuration is passed to the
// underlying list.
func New[T any](cfg ...list.Config[T]) (*Stack[T], error) {
	var c list.Config[T]
	switch len(cfg) {
	case 0:
	case 1:
		c = cfg[0]
	default:
		return nil, dsc.Errorf(dsc.InvalidParameter, "stack.New", "at most one config allowed, have %d", len(cfg))
	}
	if c.Name == "" {
		c.Name = "stack"
	}
	l, err := list.New(c)
	if err != nil {
		return nil, err
	}
	return &Stack[T]{list: l}, nil
}

// Push puts v on top of the stack.
func (s *Stack[T]) Push(v T) error {
	if err := s.valid("stack.Push"); err != nil {
		return err
	}
	return s.list.Insert(v)
}

// Pop removes and returns the top element.
//
// A non-nil error flagged as completed (see dsc.Completed) signals that the
// element has been popped but shrinking the storage failed.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if err := s.nonEmpty("stack.Pop"); err != nil {
		return zero, err
	}
	top := s.list.Len() - 1
	v, err := s.list.ValueAt(top)
	if err != nil {
		return zero, err
	}
	return v, s.list.Remove(top)
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, error) {
	var zero T
	if err := s.nonEmpty("stack.Peek"); err != nil {
		return zero, err
	}
	return s.list.ValueAt(s.list.Len() - 1)
}

// Len returns the number of elements on the stack.
func (s *Stack[T]) Len() int {
	if s == nil {
		return 0
	}
	return s.list.Len()
}

// Cap returns the capacity of the underlying list.
func (s *Stack[T]) Cap() int {
	if s == nil {
		return 0
	}
	return s.list.Cap()
}

// Name returns the debug name of the stack.
func (s *Stack[T]) Name() string {
	if s == nil {
		return "<nil stack>"
	}
	return s.list.Name()
}

// IsEmpty reports whether the stack has no elements. A nil stack is empty.
func (s *Stack[T]) IsEmpty() bool {
	return s.Len() == 0
}

// IsFull reports whether no free capacity remains. A stack grows on demand,
// thus IsFull is always false.
func (s *Stack[T]) IsFull() bool {
	return false
}

// All iterates over the stack elements, bottom first.
func (s *Stack[T]) All() iter.Seq2[int, T] {
	if s == nil {
		return func(func(int, T) bool) {}
	}
	return s.list.All()
}

// Destroy releases the underlying list.
func (s *Stack[T]) Destroy() {
	if s == nil {
		return
	}
	s.list.Destroy()
	s.list = nil
}

func (s *Stack[T]) valid(op string) error {
	if s == nil {
		return dsc.Errorf(dsc.InvalidParameter, op, "stack is nil")
	}
	if s.list == nil {
		return dsc.Errorf(dsc.InvalidParameter, op, "stack has no list")
	}
	return nil
}

func (s *Stack[T]) nonEmpty(op string) error {
	if err := s.valid(op); err != nil {
		return err
	}
	if s.list.Len() == 0 {
		return dsc.Errorf(dsc.ContainerEmpty, op, "stack is empty")
	}
	return nil
}
