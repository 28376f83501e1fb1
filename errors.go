package dsc

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"errors"
	"fmt"
)

// ErrorKind classifies errors reported by containers.
//
// An ErrorKind is itself an error, so clients may test for a kind with
//
//	errors.Is(err, dsc.ContainerEmpty)
type ErrorKind int

const (
	// MemoryAllocationFailure signals that backing storage could not be allocated.
	MemoryAllocationFailure ErrorKind = iota + 1
	// InvalidParameter signals an absent container, a zero item size or an
	// index out of range.
	InvalidParameter
	// ContainerEmpty signals an operation which requires at least one element.
	ContainerEmpty
	// ResizeRejected signals a capacity change which would drop live elements.
	ResizeRejected
	// NotImplemented marks operations which are declared but not implemented.
	NotImplemented
)

var kindNames = [...]string{
	"no error",
	"memory allocation failure",
	"invalid parameter",
	"container empty",
	"resize rejected",
	"not implemented",
}

func (k ErrorKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("error kind %d", int(k))
	}
	return kindNames[k]
}

func (k ErrorKind) Error() string {
	return "dsc: " + k.String()
}

// Error is the error type returned by all containers.
//
// Completed is set if the primary effect of the operation took place and only a
// best-effort follow-up step failed. This is the case if a removal succeeded but
// the opportunistic shrinking of the storage afterwards did not.
type Error struct {
	Kind      ErrorKind
	Op        string // operation which failed, e.g. "list.Remove"
	Msg       string
	Completed bool
}

// Errorf creates an error of kind k for operation op.
func Errorf(k ErrorKind, op string, format string, args ...any) *Error {
	return &Error{
		Kind: k,
		Op:   op,
		Msg:  fmt.Sprintf(format, args...),
	}
}

func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("dsc: %s: %s", e.Kind, e.Msg)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Msg)
}

// Is lets errors.Is match an *Error against its kind.
func (e *Error) Is(target error) bool {
	if k, ok := target.(ErrorKind); ok {
		return e.Kind == k
	}
	return false
}

// Unwrap returns the error kind.
func (e *Error) Unwrap() error {
	return e.Kind
}

// KindOf extracts the error kind from err. It returns 0 if err is nil or is not
// an error produced by this module.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	var k ErrorKind
	if errors.As(err, &k) {
		return k
	}
	return 0
}

// Completed reports whether the operation which returned err took effect.
// This is true for a nil error and for errors flagged as Completed.
func Completed(err error) bool {
	if err == nil {
		return true
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Completed
	}
	return false
}

// AsCompleted flags err as a failed best-effort step after a completed
// operation. err must be an *Error; other errors are returned unchanged.
func AsCompleted(err error) error {
	var e *Error
	if errors.As(err, &e) {
		c := *e
		c.Completed = true
		return &c
	}
	return err
}
