package ring

import (
	"github.com/npillmayer/dsc"
)

const (
	// StartCapacity is the initial and minimal capacity of a ring buffer.
	StartCapacity = 8
	// CapacityMultiply is the factor by which capacity grows or shrinks.
	CapacityMultiply = 2
	// GrowThreshold is the number of free slots at (or below) which the buffer
	// grows before inserting.
	GrowThreshold = 1
	// ShrinkRatio: a buffer shrinks if at most 1/ShrinkRatio of its slots are live.
	ShrinkRatio = 6
)

// Config configures a ring buffer. The zero value is a valid configuration.
type Config[T any] struct {
	// Name is used for tracing and resize events. Defaults to "ring".
	Name string
	// Allocator provides backing storage. Defaults to dsc.Heap.
	Allocator dsc.Allocator[T]
	// Monitor receives resize events. May be nil.
	Monitor *dsc.Monitor
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Name == "" {
		cfg.Name = "ring"
	}
	if cfg.Allocator == nil {
		cfg.Allocator = dsc.Heap[T]{}
	}
	return cfg
}

func configure[T any](op string, cfg []Config[T]) (Config[T], error) {
	switch len(cfg) {
	case 0:
		return Config[T]{}.normalized(), nil
	case 1:
		return cfg[0].normalized(), nil
	}
	return Config[T]{}, dsc.Errorf(dsc.InvalidParameter, op, "at most one config allowed, have %d", len(cfg))
}
