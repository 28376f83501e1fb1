package list

import (
	"github.com/npillmayer/dsc"
)

const (
	// CapacityIncrement is the number of slots added or removed by a resize.
	CapacityIncrement = 8
	// NeedsRoomThreshold is the number of free slots at (or below) which a
	// list grows before inserting.
	NeedsRoomThreshold = 1
)

// Config configures a list. The zero value is a valid configuration.
type Config[T any] struct {
	// Name is used for tracing and resize events. Defaults to "list".
	Name string
	// Allocator provides backing storage. Defaults to dsc.Heap.
	Allocator dsc.Allocator[T]
	// Monitor receives resize events. May be nil.
	Monitor *dsc.Monitor
}

func (cfg Config[T]) normalized() Config[T] {
	if cfg.Name == "" {
		cfg.Name = "list"
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
