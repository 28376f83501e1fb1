package dsc

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/guiguan/caster"
)

// ResizeEvent describes a change of a container's capacity.
type ResizeEvent struct {
	Container string // debug name of the container
	Op        string // operation triggering the resize
	From, To  int    // capacity before and after
	Length    int    // number of live elements at the time of the resize
}

func (ev ResizeEvent) String() string {
	return fmt.Sprintf("%s: %s resized %d → %d (length %d)",
		ev.Container, ev.Op, ev.From, ev.To, ev.Length)
}

// Grown reports whether the event describes a capacity increase.
func (ev ResizeEvent) Grown() bool {
	return ev.To > ev.From
}

// Monitor publishes resize events of containers to subscribers.
//
// A Monitor wraps a broadcaster; subscribers receive ResizeEvent values.
// A nil *Monitor is valid and discards all events.
type Monitor struct {
	cast   *caster.Caster
	closed atomic.Bool
}

// NewMonitor creates a monitor. Call Close to release it.
func NewMonitor() *Monitor {
	return &Monitor{cast: caster.New(nil)}
}

// Subscribe returns a channel receiving ResizeEvents. Parameter buffer is the
// channel's capacity. Publishing never waits for a subscriber: events arriving
// while the channel is full are dropped for that subscriber.
//
// Subscribing to a closed monitor fails.
func (m *Monitor) Subscribe(buffer uint) (<-chan interface{}, bool) {
	if m == nil || m.cast == nil || m.closed.Load() {
		return nil, false
	}
	select {
	case <-m.cast.Done():
		return nil, false
	default:
	}
	return m.cast.Sub(context.Background(), buffer)
}

// Close shuts down the monitor and closes all subscriber channels.
func (m *Monitor) Close() {
	if m == nil || m.cast == nil {
		return
	}
	m.closed.Store(true)
	m.cast.Close()
}

// Resized traces a capacity change and publishes it to subscribers.
// It does not block on subscribers with a full channel.
func (m *Monitor) Resized(ev ResizeEvent) {
	T().Debugf("%s", ev)
	if m == nil || m.cast == nil {
		return
	}
	m.cast.TryPub(ev)
}

// Rejected traces a capacity change which could not be performed.
func (m *Monitor) Rejected(ev ResizeEvent, err error) {
	T().Errorf("%s: resize %d → %d rejected: %v", ev.Container, ev.From, ev.To, err)
}
