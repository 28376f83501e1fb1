package metrics

import (
	"sync/atomic"

	"github.com/npillmayer/dsc"
	"github.com/prometheus/client_golang/prometheus"
)

// Resizes collects Prometheus metrics from the resize events of containers.
//
// All metrics carry a label "container" holding the debug name of the
// container (see the Name field of the containers' Config).
type Resizes struct {
	grows    *prometheus.CounterVec
	shrinks  *prometheus.CounterVec
	capacity *prometheus.GaugeVec
	fill     *prometheus.GaugeVec
	done     chan struct{}
	watching atomic.Bool
}

// NewResizes creates resize metrics within namespace. If namespace is empty,
// "dsc" is used.
func NewResizes(namespace string) *Resizes {
	if namespace == "" {
		namespace = "dsc"
	}
	labels := []string{"container"}
	return &Resizes{
		grows: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "grows_total",
			Help:      "Total number of capacity increases",
		}, labels),
		shrinks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "shrinks_total",
			Help:      "Total number of capacity decreases",
		}, labels),
		capacity: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "capacity",
			Help:      "Capacity in slots after the latest resize",
		}, labels),
		fill: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "storage",
			Name:      "utilization",
			Help:      "Ratio of live elements to capacity after the latest resize (0.0 to 1.0)",
		}, labels),
		done: make(chan struct{}),
	}
}

// Register registers all metrics with reg.
func (r *Resizes) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{r.grows, r.shrinks, r.capacity, r.fill} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Observe records a single resize event.
func (r *Resizes) Observe(ev dsc.ResizeEvent) {
	if ev.Grown() {
		r.grows.WithLabelValues(ev.Container).Inc()
	} else {
		r.shrinks.WithLabelValues(ev.Container).Inc()
	}
	r.capacity.WithLabelValues(ev.Container).Set(float64(ev.To))
	if ev.To > 0 {
		r.fill.WithLabelValues(ev.Container).Set(float64(ev.Length) / float64(ev.To))
	}
}

// Watch subscribes to m and observes every resize event published by it, until
// m is closed. Watch may be called at most once per Resizes; subsequent calls
// fail with dsc.InvalidParameter. Subscribing to a nil or closed monitor fails
// as well and leaves r ready for another call.
func (r *Resizes) Watch(m *dsc.Monitor, buffer uint) error {
	if !r.watching.CompareAndSwap(false, true) {
		return dsc.Errorf(dsc.InvalidParameter, "metrics.Watch", "already watching a monitor")
	}
	events, ok := m.Subscribe(buffer)
	if !ok {
		r.watching.Store(false)
		return dsc.Errorf(dsc.InvalidParameter, "metrics.Watch", "cannot subscribe to monitor")
	}
	go func() {
		defer close(r.done)
		for msg := range events {
			if ev, ok := msg.(dsc.ResizeEvent); ok {
				r.Observe(ev)
			}
		}
		tracer().Debugf("resize monitor closed")
	}()
	return nil
}

// Done is closed after the monitor watched by Watch has been closed and all
// of its events have been observed.
func (r *Resizes) Done() <-chan struct{} {
	return r.done
}
