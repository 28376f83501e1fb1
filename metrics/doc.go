/*
Package metrics exports the storage behaviour of containers as Prometheus
metrics.

Containers report capacity changes to a dsc.Monitor. A Resizes collector
subscribes to a monitor and keeps counters of grow and shrink steps per
container, together with gauges for the current capacity and utilization.

	monitor := dsc.NewMonitor()
	resizes := metrics.NewResizes("myapp")
	resizes.Register(prometheus.DefaultRegisterer)
	resizes.Watch(monitor, 64)
	l, _ := list.New(list.Config[int]{Name: "jobs", Monitor: monitor})

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package metrics

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'dsc'
func tracer() tracing.Trace {
	return tracing.Select("dsc")
}
