package metrics

import (
	"testing"
	"time"

	"github.com/npillmayer/dsc"
	"github.com/npillmayer/dsc/list"
	"github.com/npillmayer/dsc/ring"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dsc")
	defer teardown()
	//
	r := NewResizes("")
	r.Observe(dsc.ResizeEvent{Container: "a", Op: "list.Insert", From: 0, To: 8, Length: 0})
	r.Observe(dsc.ResizeEvent{Container: "a", Op: "list.Insert", From: 8, To: 16, Length: 7})
	r.Observe(dsc.ResizeEvent{Container: "a", Op: "list.Remove", From: 16, To: 8, Length: 4})
	assert.Equal(t, 2.0, testutil.ToFloat64(r.grows.WithLabelValues("a")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.shrinks.WithLabelValues("a")))
	assert.Equal(t, 8.0, testutil.ToFloat64(r.capacity.WithLabelValues("a")))
	assert.Equal(t, 0.5, testutil.ToFloat64(r.fill.WithLabelValues("a")))
}

func TestRegister(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dsc")
	defer teardown()
	//
	reg := prometheus.NewRegistry()
	r := NewResizes("test")
	require.NoError(t, r.Register(reg))
	r.Observe(dsc.ResizeEvent{Container: "q", From: 8, To: 16, Length: 7})
	families, err := reg.Gather()
	require.NoError(t, err)
	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "test_storage_grows_total")
	assert.Contains(t, names, "test_storage_capacity")
	assert.Error(t, r.Register(reg), "registering twice has to fail")
}

func TestWatchMonitor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dsc")
	defer teardown()
	// events are observed on a goroutine of their own
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	monitor := dsc.NewMonitor()
	r := NewResizes("watch")
	require.NoError(t, r.Watch(monitor, 64))
	l, err := list.New(list.Config[int]{Name: "numbers", Monitor: monitor})
	require.NoError(t, err)
	for i := 0; i < 20; i++ { // capacity 0 → 8 → 16 → 24
		require.NoError(t, l.Insert(i))
	}
	b, err := ring.New(ring.Config[int]{Name: "ring", Monitor: monitor})
	require.NoError(t, err)
	for i := 0; i < 8; i++ { // capacity 8 → 16
		require.NoError(t, b.Insert(i))
	}
	monitor.Close()
	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("monitor events have not been consumed")
	}
	assert.Equal(t, 3.0, testutil.ToFloat64(r.grows.WithLabelValues("numbers")))
	assert.Equal(t, 24.0, testutil.ToFloat64(r.capacity.WithLabelValues("numbers")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.grows.WithLabelValues("ring")))
	assert.Equal(t, 16.0, testutil.ToFloat64(r.capacity.WithLabelValues("ring")))
}

func TestWatchNilMonitor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dsc")
	defer teardown()
	//
	r := NewResizes("nil")
	assert.ErrorIs(t, r.Watch(nil, 1), dsc.InvalidParameter)
}

func TestWatchClosedMonitor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dsc")
	defer teardown()
	//
	monitor := dsc.NewMonitor()
	monitor.Close()
	r := NewResizes("closed")
	assert.ErrorIs(t, r.Watch(monitor, 1), dsc.InvalidParameter)
	select {
	case <-r.Done():
		t.Fatal("Done must not fire for a failed Watch")
	default:
	}
}

func TestWatchTwice(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dsc")
	defer teardown()
	//
	first, second := dsc.NewMonitor(), dsc.NewMonitor()
	defer second.Close()
	r := NewResizes("twice")
	require.NoError(t, r.Watch(first, 4))
	assert.ErrorIs(t, r.Watch(second, 4), dsc.InvalidParameter)
	first.Close()
	select {
	case <-r.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("watcher has not terminated")
	}
}
