package list

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/npillmayer/dsc"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func generate(t *testing.T, n int) *List[int] {
	t.Helper()
	l, err := New[int]()
	if err != nil {
		t.Fatalf("unexpected New error: %v", err)
	}
	for i := 0; i < n; i++ {
		if err := l.Insert(i); err != nil {
			t.Fatalf("unexpected Insert error at %d: %v", i, err)
		}
	}
	return l
}

func TestNewListIsEmpty(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l := generate(t, 0)
	if l.Len() != 0 || l.Cap() != 0 {
		t.Fatalf("unexpected empty list state len=%d cap=%d", l.Len(), l.Cap())
	}
	if err := l.Check(); err != nil {
		t.Fatalf("expected empty list to be valid, got %v", err)
	}
	if _, err := New(Config[int]{}, Config[int]{}); !errors.Is(err, dsc.InvalidParameter) {
		t.Fatalf("expected InvalidParameter for two configs, got %v", err)
	}
}

func TestListInsertGrowsByIncrement(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l := generate(t, 1)
	if l.Cap() != CapacityIncrement {
		t.Fatalf("expected first insert to allocate %d slots, have %d", CapacityIncrement, l.Cap())
	}
	for i := 1; i < 7; i++ {
		_ = l.Insert(i)
	}
	if l.Len() != 7 || l.Cap() != 8 {
		t.Fatalf("expected len=7 cap=8, have len=%d cap=%d", l.Len(), l.Cap())
	}
	_ = l.Insert(7) // one free slot left: grow first
	if l.Len() != 8 || l.Cap() != 16 {
		t.Fatalf("expected len=8 cap=16, have len=%d cap=%d", l.Len(), l.Cap())
	}
	if err := l.Check(); err != nil {
		t.Fatal(err)
	}
}

func TestListCreateSmallAndLarger(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	for _, n := range []int{5, 25} {
		l := generate(t, n)
		if l.Len() != n {
			t.Errorf("expected length %d, have %d", n, l.Len())
		}
		l.Destroy()
	}
}

func TestListRemoveScenario(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l := generate(t, 33) // 0 … 32
	for _, index := range []int{0, 10, 10, 15} {
		if err := l.Remove(index); err != nil {
			t.Fatalf("unexpected Remove(%d) error: %v", index, err)
		}
	}
	// now 1…10, 13…17, 19…32
	p, err := l.PointerTo(10)
	if err != nil {
		t.Fatalf("unexpected PointerTo error: %v", err)
	}
	if *p != 13 {
		t.Errorf("expected element at index 10 to be 13, is %d", *p)
	}
	if v, _ := l.ValueAt(15); v != 19 {
		t.Errorf("expected element at index 15 to be 19, is %d", v)
	}
	if l.Len() != 29 {
		t.Errorf("expected length 29, have %d", l.Len())
	}
	l.Destroy()
}

func TestListRemoveMany(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l := generate(t, 26)
	for i := 0; i < 15; i++ {
		if err := l.Remove(0); err != nil {
			t.Fatalf("unexpected Remove error: %v", err)
		}
	}
	v, err := l.ValueAt(0)
	if err != nil {
		t.Fatalf("unexpected ValueAt error: %v", err)
	}
	if v != 15 {
		t.Errorf("expected first element to be 15, is %d", v)
	}
}

func TestListRemoveLastElement(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l := generate(t, 25)
	if err := l.Remove(l.Len() - 1); err != nil {
		t.Fatalf("unexpected Remove error: %v", err)
	}
	p, err := l.PointerTo(l.Len() - 1)
	if err != nil {
		t.Fatalf("unexpected PointerTo error: %v", err)
	}
	if *p != 23 {
		t.Errorf("expected last element to be 23, is %d", *p)
	}
}

func TestListRemoveDuplicateValues(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	l, _ := New[int]()
	for range 2 {
		for i := 0; i < 64; i++ {
			_ = l.Insert(i)
		}
	}
	n := l.Len()
	for i := 0; i < n/2; i++ {
		_ = l.Remove(0)
	}
	if v, _ := l.ValueAt(0); v != 0 {
		t.Errorf("expected first element to be 0, is %d", v)
	}
	if l.Len() != 64 {
		t.Errorf("expected length 64, have %d", l.Len())
	}
}

func TestListShrinksByIncrement(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l := generate(t, 33)
	if l.Cap() != 40 {
		t.Fatalf("expected capacity 40 after 33 inserts, have %d", l.Cap())
	}
	expected := map[int]int{32: 40, 31: 32, 24: 32, 23: 24, 15: 16, 7: 8, 0: 8}
	for l.Len() > 0 {
		if err := l.Remove(l.Len() - 1); err != nil {
			t.Fatalf("unexpected Remove error: %v", err)
		}
		if c, ok := expected[l.Len()]; ok && l.Cap() != c {
			t.Errorf("at length %d expected capacity %d, have %d", l.Len(), c, l.Cap())
		}
		if err := l.Check(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestListInsertAt(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l := generate(t, 5)
	if err := l.InsertAt(33, 3); err != nil {
		t.Fatalf("unexpected InsertAt error: %v", err)
	}
	if v, _ := l.ValueAt(3); v != 33 {
		t.Errorf("expected 33 at index 3, have %d", v)
	}
	if err := l.InsertAt(-1, 0); err != nil {
		t.Fatalf("unexpected InsertAt error: %v", err)
	}
	if err := l.InsertAt(99, l.Len()); err != nil {
		t.Fatalf("unexpected InsertAt error at end: %v", err)
	}
	want := []int{-1, 0, 1, 2, 33, 3, 4, 99}
	if !slices.Equal(l.Values(), want) {
		t.Errorf("expected %v, have %v", want, l.Values())
	}
}

func TestListInsertAtOutOfRange(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l := generate(t, 7) // one free slot: a valid insert would grow
	for _, pos := range []int{-1, 8, 100} {
		err := l.InsertAt(42, pos)
		if !errors.Is(err, dsc.InvalidParameter) {
			t.Errorf("expected InvalidParameter for position %d, got %v", pos, err)
		}
	}
	if l.Len() != 7 || l.Cap() != 8 {
		t.Errorf("list modified by failed InsertAt: len=%d cap=%d", l.Len(), l.Cap())
	}
}

func TestListEmptyErrors(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l := generate(t, 0)
	if err := l.Remove(15); !errors.Is(err, dsc.ContainerEmpty) {
		t.Errorf("expected ContainerEmpty from Remove(15), got %v", err)
	}
	if err := l.Remove(0); !errors.Is(err, dsc.ContainerEmpty) {
		t.Errorf("expected ContainerEmpty from Remove(0), got %v", err)
	}
	if _, err := l.ValueAt(0); !errors.Is(err, dsc.ContainerEmpty) {
		t.Errorf("expected ContainerEmpty from ValueAt, got %v", err)
	}
	if _, err := l.PointerTo(0); !errors.Is(err, dsc.InvalidParameter) {
		t.Errorf("expected InvalidParameter from PointerTo, got %v", err)
	}
	if l.Len() != 0 || l.Cap() != 0 {
		t.Errorf("empty list modified: len=%d cap=%d", l.Len(), l.Cap())
	}
}

func TestListIndexOutOfRange(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l := generate(t, 32)
	if err := l.Remove(-5); !errors.Is(err, dsc.InvalidParameter) {
		t.Errorf("expected InvalidParameter for negative index, got %v", err)
	}
	if err := l.Remove(32); !errors.Is(err, dsc.InvalidParameter) {
		t.Errorf("expected InvalidParameter for index == length, got %v", err)
	}
	if _, err := l.ValueAt(32); !errors.Is(err, dsc.InvalidParameter) {
		t.Errorf("expected InvalidParameter from ValueAt, got %v", err)
	}
	if v, _ := l.ValueAt(0); v != 0 || l.Len() != 32 {
		t.Errorf("list modified by failed Remove")
	}
}

func TestNilAndDestroyedList(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var l *List[int]
	if err := l.Insert(1); !errors.Is(err, dsc.InvalidParameter) {
		t.Errorf("expected InvalidParameter for nil list, got %v", err)
	}
	if err := l.Remove(0); !errors.Is(err, dsc.InvalidParameter) {
		t.Errorf("expected InvalidParameter for nil list, got %v", err)
	}
	l.Destroy() // must not panic
	//
	l = generate(t, 3)
	l.Destroy()
	l.Destroy()
	if err := l.Insert(1); !errors.Is(err, dsc.InvalidParameter) {
		t.Errorf("expected InvalidParameter for destroyed list, got %v", err)
	}
	if l.Len() != 0 || l.Cap() != 0 {
		t.Errorf("destroyed list still holds storage")
	}
}

func TestListGrowthFailureRollsBack(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l, _ := New(Config[int]{Allocator: dsc.Limited[int]{Max: 16}})
	for i := 0; i < 15; i++ {
		if err := l.Insert(i); err != nil {
			t.Fatalf("unexpected Insert error at %d: %v", i, err)
		}
	}
	err := l.Insert(15)
	if !errors.Is(err, dsc.MemoryAllocationFailure) {
		t.Fatalf("expected MemoryAllocationFailure, got %v", err)
	}
	if dsc.Completed(err) {
		t.Errorf("failed growth must not be flagged as completed")
	}
	if err = l.InsertAt(15, 0); !errors.Is(err, dsc.MemoryAllocationFailure) {
		t.Fatalf("expected MemoryAllocationFailure from InsertAt, got %v", err)
	}
	if l.Len() != 15 || l.Cap() != 16 {
		t.Errorf("list modified by failed insert: len=%d cap=%d", l.Len(), l.Cap())
	}
	if v, _ := l.ValueAt(0); v != 0 {
		t.Errorf("expected first element 0, have %d", v)
	}
}

func TestListShrinkFailureKeepsRemoval(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	failing := false
	alloc := dsc.AllocatorFunc[int](func(n int) ([]int, error) {
		if failing {
			return nil, errors.New("out of memory")
		}
		return make([]int, n), nil
	})
	l, _ := New(Config[int]{Allocator: alloc})
	for i := 0; i < 33; i++ {
		_ = l.Insert(i)
	}
	failing = true
	if err := l.Remove(0); err != nil {
		t.Fatalf("unexpected error from Remove without shrink: %v", err)
	}
	err := l.Remove(0) // free slots reach 9: shrink attempt
	if !errors.Is(err, dsc.MemoryAllocationFailure) {
		t.Fatalf("expected MemoryAllocationFailure from shrink, got %v", err)
	}
	if !dsc.Completed(err) {
		t.Errorf("expected shrink failure to be flagged as completed")
	}
	if l.Len() != 31 || l.Cap() != 40 {
		t.Errorf("expected len=31 cap=40, have len=%d cap=%d", l.Len(), l.Cap())
	}
	if v, _ := l.ValueAt(0); v != 2 {
		t.Errorf("expected first element 2 after two removals, have %d", v)
	}
}

func TestListResizeRejected(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l := generate(t, 10)
	err := l.resize("test", 8)
	if !errors.Is(err, dsc.ResizeRejected) {
		t.Fatalf("expected ResizeRejected, got %v", err)
	}
	if l.Len() != 10 || l.Cap() != 16 {
		t.Errorf("rejected resize modified list: len=%d cap=%d", l.Len(), l.Cap())
	}
}

func TestListPointerIsLive(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l := generate(t, 4)
	p, _ := l.PointerTo(2)
	*p = 200
	if v, _ := l.ValueAt(2); v != 200 {
		t.Errorf("expected write through pointer to be visible, have %d", v)
	}
}

type testStruct struct {
	index int
	name  string
	score float64
}

func TestListOfStructs(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l, _ := New(Config[testStruct]{Name: "structs"})
	for i := 0; i < 10; i++ {
		s := testStruct{index: i, name: "tester", score: float64(i) / 2}
		_ = l.Insert(s)
		s.index = -1 // list holds a copy
	}
	v, err := l.ValueAt(3)
	if err != nil {
		t.Fatalf("unexpected ValueAt error: %v", err)
	}
	if v.index != 3 || v.score != 1.5 {
		t.Errorf("unexpected element at index 3: %+v", v)
	}
	if l.Name() != "structs" {
		t.Errorf("expected name 'structs', have %q", l.Name())
	}
}

func TestListAddRemoveOverTime(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	l := generate(t, 11) // 0 … 10
	_ = l.Remove(3)
	for range 3 {
		_ = l.Insert(5)
	}
	_ = l.Remove(0)
	if err := l.Remove(23); !errors.Is(err, dsc.InvalidParameter) {
		t.Errorf("expected InvalidParameter, got %v", err)
	}
	_ = l.Remove(25050)
	_ = l.Insert(5)
	_ = l.Insert(5)
	_ = l.Remove(0)
	_ = l.Remove(10)
	_ = l.Remove(0)
	_ = l.Insert(5)
	_ = l.Insert(5)
	want := []int{4, 5, 6, 7, 8, 9, 10, 5, 5, 5, 5, 5, 5}
	if !slices.Equal(l.Values(), want) {
		t.Errorf("expected %v, have %v", want, l.Values())
	}
	var collected []int
	for i, v := range l.All() {
		if i != len(collected) {
			t.Fatalf("iteration out of order at %d", i)
		}
		collected = append(collected, v)
	}
	if !slices.Equal(collected, want) {
		t.Errorf("iteration yields %v, expected %v", collected, want)
	}
}

func TestListPublishesResizeEvents(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	m := dsc.NewMonitor()
	defer m.Close()
	events, ok := m.Subscribe(8)
	if !ok {
		t.Fatalf("cannot subscribe to monitor")
	}
	l, _ := New(Config[int]{Name: "watched", Monitor: m})
	_ = l.Insert(1)
	ev := receive(t, events)
	if ev.Container != "watched" || ev.From != 0 || ev.To != 8 || !ev.Grown() {
		t.Errorf("unexpected resize event %v", ev)
	}
}

func TestListInsertWithStalledSubscriber(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	m := dsc.NewMonitor()
	events, ok := m.Subscribe(1) // never drained
	if !ok {
		t.Fatalf("cannot subscribe to monitor")
	}
	l, _ := New(Config[int]{Name: "stalled", Monitor: m})
	inserted := make(chan error)
	go func() {
		for i := 0; i < 40; i++ {
			if err := l.Insert(i); err != nil {
				inserted <- err
				return
			}
		}
		inserted <- nil
	}()
	select {
	case err := <-inserted:
		if err != nil {
			t.Fatalf("unexpected Insert error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("Insert blocked on a full subscriber channel")
	}
	if l.Len() != 40 || l.Cap() != 48 {
		t.Errorf("expected len=40 cap=48, have len=%d cap=%d", l.Len(), l.Cap())
	}
	closed := make(chan struct{})
	go func() {
		m.Close()
		close(closed)
	}()
	select {
	case <-closed:
	case <-time.After(2 * time.Second):
		t.Fatalf("monitor cannot be closed")
	}
	if len(events) > 1 {
		t.Errorf("subscriber channel holds %d events, capacity is 1", len(events))
	}
	if _, ok := m.Subscribe(1); ok {
		t.Errorf("subscribing to a closed monitor has to fail")
	}
}
