package record

import (
	"bytes"

	"github.com/npillmayer/dsc"
	"github.com/npillmayer/dsc/bst"
	"github.com/npillmayer/dsc/list"
	"github.com/npillmayer/dsc/queue"
	"github.com/npillmayer/dsc/ring"
	"github.com/npillmayer/dsc/stack"
)

// List is a list of records of a fixed size.
//
// Records are stored with a fixed width; PointerTo hands out the stored bytes
// but never a handle to replace them.
type List struct {
	*list.List[Record]
	Layout Layout
}

// NewList creates an empty list for records of itemSize bytes.
func NewList(itemSize int, cfg ...list.Config[Record]) (*List, error) {
	layout, err := NewLayout(itemSize)
	if err != nil {
		return nil, err
	}
	l, err := list.New(cfg...)
	if err != nil {
		return nil, err
	}
	return &List{List: l, Layout: layout}, nil
}

// Insert appends a copy of r.
func (l *List) Insert(r Record) error {
	if l == nil {
		return errNil("record.List.Insert")
	}
	c, err := l.Layout.Copy(r)
	if err != nil {
		return err
	}
	return l.List.Insert(c)
}

// InsertAt inserts a copy of r at position.
func (l *List) InsertAt(r Record, position int) error {
	if l == nil {
		return errNil("record.List.InsertAt")
	}
	c, err := l.Layout.Copy(r)
	if err != nil {
		return err
	}
	return l.List.InsertAt(c, position)
}

// ValueAt returns a copy of the record at index.
func (l *List) ValueAt(index int) (Record, error) {
	if l == nil {
		return nil, errNil("record.List.ValueAt")
	}
	return cloned(l.List.ValueAt(index))
}

// PointerTo returns the record stored at index. The returned slice aliases the
// list's storage: writing to its bytes modifies the stored record in place.
// It is valid until the next mutating call.
func (l *List) PointerTo(index int) (Record, error) {
	if l == nil {
		return nil, errNil("record.List.PointerTo")
	}
	p, err := l.List.PointerTo(index)
	if err != nil {
		return nil, err
	}
	return (*p)[:l.Layout.Size:l.Layout.Size], nil
}

// Check validates the list's invariants and the width of every stored record.
func (l *List) Check() error {
	if l == nil {
		return errNil("record.List.Check")
	}
	if err := l.List.Check(); err != nil {
		return err
	}
	for i, r := range l.List.All() {
		if len(r) != l.Layout.Size {
			return dsc.Errorf(dsc.InvalidParameter, "record.List.Check",
				"record #%d has %d bytes, layout requires %d", i, len(r), l.Layout.Size)
		}
	}
	return nil
}

// Ring is a ring buffer of records of a fixed size.
type Ring struct {
	*ring.Buffer[Record]
	Layout Layout
}

// NewRing creates an empty ring buffer for records of itemSize bytes.
func NewRing(itemSize int, cfg ...ring.Config[Record]) (*Ring, error) {
	layout, err := NewLayout(itemSize)
	if err != nil {
		return nil, err
	}
	b, err := ring.New(cfg...)
	if err != nil {
		return nil, err
	}
	return &Ring{Buffer: b, Layout: layout}, nil
}

// Insert appends a copy of r.
func (b *Ring) Insert(r Record) error {
	if b == nil {
		return errNil("record.Ring.Insert")
	}
	c, err := b.Layout.Copy(r)
	if err != nil {
		return err
	}
	return b.Buffer.Insert(c)
}

// PeekFirst returns a copy of the first record.
func (b *Ring) PeekFirst() (Record, error) {
	if b == nil {
		return nil, errNil("record.Ring.PeekFirst")
	}
	return cloned(b.Buffer.PeekFirst())
}

// PeekLast returns a copy of the last record.
func (b *Ring) PeekLast() (Record, error) {
	if b == nil {
		return nil, errNil("record.Ring.PeekLast")
	}
	return cloned(b.Buffer.PeekLast())
}

// At returns a copy of the i-th record, counted from the head.
func (b *Ring) At(i int) (Record, error) {
	if b == nil {
		return nil, errNil("record.Ring.At")
	}
	return cloned(b.Buffer.At(i))
}

// Queue is a FIFO of records of a fixed size.
type Queue struct {
	*queue.Queue[Record]
	Layout Layout
}

// NewQueue creates an empty queue for records of itemSize bytes.
func NewQueue(itemSize int, cfg ...ring.Config[Record]) (*Queue, error) {
	layout, err := NewLayout(itemSize)
	if err != nil {
		return nil, err
	}
	q, err := queue.New(cfg...)
	if err != nil {
		return nil, err
	}
	return &Queue{Queue: q, Layout: layout}, nil
}

// Enqueue appends a copy of r.
func (q *Queue) Enqueue(r Record) error {
	if q == nil {
		return errNil("record.Queue.Enqueue")
	}
	c, err := q.Layout.Copy(r)
	if err != nil {
		return err
	}
	return q.Queue.Enqueue(c)
}

// Peek returns a copy of the front record.
func (q *Queue) Peek() (Record, error) {
	if q == nil {
		return nil, errNil("record.Queue.Peek")
	}
	return cloned(q.Queue.Peek())
}

// ValueAt returns a copy of the record at index, counted from the front.
func (q *Queue) ValueAt(index int) (Record, error) {
	if q == nil {
		return nil, errNil("record.Queue.ValueAt")
	}
	return cloned(q.Queue.ValueAt(index))
}

// Stack is a LIFO of records of a fixed size.
type Stack struct {
	*stack.Stack[Record]
	Layout Layout
}

// NewStack creates an empty stack for records of itemSize bytes.
func NewStack(itemSize int, cfg ...list.Config[Record]) (*Stack, error) {
	layout, err := NewLayout(itemSize)
	if err != nil {
		return nil, err
	}
	s, err := stack.New(cfg...)
	if err != nil {
		return nil, err
	}
	return &Stack{Stack: s, Layout: layout}, nil
}

// Push puts a copy of r on top of the stack.
func (s *Stack) Push(r Record) error {
	if s == nil {
		return errNil("record.Stack.Push")
	}
	c, err := s.Layout.Copy(r)
	if err != nil {
		return err
	}
	return s.Stack.Push(c)
}

// Peek returns a copy of the top record.
func (s *Stack) Peek() (Record, error) {
	if s == nil {
		return nil, errNil("record.Stack.Peek")
	}
	return cloned(s.Stack.Peek())
}

// Tree is a binary search tree of records of a fixed size.
type Tree struct {
	*bst.Tree[Record]
	Layout Layout
}

// NewTree creates an empty tree for records of itemSize bytes. If compare is
// nil, records are ordered bytewise.
func NewTree(compare bst.Comparator[Record], itemSize int) (*Tree, error) {
	layout, err := NewLayout(itemSize)
	if err != nil {
		return nil, err
	}
	if compare == nil {
		compare = Bytewise
	}
	t, err := bst.New(compare)
	if err != nil {
		return nil, err
	}
	return &Tree{Tree: t, Layout: layout}, nil
}

// Insert adds a copy of r to the tree.
func (t *Tree) Insert(r Record) error {
	if t == nil {
		return errNil("record.Tree.Insert")
	}
	c, err := t.Layout.Copy(r)
	if err != nil {
		return err
	}
	return t.Tree.Insert(c)
}

// Bytewise compares records lexicographically by their bytes.
func Bytewise(a, b Record) bst.Ordering {
	return bst.Ordering(bytes.Compare(a, b))
}

func cloned(r Record, err error) (Record, error) {
	if err != nil {
		return nil, err
	}
	return bytes.Clone(r), nil
}

func errNil(op string) error {
	return dsc.Errorf(dsc.InvalidParameter, op, "container is nil")
}
