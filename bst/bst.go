/*
Package bst implements an unbalanced binary search tree ordered by a
user supplied comparator.

Elements comparing Equal to an element already in the tree are inserted into
its left subtree. Nodes are never re-balanced, thus inserting sorted input
degenerates the tree into a list.

Removal and the classic traversals are part of the API but not implemented
yet; they report dsc.NotImplemented.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package bst

import (
	"iter"

	"github.com/npillmayer/dsc"
)

// Tree is a binary search tree. It is not safe for concurrent use.
type Tree[T any] struct {
	compare  Comparator[T]
	root     *node[T]
	length   int
	released bool
}

// node owns its subtrees and a copy of the inserted element.
type node[T any] struct {
	item        T
	left, right *node[T]
}

// New creates an empty tree ordered by compare.
func New[T any](compare Comparator[T]) (*Tree[T], error) {
	if compare == nil {
		return nil, dsc.Errorf(dsc.InvalidParameter, "bst.New", "comparator is nil")
	}
	return &Tree[T]{compare: compare}, nil
}

// Len returns the number of elements in the tree.
func (t *Tree[T]) Len() int {
	if t == nil {
		return 0
	}
	return t.length
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[T]) IsEmpty() bool {
	return t.Len() == 0
}

// Height returns the number of nodes on the longest path from the root to a
// leaf. An empty tree has height 0.
func (t *Tree[T]) Height() int {
	if t == nil {
		return 0
	}
	return height(t.root)
}

func height[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return 1 + max(height(n.left), height(n.right))
}

// Insert adds a copy of v to the tree.
func (t *Tree[T]) Insert(v T) error {
	if err := t.valid("bst.Insert"); err != nil {
		return err
	}
	if t.root == nil {
		t.root = &node[T]{item: v}
	} else {
		t.insert(t.root, v)
	}
	t.length++
	return nil
}

func (t *Tree[T]) insert(n *node[T], v T) {
	if t.compare(v, n.item) == Higher {
		if n.right == nil {
			n.right = &node[T]{item: v}
			return
		}
		t.insert(n.right, v)
		return
	}
	if n.left == nil {
		n.left = &node[T]{item: v}
		return
	}
	t.insert(n.left, v)
}

// Remove is not implemented.
func (t *Tree[T]) Remove(v T) error {
	if err := t.valid("bst.Remove"); err != nil {
		return err
	}
	return dsc.Errorf(dsc.NotImplemented, "bst.Remove", "removal is not supported")
}

// Preorder is not implemented.
func (t *Tree[T]) Preorder() (iter.Seq[T], error) {
	return t.traversal("bst.Preorder")
}

// Inorder is not implemented.
func (t *Tree[T]) Inorder() (iter.Seq[T], error) {
	return t.traversal("bst.Inorder")
}

// Postorder is not implemented.
func (t *Tree[T]) Postorder() (iter.Seq[T], error) {
	return t.traversal("bst.Postorder")
}

func (t *Tree[T]) traversal(op string) (iter.Seq[T], error) {
	if err := t.valid(op); err != nil {
		return nil, err
	}
	return nil, dsc.Errorf(dsc.NotImplemented, op, "traversal is not supported")
}

// Destroy releases all nodes, children before their parents.
// Destroy is idempotent.
func (t *Tree[T]) Destroy() {
	if t == nil || t.released {
		return
	}
	dsc.T().Infof("bst: destroying tree with %d nodes", t.length)
	release(t.root)
	t.root = nil
	t.length = 0
	t.released = true
}

func release[T any](n *node[T]) {
	if n == nil {
		return
	}
	release(n.left)
	release(n.right)
	var zero T
	n.item = zero
	n.left, n.right = nil, nil
}

// Check validates the ordering of all nodes and the element count.
func (t *Tree[T]) Check() error {
	if err := t.valid("bst.Check"); err != nil {
		return err
	}
	count := 0
	var err error
	t.walk(t.root, 0, func(n *node[T], depth int) bool {
		count++
		if n.left != nil && t.compare(n.left.item, n.item) == Higher {
			err = dsc.Errorf(dsc.InvalidParameter, "bst.Check", "left child sorts after its parent")
			return false
		}
		if n.right != nil && t.compare(n.right.item, n.item) != Higher {
			err = dsc.Errorf(dsc.InvalidParameter, "bst.Check", "right child does not sort after its parent")
			return false
		}
		return true
	})
	if err != nil {
		return err
	}
	if count != t.length {
		return dsc.Errorf(dsc.InvalidParameter, "bst.Check",
			"tree has %d nodes, but length is %d", count, t.length)
	}
	return nil
}

// walk visits nodes depth first, parents before children.
func (t *Tree[T]) walk(n *node[T], depth int, visit func(*node[T], int) bool) bool {
	if n == nil {
		return true
	}
	if !visit(n, depth) {
		return false
	}
	return t.walk(n.left, depth+1, visit) && t.walk(n.right, depth+1, visit)
}

func (t *Tree[T]) valid(op string) error {
	if t == nil {
		return dsc.Errorf(dsc.InvalidParameter, op, "tree is nil")
	}
	if t.released {
		return dsc.Errorf(dsc.InvalidParameter, op, "tree has been destroyed")
	}
	return nil
}
