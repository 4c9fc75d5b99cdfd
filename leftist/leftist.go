// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package leftist provides a mergeable priority queue implemented as a
// leftist heap: a binary tree in which every node's left subtree has a
// null path length at least that of its right subtree. The top of the
// heap is always the item of highest priority under the ordering
// supplied at construction. Push, Pop and Merge all reduce to a single
// relinking pass along the right spines of the trees involved and hence
// run in O(log n) in the number of items held.
//
// Merge moves all of the donor heap's items into the receiver without
// copying or allocating nodes; the donor is left empty. This is what
// distinguishes the leftist heap from the slice-backed heaps in
// cloudeng.io/algo/container/heap, for which a union of two heaps is
// necessarily linear.
package leftist

import (
	"cmp"

	"cloudeng.io/errors"
)

// ErrEmpty is returned by Top and Pop when the heap contains no items.
var ErrEmpty = errors.New("leftist heap is empty")

// node is a leftist tree node. Each child is owned exclusively by its
// parent; merges relink nodes between trees but never copy them.
type node[T any] struct {
	left  *node[T]
	right *node[T]
	npl   int // null path length, 0 for a leaf.
	v     T
}

// npl returns the null path length of a possibly absent subtree.
func npl[T any](n *node[T]) int {
	if n == nil {
		return -1
	}
	return n.npl
}

// Heap implements a max-priority queue with O(log n) Push, Pop and
// Merge. It is not safe for concurrent use, and a Merge mutates both
// participating heaps; callers requiring concurrent access must
// provide their own synchronization. A Heap must not be copied by
// assignment, since both copies would share the same nodes; use Clone.
type Heap[T any] struct {
	root *node[T]
	size int
	less func(a, b T) bool
}

// New returns a heap ordered by less, where less(a, b) reports whether
// a has strictly lower priority than b. Top yields the item that no
// other item in the heap exceeds under less. Items comparing as equal
// are returned in an unspecified order; callers needing a stable
// tie-break should fold one into the ordering, e.g. a sequence number.
func New[T any](less func(a, b T) bool, opts ...Option[T]) *Heap[T] {
	var o options[T]
	for _, fn := range opts {
		fn(&o)
	}
	h := &Heap[T]{less: less}
	h.build(o.items)
	return h
}

// NewOrdered is like New using the natural ordering of T, so that Top
// yields the largest item.
func NewOrdered[T cmp.Ordered](opts ...Option[T]) *Heap[T] {
	return New(cmp.Less[T], opts...)
}

// build forms a heap over items by queueing singleton trees and
// repeatedly merging the two at the head onto the tail. The round-robin
// order keeps the merged trees balanced in size, so construction is
// O(n) overall rather than the O(n log n) of repeated pushes.
func (h *Heap[T]) build(items []T) {
	if len(items) == 0 {
		return
	}
	q := make([]*node[T], len(items), 2*len(items))
	for i, v := range items {
		q[i] = &node[T]{v: v}
	}
	for head := 0; len(q)-head > 1; head += 2 {
		q = append(q, h.merge(q[head], q[head+1]))
	}
	h.root = q[len(q)-1]
	h.size = len(items)
}

// merge combines two leftist trees into one, relinking existing nodes
// only. The recursion descends right spines, whose length the leftist
// property bounds by log2(n+1), so both the comparison count and the
// stack depth are logarithmic in the combined size. Ties keep a.
func (h *Heap[T]) merge(a, b *node[T]) *node[T] {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	if h.less(a.v, b.v) {
		a, b = b, a
	}
	a.right = h.merge(a.right, b)
	if npl(a.left) < npl(a.right) {
		a.left, a.right = a.right, a.left
	}
	a.npl = npl(a.right) + 1
	return a
}

// Len returns the number of items in the heap.
func (h *Heap[T]) Len() int {
	return h.size
}

// Empty reports whether the heap contains no items.
func (h *Heap[T]) Empty() bool {
	return h.size == 0
}

// Top returns the highest priority item without removing it.
func (h *Heap[T]) Top() (T, error) {
	if h.root == nil {
		var v T
		return v, ErrEmpty
	}
	return h.root.v, nil
}

// Push adds v to the heap. The new node is fully constructed before
// any existing structure is relinked, so the heap is never observable
// in a partially mutated state.
func (h *Heap[T]) Push(v T) {
	h.root = h.merge(h.root, &node[T]{v: v})
	h.size++
}

// Pop removes and returns the highest priority item. The old root's
// two subtrees are merged to form the new root.
func (h *Heap[T]) Pop() (T, error) {
	if h.root == nil {
		var v T
		return v, ErrEmpty
	}
	v := h.root.v
	h.root = h.merge(h.root.left, h.root.right)
	h.size--
	return v, nil
}

// PopN removes and returns at most n items in non-increasing priority
// order. Fewer than n are returned if the heap runs out.
func (h *Heap[T]) PopN(n int) []T {
	if n > h.size {
		n = h.size
	}
	if n <= 0 {
		return nil
	}
	out := make([]T, n)
	for i := range out {
		out[i] = h.root.v
		h.root = h.merge(h.root.left, h.root.right)
	}
	h.size -= n
	return out
}

// Merge splices all of other's items into h with a single relinking
// pass; no nodes are copied or allocated, so the cost is logarithmic
// in the size of the larger heap. other is left empty. Merging a heap
// with itself, or with nil, is a no-op. Both heaps must have been
// created with the same ordering.
func (h *Heap[T]) Merge(other *Heap[T]) {
	if other == h || other == nil {
		return
	}
	h.root = h.merge(h.root, other.root)
	h.size += other.size
	other.root = nil
	other.size = 0
}

// Clone returns a deep copy of h: an isomorphic tree sharing no nodes
// with the original, so mutating either heap never affects the other.
// The clone is fully built before it is returned; h is never modified.
func (h *Heap[T]) Clone() *Heap[T] {
	return &Heap[T]{
		root: clone(h.root),
		size: h.size,
		less: h.less,
	}
}

func clone[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	return &node[T]{
		left:  clone(n.left),
		right: clone(n.right),
		npl:   n.npl,
		v:     n.v,
	}
}

// Reset discards all items, leaving the heap empty for reuse.
func (h *Heap[T]) Reset() {
	h.root = nil
	h.size = 0
}
