// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package leftist

import (
	"fmt"

	"cloudeng.io/errors"
)

// Verify checks the structural invariants of the heap: the heap
// property (no child outranks its parent), the leftist property
// (npl(left) >= npl(right) at every node), the correctness of the
// stored null path lengths and the stored size. All violations found
// are aggregated into the returned error rather than just the first.
// Verify visits every node and is intended for tests and debugging.
func (h *Heap[T]) Verify() error {
	errs := errors.M{}
	if n := h.check(h.root, &errs); n != h.size {
		errs.Append(fmt.Errorf("size incorrect: counted %v nodes, Len reports %v", n, h.size))
	}
	return errs.Err()
}

func (h *Heap[T]) check(n *node[T], errs *errors.M) int {
	if n == nil {
		return 0
	}
	for _, c := range []*node[T]{n.left, n.right} {
		if c != nil && h.less(n.v, c.v) {
			errs.Append(fmt.Errorf("heap property violated: child %v outranks parent %v", c.v, n.v))
		}
	}
	if npl(n.left) < npl(n.right) {
		errs.Append(fmt.Errorf("leftist property violated at %v: npl(left) %v < npl(right) %v", n.v, npl(n.left), npl(n.right)))
	}
	if want := npl(n.right) + 1; n.npl != want {
		errs.Append(fmt.Errorf("null path length incorrect at %v: got %v, want %v", n.v, n.npl, want))
	}
	return 1 + h.check(n.left, errs) + h.check(n.right, errs)
}
