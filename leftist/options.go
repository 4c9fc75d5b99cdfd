// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package leftist

type options[T any] struct {
	items []T
}

// Option represents the options that can be passed to New and
// NewOrdered.
type Option[T any] func(*options[T])

// WithItems seeds the heap with the supplied items. Construction from
// m items runs in O(m), which is cheaper than pushing them
// individually. The items are copied; the caller's slice is not
// retained.
func WithItems[T any](items ...T) Option[T] {
	return func(o *options[T]) {
		o.items = append(o.items, items...)
	}
}
