// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package leftist_test

import (
	"fmt"

	"cloudeng.io/container/leftist"
)

func ExampleNewOrdered() {
	h := leftist.NewOrdered[int]()
	for _, v := range []int{12, 32, 25, 36, 13, 23, 26, 42} {
		h.Push(v)
	}
	for !h.Empty() {
		v, _ := h.Pop()
		fmt.Printf("%v ", v)
	}
	fmt.Println()
	// Output:
	// 42 36 32 26 25 23 13 12
}

func ExampleNew() {
	type job struct {
		name     string
		priority int
	}
	h := leftist.New(func(a, b job) bool {
		return a.priority < b.priority
	})
	h.Push(job{"compact", 1})
	h.Push(job{"flush", 9})
	h.Push(job{"sync", 4})
	for !h.Empty() {
		j, _ := h.Pop()
		fmt.Printf("%v ", j.name)
	}
	fmt.Println()
	// Output:
	// flush sync compact
}

func ExampleHeap_Merge() {
	a := leftist.NewOrdered(leftist.WithItems(1, 3, 5))
	b := leftist.NewOrdered(leftist.WithItems(2, 4, 6))
	a.Merge(b)
	fmt.Println(a.PopN(a.Len()), b.Len())
	// Output:
	// [6 5 4 3 2 1] 0
}
