// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vector_test

import (
	"fmt"

	"code.hybscloud.com/core/vector"
)

func ExampleVector() {
	var v vector.Vector[int]
	v.Push(1)
	v.Push(2)
	v.Push(3)
	fmt.Println(v.Len(), v.Slice())

	last := v.Pop()
	fmt.Println(last, v.Len())
	// Output:
	// 3 [1 2 3]
	// 3 2
}

func ExampleSmallVector() {
	var v vector.SmallVector[int, [4]int]
	for i := range 5 {
		v.Push(i)
		fmt.Println(v.Len(), v.Storage().IsCacheUsed())
	}
	// Output:
	// 1 true
	// 2 true
	// 3 true
	// 4 true
	// 5 false
}

func ExampleHeaderVector() {
	type stats struct{ version int }

	var v vector.HeaderVector[string, stats]
	v.Push("a")
	v.Storage().Header().version = 7
	v.Insert(0, "b", "c", "d")
	fmt.Println(v.Slice(), v.Storage().Header().version)
	// Output:
	// [b c d a] 7
}

func ExampleSortedVector() {
	s := vector.NewSortedVector(5, 1, 3)
	s.Push(2)
	fmt.Println(s.Slice())
	fmt.Println(s.Find(3), s.Contains(4))
	// Output:
	// [1 2 3 5]
	// 2 false
}

func ExampleEngine_Insert() {
	v := vector.NewVector(1, 2, 3)
	v.Insert(1, 10, 20)
	v.Erase(3, 4)
	fmt.Println(v.Slice(), vector.Find(v, 20))
	// Output:
	// [1 10 20 3] 2
}
