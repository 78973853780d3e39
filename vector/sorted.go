// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vector

import (
	"cmp"
	"iter"
	"slices"
	"sort"
)

// Comparator orders elements of a sorted vector. Less must be a strict
// total order; implementations are zero-size types used by value.
type Comparator[T any] interface {
	Less(a, b T) bool
}

// Ascending orders from smallest to largest.
type Ascending[T cmp.Ordered] struct{}

func (Ascending[T]) Less(a, b T) bool { return cmp.Less(a, b) }

// Descending orders from largest to smallest.
type Descending[T cmp.Ordered] struct{}

func (Descending[T]) Less(a, b T) bool { return cmp.Less(b, a) }

// Sorted keeps the elements of an engine ordered by C.
//
// Only order-preserving mutators are exposed. Element access is by value;
// use Assign to change an element in place.
type Sorted[T any, S any, B Backend[T, S], C Comparator[T]] struct {
	vec Engine[T, S, B]
}

// SortedVector is an ascending Vector.
type SortedVector[T cmp.Ordered] = Sorted[T, Heap[T], *Heap[T], Ascending[T]]

// SortedFlatVector is an ascending FlatVector.
type SortedFlatVector[T cmp.Ordered] = Sorted[T, Flat[T, NoHeader], *Flat[T, NoHeader], Ascending[T]]

// SortedSmallVector is an ascending SmallVector.
type SortedSmallVector[T cmp.Ordered, A Inline[T]] = Sorted[T, Small[T, A], *Small[T, A], Ascending[T]]

// NewSortedVector returns a SortedVector holding values in order.
func NewSortedVector[T cmp.Ordered](values ...T) *SortedVector[T] {
	v := new(SortedVector[T])
	v.ResizeRange(values)
	return v
}

func (v *Sorted[T, S, B, C]) less(a, b T) bool {
	var c C
	return c.Less(a, b)
}

func (v *Sorted[T, S, B, C]) compare(a, b T) int {
	switch {
	case v.less(a, b):
		return -1
	case v.less(b, a):
		return 1
	}
	return 0
}

// placement returns the index of the first element not less than value.
func (v *Sorted[T, S, B, C]) placement(value T) int {
	s := v.vec.Slice()
	return sort.Search(len(s), func(i int) bool { return !v.less(s[i], value) })
}

func (v *Sorted[T, S, B, C]) Storage() B         { return v.vec.Storage() }
func (v *Sorted[T, S, B, C]) Len() int           { return v.vec.Len() }
func (v *Sorted[T, S, B, C]) Cap() int           { return v.vec.Cap() }
func (v *Sorted[T, S, B, C]) IsEmpty() bool      { return v.vec.IsEmpty() }
func (v *Sorted[T, S, B, C]) Get(i int) T        { return v.vec.Get(i) }
func (v *Sorted[T, S, B, C]) Front() T           { return *v.vec.Front() }
func (v *Sorted[T, S, B, C]) Back() T            { return *v.vec.Back() }
func (v *Sorted[T, S, B, C]) Pop() T             { return v.vec.Pop() }
func (v *Sorted[T, S, B, C]) Erase(from, to int) { v.vec.Erase(from, to) }
func (v *Sorted[T, S, B, C]) EraseAt(pos int)    { v.vec.EraseAt(pos) }
func (v *Sorted[T, S, B, C]) Reserve(n int) bool { return v.vec.Reserve(n) }
func (v *Sorted[T, S, B, C]) Clear()             { v.vec.Clear() }
func (v *Sorted[T, S, B, C]) Release()           { v.vec.Release() }

func (v *Sorted[T, S, B, C]) All() iter.Seq2[int, T]      { return v.vec.All() }
func (v *Sorted[T, S, B, C]) Values() iter.Seq[T]         { return v.vec.Values() }
func (v *Sorted[T, S, B, C]) Backward() iter.Seq2[int, T] { return v.vec.Backward() }

// Slice returns the elements in order. Callers must not reorder them.
func (v *Sorted[T, S, B, C]) Slice() []T { return v.vec.Slice() }

func (v *Sorted[T, S, B, C]) Steal(other *Sorted[T, S, B, C]) { v.vec.Steal(&other.vec) }
func (v *Sorted[T, S, B, C]) Swap(other *Sorted[T, S, B, C])  { v.vec.Swap(&other.vec) }

// Clone returns an independent copy of v.
func (v *Sorted[T, S, B, C]) Clone() *Sorted[T, S, B, C] {
	c := new(Sorted[T, S, B, C])
	c.vec.CopyFrom(&v.vec)
	return c
}

func (v *Sorted[T, S, B, C]) CopyFrom(other *Sorted[T, S, B, C]) { v.vec.CopyFrom(&other.vec) }

// Push inserts value before any equivalent elements and returns its index.
func (v *Sorted[T, S, B, C]) Push(value T) int {
	pos := v.placement(value)
	return v.vec.Insert(pos, value)
}

// Insert adds values and restores order with a full sort.
func (v *Sorted[T, S, B, C]) Insert(values ...T) {
	if len(values) == 0 {
		return
	}
	v.vec.Insert(v.vec.Len(), values...)
	v.Sort()
}

// InsertDefault adds count zero elements.
func (v *Sorted[T, S, B, C]) InsertDefault(count int) {
	if count <= 0 {
		return
	}
	var zero T
	v.vec.InsertDefault(v.placement(zero), count)
}

// InsertCopy adds count copies of value.
func (v *Sorted[T, S, B, C]) InsertCopy(count int, value T) {
	if count <= 0 {
		return
	}
	v.vec.InsertCopy(v.placement(value), count, value)
}

// SortedInsertMapped adds fn(x) for every x in src.
func SortedInsertMapped[T, U any, S any, B Backend[T, S], C Comparator[T]](v *Sorted[T, S, B, C], src []U, fn func(U) T) {
	if len(src) == 0 {
		return
	}
	InsertMapped(&v.vec, v.vec.Len(), src, fn)
	v.Sort()
}

// Resize replaces the contents with count zero elements.
func (v *Sorted[T, S, B, C]) Resize(count int) { v.vec.Resize(count) }

// ResizeCopy replaces the contents with count copies of value.
func (v *Sorted[T, S, B, C]) ResizeCopy(count int, value T) { v.vec.ResizeCopy(count, value) }

// ResizeRange replaces the contents with values in order.
func (v *Sorted[T, S, B, C]) ResizeRange(values []T) {
	v.vec.ResizeRange(values)
	v.Sort()
}

// SortedResizeMapped replaces the contents of v with fn(x) for every x in
// src, in order.
func SortedResizeMapped[T, U any, S any, B Backend[T, S], C Comparator[T]](v *Sorted[T, S, B, C], src []U, fn func(U) T) {
	ResizeMapped(&v.vec, src, fn)
	v.Sort()
}

// Sort restores order over the whole vector.
func (v *Sorted[T, S, B, C]) Sort() {
	slices.SortFunc(v.vec.Slice(), v.compare)
}

// Assign replaces element i with value and moves it to its ordered
// position, shifting only the elements it passes. The rest of the vector
// must already be ordered by a strict total order.
func (v *Sorted[T, S, B, C]) Assign(i int, value T) {
	s := v.vec.Slice()
	s[i] = value
	for i > 0 && v.less(s[i], s[i-1]) {
		s[i], s[i-1] = s[i-1], s[i]
		i--
	}
	for i+1 < len(s) && v.less(s[i+1], s[i]) {
		s[i], s[i+1] = s[i+1], s[i]
		i++
	}
}

// Find returns the index of an element equivalent to value, or Len when
// there is none. Equivalent means neither is less than the other.
func (v *Sorted[T, S, B, C]) Find(value T) int {
	s := v.vec.Slice()
	if i := v.placement(value); i < len(s) && !v.less(value, s[i]) {
		return i
	}
	return len(s)
}

// Contains reports whether an element equivalent to value is present.
func (v *Sorted[T, S, B, C]) Contains(value T) bool { return v.Find(value) < v.Len() }

// Equal reports whether v and other hold pairwise equivalent elements.
func (v *Sorted[T, S, B, C]) Equal(other *Sorted[T, S, B, C]) bool {
	return slices.EqualFunc(v.vec.Slice(), other.vec.Slice(), func(a, b T) bool {
		return v.compare(a, b) == 0
	})
}
