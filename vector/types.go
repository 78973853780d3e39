// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vector

// Vector keeps its size and capacity beside a heap buffer.
type Vector[T any] = Engine[T, Heap[T], *Heap[T]]

// FlatVector is a single pointer; size and capacity live in the block.
type FlatVector[T any] = Engine[T, Flat[T, NoHeader], *Flat[T, NoHeader]]

// HeaderVector is a FlatVector whose block also carries a custom header H,
// reachable through Storage().Header().
type HeaderVector[T any, H any] = Engine[T, Flat[T, H], *Flat[T, H]]

// SmallVector stores up to len(A) elements inline before spilling to the
// heap, e.g. SmallVector[int, [8]int].
type SmallVector[T any, A Inline[T]] = Engine[T, Small[T, A], *Small[T, A]]

// AllocatedVector takes its memory from the allocator A.
type AllocatedVector[T any, A Allocator[T]] = Engine[T, Allocated[T, A], *Allocated[T, A]]

// PooledVector recycles its blocks through PoolAllocator.
type PooledVector[T any] = AllocatedVector[T, PoolAllocator[T]]

// NewVector returns a Vector holding a copy of values.
func NewVector[T any](values ...T) *Vector[T] {
	v := new(Vector[T])
	v.ResizeRange(values)
	return v
}

// NewFlatVector returns a FlatVector holding a copy of values.
func NewFlatVector[T any](values ...T) *FlatVector[T] {
	v := new(FlatVector[T])
	v.ResizeRange(values)
	return v
}

// NewSmallVector returns a SmallVector holding a copy of values.
func NewSmallVector[T any, A Inline[T]](values ...T) *SmallVector[T, A] {
	v := new(SmallVector[T, A])
	v.ResizeRange(values)
	return v
}

// NewPooledVector returns a PooledVector holding a copy of values.
func NewPooledVector[T any](values ...T) *PooledVector[T] {
	v := new(PooledVector[T])
	v.ResizeRange(values)
	return v
}
