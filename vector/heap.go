// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vector

import "unsafe"

// Heap keeps size and capacity beside a separately allocated buffer.
//
// Heap is always safe: an unallocated Heap reports a nil data pointer with
// zero size and capacity.
type Heap[T any] struct {
	data     *T
	size     int
	capacity int
}

func (h *Heap[T]) IsSafe() bool   { return true }
func (h *Heap[T]) Data() *T       { return h.data }
func (h *Heap[T]) DataUnsafe() *T { return h.data }
func (h *Heap[T]) Len() int       { return h.size }
func (h *Heap[T]) LenUnsafe() int { return h.size }
func (h *Heap[T]) Cap() int       { return h.capacity }
func (h *Heap[T]) CapUnsafe() int { return h.capacity }

func (h *Heap[T]) SetData(data *T) { h.data = data }
func (h *Heap[T]) SetLen(n int)    { h.size = n }
func (h *Heap[T]) SetCap(n int)    { h.capacity = n }

// Allocate returns a fresh zeroed buffer of capacity elements.
func (h *Heap[T]) Allocate(capacity int) *T {
	return unsafe.SliceData(make([]T, capacity))
}

// Deallocate drops the buffer; the collector reclaims it once unreachable.
func (h *Heap[T]) Deallocate(*T, int) {}

func (h *Heap[T]) Steal(other *Heap[T]) {
	*h = *other
	*other = Heap[T]{}
}

func (h *Heap[T]) Swap(other *Heap[T]) {
	*h, *other = *other, *h
}
