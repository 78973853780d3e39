// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vector

import (
	"math/bits"
	"reflect"
	"sync"
	"unsafe"
)

// Allocator hands out zeroed element storage. Implementations are zero-size
// types used through their zero value, so the allocator is part of the
// vector type rather than its state.
type Allocator[T any] interface {
	Allocate(capacity int) *T
	Deallocate(data *T, capacity int)
}

// Allocated is a separate-fields backend whose memory comes from A.
type Allocated[T any, A Allocator[T]] struct {
	Heap[T]
}

func (a *Allocated[T, A]) Allocate(capacity int) *T {
	var alloc A
	return alloc.Allocate(capacity)
}

func (a *Allocated[T, A]) Deallocate(data *T, capacity int) {
	var alloc A
	alloc.Deallocate(data, capacity)
}

func (a *Allocated[T, A]) Steal(other *Allocated[T, A]) { a.Heap.Steal(&other.Heap) }
func (a *Allocated[T, A]) Swap(other *Allocated[T, A])  { a.Heap.Swap(&other.Heap) }

// GoAllocator allocates with make and leaves reclamation to the collector.
type GoAllocator[T any] struct{}

func (GoAllocator[T]) Allocate(capacity int) *T {
	return unsafe.SliceData(make([]T, capacity))
}

func (GoAllocator[T]) Deallocate(*T, int) {}

// PoolAllocator recycles buffers through per-type, per-size-class pools.
//
// Class c holds blocks of 1<<c elements. A block is cleared before it is
// pooled, so Allocate always returns zeroed memory. Capacities above
// 1<<maxPoolClass bypass the pools.
type PoolAllocator[T any] struct{}

const maxPoolClass = 32

type poolClasses [maxPoolClass + 1]sync.Pool

var pools sync.Map // reflect.Type -> *poolClasses

func classesFor[T any]() *poolClasses {
	key := reflect.TypeFor[T]()
	if p, ok := pools.Load(key); ok {
		return p.(*poolClasses)
	}
	p, _ := pools.LoadOrStore(key, new(poolClasses))
	return p.(*poolClasses)
}

func poolClass(capacity int) int {
	if capacity < 2 {
		return 0
	}
	return bits.Len(uint(capacity - 1))
}

func (PoolAllocator[T]) Allocate(capacity int) *T {
	c := poolClass(capacity)
	if c > maxPoolClass {
		return unsafe.SliceData(make([]T, capacity))
	}
	if b, ok := classesFor[T]()[c].Get().(*T); ok {
		return b
	}
	return unsafe.SliceData(make([]T, 1<<c))
}

func (PoolAllocator[T]) Deallocate(data *T, capacity int) {
	c := poolClass(capacity)
	if data == nil || c > maxPoolClass {
		return
	}
	clear(unsafe.Slice(data, 1<<c))
	classesFor[T]()[c].Put(data)
}
