// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vector

import (
	"iter"
	"slices"
	"unsafe"

	"code.hybscloud.com/core/internal/assert"
)

// Engine is a growable array over the storage backend B.
//
// The engine holds the backend struct S inline and keeps no state of its
// own, so a vector is exactly as large as its backend. Slots [0, Len) are
// live; slots [Len, Cap) always hold the zero value of T.
//
// The zero Engine is an empty, unallocated vector ready to use.
// An Engine must not be copied after first use; use Clone, CopyFrom or
// Steal instead. Engine is not safe for concurrent use.
type Engine[T any, S any, B Backend[T, S]] struct {
	store S
}

func (v *Engine[T, S, B]) backend() B { return B(&v.store) }

// Storage returns the backend, for variant-specific queries such as
// Small.IsCacheUsed or Flat.Header.
func (v *Engine[T, S, B]) Storage() B { return v.backend() }

func (v *Engine[T, S, B]) allocated() bool {
	b := v.backend()
	return b.IsSafe() && b.Data() != nil
}

// Len returns the number of elements.
func (v *Engine[T, S, B]) Len() int { return v.backend().Len() }

// Cap returns the number of elements the current block can hold.
func (v *Engine[T, S, B]) Cap() int { return v.backend().Cap() }

// IsEmpty reports whether Len is zero.
func (v *Engine[T, S, B]) IsEmpty() bool { return v.Len() == 0 }

// Slice returns the live elements. The slice aliases the vector and is
// invalidated by any operation that grows or releases it.
func (v *Engine[T, S, B]) Slice() []T {
	b := v.backend()
	if !b.IsSafe() {
		return nil
	}
	return window(b.DataUnsafe(), b.LenUnsafe())
}

// At returns a pointer to element i.
func (v *Engine[T, S, B]) At(i int) *T {
	assert.Index("At", i, v.Len())
	return &v.Slice()[i]
}

// Get returns element i.
func (v *Engine[T, S, B]) Get(i int) T { return *v.At(i) }

// Set replaces element i.
func (v *Engine[T, S, B]) Set(i int, value T) { *v.At(i) = value }

// Front returns a pointer to the first element.
func (v *Engine[T, S, B]) Front() *T {
	assert.That(!v.IsEmpty(), "front of empty vector")
	return v.At(0)
}

// Back returns a pointer to the last element.
func (v *Engine[T, S, B]) Back() *T {
	assert.That(!v.IsEmpty(), "back of empty vector")
	return v.At(v.Len() - 1)
}

// Push appends value and returns a pointer to the stored element.
func (v *Engine[T, S, B]) Push(value T) *T {
	p := v.Emplace()
	*p = value
	return p
}

// Emplace appends a zero element and returns a pointer to it.
//
// An unallocated vector first allocates room for 2 elements, or for the
// inline array when that is smaller; a full one grows by doubling.
func (v *Engine[T, S, B]) Emplace() *T {
	if !v.allocated() {
		v.reallocate(firstCapacity(v.backend()))
	} else if b := v.backend(); b.LenUnsafe() == b.CapUnsafe() {
		v.Grow(0)
	}
	b := v.backend()
	n := b.LenUnsafe()
	b.SetLen(n + 1)
	return at(b.DataUnsafe(), n)
}

// Pop removes and returns the last element. The vector must not be empty.
func (v *Engine[T, S, B]) Pop() T {
	assert.That(!v.IsEmpty(), "pop from empty vector")
	s := v.Slice()
	n := len(s) - 1
	value := s[n]
	var zero T
	s[n] = zero
	v.backend().SetLen(n)
	return value
}

// Grow reallocates to Cap + max(Cap, minimum) elements, and to at least 2.
func (v *Engine[T, S, B]) Grow(minimum int) {
	c := v.Cap()
	v.reallocate(max(c+max(c, minimum), initialCapacity))
}

// Reserve reallocates to exactly capacity elements when that is more than
// Cap, and reports whether it did.
func (v *Engine[T, S, B]) Reserve(capacity int) bool {
	if capacity <= v.Cap() {
		return false
	}
	v.reallocate(capacity)
	return true
}

// reallocate moves the live elements into a block of capacity elements.
// A backend that returns the current block (an inline buffer that still
// fits) only has its capacity updated.
func (v *Engine[T, S, B]) reallocate(capacity int) {
	checkCapacity[T](capacity)
	b := v.backend()
	if !v.allocated() {
		b.SetData(b.Allocate(capacity))
		b.SetLen(0)
		b.SetCap(capacity)
		return
	}
	old, n, oldCap := b.DataUnsafe(), b.LenUnsafe(), b.CapUnsafe()
	assert.That(capacity >= n, "reallocate below size", "len", n, "cap", capacity)
	if data := b.Allocate(capacity); data != old {
		copy(window(data, n), window(old, n))
		b.SetData(data)
		b.Deallocate(old, oldCap)
	}
	b.SetLen(n)
	b.SetCap(capacity)
}

// Clear removes all elements and keeps the block.
func (v *Engine[T, S, B]) Clear() {
	if !v.allocated() {
		return
	}
	b := v.backend()
	clear(window(b.DataUnsafe(), b.LenUnsafe()))
	b.SetLen(0)
}

// Release removes all elements and returns the block to the backend.
func (v *Engine[T, S, B]) Release() {
	if !v.allocated() {
		return
	}
	b := v.backend()
	data, c := b.DataUnsafe(), b.CapUnsafe()
	clear(window(data, b.LenUnsafe()))
	b.SetLen(0)
	b.SetCap(0)
	b.SetData(nil)
	b.Deallocate(data, c)
}

// Erase removes elements [from, to) and returns from.
func (v *Engine[T, S, B]) Erase(from, to int) int {
	n := v.Len()
	assert.Range("Erase", from, to, n)
	if from == to {
		return from
	}
	s := v.Slice()
	copy(s[from:], s[to:])
	clear(s[n-(to-from):])
	v.backend().SetLen(n - (to - from))
	return from
}

// EraseAt removes the element at pos and returns pos.
func (v *Engine[T, S, B]) EraseAt(pos int) int { return v.Erase(pos, pos+1) }

// EraseN removes count elements starting at from and returns from.
func (v *Engine[T, S, B]) EraseN(from, count int) int { return v.Erase(from, from+count) }

// Steal releases v and takes other's block, leaving other empty.
func (v *Engine[T, S, B]) Steal(other *Engine[T, S, B]) {
	if v == other {
		return
	}
	v.Release()
	v.backend().Steal(&other.store)
}

// Swap exchanges the contents of v and other.
func (v *Engine[T, S, B]) Swap(other *Engine[T, S, B]) {
	if v == other {
		return
	}
	v.backend().Swap(&other.store)
}

// Clone returns an independent copy of v with capacity exactly Len.
func (v *Engine[T, S, B]) Clone() *Engine[T, S, B] {
	c := new(Engine[T, S, B])
	c.CopyFrom(v)
	return c
}

// CopyFrom replaces the contents of v with a copy of other's elements.
func (v *Engine[T, S, B]) CopyFrom(other *Engine[T, S, B]) {
	if v == other {
		return
	}
	v.ResizeRange(other.Slice())
}

// All returns an iterator over index-value pairs in order.
func (v *Engine[T, S, B]) All() iter.Seq2[int, T] { return slices.All(v.Slice()) }

// Values returns an iterator over the elements in order.
func (v *Engine[T, S, B]) Values() iter.Seq[T] { return slices.Values(v.Slice()) }

// Backward returns an iterator over index-value pairs from last to first.
func (v *Engine[T, S, B]) Backward() iter.Seq2[int, T] { return slices.Backward(v.Slice()) }

// FindFunc returns the index of the first element satisfying pred,
// or Len when there is none.
func (v *Engine[T, S, B]) FindFunc(pred func(T) bool) int {
	if i := slices.IndexFunc(v.Slice(), pred); i >= 0 {
		return i
	}
	return v.Len()
}

// EqualFunc reports whether v and other have the same length and eq holds
// for every pair of elements.
func (v *Engine[T, S, B]) EqualFunc(other *Engine[T, S, B], eq func(a, b T) bool) bool {
	return slices.EqualFunc(v.Slice(), other.Slice(), eq)
}

// aliases reports whether s shares memory with v's block.
func aliases[T, E any, S any, B Backend[T, S]](v *Engine[T, S, B], s []E) bool {
	if !v.allocated() || len(s) == 0 {
		return false
	}
	var t T
	var e E
	b := v.backend()
	return overlaps(unsafe.Pointer(b.DataUnsafe()), uintptr(b.CapUnsafe())*unsafe.Sizeof(t),
		unsafe.Pointer(unsafe.SliceData(s)), uintptr(len(s))*unsafe.Sizeof(e))
}
