// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vector

import "unsafe"

// Inline is the set of in-object buffers a small vector may carry.
type Inline[T any] interface {
	~[1]T | ~[2]T | ~[4]T | ~[8]T | ~[16]T | ~[32]T | ~[64]T
}

// noCopy lets go vet flag copies of values that point into themselves.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// Small stores up to len(A) elements inline and spills to the heap beyond.
//
// The data pointer either addresses the inline array (cache used) or a heap
// buffer. Growth never returns to the inline array once spilled; only a
// release does. A Small must not be copied after first use.
type Small[T any, A Inline[T]] struct {
	_        noCopy
	inline   A
	data     *T
	size     int
	capacity int
}

func (s *Small[T, A]) cache() *T { return &s.inline[0] }

// IsCacheUsed reports whether the elements live in the inline array.
func (s *Small[T, A]) IsCacheUsed() bool { return s.data == s.cache() }

// InlineCap returns the number of elements the inline array holds.
func (s *Small[T, A]) InlineCap() int { return len(s.inline) }

func (s *Small[T, A]) IsSafe() bool   { return true }
func (s *Small[T, A]) Data() *T       { return s.data }
func (s *Small[T, A]) DataUnsafe() *T { return s.data }
func (s *Small[T, A]) Len() int       { return s.size }
func (s *Small[T, A]) LenUnsafe() int { return s.size }
func (s *Small[T, A]) Cap() int       { return s.capacity }
func (s *Small[T, A]) CapUnsafe() int { return s.capacity }

func (s *Small[T, A]) SetData(data *T) { s.data = data }
func (s *Small[T, A]) SetLen(n int)    { s.size = n }
func (s *Small[T, A]) SetCap(n int)    { s.capacity = n }

// Allocate returns the inline array when capacity fits in it.
func (s *Small[T, A]) Allocate(capacity int) *T {
	if capacity <= len(s.inline) {
		return s.cache()
	}
	return unsafe.SliceData(make([]T, capacity))
}

// Deallocate clears the inline array when data is the cache; heap buffers
// are left to the collector.
func (s *Small[T, A]) Deallocate(data *T, _ int) {
	if data == s.cache() {
		var zero A
		s.inline = zero
	}
}

// Steal moves other's elements. An inline buffer cannot change owner, so its
// contents are copied into the receiver's own cache.
func (s *Small[T, A]) Steal(other *Small[T, A]) {
	if other.IsCacheUsed() {
		var zero A
		s.inline, other.inline = other.inline, zero
		s.data = s.cache()
	} else {
		s.data = other.data
	}
	s.size, s.capacity = other.size, other.capacity
	other.data, other.size, other.capacity = nil, 0, 0
}

// Swap exchanges contents. Heap buffers trade pointers; an inline side
// forces an element-wise move through a temporary.
func (s *Small[T, A]) Swap(other *Small[T, A]) {
	if !s.IsCacheUsed() && !other.IsCacheUsed() {
		s.data, other.data = other.data, s.data
		s.size, other.size = other.size, s.size
		s.capacity, other.capacity = other.capacity, s.capacity
		return
	}
	var tmp Small[T, A]
	tmp.Steal(s)
	s.Steal(other)
	other.Steal(&tmp)
}
