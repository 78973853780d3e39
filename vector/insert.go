// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vector

import (
	"slices"

	"code.hybscloud.com/core/internal/assert"
)

// openGap makes room for count elements at pos and returns the gap.
//
// When the block is too small a new one of Cap + max(Cap, count) elements
// receives the prefix and the suffix on either side of the gap, so the gap
// starts zeroed. Otherwise the suffix is shifted right in place and the gap
// still holds the shifted-out values; callers overwrite every slot.
// v must be allocated.
func (v *Engine[T, S, B]) openGap(pos, count int) []T {
	b := v.backend()
	n, c := b.LenUnsafe(), b.CapUnsafe()
	assert.Range("Insert", pos, pos, n)
	checkCapacity[T](n + count)
	if n+count > c {
		newCap := c + max(c, count)
		checkCapacity[T](newCap)
		old := b.DataUnsafe()
		if data := b.Allocate(newCap); data != old {
			src, dst := window(old, n), window(data, n+count)
			copy(dst, src[:pos])
			copy(dst[pos+count:], src[pos:])
			b.SetData(data)
			b.Deallocate(old, c)
		} else {
			s := window(data, n+count)
			copy(s[pos+count:], s[pos:n])
		}
		b.SetCap(newCap)
	} else {
		s := window(b.DataUnsafe(), n+count)
		copy(s[pos+count:], s[pos:n])
	}
	b.SetLen(n + count)
	return window(b.DataUnsafe(), n+count)[pos : pos+count]
}

// InsertDefault inserts count zero elements at pos and returns pos.
//
// On an unallocated vector pos must be 0 and the call is a Resize.
func (v *Engine[T, S, B]) InsertDefault(pos, count int) int {
	if count <= 0 {
		return pos
	}
	if !v.allocated() {
		assert.That(pos == 0, "insert into unallocated vector", "pos", pos)
		v.Resize(count)
		return 0
	}
	clear(v.openGap(pos, count))
	return pos
}

// InsertCopy inserts count copies of value at pos and returns pos.
func (v *Engine[T, S, B]) InsertCopy(pos, count int, value T) int {
	if count <= 0 {
		return pos
	}
	if !v.allocated() {
		assert.That(pos == 0, "insert into unallocated vector", "pos", pos)
		v.ResizeCopy(count, value)
		return 0
	}
	gap := v.openGap(pos, count)
	for i := range gap {
		gap[i] = value
	}
	return pos
}

// Insert inserts values at pos and returns pos.
// values may alias the vector's own elements.
func (v *Engine[T, S, B]) Insert(pos int, values ...T) int {
	if len(values) == 0 {
		return pos
	}
	if !v.allocated() {
		assert.That(pos == 0, "insert into unallocated vector", "pos", pos)
		v.ResizeRange(values)
		return 0
	}
	if aliases(v, values) {
		values = slices.Clone(values)
	}
	copy(v.openGap(pos, len(values)), values)
	return pos
}

// InsertMapped inserts fn(x) for every x in src at pos and returns pos.
func InsertMapped[T, U any, S any, B Backend[T, S]](v *Engine[T, S, B], pos int, src []U, fn func(U) T) int {
	if len(src) == 0 {
		return pos
	}
	if !v.allocated() {
		assert.That(pos == 0, "insert into unallocated vector", "pos", pos)
		ResizeMapped(v, src, fn)
		return 0
	}
	if aliases(v, src) {
		src = slices.Clone(src)
	}
	gap := v.openGap(pos, len(src))
	for i, x := range src {
		gap[i] = fn(x)
	}
	return pos
}

// prepare empties v and returns count zero slots, reallocating to exactly
// count elements when the block is too small.
func (v *Engine[T, S, B]) prepare(count int) []T {
	v.Clear()
	if count <= 0 {
		return nil
	}
	if count > v.Cap() {
		v.reallocate(count)
	}
	b := v.backend()
	b.SetLen(count)
	return window(b.DataUnsafe(), count)
}

// Resize replaces the contents with count zero elements.
// A count of 0 clears the vector.
func (v *Engine[T, S, B]) Resize(count int) {
	v.prepare(count)
}

// ResizeCopy replaces the contents with count copies of value.
func (v *Engine[T, S, B]) ResizeCopy(count int, value T) {
	s := v.prepare(count)
	for i := range s {
		s[i] = value
	}
}

// ResizeRange replaces the contents with a copy of values.
// values may alias the vector's own elements.
func (v *Engine[T, S, B]) ResizeRange(values []T) {
	if aliases(v, values) {
		values = slices.Clone(values)
	}
	copy(v.prepare(len(values)), values)
}

// ResizeMapped replaces the contents of v with fn(x) for every x in src.
func ResizeMapped[T, U any, S any, B Backend[T, S]](v *Engine[T, S, B], src []U, fn func(U) T) {
	if aliases(v, src) {
		src = slices.Clone(src)
	}
	s := v.prepare(len(src))
	for i, x := range src {
		s[i] = fn(x)
	}
}
