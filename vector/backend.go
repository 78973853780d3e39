// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vector

import (
	"fmt"
	"math"
	"unsafe"
)

// initialCapacity is the capacity of the first block of a pushed-to vector.
const initialCapacity = 2

// inliner is implemented by backends with in-object storage.
type inliner interface {
	InlineCap() int
}

// firstCapacity keeps a first push inside an inline array shorter than
// initialCapacity.
func firstCapacity(b any) int {
	if in, ok := b.(inliner); ok {
		return min(initialCapacity, in.InlineCap())
	}
	return initialCapacity
}

// Backend is the capability set the engine needs from a storage strategy.
//
// S is the backend struct; the constraint is satisfied by *S so an engine
// stores S inline and calls its methods through a pointer, which keeps the
// dispatch static.
//
// A backend owns raw memory only. It never constructs or destroys elements:
// slots in [Len, Cap) hold the zero value and the engine keeps them that way.
// On a freshly allocated block, SetData must be called before SetLen and
// SetCap because some backends keep size and capacity inside the block.
type Backend[T any, S any] interface {
	*S

	// IsSafe reports whether the unsafe accessors may be called.
	IsSafe() bool

	Data() *T
	DataUnsafe() *T
	Len() int
	LenUnsafe() int
	Cap() int
	CapUnsafe() int

	SetData(data *T)
	SetLen(n int)
	SetCap(n int)

	// Allocate returns storage for capacity elements, all zero.
	Allocate(capacity int) *T

	// Deallocate releases storage obtained from Allocate.
	// The elements have already been moved out or destroyed.
	Deallocate(data *T, capacity int)

	// Steal takes other's buffer, leaving other unallocated.
	// The receiver must be unallocated.
	Steal(other *S)

	// Swap exchanges buffers with other.
	Swap(other *S)
}

// window returns the first n slots starting at data.
func window[T any](data *T, n int) []T {
	if data == nil || n == 0 {
		return nil
	}
	return unsafe.Slice(data, n)
}

// at returns a pointer to slot i starting at data. No bounds check.
func at[T any](data *T, i int) *T {
	var zero T
	return (*T)(unsafe.Add(unsafe.Pointer(data), uintptr(i)*unsafe.Sizeof(zero)))
}

// overlaps reports whether the byte ranges [a, a+an) and [b, b+bn) intersect.
func overlaps(a unsafe.Pointer, an uintptr, b unsafe.Pointer, bn uintptr) bool {
	if a == nil || b == nil || an == 0 || bn == 0 {
		return false
	}
	return uintptr(b) < uintptr(a)+an && uintptr(a) < uintptr(b)+bn
}

// checkCapacity panics with ErrCapacityOverflow when capacity elements of T
// cannot be addressed.
func checkCapacity[T any](capacity int) {
	var zero T
	size := unsafe.Sizeof(zero)
	if capacity < 0 || (size != 0 && uintptr(capacity) > uintptr(math.MaxInt)/size) {
		panic(fmt.Errorf("%w: %d elements of %d bytes", ErrCapacityOverflow, capacity, size))
	}
}

// nextPow2 rounds n up to the next power of 2.
func nextPow2(n int) int {
	if n < 2 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
