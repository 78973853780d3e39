// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package vector

import (
	"reflect"
	"unsafe"
)

// NoHeader is the custom header of a flat vector that carries none.
type NoHeader struct{}

// flatHeader precedes the elements of a flat block.
type flatHeader[H any] struct {
	custom   H
	size     int
	capacity int
}

// Flat co-allocates size, capacity and an optional custom header H with the
// elements, so the vector itself is a single pointer.
//
// Block layout:
//
//	[ flatHeader[H] | padding ][ T T T ... ]
//	^ block                    ^ data
//
// The header stride is the next power of 2 of max(alignof(T), header size),
// so elements stay aligned and small headers stay compact. A nil data
// pointer means unallocated; the unsafe accessors must not be used then.
//
// The custom header survives reallocation and is zeroed on release.
type Flat[T any, H any] struct {
	data *T
}

var byteType = reflect.TypeFor[byte]()

// flatStride returns the distance from the block start to the first element.
func flatStride[T, H any]() uintptr {
	var zero T
	var hdr flatHeader[H]
	total, align := unsafe.Sizeof(hdr), unsafe.Alignof(zero)
	if total > align {
		return uintptr(nextPow2(int(total)))
	}
	return align
}

func headerOf[T, H any](data *T) *flatHeader[H] {
	return (*flatHeader[H])(unsafe.Add(unsafe.Pointer(data), -int(flatStride[T, H]())))
}

func (f *Flat[T, H]) IsSafe() bool   { return f.data != nil }
func (f *Flat[T, H]) Data() *T       { return f.data }
func (f *Flat[T, H]) DataUnsafe() *T { return f.data }

func (f *Flat[T, H]) Len() int {
	if f.data == nil {
		return 0
	}
	return f.LenUnsafe()
}

func (f *Flat[T, H]) LenUnsafe() int { return headerOf[T, H](f.data).size }

func (f *Flat[T, H]) Cap() int {
	if f.data == nil {
		return 0
	}
	return f.CapUnsafe()
}

func (f *Flat[T, H]) CapUnsafe() int { return headerOf[T, H](f.data).capacity }

// Header returns the custom header, or nil when unallocated.
func (f *Flat[T, H]) Header() *H {
	if f.data == nil {
		return nil
	}
	return &headerOf[T, H](f.data).custom
}

// SetData points the vector at a block returned by Allocate.
// Moving to a new block carries the custom header over.
func (f *Flat[T, H]) SetData(data *T) {
	if f.data != nil && data != nil && data != f.data {
		headerOf[T, H](data).custom = headerOf[T, H](f.data).custom
	}
	f.data = data
}

func (f *Flat[T, H]) SetLen(n int) { headerOf[T, H](f.data).size = n }
func (f *Flat[T, H]) SetCap(n int) { headerOf[T, H](f.data).capacity = n }

// Allocate builds one block holding the header and at least capacity
// elements. The block type is assembled with reflect so the collector scans
// the elements with their real type. The element array length is rounded up
// to a power of 2, which bounds the number of block types per element type;
// the recorded capacity stays exact.
func (f *Flat[T, H]) Allocate(capacity int) *T {
	stride := flatStride[T, H]()
	hdr := reflect.TypeFor[flatHeader[H]]()
	block := reflect.StructOf([]reflect.StructField{
		{Name: "Header", Type: hdr},
		{Name: "Pad", Type: reflect.ArrayOf(int(stride-hdr.Size()), byteType)},
		{Name: "Elems", Type: reflect.ArrayOf(nextPow2(capacity), reflect.TypeFor[T]())},
		{Name: "End", Type: byteType},
	})
	if off := block.Field(2).Offset; off != stride {
		panic("vector: flat block element offset mismatch")
	}
	return (*T)(unsafe.Add(reflect.New(block).UnsafePointer(), stride))
}

// Deallocate zeroes the block header so the custom header releases its
// references. The block itself is reclaimed by the collector.
func (f *Flat[T, H]) Deallocate(data *T, _ int) {
	*headerOf[T, H](data) = flatHeader[H]{}
}

func (f *Flat[T, H]) Steal(other *Flat[T, H]) {
	f.data, other.data = other.data, nil
}

func (f *Flat[T, H]) Swap(other *Flat[T, H]) {
	f.data, other.data = other.data, f.data
}
