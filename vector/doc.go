// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package vector provides growable arrays with a choice of memory layout.
//
// One engine implements every vector operation. It is parameterized by a
// storage backend that decides where the elements, the size and the
// capacity live:
//
//   - Heap: size and capacity beside a heap buffer
//   - Flat: a single pointer; size, capacity and an optional custom header
//     are stored in the same block, just before the elements
//   - Small: an inline buffer of N elements, spilling to the heap beyond it
//   - Allocated: like Heap, with memory from a pluggable Allocator
//
// The backend is a type parameter, so every call is resolved statically.
//
// # Quick Start
//
//	var v vector.Vector[int]
//	v.Push(1)
//	v.Push(2)
//	last := v.Pop() // 2
//
//	var s vector.SmallVector[int, [8]int] // no allocation up to 8 elements
//	f := vector.NewFlatVector("a", "b")   // one pointer wide
//
// # Positions
//
// Positions are element indices. Find and FindFunc return Len when nothing
// matches. Insert and Erase return the position they were given.
//
// # Growth
//
// The first Push allocates room for 2 elements and a full vector doubles.
// Insertions grow to Cap + max(Cap, count). Reserve and the Resize family
// allocate exactly what was asked for.
//
// # Sorted vectors
//
// Sorted wraps an engine and keeps it ordered by a Comparator:
//
//	s := vector.NewSortedVector(5, 1, 3)
//	s.Push(2)        // [1 2 3 5]
//	i := s.Find(3)   // 2
//
// # Preconditions
//
// Popping an empty vector or indexing out of range is a caller bug.
// Built with -tags debug, such calls are logged and panic.
//
// # Concurrency
//
// Vectors are not safe for concurrent use and must not be copied after
// first use; use Clone, CopyFrom, Steal or Swap.
package vector
