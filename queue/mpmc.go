// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue

import (
	"fmt"
	"math/bits"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// MPMC is a bounded queue for one producer and any number of consumers.
//
// Vyukov's per-cell sequence protocol. Cell i starts with sequence i. A
// cell whose sequence equals the tail position is free for that position;
// the producer claims it by advancing tail with CAS, stores the element
// and publishes sequence tail+1. A consumer at head takes the cell when its
// sequence is head+1, then hands it to the next lap with head+capacity.
//
// The claim step is a CAS, so concurrent producers are also handled
// correctly; the queue is only promised to one.
//
// Memory: capacity cells, each padded to a cache line.
type MPMC[T any] struct {
	_      pad
	tail   atomix.Uint64 // producer CAS here
	_      pad
	head   atomix.Uint64 // consumers CAS here
	_      pad
	buffer []mpmcCell[T]
	mask   uint64
}

type mpmcCell[T any] struct {
	seq  atomix.Uint64
	data T
	_    padShort
}

// NewMPMC creates an MPMC queue of exactly capacity cells.
// Panics with ErrInvalidCapacity unless capacity is a power of 2 and >= 2.
func NewMPMC[T any](capacity int) *MPMC[T] {
	if capacity < 2 || bits.OnesCount(uint(capacity)) != 1 {
		panic(fmt.Errorf("%w: MPMC needs a power of 2 >= 2, got %d", ErrInvalidCapacity, capacity))
	}

	n := uint64(capacity)
	q := &MPMC[T]{
		buffer: make([]mpmcCell[T], n),
		mask:   n - 1,
	}
	for i := range n {
		q.buffer[i].seq.StoreRelaxed(i)
	}
	return q
}

// Enqueue adds an element to the queue.
// Returns ErrWouldBlock if the queue is full.
func (q *MPMC[T]) Enqueue(elem *T) error {
	sw := spin.Wait{}
	for {
		tail := q.tail.LoadRelaxed()
		cell := &q.buffer[tail&q.mask]
		seq := cell.seq.LoadAcquire()
		diff := int64(seq - tail)

		if diff == 0 {
			if q.tail.CompareAndSwapAcqRel(tail, tail+1) {
				cell.data = *elem
				cell.seq.StoreRelease(tail + 1)
				return nil
			}
		} else if diff < 0 {
			return ErrWouldBlock
		}
		sw.Once()
	}
}

// Dequeue removes and returns an element (multiple consumers safe).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *MPMC[T]) Dequeue() (T, error) {
	sw := spin.Wait{}
	for {
		head := q.head.LoadRelaxed()
		cell := &q.buffer[head&q.mask]
		seq := cell.seq.LoadAcquire()
		diff := int64(seq - (head + 1))

		if diff == 0 {
			if q.head.CompareAndSwapAcqRel(head, head+1) {
				elem := cell.data
				var zero T
				cell.data = zero
				cell.seq.StoreRelease(head + q.mask + 1)
				return elem, nil
			}
		} else if diff < 0 {
			var zero T
			return zero, ErrWouldBlock
		}
		sw.Once()
	}
}

// Len returns the number of queued elements.
// Under concurrent use it is an approximation within [0, Cap].
func (q *MPMC[T]) Len() int {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	if tail <= head {
		return 0
	}
	return int(min(tail-head, q.mask+1))
}

// Cap returns the queue capacity.
func (q *MPMC[T]) Cap() int {
	return int(q.mask + 1)
}

// Clear drops every queued element and rewinds the cursors.
// Clear must not run concurrently with any other method.
func (q *MPMC[T]) Clear() {
	var zero T
	for i := range q.buffer {
		q.buffer[i].data = zero
		q.buffer[i].seq.StoreRelaxed(uint64(i))
	}
	q.tail.StoreRelaxed(0)
	q.head.StoreRelaxed(0)
}
