// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue

import (
	"fmt"

	"code.hybscloud.com/atomix"
)

// SPSC is a single-producer single-consumer bounded queue.
//
// Lamport ring buffer: one slot always stays empty so that head == tail
// means empty and tail+1 == head means full. Each side keeps a private view
// holding its own copy of the buffer and a cached copy of the other side's
// cursor, and reads the shared cursor only when the cache says it must.
//
// Cursors stay in [0, slots). In buffer mode (NewSPSC) the ring has
// capacity+1 slots so exactly capacity elements fit; with exact slots
// (Builder.ExactSlots) it has capacity slots and holds capacity-1.
type SPSC[T any] struct {
	_    pad
	tail atomix.Uint64 // next write slot; producer publishes
	_    pad
	head atomix.Uint64 // next read slot; consumer publishes
	_    pad
	prod spscView[T] // producer only
	_    pad
	cons spscView[T] // consumer only
	_    pad
}

type spscView[T any] struct {
	buffer []T
	slots  uint64
	cached uint64 // other side's cursor as last seen
}

// NewSPSC creates an SPSC queue that holds exactly capacity elements.
// Panics with ErrInvalidCapacity if capacity < 1.
func NewSPSC[T any](capacity int) *SPSC[T] {
	q := &SPSC[T]{}
	q.Resize(capacity, true)
	return q
}

// Resize discards the contents and reallocates the ring.
//
// With usedAsBuffer the ring gets capacity+1 slots, otherwise capacity.
// Panics with ErrInvalidCapacity when that is fewer than 2 slots.
// Resize must not run concurrently with any other method.
func (q *SPSC[T]) Resize(capacity int, usedAsBuffer bool) {
	slots := capacity
	if usedAsBuffer {
		slots++
	}
	if capacity < 1 || slots < 2 {
		panic(fmt.Errorf("%w: SPSC needs at least 2 slots, got capacity %d", ErrInvalidCapacity, capacity))
	}
	buffer := make([]T, slots)
	q.prod = spscView[T]{buffer: buffer, slots: uint64(slots)}
	q.cons = spscView[T]{buffer: buffer, slots: uint64(slots)}
	q.tail.StoreRelaxed(0)
	q.head.StoreRelaxed(0)
}

func (v *spscView[T]) next(i uint64) uint64 {
	if i++; i == v.slots {
		return 0
	}
	return i
}

func (v *spscView[T]) advance(i, n uint64) uint64 {
	if i += n; i >= v.slots {
		return i - v.slots
	}
	return i
}

// used returns the number of occupied slots between head and tail.
func (v *spscView[T]) used(head, tail uint64) uint64 {
	if tail >= head {
		return tail - head
	}
	return v.slots - head + tail
}

// free returns the number of elements the producer may still write.
func (v *spscView[T]) free(head, tail uint64) uint64 {
	return v.slots - 1 - v.used(head, tail)
}

// runs returns the one or two contiguous slot ranges covering n slots
// starting at i.
func (v *spscView[T]) runs(i, n uint64) (a, b []T) {
	if end := i + n; end > v.slots {
		return v.buffer[i:], v.buffer[:end-v.slots]
	}
	return v.buffer[i : i+n], nil
}

// Enqueue adds an element to the queue (producer only).
// Returns ErrWouldBlock if the queue is full.
func (q *SPSC[T]) Enqueue(elem *T) error {
	p := &q.prod
	tail := q.tail.LoadRelaxed()
	next := p.next(tail)
	if next == p.cached {
		p.cached = q.head.LoadAcquire()
		if next == p.cached {
			return ErrWouldBlock
		}
	}

	p.buffer[tail] = *elem
	q.tail.StoreRelease(next)
	return nil
}

// Dequeue removes and returns an element (consumer only).
// Returns (zero-value, ErrWouldBlock) if the queue is empty.
func (q *SPSC[T]) Dequeue() (T, error) {
	c := &q.cons
	head := q.head.LoadRelaxed()
	if head == c.cached {
		c.cached = q.tail.LoadAcquire()
		if head == c.cached {
			var zero T
			return zero, ErrWouldBlock
		}
	}

	elem := c.buffer[head]
	var zero T
	c.buffer[head] = zero
	q.head.StoreRelease(c.next(head))
	return elem, nil
}

// reserve returns the tail and the number of free slots, refreshing the
// cached head when fewer than want are known to be free.
func (q *SPSC[T]) reserve(want int) (tail, free uint64) {
	p := &q.prod
	tail = q.tail.LoadRelaxed()
	free = p.free(p.cached, tail)
	if free < uint64(want) {
		p.cached = q.head.LoadAcquire()
		free = p.free(p.cached, tail)
	}
	return tail, free
}

func (q *SPSC[T]) push(tail uint64, elems []T) {
	p := &q.prod
	a, b := p.runs(tail, uint64(len(elems)))
	n := copy(a, elems)
	copy(b, elems[n:])
	q.tail.StoreRelease(p.advance(tail, uint64(len(elems))))
}

// EnqueueBatch adds as many leading elements of elems as fit and returns
// how many were added (producer only).
func (q *SPSC[T]) EnqueueBatch(elems []T) int {
	if len(elems) == 0 {
		return 0
	}
	tail, free := q.reserve(len(elems))
	n := min(free, uint64(len(elems)))
	if n == 0 {
		return 0
	}
	q.push(tail, elems[:n])
	return int(n)
}

// TryEnqueueBatch adds all of elems or none (producer only).
// Returns ErrWouldBlock if they do not all fit.
func (q *SPSC[T]) TryEnqueueBatch(elems []T) error {
	if len(elems) == 0 {
		return nil
	}
	tail, free := q.reserve(len(elems))
	if free < uint64(len(elems)) {
		return ErrWouldBlock
	}
	q.push(tail, elems)
	return nil
}

// available returns the head and the number of readable slots, refreshing
// the cached tail when fewer than want are known to be readable.
func (q *SPSC[T]) available(want int) (head, avail uint64) {
	c := &q.cons
	head = q.head.LoadRelaxed()
	avail = c.used(head, c.cached)
	if avail < uint64(want) {
		c.cached = q.tail.LoadAcquire()
		avail = c.used(head, c.cached)
	}
	return head, avail
}

func (q *SPSC[T]) pop(head uint64, dst []T) {
	c := &q.cons
	a, b := c.runs(head, uint64(len(dst)))
	n := copy(dst, a)
	copy(dst[n:], b)
	clear(a)
	clear(b)
	q.head.StoreRelease(c.advance(head, uint64(len(dst))))
}

// DequeueBatch fills a prefix of dst with the oldest elements and returns
// its length (consumer only).
func (q *SPSC[T]) DequeueBatch(dst []T) int {
	if len(dst) == 0 {
		return 0
	}
	head, avail := q.available(len(dst))
	n := min(avail, uint64(len(dst)))
	if n == 0 {
		return 0
	}
	q.pop(head, dst[:n])
	return int(n)
}

// TryDequeueBatch fills all of dst or nothing (consumer only).
// Returns ErrWouldBlock if fewer than len(dst) elements are queued.
func (q *SPSC[T]) TryDequeueBatch(dst []T) error {
	if len(dst) == 0 {
		return nil
	}
	head, avail := q.available(len(dst))
	if avail < uint64(len(dst)) {
		return ErrWouldBlock
	}
	q.pop(head, dst)
	return nil
}

// Len returns the number of queued elements.
// Exact only when neither side is running.
func (q *SPSC[T]) Len() int {
	head := q.head.LoadAcquire()
	tail := q.tail.LoadAcquire()
	return int(q.prod.used(head, tail))
}

// Cap returns the maximum number of queued elements.
func (q *SPSC[T]) Cap() int {
	return int(q.prod.slots - 1)
}

// Clear drops every queued element.
// Clear must not run concurrently with any other method.
func (q *SPSC[T]) Clear() {
	clear(q.prod.buffer)
	q.prod.cached, q.cons.cached = 0, 0
	q.tail.StoreRelaxed(0)
	q.head.StoreRelaxed(0)
}
