// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Options configures queue creation and algorithm selection.
type Options struct {
	// Consumer constraint (determines queue type)
	singleConsumer bool

	// SPSC ring sizing: capacity slots instead of capacity+1
	exactSlots bool

	capacity int
}

// Builder creates queues with fluent configuration.
//
// Both queue types accept one producer. The builder picks the algorithm
// from the consumer constraint.
//
// Example:
//
//	// SPSC queue holding 1024 elements
//	q := queue.BuildSPSC[Event](queue.New(1024).SingleConsumer())
//
//	// MPMC queue, any number of consumers
//	q := queue.BuildMPMC[Request](queue.New(4096))
type Builder struct {
	opts Options
}

// New creates a queue builder with the given capacity.
//
// The SPSC queue uses it as is. The MPMC queue requires a power of 2.
//
// Panics with ErrInvalidCapacity if capacity < 1.
func New(capacity int) *Builder {
	if capacity < 1 {
		panic(fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity))
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// SingleConsumer declares that only one goroutine will dequeue.
// Selects the SPSC ring buffer.
func (b *Builder) SingleConsumer() *Builder {
	b.opts.singleConsumer = true
	return b
}

// ExactSlots sizes the SPSC ring to capacity slots, so it holds
// capacity-1 elements. Without it the ring has capacity+1 slots.
func (b *Builder) ExactSlots() *Builder {
	b.opts.exactSlots = true
	return b
}

// Build creates a Queue[T] with automatic algorithm selection.
//
// Algorithm selection:
//
//	SingleConsumer → SPSC (Lamport ring buffer)
//	otherwise      → MPMC (per-cell sequence counters)
//
// For concrete return types, use:
//   - BuildSPSC[T](b) → *SPSC[T]
//   - BuildMPMC[T](b) → *MPMC[T]
func Build[T any](b *Builder) Queue[T] {
	if b.opts.singleConsumer {
		return BuildSPSC[T](b)
	}
	return BuildMPMC[T](b)
}

// BuildSPSC creates an SPSC queue with compile-time type safety.
// Panics if builder is not configured with SingleConsumer().
func BuildSPSC[T any](b *Builder) *SPSC[T] {
	if !b.opts.singleConsumer {
		panic("queue: BuildSPSC requires SingleConsumer()")
	}
	q := &SPSC[T]{}
	q.Resize(b.opts.capacity, !b.opts.exactSlots)
	return q
}

// BuildMPMC creates an MPMC queue with compile-time type safety.
// Panics if builder has SPSC-only options set.
func BuildMPMC[T any](b *Builder) *MPMC[T] {
	if b.opts.singleConsumer || b.opts.exactSlots {
		panic("queue: BuildMPMC requires no SingleConsumer() or ExactSlots()")
	}
	return NewMPMC[T](b.opts.capacity)
}

// cacheLineSize is the padding unit that keeps producer and consumer
// state on separate cache lines.
const cacheLineSize = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// pad is cache line padding to prevent false sharing.
type pad [cacheLineSize]byte

// padShort is padding to fill cache line after 8-byte field.
type padShort [cacheLineSize - 8]byte
