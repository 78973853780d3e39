// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package queue provides two bounded lock-free FIFO queues.
//
//   - SPSC: Single-Producer Single-Consumer ring buffer, with batch calls
//   - MPMC: Single-Producer Multi-Consumer ring of sequence-counted cells
//
// # Quick Start
//
// Direct constructors:
//
//	q := queue.NewSPSC[Event](1024)
//	q := queue.NewMPMC[*Request](4096) // power of 2
//
// Builder API selects the algorithm from the consumer constraint:
//
//	q := queue.Build[Event](queue.New(1024).SingleConsumer())  // → SPSC
//	q := queue.Build[Event](queue.New(1024))                   // → MPMC
//
// # Basic Usage
//
//	q := queue.NewMPMC[int](1024)
//
//	value := 42
//	err := q.Enqueue(&value)
//	if queue.IsWouldBlock(err) {
//	    // Queue is full - handle backpressure
//	}
//
//	elem, err := q.Dequeue()
//	if queue.IsWouldBlock(err) {
//	    // Queue is empty - try again later
//	}
//
// # Common Patterns
//
// Pipeline Stage (SPSC):
//
//	q := queue.NewSPSC[Data](1024)
//
//	go func() { // Producer
//	    backoff := iox.Backoff{}
//	    for data := range input {
//	        for q.Enqueue(&data) != nil {
//	            backoff.Wait()
//	        }
//	        backoff.Reset()
//	    }
//	}()
//
//	go func() { // Consumer, 64 at a time
//	    batch := make([]Data, 64)
//	    for {
//	        n := q.DequeueBatch(batch)
//	        process(batch[:n])
//	    }
//	}()
//
// Work Distribution (MPMC):
//
//	q := queue.NewMPMC[Task](1024)
//
//	for range numWorkers {
//	    go func() {
//	        for {
//	            task, err := q.Dequeue()
//	            if err == nil {
//	                task.Execute()
//	            }
//	        }
//	    }()
//	}
//
// # Capacity
//
// NewSPSC(n) holds exactly n elements in a ring of n+1 slots. With
// Builder.ExactSlots, or Resize(n, false), the ring has n slots and holds
// n-1. NewMPMC(n) holds n elements and n must be a power of 2; any other
// value panics with [ErrInvalidCapacity].
//
// Len is exact only while no other goroutine uses the queue.
//
// # Error Handling
//
// Queues return [ErrWouldBlock] when operations cannot proceed. This error
// is sourced from [code.hybscloud.com/iox] for ecosystem consistency.
//
//	queue.IsWouldBlock(err)  // true if queue full/empty
//	queue.IsSemantic(err)    // true if control flow signal
//	queue.IsNonFailure(err)  // true if nil or ErrWouldBlock
//
// # Thread Safety
//
//   - SPSC: one producer goroutine, one consumer goroutine
//   - MPMC: one producer goroutine, any number of consumer goroutines
//
// Clear and Resize require exclusive access. Violating these constraints
// causes undefined behavior including data corruption and races.
//
// # Race Detection
//
// The race detector cannot observe happens-before edges established by
// acquire-release orderings on separate variables, so it may flag slot
// accesses that are correctly ordered by the cursor and sequence atomics.
// Concurrent tests skip when [RaceEnabled] is set.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors,
// [code.hybscloud.com/atomix] for atomic primitives with explicit
// memory ordering, [code.hybscloud.com/spin] for CPU pause instructions
// and [golang.org/x/sys/cpu] for the cache line size.
package queue
