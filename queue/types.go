// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue

// Queue is the combined producer-consumer interface of a bounded FIFO.
//
// Enqueue and Dequeue never block; both return ErrWouldBlock when the queue
// is full or empty. Len is a snapshot that may be stale by the time it
// returns when other goroutines are active.
//
// Example:
//
//	q := queue.NewMPMC[int](1024)
//
//	val := 42
//	if err := q.Enqueue(&val); err != nil {
//	    // full
//	}
//
//	elem, err := q.Dequeue()
//	if err == nil {
//	    fmt.Println(elem)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	Len() int
	Cap() int
}

// Producer is the interface for enqueueing elements.
//
// The element is passed by pointer to avoid copying large structs on the
// call. The queue stores a copy, so the original may be reused at once.
type Producer[T any] interface {
	// Enqueue copies *elem into the queue.
	// Returns nil on success, ErrWouldBlock if the queue is full.
	//
	// Both queue types accept a single producer goroutine.
	Enqueue(elem *T) error
}

// Consumer is the interface for dequeueing elements.
//
// The vacated slot is cleared so the queue does not keep referenced
// objects alive.
type Consumer[T any] interface {
	// Dequeue removes and returns the oldest element.
	// Returns (zero-value, ErrWouldBlock) if the queue is empty.
	//
	// Thread safety depends on queue type:
	//   - SPSC: single consumer only
	//   - MPMC: multiple consumers safe
	Dequeue() (T, error)
}

// BatchProducer enqueues many elements with one publication.
type BatchProducer[T any] interface {
	// EnqueueBatch copies as many leading elements of elems as fit and
	// returns how many it took.
	EnqueueBatch(elems []T) int

	// TryEnqueueBatch copies all of elems, or nothing and returns
	// ErrWouldBlock.
	TryEnqueueBatch(elems []T) error
}

// BatchConsumer dequeues many elements with one publication.
type BatchConsumer[T any] interface {
	// DequeueBatch fills a prefix of dst and returns its length.
	DequeueBatch(dst []T) int

	// TryDequeueBatch fills all of dst, or nothing and returns
	// ErrWouldBlock.
	TryDequeueBatch(dst []T) error
}
