// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue_test

import (
	"errors"
	"slices"
	"testing"

	"code.hybscloud.com/core/queue"
)

func TestSPSCBatch(t *testing.T) {
	q := queue.NewSPSC[int](8)

	if n := q.EnqueueBatch([]int{1, 2, 3, 4, 5}); n != 5 {
		t.Fatalf("EnqueueBatch: got %d, want 5", n)
	}
	if n := q.EnqueueBatch([]int{6, 7, 8, 9, 10}); n != 3 {
		t.Fatalf("EnqueueBatch on 3 free: got %d, want 3", n)
	}
	if q.Len() != 8 {
		t.Fatalf("Len: got %d, want 8", q.Len())
	}
	if n := q.EnqueueBatch([]int{11}); n != 0 {
		t.Fatalf("EnqueueBatch on full: got %d, want 0", n)
	}
	if err := q.TryEnqueueBatch([]int{11}); !errors.Is(err, queue.ErrWouldBlock) {
		t.Fatalf("TryEnqueueBatch on full: got %v, want ErrWouldBlock", err)
	}

	dst := make([]int, 4)
	if n := q.DequeueBatch(dst); n != 4 || !slices.Equal(dst, []int{1, 2, 3, 4}) {
		t.Fatalf("DequeueBatch: got %d %v", n, dst)
	}
	if err := q.TryDequeueBatch(make([]int, 5)); !errors.Is(err, queue.ErrWouldBlock) {
		t.Fatalf("TryDequeueBatch beyond Len: got %v, want ErrWouldBlock", err)
	}
	if q.Len() != 4 {
		t.Fatalf("Len after failed TryDequeueBatch: got %d, want 4", q.Len())
	}
	if err := q.TryDequeueBatch(dst); err != nil || !slices.Equal(dst, []int{5, 6, 7, 8}) {
		t.Fatalf("TryDequeueBatch: got %v %v", err, dst)
	}
	if n := q.DequeueBatch(dst); n != 0 {
		t.Fatalf("DequeueBatch on empty: got %d, want 0", n)
	}
}

func TestSPSCBatchEmptyArgs(t *testing.T) {
	q := queue.NewSPSC[int](2)
	if n := q.EnqueueBatch(nil); n != 0 {
		t.Fatalf("EnqueueBatch(nil): got %d", n)
	}
	if err := q.TryEnqueueBatch(nil); err != nil {
		t.Fatalf("TryEnqueueBatch(nil): %v", err)
	}
	if n := q.DequeueBatch(nil); n != 0 {
		t.Fatalf("DequeueBatch(nil): got %d", n)
	}
	if err := q.TryDequeueBatch(nil); err != nil {
		t.Fatalf("TryDequeueBatch(nil): %v", err)
	}
}

// TestSPSCBatchWrapAround moves batches through a ring whose size does not
// divide the batch length, so most batches are split in two.
func TestSPSCBatchWrapAround(t *testing.T) {
	q := queue.NewSPSC[int](5)
	in := make([]int, 4)
	out := make([]int, 4)
	next, want := 0, 0

	for round := range 25 {
		for i := range in {
			in[i] = next
			next++
		}
		if err := q.TryEnqueueBatch(in); err != nil {
			t.Fatalf("round %d TryEnqueueBatch: %v", round, err)
		}

		// Interleave single-element calls with the batches.
		v := next
		next++
		if err := q.Enqueue(&v); err != nil {
			t.Fatalf("round %d Enqueue: %v", round, err)
		}

		if err := q.TryDequeueBatch(out); err != nil {
			t.Fatalf("round %d TryDequeueBatch: %v", round, err)
		}
		for i, got := range out {
			if got != want {
				t.Fatalf("round %d out[%d]: got %d, want %d", round, i, got, want)
			}
			want++
		}
		got, err := q.Dequeue()
		if err != nil || got != want {
			t.Fatalf("round %d Dequeue: got %d %v, want %d", round, got, err, want)
		}
		want++
	}
}

func TestSPSCExactSlots(t *testing.T) {
	q := queue.BuildSPSC[int](queue.New(4).SingleConsumer().ExactSlots())
	if q.Cap() != 3 {
		t.Fatalf("Cap: got %d, want 3", q.Cap())
	}
	for i := range 3 {
		if err := q.Enqueue(&i); err != nil {
			t.Fatalf("Enqueue(%d): %v", i, err)
		}
	}
	v := 3
	if err := q.Enqueue(&v); !errors.Is(err, queue.ErrWouldBlock) {
		t.Fatalf("Enqueue on full: got %v, want ErrWouldBlock", err)
	}
}

func TestSPSCResize(t *testing.T) {
	q := queue.NewSPSC[string](2)
	for _, s := range []string{"a", "b"} {
		if err := q.Enqueue(&s); err != nil {
			t.Fatalf("Enqueue(%q): %v", s, err)
		}
	}

	q.Resize(5, true)
	if q.Len() != 0 || q.Cap() != 5 {
		t.Fatalf("after Resize: Len %d Cap %d, want 0 5", q.Len(), q.Cap())
	}
	if n := q.EnqueueBatch([]string{"c", "d", "e", "f", "g", "h"}); n != 5 {
		t.Fatalf("EnqueueBatch after Resize: got %d, want 5", n)
	}
	got, err := q.Dequeue()
	if err != nil || got != "c" {
		t.Fatalf("Dequeue after Resize: got %q %v, want c", got, err)
	}

	q.Resize(4, false)
	if q.Cap() != 3 {
		t.Fatalf("Cap after Resize(4, false): got %d, want 3", q.Cap())
	}
}
