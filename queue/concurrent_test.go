// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package queue_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"golang.org/x/sync/errgroup"

	"code.hybscloud.com/core/queue"
)

const concurrentTimeout = 10 * time.Second

// TestSPSCConcurrentFIFO streams a sequence through the ring with mixed
// single and batch calls and checks the consumer sees it in order.
func TestSPSCConcurrentFIFO(t *testing.T) {
	if queue.RaceEnabled {
		t.Skip("skip: lock-free slot handoff is invisible to the race detector")
	}

	const total = 200_000
	q := queue.NewSPSC[int](64)
	ctx, cancel := context.WithTimeout(context.Background(), concurrentTimeout)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		backoff := iox.Backoff{}
		batch := make([]int, 0, 16)
		for next := 0; next < total; {
			if next%3 == 0 {
				if q.Enqueue(&next) == nil {
					next++
					backoff.Reset()
					continue
				}
			} else {
				batch = batch[:0]
				for i := next; i < min(next+16, total); i++ {
					batch = append(batch, i)
				}
				if n := q.EnqueueBatch(batch); n > 0 {
					next += n
					backoff.Reset()
					continue
				}
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			backoff.Wait()
		}
		return nil
	})

	g.Go(func() error {
		backoff := iox.Backoff{}
		buf := make([]int, 10)
		for want := 0; want < total; {
			var got []int
			if want%2 == 0 {
				if v, err := q.Dequeue(); err == nil {
					got = []int{v}
				}
			} else if n := q.DequeueBatch(buf); n > 0 {
				got = buf[:n]
			}
			if len(got) == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
				backoff.Wait()
				continue
			}
			backoff.Reset()
			for _, v := range got {
				if v != want {
					return fmt.Errorf("dequeued %d, want %d", v, want)
				}
				want++
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}
	if q.Len() != 0 {
		t.Fatalf("Len after drain: got %d, want 0", q.Len())
	}
}

// TestMPMCNoLossNoDuplicate runs one producer against several competing
// consumers and checks every value is delivered exactly once.
func TestMPMCNoLossNoDuplicate(t *testing.T) {
	if queue.RaceEnabled {
		t.Skip("skip: lock-free slot handoff is invisible to the race detector")
	}

	for _, consumers := range []int{1, 2, 4, 8} {
		t.Run(fmt.Sprintf("consumers=%d", consumers), func(t *testing.T) {
			testMPMCDelivery(t, queue.NewMPMC[int](256), consumers, 100_000)
		})
	}
}

func testMPMCDelivery(t *testing.T, q *queue.MPMC[int], numC, total int) {
	t.Helper()

	seen := make([]atomix.Int32, total)
	var consumed atomix.Int64
	ctx, cancel := context.WithTimeout(context.Background(), concurrentTimeout)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		backoff := iox.Backoff{}
		for i := range total {
			for q.Enqueue(&i) != nil {
				if err := ctx.Err(); err != nil {
					return err
				}
				backoff.Wait()
			}
			backoff.Reset()
		}
		return nil
	})

	for range numC {
		g.Go(func() error {
			backoff := iox.Backoff{}
			for consumed.Load() < int64(total) {
				v, err := q.Dequeue()
				if err != nil {
					if err := ctx.Err(); err != nil {
						return err
					}
					backoff.Wait()
					continue
				}
				backoff.Reset()
				if v < 0 || v >= total {
					return fmt.Errorf("dequeued out-of-range value %d", v)
				}
				seen[v].Add(1)
				consumed.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	var missing, duplicates int
	for i := range total {
		switch c := seen[i].Load(); {
		case c == 0:
			missing++
		case c > 1:
			duplicates++
		}
	}
	if missing > 0 || duplicates > 0 {
		t.Fatalf("missing %d, duplicated %d of %d", missing, duplicates, total)
	}
}
