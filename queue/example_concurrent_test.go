// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// Examples with concurrent goroutines. The race detector cannot see the
// ordering the queue atomics provide, so these are excluded from race runs.

package queue_test

import (
	"fmt"
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"

	"code.hybscloud.com/core/queue"
)

// Example_workerPool distributes jobs from one dispatcher to three workers.
func Example_workerPool() {
	type Job struct {
		ID    int
		Input int
	}

	jobs := queue.NewMPMC[Job](16)
	results := make([]int, 5)
	var wg sync.WaitGroup
	var completed atomix.Int32

	for range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			backoff := iox.Backoff{}
			for completed.Load() < 5 {
				job, err := jobs.Dequeue()
				if err != nil {
					backoff.Wait()
					continue
				}
				backoff.Reset()
				results[job.ID] = job.Input * job.Input
				completed.Add(1)
			}
		}()
	}

	backoff := iox.Backoff{}
	for i := range 5 {
		job := Job{ID: i, Input: i + 1}
		for jobs.Enqueue(&job) != nil {
			backoff.Wait()
		}
		backoff.Reset()
	}

	wg.Wait()

	for i, r := range results {
		fmt.Printf("Job %d: %d² = %d\n", i, i+1, r)
	}

	// Output:
	// Job 0: 1² = 1
	// Job 1: 2² = 4
	// Job 2: 3² = 9
	// Job 3: 4² = 16
	// Job 4: 5² = 25
}

// Example_pipeline streams values through an SPSC ring in batches.
func Example_pipeline() {
	q := queue.NewSPSC[int](8)
	var wg sync.WaitGroup
	var sum int

	wg.Add(1)
	go func() {
		defer wg.Done()
		backoff := iox.Backoff{}
		buf := make([]int, 4)
		for received := 0; received < 100; {
			n := q.DequeueBatch(buf)
			if n == 0 {
				backoff.Wait()
				continue
			}
			backoff.Reset()
			for _, v := range buf[:n] {
				sum += v
			}
			received += n
		}
	}()

	backoff := iox.Backoff{}
	values := make([]int, 100)
	for i := range values {
		values[i] = i + 1
	}
	for len(values) > 0 {
		n := q.EnqueueBatch(values)
		if n == 0 {
			backoff.Wait()
			continue
		}
		backoff.Reset()
		values = values[n:]
	}

	wg.Wait()
	fmt.Println("sum:", sum)
	// Output:
	// sum: 5050
}
