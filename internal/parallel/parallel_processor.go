// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package parallel

import (
	"fmt"
	"runtime"

	"ferret-records/internal/observability"
)

// MaxWorkers caps the worker count to avoid resource exhaustion
const MaxWorkers = 32

// EffectiveWorkers clamps a requested worker count to [1, MaxWorkers].
// Zero or negative selects one worker per CPU.
func EffectiveWorkers(requested int) int {
	if requested <= 0 {
		requested = runtime.NumCPU()
	}
	if requested > MaxWorkers {
		requested = MaxWorkers
	}
	return requested
}

// ProcessInOrder runs process over items and returns the results in input
// order regardless of which worker handled each item. A single worker runs
// inline without goroutines.
func ProcessInOrder[T, R any](items []T, workers int, process ProcessFunc[T, R], observer *observability.StandardObserver) []R {
	out := make([]R, len(items))
	if len(items) == 0 {
		return out
	}

	if workers <= 1 {
		for i, item := range items {
			out[i] = process(0, item)
		}
		return out
	}

	if workers > len(items) {
		workers = len(items)
	}

	var finishTiming func(bool, map[string]interface{})
	if observer != nil {
		finishTiming = observer.StartTiming("parallel_processor", "process_in_order", "batch")
	}

	pool := NewWorkerPool(workers, process, observer)
	pool.Start()

	// Submit from a separate goroutine so results can be drained concurrently
	go func() {
		for i, item := range items {
			pool.Submit(Job[T]{Index: i, Item: item})
		}
		pool.Close()
	}()

	for result := range pool.Results() {
		out[result.Index] = result.Value
	}

	if finishTiming != nil {
		finishTiming(true, map[string]interface{}{
			"items":   len(items),
			"workers": workers,
		})
	}

	return out
}

func workerSummary(id, processed int) string {
	return fmt.Sprintf("worker %d processed %d items", id, processed)
}
