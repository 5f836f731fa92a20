package coordinator_test

import (
	"context"
	"sync"
	"testing"

	"github.com/lperrin/negachess/pkg/coordinator"
)

func TestPartitionCoversEveryItemExactlyOnce(t *testing.T) {
	const n = 37
	const size = 4

	seen := make([]int, n)
	for rank := 0; rank < size; rank++ {
		lo, hi := coordinator.Partition(rank, size, n)
		for i := lo; i < hi; i++ {
			seen[i]++
		}
	}

	for i, count := range seen {
		if count != 1 {
			t.Errorf("item %d covered %d times, want exactly 1", i, count)
		}
	}
}

func TestPartitionHandlesFewerItemsThanRanks(t *testing.T) {
	const n = 2
	const size = 8

	total := 0
	for rank := 0; rank < size; rank++ {
		lo, hi := coordinator.Partition(rank, size, n)
		if lo > hi {
			t.Fatalf("rank %d: lo %d > hi %d", rank, lo, hi)
		}
		total += hi - lo
	}
	if total != n {
		t.Errorf("partitions covered %d items total, want %d", total, n)
	}
}

func TestGroupAllReduceMax(t *testing.T) {
	group := coordinator.NewGroup(3)
	values := []int{5, 9, 2}

	results := make([]int, 3)
	var wg sync.WaitGroup
	for rank, v := range values {
		rank, v := rank, v
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := group.Peer(rank).AllReduceMax(context.Background(), v)
			if err != nil {
				t.Errorf("rank %d: AllReduceMax: %v", rank, err)
				return
			}
			results[rank] = got
		}()
	}
	wg.Wait()

	for rank, got := range results {
		if got != 9 {
			t.Errorf("rank %d: AllReduceMax = %d, want 9", rank, got)
		}
	}
}

func TestGroupAllReduceMin(t *testing.T) {
	group := coordinator.NewGroup(3)
	values := []int{5, 9, 2}

	results := make([]int, 3)
	var wg sync.WaitGroup
	for rank, v := range values {
		rank, v := rank, v
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := group.Peer(rank).AllReduceMin(context.Background(), v)
			if err != nil {
				t.Errorf("rank %d: AllReduceMin: %v", rank, err)
				return
			}
			results[rank] = got
		}()
	}
	wg.Wait()

	for rank, got := range results {
		if got != 2 {
			t.Errorf("rank %d: AllReduceMin = %d, want 2", rank, got)
		}
	}
}

func TestGroupSingleRankIsIdentity(t *testing.T) {
	group := coordinator.NewGroup(1)
	got, err := group.Peer(0).AllReduceMax(context.Background(), 42)
	if err != nil {
		t.Fatalf("AllReduceMax: %v", err)
	}
	if got != 42 {
		t.Errorf("single-rank AllReduceMax = %d, want 42", got)
	}
}
