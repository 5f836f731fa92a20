package search_test

import (
	"context"
	"sync"
	"testing"

	"github.com/lperrin/negachess/pkg/coordinator"
	"github.com/lperrin/negachess/pkg/evaluation"
	"github.com/lperrin/negachess/pkg/piece"
	"github.com/lperrin/negachess/pkg/search"
	"github.com/lperrin/negachess/pkg/square"
)

func TestBestMoveParallelAgreesWithSequential(t *testing.T) {
	pos := bareKings(square.A1, square.H8)
	placeSquare(&pos.White, piece.Queen, square.D4)
	placeSquare(&pos.Black, piece.Queen, square.D8)

	const peers = 3
	group := coordinator.NewGroup(peers)

	results := make([]search.Result, peers)
	errs := make([]error, peers)

	var wg sync.WaitGroup
	for rank := 0; rank < peers; rank++ {
		rank := rank
		wg.Add(1)
		go func() {
			defer wg.Done()
			snapshot := pos.Clone()
			results[rank], errs[rank] = search.BestMoveParallel(context.Background(), &snapshot, search.Peer{
				Reducer: group.Peer(rank),
				Rank:    rank,
				Size:    peers,
			})
		}()
	}
	wg.Wait()

	for rank, err := range errs {
		if err != nil {
			t.Fatalf("rank %d: BestMoveParallel: %v", rank, err)
		}
	}

	// each rank's Result must be its own true local best, not the value
	// the collective reduction combined them into — the rank whose
	// partition holds d4d8 must report it with the queen-winning score.
	wantScore := evaluation.ValueQueen + evaluation.WhiteBonus
	found := false
	for _, r := range results {
		if r.From == square.D4 && r.To == square.D8 {
			found = true
			if r.Score != wantScore {
				t.Errorf("rank reporting d4d8 has Score %d, want %d", r.Score, wantScore)
			}
		}
	}
	if !found {
		t.Error("no rank reported d4d8 as its local best move")
	}

	// argmax over the ranks' local bests — exactly what internal/cli's
	// bestOf does — must recover d4d8 regardless of which rank's
	// partition happened to hold it, since the reduction itself carries
	// only the score and not the move.
	best := results[0]
	for _, r := range results[1:] {
		if r.Score > best.Score {
			best = r
		}
	}
	if best.From != square.D4 || best.To != square.D8 {
		t.Errorf("argmax over ranks selected %s%s with score %d, want d4d8 with score %d",
			best.From, best.To, best.Score, wantScore)
	}
}

// bareKings and placeSquare are defined in search_test.go.
