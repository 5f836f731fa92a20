// Copyright © 2023 Rak Laptudirm <rak@laptudirm.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lperrin/negachess/pkg/coordinator"
	"github.com/lperrin/negachess/pkg/piece"
	"github.com/lperrin/negachess/pkg/position"
	"github.com/lperrin/negachess/pkg/search"
)

// RunParallel plays the same game as Run, but White's move is chosen
// by search.BestMoveParallel over a simulated peer group of the given
// world size instead of the single-process search.BestMove. Per §4.9,
// only rank 0 performs I/O; the remaining ranks each search their own
// partition of the root's move list and join the single collective
// reduction made after it.
func (g *Game) RunParallel(ctx context.Context, peers int) error {
	if peers < 1 {
		peers = 1
	}
	group := coordinator.NewGroup(peers)

	g.startUI()
	defer g.stopUI()

	for {
		g.render()

		if g.pos.IsTerminal() {
			fmt.Fprintln(g.stdout, "game over")
			return nil
		}

		pos := g.pos // every rank searches from the same snapshot
		results := make([]search.Result, peers)

		eg, egCtx := errgroup.WithContext(ctx)
		for rank := 0; rank < peers; rank++ {
			rank := rank
			eg.Go(func() error {
				result, err := search.BestMoveParallel(egCtx, &pos, search.Peer{
					Reducer: group.Peer(rank),
					Rank:    rank,
					Size:    peers,
				})
				if err != nil {
					return fmt.Errorf("cli: rank %d: %w", rank, err)
				}
				results[rank] = result
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			return err
		}

		result := bestOf(results)
		if err := position.PerformMove(&g.pos, result.From, result.To, piece.White); err != nil {
			return fmt.Errorf("cli: engine chose an illegal move %s%s: %w", result.From, result.To, err)
		}
		fmt.Fprintf(g.stdout, "White plays %s%s\n", result.From, result.To)

		if g.pos.IsTerminal() {
			g.render()
			fmt.Fprintln(g.stdout, "game over")
			return nil
		}

		if err := g.promptBlackMove(); err != nil {
			if err == errDone {
				return nil
			}
			return err
		}
	}
}

// bestOf recovers the globally-best move by taking the argmax of every
// rank's own local-best Result.Score: search.BestMoveParallel reports
// each rank's true local best, never the value the collective
// reduction combined them into, so picking the winner here — rather
// than trusting every rank to already agree on one — is what actually
// lets the move from another rank's partition win. Ties favor the
// lowest rank, matching §4.8's first-encountered tie-break.
func bestOf(results []search.Result) search.Result {
	best := results[0]
	for _, r := range results[1:] {
		if r.Score > best.Score {
			best = r
		}
	}
	return best
}
