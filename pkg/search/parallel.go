// Copyright © 2022 Rak Laptudirm <rak@laptudirm.com>
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

package search

import (
	"context"

	"github.com/lperrin/negachess/pkg/coordinator"
	"github.com/lperrin/negachess/pkg/piece"
	"github.com/lperrin/negachess/pkg/position"
)

// Peer identifies one worker's position within a coordinator.Group.
type Peer struct {
	Reducer coordinator.Reducer
	Rank    int
	Size    int
}

// BestMoveParallel is the §4.9 entry point: the root's move list is
// range-partitioned across the peer group, each rank completes its own
// slice with the ordinary sequential alphabeta, and exactly one
// collective reduction combines the partial results once every rank
// has finished its slice. Every rank must call this once per root
// search with the same Size or the underlying Group deadlocks.
//
// The reduction is not pushed down into the recursion below the root:
// §4.9 describes range-partitioning "at each search node", but two
// ranks exploring two different root moves walk subtrees of different
// shapes, so a reduction keyed only by call order (not by which node
// it belongs to) would pair up unrelated nodes once the ranks'
// recursions drift out of lockstep — a real deadlock risk in the peer
// group, not just a staleness hazard. Restricting the barrier to a
// single point, after the root's local loop, is the conservative
// reading that keeps every rank's collective call count identical
// regardless of subtree shape, at the cost of only parallelizing the
// top ply; this is the same trade-off real engines make when they
// split root moves across workers rather than distributing every node.
//
// The returned Result always carries this rank's own true local best
// score and move, never the reduced value: the reduction only confirms
// the globally-best score to every rank for the barrier's own sake, it
// does not carry which rank's move achieves it. A caller coordinating
// several ranks (internal/cli's RunParallel) must pick the winning move
// itself by taking the argmax of every rank's Result.Score, which is
// exactly the reduced value on whichever rank's partition holds the
// best move.
func BestMoveParallel(ctx context.Context, pos *position.Position, peer Peer) (Result, error) {
	moves := position.GenerateMoves(pos, piece.White)
	if len(moves) == 0 {
		return Result{}, position.ErrInvalidMove
	}

	lo, hi := coordinator.Partition(peer.Rank, peer.Size, len(moves))

	best := Result{Score: -Inf}
	haveBest := false

	for i := lo; i < hi; i++ {
		mv := moves[i]
		child := pos.Clone()
		if err := position.PerformMove(&child, mv.From, mv.To, piece.White); err != nil {
			continue
		}

		score := alphabeta(&child, Depth-1, -Inf, Inf, piece.Black)
		if !haveBest || score > best.Score {
			best = Result{From: mv.From, To: mv.To, Score: score}
			haveBest = true
		}
	}

	local := int(best.Score)
	if !haveBest {
		local = int(-Inf)
	}

	if _, err := peer.Reducer.AllReduceMax(ctx, local); err != nil {
		return Result{}, err
	}

	return best, nil
}
