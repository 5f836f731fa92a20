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

// Package search implements the fixed-depth alpha-beta search: an
// engine that always plays White and picks the move maximizing
// Evaluate at the configured Depth, minimizing on Black's replies in
// between.
package search

import (
	"github.com/lperrin/negachess/internal/util"
	"github.com/lperrin/negachess/pkg/evaluation"
	"github.com/lperrin/negachess/pkg/piece"
	"github.com/lperrin/negachess/pkg/position"
	"github.com/lperrin/negachess/pkg/square"
)

// Depth is the fixed search depth in plies. There is no iterative
// deepening and no time control: every call to BestMove searches
// exactly this many plies deep.
const Depth = 4

// Inf bounds alpha/beta at the root. It is comfortably larger than any
// reachable material score, so it never participates in a real cutoff.
const Inf evaluation.Eval = 1 << 20

// Result is the outcome of a root search: the chosen move and its
// backed-up score from White's perspective.
type Result struct {
	From, To square.Square
	Score    evaluation.Eval
}

// BestMove searches pos to Depth plies and returns White's best move.
// Only White's moves are generated at the root — this engine always
// plays White, mirroring the reference move_generator.get_best_move.
// Ties are broken by move order (ascending from, then to), since
// GenerateMoves yields moves in that order and the first move to reach
// a given score is kept.
func BestMove(pos *position.Position) (Result, error) {
	moves := position.GenerateMoves(pos, piece.White)
	if len(moves) == 0 {
		return Result{}, position.ErrInvalidMove
	}

	best := Result{From: moves[0].From, To: moves[0].To, Score: -Inf}
	alpha, beta := -Inf, Inf

	for _, mv := range moves {
		child := pos.Clone()
		if err := position.PerformMove(&child, mv.From, mv.To, piece.White); err != nil {
			continue
		}

		score := alphabeta(&child, Depth-1, alpha, beta, piece.Black)
		if score > best.Score {
			best = Result{From: mv.From, To: mv.To, Score: score}
		}
		alpha = util.Max(alpha, score)
	}

	return best, nil
}

// alphabeta returns the minimax value of pos at the given depth and
// side to move, using absolute (not negamax) max/min semantics: White
// always maximizes Evaluate and Black always minimizes it, matching
// the reference min_max_with_alpha_beta_pruning.
func alphabeta(pos *position.Position, depth int, alpha, beta evaluation.Eval, side piece.Color) evaluation.Eval {
	if depth == 0 || pos.IsTerminal() {
		return evaluation.Evaluate(pos, side)
	}

	moves := position.GenerateMoves(pos, side)
	if len(moves) == 0 {
		return evaluation.Evaluate(pos, side)
	}

	if side == piece.White {
		value := -Inf
		for _, mv := range moves {
			child := pos.Clone()
			if err := position.PerformMove(&child, mv.From, mv.To, side); err != nil {
				continue
			}
			score := alphabeta(&child, depth-1, alpha, beta, piece.Black)
			value = util.Max(value, score)
			alpha = util.Max(alpha, value)
			if alpha >= beta {
				break
			}
		}
		return value
	}

	value := Inf
	for _, mv := range moves {
		child := pos.Clone()
		if err := position.PerformMove(&child, mv.From, mv.To, side); err != nil {
			continue
		}
		score := alphabeta(&child, depth-1, alpha, beta, piece.White)
		value = util.Min(value, score)
		beta = util.Min(beta, value)
		if alpha >= beta {
			break
		}
	}
	return value
}
