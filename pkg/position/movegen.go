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

package position

import (
	"github.com/lperrin/negachess/pkg/attacks"
	"github.com/lperrin/negachess/pkg/bitboard"
	"github.com/lperrin/negachess/pkg/piece"
	"github.com/lperrin/negachess/pkg/square"
)

// GenerateMoves returns every legal move available to color in pos, in
// ascending (from, to) order. For each own piece it computes the
// piece's candidate destination bitboard and speculatively executes
// each candidate on a clone; a candidate is legal iff PerformMove
// succeeds. This duplicates no legality logic: PerformMove is the only
// place that logic lives.
func GenerateMoves(pos *Position, color piece.Color) []Move {
	side := pos.Side(color)
	occ := pos.Occupancy()

	moves := make([]Move, 0, 32)

	for from := square.A1; from <= square.H8; from++ {
		kind := side.PieceAt(from)
		if kind == piece.None {
			continue
		}

		candidates := destinations(from, kind, occ, color)

		for to := square.A1; to <= square.H8; to++ {
			if !candidates.Test(to) {
				continue
			}

			clone := pos.Clone()
			if PerformMove(&clone, from, to, color) == nil {
				moves = append(moves, Move{From: from, To: to})
			}
		}
	}

	return moves
}

// destinations returns the raw candidate destination bitboard for a
// piece of the given kind, ignoring friendly captures, special-move
// preconditions, and king safety — all of which PerformMove checks.
func destinations(from square.Square, kind piece.Kind, occ bitboard.Board, color piece.Color) bitboard.Board {
	switch kind {
	case piece.Pawn:
		return attacks.Pawn(from, occ, color)
	case piece.Knight:
		return attacks.Knight[from]
	case piece.Bishop:
		return attacks.Bishop(from, occ)
	case piece.Rook:
		return attacks.Rook(from, occ)
	case piece.Queen:
		return attacks.Queen(from, occ)
	case piece.King:
		dest := attacks.King[from]
		if from == square.E1 {
			dest.Set(square.C1)
			dest.Set(square.G1)
		} else if from == square.E8 {
			dest.Set(square.C8)
			dest.Set(square.G8)
		}
		return dest
	default:
		return bitboard.Empty
	}
}
