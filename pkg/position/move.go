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

package position

import (
	"github.com/lperrin/negachess/internal/util"
	"github.com/lperrin/negachess/pkg/attacks"
	"github.com/lperrin/negachess/pkg/bitboard"
	"github.com/lperrin/negachess/pkg/piece"
	"github.com/lperrin/negachess/pkg/square"
)

// Move is a (from, to) square pair. The promotion piece and the
// identification of castling/en passant are derived during execution,
// not stored on the move itself.
type Move struct {
	From, To square.Square
}

func abs(x int) int {
	return util.Abs(x)
}

// knightDeltas are the eight (file, rank) signatures of a legal knight
// jump.
var knightDeltas = map[[2]int]bool{
	{1, 2}: true, {2, 1}: true, {2, -1}: true, {1, -2}: true,
	{-1, -2}: true, {-2, -1}: true, {-2, 1}: true, {-1, 2}: true,
}

// pseudoLegal validates the geometry of moving a piece of kind k and
// color c from `from` to `to`, given the board occupancy. It does not
// consult piece placement beyond what's needed for slider reachability
// — own-piece, opponent-king, and pawn-occupancy blocking are checked
// later, during execution.
func pseudoLegal(k piece.Kind, c piece.Color, from, to square.Square, occ bitboard.Board) bool {
	if from == to || !from.Valid() || !to.Valid() {
		return false
	}

	df := int(to.File()) - int(from.File())
	dr := int(to.Rank()) - int(from.Rank())

	switch k {
	case piece.Pawn:
		return pawnPseudoLegal(c, from, df, dr)

	case piece.Knight:
		return knightDeltas[[2]int{df, dr}]

	case piece.Bishop:
		return abs(df) == abs(dr) && df != 0 && attacks.Bishop(from, occ).Test(to)

	case piece.Rook:
		return (df == 0) != (dr == 0) && attacks.Rook(from, occ).Test(to)

	case piece.Queen:
		diagonal := abs(df) == abs(dr) && df != 0
		orthogonal := (df == 0) != (dr == 0)
		return (diagonal || orthogonal) && attacks.Queen(from, occ).Test(to)

	case piece.King:
		if abs(df) <= 1 && abs(dr) <= 1 {
			return true
		}
		return castlingSignature(c, from, to)

	default:
		return false
	}
}

// pawnPseudoLegal implements the color-dependent pawn geometry of §4.3:
// one step forward with any file delta of -1, 0, +1, or two steps
// forward along the file from the starting rank.
func pawnPseudoLegal(c piece.Color, from square.Square, df, dr int) bool {
	switch c {
	case piece.White:
		if dr == 1 && abs(df) <= 1 {
			return true
		}
		return dr == 2 && df == 0 && from.Rank() == square.Rank2

	case piece.Black:
		if dr == -1 && abs(df) <= 1 {
			return true
		}
		return dr == -2 && df == 0 && from.Rank() == square.Rank7

	default:
		return false
	}
}

// castlingSignature reports whether (from, to) matches one of the two
// castling king moves for color c.
func castlingSignature(c piece.Color, from, to square.Square) bool {
	switch c {
	case piece.White:
		return from == square.E1 && (to == square.C1 || to == square.G1)
	case piece.Black:
		return from == square.E8 && (to == square.C8 || to == square.G8)
	default:
		return false
	}
}
