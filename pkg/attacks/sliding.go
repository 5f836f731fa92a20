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

package attacks

import (
	"github.com/lperrin/negachess/pkg/bitboard"
	"github.com/lperrin/negachess/pkg/square"
)

// diagonalDeltas and orthogonalDeltas are the (file, rank) unit steps
// of a bishop's and a rook's four rays respectively.
var diagonalDeltas = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var orthogonalDeltas = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// Bishop returns the candidate destination bitboard of a bishop on
// square s given the board occupancy, walking each of its four
// diagonal rays until a file/rank edge or an occupied square — which
// is itself included in the result, since captures are resolved later
// — terminates it.
func Bishop(s square.Square, occ bitboard.Board) bitboard.Board {
	return rays(s, occ, diagonalDeltas[:])
}

// Rook returns the candidate destination bitboard of a rook on square
// s given the board occupancy, with the same ray-walk semantics as
// Bishop but along the four orthogonal rays.
func Rook(s square.Square, occ bitboard.Board) bitboard.Board {
	return rays(s, occ, orthogonalDeltas[:])
}

// Queen returns the union of the bishop and rook rays from square s.
func Queen(s square.Square, occ bitboard.Board) bitboard.Board {
	return Bishop(s, occ) | Rook(s, occ)
}

// rays walks each of the given unit-step directions from s, stopping a
// ray as soon as it would wrap off the edge of the board, and
// including (then stopping at) the first occupied square it meets.
func rays(s square.Square, occ bitboard.Board, deltas [][2]int) bitboard.Board {
	var dest bitboard.Board

	for _, d := range deltas {
		file, rank := int(s.File()), int(s.Rank())

		for {
			file += d[0]
			rank += d[1]

			if file < 0 || file > 7 || rank < 0 || rank > 7 {
				break
			}

			sq := square.New(square.File(file), square.Rank(rank))
			dest.Set(sq)

			if occ.Test(sq) {
				break
			}
		}
	}

	return dest
}
