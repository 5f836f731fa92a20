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

// Package attacks implements pure (square, occupancy) -> destination
// functions for every piece kind. None of these functions consult own
// or opponent piece placement beyond the occupancy mask; friendly-fire
// filtering happens one layer up, during move legality.
package attacks

import (
	"github.com/lperrin/negachess/pkg/bitboard"
	"github.com/lperrin/negachess/pkg/square"
)

// knightOffsets and kingOffsets are (file delta, rank delta) pairs used
// to build the precomputed per-square tables at startup.
var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// Knight and King are lookup tables from a source square to its
// candidate destination bitboard, indexed by square.Square.
var Knight [square.N]bitboard.Board
var King [square.N]bitboard.Board

func init() {
	for s := square.A1; s <= square.H8; s++ {
		Knight[s] = offsets(s, knightOffsets[:])
		King[s] = offsets(s, kingOffsets[:])
	}
}

// offsets builds the destination bitboard of a source square given a
// set of (file, rank) deltas, clipping any destination that would step
// off the board or wrap around a file edge.
func offsets(s square.Square, deltas [][2]int) bitboard.Board {
	var dest bitboard.Board

	file := int(s.File())
	rank := int(s.Rank())

	for _, d := range deltas {
		df, dr := file+d[0], rank+d[1]
		if df < 0 || df > 7 || dr < 0 || dr > 7 {
			continue
		}
		dest.Set(square.New(square.File(df), square.Rank(dr)))
	}

	return dest
}
