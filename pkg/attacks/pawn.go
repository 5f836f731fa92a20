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
	"github.com/lperrin/negachess/pkg/piece"
	"github.com/lperrin/negachess/pkg/square"
)

// Attack is a lookup table of pure pawn attack (diagonal capture)
// patterns, indexed [color][square]. It is independent of occupancy:
// it reports the squares a pawn of that color threatens, used by
// IsAttacked and by move generation's candidate destinations.
var Attack [piece.N][square.N]bitboard.Board

func init() {
	for s := square.A1; s <= square.H8; s++ {
		file, rank := int(s.File()), int(s.Rank())

		var white, black bitboard.Board
		for _, df := range [2]int{-1, 1} {
			if f := file + df; f >= 0 && f <= 7 {
				if rank+1 <= 7 {
					white.Set(square.New(square.File(f), square.Rank(rank+1)))
				}
				if rank-1 >= 0 {
					black.Set(square.New(square.File(f), square.Rank(rank-1)))
				}
			}
		}

		Attack[piece.White][s] = white
		Attack[piece.Black][s] = black
	}
}

// Pawn returns the candidate destination bitboard of a pawn of the
// given color on square s, given the board occupancy. The single and
// double forward pushes are subject to occupancy (a pawn cannot jump
// over or land on an occupied square); the diagonal attack squares are
// included unconditionally, as for every other piece kind in this
// package — whether they hold an actual capture is resolved later.
func Pawn(s square.Square, occ bitboard.Board, c piece.Color) bitboard.Board {
	var dest bitboard.Board

	file, rank := int(s.File()), int(s.Rank())

	var forward, startRank int
	switch c {
	case piece.White:
		forward, startRank = 1, 1
	case piece.Black:
		forward, startRank = -1, 6
	default:
		panic("attacks: bad color")
	}

	oneRank := rank + forward
	if oneRank >= 0 && oneRank <= 7 {
		one := square.New(square.File(file), square.Rank(oneRank))
		if !occ.Test(one) {
			dest.Set(one)

			if rank == startRank {
				twoRank := rank + 2*forward
				two := square.New(square.File(file), square.Rank(twoRank))
				if !occ.Test(two) {
					dest.Set(two)
				}
			}
		}
	}

	dest |= Attack[c][s]
	return dest
}
