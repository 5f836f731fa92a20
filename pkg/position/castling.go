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
	"github.com/lperrin/negachess/pkg/bitboard"
	"github.com/lperrin/negachess/pkg/square"
)

// castleInfo describes one of the four castling moves: where the rook
// starts and ends up, which square the king crosses over (and so must
// not be attacked, along with its origin and destination), and which
// squares between the king and rook's starting squares must be empty.
type castleInfo struct {
	RookFrom, RookTo square.Square
	CrossSquare      square.Square
	Between          bitboard.Board
	Left             bool // true for queenside (O-O-O)
}

// castling is a lookup table of castleInfo, indexed by the king's
// destination square.
var castling = map[square.Square]castleInfo{
	square.G1: {
		RookFrom: square.H1, RookTo: square.F1,
		CrossSquare: square.F1,
		Between:     between(square.F1, square.G1),
		Left:        false,
	},
	square.C1: {
		RookFrom: square.A1, RookTo: square.D1,
		CrossSquare: square.D1,
		Between:     between(square.B1, square.D1),
		Left:        true,
	},
	square.G8: {
		RookFrom: square.H8, RookTo: square.F8,
		CrossSquare: square.F8,
		Between:     between(square.F8, square.G8),
		Left:        false,
	},
	square.C8: {
		RookFrom: square.A8, RookTo: square.D8,
		CrossSquare: square.D8,
		Between:     between(square.B8, square.D8),
		Left:        true,
	},
}

// between builds a bitboard of every square from lo to hi inclusive,
// used to describe the squares that must be vacant for a castle.
func between(lo, hi square.Square) bitboard.Board {
	var b bitboard.Board
	for s := lo; s <= hi; s++ {
		b.Set(s)
	}
	return b
}
