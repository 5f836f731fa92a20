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

// Package position implements the bitboard position representation,
// move legality, move execution, and legal move generation.
package position

import (
	"github.com/lperrin/negachess/pkg/bitboard"
	"github.com/lperrin/negachess/pkg/piece"
	"github.com/lperrin/negachess/pkg/square"
)

// Side is one color's aggregate state: the seven per-kind bitboards
// (All is their union), the castling flags, and whether this side's
// king has ever been in check. A Side is a plain value type — cloning
// it is a regular struct copy, no deep-copy machinery required.
type Side struct {
	Color piece.Color

	All     bitboard.Board
	Pawns   bitboard.Board
	Knights bitboard.Board
	Bishops bitboard.Board
	Rooks   bitboard.Board
	Queens  bitboard.Board
	King    bitboard.Board

	KingMoved          bool
	LeftRookMoved      bool
	RightRookMoved     bool
	KingHasBeenInCheck bool
}

// NewSide returns the standard starting Side state for the given color.
func NewSide(c piece.Color) Side {
	var backRank, pawnRank square.Rank
	switch c {
	case piece.White:
		backRank, pawnRank = square.Rank1, square.Rank2
	case piece.Black:
		backRank, pawnRank = square.Rank8, square.Rank7
	default:
		panic("position: bad color")
	}

	s := Side{Color: c}

	for f := square.FileA; f <= square.FileH; f++ {
		s.Pawns.Set(square.New(f, pawnRank))
	}

	s.Knights.Set(square.New(square.FileB, backRank))
	s.Knights.Set(square.New(square.FileG, backRank))
	s.Bishops.Set(square.New(square.FileC, backRank))
	s.Bishops.Set(square.New(square.FileF, backRank))
	s.Rooks.Set(square.New(square.FileA, backRank))
	s.Rooks.Set(square.New(square.FileH, backRank))
	s.Queens.Set(square.New(square.FileD, backRank))
	s.King.Set(square.New(square.FileE, backRank))

	s.All = s.Pawns | s.Knights | s.Bishops | s.Rooks | s.Queens | s.King

	return s
}

// PieceAt returns the kind of piece this side has on s, or piece.None
// if this side has no piece there.
func (s *Side) PieceAt(sq square.Square) piece.Kind {
	switch {
	case !s.All.Test(sq):
		return piece.None
	case s.Pawns.Test(sq):
		return piece.Pawn
	case s.Knights.Test(sq):
		return piece.Knight
	case s.Bishops.Test(sq):
		return piece.Bishop
	case s.Rooks.Test(sq):
		return piece.Rook
	case s.Queens.Test(sq):
		return piece.Queen
	case s.King.Test(sq):
		return piece.King
	default:
		return piece.None
	}
}

// board returns a pointer to the bitboard holding pieces of the given
// kind, so callers can mutate it generically.
func (s *Side) board(k piece.Kind) *bitboard.Board {
	switch k {
	case piece.Pawn:
		return &s.Pawns
	case piece.Knight:
		return &s.Knights
	case piece.Bishop:
		return &s.Bishops
	case piece.Rook:
		return &s.Rooks
	case piece.Queen:
		return &s.Queens
	case piece.King:
		return &s.King
	default:
		panic("position: bad piece kind")
	}
}

// place sets a piece of kind k on sq, in both the kind bitboard and All.
func (s *Side) place(k piece.Kind, sq square.Square) {
	s.board(k).Set(sq)
	s.All.Set(sq)
}

// remove clears whatever piece this side has on sq, in both the kind
// bitboard and All. It is a no-op if the side has no piece there.
func (s *Side) remove(sq square.Square) {
	k := s.PieceAt(sq)
	if k == piece.None {
		return
	}
	s.board(k).Clear(sq)
	s.All.Clear(sq)
}
