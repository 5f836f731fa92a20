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
	"github.com/lperrin/negachess/pkg/piece"
	"github.com/lperrin/negachess/pkg/square"
)

// PromotionPiece is the fixed promotion target; the promotion piece
// kind is a parameter of the underlying design but is presently always
// Queen. Pawn and King are never valid promotion targets.
const PromotionPiece = piece.Queen

// plan describes the bitboard effect of an already-validated move. The
// same plan is applied twice: once to a clone, to test king safety,
// and once for real, to commit the move.
type plan struct {
	From, To  square.Square
	MoverKind piece.Kind
	PlaceKind piece.Kind
	CaptureSq square.Square // square.None if nothing is captured
	Castle    *castleInfo
}

// PerformMove validates and, if legal, executes moving the piece on
// `from` to `to` for the given color. It returns ErrPieceNotFound or
// ErrInvalidMove on failure, leaving the position unmodified.
func PerformMove(pos *Position, from, to square.Square, color piece.Color) error {
	side := pos.Side(color)
	opp := pos.Side(color.Other())

	kind := side.PieceAt(from)
	if kind == piece.None {
		return ErrPieceNotFound
	}

	occ := pos.Occupancy()
	if !pseudoLegal(kind, color, from, to, occ) {
		return ErrInvalidMove
	}

	df := int(to.File()) - int(from.File())
	dr := int(to.Rank()) - int(from.Rank())

	var mv plan
	switch {
	case kind == piece.Pawn && abs(df) == 1 && abs(dr) == 1 && !occ.Test(to):
		// single diagonal step onto an empty square: en passant or bust.
		if !validEnPassant(color, from, to, opp) {
			return ErrInvalidMove
		}
		captureSq := square.New(to.File(), from.Rank())
		mv = plan{From: from, To: to, MoverKind: piece.Pawn, PlaceKind: piece.Pawn, CaptureSq: captureSq}

	case kind == piece.Pawn && df == 0 && forwardOneRank(color, dr) && to.Rank() == lastRank(color) && !occ.Test(to):
		mv = plan{From: from, To: to, MoverKind: piece.Pawn, PlaceKind: PromotionPiece, CaptureSq: square.None}

	case kind == piece.King && castlingSignature(color, from, to):
		info, err := validCastle(color, from, to, pos)
		if err != nil {
			return err
		}
		mv = plan{From: from, To: to, MoverKind: piece.King, PlaceKind: piece.King, CaptureSq: square.None, Castle: info}

	default:
		if side.All.Test(to) {
			return ErrInvalidMove // blocked by own piece
		}
		if opp.King.Test(to) {
			return ErrInvalidMove // kings are never captured through normal means
		}

		switch kind {
		case piece.Pawn:
			if df == 0 {
				if occ.Test(to) {
					return ErrInvalidMove
				}
				if abs(dr) == 2 {
					mid := square.New(from.File(), square.Rank((int(from.Rank())+int(to.Rank()))/2))
					if occ.Test(mid) {
						return ErrInvalidMove
					}
				}
			} else if !opp.All.Test(to) {
				return ErrInvalidMove // diagonal step must be a real capture
			}

		case piece.King:
			if IsAttacked(to, pos, color.Other()) {
				return ErrInvalidMove // can't step into check
			}
		}

		captureSq := square.None
		if opp.All.Test(to) {
			captureSq = to
		}
		mv = plan{From: from, To: to, MoverKind: kind, PlaceKind: kind, CaptureSq: captureSq}
	}

	// king safety: try the move on a clone first.
	clone := pos.Clone()
	commit(&clone, color, mv)
	if IsAttacked(clone.Side(color).King.LSBIndex(), &clone, color.Other()) {
		return ErrInvalidMove
	}

	commit(pos, color, mv)
	updateFlags(pos, color, mv)
	return nil
}

// commit applies a validated plan's bitboard effects to pos.
func commit(pos *Position, color piece.Color, mv plan) {
	side := pos.Side(color)
	opp := pos.Side(color.Other())

	if mv.CaptureSq != square.None {
		opp.remove(mv.CaptureSq)
	}

	side.remove(mv.From)
	side.place(mv.PlaceKind, mv.To)

	if mv.Castle != nil {
		side.remove(mv.Castle.RookFrom)
		side.place(piece.Rook, mv.Castle.RookTo)
	}
}

// updateFlags updates the moved-piece and check-history flags after a
// real (non-clone) commit, and marks the opponent's king as having
// been in check if the move delivers one.
func updateFlags(pos *Position, color piece.Color, mv plan) {
	side := pos.Side(color)
	opp := pos.Side(color.Other())

	switch {
	case mv.MoverKind == piece.King:
		side.KingMoved = true
	case mv.MoverKind == piece.Rook:
		markRookMoved(side, color, mv.From)
	}

	if mv.Castle != nil {
		markRookMoved(side, color, mv.Castle.RookFrom)
	}

	if IsAttacked(opp.King.LSBIndex(), pos, color) {
		opp.KingHasBeenInCheck = true
	}
}

func markRookMoved(side *Side, color piece.Color, from square.Square) {
	switch from {
	case leftRookOrigin(color):
		side.LeftRookMoved = true
	case rightRookOrigin(color):
		side.RightRookMoved = true
	}
}

func leftRookOrigin(c piece.Color) square.Square {
	if c == piece.White {
		return square.A1
	}
	return square.A8
}

func rightRookOrigin(c piece.Color) square.Square {
	if c == piece.White {
		return square.H1
	}
	return square.H8
}

func forwardOneRank(c piece.Color, dr int) bool {
	if c == piece.White {
		return dr == 1
	}
	return dr == -1
}

func lastRank(c piece.Color) square.Rank {
	if c == piece.White {
		return square.Rank8
	}
	return square.Rank1
}

// validEnPassant implements the (deliberately loose) en passant
// correctness predicate of §4.4: it does not check that the opponent's
// pawn double-pushed on the immediately preceding move, only that the
// geometry and an adjacent opponent pawn exist.
func validEnPassant(color piece.Color, from, to square.Square, opp *Side) bool {
	switch color {
	case piece.White:
		if from.Rank() != square.Rank5 || to.Rank() != square.Rank6 {
			return false
		}
	case piece.Black:
		if from.Rank() != square.Rank4 || to.Rank() != square.Rank3 {
			return false
		}
	default:
		return false
	}

	adjacent := square.New(to.File(), from.Rank())
	return opp.Pawns.Test(adjacent)
}

// validCastle checks every castling precondition of §4.4 and returns
// the matching castleInfo, or ErrInvalidMove.
func validCastle(color piece.Color, from, to square.Square, pos *Position) (*castleInfo, error) {
	info, ok := castling[to]
	if !ok {
		return nil, ErrInvalidMove
	}

	side := pos.Side(color)
	if side.KingMoved || side.KingHasBeenInCheck {
		return nil, ErrInvalidMove
	}

	rookMoved := side.RightRookMoved
	if info.Left {
		rookMoved = side.LeftRookMoved
	}
	if !side.Rooks.Test(info.RookFrom) || rookMoved {
		return nil, ErrInvalidMove
	}

	if pos.Occupancy()&info.Between != 0 {
		return nil, ErrInvalidMove
	}

	opp := color.Other()
	for _, sq := range [3]square.Square{from, info.CrossSquare, to} {
		if IsAttacked(sq, pos, opp) {
			return nil, ErrInvalidMove
		}
	}

	return &info, nil
}
