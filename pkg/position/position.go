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
	"github.com/lperrin/negachess/pkg/bitboard"
	"github.com/lperrin/negachess/pkg/piece"
)

// Position is a pair of Sides. Like Side, it is a plain value type: a
// Go struct assignment is a full, independent clone, which is what the
// search relies on for its clone-per-tentative-move discipline.
type Position struct {
	White Side
	Black Side
}

// New returns the standard starting position.
func New() Position {
	return Position{
		White: NewSide(piece.White),
		Black: NewSide(piece.Black),
	}
}

// Clone returns an independent copy of the position.
func (p *Position) Clone() Position {
	return *p
}

// Side returns a pointer to the Side of the given color.
func (p *Position) Side(c piece.Color) *Side {
	switch c {
	case piece.White:
		return &p.White
	case piece.Black:
		return &p.Black
	default:
		panic("position: bad color")
	}
}

// Occupancy returns the union of both sides' pieces.
func (p *Position) Occupancy() bitboard.Board {
	return p.White.All | p.Black.All
}

// IsTerminal reports whether either king has been captured. Per this
// engine's simplified termination rule, that — and not checkmate,
// stalemate, or any draw condition — is the sole end-of-game test.
func (p *Position) IsTerminal() bool {
	return p.White.King == bitboard.Empty || p.Black.King == bitboard.Empty
}
