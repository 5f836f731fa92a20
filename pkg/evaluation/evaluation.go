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

// Package evaluation implements the static position evaluator: a
// material count with a fixed bonus for the engine's own side.
package evaluation

import (
	"github.com/lperrin/negachess/pkg/piece"
	"github.com/lperrin/negachess/pkg/position"
)

// Eval is an evaluation score in pawns.
type Eval int

// piece values, in pawns.
const (
	ValuePawn   Eval = 1
	ValueKnight Eval = 3
	ValueBishop Eval = 3
	ValueRook   Eval = 5
	ValueQueen  Eval = 9
	ValueKing   Eval = 0
)

// WhiteBonus is granted to White irrespective of who is to move. This
// engine always plays White, so the bonus biases the search toward
// positions where White keeps its material edge even at leaf nodes
// that would otherwise look symmetric.
const WhiteBonus Eval = 10

// Evaluate returns the static score of pos from the given side's
// perspective: that side's material minus the opponent's, plus the
// White bonus if that side is White, or minus it if that side is Black.
func Evaluate(pos *position.Position, side piece.Color) Eval {
	white := material(&pos.White)
	black := material(&pos.Black)

	var score Eval
	if side == piece.White {
		score = white - black
	} else {
		score = black - white
	}

	if side == piece.White {
		score += WhiteBonus
	} else {
		score -= WhiteBonus
	}

	return score
}

// material sums the piece values of a single side.
func material(side *position.Side) Eval {
	return ValuePawn*Eval(side.Pawns.Popcount()) +
		ValueKnight*Eval(side.Knights.Popcount()) +
		ValueBishop*Eval(side.Bishops.Popcount()) +
		ValueRook*Eval(side.Rooks.Popcount()) +
		ValueQueen*Eval(side.Queens.Popcount()) +
		ValueKing*Eval(side.King.Popcount())
}
