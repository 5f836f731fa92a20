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
	"github.com/lperrin/negachess/pkg/attacks"
	"github.com/lperrin/negachess/pkg/piece"
	"github.com/lperrin/negachess/pkg/square"
)

// IsAttacked reports whether sq is attacked by the given side, i.e.
// whether some pseudo-legal attack (not move) of that side's pieces
// reaches it. The occupancy used for slider rays excludes sq itself,
// so a piece standing there — most commonly the king whose own safety
// is being tested — doesn't block a ray attacking through it.
func IsAttacked(sq square.Square, pos *Position, by piece.Color) bool {
	attacker := pos.Side(by)

	occ := pos.Occupancy()
	occ.Clear(sq)

	if attacks.Knight[sq]&attacker.Knights != 0 {
		return true
	}
	if attacks.King[sq]&attacker.King != 0 {
		return true
	}
	if attacks.Attack[by.Other()][sq]&attacker.Pawns != 0 {
		return true
	}
	if attacks.Bishop(sq, occ)&(attacker.Bishops|attacker.Queens) != 0 {
		return true
	}
	if attacks.Rook(sq, occ)&(attacker.Rooks|attacker.Queens) != 0 {
		return true
	}

	return false
}
