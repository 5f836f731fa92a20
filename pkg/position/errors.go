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

import "errors"

// ErrPieceNotFound is returned when the from square is empty, off the
// board, or holds the opponent's piece.
var ErrPieceNotFound = errors.New("position: piece not found")

// ErrInvalidMove is returned when the geometry is wrong, the
// destination is blocked, a special-move precondition is unmet, or the
// move would leave the mover's own king in check.
var ErrInvalidMove = errors.New("position: invalid move")
