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

package cli

import (
	"fmt"

	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"

	"github.com/lperrin/negachess/pkg/piece"
	"github.com/lperrin/negachess/pkg/position"
	"github.com/lperrin/negachess/pkg/square"
)

// glyphs maps each (color, kind) to the Unicode chess glyph drawn on
// the board. Empty squares render as a single middle dot.
var glyphs = map[piece.Color]map[piece.Kind]string{
	piece.White: {
		piece.Pawn: "♙", piece.Knight: "♘", piece.Bishop: "♗",
		piece.Rook: "♖", piece.Queen: "♕", piece.King: "♔",
	},
	piece.Black: {
		piece.Pawn: "♟", piece.Knight: "♞", piece.Bishop: "♝",
		piece.Rook: "♜", piece.Queen: "♛", piece.King: "♚",
	},
}

// boardUI is a termui session that lives for the whole game: it is
// initialized once before the first move and torn down once, on exit,
// rather than around each render. termui puts the terminal into its
// own raw/alternate-screen mode for as long as it is initialized, so
// bouncing Init/Close every move would discard the just-drawn frame
// the instant render returned — before "White plays ..." and the
// Black prompt were ever written — and would flip the terminal's mode
// out from under every bufio-driven stdin read in between.
type boardUI struct {
	table *widgets.Table
}

// newBoardUI starts termui for the session. A caller that gets an
// error back should fall back to Game.printPlain for the rest of the
// session instead of retrying per move — the terminal can't run
// termui (e.g. stdout is redirected to a file, as a test harness
// would do), and that isn't going to change between moves.
func newBoardUI() (*boardUI, error) {
	if err := ui.Init(); err != nil {
		return nil, fmt.Errorf("cli: terminal init: %w", err)
	}

	table := widgets.NewTable()
	table.Title = "negachess"
	table.RowSeparator = false
	table.FillRow = true
	table.TextAlignment = ui.AlignCenter

	width, height := ui.TerminalDimensions()
	table.SetRect(0, 0, width, height)

	return &boardUI{table: table}, nil
}

// close tears termui down, restoring the terminal to its prior mode.
// Callers must call this exactly once, when the game session ends.
func (b *boardUI) close() {
	ui.Close()
}

// render draws pos as an 8x8 table, rank 8 at the top, file a at the
// left, matching the layout a player reads a physical board in, and
// flushes it to the still-initialized terminal.
func (b *boardUI) render(pos *position.Position) {
	rows := make([][]string, 0, 9)
	for rank := square.Rank8; ; rank-- {
		row := []string{fmt.Sprintf("%d", rank+1)}
		for file := square.FileA; file <= square.FileH; file++ {
			row = append(row, cellFor(pos, square.New(file, rank)))
		}
		rows = append(rows, row)
		if rank == square.Rank1 {
			break
		}
	}
	rows = append(rows, []string{" ", "a", "b", "c", "d", "e", "f", "g", "h"})
	b.table.Rows = rows

	ui.Render(b.table)
}

// cellFor returns the glyph (or a placeholder dot) for the piece, if
// any, standing on sq in either side of pos.
func cellFor(pos *position.Position, sq square.Square) string {
	if kind := pos.White.PieceAt(sq); kind != piece.None {
		return glyphs[piece.White][kind]
	}
	if kind := pos.Black.PieceAt(sq); kind != piece.None {
		return glyphs[piece.Black][kind]
	}
	return "·"
}
