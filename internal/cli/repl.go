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

// Package cli implements the interactive game loop: the engine always
// plays White via pkg/search, the user always plays Black by typing
// two algebraic squares, and the board is rendered once per round,
// before the engine moves, and again when the game ends.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lperrin/negachess/pkg/piece"
	"github.com/lperrin/negachess/pkg/position"
	"github.com/lperrin/negachess/pkg/search"
	"github.com/lperrin/negachess/pkg/square"
)

// Game is a single human (Black) versus engine (White) session.
type Game struct {
	stdin  io.Reader
	stdout io.Writer
	reader *bufio.Reader
	pos    position.Position
	ui     *boardUI // nil when the terminal can't run termui
}

// NewGame creates a Game on the standard starting position, reading
// moves from in and writing the board and prompts to out.
func NewGame(in io.Reader, out io.Writer) *Game {
	return &Game{stdin: in, stdout: out, reader: bufio.NewReader(in), pos: position.New()}
}

// Run plays the game to completion: White (the engine) moves first
// each round via search.BestMove, then Black (the user) is prompted
// for a move, re-prompting on any invalid input. The loop ends when
// either king is captured or the user quits.
func (g *Game) Run() error {
	g.startUI()
	defer g.stopUI()

	for {
		g.render()

		if g.pos.IsTerminal() {
			fmt.Fprintln(g.stdout, "game over")
			return nil
		}

		result, err := search.BestMove(&g.pos)
		if err != nil {
			return fmt.Errorf("cli: engine has no legal move: %w", err)
		}
		if err := position.PerformMove(&g.pos, result.From, result.To, piece.White); err != nil {
			return fmt.Errorf("cli: engine chose an illegal move %s%s: %w", result.From, result.To, err)
		}
		fmt.Fprintf(g.stdout, "White plays %s%s\n", result.From, result.To)

		if g.pos.IsTerminal() {
			g.render()
			fmt.Fprintln(g.stdout, "game over")
			return nil
		}

		if err := g.promptBlackMove(); err != nil {
			if err == errDone {
				return nil
			}
			return err
		}
	}
}

// startUI brings up the session's termui board once; a terminal that
// can't run it (e.g. stdout redirected to a file) falls back to
// printPlain for every render instead of retrying termui each move.
func (g *Game) startUI() {
	ui, err := newBoardUI()
	if err != nil {
		return
	}
	g.ui = ui
}

// stopUI tears the session's termui board back down, if it was started.
func (g *Game) stopUI() {
	if g.ui == nil {
		return
	}
	g.ui.close()
	g.ui = nil
}

// render draws the current position on whichever board the session
// has: the persistent termui table if startUI succeeded, or a plain
// text dump otherwise.
func (g *Game) render() {
	if g.ui != nil {
		g.ui.render(&g.pos)
		return
	}
	g.printPlain()
}

// errDone signals that the user asked to quit mid-prompt.
var errDone = fmt.Errorf("cli: quit requested")

// promptBlackMove reads and applies Black's move, re-prompting on any
// invalid input, until a legal move is played or the user quits.
func (g *Game) promptBlackMove() error {
	for {
		from, quit, err := readSquare(g.stdout, g.reader, "from")
		if quit {
			return errDone
		}
		if err != nil {
			fmt.Fprintln(g.stdout, err)
			continue
		}

		to, quit, err := readSquare(g.stdout, g.reader, "to")
		if quit {
			return errDone
		}
		if err != nil {
			fmt.Fprintln(g.stdout, err)
			continue
		}

		if err := position.PerformMove(&g.pos, from, to, piece.Black); err != nil {
			fmt.Fprintln(g.stdout, "illegal move, try again:", err)
			continue
		}
		return nil
	}
}

// readSquare prompts for and reads a single algebraic square on its
// own line (per §6, the user supplies two lines per turn), or reports
// that the user asked to quit.
func readSquare(out io.Writer, reader *bufio.Reader, which string) (sq square.Square, quit bool, err error) {
	fmt.Fprintf(out, "%s square (or quit): ", which)
	line, err := reader.ReadString('\n')
	if err != nil {
		return square.None, false, err
	}

	line = strings.ToLower(strings.TrimSpace(line))
	if line == "quit" || line == "exit" {
		return square.None, true, nil
	}

	if !validSquareText(line) {
		return square.None, false, fmt.Errorf("cli: expected a square like e4, got %q", line)
	}

	sq = square.NewFromString(line)
	if !sq.Valid() {
		return square.None, false, fmt.Errorf("cli: invalid square %q", line)
	}

	return sq, false, nil
}

// validSquareText reports whether s is a two-character algebraic
// square identifier, e.g. "e4", before it is handed to
// square.NewFromString, which assumes well-formed input.
func validSquareText(s string) bool {
	return len(s) == 2 && s[0] >= 'a' && s[0] <= 'h' && s[1] >= '1' && s[1] <= '8'
}

// printPlain is the headless fallback board dump used when the
// terminal can't support termui (e.g. when stdout is redirected).
func (g *Game) printPlain() {
	for rank := square.Rank8; ; rank-- {
		for file := square.FileA; file <= square.FileH; file++ {
			fmt.Fprint(g.stdout, cellFor(&g.pos, square.New(file, rank)), " ")
		}
		fmt.Fprintln(g.stdout)
		if rank == square.Rank1 {
			break
		}
	}
}
