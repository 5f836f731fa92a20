package position_test

import (
	"testing"

	"github.com/lperrin/negachess/pkg/bitboard"
	"github.com/lperrin/negachess/pkg/piece"
	"github.com/lperrin/negachess/pkg/position"
	"github.com/lperrin/negachess/pkg/square"
)

func TestStartingPositionInvariants(t *testing.T) {
	pos := position.New()
	checkInvariants(t, &pos)
}

// checkInvariants verifies §8 invariants 1-4: per-side bitboard
// disjointness, cross-side occupancy disjointness, exactly one king
// per side, and no pawns on the back ranks.
func checkInvariants(t *testing.T, pos *position.Position) {
	t.Helper()

	for _, side := range []*position.Side{&pos.White, &pos.Black} {
		kinds := []bitboard.Board{side.Pawns, side.Knights, side.Bishops, side.Rooks, side.Queens, side.King}
		for i := range kinds {
			for j := i + 1; j < len(kinds); j++ {
				if kinds[i]&kinds[j] != 0 {
					t.Errorf("%v side has overlapping piece-kind bitboards %d and %d", side.Color, i, j)
				}
			}
		}

		if got := side.King.Popcount(); got != 1 {
			t.Errorf("%v side has %d kings, want 1", side.Color, got)
		}

		if side.Pawns&(bitboard.Rank1|bitboard.Rank8) != 0 {
			t.Errorf("%v side has a pawn on rank 1 or 8", side.Color)
		}
	}

	if pos.White.All&pos.Black.All != 0 {
		t.Error("White and Black occupancy overlap")
	}
}

func TestPawnDoublePushThenSinglePushes(t *testing.T) {
	pos := position.New()

	must(t, &pos, square.E2, square.E4, piece.White)
	must(t, &pos, square.D2, square.D3, piece.White)

	// d4 is empty, so this push only tests blocking logic, not turn
	// order (PerformMove does not itself track whose turn it is).
	must(t, &pos, square.D3, square.D4, piece.White)
}

func TestPawnBlockedByOccupant(t *testing.T) {
	pos := position.New()
	must(t, &pos, square.E2, square.E4, piece.White)

	if err := position.PerformMove(&pos, square.E7, square.E5, piece.Black); err != nil {
		t.Fatalf("e7e5 should be legal: %v", err)
	}

	// e5's pawn cannot push onto e4, which White now occupies.
	if err := position.PerformMove(&pos, square.E5, square.E4, piece.Black); err == nil {
		t.Error("e5e4 should be rejected: e4 is occupied by White's pawn")
	}
}

func TestKnightMove(t *testing.T) {
	pos := position.New()
	if err := position.PerformMove(&pos, square.G1, square.F3, piece.White); err != nil {
		t.Fatalf("g1f3 should be legal: %v", err)
	}
	if pos.White.PieceAt(square.F3) != piece.Knight {
		t.Error("knight should now be on f3")
	}
	if pos.White.PieceAt(square.G1) != piece.None {
		t.Error("g1 should now be empty")
	}
}

func TestRejectedMoveDoesNotMutatePosition(t *testing.T) {
	pos := position.New()
	before := pos

	if err := position.PerformMove(&pos, square.A2, square.A5, piece.White); err == nil {
		t.Fatal("a2a5 is not a legal pawn move and should be rejected")
	}

	if pos != before {
		t.Error("a rejected move must not mutate the position")
	}
}

func TestShortCastleWhite(t *testing.T) {
	pos := position.New()
	clearSquare(&pos.White, square.F1)
	clearSquare(&pos.White, square.G1)

	if err := position.PerformMove(&pos, square.E1, square.G1, piece.White); err != nil {
		t.Fatalf("O-O should be legal with f1/g1 cleared: %v", err)
	}

	if pos.White.PieceAt(square.G1) != piece.King {
		t.Error("king should be on g1 after O-O")
	}
	if pos.White.PieceAt(square.F1) != piece.Rook {
		t.Error("rook should be on f1 after O-O")
	}
	if pos.White.PieceAt(square.H1) != piece.None {
		t.Error("h1 should be empty after O-O")
	}
}

func TestCastleRejectedAfterKingMoved(t *testing.T) {
	pos := position.New()
	clearSquare(&pos.White, square.F1)
	clearSquare(&pos.White, square.G1)

	// king shuffles out and back, setting KingMoved
	must(t, &pos, square.E1, square.F1, piece.White)
	must(t, &pos, square.F1, square.E1, piece.White)

	if err := position.PerformMove(&pos, square.E1, square.G1, piece.White); err == nil {
		t.Error("castling should be rejected once the king has moved")
	}
}

func TestCastleRejectedThroughOccupiedSquare(t *testing.T) {
	pos := position.New()
	clearSquare(&pos.White, square.G1)
	// leave the bishop on f1, blocking the castle

	if err := position.PerformMove(&pos, square.E1, square.G1, piece.White); err == nil {
		t.Error("O-O should be rejected while f1 is occupied")
	}
}

func TestEnPassant(t *testing.T) {
	pos := position.New()
	must(t, &pos, square.E2, square.E4, piece.White)
	must(t, &pos, square.A7, square.A6, piece.Black)
	must(t, &pos, square.E4, square.E5, piece.White)
	must(t, &pos, square.F7, square.F5, piece.Black)

	if err := position.PerformMove(&pos, square.E5, square.F6, piece.White); err != nil {
		t.Fatalf("e5xf6 en passant should be legal: %v", err)
	}
	if pos.White.PieceAt(square.F6) != piece.Pawn {
		t.Error("White pawn should be on f6 after en passant")
	}
	if pos.Black.PieceAt(square.F5) != piece.None {
		t.Error("captured Black pawn should be removed from f5")
	}
}

func TestSelfCheckRejected(t *testing.T) {
	pos := bareKings(square.E1, square.H8)
	placeSquare(&pos.White, piece.Bishop, square.E2)
	placeSquare(&pos.Black, piece.Rook, square.E8)

	if err := position.PerformMove(&pos, square.E2, square.D3, piece.White); err == nil {
		t.Error("moving the bishop off the e-file should expose the king to the rook and be rejected")
	}

	// the bishop cannot stay on the e-file either: e2e3 is not a
	// diagonal step, so it is rejected before king safety is tested.
	if err := position.PerformMove(&pos, square.E2, square.E3, piece.White); err == nil {
		t.Error("bishops cannot move straight ahead; e2e3 is not even pseudo-legal")
	}
}

// bareKings returns a position with only the two kings, placed on the
// given squares, for tests that build up a minimal custom scenario.
func bareKings(white, black square.Square) position.Position {
	pos := position.New()
	for sq := square.A1; sq <= square.H8; sq++ {
		if pos.White.PieceAt(sq) != piece.None {
			clearSquare(&pos.White, sq)
		}
		if pos.Black.PieceAt(sq) != piece.None {
			clearSquare(&pos.Black, sq)
		}
	}
	placeSquare(&pos.White, piece.King, white)
	placeSquare(&pos.Black, piece.King, black)
	return pos
}

// clearSquare removes whatever piece side has on sq, updating both the
// per-kind bitboard and All, mirroring the package-private Side.remove
// using only the exported field surface.
func clearSquare(side *position.Side, sq square.Square) {
	switch side.PieceAt(sq) {
	case piece.Pawn:
		side.Pawns.Clear(sq)
	case piece.Knight:
		side.Knights.Clear(sq)
	case piece.Bishop:
		side.Bishops.Clear(sq)
	case piece.Rook:
		side.Rooks.Clear(sq)
	case piece.Queen:
		side.Queens.Clear(sq)
	case piece.King:
		side.King.Clear(sq)
	default:
		return
	}
	side.All.Clear(sq)
}

// placeSquare sets a piece of the given kind on sq, updating both the
// per-kind bitboard and All.
func placeSquare(side *position.Side, k piece.Kind, sq square.Square) {
	switch k {
	case piece.Pawn:
		side.Pawns.Set(sq)
	case piece.Knight:
		side.Knights.Set(sq)
	case piece.Bishop:
		side.Bishops.Set(sq)
	case piece.Rook:
		side.Rooks.Set(sq)
	case piece.Queen:
		side.Queens.Set(sq)
	case piece.King:
		side.King.Set(sq)
	default:
		return
	}
	side.All.Set(sq)
}

func must(t *testing.T, pos *position.Position, from, to square.Square, c piece.Color) {
	t.Helper()
	if err := position.PerformMove(pos, from, to, c); err != nil {
		t.Fatalf("%s%s should be legal: %v", from, to, err)
	}
}
