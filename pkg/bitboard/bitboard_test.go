package bitboard_test

import (
	"testing"

	"github.com/lperrin/negachess/pkg/bitboard"
	"github.com/lperrin/negachess/pkg/square"
)

func TestSetClearTest(t *testing.T) {
	var b bitboard.Board

	b.Set(square.E4)
	if !b.Test(square.E4) {
		t.Fatal("E4 should be set")
	}
	if b.Test(square.D4) {
		t.Fatal("D4 should not be set")
	}

	b.Clear(square.E4)
	if b.Test(square.E4) {
		t.Fatal("E4 should be cleared")
	}
}

func TestSetClearNone(t *testing.T) {
	var b bitboard.Board
	b.Set(square.None)
	if b != bitboard.Empty {
		t.Fatalf("Set(None) mutated board: %v", b)
	}
	b.Clear(square.None)
	if b != bitboard.Empty {
		t.Fatalf("Clear(None) mutated board: %v", b)
	}
}

func TestPopcount(t *testing.T) {
	var b bitboard.Board
	b.Set(square.A1)
	b.Set(square.H8)
	b.Set(square.E4)
	if got := b.Popcount(); got != 3 {
		t.Errorf("Popcount() = %d, want 3", got)
	}
}

func TestLSBIndexAndPop(t *testing.T) {
	var b bitboard.Board
	b.Set(square.D4)
	b.Set(square.E4)

	if got := b.LSBIndex(); got != square.D4 {
		t.Errorf("LSBIndex() = %d, want D4", got)
	}

	first := b.Pop()
	if first != square.D4 {
		t.Errorf("Pop() = %d, want D4", first)
	}
	if b.Test(square.D4) {
		t.Error("D4 should have been cleared by Pop")
	}
	if !b.Test(square.E4) {
		t.Error("E4 should still be set after popping D4")
	}
}

func TestFileRankMasks(t *testing.T) {
	if bitboard.FileA.Popcount() != 8 {
		t.Errorf("FileA has %d bits, want 8", bitboard.FileA.Popcount())
	}
	if bitboard.Rank1.Popcount() != 8 {
		t.Errorf("Rank1 has %d bits, want 8", bitboard.Rank1.Popcount())
	}
	if !bitboard.FileA.Test(square.A1) || !bitboard.FileA.Test(square.A8) {
		t.Error("FileA should contain a1 and a8")
	}
	if !bitboard.Rank1.Test(square.A1) || !bitboard.Rank1.Test(square.H1) {
		t.Error("Rank1 should contain a1 and h1")
	}
}

func TestSquaresLookupIsSingletons(t *testing.T) {
	for s := square.A1; s <= square.H8; s++ {
		if got := bitboard.Squares[s].Popcount(); got != 1 {
			t.Errorf("Squares[%d] has %d bits set, want 1", s, got)
		}
		if !bitboard.Squares[s].Test(s) {
			t.Errorf("Squares[%d] does not contain square %d", s, s)
		}
	}
}
