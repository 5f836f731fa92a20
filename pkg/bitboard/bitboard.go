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

// Package bitboard implements a 64-bit bitboard and related operations
// over square indices.
package bitboard

import (
	"math/bits"

	"github.com/lperrin/negachess/pkg/square"
)

// Board is a 64-bit bitboard; bit i set means square i is occupied.
type Board uint64

// Empty and Universe are the all-clear and all-set bitboards.
const (
	Empty    Board = 0
	Universe Board = 0xffffffffffffffff
)

// Set sets the given square in the bitboard. Setting square.None is a
// no-op.
func (b *Board) Set(s square.Square) {
	if s == square.None {
		return
	}
	*b |= Squares[s]
}

// Clear clears the given square in the bitboard. Clearing square.None
// is a no-op.
func (b *Board) Clear(s square.Square) {
	if s == square.None {
		return
	}
	*b &^= Squares[s]
}

// Test reports whether the given square is set in the bitboard.
func (b Board) Test(s square.Square) bool {
	return b&Squares[s] != 0
}

// Popcount returns the number of set bits in the bitboard.
func (b Board) Popcount() int {
	return bits.OnesCount64(uint64(b))
}

// LSBIndex returns the square of the lowest set bit in the bitboard.
// The result is meaningless if the bitboard is empty.
func (b Board) LSBIndex() square.Square {
	return square.Square(bits.TrailingZeros64(uint64(b)))
}

// Pop returns the square of the lowest set bit and clears it.
func (b *Board) Pop() square.Square {
	s := b.LSBIndex()
	*b &= *b - 1
	return s
}

// String renders the bitboard as an 8x8 grid of 1s and 0s, rank 8 first.
func (b Board) String() string {
	var str string
	for r := square.Rank8; ; r-- {
		for f := square.FileA; f <= square.FileH; f++ {
			if b.Test(square.New(f, r)) {
				str += "1"
			} else {
				str += "0"
			}
			if f != square.FileH {
				str += " "
			}
		}
		str += "\n"
		if r == square.Rank1 {
			break
		}
	}
	return str
}
