//
// knightmare - bitboard chess move-generation core
//
// MIT License
//
// Copyright (c) 2026 The knightmare authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package types holds the board geometry primitives and the value types
// shared by every layer of the move generator: bitboards, squares, colors,
// piece types, castling rights and moves.
package types

import (
	"math/bits"
	"strings"
)

// Bitboard is a 64-bit occupancy mask. Bit i corresponds to exactly one
// square: bit 63 is (x=0,y=0), bit 56 is (x=7,y=0), bit 0 is (x=7,y=7).
// See CoordsToBb for the exact mapping.
type Bitboard uint64

// Edge masks used throughout ray generation and magic-table relevant-mask
// computation.
const (
	ColumnLeft  Bitboard = 0x8080808080808080 // file a
	ColumnRight Bitboard = ColumnLeft >> 7     // file h
	RowTop      Bitboard = 0xFF00000000000000 // rank 1 (y=0, the high byte)
	RowBottom   Bitboard = 0x00000000000000FF // rank 8 (y=7, the low byte)

	verticalZerosRight Bitboard = 0xFEFEFEFEFEFEFEFE
	verticalZerosLeft  Bitboard = 0x7F7F7F7F7F7F7F7F
)

// Empty and Full are the zero and all-ones bitboards.
const (
	Empty Bitboard = 0
	Full  Bitboard = 0xFFFFFFFFFFFFFFFF
)

// Has reports whether b has bit set at square (x,y).
func (b Bitboard) Has(x, y uint8) bool {
	return b&CoordsToBb(x, y) != 0
}

// PopCount returns the number of set bits.
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// Clz returns the count of leading zero bits, i.e. the "right shift" value
// of the highest-indexed set bit (see RightShiftToCoords). Clz(0) == 64.
func (b Bitboard) Clz() int {
	return bits.LeadingZeros64(uint64(b))
}

// Ctz returns the count of trailing zero bits of b. Ctz(0) == 64.
func (b Bitboard) Ctz() int {
	return bits.TrailingZeros64(uint64(b))
}

// PopHighestBit clears and returns the highest-indexed set bit of b (the
// bit found by Clz), along with the remaining bitboard. Panics if b is
// empty; callers must check b != 0 first, matching the bit-scan idiom used
// throughout the move generator (§4.7, §9 "Bit-scan iteration").
func (b Bitboard) PopHighestBit() (bit Bitboard, rest Bitboard) {
	if b == 0 {
		panic("types: PopHighestBit called on an empty bitboard")
	}
	s := b.Clz()
	bit = RsToBb(uint32(s))
	rest = b &^ bit
	return bit, rest
}

// String renders the bitboard as a hex literal.
func (b Bitboard) String() string {
	var sb strings.Builder
	sb.WriteString("0x")
	const hexDigits = "0123456789abcdef"
	for shift := 60; shift >= 0; shift -= 4 {
		sb.WriteByte(hexDigits[(uint64(b)>>uint(shift))&0xF])
	}
	return sb.String()
}

// StringBoard renders the bitboard as an 8x8 glyph grid for diagnostics,
// file indices across the top and rank labels down the side, rank 8
// printed first. Filled squares are drawn solid, empty squares hollow.
func (b Bitboard) StringBoard() string {
	var sb strings.Builder
	sb.WriteString("  a b c d e f g h\n")
	for y := int8(7); y >= 0; y-- {
		sb.WriteByte(byte('1' + y))
		sb.WriteByte(' ')
		for x := uint8(0); x < 8; x++ {
			if b.Has(x, uint8(y)) {
				sb.WriteString("◼ ")
			} else {
				sb.WriteString("◻ ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
