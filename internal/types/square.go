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

package types

import "fmt"

// Square is a board coordinate, x (file, 0=a..7=h) and y (rank, 0=rank1..
// 7=rank8). The zero value is a1.
type Square struct {
	X, Y uint8
}

// SqNone is the distinguished invalid square.
var SqNone = Square{X: 8, Y: 8}

// NewSquare builds a Square from file/rank coordinates.
func NewSquare(x, y uint8) Square {
	return Square{X: x, Y: y}
}

// IsValid reports whether the square lies on the board.
func (s Square) IsValid() bool {
	return s.X < 8 && s.Y < 8
}

// Bb returns the single-bit bitboard for this square.
func (s Square) Bb() Bitboard {
	return CoordsToBb(s.X, s.Y)
}

// FromBb returns the square whose bit is set in a single-bit bitboard, via
// Clz and RightShiftToCoords. Panics if bb is not a single-bit board.
func FromBb(bb Bitboard) Square {
	if bb == 0 || bb&(bb-1) != 0 {
		panic("types: FromBb requires exactly one set bit")
	}
	x, y := RightShiftToCoords(uint8(bb.Clz()))
	return Square{X: x, Y: y}
}

// String renders the square in algebraic notation, e.g. "e4", or "-" if
// invalid.
func (s Square) String() string {
	if !s.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+s.X, '1'+s.Y)
}

// MakeSquare parses algebraic notation ("e4") into a Square, returning
// SqNone on any malformed input.
func MakeSquare(str string) Square {
	if len(str) != 2 {
		return SqNone
	}
	file := str[0]
	rank := str[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return SqNone
	}
	return Square{X: file - 'a', Y: rank - '1'}
}
