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

// Move is a single chess move: source and destination square, an optional
// promotion piece type, and whether it is a castling move. Unlike a packed
// bitfield encoding (useful once move ordering and search need a sort key),
// Move here is a plain struct with structural equality and order, matching
// what a pure move generator - with no search attached - actually needs.
type Move struct {
	Src       Square
	Dest      Square
	Promotion PieceType // PtNone when there is no promotion
	IsCastle  bool
}

// NewMove builds a normal, non-promoting, non-castling move.
func NewMove(src, dest Square) Move {
	return Move{Src: src, Dest: dest, Promotion: PtNone}
}

// Less gives Move a total order: by source square, then destination
// square, then promotion type, then castle flag. Used only to make move
// lists comparable in tests; the move generator itself makes no ordering
// guarantee beyond determinism (see movegen package).
func (m Move) Less(other Move) bool {
	if m.Src != other.Src {
		return less(m.Src, other.Src)
	}
	if m.Dest != other.Dest {
		return less(m.Dest, other.Dest)
	}
	if m.Promotion != other.Promotion {
		return m.Promotion < other.Promotion
	}
	return !m.IsCastle && other.IsCastle
}

func less(a, b Square) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// String renders the move in long algebraic notation, e.g. "e2e4" or
// "e7e8q" for a promotion.
func (m Move) String() string {
	if m.Promotion != PtNone {
		return fmt.Sprintf("%s%s%c", m.Src, m.Dest, lower(m.Promotion.Char()))
	}
	return fmt.Sprintf("%s%s", m.Src, m.Dest)
}

func lower(ch byte) byte {
	if ch >= 'A' && ch <= 'Z' {
		return ch - 'A' + 'a'
	}
	return ch
}
