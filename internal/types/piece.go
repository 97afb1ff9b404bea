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

// PieceFromChar maps a single FEN placement-field character to its color
// and piece type. Lower-case is Black, upper-case is White. ok is false for
// any character that is not one of "kqrbnpKQRBNP".
func PieceFromChar(ch byte) (c Color, pt PieceType, ok bool) {
	c = White
	lower := ch
	if ch >= 'a' && ch <= 'z' {
		c = Black
	} else if ch >= 'A' && ch <= 'Z' {
		lower = ch - 'A' + 'a'
	}
	switch lower {
	case 'k':
		return c, King, true
	case 'q':
		return c, Queen, true
	case 'r':
		return c, Rook, true
	case 'b':
		return c, Bishop, true
	case 'n':
		return c, Knight, true
	case 'p':
		return c, Pawn, true
	default:
		return c, PtNone, false
	}
}
