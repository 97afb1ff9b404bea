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

// PieceType enumerates the six chess piece types. PtNone marks an empty
// square.
type PieceType uint8

const (
	PtNone PieceType = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
	PtLength
)

var pieceTypeToChar = [PtLength]byte{'-', 'K', 'Q', 'R', 'B', 'N', 'P'}

// Char returns the upper-case FEN letter for the piece type, or '-' for
// PtNone.
func (pt PieceType) Char() byte {
	if pt >= PtLength {
		return '-'
	}
	return pieceTypeToChar[pt]
}

// IsValid reports whether pt is a real piece type (excludes PtNone).
func (pt PieceType) IsValid() bool {
	return pt > PtNone && pt < PtLength
}

// String returns the piece type's name.
func (pt PieceType) String() string {
	switch pt {
	case King:
		return "King"
	case Queen:
		return "Queen"
	case Rook:
		return "Rook"
	case Bishop:
		return "Bishop"
	case Knight:
		return "Knight"
	case Pawn:
		return "Pawn"
	default:
		return "None"
	}
}
