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

// CastlingRights is a four-bit set, one bit per color per side. The
// source this core is adapted from tracks only a single short/long pair
// shared by both colors, which cannot represent "white has lost kingside
// rights but black has not" - insufficient for a correct board state. This
// splits rights per color, the only choice that can express every legal
// castling-rights configuration.
type CastlingRights uint8

const (
	CastlingNone     CastlingRights = 0
	CastlingWhiteOO  CastlingRights = 1 << 0
	CastlingWhiteOOO CastlingRights = 1 << 1
	CastlingBlackOO  CastlingRights = 1 << 2
	CastlingBlackOOO CastlingRights = 1 << 3
)

const (
	CastlingWhite = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlack = CastlingBlackOO | CastlingBlackOOO
	CastlingAny   = CastlingWhite | CastlingBlack
)

// Has reports whether all bits in flag are set.
func (cr CastlingRights) Has(flag CastlingRights) bool {
	return cr&flag == flag
}

// Add sets the given bits.
func (cr CastlingRights) Add(flag CastlingRights) CastlingRights {
	return cr | flag
}

// Remove clears the given bits.
func (cr CastlingRights) Remove(flag CastlingRights) CastlingRights {
	return cr &^ flag
}

// String renders castling rights in FEN order, e.g. "KQkq", "-" if none.
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	buf := make([]byte, 0, 4)
	if cr.Has(CastlingWhiteOO) {
		buf = append(buf, 'K')
	}
	if cr.Has(CastlingWhiteOOO) {
		buf = append(buf, 'Q')
	}
	if cr.Has(CastlingBlackOO) {
		buf = append(buf, 'k')
	}
	if cr.Has(CastlingBlackOOO) {
		buf = append(buf, 'q')
	}
	return string(buf)
}
