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

// Package position holds the board representation the move generator
// reads from: piece and color bitboards, side to move, castling rights
// and en-passant target. Construct one with NewInitial or TryFromFEN.
package position

import (
	"fmt"
	"strings"

	"github.com/warp-records/knightmare/internal/assert"
	"github.com/warp-records/knightmare/internal/types"
)

// State is the board a move generator operates on. Mutation (applying a
// move) is out of scope; a State is built once by NewInitial or
// TryFromFEN and read by the generator thereafter.
type State struct {
	SideToMove types.Color

	// Piece indexed by types.PieceType; Piece[types.PtNone] is unused.
	Piece [types.PtLength]types.Bitboard

	// ColorBb indexed by types.Color.
	ColorBb [types.ColorLength]types.Bitboard

	Castling types.CastlingRights

	// EnPassant is the zero bitboard when no en-passant target is set.
	EnPassant types.Bitboard
}

// NewInitial returns the standard chess starting position: white on
// ranks 1-2, black on ranks 7-8, both sides fully entitled to castle, no
// en-passant target.
func NewInitial() *State {
	s, err := TryFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
	if err != nil {
		// The literal is constant and known-valid; a failure here is a
		// programmer error in TryFromFEN itself, not bad input.
		panic(fmt.Sprintf("position: initial FEN literal rejected: %v", err))
	}
	s.Castling = types.CastlingAny
	return s
}

// TryFromFEN parses only the piece-placement field of a FEN string
// (ranks separated by '/', rank 8 first). Side to move defaults to
// White, castling rights default to CastlingAny, and en-passant defaults
// to none - none of those three are parsed from placement.
//
// placement must describe exactly 8 ranks, each summing to exactly 8
// files; any other character than kqrbnpKQRBNP or a digit 1-8 is
// rejected. Otherwise types.ErrMalformedFen is returned.
func TryFromFEN(placement string) (*State, error) {
	rows := strings.Split(placement, "/")
	if len(rows) != 8 {
		return nil, fmt.Errorf("%w: expected 8 ranks, got %d", types.ErrMalformedFen, len(rows))
	}

	s := &State{SideToMove: types.White, Castling: types.CastlingAny}

	for rowIdx, row := range rows {
		// The first parsed rank (FEN row 0) corresponds to y=7.
		y := uint8(7 - rowIdx)
		x := uint8(0)

		for _, ch := range row {
			switch {
			case ch >= '1' && ch <= '8':
				x += uint8(ch - '0')
			default:
				color, pt, ok := types.PieceFromChar(byte(ch))
				if !ok {
					return nil, fmt.Errorf("%w: unknown character %q", types.ErrMalformedFen, ch)
				}
				if x >= 8 {
					return nil, fmt.Errorf("%w: rank %d has more than 8 files", types.ErrMalformedFen, rowIdx)
				}
				bb := types.CoordsToBb(x, y)
				s.Piece[pt] |= bb
				s.ColorBb[color] |= bb
				x++
			}
		}

		if x != 8 {
			return nil, fmt.Errorf("%w: rank %d sums to %d files, want 8", types.ErrMalformedFen, rowIdx, x)
		}
	}

	var union types.Bitboard
	for pt := types.King; pt < types.PtLength; pt++ {
		assert.Assert(s.Piece[pt]&union == 0, "position: TryFromFEN produced overlapping piece bitboards")
		union |= s.Piece[pt]
	}
	assert.Assert(union == s.ColorBb[types.White]|s.ColorBb[types.Black],
		"position: TryFromFEN piece/color bitboards disagree on occupancy")

	return s, nil
}

// SelfBb returns the color bitboard for the side to move.
func (s *State) SelfBb() types.Bitboard {
	return s.ColorBb[s.SideToMove]
}

// EnemyBb returns the color bitboard for the side not to move.
func (s *State) EnemyBb() types.Bitboard {
	return s.ColorBb[s.SideToMove.Flip()]
}

// Occupied returns the union of both color bitboards.
func (s *State) Occupied() types.Bitboard {
	return s.ColorBb[types.White] | s.ColorBb[types.Black]
}

// PieceAt returns the piece type occupying sq, or PtNone if empty.
func (s *State) PieceAt(sq types.Square) types.PieceType {
	bb := sq.Bb()
	for pt := types.King; pt < types.PtLength; pt++ {
		if s.Piece[pt]&bb != 0 {
			return pt
		}
	}
	return types.PtNone
}
