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

package position

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp-records/knightmare/internal/types"
)

// S1 / law 7: the starting-position placement string produces a State
// bitwise-equal to NewInitial on every piece and color bitboard.
func TestTryFromFENScenarioS1(t *testing.T) {
	st, err := TryFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
	require.NoError(t, err)

	initial := NewInitial()
	assert.Equal(t, initial.Piece, st.Piece)
	assert.Equal(t, initial.ColorBb, st.ColorBb)
}

// S2: a row with seven files is malformed.
func TestTryFromFENScenarioS2(t *testing.T) {
	_, err := TryFromFEN("rnbqknr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR")
	assert.ErrorIs(t, err, types.ErrMalformedFen)
}

func TestTryFromFENWrongRankCount(t *testing.T) {
	_, err := TryFromFEN("8/8/8/8/8/8/8")
	assert.ErrorIs(t, err, types.ErrMalformedFen)
}

func TestTryFromFENUnknownCharacter(t *testing.T) {
	_, err := TryFromFEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPZ/RNBQKBNR")
	assert.ErrorIs(t, err, types.ErrMalformedFen)
}

func TestNewInitialSideToMoveAndCastling(t *testing.T) {
	st := NewInitial()
	assert.Equal(t, types.White, st.SideToMove)
	assert.Equal(t, types.CastlingAny, st.Castling)
	assert.Equal(t, types.Empty, st.EnPassant)
}

func TestSelfAndEnemyBb(t *testing.T) {
	st := NewInitial()
	assert.Equal(t, st.ColorBb[types.White], st.SelfBb())
	assert.Equal(t, st.ColorBb[types.Black], st.EnemyBb())
}

func TestPieceAt(t *testing.T) {
	st := NewInitial()
	assert.Equal(t, types.Rook, st.PieceAt(types.NewSquare(0, 0)))
	assert.Equal(t, types.King, st.PieceAt(types.NewSquare(4, 0)))
	assert.Equal(t, types.PtNone, st.PieceAt(types.NewSquare(4, 4)))
}
