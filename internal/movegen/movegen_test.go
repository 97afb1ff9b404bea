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

package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp-records/knightmare/internal/magic"
	"github.com/warp-records/knightmare/internal/position"
	"github.com/warp-records/knightmare/internal/types"
)

func destsFrom(t *testing.T, moves interface {
	Len() int
}, get func(int) types.Move, src types.Square) []types.Square {
	t.Helper()
	var out []types.Square
	for i := 0; i < moves.Len(); i++ {
		m := get(i)
		if m.Src == src {
			out = append(out, m.Dest)
		}
	}
	return out
}

func assertSquareSet(t *testing.T, got []types.Square, want ...types.Square) {
	t.Helper()
	assert.ElementsMatch(t, want, got)
}

func sq(x, y uint8) types.Square { return types.NewSquare(x, y) }

func newGenerator() *Generator {
	return New(magic.Build())
}

func TestGeneratorNotReady(t *testing.T) {
	var g *Generator
	_, err := g.RookMoves(position.NewInitial())
	assert.ErrorIs(t, err, ErrNotReady)
}

// S3: white rook added at e5=(4,4) on the initial position, h1 emptied.
func TestRookMovesScenarioS3(t *testing.T) {
	gen := newGenerator()
	st, err := position.TryFromFEN("rnbqkbnr/pppppppp/8/4R3/8/8/PPPPPPPP/RNBQKBN1")
	require.NoError(t, err)

	moves, err := gen.RookMoves(st)
	require.NoError(t, err)

	got := destsFrom(t, moves, moves.At, sq(4, 4))
	assertSquareSet(t, got,
		sq(4, 6), sq(4, 5), sq(4, 3), sq(4, 2),
		sq(0, 4), sq(1, 4), sq(2, 4), sq(3, 4), sq(5, 4), sq(6, 4), sq(7, 4),
	)
}

// S4: rook at a1 with own pawn at b2 - full 1st rank and a-file, 14
// squares.
func TestRookMovesScenarioS4(t *testing.T) {
	gen := newGenerator()
	st, err := position.TryFromFEN("8/8/8/8/8/8/1P6/R7")
	require.NoError(t, err)

	moves, err := gen.RookMoves(st)
	require.NoError(t, err)

	got := destsFrom(t, moves, moves.At, sq(0, 0))
	assert.Len(t, got, 14)
	for x := uint8(1); x < 8; x++ {
		assertContains(t, got, sq(x, 0))
	}
	for y := uint8(1); y < 8; y++ {
		assertContains(t, got, sq(0, y))
	}
}

// S5: two white rooks, each with its own blocked/capture set.
func TestRookMovesScenarioS5(t *testing.T) {
	gen := newGenerator()
	st, err := position.TryFromFEN("2r2r2/pk4pp/1p6/P1p1B3/8/2R2n2/2P2P1P/1R3K2")
	require.NoError(t, err)

	moves, err := gen.RookMoves(st)
	require.NoError(t, err)

	b1 := destsFrom(t, moves, moves.At, sq(1, 0))
	assertSquareSet(t, b1,
		sq(0, 0), sq(2, 0), sq(3, 0), sq(4, 0),
		sq(1, 1), sq(1, 2), sq(1, 3), sq(1, 4), sq(1, 5),
	)

	c3 := destsFrom(t, moves, moves.At, sq(2, 2))
	assertSquareSet(t, c3,
		sq(0, 2), sq(1, 2), sq(3, 2), sq(4, 2), sq(5, 2),
		sq(2, 3), sq(2, 4),
	)
}

// S6: bishop moves from c1 and d3.
func TestBishopMovesScenarioS6(t *testing.T) {
	gen := newGenerator()
	st, err := position.TryFromFEN("r2qkb1r/ppp2ppp/2n2n2/4p3/3P4/2PB1R2/PP4PP/RNBQ2K1")
	require.NoError(t, err)

	moves, err := gen.BishopMoves(st)
	require.NoError(t, err)

	c1 := destsFrom(t, moves, moves.At, sq(2, 0))
	assertSquareSet(t, c1,
		sq(3, 1), sq(4, 2), sq(5, 3), sq(6, 4), sq(7, 5),
	)

	d3 := destsFrom(t, moves, moves.At, sq(3, 2))
	assertSquareSet(t, d3,
		sq(4, 3), sq(5, 4), sq(6, 5), sq(7, 6),
		sq(2, 3), sq(1, 4), sq(0, 5),
		sq(4, 1), sq(5, 0),
		sq(2, 1),
	)
}

func TestQueenMovesIsUnionOfRookAndBishop(t *testing.T) {
	gen := newGenerator()
	st, err := position.TryFromFEN("8/8/8/3Q4/8/8/8/8")
	require.NoError(t, err)

	queen, err := gen.QueenMoves(st)
	require.NoError(t, err)
	assert.Equal(t, 27, queen.Len(), "a lone queen on d5 reaches 14 rook squares plus 13 bishop squares")
}

func TestKnightMovesCornerCount(t *testing.T) {
	gen := newGenerator()
	st, err := position.TryFromFEN("8/8/8/8/8/8/8/N7")
	require.NoError(t, err)

	knight, err := gen.KnightMoves(st)
	require.NoError(t, err)
	assert.Equal(t, 2, knight.Len())
}

func assertContains(t *testing.T, haystack []types.Square, needle types.Square) {
	t.Helper()
	for _, s := range haystack {
		if s == needle {
			return
		}
	}
	t.Fatalf("expected %s to contain %s", haystack, needle)
}
