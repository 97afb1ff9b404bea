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

// Package movegen enumerates pseudo-legal moves for the sliding pieces
// (rook, bishop, queen) and the knight, per §4.7. It does not check
// whether a move leaves its own king in check, and it does not generate
// pawn, king, castling or en-passant moves - there are no methods for
// them here, per the core's explicit scope.
package movegen

import (
	"fmt"

	"github.com/warp-records/knightmare/internal/magic"
	"github.com/warp-records/knightmare/internal/moveslice"
	"github.com/warp-records/knightmare/internal/position"
	"github.com/warp-records/knightmare/internal/types"
)

// Capacity bounds from §4.7: conservative per-side maxima that include
// multiple promoted pieces of the same type. PushBack panics if a bound
// is ever exceeded, so these numbers are load-bearing, not decorative.
const (
	RookCapacity   = 28
	BishopCapacity = 26
	KnightCapacity = 16
)

// ErrNotReady is returned when a Generator method is called before its
// magic.Db has been built or loaded - the one contract violation the
// generator itself turns into an error rather than a panic, since a
// caller driving this from a long-running process (e.g. a UCI loop)
// needs a recoverable signal, not a crash.
var ErrNotReady = fmt.Errorf("movegen: generator used before magic.Db is ready")

// Generator produces pseudo-legal moves against a magic.Db. Build one
// with New once the Db has been constructed (directly or via
// magiccache.LoadOrGenerate) and reuse it for the life of the process;
// it holds no per-call state.
type Generator struct {
	db *magic.Db
}

// New wraps a built magic.Db. db must not be nil.
func New(db *magic.Db) *Generator {
	if db == nil {
		panic("movegen: New called with a nil magic.Db")
	}
	return &Generator{db: db}
}

// Ready reports whether the generator has a usable magic.Db. It always
// returns true for a Generator built via New; it exists so callers that
// hold a *Generator received from elsewhere can check before using it.
func (g *Generator) Ready() bool {
	return g != nil && g.db != nil
}

// iterateOwn walks the set bits of own from the highest-indexed bit
// down, per §4.7 step 2 (CLZ-based iteration, a1 toward h8 in this core's
// bit layout), calling f with each piece's coordinates.
func iterateOwn(own types.Bitboard, f func(x, y uint8)) {
	for own != 0 {
		bit, rest := own.PopHighestBit()
		s := bit.Clz()
		x, y := types.RightShiftToCoords(uint8(s))
		f(x, y)
		own = rest
	}
}

// emitAttacks enumerates the set bits of attacks by repeated CLZ and
// appends Move{src, dest} for each to dest, per §4.7 step 5.
func emitAttacks(src types.Square, attacks types.Bitboard, dest *moveslice.MoveSlice) {
	for attacks != 0 {
		bit, rest := attacks.PopHighestBit()
		s := bit.Clz()
		x, y := types.RightShiftToCoords(uint8(s))
		dest.PushBack(types.NewMove(src, types.NewSquare(x, y)))
		attacks = rest
	}
}

// slidingMoves is the shared body of §4.7 steps 1-5 for any ray family
// that can be answered by a magic.Db lookup: rook rays, bishop rays, or
// their union for the queen.
func (g *Generator) slidingMoves(
	st *position.State,
	pieceBb types.Bitboard,
	capacity int,
	ray func(x, y uint8, occupied types.Bitboard) types.Bitboard,
) *moveslice.MoveSlice {
	moves := moveslice.New(capacity)
	own := pieceBb & st.SelfBb()
	occupied := st.Occupied()
	selfBb := st.SelfBb()

	iterateOwn(own, func(x, y uint8) {
		attacks := ray(x, y, occupied) &^ selfBb
		emitAttacks(types.NewSquare(x, y), attacks, moves)
	})

	return moves
}

// RookMoves returns pseudo-legal rook moves for the side to move.
func (g *Generator) RookMoves(st *position.State) (*moveslice.MoveSlice, error) {
	if !g.Ready() {
		return nil, ErrNotReady
	}
	return g.slidingMoves(st, st.Piece[types.Rook], RookCapacity, g.db.RookRay), nil
}

// BishopMoves returns pseudo-legal bishop moves for the side to move.
func (g *Generator) BishopMoves(st *position.State) (*moveslice.MoveSlice, error) {
	if !g.Ready() {
		return nil, ErrNotReady
	}
	return g.slidingMoves(st, st.Piece[types.Bishop], BishopCapacity, g.db.BishopRay), nil
}

// QueenMoves returns pseudo-legal queen moves for the side to move,
// using the union of rook and bishop rays (§9's resolved Open Question:
// a queen moves as either in a single step, not as two separately
// generated piece types).
func (g *Generator) QueenMoves(st *position.State) (*moveslice.MoveSlice, error) {
	if !g.Ready() {
		return nil, ErrNotReady
	}
	// A single queen has at most 27 destinations (14 rook + 13 bishop;
	// the two rays never share a square), which fits the rook's capacity
	// bound. Two or more queens of the side to move can exceed it, and
	// PushBack then panics.
	return g.slidingMoves(st, st.Piece[types.Queen], RookCapacity, g.db.QueenRay), nil
}

// KnightMoves returns pseudo-legal knight moves for the side to move.
// Knight attacks are a fixed per-square table, not a magic.Db lookup, so
// this does not go through slidingMoves.
func (g *Generator) KnightMoves(st *position.State) (*moveslice.MoveSlice, error) {
	if !g.Ready() {
		return nil, ErrNotReady
	}

	moves := moveslice.New(KnightCapacity)
	own := st.Piece[types.Knight] & st.SelfBb()
	selfBb := st.SelfBb()

	iterateOwn(own, func(x, y uint8) {
		attacks := types.GenKnight(x, y) &^ selfBb
		emitAttacks(types.NewSquare(x, y), attacks, moves)
	})

	return moves, nil
}
