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

// Package census counts the pseudo-legal moves movegen produces for a
// single position, broken down by piece type. It is a one-ply count,
// not a perft: a real perft recurses through make/unmake to count leaf
// nodes at depth N, and this core has no move-application step to
// recurse through (§4.7 Non-goals). This is the diagnostic that scope
// does leave room for - "how many moves does the generator see here,
// by piece type" - useful for sanity-checking a position or a magics
// rebuild without pretending to be a depth search.
package census

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/warp-records/knightmare/internal/movegen"
	"github.com/warp-records/knightmare/internal/position"
)

var printer = message.NewPrinter(language.German)

// Count is the move-generator's one-ply output for a position, broken
// down by piece type.
type Count struct {
	Rook   int
	Bishop int
	Queen  int
	Knight int
}

// Total returns the sum across all piece types.
func (c Count) Total() int {
	return c.Rook + c.Bishop + c.Queen + c.Knight
}

// String renders the breakdown, locale-formatted per golang.org/x/text.
func (c Count) String() string {
	return printer.Sprintf(
		"rook=%d bishop=%d queen=%d knight=%d total=%d",
		c.Rook, c.Bishop, c.Queen, c.Knight, c.Total(),
	)
}

// Run generates every implemented piece type's pseudo-legal moves for
// st against gen and returns the per-type counts.
func Run(gen *movegen.Generator, st *position.State) (Count, error) {
	rooks, err := gen.RookMoves(st)
	if err != nil {
		return Count{}, fmt.Errorf("census: rook: %w", err)
	}
	bishops, err := gen.BishopMoves(st)
	if err != nil {
		return Count{}, fmt.Errorf("census: bishop: %w", err)
	}
	queens, err := gen.QueenMoves(st)
	if err != nil {
		return Count{}, fmt.Errorf("census: queen: %w", err)
	}
	knights, err := gen.KnightMoves(st)
	if err != nil {
		return Count{}, fmt.Errorf("census: knight: %w", err)
	}

	return Count{
		Rook:   rooks.Len(),
		Bishop: bishops.Len(),
		Queen:  queens.Len(),
		Knight: knights.Len(),
	}, nil
}
