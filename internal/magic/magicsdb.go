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

package magic

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/warp-records/knightmare/internal/types"
)

// Db holds the full set of 128 magic tables (64 squares times two ray
// families) that the move generator consults for rook, bishop and queen
// attacks. It is built once via Build and is safe for concurrent reads
// afterward - nothing in it changes once construction returns.
type Db struct {
	Straight [8][8]Table
	Diagonal [8][8]Table
}

// Build runs GenTable for every square and ray family and returns the
// populated Db. This is the expensive, deterministic (fixed Seed) step
// that the magics cache exists to avoid repeating on every process start.
//
// Each square's search is independent (its own PRNG, its own slice of the
// result), so the 128 searches run concurrently under an errgroup; Build
// never returns an error itself (GenTable cannot fail), the group just
// gives us bounded fan-out and a single Wait.
func Build() *Db {
	db := &Db{}
	g, _ := errgroup.WithContext(context.Background())

	for x := uint8(0); x < 8; x++ {
		for y := uint8(0); y < 8; y++ {
			x, y := x, y
			g.Go(func() error {
				db.Straight[x][y] = GenTable(x, y, true)
				return nil
			})
			g.Go(func() error {
				db.Diagonal[x][y] = GenTable(x, y, false)
				return nil
			})
		}
	}

	_ = g.Wait()
	return db
}

// RookRay returns the rook attack bitboard from (x,y) given full-board
// occupancy.
func (db *Db) RookRay(x, y uint8, occupied types.Bitboard) types.Bitboard {
	return db.Straight[x][y].GetRay(occupied)
}

// BishopRay returns the bishop attack bitboard from (x,y) given full-board
// occupancy.
func (db *Db) BishopRay(x, y uint8, occupied types.Bitboard) types.Bitboard {
	return db.Diagonal[x][y].GetRay(occupied)
}

// QueenRay is the union of the rook and bishop rays from (x,y): a queen
// moves as either in a single step, per §9's resolved Open Question.
func (db *Db) QueenRay(x, y uint8, occupied types.Bitboard) types.Bitboard {
	return db.RookRay(x, y, occupied) | db.BishopRay(x, y, occupied)
}
