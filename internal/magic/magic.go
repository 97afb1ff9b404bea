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

// Package magic builds and queries the per-square magic-bitboard attack
// tables for sliding pieces (components C and D of the move-generation
// core): a perfect-hash lookup from (square, blocker occupancy) to attack
// set, built once at startup and immutable thereafter.
package magic

import (
	"github.com/warp-records/knightmare/internal/assert"
	"github.com/warp-records/knightmare/internal/types"
)

// Seed is the fixed PRNG seed mandated for the magic-table builder. Using
// a fixed seed, rather than one tuned per rank for faster convergence,
// trades search speed for bit-identical reproducibility of the generated
// MagicsDb across runs and machines.
const Seed = 0

// Table is a single square's magic attack lookup: a relevant-occupancy
// mask, the chosen multiplier, the number of index bits consumed, and the
// populated attack table of size 2^IndexBits.
type Table struct {
	RelevantMask types.Bitboard
	Magic        uint64
	IndexBits    uint
	Attacks      []types.Bitboard
}

// GetRay returns the attack bitboard for this square given a full-board
// occupancy. The caller does not need to pre-mask occupied against
// RelevantMask. The result includes captures (the first blocker per
// direction) and excludes the origin square; filtering out friendly
// pieces is the caller's responsibility.
func (t *Table) GetRay(occupied types.Bitboard) types.Bitboard {
	blockers := occupied & t.RelevantMask
	idx := tableIndex(blockers, t.Magic, t.IndexBits)
	assert.Assert(idx < uint64(len(t.Attacks)), "magic: table index %d out of bounds for %d-entry table", idx, len(t.Attacks))
	return t.Attacks[idx]
}

func tableIndex(blockers types.Bitboard, m uint64, indexBits uint) uint64 {
	return (uint64(blockers) * m) >> (64 - indexBits)
}

// indexBitsFor returns 10, 11 or 12: the number of occupancy bits a
// rook's relevant mask holds on that square, one extra bit for each edge
// (x or y) the square sits on. The diagonal family uses the same count,
// which is more than its own relevant masks (at most 9 bits) hold.
func indexBitsFor(x, y uint8) uint {
	bits := uint(10)
	if x == 0 || x == 7 {
		bits++
	}
	if y == 0 || y == 7 {
		bits++
	}
	return bits
}

func relevantMask(x, y uint8, straight bool) types.Bitboard {
	if straight {
		vertical, horizontal := types.GenStraightRays(x, y)
		return (vertical &^ types.RowTop &^ types.RowBottom) |
			(horizontal &^ types.ColumnLeft &^ types.ColumnRight)
	}
	diag := types.GenDiagonalRay(x, y)
	return diag &^ types.ColumnLeft &^ types.ColumnRight &^ types.RowTop &^ types.RowBottom
}

// bitPositions returns the bit index of every set bit in mask, lowest
// first, via repeated Ctz - the ordered list used to map a dense subset
// index onto a blocker bitboard (§4.3 step 3).
func bitPositions(mask types.Bitboard) []uint {
	positions := make([]uint, 0, 12)
	for mask != 0 {
		p := uint(mask.Ctz())
		positions = append(positions, p)
		mask &^= types.Bitboard(1) << p
	}
	return positions
}

// subsetToBlockers maps a dense subset index k (0..2^len(positions)) onto
// the blocker bitboard it encodes: bit i of k becomes bit positions[i] of
// the board.
func subsetToBlockers(k uint64, positions []uint) types.Bitboard {
	var blockers types.Bitboard
	for i, pos := range positions {
		bit := (k >> uint(i)) & 1
		blockers |= types.Bitboard(bit) << pos
	}
	return blockers
}

func blockedRay(x, y uint8, straight bool, blockers types.Bitboard) types.Bitboard {
	if straight {
		return types.GenBlockedStraight(x, y, blockers)
	}
	return types.GenBlockedDiagonal(x, y, blockers)
}

// GenTable searches for a magic multiplier for square (x,y) and the given
// ray family (straight = rook rays, otherwise bishop rays) and returns the
// populated Table. The search draws sparse candidates from a PRNG seeded
// with Seed and accepts the first multiplier that produces no destructive
// collision: two blocker subsets may share an index only if they also
// share the same attack set (§4.3 step 4).
func GenTable(x, y uint8, straight bool) Table {
	mask := relevantMask(x, y, straight)
	indexBits := indexBitsFor(x, y)
	positions := bitPositions(mask)
	tableSize := 1 << indexBits

	attacks := make([]types.Bitboard, tableSize)
	occupiedSlot := make([]bool, tableSize)
	rng := newPrng(Seed)

	var chosenMagic uint64
	for {
		for i := range occupiedSlot {
			occupiedSlot[i] = false
		}
		candidate := rng.sparseRand()
		collision := false

		for k := 0; k < tableSize; k++ {
			blockers := subsetToBlockers(uint64(k), positions)
			idx := tableIndex(blockers, candidate, indexBits)
			attack := blockedRay(x, y, straight, blockers)

			if occupiedSlot[idx] {
				if attacks[idx] != attack {
					collision = true
					break
				}
			} else {
				attacks[idx] = attack
				occupiedSlot[idx] = true
			}
		}

		if !collision {
			chosenMagic = candidate
			break
		}
	}

	return Table{
		RelevantMask: mask,
		Magic:        chosenMagic,
		IndexBits:    indexBits,
		Attacks:      attacks,
	}
}
