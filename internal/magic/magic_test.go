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
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warp-records/knightmare/internal/types"
)

// S7: magic self-consistency. For a sample of random blocker boards
// restricted to each square's relevant mask, get_ray must agree with the
// direct ray-blocking computation it was built to shortcut.
func TestMagicSelfConsistency(t *testing.T) {
	rng := newPrng(Seed)

	for x := uint8(0); x < 8; x++ {
		for y := uint8(0); y < 8; y++ {
			straightTable := GenTable(x, y, true)
			diagTable := GenTable(x, y, false)

			for i := 0; i < 20; i++ {
				blockers := types.Bitboard(rng.rand64())

				got := straightTable.GetRay(blockers)
				want := types.GenBlockedStraight(x, y, blockers&straightTable.RelevantMask)
				assert.Equal(t, want, got, "straight (%d,%d) blockers=%s", x, y, blockers)

				got = diagTable.GetRay(blockers)
				want = types.GenBlockedDiagonal(x, y, blockers&diagTable.RelevantMask)
				assert.Equal(t, want, got, "diagonal (%d,%d) blockers=%s", x, y, blockers)
			}
		}
	}
}

func TestIndexBitsForCornerEdgeCenter(t *testing.T) {
	assert.Equal(t, uint(12), indexBitsFor(0, 0))
	assert.Equal(t, uint(11), indexBitsFor(0, 3))
	assert.Equal(t, uint(10), indexBitsFor(3, 3))
}

// A rook's raw ray (before masking out the side to move's own pieces,
// which movegen does) includes the first blocker in either direction
// regardless of color - the split between "ray" and "move" is exactly
// that mask, exercised end to end in the movegen package's scenario
// tests (S3-S6).
func TestRookRayIncludesFirstBlockerBothColors(t *testing.T) {
	db := Build()
	occupied := types.CoordsToBb(4, 4) | types.CoordsToBb(4, 1) | types.CoordsToBb(4, 6)

	attacks := db.RookRay(4, 4, occupied)
	assert.True(t, attacks.Has(4, 1), "raw ray must include the first blocker, even a friendly one")
	assert.True(t, attacks.Has(4, 6))
	assert.False(t, attacks.Has(4, 0), "ray must stop at the first blocker")
}
