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

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordsToBbRightShiftRoundTrip(t *testing.T) {
	for y := uint8(0); y < 8; y++ {
		for x := uint8(0); x < 8; x++ {
			bb := CoordsToBb(x, y)
			rx, ry := RightShiftToCoords(uint8(bb.Clz()))
			assert.Equal(t, x, rx)
			assert.Equal(t, y, ry)
		}
	}
}

func TestGenKnightSelfInverse(t *testing.T) {
	for y := uint8(0); y < 8; y++ {
		for x := uint8(0); x < 8; x++ {
			targets := GenKnight(x, y)
			for ty := uint8(0); ty < 8; ty++ {
				for tx := uint8(0); tx < 8; tx++ {
					if targets.Has(tx, ty) {
						assert.True(t, GenKnight(tx, ty).Has(x, y),
							"knight(%d,%d) contains (%d,%d) but not vice versa", x, y, tx, ty)
					}
				}
			}
		}
	}
}

func TestGenBlockedStraightMonotone(t *testing.T) {
	base := GenBlockedStraight(3, 3, Empty)
	withBlocker := GenBlockedStraight(3, 3, CoordsToBb(3, 5))
	assert.Subset(t, bits(base), bits(withBlocker))
}

func TestGenBlockedStraightEmptyEqualsClippedRay(t *testing.T) {
	v, h := GenStraightRays(2, 2)
	assert.Equal(t, v|h, GenBlockedStraight(2, 2, Empty))
}

func TestGenBlockedDiagonalEmptyEqualsClippedRay(t *testing.T) {
	assert.Equal(t, GenDiagonalRay(2, 2), GenBlockedDiagonal(2, 2, Empty))
}

// S4: rook at a1=(0,0), own pawn at b2=(1,1). Rook moves = entire 1st
// rank b1..h1 plus entire a-file a2..a8 (14 squares).
func TestGenBlockedStraightScenarioS4(t *testing.T) {
	blockers := CoordsToBb(1, 1)
	attacks := GenBlockedStraight(0, 0, blockers)

	var want Bitboard
	for x := uint8(1); x < 8; x++ {
		want |= CoordsToBb(x, 0)
	}
	for y := uint8(1); y < 8; y++ {
		want |= CoordsToBb(0, y)
	}

	assert.Equal(t, want, attacks)
	assert.Equal(t, 14, attacks.PopCount())
}

func bits(b Bitboard) []int {
	var out []int
	for y := uint8(0); y < 8; y++ {
		for x := uint8(0); x < 8; x++ {
			if b.Has(x, y) {
				out = append(out, int(x)+int(y)*8)
			}
		}
	}
	return out
}
