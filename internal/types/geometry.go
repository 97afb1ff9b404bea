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

// Board geometry primitives: unbounded rays, the knight pattern,
// coordinate<->bit conversions and blocked-ray generators. x is file 0..7
// (a..h), y is rank 0..7 (rank1..rank8).

// CoordsToBb returns a bitboard with a single bit set at (x,y). Undefined
// for out-of-range coordinates; callers must prevalidate.
func CoordsToBb(x, y uint8) Bitboard {
	return Bitboard(1) << (63 - (uint(x) + 8*uint(y)))
}

// RsToBb turns a "right shift" value (a CLZ count of a single-bit board)
// back into the corresponding single-bit bitboard.
func RsToBb(s uint32) Bitboard {
	return Bitboard(1) << 63 >> Bitboard(s)
}

// RightShiftToCoords turns a "right shift" value s (the CLZ count of a
// single-bit bitboard) back into (x,y).
//
// The literal source formula is `(s mod 8, 7 - s/8)`; composed with
// CoordsToBb and Clz it does not round-trip (Clz(CoordsToBb(x,y)) == x+8y,
// but the literal formula maps x+8y to (x, 7-y), not (x,y)). This
// implementation uses the inverse that actually round-trips, since the
// end-to-end scenarios this core is tested against are stated in plain
// (x,y) coordinates and only hold under a consistent mapping. See
// DESIGN.md for the full account.
func RightShiftToCoords(s uint8) (x, y uint8) {
	return s % 8, s / 8
}

func shr(val Bitboard, dist int) Bitboard {
	if dist >= 0 {
		return val >> uint(dist)
	}
	return val << uint(-dist)
}

const (
	rightDownDiag Bitboard = 0x8040201008040201
	rightUpDiag   Bitboard = 0x102040810204080
)

// diagonalRays returns the two diagonals through (x,y), origin cleared,
// split into (rightDown, rightUp).
func diagonalRays(x, y uint8) (rightDown, rightUp Bitboard) {
	pieceBb := CoordsToBb(x, y)
	ix, iy := int(x), int(y)

	rightDown = shr(rightDownDiag, ix-iy)
	for i := 0; i < abs(ix-iy); i++ {
		shiftAmt := i
		mask := verticalZerosLeft
		if ix < iy {
			shiftAmt = -i
			mask = verticalZerosRight
		}
		rightDown &= shr(mask, shiftAmt)
	}

	diagSum := ix + iy - 7
	rightUp = shr(rightUpDiag, diagSum)
	for i := 0; i < abs(diagSum); i++ {
		shiftAmt := -i
		mask := verticalZerosRight
		if diagSum > 0 {
			shiftAmt = i
			mask = verticalZerosLeft
		}
		rightUp &= shr(mask, shiftAmt)
	}

	return rightDown &^ pieceBb, rightUp &^ pieceBb
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// GenDiagonalRay returns the unbounded diagonal ray through (x,y), origin
// cleared.
func GenDiagonalRay(x, y uint8) Bitboard {
	rightDown, rightUp := diagonalRays(x, y)
	return (rightDown | rightUp) &^ CoordsToBb(x, y)
}

// GenStraightRays returns the unbounded vertical (file) and horizontal
// (rank) rays through (x,y), origin cleared, as (vertical, horizontal).
func GenStraightRays(x, y uint8) (vertical, horizontal Bitboard) {
	pieceBb := CoordsToBb(x, y)
	vertical = shr(ColumnLeft, int(x)) &^ pieceBb
	horizontal = shr(RowTop, int(y)*8) &^ pieceBb
	return vertical, horizontal
}

// GenStraightRay returns the unbounded straight ray (file | rank) through
// (x,y), origin cleared.
func GenStraightRay(x, y uint8) Bitboard {
	v, h := GenStraightRays(x, y)
	return v | h
}

// GenBlockedStraight returns the squares a rook at (x,y) attacks given that
// blockers are occupied: the ray in each of the four cardinal directions up
// to and including the first blocker, excluding the origin. Bits in
// blockers outside this square's rays do not affect the result.
func GenBlockedStraight(x, y uint8, blockers Bitboard) Bitboard {
	col, row := GenStraightRays(x, y)
	blockers &= col | row

	topArea := Full << uint((7-y)*8)
	bottomArea := ^topArea
	topArea <<= 8
	rightArea := Bitboard(uint64(Bitboard(1)<<(8-x)-1) * uint64(ColumnLeft))
	rightArea &^= ColumnLeft
	rightArea |= rightArea >> 8
	leftArea := ^rightArea << 1 & verticalZerosRight

	nearest := (blockers & topArea).Ctz()
	topRay := (Full >> shiftAmount(64-(nearest+1))) & col & topArea
	if topRay == 0 {
		topRay = col & topArea
	}

	nearest = (blockers & bottomArea).Clz()
	bottomRay := (Full << shiftAmount(64-(nearest+1))) & col & bottomArea
	if bottomRay == 0 {
		bottomRay = col & bottomArea
	}

	nearest = (blockers & leftArea).Ctz()
	leftRay := (Full >> shiftAmount(64-(nearest+1))) & row & leftArea
	if leftRay == 0 {
		leftRay = row & leftArea
	}

	nearest = (blockers & rightArea).Clz()
	rightRay := (Full << shiftAmount(64-(nearest+1))) & row & rightArea
	if rightRay == 0 {
		rightRay = row & rightArea
	}

	return topRay | bottomRay | leftRay | rightRay
}

// GenBlockedDiagonal returns the squares a bishop at (x,y) attacks given
// that blockers are occupied, analogous to GenBlockedStraight but along
// both diagonals, handled quadrant by quadrant.
func GenBlockedDiagonal(x, y uint8, blockers Bitboard) Bitboard {
	rightDown, rightUp := diagonalRays(x, y)

	topArea := Full << uint((7-y)*8)
	bottomArea := ^topArea
	rightArea := Bitboard(uint64(Bitboard(1)<<(8-x)-1) * uint64(ColumnLeft))
	rightArea &^= ColumnLeft
	rightArea |= rightArea >> 8
	leftArea := ^rightArea

	quad1 := rightArea & topArea
	quad1Blockers := rightUp & quad1 & blockers
	nearest := quad1Blockers.Ctz()
	quad1Diag := rightUp & (Full >> shiftAmount(64-(nearest+1))) & quad1

	quad2 := leftArea & topArea
	quad2Blockers := rightDown & quad2 & blockers
	nearest = quad2Blockers.Ctz()
	quad2Diag := rightDown & (Full >> shiftAmount(64-(nearest+1))) & quad2

	quad3 := leftArea & bottomArea
	quad3Blockers := rightUp & quad3 & blockers
	nearest = quad3Blockers.Clz()
	quad3Diag := rightUp & (Full << shiftAmount(64-(nearest+1))) & quad3

	quad4 := rightArea & bottomArea
	quad4Blockers := rightDown & quad4 & blockers
	nearest = quad4Blockers.Clz()
	quad4Diag := rightDown & (Full << shiftAmount(64-(nearest+1))) & quad4

	return quad1Diag | quad2Diag | quad3Diag | quad4Diag
}

// shiftAmount clamps a shift count to [0,64], the range Go's shift
// operators accept for a uint64 operand. The source computes these counts
// from zero-extended leading/trailing-zero counts that can legitimately
// fall outside that range when there is no blocker on a given side.
func shiftAmount(n int) uint {
	switch {
	case n < 0:
		return 0
	case n > 64:
		return 64
	default:
		return uint(n)
	}
}

// knightMoves is the knight attack pattern centered on (2,2), used as a
// shiftable template.
const knightMoves Bitboard = 0x5088008850000000

// GenKnight returns the squares a knight at (x,y) attacks: 2 to 8 squares,
// correct near every edge and corner.
func GenKnight(x, y uint8) Bitboard {
	ix, iy := int(x), int(y)
	moves := shr(knightMoves, (ix-2)+(iy-2)*8)
	switch {
	case ix < 2:
		moves &= verticalZerosRight
		moves &= shr(verticalZerosRight, -1)
	case ix > 5:
		moves &= verticalZerosLeft
		moves &= verticalZerosLeft >> 1
	}
	return moves
}
