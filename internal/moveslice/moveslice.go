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

// Package moveslice provides a bounded, allocate-once slice of Move for
// the move generator: one capacity-pre-sized MoveSlice per piece type per
// call, per the core's §4.7 capacity bounds.
package moveslice

import (
	"fmt"
	"strings"

	. "github.com/warp-records/knightmare/internal/types"
)

// MoveSlice is a slice of Move with the small fixed helper surface the
// generator and its tests need. The zero value is not usable; build one
// with New.
type MoveSlice []Move

// New creates a move slice with the given capacity and 0 elements.
func New(capacity int) *MoveSlice {
	moves := make([]Move, 0, capacity)
	return (*MoveSlice)(&moves)
}

// Len returns the number of moves currently stored.
func (ms *MoveSlice) Len() int {
	return len(*ms)
}

// Cap returns the slice's capacity.
func (ms *MoveSlice) Cap() int {
	return cap(*ms)
}

// PushBack appends a move. It panics if doing so would exceed the
// slice's capacity, since capacity here is a correctness bound (§4.7),
// not a performance hint - silently reallocating would hide a generator
// bug that undercounted a piece type's maximum.
func (ms *MoveSlice) PushBack(m Move) {
	if len(*ms) >= cap(*ms) {
		panic(fmt.Sprintf("moveslice: capacity %d exceeded", cap(*ms)))
	}
	*ms = append(*ms, m)
}

// At returns the move at index i. Panics if i is out of bounds.
func (ms *MoveSlice) At(i int) Move {
	if i < 0 || i >= len(*ms) {
		panic("moveslice: index out of bounds")
	}
	return (*ms)[i]
}

// Clear empties the slice while retaining its capacity.
func (ms *MoveSlice) Clear() {
	*ms = (*ms)[:0]
}

// Clone deep-copies the slice into a new one of the same length and
// capacity.
func (ms *MoveSlice) Clone() *MoveSlice {
	dest := make([]Move, ms.Len(), ms.Cap())
	copy(dest, *ms)
	return (*MoveSlice)(&dest)
}

// Equals reports whether ms and other hold the same moves in the same
// order.
func (ms *MoveSlice) Equals(other *MoveSlice) bool {
	if ms.Len() != other.Len() {
		return false
	}
	for i, m := range *ms {
		if m != (*other)[i] {
			return false
		}
	}
	return true
}

// Contains reports whether m appears anywhere in the slice, ignoring
// order - the shape most move-generation tests need, since generator
// output order is explicitly unspecified beyond CLZ iteration (§4.7).
func (ms *MoveSlice) Contains(m Move) bool {
	for _, x := range *ms {
		if x == m {
			return true
		}
	}
	return false
}

// String renders the slice for debugging/logging.
func (ms *MoveSlice) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "MoveSlice: [%d] { ", ms.Len())
	for i := 0; i < ms.Len(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(ms.At(i).String())
	}
	b.WriteString(" }")
	return b.String()
}
