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

// Color is one of White or Black. Using a 2-entry-array-indexable enum
// instead of branching on a bool avoids "either this side or that side"
// branchy accessors throughout the board state and move generator.
type Color uint8

const (
	White Color = iota
	Black
	ColorLength
)

// Flip returns the opposite color.
func (c Color) Flip() Color {
	return c ^ 1
}

// String renders the color as "w" or "b".
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}
