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

// prng is a xorshift64star generator used to draw magic-multiplier
// candidates. For reproducible magic tables the seed is always the fixed
// value mandated for the magics builder (see Seed and newPrng), never a per-square
// or per-rank seed table.
type prng struct {
	seed uint64
}

// newPrng creates a generator seeded with the given value. A zero seed is
// nudged to a fixed nonzero constant, since xorshift is degenerate at
// zero.
func newPrng(seed uint64) *prng {
	if seed == 0 {
		seed = 1070372
	}
	return &prng{seed: seed}
}

// rand64 returns the next pseudo-random 64-bit value (xorshift64star).
func (p *prng) rand64() uint64 {
	p.seed ^= p.seed >> 12
	p.seed ^= p.seed << 25
	p.seed ^= p.seed >> 27
	return p.seed * 2685821657736338717
}

// sparseRand draws a sparse candidate by AND-ing three independent draws.
// Sparse candidates converge faster during magic search, per the AND-bias
// observation the magic-table builder relies on.
func (p *prng) sparseRand() uint64 {
	return p.rand64() & p.rand64() & p.rand64()
}
