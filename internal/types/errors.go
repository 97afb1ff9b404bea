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

import "errors"

// Sentinel errors for the core's error taxonomy. ProgrammerError is not
// listed here: it is a contract violation (move generation called before
// the magics cache is Ready) and is handled in the movegen package:
// movegen.New panics on a nil magic.Db, and Generator methods return
// movegen.ErrNotReady, not a value from this package.
var (
	// ErrMalformedFen is returned by BoardState parsing when the
	// placement field has an illegal character, a row that does not sum
	// to exactly 8 files, or a count of ranks other than 8.
	ErrMalformedFen = errors.New("types: malformed FEN placement field")

	// ErrCacheUnavailable is returned when the magics cache file cannot
	// be opened or decoded. Callers recover by regenerating.
	ErrCacheUnavailable = errors.New("types: magics cache unavailable")

	// ErrCacheWriteFailure is returned when magic-table generation
	// succeeded but persisting the result to disk failed.
	ErrCacheWriteFailure = errors.New("types: magics cache write failure")
)
