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

// Package book decodes Polyglot opening-book files into Entry values.
// It is decode-only: there is no position-keyed Probe, because probing
// requires a Zobrist hash of a position.State, and this core does not
// keep one (move generation is pure and stateless over a BoardState -
// no incremental hash is threaded through it). Decoded entries are
// useful on their own, e.g. for feeding a census or a future search
// layer that does maintain its own hash.
package book

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/warp-records/knightmare/internal/types"
)

// Entry is one (position key, move, weight) record from a Polyglot book.
// Key is the book's own 64-bit Zobrist-style hash, opaque to this
// package - it is never computed here, only read back.
type Entry struct {
	Key        uint64
	Move       types.Move
	Weight     uint16
	LearnValue uint32
}

// polyglot promotion-piece codes, 0 meaning "no promotion".
var polyglotPromotion = [8]types.PieceType{
	types.PtNone, types.Knight, types.Bishop, types.Rook, types.Queen,
	types.PtNone, types.PtNone, types.PtNone,
}

// LoadFile opens path and decodes it as a Polyglot book.
func LoadFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads Polyglot entries from r until EOF. Each entry is 16
// bytes, big-endian: 8-byte key, 2-byte move, 2-byte weight, 4-byte
// learn value (kept but not interpreted).
func Decode(r io.Reader) ([]Entry, error) {
	var entries []Entry
	var raw [16]byte

	for {
		_, err := io.ReadFull(r, raw[:])
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("book: short entry: %w", err)
		}

		entries = append(entries, Entry{
			Key:        binary.BigEndian.Uint64(raw[0:8]),
			Move:       decodeMove(binary.BigEndian.Uint16(raw[8:10])),
			Weight:     binary.BigEndian.Uint16(raw[10:12]),
			LearnValue: binary.BigEndian.Uint32(raw[12:16]),
		})
	}

	return entries, nil
}

// decodeMove unpacks a Polyglot move field:
//
//	bits 0-2:   to file      bits 3-5:  to rank
//	bits 6-8:   from file    bits 9-11: from rank
//	bits 12-14: promotion piece (0=none,1=knight,2=bishop,3=rook,4=queen)
//
// Castling is encoded king-captures-rook (e1h1, e1a1, ...); this decoder
// reports the raw king source/destination pair rather than rewriting it
// to a king's actual landing square, since this core has no castling
// move representation to target (§4.7 Non-goals).
func decodeMove(data uint16) types.Move {
	toFile := uint8(data & 7)
	toRank := uint8((data >> 3) & 7)
	fromFile := uint8((data >> 6) & 7)
	fromRank := uint8((data >> 9) & 7)
	promo := (data >> 12) & 7

	m := types.NewMove(types.NewSquare(fromFile, fromRank), types.NewSquare(toFile, toRank))
	m.Promotion = polyglotPromotion[promo]
	return m
}
