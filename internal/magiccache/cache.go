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

// Package magiccache persists a built magic.Db to disk so that the
// (slow, CPU-bound) magic search in magic.Build only has to run once per
// machine, not once per process start.
package magiccache

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/warp-records/knightmare/internal/magic"
	"github.com/warp-records/knightmare/internal/types"
)

// DefaultPath is the cache file location config.Setup uses when
// config.toml does not set one. LoadOrGenerate itself always uses the
// path it is given.
const DefaultPath = "magics/magics.db"

// Load decodes a magic.Db previously written by Save. It wraps
// types.ErrCacheUnavailable on any read or decode failure so callers can
// uniformly fall back to regenerating.
func Load(path string) (*magic.Db, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrCacheUnavailable, err)
	}

	db := &magic.Db{}
	dec := gob.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(db); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrCacheUnavailable, err)
	}
	return db, nil
}

// Save gob-encodes db and writes it to path, creating any missing parent
// directory. Failure at either step is wrapped in
// types.ErrCacheWriteFailure.
func Save(path string, db *magic.Db) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(db); err != nil {
		return fmt.Errorf("%w: %v", types.ErrCacheWriteFailure, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %v", types.ErrCacheWriteFailure, err)
		}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %v", types.ErrCacheWriteFailure, err)
	}
	return nil
}

// LoadOrGenerate implements §4.5: try Load first, and on any failure
// (missing file, truncated file, format mismatch after a struct change)
// fall back to magic.Build and persist the freshly built Db via Save so
// the next call hits the cache. A Save failure after a successful build
// is logged to the returned error but the built Db is still usable -
// callers that only need a working Db, not a written one, may choose to
// ignore it.
func LoadOrGenerate(path string) (*magic.Db, error) {
	if db, err := Load(path); err == nil {
		return db, nil
	}

	db := magic.Build()
	if err := Save(path, db); err != nil {
		return db, err
	}
	return db, nil
}

// IsUnavailable reports whether err indicates the cache could not be
// read, as opposed to a write failure during regeneration.
func IsUnavailable(err error) bool {
	return errors.Is(err, types.ErrCacheUnavailable)
}
