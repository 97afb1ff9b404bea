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

// Package config holds the core's globally available configuration:
// defaults, overridable by a TOML file.
package config

import (
	"fmt"
	"log"

	"github.com/BurntSushi/toml"
	"github.com/op/go-logging"

	"github.com/warp-records/knightmare/internal/magiccache"
	"github.com/warp-records/knightmare/internal/util"
)

// ConfFile is the path to the config file, relative to the working
// directory unless absolute.
var ConfFile = "./config.toml"

// Settings is the global configuration, read from ConfFile (if present)
// over the defaults that Setup fills in.
var Settings Config

var initialized = false

// Config is the on-disk shape of config.toml.
type Config struct {
	MagicsCachePath string
	LogLevel        string
}

// Setup reads ConfFile if it exists, falling back to defaults for
// anything it does not set, and is idempotent - safe to call multiple
// times (e.g. once per CLI invocation and once from tests).
func Setup() {
	if initialized {
		return
	}
	Settings.MagicsCachePath = magiccache.DefaultPath
	Settings.LogLevel = "INFO"

	if path, err := util.ResolveFile(ConfFile); err == nil {
		if _, err := toml.DecodeFile(path, &Settings); err != nil {
			log.Println("config: malformed config file, using defaults:", err)
		}
	}
	initialized = true
}

// LogLevel parses Settings.LogLevel into a go-logging level, defaulting
// to INFO for an empty or unrecognized value rather than failing
// startup over a typo in config.toml.
func LogLevel() logging.Level {
	lvl, err := logging.LogLevel(Settings.LogLevel)
	if err != nil {
		return logging.INFO
	}
	return lvl
}

// String renders the active settings, for diagnostics.
func (c Config) String() string {
	return fmt.Sprintf("MagicsCachePath=%s LogLevel=%s", c.MagicsCachePath, c.LogLevel)
}
