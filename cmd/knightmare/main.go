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

package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/pkg/profile"

	"github.com/warp-records/knightmare/internal/applog"
	"github.com/warp-records/knightmare/internal/book"
	"github.com/warp-records/knightmare/internal/census"
	"github.com/warp-records/knightmare/internal/config"
	"github.com/warp-records/knightmare/internal/magiccache"
	"github.com/warp-records/knightmare/internal/movegen"
	"github.com/warp-records/knightmare/internal/position"
)

const version = "0.1.0"

var out = message.NewPrinter(language.German)

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	cachePath := flag.String("magics", "", "path to the magics cache file (overrides config.toml)")
	fen := flag.String("fen", "", "FEN placement field to load instead of the initial position")
	bookFile := flag.String("book", "", "Polyglot opening book file to decode and summarize")
	cpuProfile := flag.Bool("cpuprofile", false, "profile magics generation with github.com/pkg/profile")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()
	if *cachePath != "" {
		config.Settings.MagicsCachePath = *cachePath
	}

	log := applog.Core(config.LogLevel())

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	log.Infof("loading magic tables from %s", config.Settings.MagicsCachePath)
	db, err := magiccache.LoadOrGenerate(config.Settings.MagicsCachePath)
	if err != nil {
		log.Errorf("magics cache: %v (continuing with the in-memory table)", err)
	}

	gen := movegen.New(db)

	st := position.NewInitial()
	if *fen != "" {
		st, err = position.TryFromFEN(*fen)
		if err != nil {
			log.Fatalf("malformed FEN placement field: %v", err)
		}
	}

	count, err := census.Run(gen, st)
	if err != nil {
		log.Fatalf("census: %v", err)
	}
	out.Println(st.Occupied().StringBoard())
	out.Printf("side to move: %s  castling: %s\n", st.SideToMove, st.Castling)
	out.Printf("pseudo-legal moves: %s\n", count)

	if *bookFile != "" {
		entries, err := book.LoadFile(*bookFile)
		if err != nil {
			log.Fatalf("book: %v", err)
		}
		out.Printf("decoded %d book entries from %s\n", len(entries), *bookFile)
	}
}

func printVersionInfo() {
	out.Printf("knightmare %s\n", version)
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
	fmt.Println()
}
