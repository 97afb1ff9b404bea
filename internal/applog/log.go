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

// Package applog wires up go-logging console backends for the two logs
// the core uses: a general core log and a separate log for the
// magics-generation step. Both share one process-wide backend, so they
// do not keep separate levels (see GetLog).
package applog

import (
	"os"

	"github.com/op/go-logging"
)

// GetLog returns a named logger writing to stdout at level, with a
// timestamp/location/level prefix. Each call replaces the process-wide
// go-logging backend and sets level as the default for every module, so
// the most recent call's level applies to all loggers, not just this one.
func GetLog(name string, level logging.Level) *logging.Logger {
	log := logging.MustGetLogger(name)
	backend := logging.NewLogBackend(os.Stdout, "", 0)
	format := logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
	)
	leveled := logging.AddModuleLevel(logging.NewBackendFormatter(backend, format))
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
	return log
}

// Core returns the core move-generation log, named "core".
func Core(level logging.Level) *logging.Logger {
	return GetLog("core", level)
}

// Magics returns the magics-generation log, named "magics".
func Magics(level logging.Level) *logging.Logger {
	return GetLog("magics", level)
}
