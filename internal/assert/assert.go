// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package assert checks caller preconditions in debug builds.
//
// Containers in this module follow a fail-fast contract: popping an empty
// vector or indexing out of range is a caller bug, not an error value.
// Release builds skip the checks entirely. Building with -tags debug turns
// each violation into a structured log record followed by a panic.
package assert

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
)

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})))
}

// SetLogger replaces the logger used to report violations.
// A nil logger restores the default stderr text logger.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	logger.Store(l)
}

// That panics with msg when cond is false and Enabled is set.
// attrs are key/value pairs in the log/slog convention.
func That(cond bool, msg string, attrs ...any) {
	if !Enabled || cond {
		return
	}
	fail(msg, attrs...)
}

// Index checks 0 <= i < n.
func Index(op string, i, n int) {
	if !Enabled || (i >= 0 && i < n) {
		return
	}
	fail("index out of range", "op", op, "index", i, "len", n)
}

// Range checks 0 <= from <= to <= n.
func Range(op string, from, to, n int) {
	if !Enabled || (from >= 0 && from <= to && to <= n) {
		return
	}
	fail("range out of bounds", "op", op, "from", from, "to", to, "len", n)
}

func fail(msg string, attrs ...any) {
	logger.Load().Log(context.Background(), slog.LevelError, msg, attrs...)
	panic(fmt.Sprintf("assert: %s %v", msg, attrs))
}
