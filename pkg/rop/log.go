package rop

import (
	"io"
	"log/slog"
	"sync/atomic"
)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// SetLogger installs the logger used for debug traces of captured faults and
// error fusion. Passing nil restores the silent default.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	current.Store(l)
}

// Logger returns the installed logger.
func Logger() *slog.Logger {
	return current.Load()
}
