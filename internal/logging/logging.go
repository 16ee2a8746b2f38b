// Copyright (c) CurioSwitch (choko@curioswitch.org)
// SPDX-License-Identifier: BUSL-1.1

// Package logging configures human-readable logs for local development.
package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
)

// SetupColor replaces the default logger with a colored one writing to w.
func SetupColor(w io.Writer, level slog.Level) {
	slog.SetDefault(slog.New(NewColorHandler(w, level)))
}

// NewColorHandler returns a tint handler writing to w.
func NewColorHandler(w io.Writer, level slog.Level) slog.Handler {
	return tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		AddSource:  true,
	})
}
