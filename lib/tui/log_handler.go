// Copyright 2026 The SeaShade Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// LogNoticeMsg delivers a slog record to a bubbletea model for display
// in the status bar. Only records at or above the handler's configured
// level are delivered.
type LogNoticeMsg struct {
	// Summary is the human-readable one-line message for the status bar.
	Summary string

	// Level is the slog level for styling (warn vs error).
	Level slog.Level
}

// LogHandler is a slog.Handler that routes log records into a
// bubbletea program as messages. Records below the configured level
// are silently dropped; records at or above it are formatted and sent
// via program.Send().
//
// The handler must be created before the program starts. Call
// SetProgram once the tea.Program exists to enable delivery; records
// arriving earlier are dropped. Handlers derived via WithAttrs and
// WithGroup share the same program pointer, so a single SetProgram
// call propagates to every derived handler.
type LogHandler struct {
	level   slog.Level
	program *atomic.Pointer[tea.Program]
	attrs   []slog.Attr
}

// NewLogHandler creates a handler delivering records at or above the
// given level.
func NewLogHandler(level slog.Level) *LogHandler {
	return &LogHandler{
		level:   level,
		program: &atomic.Pointer[tea.Program]{},
	}
}

// SetProgram sets the bubbletea program that receives log messages.
// Safe to call from any goroutine.
func (handler *LogHandler) SetProgram(program *tea.Program) {
	handler.program.Store(program)
}

// Enabled reports whether the handler wants records at the given level.
func (handler *LogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= handler.level
}

// Handle formats the record as "message (key=value, ...)" and sends it
// to the program. Dropped silently when no program is set yet.
func (handler *LogHandler) Handle(_ context.Context, record slog.Record) error {
	program := handler.program.Load()
	if program == nil {
		return nil
	}

	var attrParts []string
	for _, attr := range handler.attrs {
		attrParts = append(attrParts, fmt.Sprintf("%s=%s", attr.Key, attr.Value))
	}
	record.Attrs(func(attr slog.Attr) bool {
		attrParts = append(attrParts, fmt.Sprintf("%s=%s", attr.Key, attr.Value))
		return true
	})

	summary := record.Message
	if len(attrParts) > 0 {
		summary += " (" + strings.Join(attrParts, ", ") + ")"
	}

	program.Send(LogNoticeMsg{Summary: summary, Level: record.Level})
	return nil
}

// WithAttrs returns a derived handler with the attributes appended.
// It shares the root handler's program pointer.
func (handler *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, 0, len(handler.attrs)+len(attrs))
	merged = append(merged, handler.attrs...)
	merged = append(merged, attrs...)
	return &LogHandler{
		level:   handler.level,
		program: handler.program,
		attrs:   merged,
	}
}

// WithGroup returns a derived handler. Groups are flattened: the
// status bar is one line, so nesting adds nothing but noise.
func (handler *LogHandler) WithGroup(string) slog.Handler {
	return handler
}
