// Package slog provides log/slog helpers for surfacing configuration
// diagnostics.
package slog

import (
	"log/slog"

	"github.com/fwojciec/plaintext"
)

// LogDiagnostics emits each diagnostic at Warn level with its code as
// a structured attribute. Check itself is pure and returns records;
// callers that want the original print-a-warning behavior opt in here.
func LogDiagnostics(logger *slog.Logger, diags []plaintext.Diagnostic) {
	for _, d := range diags {
		logger.Warn(d.Message, slog.String("code", string(d.Code)))
	}
}
