// Package applog sets up the process-wide slog.Logger for cmd/hexcli,
// mirroring the env-gated dev/prod switch in the teacher's
// cmd/indexer/main.go (parseFlags checks an _ENV variable to decide the
// handler) and the otelslog.NewLogger bridge the teacher wires as a
// package-level Logger in services/gormbe and services/gaebe. Only this
// package and cmd/hexcli log; the core packages (hex, feature, hexmap,
// traversal) never import log/slog.
package applog

import (
	"log/slog"
	"os"

	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const otelEnvVar = "WEEWAR_HEXCORE_OTEL"

const instrumentationName = "github.com/turnforge/hexengine"

// New builds the process logger. When WEEWAR_HEXCORE_OTEL=1 is set it
// returns an otelslog.NewLogger bridge so records also flow through the
// OpenTelemetry log pipeline; otherwise it returns a plain
// slog.NewTextHandler logger writing to stderr at the given level.
func New(level slog.Level) *slog.Logger {
	if os.Getenv(otelEnvVar) == "1" {
		return otelslog.NewLogger(instrumentationName)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
