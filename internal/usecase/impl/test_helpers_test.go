package impl

import (
	"io"
	"log/slog"
)

// newDiscardLogger returns a logger that swallows all output, keeping test
// runs quiet.
func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
