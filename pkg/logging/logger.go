// Package logging builds the structured logger shared by every component.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"golang.org/x/term"
)

// New creates a logger writing to w. A terminal gets slog's text format;
// anything else, such as journald, gets JSON. Every record carries
// a run id that changes with each process start.
func New(w io.Writer) *slog.Logger {
	var handler slog.Handler
	options := &slog.HandlerOptions{Level: slog.LevelInfo}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler).With("run", uuid.NewString())
}
