package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/msgprune/pkg/locale"
	"github.com/matzehuels/msgprune/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Processed 12 files (4ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Observability
// =============================================================================

// logHooks reports prune and catalog events as debug log lines.
type logHooks struct {
	logger *log.Logger
}

var (
	_ observability.PruneHooks   = (*logHooks)(nil)
	_ observability.CatalogHooks = (*logHooks)(nil)
)

// registerLogHooks routes observability events to l.
func registerLogHooks(l *log.Logger) {
	h := &logHooks{logger: l}
	observability.SetPruneHooks(h)
	observability.SetCatalogHooks(h)
}

func (h *logHooks) OnRunStart(_ context.Context, dir, reference string, dryRun bool) {
	h.logger.Debug("run started", "dir", dir, "reference", reference, "dry_run", dryRun)
}

func (h *logHooks) OnRunComplete(_ context.Context, filesChanged, keysRemoved int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("run aborted", "files_changed", filesChanged, "err", err)
		return
	}
	h.logger.Debug("run complete", "files_changed", filesChanged, "keys_removed", keysRemoved, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnFileStart(_ context.Context, name string) {
	kv := []any{"file", name}
	if tag, ok := locale.FromFilename(name); ok {
		kv = append(kv, "locale", locale.DisplayName(tag))
	}
	h.logger.Debug("processing", kv...)
}

func (h *logHooks) OnFileComplete(_ context.Context, name, status string, extras int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("file failed", "file", name, "status", status, "err", err)
		return
	}
	h.logger.Debug("file done", "file", name, "status", status, "extras", extras, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnLoad(_ context.Context, path string, keys int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("load failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("loaded", "path", path, "keys", keys, "took", d.Round(time.Microsecond))
}

func (h *logHooks) OnSave(_ context.Context, path string, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("save failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("saved", "path", path, "took", d.Round(time.Microsecond))
}
