// Package export delivers a finished report to one or more sinks.
package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spacesedan/sentiscore/internal/report"
)

type Exporter interface {
	Name() string
	Export(ctx context.Context, rep *report.Report) error
}

// RunAll runs every exporter in order. A failing exporter is logged and does
// not stop the rest; all failures are returned joined.
func RunAll(ctx context.Context, exporters []Exporter, rep *report.Report) error {
	var errs []error
	for _, e := range exporters {
		start := time.Now()
		if err := e.Export(ctx, rep); err != nil {
			slog.Error("[Export] Exporter failed",
				slog.String("exporter", e.Name()),
				slog.String("error", err.Error()))
			errs = append(errs, fmt.Errorf("%s: %w", e.Name(), err))
			continue
		}
		slog.Info("[Export] Exporter finished",
			slog.String("exporter", e.Name()),
			slog.Duration("took", time.Since(start)))
	}
	return errors.Join(errs...)
}
