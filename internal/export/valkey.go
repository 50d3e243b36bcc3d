package export

import (
	"context"
	"fmt"
	"time"

	"github.com/spacesedan/sentiscore/internal/report"
	"github.com/spacesedan/sentiscore/internal/utils"
)

type ReportCache interface {
	SetReport(ctx context.Context, key, payload string, ttl time.Duration) error
	SetAuthorSummaries(ctx context.Context, key string, fields map[string]string, ttl time.Duration) error
}

// ValkeyExporter caches the full report under ReportKey and each author's
// entry, without posts, as a field of the hash at AuthorsKey.
type ValkeyExporter struct {
	Cache      ReportCache
	ReportKey  string
	AuthorsKey string
	TTL        time.Duration
}

func (v *ValkeyExporter) Name() string { return "valkey" }

func (v *ValkeyExporter) Export(ctx context.Context, rep *report.Report) error {
	payload, err := utils.SerializeToJSON(rep)
	if err != nil {
		return fmt.Errorf("[ValkeyExporter] failed to encode report: %w", err)
	}
	if err := v.Cache.SetReport(ctx, v.ReportKey, string(payload), v.TTL); err != nil {
		return err
	}

	fields := make(map[string]string, len(rep.Authors))
	for _, a := range rep.Authors {
		a.Posts = nil
		data, err := utils.SerializeToJSON(a)
		if err != nil {
			return fmt.Errorf("[ValkeyExporter] failed to encode author %q: %w", a.Name, err)
		}
		fields[a.Name] = string(data)
	}
	return v.Cache.SetAuthorSummaries(ctx, v.AuthorsKey, fields, v.TTL)
}
