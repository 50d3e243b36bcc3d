package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spacesedan/sentiscore/config"
	"github.com/spacesedan/sentiscore/internal/clients"
	"github.com/spacesedan/sentiscore/internal/clients/kafka_client"
	"github.com/spacesedan/sentiscore/internal/db"
	"github.com/spacesedan/sentiscore/internal/export"
)

// buildExporters connects every sink listed in settings. The returned
// cleanup closes whatever was opened and is safe to call on error.
func buildExporters(ctx context.Context, s config.Settings) ([]export.Exporter, func(), error) {
	var (
		exporters []export.Exporter
		closers   []func()
		errs      []error
	)
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	for _, name := range s.Exporters {
		switch name {
		case config.ExporterFile:
			exporters = append(exporters, &export.FileExporter{Path: s.ReportPath})

		case config.ExporterDynamoDB:
			client, err := clients.GetDynamoDBClient(ctx, s.AWS)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			exporters = append(exporters, &export.DynamoExporter{
				Store: db.NewSummaryStore(client, s.AWS.Table, s.ReportTTL, s.AWS.Timeout),
			})

		case config.ExporterValkey:
			vc, err := clients.NewValkeyClient(s.Valkey)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			closers = append(closers, vc.Close)
			exporters = append(exporters, &export.ValkeyExporter{
				Cache:      vc,
				ReportKey:  clients.VALKEY_REPORT_KEY,
				AuthorsKey: clients.VALKEY_AUTHOR_SUMMARY_KEY,
				TTL:        s.ReportTTL,
			})

		case config.ExporterKafka:
			pub, err := kafka_client.NewPublisher(ctx, kafka_client.GetKafkaConfig(s.Kafka))
			if err != nil {
				errs = append(errs, err)
				continue
			}
			closers = append(closers, pub.Close)
			exporters = append(exporters, &export.KafkaExporter{Publisher: pub})

		default:
			errs = append(errs, fmt.Errorf("[Analyzer] unknown exporter %q", name))
		}
	}

	// Sinks that connected still run; connection failures are reported after.
	for _, err := range errs {
		slog.Error("[Analyzer] Exporter unavailable", slog.String("error", err.Error()))
	}
	if len(exporters) == 0 && len(errs) > 0 {
		return nil, cleanup, errors.Join(errs...)
	}
	return exporters, cleanup, nil
}
