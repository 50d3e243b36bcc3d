package export

import (
	"context"

	"github.com/spacesedan/sentiscore/internal/db"
	"github.com/spacesedan/sentiscore/internal/report"
)

type SummaryWriter interface {
	PutSummaries(ctx context.Context, items []db.AuthorSummaryItem) error
}

// DynamoExporter stores one item per author.
type DynamoExporter struct {
	Store SummaryWriter
}

func (d *DynamoExporter) Name() string { return "dynamodb" }

func (d *DynamoExporter) Export(ctx context.Context, rep *report.Report) error {
	items := make([]db.AuthorSummaryItem, 0, len(rep.Authors))
	for _, a := range rep.Authors {
		items = append(items, summaryItem(rep.GeneratedAt, a))
	}
	return d.Store.PutSummaries(ctx, items)
}

func summaryItem(generatedAt string, a report.Author) db.AuthorSummaryItem {
	return db.AuthorSummaryItem{
		Author:               a.Name,
		GeneratedAt:          generatedAt,
		PostCount:            a.AdvancedSummary.PostCount,
		TotalWords:           a.BaseStats.TotalWords,
		PositivePercent:      a.BaseStats.PositivePercent,
		NegativePercent:      a.BaseStats.NegativePercent,
		AvgBaseSentiment:     a.AdvancedSummary.AvgBaseSentiment,
		AvgAdjustedSentiment: a.AdvancedSummary.AvgAdjustedSentiment,
		AvgStyleScore:        a.AdvancedSummary.AvgStyleScore,
		MostPositivePostID:   a.MostPositivePostID,
		MostNegativePostID:   a.MostNegativePostID,
	}
}
