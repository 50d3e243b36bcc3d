package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/spacesedan/sentiscore/internal/utils"
)

const (
	maxBatchSize   = 25
	maxRetries     = 3
	initialBackoff = 500 * time.Millisecond
	defaultTimeout = 10 * time.Second
)

// BatchWriter is the part of *dynamodb.Client the store needs.
type BatchWriter interface {
	BatchWriteItem(ctx context.Context, params *dynamodb.BatchWriteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.BatchWriteItemOutput, error)
}

// AuthorSummaryItem is one row of the summaries table, keyed by author.
type AuthorSummaryItem struct {
	Author               string  `dynamodbav:"author"`
	GeneratedAt          string  `dynamodbav:"generated_at"`
	PostCount            int     `dynamodbav:"post_count"`
	TotalWords           int     `dynamodbav:"total_words"`
	PositivePercent      float64 `dynamodbav:"positive_percent"`
	NegativePercent      float64 `dynamodbav:"negative_percent"`
	AvgBaseSentiment     float64 `dynamodbav:"avg_base_sentiment"`
	AvgAdjustedSentiment float64 `dynamodbav:"avg_adjusted_sentiment"`
	AvgStyleScore        float64 `dynamodbav:"avg_style_score"`
	MostPositivePostID   string  `dynamodbav:"most_positive_post_id,omitempty"`
	MostNegativePostID   string  `dynamodbav:"most_negative_post_id,omitempty"`
	ExpiresAt            int64   `dynamodbav:"expires_at"`
}

type SummaryStore struct {
	client  BatchWriter
	table   string
	ttl     time.Duration
	timeout time.Duration
	backoff time.Duration
	now     func() time.Time
}

// NewSummaryStore bounds every BatchWriteItem call by timeout; zero means
// ten seconds.
func NewSummaryStore(client BatchWriter, table string, ttl, timeout time.Duration) *SummaryStore {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &SummaryStore{
		client:  client,
		table:   table,
		ttl:     ttl,
		timeout: timeout,
		backoff: initialBackoff,
		now:     time.Now,
	}
}

func (s *SummaryStore) batchWrite(ctx context.Context, requests map[string][]types.WriteRequest) (*dynamodb.BatchWriteItemOutput, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return s.client.BatchWriteItem(callCtx, &dynamodb.BatchWriteItemInput{RequestItems: requests})
}

// PutSummaries writes items in batches of 25. Unprocessed items are retried
// with a doubling backoff; anything left after the last retry is an error.
func (s *SummaryStore) PutSummaries(ctx context.Context, items []AuthorSummaryItem) error {
	expiresAt := s.now().Add(s.ttl).Unix()

	for _, batch := range utils.Chunk(items, maxBatchSize) {
		select {
		case <-ctx.Done():
			slog.Warn("[DynamoDB] context canceled")
			return ctx.Err()
		default:
		}

		writeRequests := make([]types.WriteRequest, 0, len(batch))
		for _, item := range batch {
			item.ExpiresAt = expiresAt
			av, err := attributevalue.MarshalMap(item)
			if err != nil {
				return fmt.Errorf("[DynamoDB] Failed to marshal summary for %q: %w", item.Author, err)
			}
			writeRequests = append(writeRequests, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: av},
			})
		}

		if err := s.writeBatch(ctx, writeRequests); err != nil {
			return err
		}
	}

	slog.Info("[DynamoDB] Successfully stored author summaries",
		slog.String("table", s.table),
		slog.Int("count", len(items)))
	return nil
}

func (s *SummaryStore) writeBatch(ctx context.Context, requests []types.WriteRequest) error {
	out, err := s.batchWrite(ctx, map[string][]types.WriteRequest{s.table: requests})
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to batch write summaries: %w", err)
	}

	retryCount := 0
	backoff := s.backoff
	for len(out.UnprocessedItems) > 0 && retryCount < maxRetries {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2

		slog.Warn("[DynamoDB] Retrying unprocessed items...",
			slog.Int("retry_attempt", retryCount+1),
			slog.Int("remaining_items", len(out.UnprocessedItems[s.table])))

		out, err = s.batchWrite(ctx, out.UnprocessedItems)
		if err != nil {
			return fmt.Errorf("[DynamoDB] Failed to retry batch write: %w", err)
		}
		retryCount++
	}

	if remaining := len(out.UnprocessedItems[s.table]); remaining > 0 {
		slog.Error("[DynamoDB] Some items were not written even after retries",
			slog.Int("remaining_items", remaining))
		return fmt.Errorf("[DynamoDB] %d items unprocessed after %d retries", remaining, maxRetries)
	}
	return nil
}
