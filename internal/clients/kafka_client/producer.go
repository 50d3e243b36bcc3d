package kafka_client

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

// Message is a single record to publish.
type Message struct {
	Key   string
	Value []byte
}

// transactionalProducer is the subset of *kafka.Producer the publisher uses.
type transactionalProducer interface {
	BeginTransaction() error
	Produce(msg *kafka.Message, deliveryChan chan kafka.Event) error
	CommitTransaction(ctx context.Context) error
	AbortTransaction(ctx context.Context) error
	Flush(timeoutMs int) int
	Close()
}

// Publisher writes batches of messages to one topic, each batch in its own
// transaction.
type Publisher struct {
	producer transactionalProducer
	topic    string
	timeout  time.Duration
}

func NewPublisher(ctx context.Context, cfg KafkaConfig) (*Publisher, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	slog.Info("[KafkaClient] Initializing Kafka Producer...", slog.String("broker", cfg.Broker))

	p, err := kafka.NewProducer(&kafka.ConfigMap{
		"bootstrap.servers":                     cfg.Broker,
		"security.protocol":                     "PLAINTEXT",
		"api.version.request":                   "true",
		"enable.idempotence":                    true,
		"acks":                                  "all",
		"max.in.flight.requests.per.connection": 1,
		"transactional.id":                      cfg.TransactionalID,
	})
	if err != nil {
		return nil, fmt.Errorf("[KafkaClient] Failed to create producer: %w", err)
	}

	pub := &Publisher{producer: p, topic: cfg.Topic, timeout: cfg.Timeout}
	initCtx, cancel := pub.callContext(ctx)
	defer cancel()
	if err := p.InitTransactions(initCtx); err != nil {
		p.Close()
		return nil, fmt.Errorf("[KafkaClient] Failed to init transactions: %w", err)
	}

	slog.Info("[KafkaClient] Kafka Producer initialized successfully")
	return pub, nil
}

// callContext bounds a single transactional call. The producer ignores
// cancellation and only honors deadlines.
func (p *Publisher) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := p.timeout
	if timeout <= 0 {
		timeout = DEFAULT_TIMEOUT
	}
	return context.WithTimeout(ctx, timeout)
}

// PublishBatch produces every message inside one transaction. Any failure
// aborts the whole batch.
func (p *Publisher) PublishBatch(ctx context.Context, msgs []Message) error {
	if len(msgs) == 0 {
		return nil
	}

	if err := p.producer.BeginTransaction(); err != nil {
		return fmt.Errorf("[KafkaClient] failed to begin transaction: %w", err)
	}

	for _, m := range msgs {
		if err := p.produce(m); err != nil {
			return p.abort(ctx, err)
		}
	}

	var commitErr error
	for i := 0; i < COMMIT_RETRIES; i++ {
		if err := ctx.Err(); err != nil {
			return p.abort(ctx, err)
		}
		commitErr = p.commit(ctx)
		if commitErr == nil {
			break
		}
		slog.Warn("[KafkaClient] Failed to commit transaction, retrying...",
			slog.Int("attempt", i+1),
			slog.String("error", commitErr.Error()))
	}
	if commitErr != nil {
		return p.abort(ctx, fmt.Errorf("[KafkaClient] failed to commit transaction after %d retries: %w", COMMIT_RETRIES, commitErr))
	}

	slog.Info("[KafkaClient] Published batch transactionally",
		slog.String("topic", p.topic),
		slog.Int("messages", len(msgs)))
	return nil
}

func (p *Publisher) commit(ctx context.Context) error {
	callCtx, cancel := p.callContext(ctx)
	defer cancel()
	return p.producer.CommitTransaction(callCtx)
}

func (p *Publisher) produce(m Message) error {
	topic := p.topic
	msg := &kafka.Message{
		TopicPartition: kafka.TopicPartition{Topic: &topic, Partition: kafka.PartitionAny},
		Key:            []byte(m.Key),
		Value:          m.Value,
	}

	var err error
	for i := 0; i < PRODUCE_RETRIES; i++ {
		err = p.producer.Produce(msg, nil)
		if err == nil {
			return nil
		}
		slog.Warn("[KafkaClient] Failed to produce message, retrying...",
			slog.Int("attempt", i+1),
			slog.String("key", m.Key))
	}
	return fmt.Errorf("[KafkaClient] failed to produce message %q: %w", m.Key, err)
}

// abort still runs when ctx is canceled so the transaction is not left open.
func (p *Publisher) abort(ctx context.Context, cause error) error {
	abortCtx, cancel := p.callContext(context.WithoutCancel(ctx))
	defer cancel()
	if abortErr := p.producer.AbortTransaction(abortCtx); abortErr != nil {
		return errors.Join(cause, fmt.Errorf("[KafkaClient] failed to abort transaction: %w", abortErr))
	}
	return cause
}

func (p *Publisher) Close() {
	slog.Info("[KafkaClient] Flushing Kafka producer before shutdown...")
	if remaining := p.producer.Flush(FLUSH_TIMEOUT_MS); remaining > 0 {
		slog.Warn("[KafkaClient] Not all messages were delivered before shutdown",
			slog.Int("remaining", remaining))
	}
	p.producer.Close()
	slog.Info("[KafkaClient] Kafka producer shut down")
}
