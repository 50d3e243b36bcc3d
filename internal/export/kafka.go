package export

import (
	"context"
	"fmt"

	"github.com/spacesedan/sentiscore/internal/clients/kafka_client"
	"github.com/spacesedan/sentiscore/internal/report"
	"github.com/spacesedan/sentiscore/internal/utils"
)

type BatchPublisher interface {
	PublishBatch(ctx context.Context, msgs []kafka_client.Message) error
}

// authorMessage is the payload of one Kafka record.
type authorMessage struct {
	GeneratedAt string        `json:"generatedAt"`
	Author      report.Author `json:"author"`
}

// KafkaExporter publishes one message per author, keyed by author name, in a
// single transaction.
type KafkaExporter struct {
	Publisher BatchPublisher
}

func (k *KafkaExporter) Name() string { return "kafka" }

func (k *KafkaExporter) Export(ctx context.Context, rep *report.Report) error {
	msgs := make([]kafka_client.Message, 0, len(rep.Authors))
	for _, a := range rep.Authors {
		data, err := utils.SerializeToJSON(authorMessage{GeneratedAt: rep.GeneratedAt, Author: a})
		if err != nil {
			return fmt.Errorf("[KafkaExporter] failed to encode author %q: %w", a.Name, err)
		}
		msgs = append(msgs, kafka_client.Message{Key: a.Name, Value: data})
	}
	return k.Publisher.PublishBatch(ctx, msgs)
}
