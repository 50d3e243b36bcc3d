package kafka_client

import (
	"time"

	"github.com/spacesedan/sentiscore/config"
)

type KafkaConfig struct {
	Broker          string
	Topic           string
	TransactionalID string
	Timeout         time.Duration
}

func GetKafkaConfig(s config.KafkaSettings) KafkaConfig {
	topic := s.ReportTopic
	if topic == "" {
		topic = KAFKA_TOPIC_AUTHOR_SUMMARIES
	}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DEFAULT_TIMEOUT
	}
	return KafkaConfig{
		Broker:          s.Broker,
		Topic:           topic,
		TransactionalID: TRANSACTIONAL_ID,
		Timeout:         timeout,
	}
}
