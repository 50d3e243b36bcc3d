package kafka_client

import "time"

const (
	KAFKA_TOPIC_AUTHOR_SUMMARIES = "author-summaries" // one message per author, keyed by name

	TRANSACTIONAL_ID = "sentiscore-producer-1"
)

const (
	PRODUCE_RETRIES  = 3
	COMMIT_RETRIES   = 3
	FLUSH_TIMEOUT_MS = 5000

	// librdkafka blocks forever on a context without a deadline.
	DEFAULT_TIMEOUT = 10 * time.Second
)
