package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ExporterFile     = "file"
	ExporterDynamoDB = "dynamodb"
	ExporterValkey   = "valkey"
	ExporterKafka    = "kafka"
)

type Settings struct {
	AppEnv   string
	LogLevel string

	PostsPath         string
	PositiveWordsPath string
	NegativeWordsPath string
	ReportPath        string

	StripMarkdown   bool
	ReferenceScores bool
	Exporters       []string
	ReportTTL       time.Duration

	AWS    AWSSettings
	Valkey ValkeySettings
	Kafka  KafkaSettings
}

type AWSSettings struct {
	Endpoint string
	Region   string
	Table    string
	Timeout  time.Duration // per request
}

type ValkeySettings struct {
	Address  string
	Password string
	TLS      bool
}

type KafkaSettings struct {
	Broker      string
	ReportTopic string
	Timeout     time.Duration // per transactional call
}

func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		slog.Warn("[Config] Invalid boolean, using default",
			slog.String("key", key),
			slog.String("value", raw))
		return defaultValue
	}
	return v
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		slog.Warn("[Config] Invalid duration, using default",
			slog.String("key", key),
			slog.String("value", raw))
		return defaultValue
	}
	return v
}

func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		if item = strings.ToLower(strings.TrimSpace(item)); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// FromEnv reads the settings from the process environment.
func FromEnv() Settings {
	return Settings{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		PostsPath:         getEnv("POSTS_PATH", "posts.csv"),
		PositiveWordsPath: getEnv("POSITIVE_WORDS_PATH", "positive-words.txt"),
		NegativeWordsPath: getEnv("NEGATIVE_WORDS_PATH", "negative-words.txt"),
		ReportPath:        getEnv("REPORT_PATH", "analysis.json"),

		StripMarkdown:   getBool("STRIP_MARKDOWN", false),
		ReferenceScores: getBool("REFERENCE_SCORES", false),
		Exporters:       splitList(getEnv("EXPORTERS", ExporterFile)),
		ReportTTL:       getDuration("REPORT_TTL", 24*time.Hour),

		AWS: AWSSettings{
			Endpoint: getEnv("AWS_ENDPOINT", "http://localhost:8000"),
			Region:   getEnv("AWS_REGION", "us-west-2"),
			Table:    getEnv("DYNAMODB_TABLE", "author_summaries"),
			Timeout:  getDuration("AWS_TIMEOUT", 10*time.Second),
		},
		Valkey: ValkeySettings{
			Address:  getEnv("VALKEY_INIT_ADDRESS", "localhost:6379"),
			Password: getEnv("VALKEY_PASSWORD", ""),
			TLS:      getBool("VALKEY_TLS", false),
		},
		Kafka: KafkaSettings{
			Broker:      getEnv("KAFKA_BROKER", "localhost:29092"),
			ReportTopic: getEnv("KAFKA_REPORT_TOPIC", "author-summaries"),
			Timeout:     getDuration("KAFKA_TIMEOUT", 10*time.Second),
		},
	}
}
