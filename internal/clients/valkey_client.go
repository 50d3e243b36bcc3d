package clients

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/spacesedan/sentiscore/config"
)

const (
	VALKEY_REPORT_KEY         = "sentiscore:report"
	VALKEY_AUTHOR_SUMMARY_KEY = "sentiscore:authors"

	valkeyRetries = 3
)

type ValkeyClient struct {
	Client   valkey.Client
	settings config.ValkeySettings
	mu       sync.Mutex
}

func valkeyOptions(s config.ValkeySettings) valkey.ClientOption {
	opts := valkey.ClientOption{
		InitAddress:      []string{s.Address},
		Password:         s.Password,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}
	if s.TLS {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}
	return opts
}

func connectValkey(s config.ValkeySettings) (valkey.Client, error) {
	client, err := valkey.NewClient(valkeyOptions(s))
	if err != nil {
		return nil, fmt.Errorf("[ValkeyClient] failed to create Valkey: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", err)
	}
	return client, nil
}

// NewValkeyClient connects and pings the server.
func NewValkeyClient(s config.ValkeySettings) (*ValkeyClient, error) {
	client, err := connectValkey(s)
	if err != nil {
		return nil, err
	}
	slog.Info("[ValkeyClient] Successfully connected to valkey", slog.String("address", s.Address))
	return &ValkeyClient{Client: client, settings: s}, nil
}

func (vc *ValkeyClient) Close() {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	vc.Client.Close()
}

func (vc *ValkeyClient) recreateClient() {
	vc.mu.Lock()
	defer vc.mu.Unlock()

	slog.Warn("[ValkeyClient] Attempting to recreate Valkey client...")
	client, err := connectValkey(vc.settings)
	if err != nil {
		slog.Error("[ValkeyClient] Recreate failed", slog.String("error", err.Error()))
		return
	}
	vc.Client.Close()
	vc.Client = client
	slog.Info("[ValkeyClient] Successfully reconnected to valkey")
}

func (vc *ValkeyClient) client() valkey.Client {
	vc.mu.Lock()
	defer vc.mu.Unlock()
	return vc.Client
}

// SetReport stores the serialized report under key with a TTL.
func (vc *ValkeyClient) SetReport(ctx context.Context, key, payload string, ttl time.Duration) error {
	c := vc.client()
	completed := []valkey.Completed{
		c.B().Set().Key(key).Value(payload).Build().Pin(),
		c.B().Expire().Key(key).Seconds(ttlSeconds(ttl)).Build().Pin(),
	}
	if err := firstError(vc.DoMultiWithRetry(ctx, completed, valkeyRetries)); err != nil {
		return fmt.Errorf("[ValkeyClient] failed to set report: %w", err)
	}

	slog.Info("[ValkeyClient] Report cached", slog.String("key", key))
	return nil
}

// SetAuthorSummaries writes fields into the hash at key and sets its TTL.
func (vc *ValkeyClient) SetAuthorSummaries(ctx context.Context, key string, fields map[string]string, ttl time.Duration) error {
	if len(fields) == 0 {
		return nil
	}
	c := vc.client()
	hset := c.B().Hset().Key(key).FieldValue()
	for field, value := range fields {
		hset = hset.FieldValue(field, value)
	}
	completed := []valkey.Completed{
		hset.Build().Pin(),
		c.B().Expire().Key(key).Seconds(ttlSeconds(ttl)).Build().Pin(),
	}
	if err := firstError(vc.DoMultiWithRetry(ctx, completed, valkeyRetries)); err != nil {
		return fmt.Errorf("[ValkeyClient] failed to set author summaries: %w", err)
	}

	slog.Info("[ValkeyClient] Author summaries cached",
		slog.String("key", key),
		slog.Int("authors", len(fields)))
	return nil
}

// DoMultiWithRetry resends the whole batch on any error. Commands must be
// pinned so they survive being sent more than once.
func (vc *ValkeyClient) DoMultiWithRetry(ctx context.Context, completed []valkey.Completed, retries int) []valkey.ValkeyResult {
	var results []valkey.ValkeyResult

	for i := 0; i < retries; i++ {
		results = vc.client().DoMulti(ctx, completed...)
		err := firstError(results)
		if err == nil {
			break
		}
		slog.Warn("[ValkeyClient] Do Multi failed",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))
		if isConnectionError(err) {
			vc.recreateClient()
		}
		time.Sleep(time.Millisecond * 250)
	}

	return results
}

func firstError(results []valkey.ValkeyResult) error {
	for _, r := range results {
		if err := r.Error(); err != nil {
			return err
		}
	}
	return nil
}

// ttlSeconds rounds up so a sub-second TTL still expires the key.
func ttlSeconds(ttl time.Duration) int64 {
	secs := int64((ttl + time.Second - 1) / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "EOF") ||
		strings.Contains(msg, "i/o timeout")
}
