package clients

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"

	"github.com/spacesedan/sentiscore/config"
)

var (
	awsCfg  aws.Config
	awsErr  error
	awsOnce sync.Once
)

const defaultAWSTimeout = 10 * time.Second

// GetAWSConfig loads the shared AWS config once. Later calls return the first
// result whatever settings they pass.
func GetAWSConfig(ctx context.Context, s config.AWSSettings) (aws.Config, error) {
	awsOnce.Do(func() {
		slog.Info("[AWSClient] Initializing AWS Config...", slog.String("region", s.Region))
		loadCtx, cancel := context.WithTimeout(ctx, awsTimeout(s))
		defer cancel()
		cfg, err := awsconfig.LoadDefaultConfig(loadCtx, awsconfig.WithRegion(s.Region))
		if err != nil {
			awsErr = fmt.Errorf("[AWSClient] failed to load AWS config: %w", err)
			return
		}
		awsCfg = cfg
		slog.Info("[AWSClient] AWS Config Initialized")
	})
	return awsCfg, awsErr
}

// GetDynamoDBClient returns a client pointed at s.Endpoint when one is set,
// which is how local DynamoDB is reached.
func GetDynamoDBClient(ctx context.Context, s config.AWSSettings) (*dynamodb.Client, error) {
	cfg, err := GetAWSConfig(ctx, s)
	if err != nil {
		return nil, err
	}
	return dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		if s.Endpoint != "" {
			o.BaseEndpoint = aws.String(s.Endpoint)
		}
	}), nil
}

func awsTimeout(s config.AWSSettings) time.Duration {
	if s.Timeout <= 0 {
		return defaultAWSTimeout
	}
	return s.Timeout
}
