package clients

import (
	"testing"
	"time"

	"github.com/spacesedan/sentiscore/config"
)

func TestAWSTimeout(t *testing.T) {
	if got := awsTimeout(config.AWSSettings{}); got != defaultAWSTimeout {
		t.Errorf("awsTimeout(zero) = %v, want %v", got, defaultAWSTimeout)
	}
	if got := awsTimeout(config.AWSSettings{Timeout: 3 * time.Second}); got != 3*time.Second {
		t.Errorf("awsTimeout = %v, want 3s", got)
	}
}
