package keep_alive

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/Bamzhie/errander-api/pkg/logger"
)

// KeepAlive pings the service's own /ping endpoint so free-tier hosts do not
// idle the instance out between requests.
type KeepAlive struct {
	log      logger.Logger
	client   *http.Client
	pingURL  string
	interval time.Duration
}

func NewKeepAlive(log logger.Logger, baseURL string, interval time.Duration) *KeepAlive {
	return &KeepAlive{
		log:      log,
		client:   &http.Client{Timeout: 10 * time.Second},
		pingURL:  baseURL + "/ping",
		interval: interval,
	}
}

func (k *KeepAlive) TTL() time.Duration {
	return k.interval
}

// Do pings the service. Failures are logged but never propagated: the first
// run happens before the HTTP server starts listening, and a missed ping must
// not take the instance down.
func (k *KeepAlive) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, k.interval)
	defer cancel()

	req, err := http.NewRequestWithContext(ctxWithTimeout, http.MethodGet, k.pingURL, nil)
	if err != nil {
		return fmt.Errorf("build keep-alive request: %w", err)
	}

	resp, err := k.client.Do(req)
	if err != nil {
		k.log.With(
			logger.NewField("error", err),
		).Warn("keep-alive ping failed")
		return nil
	}
	defer func() {
		closeErr := resp.Body.Close()
		if closeErr != nil {
			k.log.With(
				logger.NewField("error", closeErr),
			).Error("close keep-alive response body")
		}
	}()

	if resp.StatusCode != http.StatusOK {
		k.log.With(
			logger.NewField("status", resp.StatusCode),
		).Warn("keep-alive ping unexpected status")
	}

	return nil
}

func (k *KeepAlive) Info() string {
	return "keep alive"
}
