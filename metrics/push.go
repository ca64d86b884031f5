package metrics

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"go.uber.org/zap"
)

const pushRetries = 3

// PushMetrics pushes the default registry to a pushgateway at url once,
// grouped by instance. Transient failures are retried.
func PushMetrics(ctx context.Context, url, job, instance string, logger *zap.Logger) error {
	client := retryablehttp.NewClient()
	client.RetryMax = pushRetries
	client.Logger = retryableHttpLogger{logger}

	pusher := push.New(url, job).
		Gatherer(prometheus.DefaultGatherer).
		Client(client.StandardClient())
	if instance != "" {
		pusher = pusher.Grouping("instance", instance)
	}
	if err := pusher.PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics to %s: %w", url, err)
	}
	logger.Debug("metrics pushed", zap.String("url", url), zap.String("instance", instance))
	return nil
}

type retryableHttpLogger struct {
	inner *zap.Logger
}

func (r retryableHttpLogger) Error(format string, args ...any) {
	r.inner.Sugar().Errorw(format, args...)
}

func (r retryableHttpLogger) Info(format string, args ...any) {
	r.inner.Sugar().Infow(format, args...)
}

func (r retryableHttpLogger) Warn(format string, args ...any) {
	r.inner.Sugar().Warnw(format, args...)
}

func (r retryableHttpLogger) Debug(format string, args ...any) {
	r.inner.Sugar().Debugw(format, args...)
}
