package wechat

import (
	"context"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/authbridge/wechat-oauth/instrumentation"
)

// recordProviderCall records call count, duration, and errors for one
// outbound provider request. No-op when instrumentation is not configured.
func (c *Client) recordProviderCall(ctx context.Context, operation string, start time.Time, status int, err error) {
	if c.inst == nil {
		return
	}
	m := c.inst.Metrics()

	attrs := []attribute.KeyValue{
		attribute.String(instrumentation.AttrProviderOperation, operation),
		attribute.String(instrumentation.AttrProviderStatus, strconv.Itoa(status)),
	}
	m.ProviderAPICalls.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.ProviderAPIDuration.Record(ctx, float64(time.Since(start).Milliseconds()),
		metric.WithAttributes(attribute.String(instrumentation.AttrProviderOperation, operation)))

	if err != nil {
		m.ProviderAPIErrors.Add(ctx, 1, metric.WithAttributes(
			attribute.String(instrumentation.AttrProviderOperation, operation),
			attribute.String(instrumentation.AttrErrorKind, string(KindOf(err))),
		))
	}
}

// recordCodeExchanged counts one successful code-for-token exchange.
func (c *Client) recordCodeExchanged(ctx context.Context, appID string) {
	if c.inst == nil {
		return
	}
	c.inst.Metrics().CodeExchanged.Add(ctx, 1, metric.WithAttributes(
		attribute.String(instrumentation.AttrAppID, appID),
	))
}
