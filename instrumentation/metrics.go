package instrumentation

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// Attribute keys used on the metrics below. Only metadata is recorded,
// never credential values.
const (
	AttrAppID             = "wechat.appid"
	AttrProviderOperation = "provider.operation"
	AttrProviderStatus    = "provider.status"
	AttrErrorKind         = "provider.error_kind"
)

// Metrics holds all metric instruments for the client library.
type Metrics struct {
	// CodeExchanged counts authorization codes successfully exchanged
	// for tokens.
	CodeExchanged metric.Int64Counter

	// ProviderAPICalls counts outbound provider API calls by operation
	// and HTTP status.
	ProviderAPICalls metric.Int64Counter

	// ProviderAPIDuration measures provider call duration in
	// milliseconds by operation.
	ProviderAPIDuration metric.Float64Histogram

	// ProviderAPIErrors counts failed provider calls by operation and
	// error kind.
	ProviderAPIErrors metric.Int64Counter
}

// newMetrics creates and registers all metric instruments.
func newMetrics(inst *Instrumentation) (*Metrics, error) {
	meter := inst.Meter("provider")
	m := &Metrics{}

	var err error
	m.CodeExchanged, err = meter.Int64Counter(
		"wechat.code.exchanged",
		metric.WithDescription("Number of authorization codes exchanged for tokens"),
		metric.WithUnit("{exchange}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create code.exchanged counter: %w", err)
	}

	m.ProviderAPICalls, err = meter.Int64Counter(
		"wechat.provider.api.calls.total",
		metric.WithDescription("Total number of provider API calls"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider.api.calls counter: %w", err)
	}

	m.ProviderAPIDuration, err = meter.Float64Histogram(
		"wechat.provider.api.duration",
		metric.WithDescription("Provider API call duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider.api.duration histogram: %w", err)
	}

	m.ProviderAPIErrors, err = meter.Int64Counter(
		"wechat.provider.api.errors.total",
		metric.WithDescription("Total number of failed provider API calls"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider.api.errors counter: %w", err)
	}

	return m, nil
}
