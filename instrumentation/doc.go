// Package instrumentation provides OpenTelemetry instrumentation for the
// wechat-oauth client library.
//
// Metrics cover the provider API surface:
//   - wechat.code.exchanged{appid} - authorization codes exchanged for tokens
//   - wechat.provider.api.calls.total{operation, status} - provider API calls
//   - wechat.provider.api.duration{operation} - API call duration in milliseconds
//   - wechat.provider.api.errors.total{operation, error_kind} - provider API errors
//
// Enable instrumentation and pass it to the client configuration:
//
//	inst, err := instrumentation.New(instrumentation.Config{
//	    ServiceName:    "my-login-service",
//	    ServiceVersion: "1.0.0",
//	    Enabled:        true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer inst.Shutdown(context.Background())
//
//	client := wechat.New(&wechat.Config{Instrumentation: inst})
//
// When disabled (or when no instrumentation is configured on the client),
// no-op providers are used and recording has zero overhead. All operations
// are safe for concurrent use.
//
// Never record actual credential values (access tokens, authorization
// codes, secrets) as metric attributes; only metadata such as operation
// names, status codes, and error kinds.
package instrumentation
