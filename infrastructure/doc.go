// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// - http/standard: net/http client for the page fetch (no retries, no custom headers)
// - logger/structured: logrus logger with optional lumberjack file rotation
//
// # HTTP Client
//
//	client := standard.NewStandardHTTPClient(0) // no timeout
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := structured.NewLogger(structured.Options{Level: "info", Format: "json"})
//	logger.Info("Processing request", map[string]interface{}{
//	    "url": "https://example.com",
//	})
package infrastructure
