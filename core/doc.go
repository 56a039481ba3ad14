// Package core contains the business logic for the Fale proxy.
// It does not depend on the HTTP framework; the outbound client and the
// logger are injected through interfaces.
//
// The core package is organized into several sub-packages:
//
// - domain: the RewrittenPage result model
// - rewrite: the Yale to Fale substitution and the FetchAndRewrite service
// - errors: ValidationError, FetchError and ExternalAPIError
// - interfaces: contracts for external dependencies (HTTP, logger)
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	service := rewrite.NewService(deps)
//	page, err := service.FetchAndRewrite(ctx, "https://www.yale.edu/")
package core
