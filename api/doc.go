// Package api provides the HTTP layer for the Fale proxy.
// It uses the Huma framework on a chi router for request decoding and
// OpenAPI documentation.
//
// # Routes
//
//	GET  /              packaged landing page
//	POST /fetch         fetch a URL and rewrite Yale to Fale
//	GET  /openapi.json  generated OpenAPI document
//	GET  /docs          interactive documentation
//
// # Usage Example
//
//	humaAPI, router := api.NewAPIWithMiddleware(api.APIConfig{
//	    Logger:     logger,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	})
//	handlers.NewFetchHandler(rewriteService, logger).RegisterRoutes(humaAPI)
//	handlers.NewLandingHandler().RegisterRoutes(router)
//	http.ListenAndServe(":3000", router)
//
// # Error Handling
//
// Errors, including request validation failures, use a flat body rather than RFC 7807:
//
//	{"error": "URL is required"}
//	{"error": "Failed to fetch content: <cause>"}
package api
