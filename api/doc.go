// Package api provides the HTTP API layer for the reputation analytics
// service. It uses the Huma framework to provide automatic OpenAPI
// documentation, request/response validation, and a clean handler
// interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive Swagger UI at /docs
//
// 2. Request/Response Validation
//
// Huma provides automatic validation based on struct tags:
//
//	type AnalyzeRequest struct {
//	    Keyword string               `json:"keyword" required:"true" minLength:"1"`
//	    Items   []ContentItemRequest `json:"items" maxItems:"10000"`
//	}
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Rate limiting per IP address
// - CORS handling
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 400,
//	    "title": "Bad Request",
//	    "detail": "keyword is required",
//	    "instance": "/analyze"
//	}
//
// Domain errors are automatically mapped to appropriate HTTP status codes.
package api
