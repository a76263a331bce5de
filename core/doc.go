// Package core contains the business logic for the reputation analytics
// service. It is designed to be framework-agnostic and can be used
// independently of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (ContentItem, SentimentAnalysis, etc.)
// - match: Layered keyword matching over content items
// - sentiment: Sentiment classification and aggregation service
// - comparison: Brand-versus-competitor comparison service
// - reach: Publication reach estimation with the tiered attrition model
// - voiceshare: Portfolio voice-of-share aggregation service
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "reputraq-api/core/interfaces"
//	    "reputraq-api/core/sentiment"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:  cache,
//	    Logger: logger,
//	}
//
//	// Create service
//	service := sentiment.NewSentimentService(deps)
//
//	// Use service
//	analysis := service.AnalyzeKeyword(ctx, "acme", items)
package core
