// Package core contains the business logic for the AI news dashboard.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains the pure Article domain model
// - news: Keyword search against the feed-search endpoint with sanitization and caching
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// All external dependencies are injected via interfaces, so the business
// logic is testable in isolation.
package core
