// Package handler implements HTTP request handlers and middleware.
//
// This package provides the catalog's HTTP endpoints:
// - /videos: full catalog, per-category listing, create, thumbnail, delete
// - /categories: listing, create, thumbnail, delete
// - /health: health check endpoint
//
// Middleware covers request ids, access logging, panic recovery and
// per-client rate limiting. All handlers pass the request context through to
// the service layer.
package handler
