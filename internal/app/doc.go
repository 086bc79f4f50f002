// Package app provides application initialization and lifecycle management.
//
// The App type wires all dependencies together and manages:
// - Configuration loading
// - Catalog store and service creation
// - HTTP server lifecycle with CORS and middleware
// - Graceful shutdown
package app
