// Package config handles application configuration loading.
//
// Configuration is loaded from environment variables with sensible defaults.
// Nothing is required: an unconfigured process listens on the default port
// and keeps its catalog file in the working directory.
package config
