// Package storage provides the JSON-file implementation of the catalog store.
//
// The whole catalog lives in one JSON document that is read and rewritten in
// full. Read and write failures are recovered locally (empty catalog on read,
// best effort on write) and logged rather than surfaced to callers.
package storage
