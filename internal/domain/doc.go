// Package domain defines the core catalog entities for vidstore.
//
// This package contains the persisted data model (Catalog, Category, Video)
// and the CatalogStore contract implemented by the storage package.
// The catalog file is the sole source of truth; there is no resident
// in-memory state between requests.
package domain
