// Package service contains the business logic for catalog operations.
//
// CatalogService implements every operation as one load-mutate-save
// transaction against the catalog store:
// - video operations: list, add, set thumbnail, delete by index
// - category operations: list, create, set thumbnail, delete
//
// A single mutex serializes all transactions, so concurrent requests cannot
// lose updates by saving a stale snapshot over each other.
package service
