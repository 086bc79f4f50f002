package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"vidstore/internal/domain"
)

// CatalogService owns every load-mutate-save transaction against the catalog.
// The mutex serializes writers so two in-flight requests cannot overwrite each
// other's changes with a stale snapshot.
type CatalogService struct {
	mu    sync.Mutex
	store domain.CatalogStore
}

func NewCatalogService(store domain.CatalogStore) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) GetCatalog(ctx context.Context) domain.Catalog {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Load(ctx)
}

func categoryNames(catalog domain.Catalog) []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func resolveVideo(catalog domain.Catalog, name string, index int) (domain.Category, error) {
	category, ok := catalog[name]
	if !ok {
		return domain.Category{}, fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, name)
	}
	if index < 0 || index >= len(category.Videos) {
		return domain.Category{}, fmt.Errorf("%w: %s[%d]", domain.ErrVideoNotFound, name, index)
	}
	return category, nil
}
