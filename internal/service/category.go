package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"vidstore/internal/domain"
)

func (s *CatalogService) ListCategories(ctx context.Context) []domain.CategorySummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog := s.store.Load(ctx)
	summaries := make([]domain.CategorySummary, 0, len(catalog))
	for name, category := range catalog {
		summaries = append(summaries, domain.CategorySummary{
			Name:      name,
			Thumbnail: category.Thumbnail,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Name < summaries[j].Name
	})
	return summaries
}

func (s *CatalogService) CreateCategory(ctx context.Context, name string) ([]string, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	catalog := s.store.Load(ctx)
	if _, ok := catalog[name]; ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCategoryExists, name)
	}

	catalog[name] = domain.Category{Videos: []domain.Video{}}
	s.store.Save(ctx, catalog)

	return categoryNames(catalog), nil
}

func (s *CatalogService) SetCategoryThumbnail(ctx context.Context, name, thumbnail string) (string, error) {
	if strings.TrimSpace(thumbnail) == "" {
		return "", fmt.Errorf("%w: thumbnail is required", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	catalog := s.store.Load(ctx)
	category, ok := catalog[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, name)
	}

	category.Thumbnail = thumbnail
	catalog[name] = category
	s.store.Save(ctx, catalog)

	return thumbnail, nil
}

// DeleteCategory removes the category and every video it holds.
func (s *CatalogService) DeleteCategory(ctx context.Context, name string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog := s.store.Load(ctx)
	if _, ok := catalog[name]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, name)
	}

	delete(catalog, name)
	s.store.Save(ctx, catalog)

	return categoryNames(catalog), nil
}
