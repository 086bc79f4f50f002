package service

import (
	"context"
	"fmt"
	"strings"

	"vidstore/internal/domain"
)

func (s *CatalogService) ListVideos(ctx context.Context, name string) ([]domain.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog := s.store.Load(ctx)
	category, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, name)
	}
	return category.Videos, nil
}

// AddVideo appends a video to an existing category, preserving insertion
// order. Categories are never created here; unknown names are rejected.
func (s *CatalogService) AddVideo(ctx context.Context, name string, video domain.Video) ([]domain.Video, error) {
	if strings.TrimSpace(video.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(video.URL) == "" {
		return nil, fmt.Errorf("%w: url is required", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	catalog := s.store.Load(ctx)
	category, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCategoryNotFound, name)
	}

	category.Videos = append(category.Videos, video)
	catalog[name] = category
	s.store.Save(ctx, catalog)

	return category.Videos, nil
}

func (s *CatalogService) SetVideoThumbnail(ctx context.Context, name string, index int, thumbnail string) ([]domain.Video, error) {
	if strings.TrimSpace(thumbnail) == "" {
		return nil, fmt.Errorf("%w: thumbnail is required", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	catalog := s.store.Load(ctx)
	category, err := resolveVideo(catalog, name, index)
	if err != nil {
		return nil, err
	}

	category.Videos[index].Thumbnail = thumbnail
	catalog[name] = category
	s.store.Save(ctx, catalog)

	return category.Videos, nil
}

// DeleteVideo removes the video at the given ordinal index. Videos after it
// shift one position left; an index is not a stable identifier.
func (s *CatalogService) DeleteVideo(ctx context.Context, name string, index int) ([]domain.Video, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	catalog := s.store.Load(ctx)
	category, err := resolveVideo(catalog, name, index)
	if err != nil {
		return nil, err
	}

	category.Videos = append(category.Videos[:index], category.Videos[index+1:]...)
	catalog[name] = category
	s.store.Save(ctx, catalog)

	return category.Videos, nil
}
