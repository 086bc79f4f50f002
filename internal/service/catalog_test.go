package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"vidstore/internal/domain"
	"vidstore/internal/storage"
)

func setupTestService(t *testing.T) *CatalogService {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	return NewCatalogService(storage.NewCatalogStore(path, 0644))
}

func mustCreateCategory(t *testing.T, svc *CatalogService, name string) {
	t.Helper()
	if _, err := svc.CreateCategory(context.Background(), name); err != nil {
		t.Fatalf("CreateCategory(%q) error = %v", name, err)
	}
}

func mustAddVideo(t *testing.T, svc *CatalogService, category string, video domain.Video) {
	t.Helper()
	if _, err := svc.AddVideo(context.Background(), category, video); err != nil {
		t.Fatalf("AddVideo(%q, %q) error = %v", category, video.Title, err)
	}
}

func TestCatalogService_CreateCategory(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		category string
		wantErr  error
	}{
		{name: "valid category", category: "tutorials", wantErr: nil},
		{name: "duplicate category", category: "tutorials", wantErr: domain.ErrCategoryExists},
		{name: "empty name", category: "  ", wantErr: domain.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateCategory(ctx, tt.category)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("CreateCategory() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	summaries := svc.ListCategories(ctx)
	if len(summaries) != 1 || summaries[0].Name != "tutorials" {
		t.Errorf("ListCategories() = %v, want exactly one tutorials entry", summaries)
	}
}

func TestCatalogService_AddVideo(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	mustCreateCategory(t, svc, "tutorials")

	tests := []struct {
		name     string
		category string
		video    domain.Video
		wantErr  error
		wantLen  int
	}{
		{
			name:     "valid video",
			category: "tutorials",
			video:    domain.Video{Title: "T", URL: "U"},
			wantLen:  1,
		},
		{
			name:     "missing title",
			category: "tutorials",
			video:    domain.Video{URL: "U"},
			wantErr:  domain.ErrInvalidInput,
		},
		{
			name:     "missing url",
			category: "tutorials",
			video:    domain.Video{Title: "T"},
			wantErr:  domain.ErrInvalidInput,
		},
		{
			name:     "unknown category is not auto-created",
			category: "ghosts",
			video:    domain.Video{Title: "T", URL: "U"},
			wantErr:  domain.ErrCategoryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			videos, err := svc.AddVideo(ctx, tt.category, tt.video)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("AddVideo() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && len(videos) != tt.wantLen {
				t.Errorf("AddVideo() returned %d videos, want %d", len(videos), tt.wantLen)
			}
		})
	}

	// A rejected video must leave the sequence untouched.
	videos, err := svc.ListVideos(ctx, "tutorials")
	if err != nil {
		t.Fatalf("ListVideos() error = %v", err)
	}
	if len(videos) != 1 {
		t.Errorf("ListVideos() = %d videos after rejections, want 1", len(videos))
	}

	if _, err := svc.ListVideos(ctx, "ghosts"); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("ListVideos(ghosts) error = %v, want %v", err, domain.ErrCategoryNotFound)
	}
}

func TestCatalogService_AddVideoPreservesOrder(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	mustCreateCategory(t, svc, "music")

	titles := []string{"one", "two", "three"}
	for _, title := range titles {
		mustAddVideo(t, svc, "music", domain.Video{Title: title, URL: "https://v.example/" + title})
	}

	videos, err := svc.ListVideos(ctx, "music")
	if err != nil {
		t.Fatalf("ListVideos() error = %v", err)
	}
	for i, title := range titles {
		if videos[i].Title != title {
			t.Errorf("videos[%d].Title = %q, want %q", i, videos[i].Title, title)
		}
	}
}

func TestCatalogService_DeleteVideo(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	mustCreateCategory(t, svc, "music")
	for _, title := range []string{"a", "b", "c"} {
		mustAddVideo(t, svc, "music", domain.Video{Title: title, URL: "u"})
	}

	videos, err := svc.DeleteVideo(ctx, "music", 1)
	if err != nil {
		t.Fatalf("DeleteVideo() error = %v", err)
	}
	if len(videos) != 2 {
		t.Fatalf("DeleteVideo() left %d videos, want 2", len(videos))
	}
	// Later entries shift one index left.
	if videos[0].Title != "a" || videos[1].Title != "c" {
		t.Errorf("DeleteVideo() remaining titles = %q, %q; want a, c", videos[0].Title, videos[1].Title)
	}

	tests := []struct {
		name     string
		category string
		index    int
	}{
		{name: "index out of range", category: "music", index: 2},
		{name: "negative index", category: "music", index: -1},
		{name: "unknown category", category: "ghosts", index: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.DeleteVideo(ctx, tt.category, tt.index); err == nil {
				t.Error("DeleteVideo() error = nil, want not-found")
			}
		})
	}
}

func TestCatalogService_SetVideoThumbnail(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	mustCreateCategory(t, svc, "music")
	mustAddVideo(t, svc, "music", domain.Video{Title: "a", URL: "u"})

	videos, err := svc.SetVideoThumbnail(ctx, "music", 0, "https://img.example/a.png")
	if err != nil {
		t.Fatalf("SetVideoThumbnail() error = %v", err)
	}
	if videos[0].Thumbnail != "https://img.example/a.png" {
		t.Errorf("Thumbnail = %q, want the new value", videos[0].Thumbnail)
	}

	if _, err := svc.SetVideoThumbnail(ctx, "music", 0, ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("empty thumbnail error = %v, want %v", err, domain.ErrInvalidInput)
	}
	if _, err := svc.SetVideoThumbnail(ctx, "music", 5, "x"); !errors.Is(err, domain.ErrVideoNotFound) {
		t.Errorf("out-of-range error = %v, want %v", err, domain.ErrVideoNotFound)
	}
}

func TestCatalogService_SetCategoryThumbnail(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	mustCreateCategory(t, svc, "music")

	thumbnail, err := svc.SetCategoryThumbnail(ctx, "music", "https://img.example/music.png")
	if err != nil {
		t.Fatalf("SetCategoryThumbnail() error = %v", err)
	}
	if thumbnail != "https://img.example/music.png" {
		t.Errorf("SetCategoryThumbnail() = %q", thumbnail)
	}

	summaries := svc.ListCategories(ctx)
	if summaries[0].Thumbnail != "https://img.example/music.png" {
		t.Errorf("ListCategories() thumbnail = %q, want the new value", summaries[0].Thumbnail)
	}

	if _, err := svc.SetCategoryThumbnail(ctx, "ghosts", "x"); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("unknown category error = %v, want %v", err, domain.ErrCategoryNotFound)
	}
}

func TestCatalogService_DeleteCategory(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	mustCreateCategory(t, svc, "music")
	mustCreateCategory(t, svc, "tutorials")
	mustAddVideo(t, svc, "music", domain.Video{Title: "a", URL: "u"})

	names, err := svc.DeleteCategory(ctx, "music")
	if err != nil {
		t.Fatalf("DeleteCategory() error = %v", err)
	}
	if len(names) != 1 || names[0] != "tutorials" {
		t.Errorf("DeleteCategory() remaining names = %v, want [tutorials]", names)
	}

	// The deleted category's videos are unreachable afterwards.
	if _, err := svc.ListVideos(ctx, "music"); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("ListVideos() after delete error = %v, want %v", err, domain.ErrCategoryNotFound)
	}

	if _, err := svc.DeleteCategory(ctx, "music"); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Errorf("second DeleteCategory() error = %v, want %v", err, domain.ErrCategoryNotFound)
	}
}

func TestCatalogService_GetCatalog(t *testing.T) {
	svc := setupTestService(t)
	ctx := context.Background()
	mustCreateCategory(t, svc, "music")
	mustAddVideo(t, svc, "music", domain.Video{Title: "a", Description: "d", URL: "u"})

	catalog := svc.GetCatalog(ctx)
	category, ok := catalog["music"]
	if !ok {
		t.Fatal("GetCatalog() missing the music category")
	}
	if len(category.Videos) != 1 || category.Videos[0].Description != "d" {
		t.Errorf("GetCatalog() videos = %v", category.Videos)
	}
}
