package domain

import "context"

type Video struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

type Category struct {
	Thumbnail string  `json:"categoryThumbnail"`
	Videos    []Video `json:"videos"`
}

type CategorySummary struct {
	Name      string `json:"name"`
	Thumbnail string `json:"categoryThumbnail"`
}

// Catalog maps a category name to its record. The name is the unique key.
type Catalog map[string]Category

type CatalogStore interface {
	Load(ctx context.Context) Catalog
	Save(ctx context.Context, catalog Catalog)
}
