package storage

import (
	"context"
	"encoding/json"
	"os"

	log "github.com/sirupsen/logrus"

	"vidstore/internal/domain"
)

type catalogStore struct {
	path  string
	perms os.FileMode
}

func NewCatalogStore(path string, perms os.FileMode) domain.CatalogStore {
	return &catalogStore{path: path, perms: perms}
}

// Load reads the whole catalog document. Any failure yields an empty catalog:
// the service keeps answering even when the file is missing or damaged.
func (s *catalogStore) Load(ctx context.Context) domain.Catalog {
	catalog := make(domain.Catalog)
	if err := ctx.Err(); err != nil {
		return catalog
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.WithFields(log.Fields{
				"path":  s.path,
				"error": err,
			}).Warn("failed to read catalog file, using empty catalog")
		}
		return catalog
	}

	if err := json.Unmarshal(data, &catalog); err != nil {
		log.WithFields(log.Fields{
			"path":  s.path,
			"error": err,
		}).Warn("failed to parse catalog file, using empty catalog")
		return make(domain.Catalog)
	}

	for name, category := range catalog {
		if category.Videos == nil {
			category.Videos = []domain.Video{}
			catalog[name] = category
		}
	}
	return catalog
}

// Save overwrites the catalog document in full. Failures are logged, never
// returned: a storage hiccup must not turn into a client-facing error.
func (s *catalogStore) Save(ctx context.Context, catalog domain.Catalog) {
	if err := ctx.Err(); err != nil {
		return
	}

	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		log.WithFields(log.Fields{
			"path":  s.path,
			"error": err,
		}).Error("failed to marshal catalog")
		return
	}

	if err := os.WriteFile(s.path, data, s.perms); err != nil {
		log.WithFields(log.Fields{
			"path":  s.path,
			"error": err,
		}).Error("failed to write catalog file")
	}
}
