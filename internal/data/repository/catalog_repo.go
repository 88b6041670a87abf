package repository

import (
	"fmt"
	"sync"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/record"
	"movie-booking/pkg/storage"

	"go.uber.org/zap"
)

// catalogMinFields is the arity below which a catalog line is malformed and
// skipped. The seventh field, the poster path, is optional.
const catalogMinFields = 6

type CatalogRepository interface {
	// LoadAll reads the whole catalog file in file order. Malformed lines
	// are skipped; a missing or unreadable file yields an empty slice.
	LoadAll() []entity.Movie

	// SaveAll rewrites the catalog file from movies, in slice order. The
	// rewrite is atomic: readers either see the old file or the new one.
	SaveAll(movies []entity.Movie) error
}

type catalogRepository struct {
	store *storage.Storage
	path  string
	codec record.Codec
	mu    sync.Mutex
	log   *zap.Logger
}

func NewCatalogRepository(store *storage.Storage, path string, log *zap.Logger) CatalogRepository {
	return &catalogRepository{
		store: store,
		path:  path,
		codec: record.Codec{Delimiter: ",", MinFields: catalogMinFields},
		log:   log.With(zap.String("repository", "catalog")),
	}
}

func (r *catalogRepository) LoadAll() []entity.Movie {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loadLocked()
}

func (r *catalogRepository) loadLocked() []entity.Movie {
	lines, err := r.store.ReadLines(r.path)
	if err != nil {
		r.log.Warn("Failed to read catalog file", zap.Error(err), zap.String("path", r.path))
		return nil
	}

	movies := make([]entity.Movie, 0, len(lines))
	for _, line := range lines {
		fields, ok := r.codec.Decode(line)
		if !ok {
			continue
		}
		movies = append(movies, entity.Movie{
			Name:       fields[0],
			Director:   fields[1],
			Genre:      fields[2],
			Language:   fields[3],
			Duration:   fields[4],
			Rating:     fields[5],
			PosterPath: record.Field(fields, 6, ""),
		})
	}
	return movies
}

func (r *catalogRepository) SaveAll(movies []entity.Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lines := make([]string, len(movies))
	for i, m := range movies {
		lines[i] = r.codec.Encode([]string{
			m.Name, m.Director, m.Genre, m.Language, m.Duration, m.Rating, m.PosterPath,
		})
	}

	if err := r.store.WriteLines(r.path, lines); err != nil {
		r.log.Error("Failed to save catalog", zap.Error(err), zap.Int("movies", len(movies)))
		return fmt.Errorf("save catalog: %w", err)
	}

	r.log.Debug("Catalog saved", zap.Int("movies", len(movies)))
	return nil
}
