package usecase

import (
	"fmt"

	"movie-booking/internal/data/entity"
	"movie-booking/internal/data/repository"
	"movie-booking/internal/dto/request"
	"movie-booking/pkg/utils"

	"go.uber.org/zap"
)

// CatalogService manages the movie catalog. Update and Remove address rows
// by position in the current file order, the same order List returns, so a
// caller must resolve the index against the snapshot it is displaying.
type CatalogService interface {
	List() []entity.Movie
	Add(req *request.MovieRequest) error
	Update(index int, req *request.MovieRequest) error
	Remove(index int) error
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
	log         *zap.Logger
}

func NewCatalogService(catalogRepo repository.CatalogRepository, log *zap.Logger) CatalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
		log:         log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) List() []entity.Movie {
	return s.catalogRepo.LoadAll()
}

func (s *catalogService) Add(req *request.MovieRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add movie validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movies := append(s.catalogRepo.LoadAll(), movieFromRequest(req))
	if err := s.catalogRepo.SaveAll(movies); err != nil {
		return err
	}

	s.log.Info("Movie added", zap.String("name", req.Name))
	return nil
}

func (s *catalogService) Update(index int, req *request.MovieRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	movies := s.catalogRepo.LoadAll()
	if index < 0 || index >= len(movies) {
		return repository.ErrNotFound
	}

	movies[index] = movieFromRequest(req)
	if err := s.catalogRepo.SaveAll(movies); err != nil {
		return err
	}

	s.log.Info("Movie updated", zap.Int("index", index), zap.String("name", req.Name))
	return nil
}

func (s *catalogService) Remove(index int) error {
	movies := s.catalogRepo.LoadAll()
	if index < 0 || index >= len(movies) {
		return repository.ErrNotFound
	}

	name := movies[index].Name
	movies = append(movies[:index], movies[index+1:]...)
	if err := s.catalogRepo.SaveAll(movies); err != nil {
		return err
	}

	s.log.Info("Movie removed", zap.Int("index", index), zap.String("name", name))
	return nil
}

func movieFromRequest(req *request.MovieRequest) entity.Movie {
	return entity.Movie{
		Name:       req.Name,
		Director:   req.Director,
		Genre:      req.Genre,
		Language:   req.Language,
		Duration:   req.Duration,
		Rating:     req.Rating,
		PosterPath: req.PosterPath,
	}
}
