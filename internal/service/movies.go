package service

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/MZidanFI/Bioskop-Project/internal/errors"
	"github.com/MZidanFI/Bioskop-Project/internal/identity"
	"github.com/MZidanFI/Bioskop-Project/internal/logger"
	"github.com/MZidanFI/Bioskop-Project/internal/models"
)

// MovieStore is the slice of the movie repository the catalogue needs.
type MovieStore interface {
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
	GetByIDs(ctx context.Context, ids []int64) ([]models.Movie, error)
	List(ctx context.Context, status, titleQuery string) ([]models.Movie, error)
	Create(ctx context.Context, movie *models.Movie) error
	Update(ctx context.Context, movie *models.Movie) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// MovieSearcher answers title searches from the search index. A nil
// searcher sends every query down the SQL path.
type MovieSearcher interface {
	SearchIDs(ctx context.Context, query string) ([]int64, error)
}

type MovieService struct {
	movies   MovieStore
	searcher MovieSearcher
	nats     Publisher
}

func NewMovieService(movies MovieStore, searcher MovieSearcher, natsClient Publisher) *MovieService {
	return &MovieService{
		movies:   movies,
		searcher: searcher,
		nats:     natsClient,
	}
}

// Catalogue returns the listing split into now-showing and coming-soon.
// With a query it searches titles: through the index when configured,
// otherwise by SQL substring match. Index failures fall back to SQL.
func (s *MovieService) Catalogue(ctx context.Context, titleQuery string) (*models.MovieListResponse, error) {
	var movies []models.Movie
	var err error

	if titleQuery != "" && s.searcher != nil {
		movies, err = s.searchCatalogue(ctx, titleQuery)
		if err != nil {
			logger.WithContext(ctx).Error("Search index query failed, falling back to SQL",
				"error", err, "query", titleQuery)
			movies = nil
		}
	}
	if movies == nil {
		movies, err = s.movies.List(ctx, "", titleQuery)
		if err != nil {
			return nil, fmt.Errorf("failed to list movies: %w", err)
		}
	}

	response := &models.MovieListResponse{
		NowShowing: []models.Movie{},
		ComingSoon: []models.Movie{},
	}
	for _, movie := range movies {
		switch movie.Status {
		case models.MovieStatusNow:
			response.NowShowing = append(response.NowShowing, movie)
		case models.MovieStatusSoon:
			response.ComingSoon = append(response.ComingSoon, movie)
		}
	}

	return response, nil
}

func (s *MovieService) searchCatalogue(ctx context.Context, titleQuery string) ([]models.Movie, error) {
	ids, err := s.searcher.SearchIDs(ctx, titleQuery)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []models.Movie{}, nil
	}
	return s.movies.GetByIDs(ctx, ids)
}

// Get returns one movie or ErrNotFound.
func (s *MovieService) Get(ctx context.Context, movieID int64) (*models.Movie, error) {
	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}
	if movie == nil {
		return nil, apperrors.ErrNotFound
	}
	return movie, nil
}

// Create adds a movie to the catalogue. Admin only.
func (s *MovieService) Create(ctx context.Context, id identity.Identity, req *models.CreateMovieRequest) (*models.Movie, error) {
	if err := identity.RequireAdmin(id); err != nil {
		return nil, err
	}

	movie := &models.Movie{
		Title:       req.Title,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
		Showtime:    req.Showtime,
		Status:      req.Status,
	}
	if err := s.movies.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}

	s.publishMovieEvent(ctx, models.EventMovieCreated, movie)

	return movie, nil
}

// Update edits a movie in place; nil request fields keep current values.
// Admin only.
func (s *MovieService) Update(ctx context.Context, id identity.Identity, movieID int64, req *models.UpdateMovieRequest) (*models.Movie, error) {
	if err := identity.RequireAdmin(id); err != nil {
		return nil, err
	}

	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}
	if movie == nil {
		return nil, apperrors.ErrNotFound
	}

	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			return nil, fmt.Errorf("price must be positive")
		}
		movie.Price = *req.Price
	}
	if req.Image != nil {
		movie.Image = req.Image
	}
	if req.Description != nil {
		movie.Description = req.Description
	}
	if req.Showtime != nil {
		movie.Showtime = req.Showtime
	}
	if req.Status != nil {
		if *req.Status != models.MovieStatusNow && *req.Status != models.MovieStatusSoon {
			return nil, fmt.Errorf("invalid status %q", *req.Status)
		}
		movie.Status = *req.Status
	}

	if err := s.movies.Update(ctx, movie); err != nil {
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}

	s.publishMovieEvent(ctx, models.EventMovieUpdated, movie)

	return movie, nil
}

// Delete removes a movie; its bookings and ratings cascade away with it.
// Admin only.
func (s *MovieService) Delete(ctx context.Context, id identity.Identity, movieID int64) error {
	if err := identity.RequireAdmin(id); err != nil {
		return err
	}

	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return fmt.Errorf("failed to get movie: %w", err)
	}
	if movie == nil {
		return apperrors.ErrNotFound
	}

	deleted, err := s.movies.Delete(ctx, movieID)
	if err != nil {
		return fmt.Errorf("failed to delete movie: %w", err)
	}
	if !deleted {
		return apperrors.ErrNotFound
	}

	s.publishMovieEvent(ctx, models.EventMovieDeleted, movie)

	return nil
}

func (s *MovieService) publishMovieEvent(ctx context.Context, subject string, movie *models.Movie) {
	if s.nats == nil {
		return
	}

	event := models.MovieEvent{
		MovieID:   movie.ID,
		Title:     movie.Title,
		Status:    movie.Status,
		Timestamp: time.Now(),
	}
	if err := s.nats.Publish(subject, event); err != nil {
		logger.WithContext(ctx).Error("Failed to publish movie event",
			"error", err,
			"movie_id", movie.ID,
			"event_type", subject)
	}
}
