package service

import (
	"context"
	"fmt"
	"math"

	apperrors "github.com/MZidanFI/Bioskop-Project/internal/errors"
	"github.com/MZidanFI/Bioskop-Project/internal/identity"
	"github.com/MZidanFI/Bioskop-Project/internal/models"
)

// RatingStore is the slice of the rating repository the aggregator needs.
type RatingStore interface {
	GetByUserAndMovie(ctx context.Context, userID, movieID int64) (*models.Rating, error)
	Insert(ctx context.Context, rating *models.Rating) error
	UpdateScore(ctx context.Context, id int64, score int) error
	Aggregate(ctx context.Context, movieID int64) (float64, int64, error)
}

type RatingService struct {
	ratings RatingStore
}

func NewRatingService(ratings RatingStore) *RatingService {
	return &RatingService{ratings: ratings}
}

// Summary computes the movie's average score rounded to one decimal
// (0.0 with no ratings), the rating count, and the caller's own score
// (0 when the caller has not rated).
func (s *RatingService) Summary(ctx context.Context, movieID int64, id identity.Identity) (*models.RatingSummary, error) {
	average, count, err := s.ratings.Aggregate(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate ratings: %w", err)
	}

	summary := &models.RatingSummary{
		Count: count,
	}
	if count > 0 {
		summary.Average = math.Round(average*10) / 10
	}

	if !id.Anonymous() {
		own, err := s.ratings.GetByUserAndMovie(ctx, id.UserID, movieID)
		if err != nil {
			return nil, fmt.Errorf("failed to get own rating: %w", err)
		}
		if own != nil {
			summary.OwnScore = own.Score
		}
	}

	return summary, nil
}

// Submit records the caller's score for a movie: one rating per
// (user, movie), updated in place on resubmission. Scores outside 1..5
// are rejected.
func (s *RatingService) Submit(ctx context.Context, id identity.Identity, movieID int64, score int) error {
	if err := identity.RequireAuthenticated(id); err != nil {
		return err
	}
	if score < 1 || score > 5 {
		return apperrors.ErrInvalidScore
	}

	existing, err := s.ratings.GetByUserAndMovie(ctx, id.UserID, movieID)
	if err != nil {
		return fmt.Errorf("failed to look up rating: %w", err)
	}

	if existing != nil {
		if err := s.ratings.UpdateScore(ctx, existing.ID, score); err != nil {
			return fmt.Errorf("failed to update rating: %w", err)
		}
		return nil
	}

	rating := &models.Rating{
		UserID:  id.UserID,
		MovieID: movieID,
		Score:   score,
	}
	if err := s.ratings.Insert(ctx, rating); err != nil {
		return fmt.Errorf("failed to insert rating: %w", err)
	}

	return nil
}
