package repository

import (
	"context"
	"database/sql"

	"github.com/MZidanFI/Bioskop-Project/internal/database"
	"github.com/MZidanFI/Bioskop-Project/internal/models"
)

type RatingRepository struct {
	db *database.DB
}

func NewRatingRepository(db *database.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

func (r *RatingRepository) GetByUserAndMovie(ctx context.Context, userID, movieID int64) (*models.Rating, error) {
	rating := &models.Rating{}
	query := `
		SELECT id, user_id, movie_id, score
		FROM ratings
		WHERE user_id = $1 AND movie_id = $2`

	err := r.db.QueryRowContext(ctx, query, userID, movieID).Scan(
		&rating.ID,
		&rating.UserID,
		&rating.MovieID,
		&rating.Score,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}

	return rating, err
}

func (r *RatingRepository) Insert(ctx context.Context, rating *models.Rating) error {
	query := `
		INSERT INTO ratings (user_id, movie_id, score)
		VALUES ($1, $2, $3)
		RETURNING id`

	return r.db.QueryRowContext(ctx, query,
		rating.UserID,
		rating.MovieID,
		rating.Score,
	).Scan(&rating.ID)
}

func (r *RatingRepository) UpdateScore(ctx context.Context, id int64, score int) error {
	_, err := r.db.ExecContext(ctx, `UPDATE ratings SET score = $1 WHERE id = $2`, score, id)
	return err
}

// Aggregate returns the mean score and the number of ratings for a movie.
// Both are zero when the movie has no ratings.
func (r *RatingRepository) Aggregate(ctx context.Context, movieID int64) (float64, int64, error) {
	query := `
		SELECT COALESCE(AVG(score), 0), COUNT(*)
		FROM ratings
		WHERE movie_id = $1`

	var average float64
	var count int64
	err := r.db.QueryRowContext(ctx, query, movieID).Scan(&average, &count)
	return average, count, err
}
