package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"github.com/MZidanFI/Bioskop-Project/internal/database"
	"github.com/MZidanFI/Bioskop-Project/internal/models"
)

type MovieRepository struct {
	db *database.DB
}

func NewMovieRepository(db *database.DB) *MovieRepository {
	return &MovieRepository{db: db}
}

const movieColumns = `id, title, price, image, description, showtime, status, created_at, updated_at`

func scanMovie(row interface{ Scan(...any) error }, movie *models.Movie) error {
	return row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Price,
		&movie.Image,
		&movie.Description,
		&movie.Showtime,
		&movie.Status,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
}

func (r *MovieRepository) GetByID(ctx context.Context, id int64) (*models.Movie, error) {
	movie := &models.Movie{}
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	err := scanMovie(r.db.QueryRowContext(ctx, query, id), movie)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	return movie, err
}

// List returns movies filtered by status and, optionally, by a
// case-insensitive title substring. Empty arguments disable the filter.
func (r *MovieRepository) List(ctx context.Context, status, titleQuery string) ([]models.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE 1=1`
	var args []interface{}

	if status != "" {
		args = append(args, status)
		query += ` AND status = $1`
	}
	if titleQuery != "" {
		args = append(args, "%"+titleQuery+"%")
		if status != "" {
			query += ` AND title ILIKE $2`
		} else {
			query += ` AND title ILIKE $1`
		}
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var movies []models.Movie
	for rows.Next() {
		var movie models.Movie
		if err := scanMovie(rows, &movie); err != nil {
			return nil, err
		}
		movies = append(movies, movie)
	}

	return movies, rows.Err()
}

// GetByIDs returns the movies for the given ids preserving the input order.
// Ids with no matching row are silently dropped.
func (r *MovieRepository) GetByIDs(ctx context.Context, ids []int64) ([]models.Movie, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = ANY($1)`
	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[int64]models.Movie, len(ids))
	for rows.Next() {
		var movie models.Movie
		if err := scanMovie(rows, &movie); err != nil {
			return nil, err
		}
		byID[movie.ID] = movie
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	movies := make([]models.Movie, 0, len(ids))
	for _, id := range ids {
		if movie, ok := byID[id]; ok {
			movies = append(movies, movie)
		}
	}

	return movies, nil
}

func (r *MovieRepository) Create(ctx context.Context, movie *models.Movie) error {
	query := `
		INSERT INTO movies (title, price, image, description, showtime, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	return r.db.QueryRowContext(ctx, query,
		movie.Title,
		movie.Price,
		movie.Image,
		movie.Description,
		movie.Showtime,
		movie.Status,
	).Scan(&movie.ID, &movie.CreatedAt, &movie.UpdatedAt)
}

func (r *MovieRepository) Update(ctx context.Context, movie *models.Movie) error {
	query := `
		UPDATE movies
		SET title = $1, price = $2, image = $3, description = $4,
		    showtime = $5, status = $6, updated_at = NOW()
		WHERE id = $7`

	_, err := r.db.ExecContext(ctx, query,
		movie.Title,
		movie.Price,
		movie.Image,
		movie.Description,
		movie.Showtime,
		movie.Status,
		movie.ID,
	)

	return err
}

// Delete removes a movie. Its bookings and ratings go with it through
// the ON DELETE CASCADE foreign keys.
func (r *MovieRepository) Delete(ctx context.Context, id int64) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	return affected > 0, err
}
