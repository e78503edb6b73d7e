package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/MZidanFI/Bioskop-Project/internal/database"
	"github.com/MZidanFI/Bioskop-Project/internal/models"
)

type BookingRepository struct {
	db *database.DB
}

func NewBookingRepository(db *database.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// InsertActive tries to take a seat. The partial unique index on
// (movie_id, seat_number) WHERE status='booked' makes the insert the
// atomic check-and-take: when another active booking already holds the
// seat, ON CONFLICT drops the row and the call reports inserted=false.
func (r *BookingRepository) InsertActive(ctx context.Context, booking *models.Booking) (bool, error) {
	query := `
		INSERT INTO bookings (user_id, movie_id, seat_number, status)
		VALUES ($1, $2, $3, 'booked')
		ON CONFLICT (movie_id, seat_number) WHERE status = 'booked' DO NOTHING
		RETURNING id, booking_date, status`

	err := r.db.QueryRowContext(ctx, query,
		booking.UserID,
		booking.MovieID,
		booking.SeatNumber,
	).Scan(&booking.ID, &booking.BookingDate, &booking.Status)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

// BookedSeats returns the seat numbers currently held for a movie.
func (r *BookingRepository) BookedSeats(ctx context.Context, movieID int64) ([]string, error) {
	query := `
		SELECT seat_number
		FROM bookings
		WHERE movie_id = $1 AND status = 'booked'
		ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, movieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var seats []string
	for rows.Next() {
		var seat string
		if err := rows.Scan(&seat); err != nil {
			return nil, err
		}
		seats = append(seats, seat)
	}

	return seats, rows.Err()
}

// ResetActive moves every active booking of a movie to history and
// returns how many rows changed. Audit rows are kept, never deleted.
func (r *BookingRepository) ResetActive(ctx context.Context, movieID int64) (int64, error) {
	query := `UPDATE bookings SET status = 'history' WHERE movie_id = $1 AND status = 'booked'`

	result, err := r.db.ExecContext(ctx, query, movieID)
	if err != nil {
		return 0, err
	}

	return result.RowsAffected()
}

// HistoryByUser lists a user's bookings joined with their movies, newest first.
func (r *BookingRepository) HistoryByUser(ctx context.Context, userID int64) ([]models.HistoryItem, error) {
	query := `
		SELECT b.id, b.movie_id, m.title, b.seat_number, b.booking_date, m.price, b.status
		FROM bookings b
		JOIN movies m ON m.id = b.movie_id
		WHERE b.user_id = $1
		ORDER BY b.id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.HistoryItem
	for rows.Next() {
		var item models.HistoryItem
		err := rows.Scan(
			&item.BookingID,
			&item.MovieID,
			&item.MovieTitle,
			&item.SeatNumber,
			&item.BookingDate,
			&item.Price,
			&item.Status,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

// SalesByDate returns every booking whose booking_date falls on the given
// calendar day, joined with user and movie, in booking id order. Both
// booked and history rows are included; history represents consumed but
// still valid sales.
func (r *BookingRepository) SalesByDate(ctx context.Context, date time.Time) ([]models.SalesRow, error) {
	query := `
		SELECT b.id, b.booking_date, u.username, m.title, b.seat_number, m.price, b.status
		FROM bookings b
		JOIN users u ON u.id = b.user_id
		JOIN movies m ON m.id = b.movie_id
		WHERE b.booking_date::date = $1::date
		ORDER BY b.id`

	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []models.SalesRow
	for rows.Next() {
		var row models.SalesRow
		err := rows.Scan(
			&row.BookingID,
			&row.BookingDate,
			&row.Username,
			&row.MovieTitle,
			&row.SeatNumber,
			&row.Price,
			&row.Status,
		)
		if err != nil {
			return nil, err
		}
		sales = append(sales, row)
	}

	return sales, rows.Err()
}

// RevenueByDate sums movie prices over the same booking set SalesByDate
// selects, regardless of status.
func (r *BookingRepository) RevenueByDate(ctx context.Context, date time.Time) (int64, error) {
	query := `
		SELECT COALESCE(SUM(m.price), 0)
		FROM bookings b
		JOIN movies m ON m.id = b.movie_id
		WHERE b.booking_date::date = $1::date`

	var revenue int64
	err := r.db.QueryRowContext(ctx, query, date).Scan(&revenue)
	return revenue, err
}

// TicketCounts returns per-movie booking totals for the admin chart,
// including movies with zero bookings.
func (r *BookingRepository) TicketCounts(ctx context.Context) ([]models.TicketCount, error) {
	query := `
		SELECT m.id, m.title, COUNT(b.id)
		FROM movies m
		LEFT JOIN bookings b ON b.movie_id = m.id
		GROUP BY m.id, m.title
		ORDER BY m.id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []models.TicketCount
	for rows.Next() {
		var count models.TicketCount
		if err := rows.Scan(&count.MovieID, &count.MovieTitle, &count.Count); err != nil {
			return nil, err
		}
		counts = append(counts, count)
	}

	return counts, rows.Err()
}
