package service

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/MZidanFI/Bioskop-Project/internal/errors"
	"github.com/MZidanFI/Bioskop-Project/internal/identity"
	"github.com/MZidanFI/Bioskop-Project/internal/logger"
	"github.com/MZidanFI/Bioskop-Project/internal/metrics"
	"github.com/MZidanFI/Bioskop-Project/internal/models"
)

// MovieGetter is the slice of the movie repository the booking engine needs.
type MovieGetter interface {
	GetByID(ctx context.Context, id int64) (*models.Movie, error)
}

// BookingStore is the slice of the booking repository the engine and the
// reset operation need. InsertActive must be atomic per seat: it reports
// false instead of inserting when an active booking already holds the seat.
type BookingStore interface {
	InsertActive(ctx context.Context, booking *models.Booking) (bool, error)
	BookedSeats(ctx context.Context, movieID int64) ([]string, error)
	ResetActive(ctx context.Context, movieID int64) (int64, error)
	HistoryByUser(ctx context.Context, userID int64) ([]models.HistoryItem, error)
}

type BookingService struct {
	movies   MovieGetter
	bookings BookingStore
	nats     Publisher
}

func NewBookingService(movies MovieGetter, bookings BookingStore, natsClient Publisher) *BookingService {
	return &BookingService{
		movies:   movies,
		bookings: bookings,
		nats:     natsClient,
	}
}

// BookSeats reserves seats for a movie. Seats already held by anyone are
// skipped silently; the call still succeeds and reports them in Skipped.
// Rebooking a held seat is a no-op, never a conflict error. Each seat is
// taken by one atomic insert, so a failed call leaves no partial rows and
// concurrent callers cannot double-book.
func (s *BookingService) BookSeats(ctx context.Context, id identity.Identity, movieID int64, seats []string) (*models.BookSeatsResponse, error) {
	if err := identity.RequireAuthenticated(id); err != nil {
		return nil, err
	}

	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}
	if movie == nil {
		return nil, apperrors.ErrNotFound
	}
	if movie.Status == models.MovieStatusSoon {
		return nil, apperrors.ErrMovieNotShowing
	}

	response := &models.BookSeatsResponse{
		Booked:  []string{},
		Skipped: []string{},
	}

	// Duplicate tokens in the request collapse to one attempt
	seen := make(map[string]bool, len(seats))
	for _, seat := range seats {
		if seat == "" || seen[seat] {
			continue
		}
		seen[seat] = true

		booking := &models.Booking{
			UserID:     id.UserID,
			MovieID:    movieID,
			SeatNumber: seat,
		}
		inserted, err := s.bookings.InsertActive(ctx, booking)
		if err != nil {
			return nil, fmt.Errorf("failed to book seat %s: %w", seat, err)
		}
		if inserted {
			response.Booked = append(response.Booked, seat)
		} else {
			response.Skipped = append(response.Skipped, seat)
		}
	}

	metrics.ObserveBooking(len(response.Booked), len(response.Skipped))

	if s.nats != nil {
		event := models.BookingCreatedEvent{
			UserID:    id.UserID,
			MovieID:   movieID,
			Booked:    response.Booked,
			Skipped:   response.Skipped,
			Timestamp: time.Now(),
		}
		if err := s.nats.Publish(models.EventBookingCreated, event); err != nil {
			logger.WithContext(ctx).Error("Failed to publish booking created event",
				"error", err,
				"movie_id", movieID,
				"event_type", models.EventBookingCreated)
		}
	}

	return response, nil
}

// BookedSeats returns the seats currently held for a movie.
func (s *BookingService) BookedSeats(ctx context.Context, movieID int64) ([]string, error) {
	seats, err := s.bookings.BookedSeats(ctx, movieID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booked seats: %w", err)
	}
	return seats, nil
}

// History lists the caller's bookings joined with their movies.
func (s *BookingService) History(ctx context.Context, id identity.Identity) ([]models.HistoryItem, error) {
	if err := identity.RequireAuthenticated(id); err != nil {
		return nil, err
	}

	items, err := s.bookings.HistoryByUser(ctx, id.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking history: %w", err)
	}
	return items, nil
}

// ResetSeats is the admin operation that clears a movie's active seats.
// The rows survive as history for reporting; a second run reports zero.
func (s *BookingService) ResetSeats(ctx context.Context, id identity.Identity, movieID int64) (int64, error) {
	if err := identity.RequireAdmin(id); err != nil {
		return 0, err
	}

	movie, err := s.movies.GetByID(ctx, movieID)
	if err != nil {
		return 0, fmt.Errorf("failed to get movie: %w", err)
	}
	if movie == nil {
		return 0, apperrors.ErrNotFound
	}

	count, err := s.bookings.ResetActive(ctx, movieID)
	if err != nil {
		return 0, fmt.Errorf("failed to reset seats: %w", err)
	}

	metrics.ObserveReset(count)

	if s.nats != nil && count > 0 {
		event := models.SeatsResetEvent{
			MovieID:    movieID,
			ResetCount: count,
			Timestamp:  time.Now(),
		}
		if err := s.nats.Publish(models.EventSeatsReset, event); err != nil {
			logger.WithContext(ctx).Error("Failed to publish seats reset event",
				"error", err,
				"movie_id", movieID,
				"event_type", models.EventSeatsReset)
		}
	}

	return count, nil
}
