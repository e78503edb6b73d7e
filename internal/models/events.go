package models

import "time"

// NATS subjects
const (
	EventBookingCreated = "booking.created"
	EventSeatsReset     = "seats.reset"
	EventMovieCreated   = "movie.created"
	EventMovieUpdated   = "movie.updated"
	EventMovieDeleted   = "movie.deleted"
)

// BookingCreatedEvent is published after a booking call commits. Skipped
// carries the seats that were already taken and absorbed as no-ops.
type BookingCreatedEvent struct {
	UserID    int64     `json:"user_id"`
	MovieID   int64     `json:"movie_id"`
	Booked    []string  `json:"booked"`
	Skipped   []string  `json:"skipped"`
	Timestamp time.Time `json:"timestamp"`
}

// SeatsResetEvent is published after an admin clears a movie's seats.
type SeatsResetEvent struct {
	MovieID    int64     `json:"movie_id"`
	ResetCount int64     `json:"reset_count"`
	Timestamp  time.Time `json:"timestamp"`
}

// MovieEvent is published on movie create/update/delete so the search
// index can follow the catalogue.
type MovieEvent struct {
	MovieID   int64     `json:"movie_id"`
	Title     string    `json:"title"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
