package models

import (
	"time"
)

// Movie statuses
const (
	MovieStatusNow  = "now"
	MovieStatusSoon = "soon"
)

// Booking statuses. A booked row holds the seat; a history row is kept
// for reporting after an admin seat reset and no longer blocks rebooking.
const (
	BookingStatusBooked  = "booked"
	BookingStatusHistory = "history"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Movie represents a movie in the catalogue. Price is stored in the
// smallest currency unit (whole rupiah).
type Movie struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Price       int64     `json:"price" db:"price"`
	Image       *string   `json:"image" db:"image"`
	Description *string   `json:"description" db:"description"`
	Showtime    *string   `json:"showtime" db:"showtime"`
	Status      string    `json:"status" db:"status"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// Booking represents one seat held (or previously held) for a movie.
// Seat numbers are opaque tokens like "A1"; no seat-map geometry is enforced.
type Booking struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	MovieID     int64     `json:"movie_id" db:"movie_id"`
	SeatNumber  string    `json:"seat_number" db:"seat_number"`
	BookingDate time.Time `json:"booking_date" db:"booking_date"`
	Status      string    `json:"status" db:"status"`
}

// Rating represents a user's score for a movie. At most one row exists
// per (user_id, movie_id); the service layer upserts.
type Rating struct {
	ID      int64 `json:"id" db:"id"`
	UserID  int64 `json:"user_id" db:"user_id"`
	MovieID int64 `json:"movie_id" db:"movie_id"`
	Score   int   `json:"score" db:"score"`
}

// SalesRow is one booking of a daily report, joined with its user and movie.
type SalesRow struct {
	BookingID   int64     `json:"booking_id" db:"booking_id"`
	BookingDate time.Time `json:"booking_date" db:"booking_date"`
	Username    string    `json:"username" db:"username"`
	MovieTitle  string    `json:"movie_title" db:"movie_title"`
	SeatNumber  string    `json:"seat_number" db:"seat_number"`
	Price       int64     `json:"price" db:"price"`
	Status      string    `json:"status" db:"status"`
}

// HistoryItem is one entry of a user's booking history.
type HistoryItem struct {
	BookingID   int64     `json:"booking_id" db:"booking_id"`
	MovieID     int64     `json:"movie_id" db:"movie_id"`
	MovieTitle  string    `json:"movie_title" db:"movie_title"`
	SeatNumber  string    `json:"seat_number" db:"seat_number"`
	BookingDate time.Time `json:"booking_date" db:"booking_date"`
	Price       int64     `json:"price" db:"price"`
	Status      string    `json:"status" db:"status"`
}

// TicketCount is the number of bookings ever made for a movie, used by
// the admin panel chart.
type TicketCount struct {
	MovieID    int64  `json:"movie_id" db:"movie_id"`
	MovieTitle string `json:"movie_title" db:"movie_title"`
	Count      int64  `json:"count" db:"count"`
}
