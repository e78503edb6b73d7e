package database

import (
	"fmt"
	"log/slog"
)

func (db *DB) RunMigrations() error {
	slog.Info("Running database migrations...")

	migrations := []string{
		createUsersTable,
		createMoviesTable,
		createBookingsTable,
		createRatingsTable,
		createActiveSeatIndex,
		createBookingDateIndex,
	}

	for i, migration := range migrations {
		slog.Info("Running migration", "step", i+1)
		if _, err := db.Exec(migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	slog.Info("All migrations completed successfully")
	return nil
}

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    username VARCHAR(100) UNIQUE NOT NULL,
    password_hash VARCHAR(200) NOT NULL,
    role VARCHAR(10) NOT NULL DEFAULT 'user',
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
)`

const createMoviesTable = `
CREATE TABLE IF NOT EXISTS movies (
    id SERIAL PRIMARY KEY,
    title VARCHAR(100) NOT NULL,
    price INTEGER NOT NULL CHECK (price > 0),
    image VARCHAR(150),
    description TEXT,
    showtime VARCHAR(100),
    status VARCHAR(10) NOT NULL DEFAULT 'now' CHECK (status IN ('now', 'soon')),
    created_at TIMESTAMP NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMP NOT NULL DEFAULT NOW()
)`

const createBookingsTable = `
CREATE TABLE IF NOT EXISTS bookings (
    id SERIAL PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id),
    movie_id INTEGER NOT NULL REFERENCES movies(id) ON DELETE CASCADE,
    seat_number VARCHAR(10) NOT NULL,
    booking_date TIMESTAMP NOT NULL DEFAULT NOW(),
    status VARCHAR(20) NOT NULL DEFAULT 'booked' CHECK (status IN ('booked', 'history'))
)`

const createRatingsTable = `
CREATE TABLE IF NOT EXISTS ratings (
    id SERIAL PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id),
    movie_id INTEGER NOT NULL REFERENCES movies(id) ON DELETE CASCADE,
    score INTEGER NOT NULL
)`

// At most one active booking may hold a seat. The partial index makes the
// per-seat check-and-insert atomic: concurrent INSERT ... ON CONFLICT DO
// NOTHING calls for the same seat let exactly one row in.
const createActiveSeatIndex = `
CREATE UNIQUE INDEX IF NOT EXISTS bookings_active_seat_idx
    ON bookings (movie_id, seat_number)
    WHERE status = 'booked'`

const createBookingDateIndex = `
CREATE INDEX IF NOT EXISTS bookings_booking_date_idx
    ON bookings (booking_date)`
