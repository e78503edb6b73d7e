package database

import (
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed creates the distinguished admin account and two demo movies on an
// empty database. Running it again is a no-op.
func (db *DB) Seed(adminUsername, adminPassword string) error {
	var exists bool
	err := db.QueryRow(`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, adminUsername).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = db.Exec(
		`INSERT INTO users (username, password_hash, role) VALUES ($1, $2, 'admin')`,
		adminUsername, string(hash),
	)
	if err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}
	slog.Info("Seeded admin account", "username", adminUsername)

	var movieCount int64
	if err := db.QueryRow(`SELECT COUNT(*) FROM movies`).Scan(&movieCount); err != nil {
		return fmt.Errorf("failed to count movies: %w", err)
	}
	if movieCount > 0 {
		return nil
	}

	_, err = db.Exec(
		`INSERT INTO movies (title, price, showtime, status) VALUES ($1, $2, $3, 'now')`,
		"Avengers: Secret Wars", 50000, "12:00",
	)
	if err != nil {
		return fmt.Errorf("failed to seed movies: %w", err)
	}
	_, err = db.Exec(
		`INSERT INTO movies (title, price, description, showtime, status) VALUES ($1, $2, $3, $4, 'soon')`,
		"Moana 2", 45000, "Segera di bioskop...", "Coming Soon",
	)
	if err != nil {
		return fmt.Errorf("failed to seed movies: %w", err)
	}
	slog.Info("Seeded demo movies")

	return nil
}
