package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/MZidanFI/Bioskop-Project/internal/config"
	"github.com/MZidanFI/Bioskop-Project/internal/database"
	"github.com/MZidanFI/Bioskop-Project/internal/logger"
)

var (
	userCount    = flag.Int("users", 5, "Number of demo users to create")
	bookingCount = flag.Int("bookings", 40, "Number of demo bookings to create")
	days         = flag.Int("days", 3, "Spread bookings over the past N days")
	dryRun       = flag.Bool("dry-run", false, "Show what would be generated without making changes")
)

var seatRows = []string{"A", "B", "C", "D", "E"}

// DemoGenerator fills the database with plausible users, bookings and
// ratings so the admin panel and the sales report have data to show.
type DemoGenerator struct {
	db  *database.DB
	rng *rand.Rand
}

func main() {
	flag.Parse()
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, "text")

	slog.Info("Starting demo data generator...")

	db, err := database.Connect(cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	if err := db.Seed(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		slog.Error("Failed to seed base data", "error", err)
		os.Exit(1)
	}

	gen := &DemoGenerator{
		db:  db,
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if err := gen.Generate(); err != nil {
		slog.Error("Failed to generate demo data", "error", err)
		os.Exit(1)
	}

	slog.Info("Demo data generation completed")
}

func (g *DemoGenerator) Generate() error {
	userIDs, err := g.createUsers()
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}

	movieIDs, err := g.nowShowingMovies()
	if err != nil {
		return fmt.Errorf("failed to list movies: %w", err)
	}
	if len(movieIDs) == 0 {
		slog.Info("No now-showing movies, nothing to book")
		return nil
	}

	if err := g.createBookings(userIDs, movieIDs); err != nil {
		return fmt.Errorf("failed to create bookings: %w", err)
	}

	if err := g.createRatings(userIDs, movieIDs); err != nil {
		return fmt.Errorf("failed to create ratings: %w", err)
	}

	return nil
}

func (g *DemoGenerator) createUsers() ([]int64, error) {
	ids := make([]int64, 0, *userCount)

	hash, err := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	for i := 1; i <= *userCount; i++ {
		username := fmt.Sprintf("penonton%d", i)

		if *dryRun {
			slog.Info("Would create user", "username", username)
			continue
		}

		var id int64
		err := g.db.QueryRow(
			`INSERT INTO users (username, password_hash, role) VALUES ($1, $2, 'user')
			 ON CONFLICT (username) DO UPDATE SET username = EXCLUDED.username
			 RETURNING id`,
			username, string(hash),
		).Scan(&id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	slog.Info("Created demo users", "count", len(ids))
	return ids, nil
}

func (g *DemoGenerator) nowShowingMovies() ([]int64, error) {
	rows, err := g.db.Query(`SELECT id FROM movies WHERE status = 'now' ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (g *DemoGenerator) createBookings(userIDs, movieIDs []int64) error {
	if len(userIDs) == 0 {
		return nil
	}

	created := 0
	for i := 0; i < *bookingCount; i++ {
		userID := userIDs[g.rng.Intn(len(userIDs))]
		movieID := movieIDs[g.rng.Intn(len(movieIDs))]
		seat := fmt.Sprintf("%s%d", seatRows[g.rng.Intn(len(seatRows))], g.rng.Intn(10)+1)

		dayOffset := g.rng.Intn(*days)
		bookedAt := time.Now().AddDate(0, 0, -dayOffset).
			Add(-time.Duration(g.rng.Intn(10)) * time.Hour)

		// Older bookings get reset to history, so the report shows both
		status := "booked"
		if dayOffset > 0 {
			status = "history"
		}

		if *dryRun {
			slog.Info("Would create booking",
				"user_id", userID, "movie_id", movieID, "seat", seat, "status", status)
			continue
		}

		var id int64
		err := g.db.QueryRow(
			`INSERT INTO bookings (user_id, movie_id, seat_number, booking_date, status)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (movie_id, seat_number) WHERE status = 'booked' DO NOTHING
			 RETURNING id`,
			userID, movieID, seat, bookedAt, status,
		).Scan(&id)
		if err != nil {
			// Seat already held, skip like the API would
			continue
		}
		created++
	}

	slog.Info("Created demo bookings", "count", created)
	return nil
}

func (g *DemoGenerator) createRatings(userIDs, movieIDs []int64) error {
	created := 0
	for _, userID := range userIDs {
		for _, movieID := range movieIDs {
			if g.rng.Intn(2) == 0 {
				continue
			}
			score := g.rng.Intn(3) + 3 // demo audiences are generous

			if *dryRun {
				slog.Info("Would create rating",
					"user_id", userID, "movie_id", movieID, "score", score)
				continue
			}

			_, err := g.db.Exec(
				`INSERT INTO ratings (user_id, movie_id, score) VALUES ($1, $2, $3)`,
				userID, movieID, score,
			)
			if err != nil {
				return err
			}
			created++
		}
	}

	slog.Info("Created demo ratings", "count", created)
	return nil
}
