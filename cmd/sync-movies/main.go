package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"

	"github.com/MZidanFI/Bioskop-Project/internal/config"
	"github.com/MZidanFI/Bioskop-Project/internal/database"
	"github.com/MZidanFI/Bioskop-Project/internal/logger"
	"github.com/MZidanFI/Bioskop-Project/internal/repository"
	"github.com/MZidanFI/Bioskop-Project/internal/search"
)

// Rebuilds the movie search index from the catalogue in Postgres. Run it
// after enabling Elasticsearch on an existing database, or whenever the
// index drifts from the catalogue.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, "text")

	slog.Info("Starting movie index synchronization")

	db, err := database.Connect(cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	defer db.Close()

	movieIndex, err := search.NewMovieIndex(cfg.Elasticsearch)
	if err != nil {
		logger.Fatal("Failed to connect to Elasticsearch", "error", err)
	}

	movieRepo := repository.NewMovieRepository(db)

	if err := syncMovies(context.Background(), movieRepo, movieIndex); err != nil {
		logger.Fatal("Movie index synchronization failed", "error", err)
	}

	slog.Info("Movie index synchronization completed")
}

func syncMovies(ctx context.Context, movieRepo *repository.MovieRepository, movieIndex *search.MovieIndex) error {
	start := time.Now()

	movies, err := movieRepo.List(ctx, "", "")
	if err != nil {
		return fmt.Errorf("failed to list movies: %w", err)
	}

	slog.Info("Indexing movies", "count", len(movies))

	failed := 0
	for i := range movies {
		if err := movieIndex.IndexMovie(ctx, &movies[i]); err != nil {
			slog.Error("Failed to index movie", "movie_id", movies[i].ID, "error", err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d movies failed to index", failed, len(movies))
	}

	slog.Info("Indexed movies", "count", len(movies), "duration", time.Since(start))
	return nil
}
