package consumers

import (
	"context"
	"log/slog"

	"github.com/MZidanFI/Bioskop-Project/internal/config"
	"github.com/MZidanFI/Bioskop-Project/internal/database"
	"github.com/MZidanFI/Bioskop-Project/internal/messaging"
	"github.com/MZidanFI/Bioskop-Project/internal/models"
	"github.com/MZidanFI/Bioskop-Project/internal/repository"
	"github.com/MZidanFI/Bioskop-Project/internal/search"
)

type ConsumerService struct {
	db       *database.DB
	nats     *messaging.NATSClient
	repos    *repository.Repositories
	handlers *Handlers
}

func NewConsumerService(cfg *config.Config) (*ConsumerService, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}

	natsClient, err := messaging.NewNATSClient(cfg.NATS)
	if err != nil {
		db.Close()
		return nil, err
	}

	var movieIndex *search.MovieIndex
	if cfg.Elasticsearch.Enabled {
		movieIndex, err = search.NewMovieIndex(cfg.Elasticsearch)
		if err != nil {
			slog.Warn("Elasticsearch unavailable, movie events will not sync the index", "error", err)
			movieIndex = nil
		}
	}

	repos := repository.NewRepositories(db)
	handlers := NewHandlers(repos, movieIndex)

	return &ConsumerService{
		db:       db,
		nats:     natsClient,
		repos:    repos,
		handlers: handlers,
	}, nil
}

func (cs *ConsumerService) Start() error {
	slog.Info("Starting NATS consumers...")

	if _, err := cs.nats.SubscribeQueue(models.EventBookingCreated, "consumers", cs.handlers.HandleBookingCreated); err != nil {
		return err
	}

	if _, err := cs.nats.SubscribeQueue(models.EventSeatsReset, "consumers", cs.handlers.HandleSeatsReset); err != nil {
		return err
	}

	if _, err := cs.nats.SubscribeQueue(models.EventMovieCreated, "consumers", cs.handlers.HandleMovieChanged); err != nil {
		return err
	}

	if _, err := cs.nats.SubscribeQueue(models.EventMovieUpdated, "consumers", cs.handlers.HandleMovieChanged); err != nil {
		return err
	}

	if _, err := cs.nats.SubscribeQueue(models.EventMovieDeleted, "consumers", cs.handlers.HandleMovieDeleted); err != nil {
		return err
	}

	slog.Info("All consumers started successfully")
	return nil
}

func (cs *ConsumerService) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down consumer service...")

	if cs.nats != nil {
		if err := cs.nats.Close(); err != nil {
			slog.Error("Error closing NATS connection", "error", err)
		}
	}

	if cs.db != nil {
		if err := cs.db.Close(); err != nil {
			slog.Error("Error closing database connection", "error", err)
			return err
		}
	}

	return nil
}
