package consumers

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nats-io/stan.go"

	"github.com/MZidanFI/Bioskop-Project/internal/models"
	"github.com/MZidanFI/Bioskop-Project/internal/repository"
	"github.com/MZidanFI/Bioskop-Project/internal/search"
)

// Handlers processes the events the API publishes. movieIndex may be nil
// when Elasticsearch is disabled; movie events are then audit-logged only.
type Handlers struct {
	repos      *repository.Repositories
	movieIndex *search.MovieIndex
}

func NewHandlers(repos *repository.Repositories, movieIndex *search.MovieIndex) *Handlers {
	return &Handlers{
		repos:      repos,
		movieIndex: movieIndex,
	}
}

// HandleBookingCreated writes the audit trail for a booking call.
func (h *Handlers) HandleBookingCreated(m *stan.Msg) {
	var event models.BookingCreatedEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal booking created event", "error", err)
		return
	}

	slog.Info("Booking created",
		"user_id", event.UserID,
		"movie_id", event.MovieID,
		"booked", event.Booked,
		"skipped", event.Skipped)

	m.Ack()
}

// HandleSeatsReset writes the audit trail for an admin seat reset.
func (h *Handlers) HandleSeatsReset(m *stan.Msg) {
	var event models.SeatsResetEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal seats reset event", "error", err)
		return
	}

	slog.Info("Seats reset",
		"movie_id", event.MovieID,
		"reset_count", event.ResetCount)

	m.Ack()
}

// HandleMovieChanged re-reads the movie and upserts its search document.
// Works for both create and update events.
func (h *Handlers) HandleMovieChanged(m *stan.Msg) {
	var event models.MovieEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal movie event", "error", err)
		return
	}

	slog.Info("Movie changed", "movie_id", event.MovieID, "title", event.Title)

	if h.movieIndex != nil {
		ctx := context.Background()
		movie, err := h.repos.Movies.GetByID(ctx, event.MovieID)
		if err != nil {
			slog.Error("Failed to get movie for indexing", "movie_id", event.MovieID, "error", err)
			return
		}
		// Deleted between publish and consume: the delete event follows
		if movie != nil {
			if err := h.movieIndex.IndexMovie(ctx, movie); err != nil {
				slog.Error("Failed to index movie", "movie_id", event.MovieID, "error", err)
				return
			}
		}
	}

	m.Ack()
}

// HandleMovieDeleted drops the movie's search document.
func (h *Handlers) HandleMovieDeleted(m *stan.Msg) {
	var event models.MovieEvent
	if err := json.Unmarshal(m.Data, &event); err != nil {
		slog.Error("Failed to unmarshal movie event", "error", err)
		return
	}

	slog.Info("Movie deleted", "movie_id", event.MovieID, "title", event.Title)

	if h.movieIndex != nil {
		if err := h.movieIndex.DeleteMovie(context.Background(), event.MovieID); err != nil {
			slog.Error("Failed to delete movie from index", "movie_id", event.MovieID, "error", err)
			return
		}
	}

	m.Ack()
}
